package pronouns

import (
	"encoding/gob"
	"fmt"
	"io"
	"os"
	"time"
)

func init() {
	gob.Register(Sets{})
}

func EncodeGOB(w io.Writer, sets Sets) error {
	return gob.NewEncoder(w).Encode(sets)
}

func DecodeGOB(r io.Reader) (Sets, error) {
	s := Sets{}
	return s, gob.NewDecoder(r).Decode(&s)
}

func StoreGOB(file string, sets Sets) error {
	tmp := fmt.Sprintf("%s.%d.tmp", file, time.Now().UnixNano())
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	if err := EncodeGOB(f, sets); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, file)
}

func LoadGOB(file string) (Sets, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}

	s, err := DecodeGOB(f)
	f.Close()
	return s, err
}

// LoadTab reads a tab separated pronoun file from disk.
func LoadTab(file string) (Sets, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}

	s, err := DecodeTab(f)
	f.Close()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return s, nil
}
