package pronouns

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseError is returned for a row that does not have exactly Fields
// tab separated columns.
type ParseError struct {
	Line   int
	Fields int
	Row    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf(
		"line %d: expected %d tab separated fields, got %d: %q",
		e.Line,
		Fields,
		e.Fields,
		e.Row,
	)
}

func dec(r io.Reader, row func(int, []string) error) error {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanLines)
	n := 0
	for s.Scan() {
		n++
		line := strings.TrimSuffix(s.Text(), "\r")
		if line == "" {
			continue
		}
		if err := row(n, strings.Split(line, "\t")); err != nil {
			return err
		}
	}
	return s.Err()
}

// DecodeTabFunc calls cb for every row of a tab separated pronoun file,
// in input order. Decoding stops at the first malformed row or at the
// first error returned by cb.
func DecodeTabFunc(r io.Reader, cb func(line int, set *PronounSet) error) error {
	return dec(r, func(n int, row []string) error {
		if len(row) != Fields {
			return &ParseError{Line: n, Fields: len(row), Row: strings.Join(row, "\t")}
		}

		var forms [Fields]string
		copy(forms[:], row)
		return cb(n, New(forms, true))
	})
}

// DecodeTab reads all rows of a tab separated pronoun file.
// Every row is considered a singular set.
func DecodeTab(r io.Reader) (Sets, error) {
	sets := make(Sets, 0, 32)
	err := DecodeTabFunc(r, func(_ int, set *PronounSet) error {
		sets = append(sets, set)
		return nil
	})

	return sets, err
}

// EncodeTab writes sets in the format DecodeTab reads.
func EncodeTab(w io.Writer, sets Sets) error {
	bw := bufio.NewWriter(w)
	for _, s := range sets {
		k := s.Key()
		if _, err := bw.WriteString(strings.Join(k[:], "\t")); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}
