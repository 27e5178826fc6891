// Package config holds the settings shared by the pronouns commands.
// The zero file (no config at all) yields the fixed layout the generator
// has always used: pronouns.tab in, pronouns/*.dhall and package.dhall out.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const DefaultFile = "pronouns.yaml"

type Config struct {
	// Input is the tab separated pronoun file.
	Input string `yaml:"input"`
	// Dir receives one file per pronoun set.
	Dir string `yaml:"dir"`
	// Ext is the extension of generated files, without dot.
	Ext string `yaml:"ext"`
	// Index is the aggregate file listing all generated files.
	Index string `yaml:"index"`
	// Escape enables Dhall escaping of interpolated forms.
	Escape bool `yaml:"escape"`
	// Mkdir creates Dir if it does not exist instead of failing.
	Mkdir bool `yaml:"mkdir"`

	DB     string `yaml:"db"`
	Addr   string `yaml:"addr"`
	Cache  string `yaml:"cache"`
	Domain string `yaml:"domain"`
}

func Default() Config {
	return Config{
		Input:  "pronouns.tab",
		Dir:    "pronouns",
		Ext:    "dhall",
		Index:  "package.dhall",
		DB:     "data/db.gob",
		Addr:   ":3000",
		Domain: "pronouns.within.lgbt",
	}
}

// Decode overlays the yaml document in r on top of Default.
func Decode(r io.Reader) (Config, error) {
	c := Default()
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	if err := d.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return c, err
	}

	return c, c.Validate()
}

// Load reads the config file at path. An empty path loads DefaultFile
// if it exists and Default otherwise.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, err
	}

	c, err := Decode(bytes.NewReader(raw))
	if err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func (c Config) Validate() error {
	switch {
	case c.Input == "":
		return errors.New("input can not be empty")
	case c.Dir == "":
		return errors.New("dir can not be empty")
	case c.Ext == "":
		return errors.New("ext can not be empty")
	case c.Index == "":
		return errors.New("index can not be empty")
	}
	return nil
}

func (c Config) Encode(w io.Writer) error {
	e := yaml.NewEncoder(w)
	e.SetIndent(2)
	if err := e.Encode(c); err != nil {
		return err
	}
	return e.Close()
}
