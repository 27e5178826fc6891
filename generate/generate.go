// Package generate turns a tab separated pronoun file into one Dhall
// record per set plus an index importing all of them.
package generate

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/frizinak/pronouns/config"
	"github.com/frizinak/pronouns/pronouns"
	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"go.uber.org/zap"
)

// FS is the part of a billy filesystem the Generator needs.
type FS interface {
	billy.Basic
	billy.Dir
}

type Generator struct {
	fs   FS
	conf config.Config
	out  io.Writer
	l    *zap.Logger
}

// New creates a Generator that reads and writes through fs. The list of
// generated paths is printed to out.
func New(fs FS, conf config.Config, out io.Writer, l *zap.Logger) *Generator {
	if l == nil {
		l = zap.NewNop()
	}
	if out == nil {
		out = io.Discard
	}
	return &Generator{fs: fs, conf: conf, out: out, l: l}
}

// Path returns the sanitized path the record of set is written to.
// Apostrophes are the only characters replaced.
func (g *Generator) Path(set *pronouns.PronounSet) string {
	k := set.Key()
	name := fmt.Sprintf("%s.%s", strings.Join(k[:], "-"), g.conf.Ext)
	return strings.ReplaceAll(path.Join(g.conf.Dir, name), "'", "_")
}

var listEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// formatList renders paths as a bracketed list of single quoted items,
// e.g. ['a.dhall', 'b.dhall'].
func formatList(paths []string) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, p := range paths {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteByte('\'')
		b.WriteString(listEscaper.Replace(p))
		b.WriteByte('\'')
	}
	b.WriteByte(']')
	return b.String()
}

func (g *Generator) checkDir() error {
	fi, err := g.fs.Stat(g.conf.Dir)
	if err == nil {
		if !fi.IsDir() {
			return fmt.Errorf("output %s is not a directory", g.conf.Dir)
		}
		return nil
	}

	if !os.IsNotExist(err) || !g.conf.Mkdir {
		return fmt.Errorf("output directory %s: %w", g.conf.Dir, err)
	}

	g.l.Debug("creating output directory", zap.String("dir", g.conf.Dir))
	return g.fs.MkdirAll(g.conf.Dir, 0o755)
}

func (g *Generator) write(file string, set *pronouns.PronounSet) error {
	buf := bytes.NewBuffer(nil)
	if err := pronouns.EncodeDhall(buf, set, g.conf.Escape); err != nil {
		return err
	}

	if err := util.WriteFile(g.fs, file, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", file, err)
	}
	return nil
}

// Run performs a single pass over the input: every row is written to its
// own file as soon as it is read, the index is written once all rows
// succeeded. The returned paths are in input order.
func (g *Generator) Run() ([]string, error) {
	if err := g.checkDir(); err != nil {
		return nil, err
	}

	f, err := g.fs.Open(g.conf.Input)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	files := make([]string, 0, 32)
	err = pronouns.DecodeTabFunc(f, func(line int, set *pronouns.PronounSet) error {
		file := g.Path(set)
		if err := g.write(file, set); err != nil {
			return err
		}
		g.l.Debug("generated", zap.Int("line", line), zap.String("file", file))
		files = append(files, file)
		return nil
	})
	if err != nil {
		return files, fmt.Errorf("%s: %w", g.conf.Input, err)
	}

	if _, err := fmt.Fprintln(g.out, formatList(files)); err != nil {
		return files, err
	}

	buf := bytes.NewBuffer(nil)
	if err := pronouns.EncodeDhallIndex(buf, files); err != nil {
		return files, err
	}
	if err := util.WriteFile(g.fs, g.conf.Index, buf.Bytes(), 0o644); err != nil {
		return files, fmt.Errorf("write index %s: %w", g.conf.Index, err)
	}

	g.l.Info(
		"generated pronoun sets",
		zap.Int("files", len(files)),
		zap.String("index", g.conf.Index),
	)
	return files, nil
}
