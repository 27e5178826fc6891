package pronouns

import (
	"io"
	"strings"
	"text/template"
)

const dhallRecord = `
let PronounSet = ../types/PronounSet.dhall

in PronounSet::{
    , nominative = "{{ q .Nominative }}"
    , accusative = "{{ q .Accusative }}"
    , determiner = "{{ q .Determiner }}"
    , possessive = "{{ q .Possessive }}"
    , reflexive = "{{ q .Reflexive }}"
    , singular = {{ if .Singular }}True{{ else }}False{{ end }}
}
` + recordTail

// recordTail follows the closing brace of every record, without newline.
const recordTail = "            "

var dhallEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, `${`, `\${`)

// EscapeDhall escapes s for use inside a double quoted Dhall text literal.
func EscapeDhall(s string) string { return dhallEscaper.Replace(s) }

func verbatim(s string) string { return s }

var (
	dhallTpl        = newDhallTpl(verbatim)
	dhallEscapedTpl = newDhallTpl(EscapeDhall)
)

func newDhallTpl(q func(string) string) *template.Template {
	return template.Must(
		template.New("dhall").Funcs(template.FuncMap{"q": q}).Parse(dhallRecord),
	)
}

// EncodeDhall writes set as a PronounSet record literal.
// Unless escape is set the forms are interpolated as is, a form containing
// a double quote will then produce an invalid record.
func EncodeDhall(w io.Writer, set *PronounSet, escape bool) error {
	if escape {
		return dhallEscapedTpl.Execute(w, set)
	}
	return dhallTpl.Execute(w, set)
}

// EncodeDhallIndex writes a Dhall list importing every path relative to
// the index file, in order.
func EncodeDhallIndex(w io.Writer, paths []string) error {
	var b strings.Builder
	b.WriteString("[\n")
	for _, p := range paths {
		b.WriteString(", ./")
		b.WriteString(p)
		b.WriteString("\n")
	}
	b.WriteString("]")

	_, err := io.WriteString(w, b.String())
	return err
}
