package common

import (
	"bytes"
	"path/filepath"
	"text/template"

	"github.com/frizinak/pronouns/data"
	"github.com/frizinak/pronouns/dict"
	"github.com/frizinak/pronouns/pronouns"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const tplStr = `{{- define "sentence" -}}
{{ range . }}{{ if .Form }}{{ clrYellow }}{{ .Text }}{{ clrPop }}{{ else }}{{ .Text }}{{ end }}{{ end }}
{{- end -}}

{{- define "set" -}}
{{ clrGreen }}{{ .Title }}{{ clrPop }} {{ clrGray }}{{ .URL }}{{ clrPop }}
{{ range cases }}  {{ printf "%-24s" .Label }}{{ form $ . }}
{{ end }}
{{ range sentences . }}  {{ template "sentence" . }}
{{ end }}
  This pronoun should be inflected as a {{ .Number }} pronoun.
{{ end -}}

{{- if .Sets -}}
{{ range .Sets }}{{ template "set" . }}
{{ end }}
{{- else -}}
{{ clrRed }}can't find {{ .Query }} in my database{{ clrPop }}
{{ with .Suggestions }}did you mean:
{{ range . }}  {{ diff $.Query . }}
{{ end }}{{ end }}
{{- end -}}`

// Lookup is the data the lookup templates render.
type Lookup struct {
	Query       string
	Sets        pronouns.Sets
	Suggestions pronouns.Sets
}

var dct *dict.Dict

// GetDict returns the dictionary of the builtin pronoun database.
func GetDict() (*dict.Dict, error) {
	if dct != nil {
		return dct, nil
	}
	sets, err := pronouns.DecodeTab(bytes.NewReader(data.Tab))
	if err != nil {
		return nil, err
	}

	dct = dict.New(sets)
	return dct, nil
}

// LoadDict loads a dictionary from a GOB database or a tab separated file,
// depending on the extension. An empty file returns the builtin database.
func LoadDict(file string) (*dict.Dict, error) {
	if file == "" {
		return GetDict()
	}

	var sets pronouns.Sets
	var err error
	switch filepath.Ext(file) {
	case ".gob":
		sets, err = pronouns.LoadGOB(file)
	default:
		sets, err = pronouns.LoadTab(file)
	}
	if err != nil {
		return nil, err
	}
	return dict.New(sets), nil
}

// Segment is a part of an example sentence, Form is set for the
// pronoun itself.
type Segment struct {
	Text string
	Form bool
}

type Sentence []Segment

func Title(s string) string {
	return cases.Title(language.English).String(s)
}

// Sentences returns example sentences using all forms of p.
func Sentences(p *pronouns.PronounSet) []Sentence {
	t := func(s string) Segment { return Segment{Text: s} }
	f := func(s string) Segment { return Segment{Text: s, Form: true} }
	nom := Title(p.Nominative)
	to := "to"
	if !p.Singular {
		to = "between"
	}

	return []Sentence{
		{f(nom), t(" went to the park.")},
		{t("I went with "), f(p.Accusative), t(".")},
		{f(nom), t(" brought "), f(p.Determiner), t(" frisbee.")},
		{t("At least I think it was "), f(p.Possessive), t(".")},
		{f(nom), t(" threw the frisbee " + to + " "), f(p.Reflexive), t(".")},
	}
}

func sharedFuncs() map[string]interface{} {
	return map[string]interface{}{
		"cases":     func() [pronouns.Fields]pronouns.Case { return pronouns.AllCases },
		"form":      func(p *pronouns.PronounSet, c pronouns.Case) string { return p.Form(c) },
		"sentences": Sentences,
		"title":     Title,
	}
}

func getTplFuncs(color bool) template.FuncMap {
	clrs := &clrs{disabled: !color}

	fm := template.FuncMap(sharedFuncs())
	fm["clrRed"] = func() clr { return clrs.Get(31) }
	fm["clrGreen"] = func() clr { return clrs.Get(32) }
	fm["clrYellow"] = func() clr { return clrs.Get(33) }
	fm["clrGray"] = func() clr { return clrs.Get(37) }
	fm["clrPop"] = func() clr { return clrs.Pop() }
	fm["diff"] = func(qry string, p *pronouns.PronounSet) stringer {
		edits := dict.LevenshteinEdits([]rune(qry), []rune(p.String()))
		list := make(stringList, 0, len(edits)*3)
		for _, e := range edits {
			switch e.Type {
			case dict.EditNone:
				list = append(list, strStringer(e.String()))
				continue
			case dict.EditAdd:
				list = append(list, clrs.Get(32))
			case dict.EditDel:
				list = append(list, clrs.Get(31, 9))
			case dict.EditChange:
				list = append(list, clrs.Get(33))
			}
			list = append(list, strStringer(e.String()), clrs.Pop())
		}
		return list
	}

	return fm
}

// GetTpl returns the terminal template for a Lookup.
func GetTpl(color bool) (*template.Template, error) {
	return template.New("lookup").Funcs(getTplFuncs(color)).Parse(tplStr)
}
