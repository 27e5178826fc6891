package common

import (
	"bytes"
	htmltpl "html/template"
	"io"
	"strings"

	"github.com/frizinak/pronouns/data"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/json"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var min = newMinifier()

func newMinifier() *minify.M {
	m := minify.New()
	m.Add("text/html", &html.Minifier{KeepDocumentTags: true, KeepEndTags: true})
	m.AddFunc("text/css", css.Minify)
	m.AddFunc("application/json", json.Minify)
	return m
}

// Minify writes the minified contents of r to w.
func Minify(mediatype string, w io.Writer, r io.Reader) error {
	return min.Minify(mediatype, w, r)
}

// HTMLFuncs are the template funcs shared between all html pages.
func HTMLFuncs() htmltpl.FuncMap {
	return htmltpl.FuncMap(sharedFuncs())
}

var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

// RenderMarkdown converts markdown to html. Raw html in src is escaped.
func RenderMarkdown(src []byte) (htmltpl.HTML, error) {
	buf := bytes.NewBuffer(nil)
	if err := md.Convert(src, buf); err != nil {
		return "", err
	}
	return htmltpl.HTML(buf.String()), nil
}

// APIDocs renders the builtin api documentation for the given domain.
func APIDocs(domain string) (htmltpl.HTML, error) {
	src := strings.ReplaceAll(string(data.APIDocs), "{{DOMAIN}}", domain)
	return RenderMarkdown([]byte(src))
}

// CSS returns the minified stylesheet.
func CSS() (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Minify("text/css", buf, strings.NewReader(data.CSS)); err != nil {
		return "", err
	}
	return buf.String(), nil
}
