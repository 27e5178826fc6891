package main

import (
	"html/template"
	"strings"

	"github.com/frizinak/pronouns/common"
	"github.com/frizinak/pronouns/pronouns"
)

func nonl(i string) string { return strings.ReplaceAll(strings.ReplaceAll(i, "\n", ""), "\t", "") }

// Page is the data every html page renders.
type Page struct {
	Title  string
	Domain string
	Query  string
	Set    *pronouns.PronounSet
	Sets   pronouns.Sets
	Docs   template.HTML
}

var baseTpl = nonl(`{{- define "header" -}}
<!DOCTYPE html>
<html>
<head>
	<meta charset="utf-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>{{ if .Title }}{{ .Title }} - Pronouns{{ else }}Pronouns{{ end }}</title>
	<link rel="stylesheet" href="/asset/style.css">
</head>
<body id="top">
<main>
<nav>
	<a href="/">Pronouns</a> -
	<a href="/pronoun-list">All Pronouns</a> -
	<a href="/api/docs">API Documentation</a>
</nav>
<h1>{{ if .Title }}{{ .Title }}{{ else }}Pronouns{{ end }}</h1>
{{- end -}}

{{- define "footer" -}}
<footer><p>From <a href="https://xeiaso.net">Within</a>.</p></footer>
</main>
</body>
</html>
{{- end -}}

{{- define "custom" -}}
<p>If your pronouns are not listed here, you can construct a custom URL like this:</p>
<pre><code>https://{{ .Domain }}/subject/object/determiner/possessive/reflexive</code></pre>
{{- end -}}

{{- define "links" -}}
<ul>
{{- range . -}}
<li><a href="{{ .URL }}">{{ .Title }}</a></li>
{{- end -}}
</ul>
{{- end -}}

{{- define "set" -}}
<img class="card" src="/i{{ .URL }}.png" alt="{{ .Title }}">
<table>
{{- range cases -}}
<tr><th>{{ .Label }}</th><td>{{ form $ . }}</td></tr>
{{- end -}}
</table>
<p>Here are some example sentences with these pronouns:</p>
<ul>
{{- range sentences . -}}
<li>{{ range . }}{{ if .Form }}<em>{{ .Text }}</em>{{ else }}{{ .Text }}{{ end }}{{ end }}</li>
{{- end -}}
</ul>
<p>This pronoun should be inflected as a {{ .Number }} pronoun.</p>
{{- end -}}

{{- define "home" -}}
{{ template "header" . }}
<p>Hello, this is a service that lets you demonstrate how various third-person pronouns are used. It will list all of the grammatical forms for each pronoun set.</p>
<a href="/pronoun-list">All the pronouns in the database</a><br>
<a href="/api/docs">API Documentation</a>
{{ template "custom" . }}
<p>This is a bit verbose, but it will work.</p>
{{ template "footer" . }}
{{- end -}}

{{- define "list" -}}
{{ template "header" . }}
{{ template "links" .Sets }}
{{ template "custom" . }}
{{ template "footer" . }}
{{- end -}}

{{- define "docs" -}}
{{ template "header" . }}
{{ .Docs }}
{{ template "footer" . }}
{{- end -}}

{{- define "pronoun" -}}
{{ template "header" . }}
{{ template "set" .Set }}
{{ template "footer" . }}
{{- end -}}

{{- define "ambiguous" -}}
{{ template "header" . }}
<p>The pronoun you are looking up ({{ .Query }}) has multiple hits in the database. Please try one of the following options:</p>
{{ template "links" .Sets }}
{{ template "footer" . }}
{{- end -}}

{{- define "notfound" -}}
{{ template "header" . }}
<p>This service doesn't have pronouns for {{ .Query }} on file.</p>
{{- with .Sets -}}
<p>Did you mean:</p>
{{ template "links" . }}
{{- end -}}
{{ template "footer" . }}
{{- end -}}

{{- define "error" -}}
{{ template "header" . }}
{{ template "footer" . }}
{{- end -}}`)

func pageTpl() (*template.Template, error) {
	return template.New("pronouns").Funcs(common.HTMLFuncs()).Parse(baseTpl)
}
