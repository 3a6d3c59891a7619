package embed

import "text/template"

type header struct {
	Source    string
	Name      string
	Delimiter string
	Content   string
	Quoted    string
	Package   string
	Namespace []string
	Closing   []string
}

var (
	cppTmpl = template.Must(template.New("gen-cpp").Parse(cppData))
	goTmpl  = template.Must(template.New("gen-go").Parse(goData))
)

const (
	cppData = `// Auto-generated from {{ .Source }}
#pragma once

{{ range .Namespace }}namespace {{ . }} {
{{ end }}
inline const char* {{ .Name }} = R"{{ .Delimiter }}(
{{ .Content }}
){{ .Delimiter }}";

{{ range .Closing }}} // namespace {{ . }}
{{ end }}`

	goData = `// Code generated by rufus-embed from {{ .Source }}. DO NOT EDIT.

package {{ .Package }}

// {{ .Name }} holds the contents of {{ .Source }}.
//
// Fingerprint: {{ .Delimiter }}
const {{ .Name }} = {{ .Quoted }}
`
)
