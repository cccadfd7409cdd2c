//go:build ignore
// +build ignore

// This program generates enumeration_gen.go from enumeration.json.
// Invoke it with `go generate`.
package main

import (
	"bytes"
	"encoding/json"
	"go/format"
	"io/ioutil"
	"log"
	"text/template"
)

type enumValue struct {
	ID      string `json:"id"`
	Literal string `json:"literal"`
}

type enumeration struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Values      []enumValue `json:"values"`
}

var tmpl = template.Must(template.New("").Parse(`// Code generated by generator.go; DO NOT EDIT.

package horizon

import (
	"encoding/json"
	"fmt"
)
{{ range . }}
// {{ .Description }}
type {{ .Name }} int

const (
	_ {{ .Name }} = iota
{{- range .Values }}
	{{ $.Name }}_{{ .ID }}
{{- end }}
)

var _{{ .Name }}ValueToName = map[{{ .Name }}]string{
{{- range .Values }}
	{{ $.Name }}_{{ .ID }}: {{ printf "%q" .Literal }},
{{- end }}
}

var _{{ .Name }}NameToValue = map[string]{{ .Name }}{
{{- range .Values }}
	{{ printf "%q" .Literal }}: {{ $.Name }}_{{ .ID }},
{{- end }}
}

// {{ .Name }}Values returns the wire literals in declaration order.
func {{ .Name }}Values() []string {
	return []string{
{{- range .Values }}
		{{ printf "%q" .Literal }},
{{- end }}
	}
}

func (t {{ .Name }}) String() string {
	return _{{ .Name }}ValueToName[t]
}

// MarshalJSON implements json.Marshaler.
func (t {{ .Name }}) MarshalJSON() ([]byte, error) {
	s, ok := _{{ .Name }}ValueToName[t]
	if !ok {
		return nil, fmt.Errorf("invalid {{ .Name }}: %d", t)
	}
	return json.Marshal(s)
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *{{ .Name }}) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("{{ .Name }} should be a string, got %s", data)
	}
	v, ok := _{{ .Name }}NameToValue[s]
	if !ok {
		return fmt.Errorf("invalid {{ .Name }} %q", s)
	}
	*t = v
	return nil
}
{{ end }}`))

func main() {
	blob, err := ioutil.ReadFile("enumeration.json")
	if err != nil {
		log.Fatal(err)
	}
	var enums []enumeration
	if err := json.Unmarshal(blob, &enums); err != nil {
		log.Fatal(err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, enums); err != nil {
		log.Fatal(err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatal(err)
	}
	if err := ioutil.WriteFile("enumeration_gen.go", src, 0644); err != nil {
		log.Fatal(err)
	}
}
