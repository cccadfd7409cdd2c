package horizon

import (
	"fmt"
	"math"
	"net"
	"net/url"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonreference"
	"github.com/xeipuuv/gojsonschema"
)

const (
	schemaDraft = "http://json-schema.org/draft-07/schema#"

	// formatDateTime accepts the ISO-8601 forms of ParseTimestamp. The
	// bundled RFC 3339 "date-time" checker is left alone.
	formatDateTime = "iso8601-date-time"

	// formatHTTPURL accepts absolute http and https URLs.
	formatHTTPURL = "http-url"

	maxURLLength = 2083
)

func init() {
	gojsonschema.FormatCheckers.Add(formatDateTime, dateTimeChecker{})
	gojsonschema.FormatCheckers.Add(formatHTTPURL, httpURLChecker{})
}

type dateTimeChecker struct{}

// IsFormat implements gojsonschema.FormatChecker. Non-strings are left to the
// type keyword.
func (dateTimeChecker) IsFormat(input interface{}) bool {
	s, ok := input.(string)
	if !ok {
		return true
	}
	_, err := ParseTimestamp(s)
	return err == nil
}

type httpURLChecker struct{}

// IsFormat implements gojsonschema.FormatChecker.
func (httpURLChecker) IsFormat(input interface{}) bool {
	s, ok := input.(string)
	if !ok {
		return true
	}
	return IsHTTPURL(s)
}

// IsHTTPURL reports whether s is an absolute http or https URL. The host is
// an IP address or a domain name with a top-level domain.
func IsHTTPURL(s string) bool {
	if s == "" || len(s) > maxURLLength {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	host := u.Hostname()
	if net.ParseIP(host) != nil {
		return true
	}
	i := strings.LastIndexByte(host, '.')
	return i > 0 && i < len(host)-1
}

// Schema returns the JSON Schema document of a record type. Inherited fields
// are flattened into the document and nested record types are kept under
// "definitions".
func Schema(rt RecordType) (map[string]interface{}, error) {
	root, err := recordSchema(rt)
	if err != nil {
		return nil, err
	}
	definitions := map[string]interface{}{}
	if err := collectDefinitions(rt, definitions); err != nil {
		return nil, err
	}
	root["$schema"] = schemaDraft
	root["title"] = string(rt)
	if len(definitions) > 0 {
		root["definitions"] = definitions
	}
	return root, nil
}

func recordSchema(rt RecordType) (map[string]interface{}, error) {
	d, err := Lookup(rt)
	if err != nil {
		return nil, err
	}
	fields, err := Fields(rt)
	if err != nil {
		return nil, err
	}
	properties := make(map[string]interface{}, len(fields))
	required := []string{}
	for _, f := range fields {
		prop, err := fieldSchema(f)
		if err != nil {
			return nil, fmt.Errorf("field %s.%s: %w", rt, f.Name, err)
		}
		properties[f.Name] = prop
		if f.Required {
			required = append(required, f.Name)
		}
	}
	schema := map[string]interface{}{
		"type":        "object",
		"description": d.Description,
		"properties":  properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema, nil
}

func fieldSchema(f Field) (map[string]interface{}, error) {
	var item map[string]interface{}
	switch f.Kind {
	case KindString:
		item = map[string]interface{}{"type": "string"}
	case KindInteger:
		item = map[string]interface{}{
			"type":    "integer",
			"minimum": int64(math.MinInt64),
			"maximum": int64(math.MaxInt64),
		}
	case KindFloat:
		item = map[string]interface{}{"type": "number"}
	case KindBoolean:
		item = map[string]interface{}{"type": "boolean"}
	case KindDateTime:
		item = map[string]interface{}{"type": "string", "format": formatDateTime}
	case KindURI:
		item = map[string]interface{}{"type": "string", "format": formatHTTPURL}
	case KindEnum:
		values := make([]interface{}, len(f.Enum))
		for i, v := range f.Enum {
			values[i] = v
		}
		item = map[string]interface{}{"type": "string", "enum": values}
	case KindRecord:
		ref, err := definitionRef(f.Record)
		if err != nil {
			return nil, err
		}
		item = map[string]interface{}{"$ref": ref}
	default:
		return nil, fmt.Errorf("unsupported kind %s", f.Kind)
	}
	if f.Default != nil {
		item["default"] = f.Default
	}
	if !f.List {
		if f.Description != "" && f.Kind != KindRecord {
			item["description"] = f.Description
		}
		return item, nil
	}
	list := map[string]interface{}{
		"type":  "array",
		"items": item,
	}
	if f.Description != "" {
		list["description"] = f.Description
	}
	if f.NonEmpty {
		list["minItems"] = 1
	}
	return list, nil
}

func definitionRef(rt RecordType) (string, error) {
	ref, err := gojsonreference.NewJsonReference("#/definitions/" + string(rt))
	if err != nil {
		return "", err
	}
	return ref.String(), nil
}

// collectDefinitions adds every record type reachable from rt.
func collectDefinitions(rt RecordType, definitions map[string]interface{}) error {
	fields, err := Fields(rt)
	if err != nil {
		return err
	}
	nested := []RecordType{}
	for _, f := range fields {
		if f.Kind == KindRecord {
			nested = append(nested, f.Record)
		}
	}
	sort.Slice(nested, func(i, j int) bool { return nested[i] < nested[j] })
	for _, n := range nested {
		if _, ok := definitions[string(n)]; ok {
			continue
		}
		schema, err := recordSchema(n)
		if err != nil {
			return err
		}
		definitions[string(n)] = schema
		if err := collectDefinitions(n, definitions); err != nil {
			return err
		}
	}
	return nil
}
