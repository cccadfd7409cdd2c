package source

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"path"
	"strings"

	"github.com/klauspost/compress/gzip"
	"gopkg.in/yaml.v3"
)

var gzipMagic = []byte{0x1f, 0x8b}

// Format is the serialization of a document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatOf guesses the format of a document from its location. The .gz
// suffix is ignored.
func FormatOf(location string) Format {
	name := strings.TrimSuffix(strings.ToLower(location), ".gz")
	switch path.Ext(name) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode turns the contents of a document into an input for
// horizon.Validator. Gzip streams are inflated first.
func Decode(location string, blob []byte) (interface{}, error) {
	if bytes.HasPrefix(blob, gzipMagic) {
		r, err := gzip.NewReader(bytes.NewReader(blob))
		if err != nil {
			return nil, fmt.Errorf("error opening gzip stream: %w", err)
		}
		defer r.Close()
		if blob, err = ioutil.ReadAll(r); err != nil {
			return nil, fmt.Errorf("error inflating gzip stream: %w", err)
		}
	}

	if FormatOf(location) == FormatJSON {
		return json.RawMessage(blob), nil
	}

	var doc interface{}
	if err := yaml.Unmarshal(blob, &doc); err != nil {
		return nil, fmt.Errorf("error decoding YAML: %w", err)
	}
	if _, ok := doc.(map[string]interface{}); !ok && doc != nil {
		return nil, fmt.Errorf("YAML document should be a mapping with string keys, got %T", doc)
	}
	return doc, nil
}
