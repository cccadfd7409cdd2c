package source

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlDocument = `
name: U.S. Geological Survey
nameType: Organizational
`

func gzipped(t *testing.T, s string) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return buf.Bytes()
}

func TestFormatOf(t *testing.T) {
	t.Parallel()

	tests := map[string]Format{
		"publisher.json":                    FormatJSON,
		"publisher.JSON.gz":                 FormatJSON,
		"-":                                 FormatJSON,
		"s3://horizon/publisher.yaml":       FormatYAML,
		"https://example.com/publisher.yml": FormatYAML,
		"/releases/publisher.yml.gz":        FormatYAML,
	}
	for location, want := range tests {
		assert.Equal(t, want, FormatOf(location), location)
	}
}

func TestDecode(t *testing.T) {
	t.Parallel()

	want := map[string]interface{}{
		"name":     "U.S. Geological Survey",
		"nameType": "Organizational",
	}

	tests := map[string]struct {
		location string
		blob     []byte
	}{
		"JSON":         {"publisher.json", []byte(document)},
		"Gzipped JSON": {"publisher.json.gz", gzipped(t, document)},
		"YAML":         {"publisher.yaml", []byte(yamlDocument)},
		"Gzipped YAML": {"publisher.yml.gz", gzipped(t, yamlDocument)},
	}
	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			doc, err := Decode(tc.location, tc.blob)
			require.NoError(t, err)

			blob, err := json.Marshal(doc)
			require.NoError(t, err)
			have := map[string]interface{}{}
			require.NoError(t, json.Unmarshal(blob, &have))
			assert.Equal(t, want, have)
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()

	_, err := Decode("publisher.yaml", []byte("- a\n- b\n"))
	assert.EqualError(t, err, "YAML document should be a mapping with string keys, got []interface {}")

	_, err = Decode("publisher.yaml", []byte("name: [unbalanced"))
	assert.Error(t, err)

	_, err = Decode("publisher.json.gz", []byte{0x1f, 0x8b, 0x00})
	assert.Error(t, err)
}
