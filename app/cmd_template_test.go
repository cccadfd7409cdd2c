package app

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/horizon-catalog/datamodel/horizon"
	"github.com/horizon-catalog/datamodel/source"
)

func TestTemplate(t *testing.T) {
	now := time.Date(2024, time.February, 1, 10, 0, 0, 0, time.UTC)

	for _, rt := range horizon.RecordTypes() {
		for _, format := range []string{"json", "yaml"} {
			var out bytes.Buffer
			require.NoError(t, doTemplate(&out, string(rt), format, now), "%s as %s", rt, format)

			input, err := source.Decode("template."+format, out.Bytes())
			require.NoError(t, err)
			rec, err := horizon.NewRecord(rt)
			require.NoError(t, err)
			assert.NoError(t, horizon.Decode(input, rec), "%s as %s: %s", rt, format, out.String())
		}
	}
}

func TestTemplate_Identifier(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, doTemplate(&out, "CatalogedResource", "json", time.Now()))

	doc := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	_, err := uuid.Parse(doc["usgsIdentifier"].(string))
	assert.NoError(t, err)

	out.Reset()
	require.NoError(t, doTemplate(&out, "Entity", "json", time.Now()))
	assert.NotContains(t, out.String(), "usgsIdentifier")
}

func TestTemplate_Errors(t *testing.T) {
	assert.EqualError(t, doTemplate(&bytes.Buffer{}, "Entity", "xml", time.Now()), `unknown document format "xml"`)
	assert.Error(t, doTemplate(&bytes.Buffer{}, "Article", "json", time.Now()))
}

func TestTemplateCommand(t *testing.T) {
	out, err := execute(t, nil, "template", "-t", "Checksum")
	require.NoError(t, err)
	assert.JSONEq(t, `{"algorithm": "", "checksumValue": ""}`, out)
	assert.True(t, strings.HasSuffix(out, "}\n"))
}

func TestDescribeCommand(t *testing.T) {
	out, err := execute(t, nil, "describe", "-t", "Dataset")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Dataset: A collection of data"), out)
	for _, want := range []string{"creator", "Creator", "1..n", "0..n, required", "usgsAssetType", "enum(Data, Model, Publication, Software)", "0..1", "date-time"} {
		assert.Contains(t, out, want)
	}

	out, err = execute(t, nil, "describe", "-t", "DataRelease")
	require.NoError(t, err)
	assert.Contains(t, out, "enum(Created, Submitted, Locked, Provisional, ...)")
	assert.Contains(t, out, "Data Release")

	out, err = execute(t, nil, "describe")
	require.NoError(t, err)
	for _, rt := range horizon.RecordTypes() {
		assert.Contains(t, out, string(rt))
	}

	_, err = execute(t, nil, "describe", "-t", "Article")
	assert.Error(t, err)
}

func TestConfigCommand(t *testing.T) {
	out, err := execute(t, nil, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "output")
	assert.Contains(t, out, "text")
}
