package horizon

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalize(t *testing.T) {
	t.Parallel()

	want := map[string]interface{}{"position": json.Number("1"), "name": "x"}

	tests := map[string]struct {
		input interface{}
	}{
		"Bytes":       {[]byte(`{"position": 1, "name": "x"}`)},
		"Raw message": {json.RawMessage(`{"position": 1, "name": "x"}`)},
		"String":      {`{"position": 1, "name": "x"}`},
		"Map":         {map[string]interface{}{"position": 1, "name": "x"}},
		"Struct": {struct {
			Position int    `json:"position"`
			Name     string `json:"name"`
		}{1, "x"}},
	}
	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			have, err := canonicalize(tc.input)
			require.NoError(t, err)
			assert.Equal(t, want, have)
		})
	}

	have, err := canonicalize(nil)
	assert.NoError(t, err)
	assert.Nil(t, have)

	_, err = canonicalize(func() {})
	assert.EqualError(t, err, "error encoding input: json: unsupported type: func()")
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		rt   RecordType
		in   string
		want map[string]interface{}
	}{
		"Defaults applied when absent": {
			rt: RecordTypeDataRelease,
			in: `{}`,
			want: map[string]interface{}{
				"status":          "Created",
				"usgsReleaseType": "Data Release",
			},
		},
		"Nulls kept when a default exists": {
			rt: RecordTypeDataRelease,
			in: `{"status": null}`,
			want: map[string]interface{}{
				"status":          nil,
				"usgsReleaseType": "Data Release",
			},
		},
		"Optional nulls dropped": {
			rt:   RecordTypeEntity,
			in:   `{"name": null, "email": null}`,
			want: map[string]interface{}{"name": nil},
		},
		"Strings coerced": {
			rt: RecordTypeDistribution,
			in: `{"byteSize": "12", "useForPreview": "false"}`,
			want: map[string]interface{}{
				"byteSize":      json.Number("12"),
				"useForPreview": false,
			},
		},
		"Whole floats turned into integers": {
			rt:   RecordTypeCreator,
			in:   `{"position": 5.0}`,
			want: map[string]interface{}{"position": json.Number("5")},
		},
		"Numbers in strings": {
			rt: RecordTypeDistribution,
			in: `{"name": 42, "title": 1.5}`,
			want: map[string]interface{}{
				"name":  "42",
				"title": "1.5",
			},
		},
		"Zero and one in booleans": {
			rt:   RecordTypeDistribution,
			in:   `{"useForPreview": 1}`,
			want: map[string]interface{}{"useForPreview": true},
		},
		"Other numbers in booleans left untouched": {
			rt:   RecordTypeDistribution,
			in:   `{"useForPreview": 2}`,
			want: map[string]interface{}{"useForPreview": json.Number("2")},
		},
		"Exponent integers rewritten": {
			rt:   RecordTypeCreator,
			in:   `{"position": 1e3}`,
			want: map[string]interface{}{"position": json.Number("1000")},
		},
		"Integers beyond int64 left untouched": {
			rt:   RecordTypeCreator,
			in:   `{"position": 1e20}`,
			want: map[string]interface{}{"position": json.Number("1e20")},
		},
		"Nested records and lists": {
			rt: RecordTypeComponent,
			in: `{"distribution": [{"byteSize": "7", "checksum": null}]}`,
			want: map[string]interface{}{
				"distribution": []interface{}{
					map[string]interface{}{"byteSize": json.Number("7")},
				},
			},
		},
		"Unknown keys kept": {
			rt:   RecordTypeCentroid,
			in:   `{"elevation": "high"}`,
			want: map[string]interface{}{"elevation": "high"},
		},
		"Unusable values left untouched": {
			rt:   RecordTypeCentroid,
			in:   `{"pointLatitude": "north", "pointLongitude": "NaN"}`,
			want: map[string]interface{}{"pointLatitude": "north", "pointLongitude": "NaN"},
		},
	}
	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			tree, err := canonicalize(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, normalize(tc.rt, tree))
		})
	}
}

func TestIntegral(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"42":                   "42",
		"-3.000":               "-3",
		"2.5e1":                "25",
		"9.007199254740993e15": "9007199254740993",
		"1.5":                  "1.5",
		"9223372036854775808":  "9223372036854775808",
		"-1e19":                "-1e19",
	}
	for in, want := range tests {
		assert.Equal(t, json.Number(want), integral(json.Number(in)), in)
	}
}

func TestInvalidUTF8(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input interface{}
		want  []string
	}{
		"Valid bytes":   {[]byte(`{"name": "café"}`), nil},
		"Invalid bytes": {[]byte("{\"name\": \"\xff\"}"), []string{""}},
		"Invalid raw":   {json.RawMessage("\"\xff\""), []string{""}},
		"Invalid text":  {"\"\xff\"", []string{""}},
		"Tree": {map[string]interface{}{
			"title": "ok",
			"name":  "\xfe",
			"creator": []interface{}{
				map[string]interface{}{"name": "\xff"},
			},
			"tags": []string{"a", "\xff"},
		}, []string{"creator.0.name", "name", "tags.1"}},
		"Other values": {struct{ Name string }{"\xff"}, nil},
	}
	for name, tc := range tests {
		assert.Equal(t, tc.want, invalidUTF8(tc.input), name)
	}
}

func TestLintPath(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"DataRelease.Dataset.creator[0].Entity.email":                   "creator.0.email",
		"Dataset.distribution[1].checksum.checksumValue":                "distribution.1.checksum.checksumValue",
		"DataRelease.Dataset.CatalogedResource.title":                   "title",
		"Dataset.component[0].distribution[2].mediaType":                "component.0.distribution.2.mediaType",
		"Contributor.Creator.position":                                  "position",
		"DataRelease.Dataset.qualifiedAttribution.Creator.Entity.email": "qualifiedAttribution.email",
	}
	for namespace, want := range tests {
		assert.Equal(t, want, lintPath(namespace), namespace)
	}
}
