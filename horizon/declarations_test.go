package horizon

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// jsonFields lists the struct fields of a type by JSON name, embedded
// structs flattened.
func jsonFields(typ reflect.Type) map[string]reflect.StructField {
	fields := map[string]reflect.StructField{}
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if f.Anonymous {
			for k, v := range jsonFields(f.Type) {
				fields[k] = v
			}
			continue
		}
		fields[strings.Split(f.Tag.Get("json"), ",")[0]] = f
	}
	return fields
}

// Struct tags and declarations describe the same fields.
func TestDeclarationsMatchStructs(t *testing.T) {
	t.Parallel()

	require.Len(t, RecordTypes(), 20)

	for _, rt := range RecordTypes() {
		rec, err := NewRecord(rt)
		require.NoError(t, err)
		assert.Equal(t, rt, rec.RecordType())

		tags := jsonFields(reflect.TypeOf(rec).Elem())
		fields := mustFields(rt)
		assert.Len(t, tags, len(fields), "%s", rt)
		for _, f := range fields {
			sf, ok := tags[f.Name]
			if !assert.True(t, ok, "%s.%s has no struct field", rt, f.Name) {
				continue
			}
			omitempty := strings.Contains(sf.Tag.Get("json"), ",omitempty")
			assert.Equal(t, !f.Required, omitempty, "%s.%s omitempty", rt, f.Name)
			if f.List && !f.Required {
				// An empty list must survive encoding.
				assert.Equal(t, reflect.Ptr, sf.Type.Kind(), "%s.%s", rt, f.Name)
			}
		}
	}
}

func TestDeclarations(t *testing.T) {
	t.Parallel()

	for _, d := range declarations {
		if d.Extends != "" {
			_, err := Lookup(d.Extends)
			assert.NoError(t, err, "%s extends %s", d.Type, d.Extends)
		}
		seen := map[string]bool{}
		for _, f := range mustFields(d.Type) {
			assert.False(t, seen[f.Name], "%s.%s declared twice", d.Type, f.Name)
			seen[f.Name] = true
			switch f.Kind {
			case KindEnum:
				assert.NotEmpty(t, f.Enum, "%s.%s", d.Type, f.Name)
				if f.Default != nil {
					assert.Contains(t, f.Enum, f.Default, "%s.%s", d.Type, f.Name)
				}
			case KindRecord:
				_, err := Lookup(f.Record)
				assert.NoError(t, err, "%s.%s", d.Type, f.Name)
			}
			if f.NonEmpty {
				assert.True(t, f.List && f.Required, "%s.%s", d.Type, f.Name)
			}
		}
	}

	fields, err := Fields(RecordTypeContributor)
	require.NoError(t, err)
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	assert.Equal(t, []string{
		"entity_id", "name", "nameType", "nameIdentifier", "email",
		"position", "affiliation", "affiliationIdentifier",
		"contributorType",
	}, names)

	_, err = Fields("Article")
	assert.EqualError(t, err, `unknown record type "Article"`)
	_, err = NewRecord("Article")
	assert.EqualError(t, err, `unknown record type "Article"`)
}

func TestFieldKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "date-time", KindDateTime.String())
	assert.Equal(t, "record", KindRecord.String())
	assert.Equal(t, "unknown", FieldKind(0).String())
}
