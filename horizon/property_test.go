package horizon_test

import (
	"encoding/json"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/horizon-catalog/datamodel/horizon"
)

func properties() *gopter.Properties {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	return gopter.NewProperties(parameters)
}

func TestProperties_CatalogedResource(t *testing.T) {
	v := newValidator(t)
	props := properties()

	props.Property("strings survive a round-trip", prop.ForAll(
		func(title, description, identifier string) bool {
			doc := skeleton(t, horizon.RecordTypeCatalogedResource)
			doc["title"] = title
			doc["description"] = description
			doc["usgsIdentifier"] = identifier

			rec := &horizon.CatalogedResource{}
			if err := v.Decode(doc, rec); err != nil {
				return false
			}
			blob, err := json.Marshal(rec)
			if err != nil {
				return false
			}
			again := &horizon.CatalogedResource{}
			if err := v.Decode(blob, again); err != nil {
				return false
			}
			return rec.Title == title && rec.Description == description && cmp.Equal(rec, again)
		},
		gen.AnyString(),
		gen.AlphaString(),
		gen.Identifier(),
	))

	props.Property("schemeless identifiers are malformed URIs", prop.ForAll(
		func(host, path string) bool {
			doc := skeleton(t, horizon.RecordTypeCatalogedResource)
			doc["identifier"] = host + ".org/" + path
			_, err := v.Validate(horizon.RecordTypeCatalogedResource, doc)
			verr, ok := err.(horizon.ValidationError)
			return ok && verr.Has("identifier", horizon.ReasonMalformedURI)
		},
		gen.Identifier(),
		gen.AlphaString(),
	))

	props.Property("http identifiers are accepted", prop.ForAll(
		func(host, path string) bool {
			doc := skeleton(t, horizon.RecordTypeCatalogedResource)
			doc["identifier"] = "https://" + strings.ToLower(host) + ".org/" + path
			_, err := v.Validate(horizon.RecordTypeCatalogedResource, doc)
			return err == nil
		},
		gen.Identifier(),
		gen.AlphaString(),
	))

	props.TestingRun(t)
}

func TestProperties_Coercion(t *testing.T) {
	v := newValidator(t)
	props := properties()

	props.Property("numeric strings are integers", prop.ForAll(
		func(n int64) bool {
			doc := skeleton(t, horizon.RecordTypeCreator)
			doc["position"] = strconv.FormatInt(n, 10)
			rec := &horizon.Creator{}
			if err := v.Decode(doc, rec); err != nil {
				return false
			}
			return rec.Position == n
		},
		gen.Int64Range(-1<<40, 1<<40),
	))

	props.Property("coordinates keep their value", prop.ForAll(
		func(lon, lat float64) bool {
			rec := &horizon.Centroid{}
			err := v.Decode(map[string]interface{}{
				"pointLongitude": strconv.FormatFloat(lon, 'g', -1, 64),
				"pointLatitude":  lat,
			}, rec)
			return err == nil && rec.PointLongitude == lon && rec.PointLatitude == lat
		},
		gen.Float64Range(-180, 180),
		gen.Float64Range(-90, 90),
	))

	props.TestingRun(t)
}

func TestProperties_Timestamp(t *testing.T) {
	props := properties()

	props.Property("formatted timestamps parse back", prop.ForAll(
		func(sec int64, nsec int64) bool {
			ts := horizon.Timestamp(time.Unix(sec, nsec).UTC())
			parsed, err := horizon.ParseTimestamp(ts.String())
			return err == nil && parsed.Equal(ts)
		},
		gen.Int64Range(0, 253402300799),
		gen.Int64Range(0, 999999999),
	))

	props.TestingRun(t)
}
