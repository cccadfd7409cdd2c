package horizon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/horizon-catalog/datamodel/horizon"
	"github.com/horizon-catalog/datamodel/internal/testutil"
)

func dataRelease(t *testing.T) *horizon.DataRelease {
	t.Helper()

	rec := &horizon.DataRelease{}
	require.NoError(t, horizon.Decode(testutil.Fixture(t, "data_release.json"), rec))

	return rec
}

func TestLint(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		mutate   func(rec *horizon.DataRelease)
		wantPath string
		wantRule string
	}{
		"Uppercase checksum": {
			mutate: func(rec *horizon.DataRelease) {
				rec.Distribution[0].Checksum.ChecksumValue = "9F86D081884C7D659A2FEAA0C55AD015A3BF4F1B2B0B822CD15D6C15B0F00A08"
			},
			wantPath: "distribution.0.checksum.checksumValue",
			wantRule: "lowercase",
		},
		"Checksum is not hexadecimal": {
			mutate: func(rec *horizon.DataRelease) {
				rec.Distribution[0].Checksum.ChecksumValue = "not-a-digest"
			},
			wantPath: "distribution.0.checksum.checksumValue",
			wantRule: "hexadecimal",
		},
		"Unknown checksum algorithm": {
			mutate: func(rec *horizon.DataRelease) {
				rec.Distribution[0].Checksum.Algorithm = "CRC32"
			},
			wantPath: "distribution.0.checksum.algorithm",
			wantRule: "spdx_algorithm",
		},
		"Latitude out of range": {
			mutate: func(rec *horizon.DataRelease) {
				rec.Spatial.Centroid.PointLatitude = 91
			},
			wantPath: "spatial.centroid.pointLatitude",
			wantRule: "latitude",
		},
		"Longitude out of range": {
			mutate: func(rec *horizon.DataRelease) {
				rec.Spatial.BBox.WestBoundLongitude = -190
			},
			wantPath: "spatial.bbox.westBoundLongitude",
			wantRule: "longitude",
		},
		"South bound above north bound": {
			mutate: func(rec *horizon.DataRelease) {
				rec.Spatial.BBox.SouthBoundLatitude = 42
			},
			wantPath: "spatial.bbox.southBoundLatitude",
			wantRule: "ltefield",
		},
		"Malformed email": {
			mutate: func(rec *horizon.DataRelease) {
				rec.Creator[0].Email = horizon.String("jrivera at example.gov")
			},
			wantPath: "creator.0.email",
			wantRule: "email",
		},
		"Creator position below one": {
			mutate: func(rec *horizon.DataRelease) {
				rec.Creator[1].Position = 0
			},
			wantPath: "creator.1.position",
			wantRule: "gte",
		},
		"Duplicated creator position": {
			mutate: func(rec *horizon.DataRelease) {
				rec.Creator[1].Position = 1
			},
			wantPath: "creator.1.position",
			wantRule: "unique_position",
		},
		"Negative byte size": {
			mutate: func(rec *horizon.DataRelease) {
				rec.Distribution[0].ByteSize = horizon.Int64(-1)
			},
			wantPath: "distribution.0.byteSize",
			wantRule: "gte",
		},
		"Malformed media type": {
			mutate: func(rec *horizon.DataRelease) {
				rec.Component[0].Distribution[0].MediaType = horizon.String("geojson")
			},
			wantPath: "component.0.distribution.0.mediaType",
			wantRule: "media_type",
		},
		"Period ends before it starts": {
			mutate: func(rec *horizon.DataRelease) {
				p := &(*rec.Temporal)[0]
				p.StartDate, p.EndDate = p.EndDate, p.StartDate
			},
			wantPath: "temporal.0.endDate",
			wantRule: "period_order",
		},
	}
	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			rec := dataRelease(t)
			tc.mutate(rec)

			warnings := horizon.Lint(rec)
			require.Len(t, warnings, 1, "%v", warnings)
			assert.Equal(t, tc.wantPath, warnings[0].Path)
			assert.Equal(t, tc.wantRule, warnings[0].Rule)
			assert.NotEmpty(t, warnings[0].Message)
		})
	}
}

func TestLint_Clean(t *testing.T) {
	t.Parallel()

	v := newValidator(t)

	assert.Empty(t, v.Lint(dataRelease(t)))
	assert.Empty(t, horizon.Lint(nil))

	rec := &horizon.CatalogedResource{}
	require.NoError(t, v.Decode(testutil.Fixture(t, "cataloged_resource.json"), rec))
	assert.Empty(t, v.Lint(rec))
}

func TestWarning_String(t *testing.T) {
	t.Parallel()

	w := horizon.Warning{Path: "creator.0.email", Rule: "email", Message: "x is not a valid email address"}
	assert.Equal(t, "creator.0.email: x is not a valid email address", w.String())
}
