package horizon

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	v, err := NewValidator(nil, m)
	require.NoError(t, err)

	_, err = v.Validate(RecordTypeCentroid, `{"pointLongitude": 1, "pointLatitude": 2}`)
	require.NoError(t, err)
	_, err = v.Validate(RecordTypeCentroid, `{"pointLongitude": "east"}`)
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.validations.WithLabelValues("Centroid", "valid")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.validations.WithLabelValues("Centroid", "invalid")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.violations.WithLabelValues("Centroid", "missing_required")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.violations.WithLabelValues("Centroid", "type_mismatch")))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := []string{}
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.ElementsMatch(t, []string{"horizon_validations_total", "horizon_violations_total"}, names)
}

func TestMetrics_Unregistered(t *testing.T) {
	t.Parallel()

	m := NewMetrics(nil)
	m.observe(RecordTypeEntity, nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.validations.WithLabelValues("Entity", "valid")))
}
