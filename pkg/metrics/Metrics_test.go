package metrics

import (
	"errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestCounter(t *testing.T) {
	before := testutil.ToFloat64(RuntimeCalls.Get().WithLabelValues("network", "list", RESULT_SUCCESS))

	RuntimeCalls.Increment("network", "list", RESULT_SUCCESS)

	after := testutil.ToFloat64(RuntimeCalls.Get().WithLabelValues("network", "list", RESULT_SUCCESS))
	assert.Equal(t, before+1, after)
}

func TestGauge(t *testing.T) {
	Resources.Set(3, "volume")

	assert.Equal(t, float64(3), testutil.ToFloat64(Resources.Get().WithLabelValues("volume")))
}

func TestResult(t *testing.T) {
	assert.Equal(t, RESULT_SUCCESS, Result(nil))
	assert.Equal(t, RESULT_ERROR, Result(errors.New("boom")))
}

func TestRegistryGathers(t *testing.T) {
	RuntimeLatency.Observe(0.1, "image", "delete")

	families, err := Registry.Gather()

	assert.NoError(t, err)
	assert.NotEmpty(t, families)
}
