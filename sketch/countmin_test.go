package sketch

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountMin_Dimensions(t *testing.T) {
	cm, err := New(0.01, 0.01)
	require.NoError(t, err)
	// width = ceil(e / 0.01), depth = ceil(ln(100))
	assert.Equal(t, uint64(272), cm.Width())
	assert.Equal(t, 5, cm.Depth())
}

func TestCountMin_InvalidParams(t *testing.T) {
	_, err := New(0, 0.01)
	assert.Error(t, err)
	_, err = New(1.5, 0.01)
	assert.Error(t, err)
	_, err = New(0.01, 0)
	assert.Error(t, err)
	_, err = New(0.01, 1)
	assert.Error(t, err)
}

func TestCountMin_NeverUndercounts(t *testing.T) {
	cm, err := New(0.05, 0.05)
	require.NoError(t, err)

	truth := make(map[string]uint64)
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 5000; i++ {
		key := fmt.Sprintf("key-%d", rng.Intn(50))
		cm.Increment(key)
		truth[key]++
	}

	assert.Equal(t, uint64(5000), cm.TotalCount())
	for key, count := range truth {
		assert.GreaterOrEqual(t, cm.Estimate(key), count, "key %s", key)
	}
}

func TestCountMin_ErrorBound(t *testing.T) {
	errorLimit := 0.01
	errorProbLimit := 0.01
	cm, err := New(errorLimit, errorProbLimit)
	require.NoError(t, err)

	// 200 keys, 5 occurrences each
	numKeys := 200
	perKey := uint64(5)
	for r := uint64(0); r < perKey; r++ {
		for i := 0; i < numKeys; i++ {
			cm.Increment(fmt.Sprintf("key-%d", i))
		}
	}

	n := float64(cm.TotalCount())
	allowed := perKey + uint64(errorLimit*n)
	violations := 0
	for i := 0; i < numKeys; i++ {
		if cm.Estimate(fmt.Sprintf("key-%d", i)) > allowed {
			violations++
		}
	}
	// with probability >= 1 - errorProbLimit per key
	maxViolations := int(errorProbLimit * float64(numKeys))
	if maxViolations < 1 {
		maxViolations = 1
	}
	assert.LessOrEqual(t, violations, maxViolations)
}

func TestCountMin_UnseenKey(t *testing.T) {
	cm, err := New(0.01, 0.01)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), cm.Estimate("never-seen"))
}

func BenchmarkCountMin_Increment(b *testing.B) {
	cm, _ := New(0.001, 0.01)
	for n := 0; n < b.N; n++ {
		cm.Increment("benchmark-key")
	}
}
