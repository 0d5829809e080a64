package recordlink

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBlockingMethod(t *testing.T) {
	for _, m := range []BlockingMethod{None, Canopies, Lego} {
		got, err := ParseBlockingMethod(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	got, err := ParseBlockingMethod("LEGO")
	require.NoError(t, err)
	assert.Equal(t, Lego, got)

	_, err = ParseBlockingMethod("sorted-neighbourhood")
	assert.ErrorIs(t, err, ErrInvalidBlocking)
}

func TestTightThreshold(t *testing.T) {
	tests := []struct {
		policy TightThreshold
		want   float64
	}{
		{Inverse, 0.01},
		{InverseSqrt, 0.1},
		{InverseLog, 1 / math.Log(100)},
	}
	for _, tt := range tests {
		t.Run(tt.policy.String(), func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.policy.Value(100), 1e-12)

			parsed, err := ParseTightThreshold(tt.policy.String())
			require.NoError(t, err)
			assert.Equal(t, tt.policy, parsed)
		})
	}

	_, err := ParseTightThreshold("half")
	assert.ErrorIs(t, err, ErrInvalidTightThreshold)
}
