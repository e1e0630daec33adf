package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstantRate(t *testing.T) {
	fn := ConstantRate(3)
	assert.Equal(t, 3.0, fn(0))
	assert.Equal(t, 3.0, fn(100))
}

func TestLinearRate(t *testing.T) {
	fn := LinearRate(0.120, 6)
	assert.Equal(t, 6.0, fn(0))
	assert.InDelta(t, 7.2, fn(10), 1e-9)
}

func TestExponentialRate(t *testing.T) {
	fn := ExponentialRate(0.0344, 4)
	assert.Equal(t, 5.0, fn(0)) // exp(0) + 4
	assert.InDelta(t, 5.41058, fn(10), 1e-4)
}

func TestRateSpec_Build_AllKinds(t *testing.T) {
	cases := []struct {
		spec RateSpec
		n    int
		want float64
	}{
		{RateSpec{Kind: "constant", Seconds: 2}, 5, 2.0},
		{RateSpec{Kind: "linear", Slope: 1, Intercept: 4}, 3, 7.0},
		{RateSpec{Kind: "exponential", Scale: 0, Offset: 4}, 9, 5.0},
	}
	for _, c := range cases {
		fn, err := c.spec.Build()
		require.NoError(t, err, "Build(%+v)", c.spec)
		assert.InDelta(t, c.want, fn(c.n), 1e-9, "spec %+v at n=%d", c.spec, c.n)
	}
}

func TestRateSpec_Build_UnknownKind(t *testing.T) {
	_, err := RateSpec{Kind: "quadratic"}.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown rate kind")
}
