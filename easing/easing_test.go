package easing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-1))
	assert.Equal(t, 0.0, Clamp(0))
	assert.Equal(t, 0.5, Clamp(0.5))
	assert.Equal(t, 1.0, Clamp(1))
	assert.Equal(t, 1.0, Clamp(2.5))
}

func TestCurveEndpoints(t *testing.T) {
	curves := map[string]Curve{
		"linear":     Linear,
		"inQuad":     InQuad,
		"outQuad":    OutQuad,
		"inOutCubic": InOutCubic,
	}

	for name, curve := range curves {
		assert.Equal(t, 0.0, curve(0), "%s at 0", name)
		assert.Equal(t, 1.0, curve(1), "%s at 1", name)
		assert.Equal(t, 0.0, curve(-3), "%s clamps below", name)
		assert.Equal(t, 1.0, curve(9), "%s clamps above", name)
	}
}

func TestCurvesAreMonotonic(t *testing.T) {
	curves := map[string]Curve{
		"linear":     Linear,
		"inQuad":     InQuad,
		"outQuad":    OutQuad,
		"inOutCubic": InOutCubic,
	}

	for name, curve := range curves {
		prev := curve(0)
		for i := 1; i <= 100; i++ {
			v := curve(float64(i) / 100)
			assert.GreaterOrEqual(t, v, prev, "%s at step %d", name, i)
			prev = v
		}
	}
}

func TestInOutCubicMidpoint(t *testing.T) {
	assert.InDelta(t, 0.5, InOutCubic(0.5), 1e-9)
}
