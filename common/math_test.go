package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirection(t *testing.T) {
	cases := []struct {
		name           string
		fx, fy, tx, ty float64
		wantX, wantY   float64
	}{
		{"right", 0, 0, 10, 0, 1, 0},
		{"up_left", 5, 5, 2, 1, -0.6, -0.8},
		{"coincident", 3, 3, 3, 3, 0, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			x, y := Direction(c.fx, c.fy, c.tx, c.ty)
			assert.InDelta(t, c.wantX, x, 1e-9)
			assert.InDelta(t, c.wantY, y, 1e-9)
			assert.False(t, math.IsNaN(x) || math.IsNaN(y))
		})
	}
}

func TestSign(t *testing.T) {
	assert.Equal(t, 1.0, Sign(0.2))
	assert.Equal(t, -1.0, Sign(-7))
	assert.Equal(t, 0.0, Sign(0))
}
