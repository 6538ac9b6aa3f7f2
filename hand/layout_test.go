package hand

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayoutRect(t *testing.T) {
	l := Layout{Top: 10, Height: 100, Gap: 5}
	assert.Equal(t, Rect{Top: 10, Bottom: 110}, l.Rect(0))
	assert.Equal(t, Rect{Top: 220, Bottom: 320}, l.Rect(2))
	assert.Equal(t, 100.0, l.Rect(4).Height())
}

func TestLayoutHitTest(t *testing.T) {
	l := Layout{Top: 10, Height: 100, Gap: 5}
	tests := []struct {
		y    float64
		want int
	}{
		{5, -1},
		{10, 0},
		{109.5, 0},
		{112, -1},
		{115, 1},
		{300, 2},
		{330, -1},
		{440, -1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, l.HitTest(tt.y, 3), "y=%v", tt.y)
	}
	assert.Equal(t, -1, Layout{}.HitTest(0, 3))
}
