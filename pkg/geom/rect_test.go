package geom

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"identical", Rect{0, 0, 10, 10}, Rect{0, 0, 10, 10}, true},
		{"contained", Rect{0, 0, 10, 10}, Rect{2, 2, 3, 3}, true},
		{"touching edge", Rect{0, 0, 10, 10}, Rect{10, 0, 5, 5}, true},
		{"touching corner", Rect{0, 0, 10, 10}, Rect{10, 10, 5, 5}, true},
		{"apart horizontally", Rect{0, 0, 10, 10}, Rect{10.5, 0, 5, 5}, false},
		{"apart vertically", Rect{0, 0, 10, 10}, Rect{0, -6, 5, 5}, false},
		{"thin bullet through wide enemy", Rect{48, 20, 4, 12}, Rect{38, 25, 24, 18}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.a, tt.b))
		})
	}
}

func TestOverlapsIsSymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	randRect := func() Rect {
		return Rect{
			X: rng.Float64()*200 - 100,
			Y: rng.Float64()*200 - 100,
			W: rng.Float64() * 60,
			H: rng.Float64() * 60,
		}
	}
	for i := 0; i < 5000; i++ {
		a, b := randRect(), randRect()
		assert.Equal(t, Overlaps(a, b), Overlaps(b, a), "a=%+v b=%+v", a, b)
	}
}

func TestRectFromCenter(t *testing.T) {
	r := RectFromCenter(100, 50, 28, 18)
	assert.Equal(t, Rect{X: 86, Y: 41, W: 28, H: 18}, r)
	assert.True(t, r.Contains(100, 50))
	assert.False(t, r.Contains(115, 50))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5.0, Clamp(5, 0, 10))
	assert.Equal(t, 0.0, Clamp(-3, 0, 10))
	assert.Equal(t, 10.0, Clamp(12, 0, 10))
}
