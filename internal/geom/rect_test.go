package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLerp(t *testing.T) {
	a := Rect{X: 0, Y: 100, W: 10, H: 10}
	b := Rect{X: 10, Y: 0, W: 20, H: 10}

	assert.Equal(t, a, Lerp(a, b, 0))
	assert.Equal(t, b, Lerp(a, b, 1))
	assert.Equal(t, Rect{X: 5, Y: 50, W: 15, H: 10}, Lerp(a, b, 0.5))
	// overshoot past the destination is allowed
	assert.Equal(t, -10.0, Lerp(a, b, 1.1).Y)
}

func TestRect_Round(t *testing.T) {
	x, y, w, h := Rect{X: 1.4, Y: 2.5, W: 9.6, H: 0.2}.Round()
	assert.Equal(t, []int{1, 3, 10, 0}, []int{x, y, w, h})
}

func TestRect_Helpers(t *testing.T) {
	r := Rect{X: 1, Y: 2, W: 3, H: 4}
	assert.Equal(t, 4.0, r.MaxX())
	assert.Equal(t, 6.0, r.MaxY())
	assert.Equal(t, Rect{X: 1, Y: 9, W: 3, H: 4}, r.WithY(9))
	assert.Equal(t, Rect{X: 1, Y: 2, W: 3, H: 7}, r.WithH(7))
	assert.Equal(t, Rect{X: 2, Y: 0, W: 3, H: 4}, r.Offset(1, -2))
	assert.False(t, r.Empty())
	assert.True(t, Rect{W: 0, H: 5}.Empty())
}
