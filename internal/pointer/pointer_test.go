package pointer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectContains(t *testing.T) {
	r := Rect{X: 2, Y: 1, W: 3, H: 2}
	assert.True(t, r.Contains(Point{X: 2, Y: 1}))
	assert.True(t, r.Contains(Point{X: 4, Y: 2}))
	assert.False(t, r.Contains(Point{X: 5, Y: 1}))
	assert.False(t, r.Contains(Point{X: 2, Y: 3}))
	assert.False(t, Rect{}.Contains(Point{}))
	assert.True(t, Rect{}.Empty())
}

func TestDispatchFiresOnlyOutsideBounds(t *testing.T) {
	hub := NewHub()
	region := []Rect{{X: 0, Y: 0, W: 10, H: 1}, {X: 0, Y: 1, W: 10, H: 3}}
	var clicks []Point
	sub := hub.Subscribe(func() []Rect { return region }, func(p Point) { clicks = append(clicks, p) })
	defer sub.Release()

	assert.Equal(t, 0, hub.Dispatch(Point{X: 3, Y: 2}))
	assert.Equal(t, 1, hub.Dispatch(Point{X: 20, Y: 2}))
	require.Len(t, clicks, 1)
	assert.Equal(t, Point{X: 20, Y: 2}, clicks[0])

	region = nil
	assert.Equal(t, 1, hub.Dispatch(Point{X: 3, Y: 2}))
}

func TestReleaseIsIdempotent(t *testing.T) {
	hub := NewHub()
	a := hub.Subscribe(nil, func(Point) {})
	b := hub.Subscribe(nil, func(Point) {})
	require.Equal(t, 2, hub.Len())
	assert.NotEqual(t, a.ID(), b.ID())

	a.Release()
	a.Release()
	assert.Equal(t, 1, hub.Len())

	b.Release()
	assert.Equal(t, 0, hub.Len())
	assert.Equal(t, 0, hub.Dispatch(Point{}))

	var nilSub *Subscription
	nilSub.Release()
}
