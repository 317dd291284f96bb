package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const Epsilon = 1e-9

func TestSortedIDs(t *testing.T) {
	expected := [3]PointID{1, 2, 3}
	for _, ids := range [][3]PointID{{1, 2, 3}, {1, 3, 2}, {2, 1, 3}, {2, 3, 1}, {3, 1, 2}, {3, 2, 1}} {
		assert.Equal(t, expected, sortedIDs(ids[0], ids[1], ids[2]))
	}
}

func TestTriangleSameVertices(t *testing.T) {
	tri := Triangle{A: 4, B: 9, C: 2}
	assert.True(t, tri.SameVertices(Triangle{A: 2, B: 4, C: 9}))
	assert.False(t, tri.SameVertices(Triangle{A: 2, B: 4, C: 8}))
	assert.True(t, tri.HasVertex(9))
	assert.False(t, tri.HasVertex(1))
	assert.Equal(t, [3]PointID{4, 9, 2}, tri.Vertices())
}

func TestPointDistances(t *testing.T) {
	a := &Point{X: 1, Y: 1}
	b := &Point{X: 4, Y: 5}
	assert.InDelta(t, 25, a.DistanceSquaredTo(b), Epsilon)
	assert.InDelta(t, 5, a.DistanceTo(b), Epsilon)

	drifted := &Point{X: 13, Y: 4, OrigX: 10, OrigY: 0}
	assert.InDelta(t, 5, drifted.Drift(), Epsilon)
}
