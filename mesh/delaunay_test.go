package mesh

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriangulate_TooFewPoints(t *testing.T) {
	store := NewStore(5)
	assert.Empty(t, store.Triangulate())
	store.Insert(1, 1)
	assert.Empty(t, store.Triangulate())
	store.Insert(5, 1)
	assert.Empty(t, store.Triangulate())
}

func TestTriangulate_RightTriangle(t *testing.T) {
	store := RightTriangle()
	triangles := store.Triangulate()
	require.Len(t, triangles, 1)

	tri := triangles[0]
	assert.Equal(t, [3]PointID{1, 2, 3}, tri.Vertices())
	assert.InDelta(t, 5, tri.Circle.X, Epsilon)
	assert.InDelta(t, 5, tri.Circle.Y, Epsilon)
	assert.InDelta(t, 50, tri.Circle.RadiusSquared, Epsilon)
}

func TestTriangulate_Collinear(t *testing.T) {
	store := LoadFixture("line")
	assert.Empty(t, store.Triangulate())
}

func TestTriangulate_Square(t *testing.T) {
	// All four corners are cocircular, so every corner lies on, not in, the
	// circle of the other three, and both diagonals survive.
	store := LoadFixture("square")
	triangles := store.Triangulate()
	assert.Len(t, triangles, 4)
	AssertEmptyCircumcircles(t, store, triangles)
}

func TestTriangulate_Hexagon(t *testing.T) {
	store := LoadFixture("hexagon")
	triangles := store.Triangulate()
	require.Len(t, triangles, 6)
	center := store.Points()[0].ID
	for _, tri := range triangles {
		assert.True(t, tri.HasVertex(center), "%s should be a spoke around the center", tri)
	}
	AssertEmptyCircumcircles(t, store, triangles)
}

func TestTriangulate_Scatter(t *testing.T) {
	store := LoadFixture("scatter")
	triangles := store.Triangulate()

	expected := [][3]PointID{
		{1, 2, 4}, {1, 4, 7}, {2, 3, 5}, {2, 4, 5},
		{3, 5, 6}, {4, 5, 8}, {4, 7, 8}, {5, 6, 8},
	}
	require.Len(t, triangles, len(expected))
	for _, ids := range expected {
		assert.True(t, triangles.Contains(ids[0], ids[1], ids[2]), "missing triangle %v", ids)
	}
	AssertEmptyCircumcircles(t, store, triangles)
}

func TestTriangulate_JitteredGrid(t *testing.T) {
	store := JitteredGrid(5, 4, 20)
	triangles := store.Triangulate()
	assert.NotEmpty(t, triangles)
	AssertEmptyCircumcircles(t, store, triangles)
	AssertLiveVertices(t, store, triangles)
}

func TestTriangulate_Idempotent(t *testing.T) {
	store := LoadFixture("scatter")
	first := store.Triangulate()
	second := store.Triangulate()
	assert.Equal(t, first, second)
}

func TestTriangulate_AfterEviction(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	store := NewStore(12)
	for i := 0; i < 40; i++ {
		store.Insert(rng.Float64()*320, rng.Float64()*240)
	}
	triangles := store.Triangulate()
	AssertLiveVertices(t, store, triangles)
	AssertEmptyCircumcircles(t, store, triangles)
}

func TestTriangulate_WhileDrifting(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	store := NewStore(30)
	physics := NewPhysics(DefaultParams(), rng)
	for frame := 0; frame < 60; frame++ {
		if frame%2 == 0 {
			id := store.Insert(rng.Float64()*320, rng.Float64()*240)
			physics.Repel(store, id)
		}
		physics.Step(store, 320, 240)
		triangles := store.Triangulate()
		AssertEmptyCircumcircles(t, store, triangles)
		AssertLiveVertices(t, store, triangles)
	}
}

// Helpers

// No live point other than a triangle's own vertices may lie strictly inside
// its circumcircle.
func AssertEmptyCircumcircles(t *testing.T, store *Store, triangles TriangleList) {
	t.Helper()
	for _, tri := range triangles {
		require.False(t, tri.Circle.Degenerate, "degenerate triangle in output: %s", tri)
		store.Each(func(p *Point) {
			if tri.HasVertex(p.ID) {
				return
			}
			dx := p.X - tri.Circle.X
			dy := p.Y - tri.Circle.Y
			assert.GreaterOrEqual(t, dx*dx+dy*dy, tri.Circle.RadiusSquared, "%v is inside %s", p, tri)
		})
	}
}

func AssertLiveVertices(t *testing.T, store *Store, triangles TriangleList) {
	t.Helper()
	for _, tri := range triangles {
		for _, id := range tri.Vertices() {
			_, ok := store.Get(id)
			assert.True(t, ok, "triangle %s references dead point %d", tri, id)
		}
	}
}
