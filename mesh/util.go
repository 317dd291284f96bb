package mesh

import "math"

// Determinant threshold below which three points are treated as collinear.
const Tolerance = 1e-6

// To compensate for imprecision in floats, equality is tolerance based.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

func (p *Point) DistanceSquaredTo(other *Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return dx*dx + dy*dy
}

func (p *Point) DistanceTo(other *Point) float64 {
	return math.Sqrt(p.DistanceSquaredTo(other))
}

// Distance from the point to its anchor
func (p *Point) Drift() float64 {
	return math.Hypot(p.X-p.OrigX, p.Y-p.OrigY)
}

func (t Triangle) Vertices() [3]PointID {
	return [3]PointID{t.A, t.B, t.C}
}

func (t Triangle) HasVertex(id PointID) bool {
	return t.A == id || t.B == id || t.C == id
}

// Triangles are compared by vertex set, regardless of vertex order.
func (t Triangle) SameVertices(other Triangle) bool {
	return sortedIDs(t.A, t.B, t.C) == sortedIDs(other.A, other.B, other.C)
}

func (list TriangleList) Contains(a, b, c PointID) bool {
	want := sortedIDs(a, b, c)
	for _, t := range list {
		if sortedIDs(t.A, t.B, t.C) == want {
			return true
		}
	}
	return false
}

func sortedIDs(a, b, c PointID) [3]PointID {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}
	return [3]PointID{a, b, c}
}
