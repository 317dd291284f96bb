package mesh

// Points are identified by a PointID handed out by the Store at insertion
// time. IDs increase monotonically and are never reused, so they can be used
// as keys and as color seeds without depending on where a point lives in
// memory.
type PointID uint64

type Point struct {
	ID PointID

	X, Y   float64
	VX, VY float64

	// Anchor the point was created at. Never modified after insertion.
	OrigX, OrigY float64
}

// A triangle references its vertices by identity. Vertices are in ascending ID
// order as produced by the enumeration. The circumcircle is computed once when
// the triangle is built, since vertex positions are fixed for the duration of a
// triangulation.
type Triangle struct {
	A, B, C PointID
	Circle  Circumcircle
}

type TriangleList []Triangle

// 16 bit color in 5/6/5 bit layout
type RGB565 uint16
