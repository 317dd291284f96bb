package mesh

// The circle through the three vertices of a triangle. For (nearly) collinear
// vertices the circle does not exist, and Degenerate is set instead.
type Circumcircle struct {
	X, Y          float64
	RadiusSquared float64
	Degenerate    bool
}

// Compute the circumcircle of the triangle (x1, y1), (x2, y2), (x3, y3) from
// the determinant form of the circle equation
//
//	a(x² + y²) + bx + cy + d = 0
//
// where a is the doubled signed area of the triangle. The center is then
// (-b/2a, -c/2a), and the squared radius (b² + c² - 4ad) / 4a².
func CircumcircleOf(x1, y1, x2, y2, x3, y3 float64) Circumcircle {
	a := x1*(y2-y3) - y1*(x2-x3) + x2*y3 - x3*y2
	if a < Tolerance && a > -Tolerance {
		return Circumcircle{Degenerate: true}
	}

	s1 := x1*x1 + y1*y1
	s2 := x2*x2 + y2*y2
	s3 := x3*x3 + y3*y3

	b := s1*(y3-y2) + s2*(y1-y3) + s3*(y2-y1)
	c := s1*(x2-x3) + s2*(x3-x1) + s3*(x1-x2)
	d := s1*(x3*y2-x2*y3) + s2*(x1*y3-x3*y1) + s3*(x2*y1-x1*y2)

	return Circumcircle{
		X:             -b / (2 * a),
		Y:             -c / (2 * a),
		RadiusSquared: (b*b + c*c - 4*a*d) / (4 * a * a),
	}
}

func circumcircleOfPoints(p1, p2, p3 *Point) Circumcircle {
	return CircumcircleOf(p1.X, p1.Y, p2.X, p2.Y, p3.X, p3.Y)
}

// Whether (x, y) lies strictly inside the circle. Points on the circle are not
// inside. A degenerate circle contains nothing.
func (c Circumcircle) Contains(x, y float64) bool {
	if c.Degenerate {
		return false
	}
	dx := x - c.X
	dy := y - c.Y
	return dx*dx+dy*dy < c.RadiusSquared
}

func (c Circumcircle) ContainsPoint(p *Point) bool {
	return c.Contains(p.X, p.Y)
}
