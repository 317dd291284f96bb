package mesh

// Brute force Delaunay triangulation. Every triple of points is a candidate,
// and a candidate is kept if its circumcircle exists and no other point lies
// strictly inside it.
//
// This is O(n³) candidates times an O(n) emptiness test, so O(n⁴) overall.
// That is only reasonable because the Store caps n at a few dozen points, and
// it is deliberately not replaced by an incremental or flip based algorithm:
// those can disagree with this one when four or more points are (nearly)
// cocircular, and the whole triangulation is recomputed every frame anyway.
//
// Points are taken in the given order, and triangle vertices are reported in
// that order, which for a Store snapshot is ascending ID order.
func Triangulate(points []Point) TriangleList {
	n := len(points)
	if n < 3 {
		return nil
	}

	// A planar triangulation of n points has at most 2n - 5 triangles
	triangles := make(TriangleList, 0, 2*n)
	for i := 0; i < n-2; i++ {
		for j := i + 1; j < n-1; j++ {
			for k := j + 1; k < n; k++ {
				circle := circumcircleOfPoints(&points[i], &points[j], &points[k])
				if circle.Degenerate {
					continue
				}
				if !isEmptyCircle(circle, points, i, j, k) {
					continue
				}
				triangles = append(triangles, Triangle{
					A:      points[i].ID,
					B:      points[j].ID,
					C:      points[k].ID,
					Circle: circle,
				})
			}
		}
	}
	return triangles
}

// Check the circle against every point other than the candidate's own
// vertices.
func isEmptyCircle(circle Circumcircle, points []Point, i, j, k int) bool {
	for l := range points {
		if l == i || l == j || l == k {
			continue
		}
		if circle.ContainsPoint(&points[l]) {
			return false
		}
	}
	return true
}

// Triangulate the current contents of the store.
func (s *Store) Triangulate() TriangleList {
	return Triangulate(s.Snapshot())
}
