package mesh

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/driftmesh/dbg"
)

// Readable name for a point identity. The same ID always gets the same name
// within a process.
func (id PointID) DbgName() string {
	return dbg.Name(id)
}

func (p *Point) String() string {
	return fmt.Sprintf("%s#%d (%.1f, %.1f) v(%.2f, %.2f) anchor (%.1f, %.1f)",
		p.ID.DbgName(), p.ID, p.X, p.Y, p.VX, p.VY, p.OrigX, p.OrigY)
}

func (t Triangle) String() string {
	return fmt.Sprintf("Triangle %s { %s, %s, %s } center (%.1f, %.1f) r² %.1f",
		t.DbgName(),
		t.A.DbgName(),
		t.B.DbgName(),
		t.C.DbgName(),
		t.Circle.X,
		t.Circle.Y,
		t.Circle.RadiusSquared,
	)
}

// Name the triangle by its color, tinted by how large its circumcircle is:
// small circles green, large ones cyan, and degenerate ones red.
func (t Triangle) DbgName() string {
	name := fmt.Sprintf("%04x", uint16(t.Color()))
	switch {
	case t.Circle.Degenerate:
		return aurora.Red(name).String()
	case t.Circle.RadiusSquared > 100*100:
		return aurora.Cyan(name).String()
	default:
		return aurora.Green(name).String()
	}
}

func (list TriangleList) String() string {
	parts := make([]string, 0, len(list))
	for _, t := range list {
		parts = append(parts, t.String())
	}
	return strings.Join(parts, "\n")
}
