package mesh

import (
	"embed"
	"log"
	"strconv"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures into point stores. Every <circle> element
// becomes a point anchored at its center, inserted in document order. If
// anything goes wrong, it exits.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) *Store {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	circles := rootEl.FindAll("circle")
	if len(circles) == 0 {
		log.Fatalf("No circles found in fixture %q", name)
	}

	store := NewStore(len(circles))
	for _, circleEl := range circles {
		x, err := strconv.ParseFloat(circleEl.Attributes["cx"], 64)
		if err != nil {
			log.Fatalf("Invalid cx value %q: %v", circleEl.Attributes["cx"], err)
		}
		y, err := strconv.ParseFloat(circleEl.Attributes["cy"], 64)
		if err != nil {
			log.Fatalf("Invalid cy value %q: %v", circleEl.Attributes["cy"], err)
		}
		store.Insert(x, y)
	}
	return store
}

// Some ad hoc fixtures

func RightTriangle() *Store {
	store := NewStore(3)
	store.Insert(0, 0)
	store.Insert(10, 0)
	store.Insert(0, 10)
	return store
}

// Points on a jittered grid, which keeps them out of cocircular ties.
func JitteredGrid(cols, rows int, spacing float64) *Store {
	store := NewStore(cols * rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			jx := float64((row*7+col*13)%5) * 0.37
			jy := float64((row*11+col*3)%7) * 0.29
			store.Insert(float64(col)*spacing+jx, float64(row)*spacing+jy)
		}
	}
	return store
}
