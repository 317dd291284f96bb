package sim

import (
	"io"
	"math"
	"os"
	"strconv"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// Read scripted taps from an SVG document. Every <circle> element becomes a tap
// at its (rounded) center, in document order. Everything else is ignored, so
// a seed file can be drawn in any SVG editor.
func LoadSeedSVG(r io.Reader) ([]Tap, error) {
	rootEl, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing seed svg")
	}

	circles := rootEl.FindAll("circle")
	taps := make([]Tap, 0, len(circles))
	for i, circleEl := range circles {
		x, err := parseCoordinate(circleEl.Attributes["cx"])
		if err != nil {
			return nil, errors.Wrapf(err, "circle %d: cx", i)
		}
		y, err := parseCoordinate(circleEl.Attributes["cy"])
		if err != nil {
			return nil, errors.Wrapf(err, "circle %d: cy", i)
		}
		taps = append(taps, Tap{X: x, Y: y})
	}
	return taps, nil
}

func LoadSeedFile(path string) ([]Tap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening seed file")
	}
	defer f.Close()
	taps, err := LoadSeedSVG(f)
	if err != nil {
		return nil, errors.Wrapf(err, "seed file %s", path)
	}
	return taps, nil
}

// SVG omits cx/cy when they are zero
func parseCoordinate(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.Errorf("coordinate %q is not finite", s)
	}
	return int(math.Round(v)), nil
}
