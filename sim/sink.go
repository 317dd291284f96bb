package sim

import (
	"time"

	"github.com/osuushi/driftmesh/mesh"
)

// Renderer is where each frame is drawn. Coordinates are in viewport pixels,
// and nothing is visible until Commit.
type Renderer interface {
	// Viewport size, queried every frame so the physics can follow resizes
	Size() (width, height int)
	Clear()
	Line(x0, y0, x1, y1 float64, color mesh.RGB565)
	FillCircle(x, y, radius float64, color mesh.RGB565)
	Commit() error
}

// Renderers that can draw text implement Texter. It is only used for the
// startup splash.
type Texter interface {
	Text(x, y float64, s string, color mesh.RGB565)
}

// ToneSink plays a short tone. It must not block for the tone's duration.
type ToneSink interface {
	Tone(frequency float64, duration time.Duration)
}

type silentTone struct{}

func (silentTone) Tone(float64, time.Duration) {}

// Draw a line thickness pixels wide by drawing it repeatedly, offset by every
// (dx, dy) in [0, thickness)².
func drawThickLine(r Renderer, x0, y0, x1, y1 float64, thickness int, color mesh.RGB565) {
	if thickness < 1 {
		thickness = 1
	}
	for dx := 0; dx < thickness; dx++ {
		for dy := 0; dy < thickness; dy++ {
			ox, oy := float64(dx), float64(dy)
			r.Line(x0+ox, y0+oy, x1+ox, y1+oy, color)
		}
	}
}
