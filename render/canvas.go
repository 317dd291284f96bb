// Package render holds the sinks a simulation draws into: an off-screen image
// canvas and an interactive terminal.
package render

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/driftmesh/mesh"
	"github.com/pkg/errors"
)

// Canvas draws frames into an in-memory image. If Dir is set, every committed
// frame is also saved there as frame-NNNNN.png.
type Canvas struct {
	Dir string

	c      *gg.Context
	frames int
}

func NewCanvas(width, height int) *Canvas {
	c := gg.NewContext(width, height)
	c.SetLineWidth(1)
	return &Canvas{c: c}
}

func (cv *Canvas) Size() (int, int) {
	return cv.c.Width(), cv.c.Height()
}

func (cv *Canvas) Clear() {
	cv.c.SetRGB(0, 0, 0)
	cv.c.Clear()
}

func (cv *Canvas) Line(x0, y0, x1, y1 float64, color mesh.RGB565) {
	cv.setColor(color)
	cv.c.DrawLine(x0, y0, x1, y1)
	cv.c.Stroke()
}

func (cv *Canvas) FillCircle(x, y, radius float64, color mesh.RGB565) {
	cv.setColor(color)
	cv.c.DrawCircle(x, y, radius)
	cv.c.Fill()
}

func (cv *Canvas) Text(x, y float64, s string, color mesh.RGB565) {
	cv.setColor(color)
	cv.c.DrawString(s, x, y)
}

func (cv *Canvas) Commit() error {
	cv.frames++
	if cv.Dir == "" {
		return nil
	}
	path := filepath.Join(cv.Dir, fmt.Sprintf("frame-%05d.png", cv.frames))
	return errors.Wrapf(cv.c.SavePNG(path), "saving %s", path)
}

// Number of frames committed so far
func (cv *Canvas) Frames() int {
	return cv.frames
}

func (cv *Canvas) Image() image.Image {
	return cv.c.Image()
}

func (cv *Canvas) SavePNG(path string) error {
	return errors.Wrapf(cv.c.SavePNG(path), "saving %s", path)
}

func (cv *Canvas) WritePNG(w io.Writer) error {
	return errors.Wrap(cv.c.EncodePNG(w), "encoding png")
}

// Print the current image inline in the terminal. This needs a terminal that
// understands the iTerm image protocol.
func (cv *Canvas) Show(w io.Writer) error {
	f, err := os.CreateTemp("", "driftmesh-*.png")
	if err != nil {
		return errors.Wrap(err, "creating preview file")
	}
	path := f.Name()
	defer os.Remove(path)

	err = cv.WritePNG(f)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return err
	}
	imgcat.CatFile(path, w)
	return nil
}

func (cv *Canvas) setColor(color mesh.RGB565) {
	r, g, b := color.RGB()
	cv.c.SetRGB255(int(r), int(g), int(b))
}
