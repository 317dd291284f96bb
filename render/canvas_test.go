package render

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/osuushi/driftmesh/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rgbAt(cv *Canvas, x, y int) [3]uint32 {
	r, g, b, _ := cv.Image().At(x, y).RGBA()
	return [3]uint32{r >> 8, g >> 8, b >> 8}
}

func TestCanvasDrawing(t *testing.T) {
	cv := NewCanvas(64, 48)
	w, h := cv.Size()
	assert.Equal(t, 64, w)
	assert.Equal(t, 48, h)

	cv.Clear()
	assert.Equal(t, [3]uint32{0, 0, 0}, rgbAt(cv, 5, 5))

	t.Run("line", func(t *testing.T) {
		cv.Line(0, 10.5, 40, 10.5, mesh.White)
		assert.Equal(t, [3]uint32{255, 255, 255}, rgbAt(cv, 20, 10))
		assert.Equal(t, [3]uint32{0, 0, 0}, rgbAt(cv, 20, 20))
	})

	t.Run("circle", func(t *testing.T) {
		red := mesh.PackRGB565(255, 0, 0)
		cv.FillCircle(50, 30, 5, red)
		assert.Equal(t, [3]uint32{255, 0, 0}, rgbAt(cv, 50, 30))
		assert.Equal(t, [3]uint32{0, 0, 0}, rgbAt(cv, 50, 40))
	})

	t.Run("clear wipes everything", func(t *testing.T) {
		cv.Clear()
		assert.Equal(t, [3]uint32{0, 0, 0}, rgbAt(cv, 20, 10))
		assert.Equal(t, [3]uint32{0, 0, 0}, rgbAt(cv, 50, 30))
	})
}

func TestCanvasCommit(t *testing.T) {
	t.Run("in memory", func(t *testing.T) {
		cv := NewCanvas(8, 8)
		require.NoError(t, cv.Commit())
		require.NoError(t, cv.Commit())
		assert.Equal(t, 2, cv.Frames())
	})

	t.Run("to a directory", func(t *testing.T) {
		dir := t.TempDir()
		cv := NewCanvas(8, 8)
		cv.Dir = dir
		require.NoError(t, cv.Commit())
		require.NoError(t, cv.Commit())

		for _, name := range []string{"frame-00001.png", "frame-00002.png"} {
			f, err := os.Open(filepath.Join(dir, name))
			require.NoError(t, err)
			img, err := png.Decode(f)
			f.Close()
			require.NoError(t, err)
			assert.Equal(t, 8, img.Bounds().Dx())
		}
	})

	t.Run("to a missing directory", func(t *testing.T) {
		cv := NewCanvas(8, 8)
		cv.Dir = filepath.Join(t.TempDir(), "missing")
		assert.Error(t, cv.Commit())
	})
}

func TestCanvasWritePNG(t *testing.T) {
	cv := NewCanvas(16, 12)
	cv.Clear()
	var buf bytes.Buffer
	require.NoError(t, cv.WritePNG(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 16, img.Bounds().Dx())
	assert.Equal(t, 12, img.Bounds().Dy())
}
