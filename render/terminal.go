package render

import (
	"math"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/osuushi/driftmesh/mesh"
	"github.com/pkg/errors"
)

// Default size of one terminal cell in viewport pixels. Cells are roughly
// twice as tall as they are wide.
const (
	DefaultCellWidth  = 4
	DefaultCellHeight = 8
)

const (
	edgeRune  = '·'
	pointRune = '●'
)

// Terminal draws frames into a tcell screen and doubles as a touch source: a
// press of the primary mouse button is a touch. The viewport is the screen
// scaled up by the cell size, so the physics runs in the same pixel units as
// on the canvas.
//
// Events are read on a separate goroutine and handed over on a channel; the
// frame loop drains the channel when it polls Touch.
type Terminal struct {
	CellWidth, CellHeight float64

	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}
	once   sync.Once

	x, y    int
	down    bool
	pressed bool // a press not yet reported by Touch
	reset   bool
}

func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "creating screen")
	}
	return NewTerminalOnScreen(screen)
}

// Use an existing, uninitialized screen.
func NewTerminalOnScreen(screen tcell.Screen) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "initializing screen")
	}
	screen.EnableMouse()
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))

	t := &Terminal{
		CellWidth:  DefaultCellWidth,
		CellHeight: DefaultCellHeight,
		screen:     screen,
		events:     make(chan tcell.Event, 100),
		quit:       make(chan struct{}),
	}
	go t.pump()
	return t, nil
}

func (t *Terminal) pump() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil { // screen finalized
			return
		}
		select {
		case t.events <- ev:
		case <-t.quit:
			return
		}
	}
}

// Closed when the user asks to quit
func (t *Terminal) Done() <-chan struct{} {
	return t.quit
}

func (t *Terminal) Close() {
	t.stop()
	t.screen.Fini()
}

func (t *Terminal) stop() {
	t.once.Do(func() { close(t.quit) })
}

func (t *Terminal) Touch() (int, int, bool) {
	t.drain()
	down := t.down || t.pressed
	t.pressed = false
	return t.x, t.y, down
}

func (t *Terminal) ResetRequested() bool {
	t.drain()
	reset := t.reset
	t.reset = false
	return reset
}

func (t *Terminal) drain() {
	for {
		select {
		case ev := <-t.events:
			t.handle(ev)
		default:
			return
		}
	}
}

func (t *Terminal) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		col, row := ev.Position()
		down := ev.Buttons()&tcell.Button1 != 0
		if down {
			// Touch in the middle of the cell
			t.x = int((float64(col) + 0.5) * t.CellWidth)
			t.y = int((float64(row) + 0.5) * t.CellHeight)
			if !t.down {
				t.pressed = true
			}
		}
		t.down = down
	case *tcell.EventKey:
		t.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		t.screen.Sync()
	}
}

func (t *Terminal) handleKey(key tcell.Key, r rune) {
	switch {
	case key == tcell.KeyEscape, key == tcell.KeyCtrlC:
		t.stop()
	case key == tcell.KeyRune && (r == 'q' || r == 'Q'):
		t.stop()
	case key == tcell.KeyRune && (r == 'r' || r == 'R'):
		t.reset = true
	}
}

func (t *Terminal) Size() (int, int) {
	cols, rows := t.screen.Size()
	return int(float64(cols) * t.CellWidth), int(float64(rows) * t.CellHeight)
}

func (t *Terminal) Clear() {
	t.screen.Clear()
}

// Rasterize the line onto cells with Bresenham's algorithm.
func (t *Terminal) Line(x0, y0, x1, y1 float64, color mesh.RGB565) {
	style := styleFor(color)
	c0, r0 := t.cell(x0, y0)
	c1, r1 := t.cell(x1, y1)

	dc := abs(c1 - c0)
	dr := -abs(r1 - r0)
	sc, sr := 1, 1
	if c0 > c1 {
		sc = -1
	}
	if r0 > r1 {
		sr = -1
	}
	err := dc + dr
	for {
		t.plot(c0, r0, edgeRune, style)
		if c0 == c1 && r0 == r1 {
			return
		}
		e2 := 2 * err
		if e2 >= dr {
			err += dr
			c0 += sc
		}
		if e2 <= dc {
			err += dc
			r0 += sr
		}
	}
}

// Fill every cell whose center is within the radius. The cell under the
// center is always filled, so small points stay visible.
func (t *Terminal) FillCircle(x, y, radius float64, color mesh.RGB565) {
	style := styleFor(color)
	cc, cr := t.cell(x, y)
	t.plot(cc, cr, pointRune, style)

	minC, minR := t.cell(x-radius, y-radius)
	maxC, maxR := t.cell(x+radius, y+radius)
	for row := minR; row <= maxR; row++ {
		for col := minC; col <= maxC; col++ {
			px := (float64(col) + 0.5) * t.CellWidth
			py := (float64(row) + 0.5) * t.CellHeight
			if math.Hypot(px-x, py-y) <= radius {
				t.plot(col, row, pointRune, style)
			}
		}
	}
}

func (t *Terminal) Text(x, y float64, s string, color mesh.RGB565) {
	style := styleFor(color)
	col, row := t.cell(x, y)
	for _, r := range s {
		t.plot(col, row, r, style)
		col++
	}
}

func (t *Terminal) Commit() error {
	t.screen.Show()
	return nil
}

func (t *Terminal) cell(x, y float64) (int, int) {
	return int(math.Floor(x / t.CellWidth)), int(math.Floor(y / t.CellHeight))
}

func (t *Terminal) plot(col, row int, r rune, style tcell.Style) {
	cols, rows := t.screen.Size()
	if col < 0 || row < 0 || col >= cols || row >= rows {
		return
	}
	t.screen.SetContent(col, row, r, nil, style)
}

func styleFor(color mesh.RGB565) tcell.Style {
	r, g, b := color.RGB()
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b))).
		Background(tcell.ColorBlack)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
