// Package sim runs the drifting Delaunay mesh frame by frame.
//
// A Simulation owns the point store and is the only thing that touches it.
// Each frame it polls the touch source, inserts a point on a new touch (with a
// tone and a repulsion impulse), advances the physics, retriangulates from
// scratch, and draws the result to the renderer. Everything happens
// synchronously on the caller's goroutine.
package sim

import (
	"context"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/osuushi/driftmesh/mesh"
	"github.com/pkg/errors"
)

type Simulation struct {
	cfg      Config
	store    *mesh.Store
	physics  *mesh.Physics
	touch    TouchSource
	renderer Renderer
	tone     ToneSink
	log      *log.Logger

	wasTouch  bool
	triangles mesh.TriangleList
	frame     uint64
}

// A nil touch source never touches, a nil tone sink is silent and a nil
// logger discards everything. The renderer is required.
func New(cfg Config, touch TouchSource, renderer Renderer, tone ToneSink, logger *log.Logger) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if renderer == nil {
		return nil, errors.New("a renderer is required")
	}
	if touch == nil {
		touch = NoTouch{}
	}
	if tone == nil || !cfg.Audio.Enabled {
		tone = silentTone{}
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Simulation{
		cfg:      cfg,
		store:    mesh.NewStore(cfg.MaxPoints),
		physics:  mesh.NewPhysics(cfg.Physics, rand.New(rand.NewSource(seed))),
		touch:    touch,
		renderer: renderer,
		tone:     tone,
		log:      logger,
	}, nil
}

func (s *Simulation) Store() *mesh.Store               { return s.store }
func (s *Simulation) Triangles() mesh.TriangleList     { return s.triangles }
func (s *Simulation) Frame() uint64                    { return s.frame }
func (s *Simulation) Config() Config                   { return s.cfg }
func (s *Simulation) Renderer() Renderer               { return s.renderer }
func (s *Simulation) SetTouchSource(touch TouchSource) { s.touch = touch }

// Play the startup tone and show the splash screen, if the renderer can draw
// text.
func (s *Simulation) Start() error {
	s.playTone()
	if !s.cfg.Display.Splash {
		return nil
	}
	texter, ok := s.renderer.(Texter)
	if !ok {
		return nil
	}
	s.renderer.Clear()
	texter.Text(10, 50, "Delaunay Diagram", mesh.White)
	texter.Text(10, 80, "Touch to add points", mesh.White)
	return errors.Wrap(s.renderer.Commit(), "drawing splash")
}

// Insert a point as if it had been tapped: play the tone, add the point
// (evicting the oldest one if the store is full), and push its neighbors away.
func (s *Simulation) Insert(x, y float64) mesh.PointID {
	s.playTone()

	if s.store.Len() >= s.store.Cap() {
		s.log.Printf("frame %d: evicting %v", s.frame, s.store.Points()[0])
	}

	id := s.store.Insert(x, y)
	pushed := s.physics.Repel(s.store, id)
	s.log.Printf("frame %d: inserted %s at (%.0f, %.0f), pushed %d neighbors", s.frame, id.DbgName(), x, y, pushed)
	return id
}

func (s *Simulation) Reset() {
	s.store.Clear()
	s.triangles = nil
	s.log.Printf("frame %d: cleared all points", s.frame)
}

// Run one frame.
func (s *Simulation) Step() error {
	if resetter, ok := s.touch.(Resetter); ok && resetter.ResetRequested() {
		s.Reset()
	}

	x, y, down := s.touch.Touch()
	if down && !s.wasTouch {
		s.Insert(float64(x), float64(y))
	}
	s.wasTouch = down

	width, height := s.renderer.Size()
	s.physics.Step(s.store, width, height)
	s.triangles = s.store.Triangulate()

	err := s.draw()
	s.frame++
	return err
}

func (s *Simulation) draw() error {
	points := s.store.Snapshot()
	byID := make(map[mesh.PointID]*mesh.Point, len(points))
	for i := range points {
		byID[points[i].ID] = &points[i]
	}

	s.renderer.Clear()
	thickness := s.cfg.Display.LineThickness
	for _, tri := range s.triangles {
		a, b, c := byID[tri.A], byID[tri.B], byID[tri.C]
		color := tri.Color()
		drawThickLine(s.renderer, a.X, a.Y, b.X, b.Y, thickness, color)
		drawThickLine(s.renderer, b.X, b.Y, c.X, c.Y, thickness, color)
		drawThickLine(s.renderer, c.X, c.Y, a.X, a.Y, thickness, color)
	}
	// Points go on top of the edges
	for _, p := range points {
		s.renderer.FillCircle(p.X, p.Y, s.cfg.Display.PointRadius, mesh.White)
	}
	return errors.Wrapf(s.renderer.Commit(), "committing frame %d", s.frame)
}

func (s *Simulation) playTone() {
	s.tone.Tone(s.cfg.Audio.Frequency, s.cfg.Audio.Duration)
}

// Run frames until the context is done, waiting FrameDelay between frames.
// Returns nil when the context is cancelled, or the first rendering error.
func (s *Simulation) Run(ctx context.Context) error {
	return s.RunFrames(ctx, -1)
}

// Like Run, but stop after n frames. A negative n runs until cancelled.
func (s *Simulation) RunFrames(ctx context.Context, n int) error {
	delay := s.cfg.FrameDelay
	if delay <= 0 {
		delay = time.Millisecond
	}
	ticker := time.NewTicker(delay)
	defer ticker.Stop()

	for i := 0; n < 0 || i < n; i++ {
		if err := s.Step(); err != nil {
			return err
		}
		if i == n-1 || ctx.Err() != nil {
			break
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
	return nil
}
