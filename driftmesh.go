// A drifting point cloud, retriangulated every frame.
//
// Points are added by touching the screen. Each one jitters around the spot
// where it was placed, springs back when it strays too far, and shoves its
// neighbours away when it first appears. Every frame the live points are
// triangulated from scratch by brute force, and each triangle gets a pastel
// colour derived from the identities of its corners.
//
// The geometry lives in the mesh package and the frame loop in sim. This
// package re-exports the pieces most callers need.
package driftmesh

import (
	"log"

	"github.com/osuushi/driftmesh/mesh"
	"github.com/osuushi/driftmesh/sim"
)

type Point = mesh.Point
type PointID = mesh.PointID
type Triangle = mesh.Triangle
type TriangleList = mesh.TriangleList
type Store = mesh.Store
type RGB565 = mesh.RGB565

type Config = sim.Config
type Simulation = sim.Simulation

// Find every triangle of points whose circumcircle holds no other point.
// Collinear triples are skipped.
func Triangulate(points ...Point) TriangleList {
	return mesh.Triangulate(points)
}

func DefaultConfig() Config {
	return sim.DefaultConfig()
}

// See sim.New.
func NewSimulation(cfg Config, touch sim.TouchSource, renderer sim.Renderer, tone sim.ToneSink, logger *log.Logger) (*Simulation, error) {
	return sim.New(cfg, touch, renderer, tone, logger)
}
