package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"os/signal"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/driftmesh/audio"
	"github.com/osuushi/driftmesh/mesh"
	"github.com/osuushi/driftmesh/render"
	"github.com/osuushi/driftmesh/sim"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	configPath = kingpin.Flag("config", "YAML config file.").ExistingFile()
	maxPoints  = kingpin.Flag("max-points", "Maximum number of live points.").Int()
	delay      = kingpin.Flag("delay", "Delay between frames.").Duration()
	seed       = kingpin.Flag("seed", "Random seed for the jitter. 0 seeds from the clock.").Int64()

	headless = kingpin.Flag("headless", "Render to images instead of the terminal.").Bool()
	width    = kingpin.Flag("width", "Viewport width in headless mode.").Default("320").Int()
	height   = kingpin.Flag("height", "Viewport height in headless mode.").Default("240").Int()
	frames   = kingpin.Flag("frames", "Number of frames to run in headless mode.").Default("200").Int()
	outDir   = kingpin.Flag("out", "Directory to write a PNG per frame to.").String()
	show     = kingpin.Flag("imgcat", "Show the last frame inline in the terminal.").Bool()
	tapsPath = kingpin.Flag("taps", "SVG file whose circles are tapped in order.").ExistingFile()
	tapEvery = kingpin.Flag("tap-every", "Frames between scripted taps.").Default("10").Int()
	dump     = kingpin.Flag("dump", "Print the final triangulation.").Bool()

	noAudio = kingpin.Flag("no-audio", "Do not play tones.").Bool()
	logPath = kingpin.Flag("log", "Log file for interactive mode.").String()
)

// Interactive mode draws into the terminal: click to add a point, r clears,
// q quits. Headless mode replays scripted taps and renders to PNG.
func main() {
	kingpin.CommandLine.HelpFlag.Short('h')
	kingpin.Parse()

	cfg, err := loadConfig()
	kingpin.FatalIfError(err, "")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *headless {
		err = runHeadless(ctx, cfg)
	} else {
		err = runInteractive(ctx, cfg)
	}
	kingpin.FatalIfError(err, "")
}

func loadConfig() (sim.Config, error) {
	cfg := sim.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = sim.LoadConfig(*configPath); err != nil {
			return cfg, err
		}
	}
	if *maxPoints != 0 {
		cfg.MaxPoints = *maxPoints
	}
	if *delay != 0 {
		cfg.FrameDelay = *delay
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *noAudio {
		cfg.Audio.Enabled = false
	}
	return cfg, cfg.Validate()
}

func runHeadless(ctx context.Context, cfg sim.Config) error {
	logger := log.New(os.Stderr, "driftmesh: ", log.LstdFlags)

	canvas := render.NewCanvas(*width, *height)
	if *outDir != "" {
		if err := os.MkdirAll(*outDir, 0o755); err != nil {
			return errors.Wrap(err, "creating output directory")
		}
		canvas.Dir = *outDir
	}

	taps := defaultTaps(*width, *height, cfg.MaxPoints)
	if *tapsPath != "" {
		var err error
		if taps, err = sim.LoadSeedFile(*tapsPath); err != nil {
			return err
		}
	}

	s, err := sim.New(cfg, sim.NewScript(taps, *tapEvery), canvas, audio.Silent{}, logger)
	if err != nil {
		return err
	}
	if err := s.Start(); err != nil {
		return err
	}
	if err := s.RunFrames(ctx, *frames); err != nil {
		return err
	}
	logger.Printf("%d frames, %d points, %d triangles", s.Frame(), s.Store().Len(), len(s.Triangles()))

	if *dump {
		dumpMesh(os.Stdout, s)
	}
	if *show {
		return canvas.Show(os.Stdout)
	}
	return nil
}

func runInteractive(ctx context.Context, cfg sim.Config) error {
	logOut := io.Discard
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			return errors.Wrap(err, "opening log")
		}
		defer f.Close()
		logOut = f
	}
	logger := log.New(logOut, "driftmesh: ", log.LstdFlags)

	var tone sim.ToneSink = audio.Silent{}
	if cfg.Audio.Enabled {
		speaker := audio.NewSpeaker(cfg.Audio.Volume)
		if err := speaker.Init(); err != nil {
			logger.Printf("audio disabled: %v", err)
		} else {
			defer speaker.Close()
			tone = speaker
		}
	}

	term, err := render.NewTerminal()
	if err != nil {
		return err
	}
	defer term.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-term.Done():
			cancel()
		case <-ctx.Done():
		}
	}()

	s, err := sim.New(cfg, term, term, tone, logger)
	if err != nil {
		return err
	}
	if err := s.Start(); err != nil {
		return err
	}
	return s.Run(ctx)
}

// A ring of taps with one in the middle, for when no tap file is given.
func defaultTaps(width, height, count int) []sim.Tap {
	cx, cy := float64(width)/2, float64(height)/2
	radius := math.Min(cx, cy) * 0.7
	taps := []sim.Tap{{X: int(cx), Y: int(cy)}}
	ring := count - 1
	if ring > 8 {
		ring = 8
	}
	for i := 0; i < ring; i++ {
		angle := 2 * math.Pi * float64(i) / float64(ring)
		taps = append(taps, sim.Tap{
			X: int(math.Round(cx + radius*math.Cos(angle))),
			Y: int(math.Round(cy + radius*math.Sin(angle))),
		})
	}
	return taps
}

func dumpMesh(w io.Writer, s *sim.Simulation) {
	fmt.Fprintln(w, aurora.Bold("points"))
	s.Store().Each(func(p *mesh.Point) {
		fmt.Fprintf(w, "  %v\n", p)
	})
	fmt.Fprintln(w, aurora.Bold("triangles"))
	fmt.Fprintln(w, s.Triangles())
}
