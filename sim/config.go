package sim

import (
	"os"
	"time"

	"github.com/osuushi/driftmesh/mesh"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Upper bound on MaxPoints. Triangulation is O(n⁴) and runs every frame, so the
// store has to stay small.
const MaxPointsLimit = 100

type Config struct {
	MaxPoints  int           `yaml:"max_points"`
	FrameDelay time.Duration `yaml:"frame_delay"`
	// Seed for the Brownian jitter. Zero picks one from the clock.
	Seed    int64         `yaml:"seed"`
	Physics mesh.Params   `yaml:"physics"`
	Display DisplayConfig `yaml:"display"`
	Audio   AudioConfig   `yaml:"audio"`
}

type DisplayConfig struct {
	PointRadius   float64 `yaml:"point_radius"`
	LineThickness int     `yaml:"line_thickness"`
	Splash        bool    `yaml:"splash"`
}

type AudioConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Frequency float64       `yaml:"frequency"`
	Duration  time.Duration `yaml:"duration"`
	// 0-255, scaled linearly onto the speaker's full amplitude
	Volume uint8 `yaml:"volume"`
}

func DefaultConfig() Config {
	return Config{
		MaxPoints:  30,
		FrameDelay: 10 * time.Millisecond,
		Physics:    mesh.DefaultParams(),
		Display: DisplayConfig{
			PointRadius:   5,
			LineThickness: 2,
			Splash:        true,
		},
		Audio: AudioConfig{
			Enabled:   true,
			Frequency: 659.26,
			Duration:  50 * time.Millisecond,
			Volume:    48,
		},
	}
}

// Read a YAML config file on top of the defaults. Keys missing from the file
// keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "reading config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

func (cfg Config) Validate() error {
	if cfg.MaxPoints < 1 || cfg.MaxPoints > MaxPointsLimit {
		return errors.Errorf("max_points must be between 1 and %d, got %d", MaxPointsLimit, cfg.MaxPoints)
	}
	if cfg.FrameDelay < 0 {
		return errors.Errorf("frame_delay must not be negative, got %s", cfg.FrameDelay)
	}

	p := cfg.Physics
	if p.Friction <= 0 || p.Friction > 1 {
		return errors.Errorf("physics.friction must be in (0, 1], got %g", p.Friction)
	}
	if p.BounceFactor < 0 || p.BounceFactor > 1 {
		return errors.Errorf("physics.bounce_factor must be in [0, 1], got %g", p.BounceFactor)
	}
	if p.RepulsionRadius <= 0 {
		return errors.Errorf("physics.repulsion_radius must be positive, got %g", p.RepulsionRadius)
	}
	if p.MaxDistance < 0 || p.ReturnForce < 0 || p.BrownianStrength < 0 || p.RepulsionStrength < 0 {
		return errors.New("physics strengths and distances must not be negative")
	}

	if cfg.Display.LineThickness < 1 {
		return errors.Errorf("display.line_thickness must be at least 1, got %d", cfg.Display.LineThickness)
	}
	if cfg.Display.PointRadius < 0 {
		return errors.Errorf("display.point_radius must not be negative, got %g", cfg.Display.PointRadius)
	}

	if cfg.Audio.Enabled {
		if cfg.Audio.Frequency <= 0 {
			return errors.Errorf("audio.frequency must be positive, got %g", cfg.Audio.Frequency)
		}
		if cfg.Audio.Duration <= 0 {
			return errors.Errorf("audio.duration must be positive, got %s", cfg.Audio.Duration)
		}
	}
	return nil
}
