// Package config resolves runtime settings from defaults, an optional .env
// file and command-line flags, in that order of precedence
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/lixenwraith/crossing/constants"
)

// Environment keys read from the .env file
const (
	EnvSeed      = "CROSSING_SEED"
	EnvDebug     = "CROSSING_DEBUG"
	EnvSound     = "CROSSING_SOUND"
	EnvFPS       = "CROSSING_FPS"
	EnvObstacles = "CROSSING_OBSTACLES"
	EnvColor     = "CROSSING_COLOR"
)

// DefaultEnvFile is the .env path checked when none is given
const DefaultEnvFile = ".env"

// ColorMode selects terminal color depth
type ColorMode string

const (
	ColorAuto      ColorMode = "auto"
	ColorTrueColor ColorMode = "truecolor"
	Color256       ColorMode = "256"
)

// Config holds resolved runtime settings
type Config struct {
	// Seed for obstacle speeds; zero selects a clock seed
	Seed uint64

	Debug     bool
	Sound     bool
	FPS       int
	Obstacles int
	ColorMode ColorMode
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Sound:     true,
		FPS:       int(time.Second / constants.FrameUpdateInterval),
		Obstacles: constants.ObstacleDefaultCount,
		ColorMode: ColorAuto,
	}
}

// Seeded reports whether obstacle speeds come from a fixed seed
func (c Config) Seeded() bool {
	return c.Seed != 0
}

// FrameInterval returns the frame ticker period
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

// Load resolves settings: defaults, then envPath (missing file is not an error),
// then args parsed as flags. A later source overrides an earlier one, including
// a seed of 0, which returns to clock seeding
// -h and -help return an error wrapping flag.ErrHelp; see Usage
func Load(args []string, envPath string) (Config, error) {
	cfg := Default()

	if envPath != "" {
		env, err := godotenv.Read(envPath)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("read %s: %w", envPath, err)
		default:
			if err := cfg.applyEnv(env); err != nil {
				return cfg, fmt.Errorf("%s: %w", envPath, err)
			}
		}
	}

	if err := cfg.applyFlags(args); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(env map[string]string) error {
	if v, ok := env[EnvSeed]; ok && v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Seed = seed
	}
	if v, ok := env[EnvDebug]; ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDebug, err)
		}
		c.Debug = b
	}
	if v, ok := env[EnvSound]; ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSound, err)
		}
		c.Sound = b
	}
	if v, ok := env[EnvFPS]; ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvFPS, err)
		}
		c.FPS = n
	}
	if v, ok := env[EnvObstacles]; ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvObstacles, err)
		}
		c.Obstacles = n
	}
	if v, ok := env[EnvColor]; ok && v != "" {
		c.ColorMode = ColorMode(strings.ToLower(v))
	}
	return nil
}

func (c *Config) applyFlags(args []string) error {
	flags, color := c.flagSet()

	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	c.ColorMode = ColorMode(strings.ToLower(*color))
	return nil
}

// flagSet binds the command-line flags to c; parse errors are returned, not printed
func (c *Config) flagSet() (*flag.FlagSet, *string) {
	flags := flag.NewFlagSet("crossing", flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	flags.Uint64Var(&c.Seed, "seed", c.Seed, "Obstacle speed seed (0 uses the clock)")
	flags.BoolVar(&c.Debug, "debug", c.Debug, "Write logs to logs/crossing.log")
	flags.BoolVar(&c.Sound, "sound", c.Sound, "Enable sound cues")
	flags.IntVar(&c.FPS, "fps", c.FPS, "Frames per second")
	flags.IntVar(&c.Obstacles, "obstacles", c.Obstacles, "Number of obstacles")
	color := flags.String("color", string(c.ColorMode), "Color mode: auto, truecolor, 256")
	return flags, color
}

// Usage writes the flag list with built-in defaults and the .env keys to w
func Usage(w io.Writer) {
	cfg := Default()
	flags, _ := cfg.flagSet()
	flags.SetOutput(w)

	fmt.Fprintf(w, "Usage: crossing [flags]\n\nFlags:\n")
	flags.PrintDefaults()
	fmt.Fprintf(w, "\nSettings may also be set in %s: %s\n", DefaultEnvFile,
		strings.Join([]string{EnvSeed, EnvDebug, EnvSound, EnvFPS, EnvObstacles, EnvColor}, ", "))
}

// Validate reports the first out-of-range setting
func (c Config) Validate() error {
	if c.FPS < constants.MinFPS || c.FPS > constants.MaxFPS {
		return fmt.Errorf("fps %d out of range [%d, %d]", c.FPS, constants.MinFPS, constants.MaxFPS)
	}
	if c.Obstacles < 1 {
		return fmt.Errorf("obstacles must be positive, got %d", c.Obstacles)
	}
	switch c.ColorMode {
	case ColorAuto, ColorTrueColor, Color256:
	default:
		return fmt.Errorf("unknown color mode %q", c.ColorMode)
	}
	return nil
}
