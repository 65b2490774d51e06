package main

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/plus3/quadblox/internal/log"
)

const envPrefix = "QUADBLOX_"

type Config struct {
	Frontend string
	Seed     uint64
	LogLevel log.Level
	DebugUI  bool

	// headless only
	Duration time.Duration
	Interval time.Duration
	Frames   int
}

func defaultConfig() Config {
	return Config{
		Frontend: defaultFrontend,
		LogLevel: log.LevelInfo,
		Duration: 10 * time.Second,
		Interval: time.Millisecond,
	}
}

// levelFlag implements flag.Value for log levels.
type levelFlag struct {
	level *log.Level
}

func (v levelFlag) String() string {
	if v.level == nil {
		return ""
	}
	return strings.ToLower(v.level.String())
}

func (v levelFlag) Set(s string) error {
	level, err := log.LevelFromString(s)
	if err != nil {
		return err
	}
	*v.level = level
	return nil
}

// frontendFlag implements flag.Value, accepting only built-in frontends.
type frontendFlag struct {
	name *string
}

func (v frontendFlag) String() string {
	if v.name == nil {
		return ""
	}
	return *v.name
}

func (v frontendFlag) Set(s string) error {
	if _, ok := frontends[s]; !ok {
		return fmt.Errorf("unknown frontend %q, built-in: %s", s, strings.Join(frontendNames(), ", "))
	}
	*v.name = s
	return nil
}

func frontendNames() []string {
	names := make([]string, 0, len(frontends))
	for name := range frontends {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// parseConfig reads flags from args. Every flag defaults to the environment
// variable QUADBLOX_<NAME>, with dashes as underscores, before falling back
// to the built-in default.
func parseConfig(args []string, getenv func(string) string, output io.Writer) (Config, error) {
	cfg := defaultConfig()

	fs := flag.NewFlagSet("quadblox", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Var(frontendFlag{&cfg.Frontend}, "frontend", "frontend to run: "+strings.Join(frontendNames(), ", "))
	fs.Uint64Var(&cfg.Seed, "seed", 0, "random seed, 0 picks one")
	fs.Var(levelFlag{&cfg.LogLevel}, "log-level", "debug, info, warn, error or none")
	fs.BoolVar(&cfg.DebugUI, "debug-ui", false, "show the Dear ImGui debug overlay (ebiten)")
	fs.DurationVar(&cfg.Duration, "duration", cfg.Duration, "maximum wall-clock run time (headless)")
	fs.DurationVar(&cfg.Interval, "interval", cfg.Interval, "wall-clock time between frames (headless)")
	fs.IntVar(&cfg.Frames, "frames", 0, "stop after this many frames, 0 for no limit (headless)")

	var envErr error
	fs.VisitAll(func(f *flag.Flag) {
		if envErr != nil {
			return
		}
		key := envPrefix + strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
		value := getenv(key)
		if value == "" {
			return
		}
		if err := fs.Set(f.Name, value); err != nil {
			envErr = fmt.Errorf("%s: %w", key, err)
		}
	})
	if envErr != nil {
		return Config{}, envErr
	}

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	if cfg.Frames < 0 {
		return Config{}, fmt.Errorf("frames must not be negative, got %d", cfg.Frames)
	}

	return cfg, nil
}

func (c Config) String() string {
	return "frontend=" + c.Frontend +
		" seed=" + strconv.FormatUint(c.Seed, 10) +
		" log-level=" + strings.ToLower(c.LogLevel.String()) +
		" debug-ui=" + strconv.FormatBool(c.DebugUI)
}
