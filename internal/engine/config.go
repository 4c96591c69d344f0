package engine

import (
	"flag"
	"strconv"
	"strings"
	"time"
)

// EnvPrefix marks the environment variables EnvSettings collects.
const EnvPrefix = "MADLIFE_"

// Config holds the engine options.
type Config struct {
	// CellPixelSize is the pixel edge length of one cell.
	CellPixelSize int
	// CycleTime is the interval between scheduled steps.
	CycleTime time.Duration
	// GridLines toggles the grid overlay.
	GridLines bool
	// DiedRecently paints cells that died in the last generation.
	DiedRecently bool
	// RandomColors picks a new live cell colour on every reset.
	RandomColors bool
	// Seed drives seeding and colour choice; 0 uses the wall clock.
	Seed int64

	Verbose        bool
	ExtremeVerbose bool
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		CellPixelSize: 40,
		CycleTime:     time.Second,
		GridLines:     true,
		RandomColors:  true,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Malformed or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["cell_px"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.CellPixelSize = parsed
		}
	}
	if v, ok := cfg["cycle_ms"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.CycleTime = time.Duration(parsed) * time.Millisecond
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	parseBool := func(key string, dst *bool) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseBool(v); err == nil {
				*dst = parsed
			}
		}
	}
	parseBool("grid", &c.GridLines)
	parseBool("died_recently", &c.DiedRecently)
	parseBool("random_colors", &c.RandomColors)
	parseBool("verbose", &c.Verbose)
	parseBool("extreme_verbose", &c.ExtremeVerbose)
	return c
}

// EnvSettings turns MADLIFE_* entries of environ (os.Environ format) into the
// lower-case keys understood by FromMap. MADLIFE_CELL_PX=8 becomes cell_px=8.
func EnvSettings(environ []string) map[string]string {
	settings := make(map[string]string)
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(k, EnvPrefix) {
			continue
		}
		settings[strings.ToLower(strings.TrimPrefix(k, EnvPrefix))] = v
	}
	return settings
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.CellPixelSize, "cell", c.CellPixelSize, "cell edge length in pixels")
	fs.DurationVar(&c.CycleTime, "cycle", c.CycleTime, "interval between generations")
	fs.BoolVar(&c.GridLines, "grid", c.GridLines, "draw grid lines")
	fs.BoolVar(&c.DiedRecently, "died-recently", c.DiedRecently, "paint cells that died in the last generation")
	fs.BoolVar(&c.RandomColors, "random-colors", c.RandomColors, "pick a new cell colour on every reset")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for reseeding (0 = time based)")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "verbose logging")
	fs.BoolVar(&c.ExtremeVerbose, "vv", c.ExtremeVerbose, "log every step with timings")
}

// normalized clamps out-of-range values to their smallest usable setting.
func (c Config) normalized() Config {
	if c.CellPixelSize < 1 {
		c.CellPixelSize = 1
	}
	if c.CycleTime < time.Millisecond {
		c.CycleTime = time.Millisecond
	}
	return c
}
