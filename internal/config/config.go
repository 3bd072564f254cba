package config

import (
	"errors"
	"flag"
	"fmt"
)

// Default values for configuration
const (
	DefaultPoints    = 5
	DefaultSoundsDir = "sounds"
	DefaultVolume    = 0.5
)

// ValidPoints are the winning scores a match can be played to
var ValidPoints = []int{3, 5, 7}

// Config holds the application configuration
type Config struct {
	PointsToWin int
	SoundsDir   string
	Mute        bool
	Volume      float64
	Seed        int64 // 0 seeds from the clock
}

// ParseArgs parses command line arguments and returns a Config
func ParseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("pingpong", flag.ContinueOnError)

	points := fs.Int("points", DefaultPoints, "points to win (3, 5 or 7)")
	sounds := fs.String("sounds", DefaultSoundsDir, "sound effects directory")
	mute := fs.Bool("mute", false, "start with sound off")
	volume := fs.Float64("volume", DefaultVolume, "sound volume (0-1)")
	seed := fs.Int64("seed", 0, "random seed for ball serves (0 = random)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	if !validPoints(*points) {
		return nil, fmt.Errorf("points must be one of 3, 5 or 7, got %d", *points)
	}

	if *volume < 0 || *volume > 1 {
		return nil, fmt.Errorf("volume must be between 0 and 1, got %g", *volume)
	}

	if *sounds == "" {
		return nil, errors.New("sounds directory must not be empty")
	}

	cfg := &Config{
		PointsToWin: *points,
		SoundsDir:   *sounds,
		Mute:        *mute,
		Volume:      *volume,
		Seed:        *seed,
	}

	return cfg, nil
}

func validPoints(n int) bool {
	for _, p := range ValidPoints {
		if p == n {
			return true
		}
	}
	return false
}
