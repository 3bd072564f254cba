// Package sfx synthesizes the placeholder sound effects and writes them as WAV files.
package sfx

import (
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/wav"
)

const (
	SampleRate = beep.SampleRate(44100)
	FadeTime   = 10 * time.Millisecond
	DecayRate  = 3.0 // envelope is exp(-DecayRate * t / duration)
)

// Name identifies a sound effect
type Name string

const (
	PaddleHit  Name = "paddle_hit"
	WallBounce Name = "wall_bounce"
	Score      Name = "score"
)

// Names lists every effect in load order
var Names = []Name{PaddleHit, WallBounce, Score}

// FileName returns the asset file name for the effect
func (n Name) FileName() string {
	return string(n) + ".wav"
}

// Spec describes a single sine tone
type Spec struct {
	Frequency float64
	Duration  time.Duration
	Decay     bool // exponential decay instead of a linear fade out
}

// Effects maps each effect to its tone
var Effects = map[Name]Spec{
	PaddleHit:  {Frequency: 800, Duration: 100 * time.Millisecond},
	WallBounce: {Frequency: 600, Duration: 80 * time.Millisecond},
	Score:      {Frequency: 400, Duration: 300 * time.Millisecond, Decay: true},
}

// Format is the on-disk format: 16-bit stereo at SampleRate
func Format() beep.Format {
	return beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2}
}

// Tone returns a finite streamer for spec at the given sample rate
func Tone(spec Spec, sr beep.SampleRate) beep.Streamer {
	numSamples := sr.N(spec.Duration)
	fadeSamples := sr.N(FadeTime)
	duration := spec.Duration.Seconds()
	pos := 0

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if pos >= numSamples {
				return i, i > 0
			}
			t := float64(pos) / float64(sr)
			val := math.Sin(2*math.Pi*spec.Frequency*t) * envelope(pos, numSamples, fadeSamples, t, duration, spec.Decay)
			samples[i][0] = val
			samples[i][1] = val
			pos++
		}
		return len(samples), true
	})
}

// envelope ramps in linearly over fade samples, then either decays or ramps out
func envelope(pos, total, fade int, t, duration float64, decay bool) float64 {
	env := 1.0
	if fade > 1 && pos < fade {
		env = float64(pos) / float64(fade-1)
	}

	if decay {
		return env * math.Exp(-DecayRate*t/duration)
	}

	if fade > 1 && pos >= total-fade {
		k := pos - (total - fade)
		env = 1 - float64(k)/float64(fade-1)
	}
	return env
}

// Write renders spec into a WAV file at path
func Write(path string, spec Spec) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := wav.Encode(f, Tone(spec, SampleRate), Format()); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}

	return f.Close()
}

// Ensure makes sure every effect has a WAV file in dir, generating the missing ones.
// It returns the paths of the files that exist afterwards. A file that cannot be
// generated is logged and left out.
func Ensure(dir string, logger *log.Logger) (map[Name]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create sounds directory: %w", err)
	}

	paths := make(map[Name]string, len(Names))
	for _, name := range Names {
		path := filepath.Join(dir, name.FileName())

		if _, err := os.Stat(path); err == nil {
			paths[name] = path
			continue
		}

		logger.Printf("Generating %s...", name.FileName())
		if err := Write(path, Effects[name]); err != nil {
			logger.Printf("Failed to generate %s: %v", name.FileName(), err)
			os.Remove(path)
			continue
		}
		paths[name] = path
	}

	return paths, nil
}
