package audio

import (
	"fmt"
	"log"
	"math"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"

	"github.com/diegok/pingpong/internal/sfx"
)

const (
	sampleRate    = sfx.SampleRate
	DefaultVolume = 0.5
)

// SoundManager loads the game's sound effects and plays them fire-and-forget.
// A missing or broken effect plays nothing; physics never depends on audio.
type SoundManager struct {
	mu          sync.Mutex
	logger      *log.Logger
	sounds      map[sfx.Name]*beep.Buffer
	enabled     bool
	volume      float64
	initialized bool
}

// NewSoundManager creates a manager with nothing loaded
func NewSoundManager(logger *log.Logger) *SoundManager {
	return &SoundManager{
		logger:  logger,
		sounds:  make(map[sfx.Name]*beep.Buffer),
		enabled: true,
		volume:  DefaultVolume,
	}
}

// Init opens the speaker
func (sm *SoundManager) Init() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/30)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	sm.initialized = true
	return nil
}

// Close shuts down the speaker
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		speaker.Close()
		sm.initialized = false
	}
}

// SetLogger swaps the diagnostics destination
func (sm *SoundManager) SetLogger(logger *log.Logger) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.logger = logger
}

// Load reads every effect from dir, generating missing files first.
// Effects that fail to load are logged and stay silent.
func (sm *SoundManager) Load(dir string) error {
	sm.mu.Lock()
	logger := sm.logger
	sm.mu.Unlock()

	paths, err := sfx.Ensure(dir, logger)
	if err != nil {
		return err
	}

	for _, name := range sfx.Names {
		path, ok := paths[name]
		if !ok {
			logger.Printf("✗ Failed to load %s: no file", name)
			continue
		}

		buf, err := decodeFile(path)
		if err != nil {
			logger.Printf("✗ Failed to load %s: %v", name, err)
			continue
		}

		sm.mu.Lock()
		sm.sounds[name] = buf
		sm.mu.Unlock()
		logger.Printf("✓ Loaded %s", name)
	}

	return nil
}

// decodeFile reads a WAV file into memory at the speaker's sample rate
func decodeFile(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		s = beep.Resample(4, format.SampleRate, sampleRate, streamer)
	}

	buf := beep.NewBuffer(beep.Format{
		SampleRate:  sampleRate,
		NumChannels: format.NumChannels,
		Precision:   format.Precision,
	})
	buf.Append(s)

	if err := streamer.Err(); err != nil {
		return nil, err
	}
	return buf, nil
}

// Loaded reports whether an effect is ready to play
func (sm *SoundManager) Loaded(name sfx.Name) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.sounds[name] != nil
}

// PlayPaddleHit plays the sound for ball hitting a paddle
func (sm *SoundManager) PlayPaddleHit() {
	sm.play(sfx.PaddleHit)
}

// PlayWallBounce plays the sound for ball hitting top/bottom wall
func (sm *SoundManager) PlayWallBounce() {
	sm.play(sfx.WallBounce)
}

// PlayScore plays the sound when a point is scored
func (sm *SoundManager) PlayScore() {
	sm.play(sfx.Score)
}

func (sm *SoundManager) play(name sfx.Name) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.enabled {
		return
	}

	buf := sm.sounds[name]
	if buf == nil {
		return
	}

	speaker.Play(newVolume(buf.Streamer(0, buf.Len()), sm.volume))
}

// Toggle turns sound on or off and returns the new state
func (sm *SoundManager) Toggle() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.enabled = !sm.enabled
	return sm.enabled
}

// Enabled reports whether effects are played
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.enabled
}

// SetVolume sets the master volume, clamped to [0, 1]
func (sm *SoundManager) SetVolume(volume float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.volume = math.Max(0, math.Min(1, volume))
}

// Volume returns the master volume
func (sm *SoundManager) Volume() float64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.volume
}

// newVolume scales a streamer linearly; log2(0) is -Inf so zero means silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
