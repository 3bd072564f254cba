package game

import (
	"math"
	"math/rand"
)

const (
	BallSize       = 7
	MaxBallSpeed   = 15
	ServeSpeedX    = 5
	ServeSpeedY    = 3
	SpeedIncrement = 1.05 // 5% speed increase per paddle hit
	SpinFactor     = 2    // VY change for a hit on the very edge of a paddle
)

// SoundPlayer receives fire-and-forget notifications about ball events
type SoundPlayer interface {
	PlayPaddleHit()
	PlayWallBounce()
	PlayScore()
}

type Ball struct {
	X, Y             float64
	VX, VY           float64
	Width, Height    float64
	OriginX, OriginY float64
	MaxSpeed         float64
	ScreenWidth      float64
	ScreenHeight     float64

	rng    *rand.Rand
	sounds SoundPlayer
}

// NewBall creates a ball at its spawn point with a random serve.
// sounds may be nil.
func NewBall(x, y, screenWidth, screenHeight float64, rng *rand.Rand, sounds SoundPlayer) *Ball {
	b := &Ball{
		OriginX:      x,
		OriginY:      y,
		Width:        BallSize,
		Height:       BallSize,
		MaxSpeed:     MaxBallSpeed,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
		rng:          rng,
		sounds:       sounds,
	}
	b.Reset()
	return b
}

// Move advances the ball by its velocity and bounces it off the top and bottom walls
func (b *Ball) Move() {
	b.X += b.VX
	b.Y += b.VY

	if b.Y <= 0 || b.Y+b.Height >= b.ScreenHeight {
		b.VY = -b.VY

		// Snap to the wall so overshoot never accumulates
		if b.Y <= 0 {
			b.Y = 0
		} else {
			b.Y = b.ScreenHeight - b.Height
		}

		if b.sounds != nil {
			b.sounds.PlayWallBounce()
		}
	}
}

// CheckCollision resolves a hit against the left or right paddle.
// The right paddle is only tested when the ball does not overlap the left one.
func (b *Ball) CheckCollision(left, right *Paddle) {
	r := b.Rect()

	if r.Overlaps(left.Rect()) {
		// Only bounce while approaching, so a sustained overlap resolves once
		if b.VX < 0 {
			b.VX = math.Abs(b.VX) * SpeedIncrement
			b.X = left.X + left.Width
			b.addSpin(left)
			b.playPaddleHit()
		}
	} else if r.Overlaps(right.Rect()) {
		if b.VX > 0 {
			b.VX = -math.Abs(b.VX) * SpeedIncrement
			b.X = right.X - b.Width
			b.addSpin(right)
			b.playPaddleHit()
		}
	}

	b.clampVelocity()
}

// addSpin bends VY by where the ball met the paddle: top hits go up, bottom hits go down
func (b *Ball) addSpin(p *Paddle) {
	rel := b.Rect().CenterY() - p.Rect().CenterY()
	norm := rel / (p.Height / 2)
	b.VY += norm * SpinFactor
}

func (b *Ball) clampVelocity() {
	b.VX = clamp(b.VX, b.MaxSpeed)
	b.VY = clamp(b.VY, b.MaxSpeed)
}

func clamp(v, limit float64) float64 {
	if v > limit {
		return limit
	}
	if v < -limit {
		return -limit
	}
	return v
}

func (b *Ball) playPaddleHit() {
	if b.sounds != nil {
		b.sounds.PlayPaddleHit()
	}
}

// Reset places the ball back on its spawn point and serves in a random diagonal
func (b *Ball) Reset() {
	b.X = b.OriginX
	b.Y = b.OriginY
	b.VX = b.pick(ServeSpeedX)
	b.VY = b.pick(ServeSpeedY)
}

// pick returns -v or v with equal odds
func (b *Ball) pick(v float64) float64 {
	if b.rng.Intn(2) == 0 {
		return -v
	}
	return v
}

func (b *Ball) Rect() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.Width, H: b.Height}
}
