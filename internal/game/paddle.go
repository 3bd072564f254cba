package game

import "github.com/diegok/pingpong/internal/protocol"

const (
	PaddleWidth  = 10
	PaddleHeight = 100
	PlayerSpeed  = 10 // Pixels per frame while a key is held
	AISpeed      = 5  // Max pixels per frame the AI paddle tracks the ball
)

// Rect is an axis-aligned box in court coordinates
type Rect struct {
	X, Y, W, H float64
}

// Overlaps reports whether two boxes share any area. Touching edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// CenterY returns the vertical midpoint
func (r Rect) CenterY() float64 {
	return r.Y + r.H/2
}

func (r Rect) box() protocol.BoxState {
	return protocol.BoxState{X: r.X, Y: r.Y, Width: r.W, Height: r.H}
}

type Paddle struct {
	X      float64 // Fixed column
	Y      float64 // Top edge
	Width  float64
	Height float64
}

func NewPaddle(x, y, width, height float64) *Paddle {
	return &Paddle{X: x, Y: y, Width: width, Height: height}
}

// Move shifts the paddle by delta and keeps it inside [0, boundHeight-Height]
func (p *Paddle) Move(delta, boundHeight float64) {
	p.Y += delta
	p.clamp(boundHeight)
}

// AutoTrack steers the paddle centre toward the ball centre, at most AISpeed per call
func (p *Paddle) AutoTrack(ball *Ball, boundHeight float64) {
	diff := ball.Rect().CenterY() - p.Rect().CenterY()
	switch {
	case diff > AISpeed:
		diff = AISpeed
	case diff < -AISpeed:
		diff = -AISpeed
	}
	p.Move(diff, boundHeight)
}

func (p *Paddle) Rect() Rect {
	return Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

func (p *Paddle) clamp(boundHeight float64) {
	maxY := boundHeight - p.Height
	if p.Y > maxY {
		p.Y = maxY
	}
	if p.Y < 0 {
		p.Y = 0
	}
}
