package game

import (
	"math"
	"math/rand"
	"testing"
)

type recordingSounds struct {
	paddleHits  int
	wallBounces int
	scores      int
}

func (r *recordingSounds) PlayPaddleHit()  { r.paddleHits++ }
func (r *recordingSounds) PlayWallBounce() { r.wallBounces++ }
func (r *recordingSounds) PlayScore()      { r.scores++ }

func newTestBall(sounds SoundPlayer) *Ball {
	return NewBall(400, 300, CourtWidth, CourtHeight, rand.New(rand.NewSource(1)), sounds)
}

func leftPaddle() *Paddle {
	return NewPaddle(10, 250, PaddleWidth, PaddleHeight)
}

func rightPaddle() *Paddle {
	return NewPaddle(780, 250, PaddleWidth, PaddleHeight)
}

func TestBall_Move(t *testing.T) {
	ball := newTestBall(nil)
	ball.X, ball.Y = 10.0, 20.0
	ball.VX, ball.VY = 5.0, -3.0

	ball.Move()

	if ball.X != 15.0 {
		t.Errorf("expected X=15.0, got %f", ball.X)
	}
	if ball.Y != 17.0 {
		t.Errorf("expected Y=17.0, got %f", ball.Y)
	}
}

func TestBall_MoveBounceTop(t *testing.T) {
	sounds := &recordingSounds{}
	ball := newTestBall(sounds)
	ball.X, ball.Y = 0, 0
	ball.VX, ball.VY = 5, -3

	ball.Move()

	if ball.VY != 3 {
		t.Errorf("expected VY=3 after top bounce, got %f", ball.VY)
	}
	if ball.Y != 0 {
		t.Errorf("expected Y clamped to 0, got %f", ball.Y)
	}
	if sounds.wallBounces != 1 {
		t.Errorf("expected 1 wall bounce sound, got %d", sounds.wallBounces)
	}
}

func TestBall_MoveBounceBottom(t *testing.T) {
	sounds := &recordingSounds{}
	ball := newTestBall(sounds)
	ball.Y = 590
	ball.VY = 5

	ball.Move()

	if ball.VY != -5 {
		t.Errorf("expected VY=-5 after bottom bounce, got %f", ball.VY)
	}
	if want := CourtHeight - ball.Height; ball.Y != want {
		t.Errorf("expected Y clamped to %f, got %f", want, ball.Y)
	}
	if sounds.wallBounces != 1 {
		t.Errorf("expected 1 wall bounce sound, got %d", sounds.wallBounces)
	}
}

func TestBall_MoveAwayFromWallDoesNotBounceAgain(t *testing.T) {
	sounds := &recordingSounds{}
	ball := newTestBall(sounds)
	ball.Y = 0
	ball.VY = 3

	ball.Move()

	if ball.VY != 3 {
		t.Errorf("expected VY to stay 3, got %f", ball.VY)
	}
	if sounds.wallBounces != 0 {
		t.Errorf("expected no wall bounce sound, got %d", sounds.wallBounces)
	}
}

func TestBall_LeftPaddleHit(t *testing.T) {
	sounds := &recordingSounds{}
	ball := newTestBall(sounds)
	// Ball centre level with paddle centre
	ball.X, ball.Y = 15, 296.5
	ball.VX, ball.VY = -5, 3

	ball.CheckCollision(leftPaddle(), rightPaddle())

	if math.Abs(ball.VX-5.25) > 1e-9 {
		t.Errorf("expected VX=5.25, got %f", ball.VX)
	}
	if ball.X != 20 {
		t.Errorf("expected X pushed to paddle right edge 20, got %f", ball.X)
	}
	if ball.VY != 3 {
		t.Errorf("expected centre hit to leave VY=3, got %f", ball.VY)
	}
	if sounds.paddleHits != 1 {
		t.Errorf("expected 1 paddle hit sound, got %d", sounds.paddleHits)
	}
}

func TestBall_RightPaddleHit(t *testing.T) {
	sounds := &recordingSounds{}
	ball := newTestBall(sounds)
	ball.X, ball.Y = 775, 296.5
	ball.VX, ball.VY = 5, -3

	ball.CheckCollision(leftPaddle(), rightPaddle())

	if math.Abs(ball.VX+5.25) > 1e-9 {
		t.Errorf("expected VX=-5.25, got %f", ball.VX)
	}
	if ball.X != 773 {
		t.Errorf("expected X pushed to paddle left edge minus width (773), got %f", ball.X)
	}
	if sounds.paddleHits != 1 {
		t.Errorf("expected 1 paddle hit sound, got %d", sounds.paddleHits)
	}
}

func TestBall_RecedingOverlapDoesNotBounce(t *testing.T) {
	sounds := &recordingSounds{}
	ball := newTestBall(sounds)
	ball.X, ball.Y = 15, 296.5
	ball.VX, ball.VY = 5, 3

	// Sustained overlap over several frames must never flip the ball back
	for i := 0; i < 3; i++ {
		ball.CheckCollision(leftPaddle(), rightPaddle())
	}

	if ball.VX != 5 {
		t.Errorf("expected VX unchanged at 5, got %f", ball.VX)
	}
	if ball.X != 15 {
		t.Errorf("expected X unchanged at 15, got %f", ball.X)
	}
	if sounds.paddleHits != 0 {
		t.Errorf("expected no paddle hit sound, got %d", sounds.paddleHits)
	}
}

func TestBall_MissesPaddle(t *testing.T) {
	ball := newTestBall(nil)
	ball.X, ball.Y = 15, 100 // Level with the paddle column but far above it
	ball.VX, ball.VY = -5, 3

	ball.CheckCollision(leftPaddle(), rightPaddle())

	if ball.VX != -5 {
		t.Errorf("expected VX unchanged at -5, got %f", ball.VX)
	}
}

func TestBall_SpinFollowsHitPosition(t *testing.T) {
	tests := []struct {
		name   string
		ballY  float64 // top edge; ball is 7 high so centre is ballY+3.5
		wantVY float64
	}{
		{"centre hit", 296.5, 0},
		{"upper hit sends ball up", 256.5, -1.6},
		{"lower hit sends ball down", 336.5, 1.6},
		{"top edge", 246.5, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ball := newTestBall(nil)
			ball.X, ball.Y = 15, tt.ballY
			ball.VX, ball.VY = -5, 0

			ball.CheckCollision(leftPaddle(), rightPaddle())

			if math.Abs(ball.VY-tt.wantVY) > 1e-9 {
				t.Errorf("expected VY=%f, got %f", tt.wantVY, ball.VY)
			}
		})
	}
}

func TestBall_LeftPaddleWinsWhenBothOverlap(t *testing.T) {
	ball := newTestBall(nil)
	ball.X, ball.Y = 15, 296.5
	ball.VX, ball.VY = 5, 0

	// Right paddle placed on top of the left one; only the left is considered
	right := NewPaddle(12, 250, PaddleWidth, PaddleHeight)
	ball.CheckCollision(leftPaddle(), right)

	if ball.VX != 5 {
		t.Errorf("expected right paddle to be skipped while left overlaps, VX=%f", ball.VX)
	}
}

func TestBall_VelocityClampedAfterHit(t *testing.T) {
	ball := newTestBall(nil)
	ball.X, ball.Y = 15, 346.5 // Bottom edge of paddle, full downward spin
	ball.VX, ball.VY = -15, 14

	ball.CheckCollision(leftPaddle(), rightPaddle())

	if ball.VX != MaxBallSpeed {
		t.Errorf("expected VX clamped to %d, got %f", MaxBallSpeed, ball.VX)
	}
	if ball.VY != MaxBallSpeed {
		t.Errorf("expected VY clamped to %d, got %f", MaxBallSpeed, ball.VY)
	}
}

func TestBall_VelocityClampedWithoutHit(t *testing.T) {
	ball := newTestBall(nil)
	ball.VX, ball.VY = -40, 22

	ball.CheckCollision(leftPaddle(), rightPaddle())

	if ball.VX != -MaxBallSpeed || ball.VY != MaxBallSpeed {
		t.Errorf("expected velocity clamped to (-15, 15), got (%f, %f)", ball.VX, ball.VY)
	}
}

func TestBall_Reset(t *testing.T) {
	ball := newTestBall(nil)

	seen := map[[2]float64]bool{}
	for i := 0; i < 200; i++ {
		ball.X, ball.Y = 1, 1
		ball.Reset()

		if ball.X != 400 || ball.Y != 300 {
			t.Fatalf("expected ball at spawn (400, 300), got (%f, %f)", ball.X, ball.Y)
		}
		if math.Abs(ball.VX) != ServeSpeedX {
			t.Fatalf("expected |VX|=%d, got %f", ServeSpeedX, ball.VX)
		}
		if math.Abs(ball.VY) != ServeSpeedY {
			t.Fatalf("expected |VY|=%d, got %f", ServeSpeedY, ball.VY)
		}
		seen[[2]float64{ball.VX, ball.VY}] = true
	}

	if len(seen) != 4 {
		t.Errorf("expected all 4 serve directions over 200 resets, saw %d", len(seen))
	}
}

func TestBall_ResetDeterministicForSeed(t *testing.T) {
	a := NewBall(400, 300, CourtWidth, CourtHeight, rand.New(rand.NewSource(42)), nil)
	b := NewBall(400, 300, CourtWidth, CourtHeight, rand.New(rand.NewSource(42)), nil)

	for i := 0; i < 20; i++ {
		if a.VX != b.VX || a.VY != b.VY {
			t.Fatalf("serve %d differs for the same seed: (%f,%f) vs (%f,%f)", i, a.VX, a.VY, b.VX, b.VY)
		}
		a.Reset()
		b.Reset()
	}
}

func TestBall_Rect(t *testing.T) {
	ball := newTestBall(nil)
	ball.X, ball.Y = 12, 34

	r := ball.Rect()
	if r != (Rect{X: 12, Y: 34, W: BallSize, H: BallSize}) {
		t.Errorf("unexpected rect %+v", r)
	}
}
