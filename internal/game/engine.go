package game

import (
	"math/rand"

	"github.com/diegok/pingpong/internal/protocol"
)

// Constants for match management
const (
	TickRate            = 60 // Frames per second
	CourtWidth          = 800
	CourtHeight         = 600
	PaddleMargin        = 10 // Gap between the player paddle and the left wall
	DefaultWinningScore = 5
)

// ReplayOptions lists the winning scores offered on the game over screen
var ReplayOptions = []int{3, 5, 7}

// Engine owns both paddles and the ball and runs the match state machine
type Engine struct {
	width  int
	height int
	player *Paddle
	ai     *Paddle
	ball   *Ball
	sounds SoundPlayer

	frame        int
	playerScore  int
	aiScore      int
	winningScore int
	gameOver     bool
	winner       protocol.Side
}

// NewEngine creates a match on a width x height court.
// rng drives the ball's serve direction; sounds may be nil.
func NewEngine(width, height, winningScore int, rng *rand.Rand, sounds SoundPlayer) *Engine {
	e := &Engine{
		width:        width,
		height:       height,
		winningScore: winningScore,
		sounds:       sounds,
	}

	startY := e.paddleStartY()
	e.player = NewPaddle(PaddleMargin, startY, PaddleWidth, PaddleHeight)
	e.ai = NewPaddle(float64(width-PaddleMargin-PaddleWidth), startY, PaddleWidth, PaddleHeight)
	e.ball = NewBall(float64(width/2), float64(height/2), float64(width), float64(height), rng, sounds)

	return e
}

func (e *Engine) paddleStartY() float64 {
	return float64(e.height/2 - PaddleHeight/2)
}

// HandleInput applies the held movement keys to the player paddle.
// Ignored once the match is over.
func (e *Engine) HandleInput(keys protocol.KeyState) {
	if e.gameOver {
		return
	}

	if keys.Up {
		e.player.Move(-PlayerSpeed, float64(e.height))
	}
	if keys.Down {
		e.player.Move(PlayerSpeed, float64(e.height))
	}
}

// HandleGameOverInput processes a menu key on the game over screen.
// Any key outside the menu, or any key while playing, yields ActionNone.
func (e *Engine) HandleGameOverInput(key protocol.Key) protocol.Action {
	if !e.gameOver {
		return protocol.ActionNone
	}

	switch key {
	case protocol.Key3:
		e.StartNewGame(3)
		return protocol.ActionContinue
	case protocol.Key5:
		e.StartNewGame(5)
		return protocol.ActionContinue
	case protocol.Key7:
		e.StartNewGame(7)
		return protocol.ActionContinue
	case protocol.KeyEscape:
		return protocol.ActionExit
	}

	return protocol.ActionNone
}

// StartNewGame sets a new winning score and resets the match
func (e *Engine) StartNewGame(winningScore int) {
	e.winningScore = winningScore
	e.ResetGame()
}

// ResetGame clears scores and flags and re-centres everything.
// The winning score is kept.
func (e *Engine) ResetGame() {
	e.playerScore = 0
	e.aiScore = 0
	e.gameOver = false
	e.winner = protocol.SideNone
	e.frame = 0

	e.ball.Reset()

	e.player.Y = e.paddleStartY()
	e.ai.Y = e.paddleStartY()
}

// Update runs one frame
func (e *Engine) Update() {
	if e.gameOver {
		return
	}
	e.frame++

	e.ball.Move()
	e.ball.CheckCollision(e.player, e.ai)

	if e.ball.X <= 0 {
		e.aiScore++
		e.pointScored()
	} else if e.ball.X >= float64(e.width) {
		e.playerScore++
		e.pointScored()
	}

	// Tracks even on a scoring frame, against the freshly served ball
	e.ai.AutoTrack(e.ball, float64(e.height))
}

// pointScored ends the match if a threshold was reached, then serves again regardless
func (e *Engine) pointScored() {
	if e.sounds != nil {
		e.sounds.PlayScore()
	}
	e.checkGameOver()
	e.ball.Reset()
}

func (e *Engine) checkGameOver() {
	if e.playerScore >= e.winningScore {
		e.gameOver = true
		e.winner = protocol.SidePlayer
	} else if e.aiScore >= e.winningScore {
		e.gameOver = true
		e.winner = protocol.SideAI
	}
}

func (e *Engine) Player() *Paddle { return e.player }
func (e *Engine) AI() *Paddle     { return e.ai }
func (e *Engine) Ball() *Ball     { return e.ball }

func (e *Engine) PlayerScore() int  { return e.playerScore }
func (e *Engine) AIScore() int      { return e.aiScore }
func (e *Engine) WinningScore() int { return e.winningScore }
func (e *Engine) IsGameOver() bool  { return e.gameOver }

// Winner returns the side that won, or SideNone while the match is running
func (e *Engine) Winner() protocol.Side { return e.winner }

func (e *Engine) Width() int  { return e.width }
func (e *Engine) Height() int { return e.height }

// Snapshot converts the match into the renderer's read-only view
func (e *Engine) Snapshot() protocol.GameState {
	options := make([]int, len(ReplayOptions))
	copy(options, ReplayOptions)

	return protocol.GameState{
		Frame: e.frame,
		Ball: protocol.BallState{
			BoxState: e.ball.Rect().box(),
			VX:       e.ball.VX,
			VY:       e.ball.VY,
		},
		Player:       e.player.Rect().box(),
		AI:           e.ai.Rect().box(),
		PlayerScore:  e.playerScore,
		AIScore:      e.aiScore,
		CourtWidth:   e.width,
		CourtHeight:  e.height,
		WinningScore: e.winningScore,
		GameOver:     e.gameOver,
		Winner:       e.winner,
		Options:      options,
		Recommended:  DefaultWinningScore,
	}
}
