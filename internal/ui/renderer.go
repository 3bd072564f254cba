package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/pingpong/internal/protocol"
)

const (
	BallChar   = '\u2B24' // ⬤
	PaddleChar = '\u2588' // █
)

const (
	overlayWidth  = 40
	overlayHeight = 15
)

// Renderer draws the court and the game over overlay from a read-only snapshot
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer with the given screen
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// courtView maps court coordinates onto the terminal rows between the score row and status bar
type courtView struct {
	scaleX, scaleY float64
	top, bottom    int // first and last usable row
	width          int
}

func newCourtView(state protocol.GameState, screenW, screenH int) courtView {
	return courtView{
		scaleX: float64(screenW) / float64(state.CourtWidth),
		scaleY: float64(screenH-2) / float64(state.CourtHeight),
		top:    1,
		bottom: screenH - 2,
		width:  screenW,
	}
}

// cells converts a box into a terminal cell span, at least one cell each way
func (v courtView) cells(b protocol.BoxState) (x, y, w, h int) {
	x = int(b.X * v.scaleX)
	y = int(b.Y*v.scaleY) + v.top
	w = int((b.X+b.Width)*v.scaleX) - x
	h = int((b.Y+b.Height)*v.scaleY) + v.top - y
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return x, y, w, h
}

// RenderGame draws one frame: court, paddles, ball, scores, and the overlay when the match is over
func (r *Renderer) RenderGame(state protocol.GameState) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()
	view := newCourtView(state, screenW, screenH)

	// Draw court background (black)
	courtStyle := tcell.StyleDefault.Background(tcell.ColorBlack)
	r.screen.FillRect(0, view.top, screenW, view.bottom-view.top+1, courtStyle, ' ')

	// Draw center dashed line
	centerX := screenW / 2
	lineStyle := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	for y := view.top; y <= view.bottom; y += 2 {
		r.screen.SetCell(centerX, y, lineStyle, '|')
	}

	r.renderScores(state, screenW)

	paddleStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for _, paddle := range []protocol.BoxState{state.Player, state.AI} {
		r.drawBox(view, paddle, paddleStyle, PaddleChar)
	}

	ballX, ballY, _, _ := view.cells(state.Ball.BoxState)
	if ballX >= 0 && ballX < screenW && ballY >= view.top && ballY <= view.bottom {
		ballStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
		r.screen.SetCell(ballX, ballY, ballStyle, BallChar)
	}

	r.renderStatus(state, screenH-1)

	if state.GameOver {
		r.renderGameOver(state, screenW, screenH)
	}

	r.screen.Show()
}

func (r *Renderer) drawBox(view courtView, b protocol.BoxState, style tcell.Style, ch rune) {
	x, y, w, h := view.cells(b)
	for dy := 0; dy < h; dy++ {
		py := y + dy
		if py < view.top || py > view.bottom {
			continue
		}
		for dx := 0; dx < w; dx++ {
			px := x + dx
			if px >= 0 && px < view.width {
				r.screen.SetCell(px, py, style, ch)
			}
		}
	}
}

// renderScores draws the player score at a quarter width and the AI score at three quarters
func (r *Renderer) renderScores(state protocol.GameState, screenW int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	r.screen.DrawText(screenW/4, 0, fmt.Sprintf("%d", state.PlayerScore), style)
	r.screen.DrawText(screenW*3/4, 0, fmt.Sprintf("%d", state.AIScore), style)
}

func (r *Renderer) renderStatus(state protocol.GameState, y int) {
	statusStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite)
	r.screen.FillRow(y, statusStyle)

	sound := "on"
	if !state.SoundOn {
		sound = "off"
	}
	statusText := fmt.Sprintf(" First to %d wins | Sound: %s | W/S move, M mute, ESC quit", state.WinningScore, sound)
	r.screen.DrawText(0, y, statusText, statusStyle)
}

// renderGameOver draws the win banner, final score and replay options in a box over the court
func (r *Renderer) renderGameOver(state protocol.GameState, screenW, screenH int) {
	boxX := (screenW - overlayWidth) / 2
	boxY := (screenH - overlayHeight) / 2

	fillStyle := tcell.StyleDefault.Background(tcell.ColorBlack)
	r.screen.FillRect(boxX, boxY, overlayWidth, overlayHeight, fillStyle, ' ')
	r.screen.DrawBox(boxX, boxY, overlayWidth, overlayHeight, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	winnerStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	r.screen.DrawCentered(boxY+2, fmt.Sprintf("%s Wins!", state.Winner), winnerStyle)

	scoreStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	r.screen.DrawCentered(boxY+4, fmt.Sprintf("Final Score: %d - %d", state.PlayerScore, state.AIScore), scoreStyle)

	r.screen.DrawCentered(boxY+6, "Play Again?", scoreStyle)

	grayStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	r.screen.FillRect(screenW/2-15, boxY+7, 31, 1, grayStyle, '─')

	for i, n := range state.Options {
		style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
		if n == state.Recommended {
			style = tcell.StyleDefault.Foreground(tcell.ColorGreen)
		}
		r.screen.DrawCentered(boxY+8+i, fmt.Sprintf("Press %d for Best of %d", n, n), style)
	}

	r.screen.DrawCentered(boxY+overlayHeight-2, "Press ESC to Exit", grayStyle)
}
