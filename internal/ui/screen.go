package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// boxRunes are the single-line frame glyphs used by DrawBox
var boxRunes = struct {
	topLeft, topRight, bottomLeft, bottomRight, horizontal, vertical rune
}{'┌', '┐', '└', '┘', '─', '│'}

// Screen wraps a tcell.Screen with clipped drawing helpers
type Screen struct {
	screen tcell.Screen
}

// NewScreen wraps an already initialized tcell screen
func NewScreen(s tcell.Screen) *Screen {
	return &Screen{screen: s}
}

// InitScreen takes over the terminal
func InitScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create terminal screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init terminal screen: %w", err)
	}
	s.HideCursor()
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	return NewScreen(s), nil
}

func (s *Screen) Size() (int, int) {
	return s.screen.Size()
}

func (s *Screen) Clear() {
	s.screen.Clear()
}

func (s *Screen) Show() {
	s.screen.Show()
}

func (s *Screen) Fini() {
	s.screen.Fini()
}

func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// SetCell draws r at (x, y); cells outside the terminal are dropped
func (s *Screen) SetCell(x, y int, style tcell.Style, r rune) {
	w, h := s.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	s.screen.SetContent(x, y, r, nil, style)
}

// DrawText writes text one rune per cell starting at x
func (s *Screen) DrawText(x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		s.SetCell(x+i, y, style, r)
	}
}

// DrawCentered writes text centered horizontally on row y
func (s *Screen) DrawCentered(y int, text string, style tcell.Style) {
	w, _ := s.screen.Size()
	s.DrawText((w-len([]rune(text)))/2, y, text, style)
}

// DrawBox draws a single-line frame of w by h cells with its corner at (x, y)
func (s *Screen) DrawBox(x, y, w, h int, style tcell.Style) {
	right, bottom := x+w-1, y+h-1

	s.FillRect(x+1, y, w-2, 1, style, boxRunes.horizontal)
	s.FillRect(x+1, bottom, w-2, 1, style, boxRunes.horizontal)
	s.FillRect(x, y+1, 1, h-2, style, boxRunes.vertical)
	s.FillRect(right, y+1, 1, h-2, style, boxRunes.vertical)

	s.SetCell(x, y, style, boxRunes.topLeft)
	s.SetCell(right, y, style, boxRunes.topRight)
	s.SetCell(x, bottom, style, boxRunes.bottomLeft)
	s.SetCell(right, bottom, style, boxRunes.bottomRight)
}

// FillRect paints a w by h block with r
func (s *Screen) FillRect(x, y, w, h int, style tcell.Style, r rune) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			s.SetCell(x+dx, y+dy, style, r)
		}
	}
}

// FillRow paints a whole terminal row, used for bars
func (s *Screen) FillRow(y int, style tcell.Style) {
	w, _ := s.screen.Size()
	s.FillRect(0, y, w, 1, style, ' ')
}
