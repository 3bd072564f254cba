package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/diegok/pingpong/internal/protocol"
)

// HoldFrames is how long a direction stays held after its last key press (~133ms at 60Hz).
// Terminals report presses and auto-repeat but never releases.
const HoldFrames = 8

// KeyToDirection converts a key event to a movement direction
// For Pong, only up/down movement is allowed
func KeyToDirection(key tcell.Key, r rune) protocol.Direction {
	switch key {
	case tcell.KeyUp:
		return protocol.DirUp
	case tcell.KeyDown:
		return protocol.DirDown
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return protocol.DirUp
		case 's', 'S':
			return protocol.DirDown
		}
	}
	return protocol.DirNone
}

// KeyToMenuKey converts a key event to a game over menu key
func KeyToMenuKey(key tcell.Key, r rune) protocol.Key {
	switch key {
	case tcell.KeyEscape:
		return protocol.KeyEscape
	case tcell.KeyRune:
		switch r {
		case '3':
			return protocol.Key3
		case '5':
			return protocol.Key5
		case '7':
			return protocol.Key7
		}
	}
	return protocol.KeyNone
}

// IsQuitKey returns true if the key should quit the application during play
func IsQuitKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return true
	}
	if key == tcell.KeyRune && (r == 'q' || r == 'Q') {
		return true
	}
	return false
}

// IsInterruptKey returns true for Ctrl+C, which quits from any screen
func IsInterruptKey(key tcell.Key) bool {
	return key == tcell.KeyCtrlC
}

// IsMuteKey returns true if the key should toggle sound
func IsMuteKey(key tcell.Key, r rune) bool {
	return key == tcell.KeyRune && (r == 'm' || r == 'M')
}

// HeldKeys turns discrete key presses into a per-frame held-key snapshot
type HeldKeys struct {
	upTicks   int
	downTicks int
}

// Press marks dir as held for the next HoldFrames frames.
// Pressing one direction releases the other.
func (h *HeldKeys) Press(dir protocol.Direction) {
	switch dir {
	case protocol.DirUp:
		h.upTicks = HoldFrames
		h.downTicks = 0
	case protocol.DirDown:
		h.downTicks = HoldFrames
		h.upTicks = 0
	}
}

// Frame returns the keys held this frame and counts down the hold timeout
func (h *HeldKeys) Frame() protocol.KeyState {
	state := protocol.KeyState{Up: h.upTicks > 0, Down: h.downTicks > 0}
	if h.upTicks > 0 {
		h.upTicks--
	}
	if h.downTicks > 0 {
		h.downTicks--
	}
	return state
}

// Release drops every held key
func (h *HeldKeys) Release() {
	h.upTicks = 0
	h.downTicks = 0
}
