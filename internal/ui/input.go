package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/diegok/pickleball/internal/game"
	"github.com/diegok/pickleball/internal/protocol"
)

// KeyToDirection converts a key event to a movement direction
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

// IsQuitKey returns true if the key should quit the application
func IsQuitKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyCtrlC {
		return true
	}
	return key == tcell.KeyRune && (r == 'q' || r == 'Q')
}

// IsStartKey returns true if the key should start/confirm
func IsStartKey(key tcell.Key) bool {
	return key == tcell.KeyEnter
}

func IsPauseKey(key tcell.Key, r rune) bool {
	return key == tcell.KeyRune && (r == 'p' || r == 'P' || r == ' ')
}

// IsMenuKey returns true if the key should leave to the menu
func IsMenuKey(key tcell.Key) bool {
	return key == tcell.KeyEscape
}

// KeyToDifficulty maps the digit keys 1-3 to a difficulty
func KeyToDifficulty(key tcell.Key, r rune) (game.Difficulty, bool) {
	if key != tcell.KeyRune {
		return game.Medium, false
	}
	switch r {
	case '1':
		return game.Easy, true
	case '2':
		return game.Medium, true
	case '3':
		return game.Hard, true
	}
	return game.Medium, false
}

// KeyToCycle returns -1 or +1 for the menu left/right keys, 0 otherwise
func KeyToCycle(key tcell.Key, r rune) int {
	switch key {
	case tcell.KeyLeft:
		return -1
	case tcell.KeyRight:
		return 1
	case tcell.KeyRune:
		switch r {
		case 'a', 'A':
			return -1
		case 'd', 'D':
			return 1
		}
	}
	return 0
}
