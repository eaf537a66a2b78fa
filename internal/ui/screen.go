package ui

import (
	"errors"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// ErrNoScreen is returned when there is nothing to draw on
var ErrNoScreen = errors.New("no screen available")

type Screen struct {
	screen tcell.Screen
	fini   sync.Once
}

func NewScreen(s tcell.Screen) *Screen {
	return &Screen{screen: s}
}

// InitScreen opens the terminal with mouse motion reporting enabled
func InitScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.EnableMouse(tcell.MouseMotionEvents)
	s.HideCursor()
	return NewScreen(s), nil
}

// NewSimulationScreen returns an in-memory screen of the given size, used by
// tests and headless runs.
func NewSimulationScreen(w, h int) (*Screen, tcell.SimulationScreen, error) {
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		return nil, nil, err
	}
	s.SetSize(w, h)
	return NewScreen(s), s, nil
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

func (s *Screen) Sync() {
	s.screen.Sync()
}

// Fini restores the terminal. Calling it again is a no-op.
func (s *Screen) Fini() {
	s.fini.Do(s.screen.Fini)
}

func (s *Screen) SetCell(x, y int, style tcell.Style, r rune) {
	s.screen.SetContent(x, y, r, nil, style)
}

// Cell returns the rune at x, y
func (s *Screen) Cell(x, y int) rune {
	r, _, _, _ := s.screen.GetContent(x, y)
	return r
}

func (s *Screen) DrawText(x, y int, text string, style tcell.Style) {
	i := 0
	for _, r := range text {
		s.screen.SetContent(x+i, y, r, nil, style)
		i++
	}
}

// DrawTextCentered draws text horizontally centred on row y
func (s *Screen) DrawTextCentered(y int, text string, style tcell.Style) {
	w, _ := s.Size()
	s.DrawText((w-len([]rune(text)))/2, y, text, style)
}

func (s *Screen) DrawBox(x, y, w, h int, style tcell.Style) {
	const (
		topLeft     = '┌'
		topRight    = '┐'
		bottomLeft  = '└'
		bottomRight = '┘'
		horizontal  = '─'
		vertical    = '│'
	)

	s.screen.SetContent(x, y, topLeft, nil, style)
	s.screen.SetContent(x+w-1, y, topRight, nil, style)
	s.screen.SetContent(x, y+h-1, bottomLeft, nil, style)
	s.screen.SetContent(x+w-1, y+h-1, bottomRight, nil, style)

	for i := x + 1; i < x+w-1; i++ {
		s.screen.SetContent(i, y, horizontal, nil, style)
		s.screen.SetContent(i, y+h-1, horizontal, nil, style)
	}

	for j := y + 1; j < y+h-1; j++ {
		s.screen.SetContent(x, j, vertical, nil, style)
		s.screen.SetContent(x+w-1, j, vertical, nil, style)
	}
}

func (s *Screen) FillRect(x, y, w, h int, style tcell.Style, r rune) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			s.screen.SetContent(x+dx, y+dy, r, nil, style)
		}
	}
}

func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}
