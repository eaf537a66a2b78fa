package game

import "github.com/diegok/pickleball/internal/protocol"

// KeyHoldTicks is the default time a key press counts as held (500ms at
// 60Hz). Terminals report key repeats but never key releases, and the first
// repeat usually arrives 250-500ms after the press.
const KeyHoldTicks = 30

type InputMode int

const (
	ModeKeyboard InputMode = iota
	ModePointer
)

// Input is the latest control state for the human paddle. Writers overwrite
// it as events arrive; the simulation reads it once per tick.
type Input struct {
	Mode      InputMode
	PointerY  float64 // Court units
	HoldTicks int     // 0 means KeyHoldTicks
	upTicks   int
	downTicks int
}

func (in *Input) holdTicks() int {
	if in.HoldTicks > 0 {
		return in.HoldTicks
	}
	return KeyHoldTicks
}

// Press marks dir as held and switches to keyboard mode
func (in *Input) Press(dir protocol.Direction) {
	in.Mode = ModeKeyboard
	switch dir {
	case protocol.DirUp:
		in.upTicks = in.holdTicks()
	case protocol.DirDown:
		in.downTicks = in.holdTicks()
	}
}

// Point records a pointer position and switches to pointer mode
func (in *Input) Point(y float64) {
	in.Mode = ModePointer
	in.PointerY = y
}

func (in *Input) Held(dir protocol.Direction) bool {
	switch dir {
	case protocol.DirUp:
		return in.upTicks > 0
	case protocol.DirDown:
		return in.downTicks > 0
	}
	return false
}

// Tick ages the held keys by one frame
func (in *Input) Tick() {
	if in.upTicks > 0 {
		in.upTicks--
	}
	if in.downTicks > 0 {
		in.downTicks--
	}
}

// Apply moves p according to the active mode and clamps it
func (in *Input) Apply(p *Paddle, courtHeight float64) {
	switch in.Mode {
	case ModePointer:
		p.CenterOn(in.PointerY, courtHeight)
	default:
		if in.Held(protocol.DirUp) {
			p.Step(protocol.DirUp, courtHeight)
		}
		if in.Held(protocol.DirDown) {
			p.Step(protocol.DirDown, courtHeight)
		}
	}
	p.Clamp(courtHeight)
}
