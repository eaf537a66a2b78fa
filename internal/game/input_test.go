package game

import (
	"testing"

	"github.com/diegok/pickleball/internal/protocol"
)

func TestInput_PressHoldsForTimeout(t *testing.T) {
	var in Input
	in.Press(protocol.DirUp)

	if in.Mode != ModeKeyboard {
		t.Errorf("expected keyboard mode after a key press")
	}
	for i := 0; i < KeyHoldTicks; i++ {
		if !in.Held(protocol.DirUp) {
			t.Fatalf("expected up held on tick %d", i)
		}
		in.Tick()
	}
	if in.Held(protocol.DirUp) {
		t.Error("expected up released after the hold timeout")
	}
	if in.Held(protocol.DirDown) {
		t.Error("down was never pressed")
	}
}

func TestInput_CustomHoldTicks(t *testing.T) {
	tests := []struct {
		name      string
		holdTicks int
		want      int
	}{
		{"default", 0, KeyHoldTicks},
		{"short", 3, 3},
		{"long", 45, 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := Input{HoldTicks: tt.holdTicks}
			in.Press(protocol.DirDown)

			held := 0
			for in.Held(protocol.DirDown) {
				held++
				in.Tick()
				if held > 1000 {
					t.Fatal("key never released")
				}
			}
			if held != tt.want {
				t.Errorf("expected key held for %d ticks, got %d", tt.want, held)
			}
		})
	}
}

func TestInput_HoldOutlastsKeyRepeatDelay(t *testing.T) {
	// Terminals start repeating a held key after up to 500ms
	const repeatDelay = TickRate / 2

	var in Input
	in.Press(protocol.DirUp)
	for i := 0; i < repeatDelay; i++ {
		if !in.Held(protocol.DirUp) {
			t.Fatalf("key released on tick %d, before the first repeat", i)
		}
		in.Tick()
	}

	// First repeat re-arms the hold
	in.Press(protocol.DirUp)
	if !in.Held(protocol.DirUp) {
		t.Error("repeat should keep the key held")
	}
}

func TestInput_LastDeviceWins(t *testing.T) {
	var in Input

	in.Press(protocol.DirUp)
	in.Point(300)
	if in.Mode != ModePointer {
		t.Fatalf("expected pointer mode after pointer move")
	}

	in.Press(protocol.DirDown)
	if in.Mode != ModeKeyboard {
		t.Fatalf("expected keyboard mode after key press")
	}
}

func TestInput_ApplyKeyboard(t *testing.T) {
	paddle := NewPaddle(protocol.SideLeft, CourtWidth, CourtHeight, true)
	initialY := paddle.Y

	var in Input
	in.Press(protocol.DirUp)
	in.Apply(paddle, CourtHeight)

	if paddle.Y != initialY-PaddleStep {
		t.Errorf("expected Y=%f, got %f", initialY-PaddleStep, paddle.Y)
	}

	// Both held: each applies in turn and they cancel out
	in.Press(protocol.DirDown)
	y := paddle.Y
	in.Apply(paddle, CourtHeight)
	if paddle.Y != y {
		t.Errorf("expected no net movement with both keys held, was %f, now %f", y, paddle.Y)
	}
}

func TestInput_ApplyPointer(t *testing.T) {
	paddle := NewPaddle(protocol.SideLeft, CourtWidth, CourtHeight, true)

	var in Input
	in.Point(100)
	in.Apply(paddle, CourtHeight)

	if paddle.CenterY() != 100 {
		t.Errorf("expected paddle centred at 100, got %f", paddle.CenterY())
	}

	in.Point(CourtHeight * 3)
	in.Apply(paddle, CourtHeight)
	if paddle.Y != CourtHeight-paddle.Height {
		t.Errorf("expected paddle clamped to bottom, got %f", paddle.Y)
	}
}

func TestInput_ApplyIdle(t *testing.T) {
	paddle := NewPaddle(protocol.SideLeft, CourtWidth, CourtHeight, true)
	initialY := paddle.Y

	var in Input
	in.Apply(paddle, CourtHeight)

	if paddle.Y != initialY {
		t.Errorf("expected idle input to leave paddle alone, got %f", paddle.Y)
	}
}
