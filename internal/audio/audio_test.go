package audio

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/gopxl/beep/v2"

	"github.com/diegok/pickleball/internal/game"
	"github.com/diegok/pickleball/internal/protocol"
)

func drain(t *testing.T, s beep.Streamer) (total int, peak float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = math.Max(peak, math.Abs(smp[0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never finished")
	return 0, 0
}

func TestStreamer_Length(t *testing.T) {
	for c, notes := range cueNotes {
		want := 0
		for _, n := range notes {
			want += sampleRate.N(n.dur)
		}
		got, peak := drain(t, Streamer(c))
		if got != want {
			t.Errorf("%v: expected %d samples, got %d", c, want, got)
		}
		if peak > volume {
			t.Errorf("%v: peak %v exceeds volume %v", c, peak, volume)
		}
	}
}

func TestStreamer_Unknown(t *testing.T) {
	if Streamer(Cue(99)) != nil {
		t.Error("unknown cue should have no streamer")
	}
}

func TestSquareWave(t *testing.T) {
	got, peak := drain(t, squareWave(440, 10*time.Millisecond))
	if want := sampleRate.N(10 * time.Millisecond); got != want {
		t.Errorf("expected %d samples, got %d", want, got)
	}
	if peak != volume {
		t.Errorf("expected peak %v, got %v", volume, peak)
	}
}

func TestCuesFor(t *testing.T) {
	none := protocol.SideNone
	tests := []struct {
		name string
		ev   game.Events
		want []Cue
	}{
		{"nothing", game.Events{PaddleHit: none, Scorer: none}, nil},
		{"paddle hit", game.Events{PaddleHit: protocol.SideRight, Scorer: none}, []Cue{CuePaddleHit}},
		{"wall", game.Events{WallBounce: true, PaddleHit: none, Scorer: none}, []Cue{CueWallBounce}},
		{"point", game.Events{PaddleHit: none, Scorer: protocol.SideRight}, []Cue{CuePoint}},
		{"win", game.Events{PaddleHit: none, Scorer: protocol.SideLeft, GameOver: true}, []Cue{CueWin}},
		{"lose", game.Events{PaddleHit: none, Scorer: protocol.SideRight, GameOver: true}, []Cue{CueLose}},
		{"wall and point", game.Events{WallBounce: true, PaddleHit: none, Scorer: protocol.SideLeft}, []Cue{CueWallBounce, CuePoint}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CuesFor(tt.ev); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("CuesFor() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPlayer_Sink(t *testing.T) {
	played := 0
	p := NewPlayerWithSink(func(beep.Streamer) { played++ })
	if !p.Enabled() {
		t.Fatal("player with sink should be enabled")
	}

	p.Play(CuePaddleHit)
	p.Play(CueWallBounce)
	p.Play(Cue(99))
	if played != 2 {
		t.Errorf("expected 2 cues played, got %d", played)
	}

	p.Close()
	p.Play(CuePoint)
	if played != 2 {
		t.Error("closed player should be silent")
	}
}

func TestPlayer_Muted(t *testing.T) {
	p, err := NewPlayer(true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Enabled() {
		t.Error("muted player should be disabled")
	}
	p.Play(CueWin)
	p.Close()
}

func TestCueString(t *testing.T) {
	if CuePaddleHit.String() != "paddle-hit" || CueLose.String() != "lose" || Cue(99).String() != "unknown" {
		t.Error("unexpected cue names")
	}
}
