package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/diegok/pickleball/internal/game"
	"github.com/diegok/pickleball/internal/protocol"
)

const (
	sampleRate = beep.SampleRate(44100)
	volume     = 0.2
)

// Cue is a short sound effect
type Cue int

const (
	CuePaddleHit Cue = iota
	CueWallBounce
	CuePoint
	CueWin
	CueLose
)

func (c Cue) String() string {
	switch c {
	case CuePaddleHit:
		return "paddle-hit"
	case CueWallBounce:
		return "wall-bounce"
	case CuePoint:
		return "point"
	case CueWin:
		return "win"
	case CueLose:
		return "lose"
	}
	return "unknown"
}

type note struct {
	freq float64 // 0 is a rest
	dur  time.Duration
}

var cueNotes = map[Cue][]note{
	CuePaddleHit:  {{880, 50 * time.Millisecond}},
	CueWallBounce: {{440, 30 * time.Millisecond}},
	CuePoint:      {{660, 100 * time.Millisecond}, {440, 100 * time.Millisecond}, {330, 150 * time.Millisecond}},
	CueWin:        {{523, 100 * time.Millisecond}, {659, 100 * time.Millisecond}, {784, 100 * time.Millisecond}, {0, 50 * time.Millisecond}, {1047, 250 * time.Millisecond}},
	CueLose:       {{392, 150 * time.Millisecond}, {330, 150 * time.Millisecond}, {262, 300 * time.Millisecond}},
}

// squareWave generates a square wave tone (more retro/8-bit feel)
func squareWave(freq float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, false
			}
			val := volume
			if math.Mod(phase, 1.0) > 0.5 {
				val = -val
			}
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}

// Streamer returns the whole cue as one streamer, nil for an unknown cue
func Streamer(c Cue) beep.Streamer {
	notes, ok := cueNotes[c]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		if n.freq == 0 {
			parts = append(parts, beep.Silence(sampleRate.N(n.dur)))
			continue
		}
		parts = append(parts, squareWave(n.freq, n.dur))
	}
	return beep.Seq(parts...)
}

// CuesFor lists the cues to play for what happened in one step
func CuesFor(ev game.Events) []Cue {
	var cues []Cue
	if ev.PaddleHit != protocol.SideNone {
		cues = append(cues, CuePaddleHit)
	}
	if ev.WallBounce {
		cues = append(cues, CueWallBounce)
	}
	switch {
	case ev.GameOver && ev.Scorer == protocol.SideLeft:
		cues = append(cues, CueWin)
	case ev.GameOver:
		cues = append(cues, CueLose)
	case ev.Scorer != protocol.SideNone:
		cues = append(cues, CuePoint)
	}
	return cues
}

// Player plays cues. A disabled player is silent and safe to use.
type Player struct {
	play  func(beep.Streamer)
	close func()
}

// NewPlayer opens the speaker unless mute is set. If the speaker cannot be
// opened a silent player is returned together with the error.
func NewPlayer(mute bool) (*Player, error) {
	if mute {
		return &Player{}, nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/30)); err != nil {
		return &Player{}, err
	}
	return &Player{
		play:  func(s beep.Streamer) { speaker.Play(s) },
		close: speaker.Close,
	}, nil
}

// NewPlayerWithSink sends cues to play instead of the speaker
func NewPlayerWithSink(play func(beep.Streamer)) *Player {
	return &Player{play: play}
}

func (p *Player) Enabled() bool {
	return p.play != nil
}

func (p *Player) Play(c Cue) {
	if p.play == nil {
		return
	}
	if s := Streamer(c); s != nil {
		p.play(s)
	}
}

// Close shuts down the audio system
func (p *Player) Close() {
	if p.close != nil {
		p.close()
	}
	p.play = nil
	p.close = nil
}
