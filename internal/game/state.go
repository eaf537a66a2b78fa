package game

import "github.com/diegok/pickleball/internal/protocol"

// Court and match constants. All simulation math uses these logical units;
// the renderer scales them to the terminal.
const (
	TickRate     = 60 // Ticks per second
	CourtWidth   = 800.0
	CourtHeight  = 400.0
	WinningScore = 11
)

// Events describes what happened during a single Step. It is informational
// only (sounds, logs) and never feeds back into the simulation.
type Events struct {
	WallBounce bool
	PaddleHit  protocol.Side
	Scorer     protocol.Side
	GameOver   bool
}

func noEvents() Events {
	return Events{PaddleHit: protocol.SideNone, Scorer: protocol.SideNone}
}

// Match owns the full simulation state. It is mutated in place by Step and
// must only be touched from the goroutine driving the loop.
type Match struct {
	Phase       protocol.Phase
	Difficulty  Difficulty
	Ball        *Ball
	Player      *Paddle // Left, human controlled
	AI          *Paddle // Right
	Rally       int
	MaxRally    int
	Tick        int
	PointsToWin int
	rng         Rand
}

// NewMatch creates a match sitting in the menu
func NewMatch(rng Rand) *Match {
	m := &Match{
		Phase:       protocol.PhaseMenu,
		Difficulty:  Medium,
		PointsToWin: WinningScore,
		rng:         rng,
	}
	m.reset()
	return m
}

// reset recreates ball and paddles and clears scores and rally counters
func (m *Match) reset() {
	m.Ball = NewBall(CourtWidth/2, CourtHeight/2)
	m.Player = NewPaddle(protocol.SideLeft, CourtWidth, CourtHeight, true)
	m.AI = NewPaddle(protocol.SideRight, CourtWidth, CourtHeight, false)
	m.Rally = 0
	m.MaxRally = 0
	m.Tick = 0

	toward := protocol.SideRight
	if m.rng.Float64() < 0.5 {
		toward = protocol.SideLeft
	}
	m.Ball.Serve(CourtWidth/2, CourtHeight/2, toward, m.rng)
}

// Start begins a new match at difficulty d from the menu or a finished match
func (m *Match) Start(d Difficulty) bool {
	if m.Phase != protocol.PhaseMenu && m.Phase != protocol.PhaseGameOver {
		return false
	}
	m.Difficulty = d
	m.reset()
	m.Phase = protocol.PhasePlaying
	return true
}

// Restart replays a finished match with the same difficulty
func (m *Match) Restart() bool {
	if m.Phase != protocol.PhaseGameOver {
		return false
	}
	return m.Start(m.Difficulty)
}

// Pause suspends a running match without touching its state
func (m *Match) Pause() bool {
	if m.Phase != protocol.PhasePlaying {
		return false
	}
	m.Phase = protocol.PhasePaused
	return true
}

// Resume continues a paused match exactly where it stopped
func (m *Match) Resume() bool {
	if m.Phase != protocol.PhasePaused {
		return false
	}
	m.Phase = protocol.PhasePlaying
	return true
}

func (m *Match) TogglePause() bool {
	if m.Phase == protocol.PhasePaused {
		return m.Resume()
	}
	return m.Pause()
}

// ReturnToMenu abandons the current match
func (m *Match) ReturnToMenu() {
	m.Phase = protocol.PhaseMenu
}

// Step runs one tick. It does nothing unless the match is playing.
// in may be nil when there is no human input.
func (m *Match) Step(in *Input) Events {
	ev := noEvents()
	if m.Phase != protocol.PhasePlaying {
		return ev
	}
	m.Tick++

	m.Ball.RecordTrail()
	m.Ball.Integrate()

	ev.WallBounce = m.Ball.BounceWalls(CourtHeight)
	ev.PaddleHit = m.checkPaddleCollisions()

	ev.Scorer = m.checkScore()
	if m.Phase == protocol.PhaseGameOver {
		ev.GameOver = true
		return ev
	}

	if in != nil {
		in.Apply(m.Player, CourtHeight)
	}
	TrackBall(m.AI, m.Ball.Y, m.Difficulty.Profile(), m.rng, CourtHeight)

	return ev
}

// checkPaddleCollisions bounces the ball off at most one paddle
func (m *Match) checkPaddleCollisions() protocol.Side {
	for _, p := range []*Paddle{m.Player, m.AI} {
		if !m.Ball.MovingToward(p.Side) || !m.Ball.Overlaps(p) {
			continue
		}
		m.Ball.BounceOffPaddle(p)
		m.Rally++
		return p.Side
	}
	return protocol.SideNone
}

// checkScore awards a point when the ball leaves the court horizontally
func (m *Match) checkScore() protocol.Side {
	var scorer, loser *Paddle
	switch {
	case m.Ball.X < 0:
		scorer, loser = m.AI, m.Player
	case m.Ball.X > CourtWidth:
		scorer, loser = m.Player, m.AI
	default:
		return protocol.SideNone
	}

	scorer.Score++
	if m.Rally > m.MaxRally {
		m.MaxRally = m.Rally
	}
	m.Rally = 0

	if scorer.Score >= m.PointsToWin {
		m.Phase = protocol.PhaseGameOver
		return scorer.Side
	}

	m.Ball.Serve(CourtWidth/2, CourtHeight/2, loser.Side, m.rng)
	return scorer.Side
}

func (m *Match) PlayerScore() int {
	return m.Player.Score
}

func (m *Match) AIScore() int {
	return m.AI.Score
}

// Winner returns the side that reached PointsToWin, or SideNone
func (m *Match) Winner() protocol.Side {
	switch {
	case m.Player.Score >= m.PointsToWin:
		return protocol.SideLeft
	case m.AI.Score >= m.PointsToWin:
		return protocol.SideRight
	}
	return protocol.SideNone
}

// Frame converts to the value the renderer draws
func (m *Match) Frame() protocol.Frame {
	return protocol.Frame{
		Tick:        m.Tick,
		Phase:       m.Phase,
		CourtWidth:  CourtWidth,
		CourtHeight: CourtHeight,
		Ball:        m.Ball.State(),
		Player:      m.Player.State(),
		AI:          m.AI.State(),
		PlayerScore: m.Player.Score,
		AIScore:     m.AI.Score,
		Rally:       m.Rally,
		MaxRally:    m.MaxRally,
		Difficulty:  m.Difficulty.String(),
		PointsToWin: m.PointsToWin,
	}
}

func (m *Match) GameOverState() protocol.GameOverState {
	return protocol.GameOverState{
		Winner:      m.Winner(),
		PlayerScore: m.Player.Score,
		AIScore:     m.AI.Score,
		MaxRally:    m.MaxRally,
		Difficulty:  m.Difficulty.String(),
	}
}
