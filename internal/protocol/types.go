// Package protocol defines the plain values passed from the simulation to
// the presentation layer. Nothing here has behaviour beyond naming.
package protocol

// Direction represents paddle movement direction
type Direction int

const (
	DirNone Direction = 0
	DirUp   Direction = 1
	DirDown Direction = 2
)

// Side identifies one end of the court
type Side int

const (
	SideNone  Side = -1
	SideLeft  Side = 0
	SideRight Side = 1
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	}
	return "none"
}

// Phase is the match lifecycle state
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game-over"
	}
	return "unknown"
}

// Point is a position in court units
type Point struct {
	X float64
	Y float64
}

// BallState represents the ball's position, velocity and recent trail
type BallState struct {
	X      float64
	Y      float64
	VX     float64
	VY     float64
	Radius float64
	Speed  float64
	Trail  []Point // oldest first
}

// PaddleState represents a paddle's state. Y is the top edge.
type PaddleState struct {
	Side   Side
	X      float64
	Y      float64
	Width  float64
	Height float64
	Human  bool
	Score  int
}

// Frame is everything needed to draw one game frame
type Frame struct {
	Tick        int
	Phase       Phase
	CourtWidth  float64
	CourtHeight float64
	Ball        BallState
	Player      PaddleState
	AI          PaddleState
	PlayerScore int
	AIScore     int
	Rally       int
	MaxRally    int
	Difficulty  string
	PointsToWin int
}

// MenuState represents the menu screen
type MenuState struct {
	Selected   string
	Options    []string
	LastResult string
}

// GameOverState represents the end of match state
type GameOverState struct {
	Winner      Side
	PlayerScore int
	AIScore     int
	MaxRally    int
	Difficulty  string
}
