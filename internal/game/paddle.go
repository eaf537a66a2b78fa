package game

import "github.com/diegok/pickleball/internal/protocol"

const (
	PaddleWidth  = 12.0
	PaddleHeight = 80.0
	PaddleMargin = 20.0 // Gap between paddle and its end line
	PaddleStep   = 8.0  // Keyboard movement per frame
)

// Paddle is one side's paddle. X is fixed, Y is the top edge.
type Paddle struct {
	Side   protocol.Side
	X      float64
	Y      float64
	Width  float64
	Height float64
	Human  bool
	Score  int
}

// NewPaddle creates a paddle for side, vertically centred on the court
func NewPaddle(side protocol.Side, courtWidth, courtHeight float64, human bool) *Paddle {
	x := PaddleMargin
	if side == protocol.SideRight {
		x = courtWidth - PaddleMargin - PaddleWidth
	}
	return &Paddle{
		Side:   side,
		X:      x,
		Y:      (courtHeight - PaddleHeight) / 2,
		Width:  PaddleWidth,
		Height: PaddleHeight,
		Human:  human,
	}
}

// MaxY is the largest legal top edge
func (p *Paddle) MaxY(courtHeight float64) float64 {
	return courtHeight - p.Height
}

// Clamp keeps the paddle inside [0, courtHeight-Height]
func (p *Paddle) Clamp(courtHeight float64) {
	if p.Y < 0 {
		p.Y = 0
	}
	if maxY := p.MaxY(courtHeight); p.Y > maxY {
		p.Y = maxY
	}
}

// Move shifts the paddle by dy and clamps
func (p *Paddle) Move(dy, courtHeight float64) {
	p.Y += dy
	p.Clamp(courtHeight)
}

// Step moves one keyboard step in dir
func (p *Paddle) Step(dir protocol.Direction, courtHeight float64) {
	switch dir {
	case protocol.DirUp:
		p.Move(-PaddleStep, courtHeight)
	case protocol.DirDown:
		p.Move(PaddleStep, courtHeight)
	}
}

// CenterOn puts the paddle's vertical centre at y
func (p *Paddle) CenterOn(y, courtHeight float64) {
	p.Y = y - p.Height/2
	p.Clamp(courtHeight)
}

func (p *Paddle) CenterY() float64 {
	return p.Y + p.Height/2
}

func (p *Paddle) State() protocol.PaddleState {
	return protocol.PaddleState{
		Side:   p.Side,
		X:      p.X,
		Y:      p.Y,
		Width:  p.Width,
		Height: p.Height,
		Human:  p.Human,
		Score:  p.Score,
	}
}
