package game

import (
	"math"

	"github.com/diegok/pickleball/internal/protocol"
)

const (
	BallRadius       = 8.0
	InitialBallSpeed = 6.0
	MaxBallSpeed     = 14.0
	SpeedIncrement   = 0.4   // Speed gauge gain per paddle hit
	Gravity          = 0.04  // Downward acceleration per frame
	Damping          = 0.998 // Per-frame drag on both velocity components
	BounceDamping    = 0.9   // Energy kept on a wall bounce
	MaxBounceAngle   = math.Pi / 3
	ServeAngle       = math.Pi / 12
	TrailLength      = 12
)

// Ball is the simulated ball. Speed is a gauge kept separately from the
// velocity magnitude; it only grows on paddle hits and is reset on serve.
type Ball struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Speed  float64
	Trail  []protocol.Point
}

func NewBall(x, y float64) *Ball {
	return &Ball{
		X:      x,
		Y:      y,
		Radius: BallRadius,
		Speed:  InitialBallSpeed,
		Trail:  make([]protocol.Point, 0, TrailLength),
	}
}

// RecordTrail appends the current position, dropping the oldest entry once
// the trail is full.
func (b *Ball) RecordTrail() {
	if len(b.Trail) < TrailLength {
		b.Trail = append(b.Trail, protocol.Point{X: b.X, Y: b.Y})
		return
	}
	copy(b.Trail, b.Trail[1:])
	b.Trail[len(b.Trail)-1] = protocol.Point{X: b.X, Y: b.Y}
}

// Integrate advances the ball one frame: gravity, drag, then position.
func (b *Ball) Integrate() {
	b.VY += Gravity
	b.VX *= Damping
	b.VY *= Damping
	b.X += b.VX
	b.Y += b.VY
	b.clampVelocity()
}

// Velocity returns the magnitude of the velocity vector
func (b *Ball) Velocity() float64 {
	return math.Hypot(b.VX, b.VY)
}

func (b *Ball) clampVelocity() {
	v := b.Velocity()
	if v <= MaxBallSpeed {
		return
	}
	scale := MaxBallSpeed / v
	b.VX *= scale
	b.VY *= scale
}

// BounceWalls keeps the ball inside the top and bottom walls. It reports
// whether a bounce happened.
func (b *Ball) BounceWalls(courtHeight float64) bool {
	switch {
	case b.Y-b.Radius < 0:
		b.Y = b.Radius
		b.VY = math.Abs(b.VY) * BounceDamping
		return true
	case b.Y+b.Radius > courtHeight:
		b.Y = courtHeight - b.Radius
		b.VY = -math.Abs(b.VY) * BounceDamping
		return true
	}
	return false
}

// Overlaps reports whether the ball's bounding box touches the paddle's
func (b *Ball) Overlaps(p *Paddle) bool {
	return b.X+b.Radius >= p.X &&
		b.X-b.Radius <= p.X+p.Width &&
		b.Y+b.Radius >= p.Y &&
		b.Y-b.Radius <= p.Y+p.Height
}

// MovingToward reports whether the ball travels toward the given side
func (b *Ball) MovingToward(side protocol.Side) bool {
	if side == protocol.SideLeft {
		return b.VX < 0
	}
	return b.VX > 0
}

// BounceOffPaddle reflects the ball off p. The contact offset along the
// paddle (0 top, 1 bottom) maps linearly onto [-MaxBounceAngle, MaxBounceAngle].
func (b *Ball) BounceOffPaddle(p *Paddle) {
	offset := (b.Y - p.Y) / p.Height
	if offset < 0 {
		offset = 0
	}
	if offset > 1 {
		offset = 1
	}
	angle := (offset*2 - 1) * MaxBounceAngle

	b.Speed = math.Min(b.Speed+SpeedIncrement, MaxBallSpeed)

	dir := 1.0
	if p.Side == protocol.SideRight {
		dir = -1.0
	}
	b.VX = dir * b.Speed * math.Cos(angle)
	b.VY = b.Speed * math.Sin(angle)

	// Flush against the outer face so the next frame cannot hit again
	if p.Side == protocol.SideLeft {
		b.X = p.X + p.Width + b.Radius
	} else {
		b.X = p.X - b.Radius
	}
}

// Serve places the ball at (cx, cy) and launches it toward the given side
// at the initial speed with a small random vertical component.
func (b *Ball) Serve(cx, cy float64, toward protocol.Side, rng Rand) {
	b.X = cx
	b.Y = cy
	b.Speed = InitialBallSpeed
	b.Trail = b.Trail[:0]

	angle := (rng.Float64()*2 - 1) * ServeAngle
	dir := 1.0
	if toward == protocol.SideLeft {
		dir = -1.0
	}
	b.VX = dir * b.Speed * math.Cos(angle)
	b.VY = b.Speed * math.Sin(angle)
}

// State converts to the presentation value
func (b *Ball) State() protocol.BallState {
	trail := make([]protocol.Point, len(b.Trail))
	copy(trail, b.Trail)
	return protocol.BallState{
		X:      b.X,
		Y:      b.Y,
		VX:     b.VX,
		VY:     b.VY,
		Radius: b.Radius,
		Speed:  b.Speed,
		Trail:  trail,
	}
}
