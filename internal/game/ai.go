package game

// Rand is the random source used for serves and AI aim error.
// *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// TrackBall moves the AI paddle toward the ball. The target is the ball
// height minus half a paddle plus a fresh random error each frame; the
// paddle closes Reaction of the gap, never faster than MaxSpeed.
func TrackBall(p *Paddle, ballY float64, prof Profile, rng Rand, courtHeight float64) {
	target := ballY - p.Height/2 + (rng.Float64()*2-1)*prof.Error

	move := (target - p.Y) * prof.Reaction
	if move > prof.MaxSpeed {
		move = prof.MaxSpeed
	} else if move < -prof.MaxSpeed {
		move = -prof.MaxSpeed
	}

	p.Move(move, courtHeight)
}
