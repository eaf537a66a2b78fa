package game

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDifficulty is returned by ParseDifficulty
var ErrUnknownDifficulty = errors.New("unknown difficulty")

type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

var difficultyNames = [...]string{
	Easy:   "easy",
	Medium: "medium",
	Hard:   "hard",
}

// Profile holds the AI paddle parameters for a difficulty.
// Reaction is the fraction of the remaining gap closed per frame and
// Error the amplitude of the per-frame random aim offset.
type Profile struct {
	MaxSpeed float64
	Reaction float64
	Error    float64
}

var profiles = map[Difficulty]Profile{
	Easy:   {MaxSpeed: 3.5, Reaction: 0.06, Error: 40},
	Medium: {MaxSpeed: 5.5, Reaction: 0.10, Error: 20},
	Hard:   {MaxSpeed: 8.0, Reaction: 0.18, Error: 6},
}

// Difficulties lists every difficulty in menu order
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

func ParseDifficulty(s string) (Difficulty, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for d, n := range difficultyNames {
		if n == name {
			return Difficulty(d), nil
		}
	}
	return Medium, fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
}

func (d Difficulty) String() string {
	if d < Easy || d > Hard {
		return "unknown"
	}
	return difficultyNames[d]
}

// Profile returns the AI parameters, falling back to Medium for unknown values
func (d Difficulty) Profile() Profile {
	if p, ok := profiles[d]; ok {
		return p
	}
	return profiles[Medium]
}

// Next cycles forward through the difficulties
func (d Difficulty) Next() Difficulty {
	return Difficulty((int(d) + 1) % len(difficultyNames))
}

// Prev cycles backward through the difficulties
func (d Difficulty) Prev() Difficulty {
	n := len(difficultyNames)
	return Difficulty((int(d) - 1 + n) % n)
}
