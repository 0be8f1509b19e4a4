// Package game implements the rules engine for positional board games played on
// an N-dimensional grid: players are registered, a match is started, moves are
// validated and applied, and every transition publishes a new immutable State.
package game

import (
	"github.com/2020-DEV-174/TicTacToe/grid"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

// PlayerNumber is the 1-based registration order of a player.
type PlayerNumber int

// NoPlayerNumber marks an unoccupied cell and a rejected registration.
const NoPlayerNumber PlayerNumber = 0

// PlayerTag is a stable identifier remote hosts use to refer to a player
// without trusting raw player numbers.
type PlayerTag = uuid.UUID

// Player is a registered participant.
type Player struct {
	Name string
	Tag  PlayerTag
}

// Move records one play in the played log.
type Move struct {
	Player   PlayerNumber
	Position grid.Position
}

// ScoringCombination is one completed line, in line order.
type ScoringCombination []grid.Position

// Scores holds the combinations completed by each player during a match.
type Scores map[PlayerNumber][]ScoringCombination

func (s Scores) clone() Scores {
	out := make(Scores, len(s))
	for player, combos := range s {
		copied := make([]ScoringCombination, len(combos))
		for i, combo := range combos {
			copied[i] = make(ScoringCombination, len(combo))
			for j, p := range combo {
				copied[i][j] = slices.Clone(p)
			}
		}
		out[player] = copied
	}
	return out
}
