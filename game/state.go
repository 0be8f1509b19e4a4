package game

import (
	"golang.org/x/exp/slices"
)

// State is everything players need to know about a match: stage, board
// occupancy, where the next move may go, the moves so far and the lines scored.
// A State is immutable once published; every transition builds a new one.
type State struct {
	stage    Stage
	board    Board
	playable Playable
	played   []Move
	scores   Scores
}

func (s State) Stage() Stage { return s.stage }

// Board is read only; it is never modified after the State is published.
func (s State) Board() Board { return s.board }

func (s State) Playable() Playable { return s.playable }

// Played returns a copy of the played log in chronological order.
func (s State) Played() []Move {
	out := make([]Move, len(s.played))
	for i, m := range s.played {
		out[i] = Move{Player: m.Player, Position: slices.Clone(m.Position)}
	}
	return out
}

// Scores returns a copy of the combinations scored so far in this match.
func (s State) Scores() Scores {
	return s.scores.clone()
}

// FirstMover is the player who opened the played log, or NoPlayerNumber when
// nothing has been played.
func (s State) FirstMover() PlayerNumber {
	if len(s.played) == 0 {
		return NoPlayerNumber
	}
	return s.played[0].Player
}

// withStage returns a copy of s at another stage, sharing the immutable parts.
func (s State) withStage(stage Stage) *State {
	next := s
	next.stage = stage
	return &next
}
