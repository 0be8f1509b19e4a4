package meta

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/2020-DEV-174/TicTacToe/game"
	"github.com/2020-DEV-174/TicTacToe/grid"
)

// MIN_PLAYERS is the number of players needed to start a standard game.
const MIN_PLAYERS = 2

// MAX_PLAYERS is the number of players a standard game accepts.
const MAX_PLAYERS = 2

// BOARD_SIZE is the length of each axis of the standard board.
const BOARD_SIZE = 3

// LINE_LENGTH is the length of a scoring line.
const LINE_LENGTH = 3

// HOST_BUFFER is the number of snapshots queued per host before updates are dropped.
const HOST_BUFFER = 16

// StandardRules is classic tic-tac-toe: two players on a 3x3 board, three in a
// row wins.
func StandardRules() []game.Rule {
	return Rules(grid.Dimensions{BOARD_SIZE, BOARD_SIZE}, LINE_LENGTH, MIN_PLAYERS, MAX_PLAYERS)
}

// Rules builds the standard rule set for any board shape, line length and
// player bounds, with explanations that describe those parameters.
func Rules(dimensions grid.Dimensions, lineLength, minPlayers, maxPlayers int) []game.Rule {
	return []game.Rule{
		game.NeedPlayers{
			Minimum:     minPlayers,
			Maximum:     maxPlayers,
			Explanation: playersExplanation(minPlayers, maxPlayers),
		},
		game.NeedBoard{
			Dimensions:  dimensions,
			Explanation: fmt.Sprintf("Is played on a %s board.", shape(dimensions)),
		},
		game.PlayStartsWithFirstPlayer{
			Explanation: "Starts with player 1; the opener rotates each new match.",
		},
		game.PlayRotatesThroughPlayers{
			Explanation: "Players take turns placing their mark.",
		},
		game.PlayableCellsAreOnlyThoseUnoccupied{
			Explanation: "A mark can only go in an empty cell.",
		},
		game.PlayScoresPointForEachOccupiedLineOf{
			Length:      lineLength,
			Explanation: fmt.Sprintf("%d marks in a straight line score.", lineLength),
		},
		game.FirstScorerWinsOrDrawWhenExhausted{
			Explanation: "The first to score wins; a full board with no score is a draw.",
		},
	}
}

func playersExplanation(minPlayers, maxPlayers int) string {
	if minPlayers == maxPlayers {
		return fmt.Sprintf("Needs %d players.", minPlayers)
	}
	return fmt.Sprintf("Needs %d to %d players.", minPlayers, maxPlayers)
}

// shape writes dimensions as "3x3".
func shape(dimensions grid.Dimensions) string {
	axes := make([]string, len(dimensions))
	for i, n := range dimensions {
		axes[i] = strconv.Itoa(n)
	}
	return strings.Join(axes, "x")
}
