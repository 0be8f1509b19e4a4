package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/2020-DEV-174/TicTacToe/grid"
	"github.com/2020-DEV-174/TicTacToe/utils"
)

// Each concern has a closed set of strategies. Adding a variant means adding a
// case to every switch in this file; the default branches panic so a missed
// case cannot pass silently.

type InitialPlayerStrategy int

const (
	InitialPlayer1 InitialPlayerStrategy = iota + 1
)

type NextPlayerStrategy int

const (
	RotateAscending NextPlayerStrategy = iota + 1
)

type EligibilityStrategy int

const (
	Unoccupied EligibilityStrategy = iota + 1
)

type ScoringKind int

const (
	ScoreLine ScoringKind = iota + 1
)

// ScoringStrategy selects how moves score, with the variant's parameters.
type ScoringStrategy struct {
	Kind       ScoringKind
	LineLength int
}

type EndConditionStrategy int

const (
	FirstScorerWinsOrDrawWhenExhaustedStrategy EndConditionStrategy = iota + 1
)

var (
	initialPlayerTokens = map[InitialPlayerStrategy]string{InitialPlayer1: "player1"}
	nextPlayerTokens    = map[NextPlayerStrategy]string{RotateAscending: "rotateAscending"}
	eligibilityTokens   = map[EligibilityStrategy]string{Unoccupied: "unoccupied"}
	endConditionTokens  = map[EndConditionStrategy]string{FirstScorerWinsOrDrawWhenExhaustedStrategy: "firstScorerWinsOrDrawWhenExhausted"}
)

func marshalToken[T ~int](field string, v T, tokens map[T]string) ([]byte, error) {
	token, ok := tokens[v]
	if !ok {
		return nil, fmt.Errorf("%s: unknown strategy %d", field, int(v))
	}
	return []byte(token), nil
}

func unmarshalToken[T ~int](field string, text []byte, tokens map[T]string) (T, error) {
	for v, token := range tokens {
		if token == string(text) {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%s: unknown strategy %q", field, string(text))
}

func (s InitialPlayerStrategy) MarshalText() ([]byte, error) {
	return marshalToken("initialPlayer", s, initialPlayerTokens)
}

func (s *InitialPlayerStrategy) UnmarshalText(text []byte) (err error) {
	*s, err = unmarshalToken("initialPlayer", text, initialPlayerTokens)
	return err
}

func (s NextPlayerStrategy) MarshalText() ([]byte, error) {
	return marshalToken("nextPlayer", s, nextPlayerTokens)
}

func (s *NextPlayerStrategy) UnmarshalText(text []byte) (err error) {
	*s, err = unmarshalToken("nextPlayer", text, nextPlayerTokens)
	return err
}

func (s EligibilityStrategy) MarshalText() ([]byte, error) {
	return marshalToken("eligibility", s, eligibilityTokens)
}

func (s *EligibilityStrategy) UnmarshalText(text []byte) (err error) {
	*s, err = unmarshalToken("eligibility", text, eligibilityTokens)
	return err
}

func (s EndConditionStrategy) MarshalText() ([]byte, error) {
	return marshalToken("endCondition", s, endConditionTokens)
}

func (s *EndConditionStrategy) UnmarshalText(text []byte) (err error) {
	*s, err = unmarshalToken("endCondition", text, endConditionTokens)
	return err
}

// MarshalText encodes the strategy as "line:<length>".
func (s ScoringStrategy) MarshalText() ([]byte, error) {
	switch s.Kind {
	case ScoreLine:
		return []byte("line:" + strconv.Itoa(s.LineLength)), nil
	default:
		return nil, fmt.Errorf("scoring: unknown strategy %d", int(s.Kind))
	}
}

func (s *ScoringStrategy) UnmarshalText(text []byte) error {
	name, param, _ := strings.Cut(string(text), ":")
	switch name {
	case "line":
		n, err := strconv.Atoi(param)
		if err != nil {
			return fmt.Errorf("scoring: invalid line length %q", param)
		}
		*s = ScoringStrategy{Kind: ScoreLine, LineLength: n}
		return nil
	default:
		return fmt.Errorf("scoring: unknown strategy %q", string(text))
	}
}

// initialPlayer picks the opener of a new match. previous is the opener of the
// match before, or NoPlayerNumber if this is the first.
func (c Config) initialPlayer(previous PlayerNumber, players int) PlayerNumber {
	switch c.InitialPlayer {
	case InitialPlayer1:
		if previous == NoPlayerNumber {
			return 1
		}
		return c.nextPlayer(previous, players)
	default:
		panic(fmt.Sprintf("game: unhandled initial player strategy %d", int(c.InitialPlayer)))
	}
}

func (c Config) nextPlayer(current PlayerNumber, players int) PlayerNumber {
	switch c.NextPlayer {
	case RotateAscending:
		return PlayerNumber((int(current-1)+1)%players + 1)
	default:
		panic(fmt.Sprintf("game: unhandled next player strategy %d", int(c.NextPlayer)))
	}
}

// playable derives the eligibility mask from the board for a match at stage.
func (c Config) playable(stage Stage, board Board) (Playable, error) {
	mask, err := newPlayable(board.Dimensions())
	if err != nil {
		return Playable{}, err
	}
	switch c.Eligibility {
	case Unoccupied:
		finished := stage.IsFinished()
		mask.cells.TransformEach(func(_ bool, index int) bool {
			return !finished && board.cells.At(index) == NoPlayerNumber
		})
	default:
		panic(fmt.Sprintf("game: unhandled eligibility strategy %d", int(c.Eligibility)))
	}
	return mask, nil
}

// score returns the combinations completed by move on board, which already
// holds the move.
func (c Config) score(board Board, move Move) []ScoringCombination {
	switch c.Scoring.Kind {
	case ScoreLine:
		var combos []ScoringCombination
		for _, direction := range grid.Directions(len(c.BoardShape)) {
			line, err := board.cells.LinePositions(direction, move.Position)
			if err != nil || len(line) != c.Scoring.LineLength {
				continue
			}
			owned := utils.All(line, func(p grid.Position) bool {
				return board.At(p) == move.Player
			})
			if owned {
				combos = append(combos, ScoringCombination(line))
			}
		}
		return combos
	default:
		panic(fmt.Sprintf("game: unhandled scoring strategy %d", int(c.Scoring.Kind)))
	}
}

// endCondition picks the stage following move. scored holds the combinations
// the move just completed.
func (c Config) endCondition(board Board, move Move, scored []ScoringCombination, players int) Stage {
	switch c.EndCondition {
	case FirstScorerWinsOrDrawWhenExhaustedStrategy:
		if len(scored) > 0 {
			return StageWonBy(move.Player)
		}
		if board.Unoccupied() == 0 {
			return StageDrawn
		}
		return StageNextPlayBy(c.nextPlayer(move.Player, players))
	default:
		panic(fmt.Sprintf("game: unhandled end condition strategy %d", int(c.EndCondition)))
	}
}
