package game

import (
	"fmt"
	"strings"

	"github.com/2020-DEV-174/TicTacToe/grid"
	"golang.org/x/exp/slices"
)

// Rule is one declarative rule of a game together with the explanation shown to
// players. The set of rules is closed: only the types in this file implement it.
type Rule interface {
	Tag() string
	explanation() string
}

// NeedPlayers bounds the number of players.
type NeedPlayers struct {
	Minimum, Maximum int
	Explanation      string
}

// NeedBoard sets the board shape.
type NeedBoard struct {
	Dimensions  grid.Dimensions
	Explanation string
}

// PlayStartsWithFirstPlayer opens the first match with player 1 and alternates
// the opener on each rematch.
type PlayStartsWithFirstPlayer struct {
	Explanation string
}

// PlayRotatesThroughPlayers passes the turn in registration order.
type PlayRotatesThroughPlayers struct {
	Explanation string
}

// PlayableCellsAreOnlyThoseUnoccupied allows moves on empty cells only.
type PlayableCellsAreOnlyThoseUnoccupied struct {
	Explanation string
}

// PlayScoresPointForEachOccupiedLineOf scores every complete line of exactly
// Length cells owned by the mover.
type PlayScoresPointForEachOccupiedLineOf struct {
	Length      int
	Explanation string
}

// FirstScorerWinsOrDrawWhenExhausted ends the match on the first score, or as a
// draw once the board is full.
type FirstScorerWinsOrDrawWhenExhausted struct {
	Explanation string
}

func (NeedPlayers) Tag() string                          { return "needPlayers" }
func (NeedBoard) Tag() string                            { return "needBoard" }
func (PlayStartsWithFirstPlayer) Tag() string            { return "playStartsWithFirstPlayer" }
func (PlayRotatesThroughPlayers) Tag() string            { return "playRotatesThroughPlayers" }
func (PlayableCellsAreOnlyThoseUnoccupied) Tag() string  { return "playableCellsAreOnlyThoseUnoccupied" }
func (PlayScoresPointForEachOccupiedLineOf) Tag() string { return "playScoresPointForEachOccupiedLineOf" }
func (FirstScorerWinsOrDrawWhenExhausted) Tag() string   { return "firstScorerWinsOrDrawWhenExhausted" }

func (r NeedPlayers) explanation() string                          { return r.Explanation }
func (r NeedBoard) explanation() string                            { return r.Explanation }
func (r PlayStartsWithFirstPlayer) explanation() string            { return r.Explanation }
func (r PlayRotatesThroughPlayers) explanation() string            { return r.Explanation }
func (r PlayableCellsAreOnlyThoseUnoccupied) explanation() string  { return r.Explanation }
func (r PlayScoresPointForEachOccupiedLineOf) explanation() string { return r.Explanation }
func (r FirstScorerWinsOrDrawWhenExhausted) explanation() string   { return r.Explanation }

// InstructionsHeader opens the instructions compiled from a rule list.
const InstructionsHeader = "This game…"

const instructionsSeparator = "\n • "

// Config is the compiled form of a rule list. Every concern selects exactly one
// strategy; the zero value of a strategy means no rule selected it.
type Config struct {
	Instructions  string                `json:"instructions"`
	MinPlayers    int                   `json:"minPlayers"`
	MaxPlayers    int                   `json:"maxPlayers"`
	BoardShape    grid.Dimensions       `json:"boardShape"`
	InitialPlayer InitialPlayerStrategy `json:"initialPlayer"`
	NextPlayer    NextPlayerStrategy    `json:"nextPlayer"`
	Eligibility   EligibilityStrategy   `json:"eligibility"`
	Scoring       ScoringStrategy       `json:"scoring"`
	EndCondition  EndConditionStrategy  `json:"endCondition"`
}

// Compile folds an ordered rule list into a Config. A later rule for the same
// concern replaces an earlier one, but every explanation is kept.
func Compile(rules []Rule) (Config, error) {
	var cfg Config
	instructions := []string{InstructionsHeader}
	for i, rule := range rules {
		switch r := rule.(type) {
		case NeedPlayers:
			cfg.MinPlayers, cfg.MaxPlayers = r.Minimum, r.Maximum
		case NeedBoard:
			cfg.BoardShape = slices.Clone(r.Dimensions)
		case PlayStartsWithFirstPlayer:
			cfg.InitialPlayer = InitialPlayer1
		case PlayRotatesThroughPlayers:
			cfg.NextPlayer = RotateAscending
		case PlayableCellsAreOnlyThoseUnoccupied:
			cfg.Eligibility = Unoccupied
		case PlayScoresPointForEachOccupiedLineOf:
			cfg.Scoring = ScoringStrategy{Kind: ScoreLine, LineLength: r.Length}
		case FirstScorerWinsOrDrawWhenExhausted:
			cfg.EndCondition = FirstScorerWinsOrDrawWhenExhaustedStrategy
		case nil:
			return Config{}, fmt.Errorf("rule %d: missing rule", i)
		default:
			return Config{}, fmt.Errorf("rule %d: unknown rule %q", i, rule.Tag())
		}
		if text := rule.explanation(); text != "" {
			instructions = append(instructions, strings.ToValidUTF8(text, "\uFFFD"))
		}
	}
	cfg.Instructions = strings.Join(instructions, instructionsSeparator)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every concern has a strategy and that the parameters
// are usable.
func (c Config) Validate() error {
	if c.MinPlayers < 1 || c.MaxPlayers < c.MinPlayers {
		return fmt.Errorf("rule needPlayers: invalid player bounds [%d, %d]", c.MinPlayers, c.MaxPlayers)
	}
	if len(c.BoardShape) == 0 {
		return fmt.Errorf("rule needBoard: missing board dimensions")
	}
	longest := 0
	for axis, n := range c.BoardShape {
		if n < 1 {
			return fmt.Errorf("rule needBoard: axis %d has size %d", axis, n)
		}
		longest = max(longest, n)
	}
	if c.InitialPlayer == 0 {
		return fmt.Errorf("config: no rule selects the initial player")
	}
	if c.NextPlayer == 0 {
		return fmt.Errorf("config: no rule selects the next player")
	}
	if c.Eligibility == 0 {
		return fmt.Errorf("config: no rule selects playable cells")
	}
	if c.Scoring.Kind == 0 {
		return fmt.Errorf("config: no rule selects scoring")
	}
	if c.Scoring.LineLength < 1 || c.Scoring.LineLength > longest {
		return fmt.Errorf("rule playScoresPointForEachOccupiedLineOf: line length %d does not fit board %v", c.Scoring.LineLength, []int(c.BoardShape))
	}
	if c.EndCondition == 0 {
		return fmt.Errorf("config: no rule selects the end condition")
	}
	return nil
}
