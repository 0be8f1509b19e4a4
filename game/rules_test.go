package game

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/2020-DEV-174/TicTacToe/grid"
	"github.com/stretchr/testify/require"
)

func ticTacToeRules() []Rule {
	return []Rule{
		NeedPlayers{Minimum: 2, Maximum: 2, Explanation: "needs 2 players"},
		NeedBoard{Dimensions: grid.Dimensions{3, 3}, Explanation: "is played on a 3x3 board"},
		PlayStartsWithFirstPlayer{Explanation: "starts with player 1"},
		PlayRotatesThroughPlayers{Explanation: "takes turns"},
		PlayableCellsAreOnlyThoseUnoccupied{Explanation: "is played on empty cells"},
		PlayScoresPointForEachOccupiedLineOf{Length: 3, Explanation: "scores a line of 3"},
		FirstScorerWinsOrDrawWhenExhausted{Explanation: "is won by the first line"},
	}
}

func TestCompile(t *testing.T) {
	cfg, err := Compile(ticTacToeRules())
	require.NoError(t, err)

	require.Equal(t, 2, cfg.MinPlayers)
	require.Equal(t, 2, cfg.MaxPlayers)
	require.Equal(t, grid.Dimensions{3, 3}, cfg.BoardShape)
	require.Equal(t, InitialPlayer1, cfg.InitialPlayer)
	require.Equal(t, RotateAscending, cfg.NextPlayer)
	require.Equal(t, Unoccupied, cfg.Eligibility)
	require.Equal(t, ScoringStrategy{Kind: ScoreLine, LineLength: 3}, cfg.Scoring)
	require.Equal(t, FirstScorerWinsOrDrawWhenExhaustedStrategy, cfg.EndCondition)

	require.True(t, strings.HasPrefix(cfg.Instructions, InstructionsHeader))
	require.Equal(t, 7, strings.Count(cfg.Instructions, "\n • "), "One bullet per explained rule")
	require.Contains(t, cfg.Instructions, "\n • scores a line of 3")

	cfg, err = Compile(append(ticTacToeRules(), NeedPlayers{Minimum: 2, Maximum: 2, Explanation: "needs \xff2"}))
	require.NoError(t, err)
	require.True(t, utf8.ValidString(cfg.Instructions))
	require.Contains(t, cfg.Instructions, "\n • needs \uFFFD2")
}

func TestCompileLaterRuleWins(t *testing.T) {
	rules := append(ticTacToeRules(), NeedBoard{Dimensions: grid.Dimensions{4, 4}})
	cfg, err := Compile(rules)
	require.NoError(t, err)
	require.Equal(t, grid.Dimensions{4, 4}, cfg.BoardShape)
	require.Equal(t, 7, strings.Count(cfg.Instructions, "\n • "), "Unexplained rules add no bullet")
}

func TestCompileErrors(t *testing.T) {
	without := func(tag string) []Rule {
		var out []Rule
		for _, r := range ticTacToeRules() {
			if r.Tag() != tag {
				out = append(out, r)
			}
		}
		return out
	}

	tests := []struct {
		name    string
		rules   []Rule
		message string
	}{
		{"no players", without("needPlayers"), "needPlayers"},
		{"no board", without("needBoard"), "needBoard"},
		{"no initial player", without("playStartsWithFirstPlayer"), "initial player"},
		{"no next player", without("playRotatesThroughPlayers"), "next player"},
		{"no eligibility", without("playableCellsAreOnlyThoseUnoccupied"), "playable"},
		{"no scoring", without("playScoresPointForEachOccupiedLineOf"), "scoring"},
		{"no end condition", without("firstScorerWinsOrDrawWhenExhausted"), "end condition"},
		{"inverted player bounds", append(ticTacToeRules(), NeedPlayers{Minimum: 3, Maximum: 2}), "needPlayers"},
		{"zero axis", append(ticTacToeRules(), NeedBoard{Dimensions: grid.Dimensions{3, 0}}), "needBoard"},
		{"line too long", append(ticTacToeRules(), PlayScoresPointForEachOccupiedLineOf{Length: 4}), "playScoresPointForEachOccupiedLineOf"},
		{"nil rule", append(ticTacToeRules(), nil), "missing rule"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.rules)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestStrategyTokens(t *testing.T) {
	var s ScoringStrategy
	require.NoError(t, s.UnmarshalText([]byte("line:5")))
	require.Equal(t, ScoringStrategy{Kind: ScoreLine, LineLength: 5}, s)
	require.Error(t, s.UnmarshalText([]byte("line:x")))
	require.Error(t, s.UnmarshalText([]byte("area:3")))

	var e EligibilityStrategy
	require.NoError(t, e.UnmarshalText([]byte("unoccupied")))
	require.Equal(t, Unoccupied, e)
	require.ErrorContains(t, e.UnmarshalText([]byte("anywhere")), "eligibility")

	_, err := InitialPlayerStrategy(0).MarshalText()
	require.Error(t, err, "Unset strategies cannot be encoded")
}

func TestStageTokens(t *testing.T) {
	stages := []Stage{StageWaitingForPlayers, StageWaitingToStart, StageNextPlayBy(2), StageWonBy(1), StageDrawn}
	tokens := []string{"waitingForPlayers", "waitingToStart", "nextPlayBy:2", "wonBy:1", "drawn"}
	for i, stage := range stages {
		text, err := stage.MarshalText()
		require.NoError(t, err)
		require.Equal(t, tokens[i], string(text))

		var decoded Stage
		require.NoError(t, decoded.UnmarshalText(text))
		require.Equal(t, stage, decoded)
	}

	var s Stage
	for _, bad := range []string{"", "nextPlayBy", "nextPlayBy:0", "wonBy:-1", "playing"} {
		require.Error(t, s.UnmarshalText([]byte(bad)), "token %q", bad)
	}
}

func TestStageString(t *testing.T) {
	require.Equal(t, "readyToStart", StageWaitingToStart.String())
	require.Equal(t, "nextPlayBy(Player 2)", StageNextPlayBy(2).String())
	require.Equal(t, "wonBy(Player 1)", StageWonBy(1).String())
	require.True(t, StageDrawn.IsFinished())
	require.False(t, StageNextPlayBy(1).IsFinished())
	require.True(t, StageNextPlayBy(1).IsPlaying())
}
