package game

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/2020-DEV-174/TicTacToe/grid"
	"golang.org/x/exp/slices"
)

// The persisted form of a game. Every slice is written even when empty and
// scores are ordered by player so that decoding and re-encoding reproduces the
// same bytes.

type wireGame struct {
	Config  Config       `json:"config"`
	Players []wirePlayer `json:"players"`
	Opener  PlayerNumber `json:"opener"`
	State   wireState    `json:"state"`
}

type wirePlayer struct {
	Name string    `json:"name"`
	Tag  PlayerTag `json:"tag"`
}

type wireState struct {
	Stage    Stage                   `json:"stage"`
	Board    wireCells[PlayerNumber] `json:"board"`
	Playable wireCells[bool]         `json:"playable"`
	Played   []wireMove              `json:"played"`
	Scores   []wireScore             `json:"scores"`
}

type wireCells[T any] struct {
	Dimensions grid.Dimensions `json:"dimensions"`
	Cells      []T             `json:"cells"`
}

type wireMove struct {
	Player   PlayerNumber  `json:"player"`
	Position grid.Position `json:"position"`
}

type wireScore struct {
	Player PlayerNumber         `json:"player"`
	Lines  []ScoringCombination `json:"lines"`
}

// MarshalJSON encodes the rule configuration, the players and the current
// State.
func (g *Game) MarshalJSON() ([]byte, error) {
	g.mu.Lock()
	w := wireGame{
		Config:  g.Config(),
		Players: make([]wirePlayer, len(g.players)),
		Opener:  g.opener,
	}
	for i, p := range g.players {
		w.Players[i] = wirePlayer{Name: p.Name, Tag: p.Tag}
	}
	state := g.state.Load()
	g.mu.Unlock()

	w.State = encodeState(state)
	return json.Marshal(w)
}

func encodeState(s *State) wireState {
	w := wireState{
		Stage:    s.stage,
		Board:    wireCells[PlayerNumber]{Dimensions: s.board.Dimensions(), Cells: s.board.Cells()},
		Playable: wireCells[bool]{Dimensions: s.playable.Dimensions(), Cells: s.playable.Cells()},
		Played:   make([]wireMove, len(s.played)),
		Scores:   make([]wireScore, 0, len(s.scores)),
	}
	for i, m := range s.played {
		w.Played[i] = wireMove{Player: m.Player, Position: m.Position}
	}
	for player, lines := range s.scores {
		w.Scores = append(w.Scores, wireScore{Player: player, Lines: lines})
	}
	sort.Slice(w.Scores, func(i, j int) bool { return w.Scores[i].Player < w.Scores[j].Player })
	return w
}

// Decode restores a game encoded by MarshalJSON.
func Decode(data []byte, options ...Option) (*Game, error) {
	var w wireGame
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("decode game: %w", err)
	}
	if err := w.Config.Validate(); err != nil {
		return nil, fmt.Errorf("decode game: config: %w", err)
	}
	cfg := w.Config

	if len(w.Players) > cfg.MaxPlayers {
		return nil, fmt.Errorf("decode game: players: %d players exceed maximum %d", len(w.Players), cfg.MaxPlayers)
	}
	var players []Player
	for _, p := range w.Players {
		players = append(players, Player{Name: p.Name, Tag: p.Tag})
	}
	isPlayer := func(n PlayerNumber) bool { return n >= 1 && int(n) <= len(players) }

	if w.Opener != NoPlayerNumber && !isPlayer(w.Opener) {
		return nil, fmt.Errorf("decode game: opener: %d is not a player", w.Opener)
	}
	state, err := decodeState(cfg, w.State, isPlayer)
	if err != nil {
		return nil, fmt.Errorf("decode game: %w", err)
	}
	return newGame(cfg, players, w.Opener, state, options...), nil
}

func decodeState(cfg Config, w wireState, isPlayer func(PlayerNumber) bool) (*State, error) {
	switch w.Stage.Kind {
	case NextPlayBy, WonBy:
		if !isPlayer(w.Stage.Player) {
			return nil, fmt.Errorf("stage: %s names an unknown player", w.Stage)
		}
	}

	if !slices.Equal(w.Board.Dimensions, cfg.BoardShape) {
		return nil, fmt.Errorf("board: dimensions %v differ from config %v", []int(w.Board.Dimensions), []int(cfg.BoardShape))
	}
	cells, err := grid.FromValues(w.Board.Dimensions, w.Board.Cells)
	if err != nil {
		return nil, fmt.Errorf("board: %w", err)
	}
	for _, occupant := range w.Board.Cells {
		if occupant != NoPlayerNumber && !isPlayer(occupant) {
			return nil, fmt.Errorf("board: cell occupied by unknown player %d", occupant)
		}
	}
	board := Board{cells: cells}

	if !slices.Equal(w.Playable.Dimensions, cfg.BoardShape) {
		return nil, fmt.Errorf("playable: dimensions %v differ from config %v", []int(w.Playable.Dimensions), []int(cfg.BoardShape))
	}
	mask, err := grid.FromValues(w.Playable.Dimensions, w.Playable.Cells)
	if err != nil {
		return nil, fmt.Errorf("playable: %w", err)
	}

	var played []Move
	for i, m := range w.Played {
		if !isPlayer(m.Player) {
			return nil, fmt.Errorf("played: move %d by unknown player %d", i, m.Player)
		}
		if !board.Contains(m.Position) {
			return nil, fmt.Errorf("played: move %d at %v is off the board", i, []int(m.Position))
		}
		played = append(played, Move{Player: m.Player, Position: m.Position})
	}

	scores := Scores{}
	for _, s := range w.Scores {
		if !isPlayer(s.Player) {
			return nil, fmt.Errorf("scores: unknown player %d", s.Player)
		}
		if _, dup := scores[s.Player]; dup {
			return nil, fmt.Errorf("scores: player %d listed twice", s.Player)
		}
		scores[s.Player] = s.Lines
	}

	return &State{
		stage:    w.Stage,
		board:    board,
		playable: Playable{cells: mask},
		played:   played,
		scores:   scores,
	}, nil
}
