package game

import (
	"strings"
	"sync"
	"sync/atomic"

	"github.com/2020-DEV-174/TicTacToe/grid"
	"github.com/2020-DEV-174/TicTacToe/utils"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/exp/slices"
)

type Option func(g *Game)

// WithLogger sets the logger used for transitions and refused operations.
func WithLogger(logger zerolog.Logger) Option {
	return func(g *Game) {
		g.log = logger
	}
}

// Game owns the players and the current State of a rule configuration. It
// persists across matches; only the State is replaced between them.
//
// Mutating operations are serialized: each one validates against the current
// State and either publishes a wholly new State or leaves it untouched.
// Snapshot may be called concurrently with anything.
type Game struct {
	config Config
	log    zerolog.Logger

	mu      sync.Mutex // held for the whole read-validate-compute-replace sequence
	players []Player
	opener  PlayerNumber // opener of the latest match, NoPlayerNumber before the first
	state   atomic.Pointer[State]

	observersMu  sync.RWMutex
	observers    map[int]func(State)
	nextObserver int
}

// New compiles rules and returns a game waiting for players.
func New(rules []Rule, options ...Option) (*Game, error) {
	cfg, err := Compile(rules)
	if err != nil {
		return nil, err
	}
	board, err := NewBoard(cfg.BoardShape)
	if err != nil {
		return nil, err
	}
	playable, err := cfg.playable(StageWaitingForPlayers, board)
	if err != nil {
		return nil, err
	}
	state := &State{
		stage:    StageWaitingForPlayers,
		board:    board,
		playable: playable,
		scores:   Scores{},
	}
	return newGame(cfg, nil, NoPlayerNumber, state, options...), nil
}

func newGame(cfg Config, players []Player, opener PlayerNumber, state *State, options ...Option) *Game {
	g := &Game{
		config:    cfg,
		log:       zerolog.Nop(),
		players:   players,
		opener:    opener,
		observers: map[int]func(State){},
	}
	for _, option := range options {
		option(g)
	}
	g.state.Store(state)
	return g
}

// Snapshot returns the current published State.
func (g *Game) Snapshot() State {
	return *g.state.Load()
}

func (g *Game) Stage() Stage {
	return g.state.Load().stage
}

// Config returns the compiled rule configuration.
func (g *Game) Config() Config {
	cfg := g.config
	cfg.BoardShape = slices.Clone(cfg.BoardShape)
	return cfg
}

// Rules is the explanation of the rules for display to players.
func (g *Game) Rules() string {
	return g.config.Instructions
}

// PlayerCountRange returns the accepted numbers of players.
func (g *Game) PlayerCountRange() (min, max int) {
	return g.config.MinPlayers, g.config.MaxPlayers
}

// Players returns the registered players in registration order.
func (g *Game) Players() []Player {
	g.mu.Lock()
	defer g.mu.Unlock()
	return slices.Clone(g.players)
}

// Player returns the player registered as number n.
func (g *Game) Player(n PlayerNumber) (Player, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if n < 1 || int(n) > len(g.players) {
		return Player{}, false
	}
	return g.players[n-1], true
}

// PlayerNumber resolves a tag to its player number, or NoPlayerNumber if no
// registered player carries it.
func (g *Game) PlayerNumber(tag PlayerTag) PlayerNumber {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.numberOf(tag)
}

func (g *Game) numberOf(tag PlayerTag) PlayerNumber {
	i := utils.FindIndexFunc(g.players, func(p Player) bool { return p.Tag == tag })
	return PlayerNumber(i + 1)
}

// AddPlayer registers a player under a fresh tag. See AddPlayerWithTag.
func (g *Game) AddPlayer(name string) PlayerNumber {
	return g.AddPlayerWithTag(name, uuid.New())
}

// AddPlayerWithTag registers a player and returns its number, or
// NoPlayerNumber when the game is full or the tag is already registered.
// Reaching the minimum player count moves a game waiting for players to
// WaitingToStart.
func (g *Game) AddPlayerWithTag(name string, tag PlayerTag) PlayerNumber {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.players) >= g.config.MaxPlayers {
		g.log.Debug().Str("name", name).Int("players", len(g.players)).Msg("player refused: game is full")
		return NoPlayerNumber
	}
	if g.numberOf(tag) != NoPlayerNumber {
		g.log.Debug().Str("name", name).Str("tag", tag.String()).Msg("player refused: tag already registered")
		return NoPlayerNumber
	}

	// Names are stored as valid UTF-8 so that encoding a game is stable.
	name = strings.ToValidUTF8(name, "\uFFFD")
	g.players = append(g.players, Player{Name: name, Tag: tag})
	number := PlayerNumber(len(g.players))

	current := g.state.Load()
	next := current
	if len(g.players) >= g.config.MinPlayers && current.stage == StageWaitingForPlayers {
		next = current.withStage(StageWaitingToStart)
	}
	g.log.Debug().Str("name", name).Int("player", int(number)).Msg("player added")
	g.commit(next)
	return number
}

// Start begins a match from WaitingToStart, or a rematch once the previous
// match has finished. The opener of a rematch alternates from the previous
// match's opener.
func (g *Game) Start() (State, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	current := g.state.Load()
	previous := NoPlayerNumber
	switch current.stage.Kind {
	case WaitingToStart:
	case WonBy, Drawn:
		previous = g.opener
	case WaitingForPlayers:
		return g.refuse("start", NotEnoughPlayers)
	case NextPlayBy:
		return g.refuse("start", AlreadyStarted)
	default:
		panic("game: unhandled stage " + current.stage.String())
	}

	return g.begin(g.config.initialPlayer(previous, len(g.players)))
}

// Restart abandons the match in progress, or replays a finished one, opening
// with whoever moved first in that match. It needs at least one move played.
func (g *Game) Restart() (State, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	current := g.state.Load()
	if !(current.stage.IsPlaying() || current.stage.IsFinished()) || len(current.played) == 0 {
		return g.refuse("restart", NotStarted)
	}
	return g.begin(current.FirstMover())
}

// begin publishes a fresh match opened by opener. Callers hold g.mu.
func (g *Game) begin(opener PlayerNumber) (State, error) {
	current := g.state.Load()
	board := current.board.clone()
	board.reset()

	stage := StageNextPlayBy(opener)
	playable, err := g.config.playable(stage, board)
	if err != nil {
		return *current, err
	}

	g.opener = opener
	next := &State{
		stage:    stage,
		board:    board,
		playable: playable,
		scores:   Scores{},
	}
	g.log.Debug().Int("opener", int(opener)).Msg("match started")
	g.commit(next)
	return *next, nil
}

// Play places player's mark at position. The checks run in order: player must
// be registered, it must be their turn, and position must be playable.
func (g *Game) Play(player PlayerNumber, position grid.Position) (State, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	current := g.state.Load()
	if player < 1 || int(player) > len(g.players) {
		return g.refuse("play", NotAPlayer)
	}
	if current.stage != StageNextPlayBy(player) {
		return g.refuse("play", NotYourTurn)
	}
	if !current.playable.At(position) {
		return g.refuse("play", CantPlayThere)
	}

	move := Move{Player: player, Position: slices.Clone(position)}
	played := append(slices.Clone(current.played), move)

	board := current.board.clone()
	if err := board.set(move.Position, player); err != nil {
		return *current, err
	}

	scored := g.config.score(board, move)
	scores := current.scores.clone()
	if len(scored) > 0 {
		scores[player] = append(scores[player], scored...)
	}

	stage := g.config.endCondition(board, move, scored, len(g.players))
	playable, err := g.config.playable(stage, board)
	if err != nil {
		return *current, err
	}

	next := &State{
		stage:    stage,
		board:    board,
		playable: playable,
		played:   played,
		scores:   scores,
	}
	g.log.Debug().
		Int("player", int(player)).
		Ints("position", position).
		Int("scored", len(scored)).
		Str("stage", stage.String()).
		Msg("move played")
	g.commit(next)
	return *next, nil
}

func (g *Game) refuse(op string, issue Issue) (State, error) {
	g.log.Debug().Str("op", op).Str("issue", issue.String()).Msg("operation refused")
	return *g.state.Load(), issue
}

// commit publishes state and notifies observers in commit order. Callers hold
// g.mu.
func (g *Game) commit(state *State) {
	g.state.Store(state)

	g.observersMu.RLock()
	defer g.observersMu.RUnlock()
	for _, observe := range g.observers {
		observe(*state)
	}
}

// Subscribe registers observe to receive every State committed from now on,
// including player registrations. observe runs while the game is locked, so it
// must not block or call back into the Game's mutating methods. The returned
// function cancels the subscription.
func (g *Game) Subscribe(observe func(State)) (cancel func()) {
	g.observersMu.Lock()
	defer g.observersMu.Unlock()

	id := g.nextObserver
	g.nextObserver++
	g.observers[id] = observe

	return func() {
		g.observersMu.Lock()
		defer g.observersMu.Unlock()
		delete(g.observers, id)
	}
}
