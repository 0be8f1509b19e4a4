package gamemaster

import (
	"errors"
	"sync"

	"github.com/2020-DEV-174/TicTacToe/game"
	"github.com/2020-DEV-174/TicTacToe/grid"
	"github.com/2020-DEV-174/TicTacToe/meta"
	"github.com/rs/zerolog"
)

// Host is a remote participant that is kept up to date with the game.
type Host interface {
	UpdateGameState(state game.State) error
}

// HostFunc adapts a function to the Host interface.
type HostFunc func(state game.State) error

func (f HostFunc) UpdateGameState(state game.State) error { return f(state) }

type HostID int

// Message is one inbound request from a host.
type Message interface {
	handle(g *game.Game) (game.State, error)
}

// AddPlayer registers a player under the host's tag.
type AddPlayer struct {
	Name string
	Tag  game.PlayerTag
}

type StartGame struct{}

type RestartGame struct{}

// PlayMove plays for the player registered under Tag.
type PlayMove struct {
	Position grid.Position
	Tag      game.PlayerTag
}

// ErrPlayerRejected is returned when AddPlayer cannot register the player.
var ErrPlayerRejected = errors.New("gamemaster: player rejected")

var ErrClosed = errors.New("gamemaster: closed")

func (m AddPlayer) handle(g *game.Game) (game.State, error) {
	if g.AddPlayerWithTag(m.Name, m.Tag) == game.NoPlayerNumber {
		return g.Snapshot(), ErrPlayerRejected
	}
	return g.Snapshot(), nil
}

func (StartGame) handle(g *game.Game) (game.State, error) { return g.Start() }

func (RestartGame) handle(g *game.Game) (game.State, error) { return g.Restart() }

// An unknown tag resolves to NoPlayerNumber, which Play refuses as NotAPlayer.
func (m PlayMove) handle(g *game.Game) (game.State, error) {
	return g.Play(g.PlayerNumber(m.Tag), m.Position)
}

type Option func(gm *GameMaster)

func WithLogger(logger zerolog.Logger) Option {
	return func(gm *GameMaster) {
		gm.log = logger
	}
}

// WithBuffer sets how many snapshots may wait for a host before new ones are
// dropped.
func WithBuffer(size int) Option {
	return func(gm *GameMaster) {
		gm.buffer = size
	}
}

// GameMaster relays host messages to a game and pushes every committed State
// to the attached hosts. Delivery is fire-and-forget: each host has its own
// queue and goroutine, and a host whose queue is full misses snapshots rather
// than holding up the game or the other hosts.
type GameMaster struct {
	game   *game.Game
	log    zerolog.Logger
	buffer int

	mu          sync.Mutex
	latest      game.State // last State seen by broadcast
	hosts       map[HostID]*connection
	nextID      HostID
	closed      bool
	unsubscribe func()
	wg          sync.WaitGroup
}

type connection struct {
	id      HostID
	host    Host
	updates chan game.State
}

// NewGameMaster attaches a game master to g.
func NewGameMaster(g *game.Game, options ...Option) *GameMaster {
	gm := &GameMaster{
		game:   g,
		log:    zerolog.Nop(),
		buffer: meta.HOST_BUFFER,
		hosts:  map[HostID]*connection{},
	}
	for _, option := range options {
		option(gm)
	}

	// Subscribe before taking the first snapshot so no commit falls between the
	// two; g.Subscribe must not run under gm.mu, which broadcast takes.
	unsubscribe := g.Subscribe(gm.broadcast)
	gm.mu.Lock()
	defer gm.mu.Unlock()
	gm.unsubscribe = unsubscribe
	gm.latest = g.Snapshot()
	return gm
}

func (gm *GameMaster) Game() *game.Game {
	return gm.game
}

// Handle applies msg to the game and returns the outcome to the caller only.
// Successful mutations reach every host through the broadcast.
func (gm *GameMaster) Handle(msg Message) (game.State, error) {
	state, err := msg.handle(gm.game)
	if err != nil {
		gm.log.Debug().Err(err).Msgf("message %T refused", msg)
	}
	return state, err
}

// AddHost attaches h. It first receives the latest broadcast State, then every
// State committed afterwards, each exactly once.
func (gm *GameMaster) AddHost(h Host) (HostID, error) {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	if gm.closed {
		return 0, ErrClosed
	}

	gm.nextID++
	c := &connection{
		id:      gm.nextID,
		host:    h,
		updates: make(chan game.State, max(gm.buffer, 1)),
	}
	gm.hosts[c.id] = c
	c.updates <- gm.latest

	gm.wg.Add(1)
	go gm.deliver(c)

	gm.log.Info().Int("host", int(c.id)).Msg("host attached")
	return c.id, nil
}

// RemoveHost detaches a host. Snapshots already queued are still delivered.
func (gm *GameMaster) RemoveHost(id HostID) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	c, ok := gm.hosts[id]
	if !ok {
		return
	}
	delete(gm.hosts, id)
	close(c.updates)
	gm.log.Info().Int("host", int(id)).Msg("host detached")
}

// Close detaches every host, stops following the game and waits for pending
// deliveries to finish.
func (gm *GameMaster) Close() {
	gm.mu.Lock()
	if gm.closed {
		gm.mu.Unlock()
		return
	}
	gm.closed = true
	for id, c := range gm.hosts {
		delete(gm.hosts, id)
		close(c.updates)
	}
	gm.mu.Unlock()

	gm.unsubscribe()
	gm.wg.Wait()
}

func (gm *GameMaster) broadcast(state game.State) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	gm.latest = state
	for _, c := range gm.hosts {
		select {
		case c.updates <- state:
		default:
			gm.log.Warn().Int("host", int(c.id)).Str("stage", state.Stage().String()).Msg("host is behind, snapshot dropped")
		}
	}
}

func (gm *GameMaster) deliver(c *connection) {
	defer gm.wg.Done()
	for state := range c.updates {
		if err := c.host.UpdateGameState(state); err != nil {
			gm.log.Warn().Err(err).Int("host", int(c.id)).Msg("host update failed")
		}
	}
}
