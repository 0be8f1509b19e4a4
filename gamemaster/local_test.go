package gamemaster

import (
	"context"
	"testing"

	"github.com/2020-DEV-174/TicTacToe/game"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestListen(t *testing.T) {
	gm := newGameMaster(t)
	inbox := make(chan Envelope)
	stopped := make(chan error, 1)
	go func() { stopped <- gm.Listen(context.Background(), inbox) }()

	send := func(msg Message) Outcome {
		reply := make(chan Outcome, 1)
		inbox <- Envelope{Message: msg, Reply: reply}
		return <-reply
	}

	require.NoError(t, send(AddPlayer{Name: "Alice", Tag: uuid.New()}).Err)
	require.ErrorIs(t, send(StartGame{}).Err, game.NotEnoughPlayers)
	outcome := send(AddPlayer{Name: "Bob", Tag: uuid.New()})
	require.NoError(t, outcome.Err)
	require.Equal(t, game.StageWaitingToStart, outcome.State.Stage())

	inbox <- Envelope{Message: StartGame{}}
	close(inbox)
	require.NoError(t, <-stopped, "Closing the inbox ends the loop cleanly")
	require.Equal(t, game.StageNextPlayBy(1), gm.Game().Stage())
}

func TestListenStopsWithContext(t *testing.T) {
	gm := newGameMaster(t)
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan error, 1)
	go func() { stopped <- gm.Listen(ctx, make(chan Envelope)) }()

	cancel()
	require.ErrorIs(t, <-stopped, context.Canceled)
}
