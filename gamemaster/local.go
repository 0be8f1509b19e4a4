package gamemaster

import (
	"context"

	"github.com/2020-DEV-174/TicTacToe/game"
)

// Envelope carries a message from an in-process caller together with where to
// send the outcome. Reply may be nil when the caller does not care.
type Envelope struct {
	Message Message
	Reply   chan<- Outcome
}

type Outcome struct {
	State game.State
	Err   error
}

// Listen handles messages from inbox one at a time until inbox is closed or ctx
// is done. Replies should be buffered; Listen gives up on a reply only when ctx
// ends.
func (gm *GameMaster) Listen(ctx context.Context, inbox <-chan Envelope) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case env, ok := <-inbox:
			if !ok {
				return nil
			}
			state, err := gm.Handle(env.Message)
			if env.Reply == nil {
				continue
			}
			select {
			case env.Reply <- Outcome{State: state, Err: err}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}
