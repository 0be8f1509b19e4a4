package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/2020-DEV-174/TicTacToe/config"
	"github.com/2020-DEV-174/TicTacToe/game"
	"github.com/2020-DEV-174/TicTacToe/grid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const usage = `usage:
  ttt play [-players Alice,Bob] x,y ...   play moves in turn and print the encoded game
  ttt replay FILE                        check an encoded game and summarize it
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	level, err := cfg.Level()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	switch os.Args[1] {
	case "play":
		err = play(cfg, os.Args[2:])
	case "replay":
		err = replay(os.Args[2:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		log.Error().Err(err).Msg(os.Args[1] + " failed")
		os.Exit(1)
	}
}

func play(cfg config.Config, args []string) error {
	flags := flag.NewFlagSet("play", flag.ExitOnError)
	names := flags.String("players", "Player 1,Player 2", "Comma separated player names")
	flags.Parse(args)

	g, err := game.New(cfg.Rules(), game.WithLogger(log.Logger))
	if err != nil {
		return err
	}
	log.Info().Msg(g.Rules())

	for _, name := range strings.Split(*names, ",") {
		if g.AddPlayer(strings.TrimSpace(name)) == game.NoPlayerNumber {
			return fmt.Errorf("player %q rejected", name)
		}
	}
	state, err := g.Start()
	if err != nil {
		return err
	}

	for _, arg := range flags.Args() {
		position, err := parsePosition(arg)
		if err != nil {
			return err
		}
		stage := state.Stage()
		if !stage.IsPlaying() {
			return fmt.Errorf("move %s: match is %s", arg, stage)
		}
		state, err = g.Play(stage.Player, position)
		if err != nil {
			return fmt.Errorf("move %s: %w", arg, err)
		}
	}
	log.Info().Str("stage", state.Stage().String()).Int("moves", len(state.Played())).Msg("done")

	data, err := json.Marshal(g)
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func replay(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("replay needs exactly one file")
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	data = bytes.TrimSpace(data)

	g, err := game.Decode(data, game.WithLogger(log.Logger))
	if err != nil {
		return err
	}
	again, err := json.Marshal(g)
	if err != nil {
		return err
	}
	if !bytes.Equal(data, again) {
		return fmt.Errorf("%s does not re-encode to the same bytes", args[0])
	}

	state := g.Snapshot()
	for n, p := range g.Players() {
		log.Info().Int("player", n+1).Str("name", p.Name).Str("tag", p.Tag.String()).Msg("player")
	}
	for player, lines := range state.Scores() {
		log.Info().Int("player", int(player)).Int("lines", len(lines)).Msg("scored")
	}
	log.Info().
		Str("stage", state.Stage().String()).
		Int("moves", len(state.Played())).
		Int("playable", state.Playable().Count()).
		Msg("game is consistent")
	return nil
}

// parsePosition reads a position written as comma separated coordinates.
func parsePosition(text string) (grid.Position, error) {
	var position grid.Position
	for _, part := range strings.Split(text, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("position %q: %w", text, err)
		}
		position = append(position, n)
	}
	return position, nil
}
