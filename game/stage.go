package game

import (
	"fmt"
	"strconv"
	"strings"
)

// StageKind is the phase of a match.
type StageKind int

const (
	WaitingForPlayers StageKind = iota
	WaitingToStart
	NextPlayBy
	WonBy
	Drawn
)

// Stage is the phase of a match plus, for NextPlayBy and WonBy, the player
// concerned. Stages are comparable with ==.
type Stage struct {
	Kind   StageKind
	Player PlayerNumber
}

var (
	StageWaitingForPlayers = Stage{Kind: WaitingForPlayers}
	StageWaitingToStart    = Stage{Kind: WaitingToStart}
	StageDrawn             = Stage{Kind: Drawn}
)

// StageNextPlayBy is the stage where player must move next.
func StageNextPlayBy(player PlayerNumber) Stage {
	return Stage{Kind: NextPlayBy, Player: player}
}

// StageWonBy is the stage of a match won by player.
func StageWonBy(player PlayerNumber) Stage {
	return Stage{Kind: WonBy, Player: player}
}

// IsFinished reports whether the match has ended.
func (s Stage) IsFinished() bool {
	switch s.Kind {
	case WonBy, Drawn:
		return true
	case WaitingForPlayers, WaitingToStart, NextPlayBy:
		return false
	default:
		panic(fmt.Sprintf("game: unknown stage kind %d", int(s.Kind)))
	}
}

// Equal reports whether s and other are the same stage.
func (s Stage) Equal(other Stage) bool {
	return s == other
}

// IsPlaying reports whether a match is in progress.
func (s Stage) IsPlaying() bool {
	return s.Kind == NextPlayBy
}

// String is the display form of the stage.
func (s Stage) String() string {
	switch s.Kind {
	case WaitingForPlayers:
		return "waitingForPlayers"
	case WaitingToStart:
		return "readyToStart"
	case NextPlayBy:
		return fmt.Sprintf("nextPlayBy(Player %d)", s.Player)
	case WonBy:
		return fmt.Sprintf("wonBy(Player %d)", s.Player)
	case Drawn:
		return "drawn"
	default:
		return fmt.Sprintf("Stage(%d)", int(s.Kind))
	}
}

// MarshalText encodes the stage as its wire token: "waitingForPlayers",
// "waitingToStart", "nextPlayBy:<n>", "wonBy:<n>" or "drawn".
func (s Stage) MarshalText() ([]byte, error) {
	switch s.Kind {
	case WaitingForPlayers:
		return []byte("waitingForPlayers"), nil
	case WaitingToStart:
		return []byte("waitingToStart"), nil
	case NextPlayBy:
		return []byte("nextPlayBy:" + strconv.Itoa(int(s.Player))), nil
	case WonBy:
		return []byte("wonBy:" + strconv.Itoa(int(s.Player))), nil
	case Drawn:
		return []byte("drawn"), nil
	default:
		return nil, fmt.Errorf("stage: unknown kind %d", int(s.Kind))
	}
}

// UnmarshalText decodes a wire token produced by MarshalText.
func (s *Stage) UnmarshalText(text []byte) error {
	token := string(text)
	switch token {
	case "waitingForPlayers":
		*s = StageWaitingForPlayers
		return nil
	case "waitingToStart":
		*s = StageWaitingToStart
		return nil
	case "drawn":
		*s = StageDrawn
		return nil
	}

	name, number, ok := strings.Cut(token, ":")
	if ok {
		n, err := strconv.Atoi(number)
		if err == nil && n > 0 {
			switch name {
			case "nextPlayBy":
				*s = StageNextPlayBy(PlayerNumber(n))
				return nil
			case "wonBy":
				*s = StageWonBy(PlayerNumber(n))
				return nil
			}
		}
	}
	return fmt.Errorf("stage: cannot decode a stage from %q", token)
}
