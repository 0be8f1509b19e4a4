package game

import "fmt"

// Issue is the reason an operation was refused. Issues are returned as errors;
// compare them with errors.Is.
type Issue int

const (
	NotEnoughPlayers Issue = iota + 1
	AlreadyStarted
	NotAPlayer
	NotYourTurn
	CantPlayThere
	NotStarted
)

func (i Issue) String() string {
	switch i {
	case NotEnoughPlayers:
		return "notEnoughPlayers"
	case AlreadyStarted:
		return "alreadyStarted"
	case NotAPlayer:
		return "notAPlayer"
	case NotYourTurn:
		return "notYourTurn"
	case CantPlayThere:
		return "cantPlayThere"
	case NotStarted:
		return "notStarted"
	default:
		return fmt.Sprintf("Issue(%d)", int(i))
	}
}

func (i Issue) Error() string {
	return "game: " + i.String()
}
