package core

import "fmt"

// PlayerID identifies one of the two duelists.
// The zero value means "no player" and is used for outcomes without a winner.
type PlayerID int

const (
	NoPlayer PlayerID = iota
	Player1
	Player2
)

// Players lists both duelists in their fixed arbitration order.
var Players = [2]PlayerID{Player1, Player2}

// String returns a human-readable name for the player slot.
func (p PlayerID) String() string {
	switch p {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	case NoPlayer:
		return "nobody"
	default:
		return fmt.Sprintf("Player(%d)", int(p))
	}
}

// Index returns the zero-based slot of the player, or -1 for NoPlayer.
func (p PlayerID) Index() int {
	switch p {
	case Player1:
		return 0
	case Player2:
		return 1
	default:
		return -1
	}
}

// Opponent returns the other duelist.
func (p PlayerID) Opponent() PlayerID {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return NoPlayer
	}
}
