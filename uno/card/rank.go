package card

import (
	"fmt"

	"github.com/ratel-online/uno/uno/card/action"
)

// Kind tags the face of a card. The declaration order is the display order
// inside one colour.
type Kind int

const (
	KindNumber Kind = iota
	KindSkip
	KindReverse
	KindDraw
	KindWild
)

// Rank is the face of a card. The payload is the numeral for KindNumber and
// the amount for KindDraw, zero otherwise.
type Rank struct {
	kind  Kind
	value int
}

var (
	SkipRank    = Rank{kind: KindSkip}
	ReverseRank = Rank{kind: KindReverse}
	WildRank    = Rank{kind: KindWild}
)

func NumberRank(number int) Rank {
	if number < 0 || number > 9 {
		panic(fmt.Sprintf("number card out of range: %d", number))
	}
	return Rank{kind: KindNumber, value: number}
}

func DrawRank(amount int) Rank {
	if amount <= 0 {
		panic(fmt.Sprintf("draw card needs a positive amount, got %d", amount))
	}
	return Rank{kind: KindDraw, value: amount}
}

// Actions returns the effects the rank applies to the next turn.
func (r Rank) Actions() []action.Action {
	switch r.kind {
	case KindSkip:
		return []action.Action{action.NewSkipTurnAction()}
	case KindReverse:
		return []action.Action{action.NewReverseTurnsAction()}
	case KindDraw:
		return []action.Action{action.NewDrawCardsAction(r.value)}
	default:
		return []action.Action{}
	}
}

func (r Rank) Less(other Rank) bool {
	if r.kind != other.kind {
		return r.kind < other.kind
	}
	return r.value < other.value
}

func (r Rank) String() string {
	switch r.kind {
	case KindNumber:
		return fmt.Sprintf("%d", r.value)
	case KindSkip:
		return "Skip"
	case KindReverse:
		return "Reverse"
	case KindDraw:
		return fmt.Sprintf("+%d", r.value)
	case KindWild:
		return "Wild"
	default:
		return fmt.Sprintf("Rank(%d)", int(r.kind))
	}
}
