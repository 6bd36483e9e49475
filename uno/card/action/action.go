// Package action lists the effects a card can carry once it becomes the
// active card.
package action

import "fmt"

type Action interface {
	Name() string
}

type DrawCardsAction struct {
	amount int
}

func NewDrawCardsAction(amount int) Action {
	if amount <= 0 {
		panic(fmt.Sprintf("draw action needs a positive amount, got %d", amount))
	}
	return DrawCardsAction{amount: amount}
}

func (a DrawCardsAction) Amount() int {
	return a.amount
}

func (a DrawCardsAction) Name() string {
	return fmt.Sprintf("draw_%d", a.amount)
}

type ReverseTurnsAction struct{}

func NewReverseTurnsAction() Action {
	return ReverseTurnsAction{}
}

func (ReverseTurnsAction) Name() string { return "reverse" }

type SkipTurnAction struct{}

func NewSkipTurnAction() Action {
	return SkipTurnAction{}
}

func (SkipTurnAction) Name() string { return "skip" }

// PickColorAction is carried by wild cards and is consumed when the card is
// played, not when it becomes active.
type PickColorAction struct{}

func NewPickColorAction() Action {
	return PickColorAction{}
}

func (PickColorAction) Name() string { return "pick_color" }
