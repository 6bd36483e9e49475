package game

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// Interaction is how the engine asks for decisions and reports what happens.
// Every call blocks until an answer is available.
type Interaction interface {
	// ChooseAction picks an index into state.PlayableCards or asks to draw.
	ChooseAction(state State) Selection
	// ConfirmPlay is asked after drawing a playable card when the hand had none.
	ConfirmPlay(state State, drawnCard card.Card) bool
	// ChooseColor resolves a wild card; only Red, Green, Blue and Yellow are accepted.
	ChooseColor(state State) color.Color
	Notify(message string)
}

type Selection struct {
	Draw  bool
	Index int
}

func DrawSelection() Selection {
	return Selection{Draw: true}
}

func PlaySelection(index int) Selection {
	return Selection{Index: index}
}
