package player

import (
	"math/rand"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
)

// Table routes every decision to the seat whose turn it is and shows every
// message on one shared screen.
type Table struct {
	screen game.Interaction
	seats  []game.Interaction
}

func NewTable(screen game.Interaction, seats []game.Interaction) *Table {
	return &Table{screen: screen, seats: seats}
}

// CreateTable seats the human in the first players-bots seats and scripted
// bots in the rest.
func CreateTable(players int, bots int, human *Human, random *rand.Rand) *Table {
	seats := make([]game.Interaction, 0, players)
	for len(seats) < players-bots {
		seats = append(seats, human)
	}
	for len(seats) < players {
		seats = append(seats, NewScripted(random))
	}
	return NewTable(human, seats)
}

func (t *Table) seat(state game.State) game.Interaction {
	return t.seats[state.Player]
}

func (t *Table) ChooseAction(state game.State) game.Selection {
	return t.seat(state).ChooseAction(state)
}

func (t *Table) ConfirmPlay(state game.State, drawnCard card.Card) bool {
	return t.seat(state).ConfirmPlay(state, drawnCard)
}

func (t *Table) ChooseColor(state game.State) color.Color {
	return t.seat(state).ChooseColor(state)
}

func (t *Table) Notify(message string) {
	t.screen.Notify(message)
}
