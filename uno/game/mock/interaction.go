package mock

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/stretchr/testify/mock"
)

// Interaction is a mock implementation of game.Interaction
type Interaction struct {
	mock.Mock
}

// ChooseAction implements game.Interaction
func (i *Interaction) ChooseAction(state game.State) game.Selection {
	args := i.Called(state)
	return args.Get(0).(game.Selection)
}

// ConfirmPlay implements game.Interaction
func (i *Interaction) ConfirmPlay(state game.State, drawnCard card.Card) bool {
	args := i.Called(state, drawnCard)
	return args.Bool(0)
}

// ChooseColor implements game.Interaction
func (i *Interaction) ChooseColor(state game.State) color.Color {
	args := i.Called(state)
	return args.Get(0).(color.Color)
}

// Notify implements game.Interaction
func (i *Interaction) Notify(message string) {
	i.Called(message)
}

// Messages returns every message passed to Notify, in order.
func (i *Interaction) Messages() []string {
	var messages []string
	for _, call := range i.Calls {
		if call.Method == "Notify" {
			messages = append(messages, call.Arguments.String(0))
		}
	}
	return messages
}

// Reset drops every expectation and recorded call.
func (i *Interaction) Reset() {
	i.ExpectedCalls = nil
	i.Calls = nil
}
