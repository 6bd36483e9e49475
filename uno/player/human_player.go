package player

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/ui"
)

// Human answers through the console. Several seats may share one Human when
// the players pass the keyboard around.
type Human struct {
	console *ui.Console
}

func NewHuman(console *ui.Console) *Human {
	return &Human{console: console}
}

func (h *Human) ChooseAction(state game.State) game.Selection {
	draw, index := h.console.PromptCardSelection(len(state.PlayableCards))
	if draw {
		return game.DrawSelection()
	}
	return game.PlaySelection(index)
}

func (h *Human) ConfirmPlay(_ game.State, drawnCard card.Card) bool {
	return h.console.PromptConfirmPlay(drawnCard)
}

func (h *Human) ChooseColor(game.State) color.Color {
	return h.console.PromptColor()
}

func (h *Human) Notify(message string) {
	h.console.Print(message)
}

func (h *Human) OnPlayerWon(payload event.PlayerWonPayload) {
	h.console.Println(ui.WinnerBox(payload.Player))
}
