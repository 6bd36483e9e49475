package msg

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

var Message = MessageWriter{}

// MessageWriter builds every line the game shows to the table. Player
// arguments are 0-based seat indexes; the text is 1-based.
type MessageWriter struct{}

func (m MessageWriter) FirstCardPlayed(card card.Card) string {
	return Sprintfln("First card is %s", card)
}

func (m MessageWriter) TurnStarted(player int, activeCard card.Card, playableCards []card.Card, hand []card.Card) string {
	return Sprintlns([]string{
		Sprintf("PLAYER %d:", player+1),
		Sprintf("Card at play: %s", activeCard),
		Sprintf("PLAYABLE HAND: %s", Options(playableCards)),
		Sprintf("FULL HAND: (%d cards) %s", len(hand), Cards(hand)),
	})
}

func (m MessageWriter) PlayerDrewCard(card card.Card) string {
	return Sprintfln("Drew card %s", card)
}

func (m MessageWriter) PlayerDrewCards(player int, cards []card.Card) string {
	if len(cards) == 1 {
		return Sprintfln("Player %d drew a card!", player+1)
	}
	return Sprintfln("Player %d drew %d cards!", player+1, len(cards))
}

func (m MessageWriter) PlayerPassed(player int) string {
	return Sprintfln("Player %d passed!", player+1)
}

func (m MessageWriter) PlayerPickedColor(player int, color color.Color) string {
	return Sprintfln("Player %d picked color %s!", player+1, color)
}

func (m MessageWriter) PlayerPlayedCard(player int, card card.Card) string {
	return Sprintfln("Player %d played %s!", player+1, card)
}

func (m MessageWriter) PlayerTurnSkipped(player int) string {
	return Sprintfln("Player %d's turn skipped!", player+1)
}

func (m MessageWriter) TurnOrderReversed() string {
	return Sprintln("Turn order has been reversed!")
}

func (m MessageWriter) OneCardLeft(player int) string {
	return Sprintfln("Player%d: Uno!", player+1)
}

func (m MessageWriter) DeckReplenished(size int) string {
	return Sprintfln("The draw pile ran out and was rebuilt with %d cards.", size)
}

func (m MessageWriter) NothingLeftToDraw(player int) string {
	return Sprintfln("There is nothing left to draw, player %d passes.", player+1)
}

func (m MessageWriter) WinnerFound(player int) string {
	return Sprintfln("Player %d won!", player+1)
}

func (m MessageWriter) SelectionOutOfRange(number int, options int) string {
	return Sprintfln("There is no card (%d), pick one of 1-%d or draw.", number, options)
}

func (m MessageWriter) ColorNotAllowed(color color.Color) string {
	return Sprintfln("%s cannot be picked, choose red, green, blue or yellow.", color)
}
