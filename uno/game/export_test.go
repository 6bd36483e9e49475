package game

import (
	"github.com/ratel-online/uno/uno/card"
)

// SetHand replaces a player's cards.
func (g *Game) SetHand(player int, cards ...card.Card) {
	hand := NewHand()
	hand.Add(cards...)
	g.seats.hands[player] = hand
}

// SetActiveCard puts a card on top of the discards. A wild card is stored
// as printed with active standing for its resolved colour.
func (g *Game) SetActiveCard(printed card.Card, active card.Card) {
	g.pile.Add(printed, active)
}

func (g *Game) SetCurrentPlayer(player int) {
	g.seats.cycler.moveTo(player)
}

func (g *Game) SetDrawPile(cards ...card.Card) {
	g.deck = NewDeckOf(g.rand, cards)
}

func (g *Game) DrawPile() []card.Card {
	return g.deck.Cards()
}
