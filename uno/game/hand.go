package game

import (
	"github.com/ratel-online/uno/uno/card"
)

// Hand is the multiset of cards a player holds. Insertion order is kept;
// Sorted gives the display order.
type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, 7)}
}

func (h *Hand) Add(cards ...card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Sorted() []card.Card {
	return card.Sorted(h.cards)
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

// PlayableCards returns the sorted cards that may go on top of activeCard.
func (h *Hand) PlayableCards(activeCard card.Card) []card.Card {
	var playableCards []card.Card
	for _, candidateCard := range h.cards {
		if Playable(candidateCard, activeCard) {
			playableCards = append(playableCards, candidateCard)
		}
	}
	card.Sort(playableCards)
	return playableCards
}

// RemoveFirstOccurrence drops one copy of the card and reports whether it was held.
func (h *Hand) RemoveFirstOccurrence(removedCard card.Card) bool {
	for index, cardInHand := range h.cards {
		if cardInHand.Equal(removedCard) {
			h.cards = append(h.cards[:index], h.cards[index+1:]...)
			return true
		}
	}
	return false
}

func (h *Hand) Size() int {
	return len(h.cards)
}
