package game

import (
	"math/rand"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// Deck is the draw pile. The top of the deck is the front of the slice.
type Deck struct {
	cards []card.Card
	rand  *rand.Rand
}

// NewDeck returns the 108 standard cards in their fixed order. Call Shuffle
// before dealing from it.
func NewDeck(random *rand.Rand) *Deck {
	return NewDeckOf(random, StandardCards())
}

// NewDeckOf builds a deck holding exactly cards, top first.
func NewDeckOf(random *rand.Rand, cards []card.Card) *Deck {
	deckCards := make([]card.Card, len(cards))
	copy(deckCards, cards)
	return &Deck{cards: deckCards, rand: random}
}

// Draw takes the top card. Drawing from an empty deck is a programming
// error; callers replenish first.
func (d *Deck) Draw() card.Card {
	if len(d.cards) == 0 {
		panic("draw from an empty deck")
	}
	drawnCard := d.cards[0]
	d.cards = d.cards[1:]
	return drawnCard
}

func (d *Deck) RemoveFirstOccurrence(removedCard card.Card) bool {
	for index, cardInDeck := range d.cards {
		if cardInDeck.Equal(removedCard) {
			d.cards = append(d.cards[:index], d.cards[index+1:]...)
			return true
		}
	}
	return false
}

func (d *Deck) Shuffle() {
	d.rand.Shuffle(len(d.cards), func(i, j int) { d.cards[i], d.cards[j] = d.cards[j], d.cards[i] })
}

func (d *Deck) Size() int {
	return len(d.cards)
}

func (d *Deck) Empty() bool {
	return len(d.cards) == 0
}

func (d *Deck) Cards() []card.Card {
	cards := make([]card.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

// StandardCards lists one full deck: for each colour a single 0, two of each
// 1-9, Skip, Reverse and Draw Two, followed by four Wild and four Wild Draw Four.
func StandardCards() []card.Card {
	cards := make([]card.Card, 0, 108)

	for _, cardColor := range color.Concrete {
		cards = append(cards, createColorCards(cardColor)...)
	}
	cards = append(cards, createBlackCards()...)

	return cards
}

func createColorCards(cardColor color.Color) []card.Card {
	cards := []card.Card{card.NewNumberCard(cardColor, 0)}

	for number := 1; number <= 9; number++ {
		numberCard := card.NewNumberCard(cardColor, number)
		cards = append(cards, numberCard, numberCard)
	}

	skipCard := card.NewSkipCard(cardColor)
	reverseCard := card.NewReverseCard(cardColor)
	drawTwoCard := card.NewDrawTwoCard(cardColor)

	return append(cards,
		skipCard, skipCard,
		reverseCard, reverseCard,
		drawTwoCard, drawTwoCard,
	)
}

func createBlackCards() []card.Card {
	wildCard := card.NewWildCard()
	wildDrawFourCard := card.NewWildDrawFourCard()

	return []card.Card{
		wildCard, wildCard, wildCard, wildCard,
		wildDrawFourCard, wildDrawFourCard, wildDrawFourCard, wildDrawFourCard,
	}
}
