package game

import (
	"github.com/ratel-online/uno/uno/card"
)

// Discard is one card on the discard pile: the card as printed and the card
// it stands for once a wild colour has been chosen.
type Discard struct {
	Printed card.Card
	Active  card.Card
}

// Pile is the discard pile. Its top is the active card.
type Pile struct {
	discards []Discard
}

func NewPile() *Pile {
	return &Pile{discards: make([]Discard, 0, 54)}
}

func (p *Pile) Add(printed card.Card, active card.Card) {
	if active.IsWild() {
		panic("an unresolved wild card cannot become the active card")
	}
	p.discards = append(p.discards, Discard{Printed: printed, Active: active})
}

func (p *Pile) Discards() []Discard {
	discards := make([]Discard, len(p.discards))
	copy(discards, p.discards)
	return discards
}

func (p *Pile) Top() (Discard, bool) {
	pileSize := len(p.discards)
	if pileSize == 0 {
		return Discard{}, false
	}
	return p.discards[pileSize-1], true
}

func (p *Pile) Size() int {
	return len(p.discards)
}
