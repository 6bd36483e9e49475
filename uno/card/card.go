package card

import (
	"fmt"
	"sort"

	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
)

// Card is an immutable colour and rank pair. Two cards are the same card
// when both fields match, so Card can be compared with == and used as a map key.
type Card struct {
	color color.Color
	rank  Rank
}

func New(cardColor color.Color, rank Rank) Card {
	if cardColor.IsWild() && rank.kind != KindWild && rank.kind != KindDraw {
		panic(fmt.Sprintf("wild card cannot carry rank %s", rank))
	}
	return Card{color: cardColor, rank: rank}
}

func NewNumberCard(cardColor color.Color, number int) Card {
	return New(cardColor, NumberRank(number))
}

func NewSkipCard(cardColor color.Color) Card {
	return New(cardColor, SkipRank)
}

func NewReverseCard(cardColor color.Color) Card {
	return New(cardColor, ReverseRank)
}

func NewDrawTwoCard(cardColor color.Color) Card {
	return New(cardColor, DrawRank(2))
}

func NewWildCard() Card {
	return New(color.Wild, WildRank)
}

func NewWildDrawFourCard() Card {
	return New(color.Wild, DrawRank(4))
}

func (c Card) Color() color.Color {
	return c.color
}

func (c Card) Rank() Rank {
	return c.rank
}

func (c Card) IsWild() bool {
	return c.color.IsWild()
}

// Actions lists every effect of the card, the colour pick of a wild first.
func (c Card) Actions() []action.Action {
	var actions []action.Action
	if c.IsWild() {
		actions = append(actions, action.NewPickColorAction())
	}
	return append(actions, c.rank.Actions()...)
}

func (c Card) Equal(other Card) bool {
	return c == other
}

// Resolve fixes the colour of a wild card. The rank is kept.
func (c Card) Resolve(chosen color.Color) Card {
	if !c.IsWild() {
		panic(fmt.Sprintf("cannot resolve non-wild card %s", c.Label()))
	}
	if chosen.IsWild() {
		panic("a wild card must be resolved into a concrete color")
	}
	return Card{color: chosen, rank: c.rank}
}

func (c Card) Less(other Card) bool {
	if c.color != other.color {
		return c.color < other.color
	}
	return c.rank.Less(other.rank)
}

// Label is the uncoloured name of the card.
func (c Card) Label() string {
	if c.IsWild() && c.rank.kind == KindWild {
		return "Wild"
	}
	return fmt.Sprintf("%s %s", c.color.Name(), c.rank)
}

func (c Card) String() string {
	return c.color.Paint(c.Label())
}

// Sort orders cards in place by colour, then rank.
func Sort(cards []Card) {
	sort.SliceStable(cards, func(i, j int) bool { return cards[i].Less(cards[j]) })
}

// Sorted returns an ordered copy and leaves cards untouched.
func Sorted(cards []Card) []Card {
	sorted := make([]Card, len(cards))
	copy(sorted, cards)
	Sort(sorted)
	return sorted
}
