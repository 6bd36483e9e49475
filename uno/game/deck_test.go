package game_test

import (
	"math/rand"
	"testing"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/stretchr/testify/require"
)

func countCards(cards []card.Card) map[card.Card]int {
	counts := make(map[card.Card]int)
	for _, c := range cards {
		counts[c]++
	}
	return counts
}

func TestStandardCards(t *testing.T) {
	cards := game.StandardCards()
	require.Len(t, cards, 108)

	counts := countCards(cards)
	require.Equal(t, 4, counts[card.NewWildCard()])
	require.Equal(t, 4, counts[card.NewWildDrawFourCard()])
	for _, cardColor := range color.Concrete {
		require.Equal(t, 1, counts[card.NewNumberCard(cardColor, 0)], cardColor.Name())
		for number := 1; number <= 9; number++ {
			require.Equal(t, 2, counts[card.NewNumberCard(cardColor, number)], cardColor.Name())
		}
		require.Equal(t, 2, counts[card.NewSkipCard(cardColor)], cardColor.Name())
		require.Equal(t, 2, counts[card.NewReverseCard(cardColor)], cardColor.Name())
		require.Equal(t, 2, counts[card.NewDrawTwoCard(cardColor)], cardColor.Name())
	}
	require.Len(t, counts, 4*(10+3)+2)
}

func TestDraw(t *testing.T) {
	t.Run("takes_cards_from_the_top", func(t *testing.T) {
		deck := game.NewDeckOf(rand.New(rand.NewSource(1)), []card.Card{
			card.NewNumberCard(color.Red, 1),
			card.NewNumberCard(color.Red, 2),
		})
		require.Equal(t, card.NewNumberCard(color.Red, 1), deck.Draw())
		require.Equal(t, card.NewNumberCard(color.Red, 2), deck.Draw())
		require.True(t, deck.Empty())
	})

	t.Run("returns_all_108_standard_uno_cards", func(t *testing.T) {
		deck := game.NewDeck(rand.New(rand.NewSource(1)))
		deck.Shuffle()
		cards := make([]card.Card, 0, 108)
		for !deck.Empty() {
			cards = append(cards, deck.Draw())
		}
		require.ElementsMatch(t, game.StandardCards(), cards)
	})

	t.Run("panics_when_empty", func(t *testing.T) {
		deck := game.NewDeckOf(rand.New(rand.NewSource(1)), nil)
		require.Panics(t, func() { deck.Draw() })
	})
}

func TestShuffleIsDeterministicForASeed(t *testing.T) {
	first := game.NewDeck(rand.New(rand.NewSource(42)))
	second := game.NewDeck(rand.New(rand.NewSource(42)))
	first.Shuffle()
	second.Shuffle()
	require.Equal(t, first.Cards(), second.Cards())
	require.NotEqual(t, game.StandardCards(), first.Cards())
	require.ElementsMatch(t, game.StandardCards(), first.Cards())
}

func TestDeckRemoveFirstOccurrence(t *testing.T) {
	deck := game.NewDeck(rand.New(rand.NewSource(1)))

	require.True(t, deck.RemoveFirstOccurrence(card.NewWildCard()))
	require.Equal(t, 107, deck.Size())
	require.Equal(t, 3, countCards(deck.Cards())[card.NewWildCard()])

	require.True(t, deck.RemoveFirstOccurrence(card.NewNumberCard(color.Green, 0)))
	require.False(t, deck.RemoveFirstOccurrence(card.NewNumberCard(color.Green, 0)))
	require.False(t, deck.RemoveFirstOccurrence(card.NewWildCard().Resolve(color.Red)))
	require.Equal(t, 106, deck.Size())
}
