package game_test

import (
	"testing"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	hand := game.NewHand()
	hand.Add(
		card.NewNumberCard(color.Blue, 7),
		card.NewWildCard(),
	)
	require.Equal(t, []card.Card{
		card.NewNumberCard(color.Blue, 7),
		card.NewWildCard(),
	}, hand.Cards())
}

func TestCardsReturnsACopy(t *testing.T) {
	hand := game.NewHand()
	hand.Add(card.NewNumberCard(color.Blue, 7))
	cards := hand.Cards()
	cards[0] = card.NewWildCard()
	require.Equal(t, []card.Card{card.NewNumberCard(color.Blue, 7)}, hand.Cards())
}

func TestEmpty(t *testing.T) {
	hand := game.NewHand()
	require.True(t, hand.Empty())
	hand.Add(
		card.NewNumberCard(color.Blue, 7),
		card.NewWildCard(),
	)
	require.False(t, hand.Empty())
}

func TestSorted(t *testing.T) {
	hand := game.NewHand()
	hand.Add(
		card.NewWildCard(),
		card.NewNumberCard(color.Yellow, 1),
		card.NewNumberCard(color.Red, 9),
	)
	require.Equal(t, []card.Card{
		card.NewNumberCard(color.Red, 9),
		card.NewNumberCard(color.Yellow, 1),
		card.NewWildCard(),
	}, hand.Sorted())
	require.Equal(t, card.NewWildCard(), hand.Cards()[0])
}

func TestPlayableCards(t *testing.T) {
	hand := game.NewHand()
	hand.Add(
		card.NewNumberCard(color.Blue, 5),
		card.NewNumberCard(color.Green, 8),
		card.NewNumberCard(color.Green, 7),
		card.NewWildCard(),
		card.NewReverseCard(color.Yellow),
		card.NewDrawTwoCard(color.Blue),
	)
	activeCard := card.NewNumberCard(color.Blue, 7)
	require.Equal(t, []card.Card{
		card.NewNumberCard(color.Green, 7),
		card.NewNumberCard(color.Blue, 5),
		card.NewDrawTwoCard(color.Blue),
		card.NewWildCard(),
	}, hand.PlayableCards(activeCard))
}

func TestRemoveFirstOccurrence(t *testing.T) {
	t.Run("Removes an existing card", func(t *testing.T) {
		hand := game.NewHand()
		hand.Add(
			card.NewWildCard(),
			card.NewReverseCard(color.Yellow),
			card.NewDrawTwoCard(color.Blue),
		)

		require.True(t, hand.RemoveFirstOccurrence(card.NewReverseCard(color.Yellow)))
		require.Equal(t, []card.Card{
			card.NewWildCard(),
			card.NewDrawTwoCard(color.Blue),
		}, hand.Cards())
	})

	t.Run("Does nothing if specific card is not in hand", func(t *testing.T) {
		hand := game.NewHand()
		hand.Add(
			card.NewWildCard(),
			card.NewReverseCard(color.Yellow),
			card.NewDrawTwoCard(color.Blue),
		)
		require.False(t, hand.RemoveFirstOccurrence(card.NewDrawTwoCard(color.Red)))
		require.Equal(t, []card.Card{
			card.NewWildCard(),
			card.NewReverseCard(color.Yellow),
			card.NewDrawTwoCard(color.Blue),
		}, hand.Cards())
	})

	t.Run("Removes a single copy of the specified card", func(t *testing.T) {
		hand := game.NewHand()
		hand.Add(
			card.NewWildCard(),
			card.NewNumberCard(color.Red, 6),
			card.NewNumberCard(color.Red, 6),
		)
		hand.RemoveFirstOccurrence(card.NewNumberCard(color.Red, 6))
		require.Equal(t, []card.Card{
			card.NewWildCard(),
			card.NewNumberCard(color.Red, 6),
		}, hand.Cards())
	})
}

func TestSize(t *testing.T) {
	hand := game.NewHand()
	require.Equal(t, 0, hand.Size())
	hand.Add(
		card.NewNumberCard(color.Green, 7),
		card.NewWildCard(),
		card.NewReverseCard(color.Yellow),
	)
	require.Equal(t, 3, hand.Size())
}
