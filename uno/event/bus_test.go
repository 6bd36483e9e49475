package event_test

import (
	"testing"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
	"github.com/stretchr/testify/require"
)

func TestCardPlayed(t *testing.T) {
	bus := event.NewBus()
	listenerOne := event.NewDummyListener()
	listenerTwo := event.NewDummyListener()

	bus.CardPlayed.AddListener(listenerOne)
	bus.CardPlayed.AddListener(listenerTwo)

	payloads := []event.CardPlayedPayload{
		{
			Player: 0,
			Card:   card.NewWildCard(),
		},
		{
			Player: 1,
			Card:   card.NewDrawTwoCard(color.Green),
		},
	}

	for _, payload := range payloads {
		bus.CardPlayed.Emit(payload)
	}

	require.ElementsMatch(t, payloads, listenerOne.ReceivedPayloads())
	require.ElementsMatch(t, payloads, listenerTwo.ReceivedPayloads())
}

func TestColorPicked(t *testing.T) {
	bus := event.NewBus()
	listener := event.NewDummyListener()
	bus.ColorPicked.AddListener(listener)

	payloads := []event.ColorPickedPayload{
		{Player: 0, Color: color.Red},
		{Player: 3, Color: color.Yellow},
	}
	for _, payload := range payloads {
		bus.ColorPicked.Emit(payload)
	}

	require.ElementsMatch(t, payloads, listener.ReceivedPayloads())
}

func TestBusesAreIndependent(t *testing.T) {
	first := event.NewBus()
	second := event.NewBus()
	listener := event.NewDummyListener()
	first.PlayerPassed.AddListener(listener)

	second.PlayerPassed.Emit(event.PlayerPassedPayload{Player: 1})
	require.Empty(t, listener.ReceivedPayloads())

	first.PlayerPassed.Emit(event.PlayerPassedPayload{Player: 1})
	require.Equal(t, []interface{}{event.PlayerPassedPayload{Player: 1}}, listener.ReceivedPayloads())
}

func TestSubscribe(t *testing.T) {
	t.Run("registers_every_implemented_listener", func(t *testing.T) {
		bus := event.NewBus()
		listener := event.NewDummyListener()
		require.True(t, bus.Subscribe(listener))

		bus.FirstCardPlayed.Emit(event.FirstCardPlayedPayload{Card: card.NewNumberCard(color.Blue, 4)})
		bus.CardsDrawn.Emit(event.CardsDrawnPayload{Player: 1, Cards: []card.Card{card.NewWildCard()}})
		bus.DeckReplenished.Emit(event.DeckReplenishedPayload{Size: 90})
		bus.PlayerWon.Emit(event.PlayerWonPayload{Player: 0})

		require.Equal(t, []interface{}{
			event.FirstCardPlayedPayload{Card: card.NewNumberCard(color.Blue, 4)},
			event.CardsDrawnPayload{Player: 1, Cards: []card.Card{card.NewWildCard()}},
			event.DeckReplenishedPayload{Size: 90},
			event.PlayerWonPayload{Player: 0},
		}, listener.ReceivedPayloads())
	})

	t.Run("reports_unrelated_values", func(t *testing.T) {
		bus := event.NewBus()
		require.False(t, bus.Subscribe("not a listener"))
	})
}
