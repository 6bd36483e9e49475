package event

import "github.com/ratel-online/uno/uno/card"

// CardPlayedPayload carries the card as printed; a wild keeps its Wild colour
// here and the chosen colour follows in a ColorPicked event.
type CardPlayedPayload struct {
	Player int
	Card   card.Card
}

type CardPlayedListener interface {
	OnCardPlayed(CardPlayedPayload)
}

type cardPlayedEmitter struct {
	listeners []CardPlayedListener
}

func (e *cardPlayedEmitter) AddListener(listener CardPlayedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *cardPlayedEmitter) Emit(payload CardPlayedPayload) {
	for _, listener := range e.listeners {
		listener.OnCardPlayed(payload)
	}
}
