package event

type DeckReplenishedPayload struct {
	Size int
}

type DeckReplenishedListener interface {
	OnDeckReplenished(DeckReplenishedPayload)
}

type deckReplenishedEmitter struct {
	listeners []DeckReplenishedListener
}

func (e *deckReplenishedEmitter) AddListener(listener DeckReplenishedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *deckReplenishedEmitter) Emit(payload DeckReplenishedPayload) {
	for _, listener := range e.listeners {
		listener.OnDeckReplenished(payload)
	}
}
