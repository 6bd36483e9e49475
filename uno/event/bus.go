// Package event carries what happens during a game to anyone listening: the
// console seat, the structured log, tests.
package event

// Bus holds one emitter per event type. Every game owns its own bus.
type Bus struct {
	CardPlayed      *cardPlayedEmitter
	ColorPicked     *colorPickedEmitter
	FirstCardPlayed *firstCardPlayedEmitter
	PlayerPassed    *playerPassedEmitter
	CardsDrawn      *cardsDrawnEmitter
	DeckReplenished *deckReplenishedEmitter
	PlayerWon       *playerWonEmitter
}

func NewBus() *Bus {
	return &Bus{
		CardPlayed:      &cardPlayedEmitter{},
		ColorPicked:     &colorPickedEmitter{},
		FirstCardPlayed: &firstCardPlayedEmitter{},
		PlayerPassed:    &playerPassedEmitter{},
		CardsDrawn:      &cardsDrawnEmitter{},
		DeckReplenished: &deckReplenishedEmitter{},
		PlayerWon:       &playerWonEmitter{},
	}
}

// Subscribe adds listener to every emitter whose listener interface it
// implements and reports whether it matched any.
func (b *Bus) Subscribe(listener interface{}) bool {
	matched := false
	if l, ok := listener.(CardPlayedListener); ok {
		b.CardPlayed.AddListener(l)
		matched = true
	}
	if l, ok := listener.(ColorPickedListener); ok {
		b.ColorPicked.AddListener(l)
		matched = true
	}
	if l, ok := listener.(FirstCardPlayedListener); ok {
		b.FirstCardPlayed.AddListener(l)
		matched = true
	}
	if l, ok := listener.(PlayerPassedListener); ok {
		b.PlayerPassed.AddListener(l)
		matched = true
	}
	if l, ok := listener.(CardsDrawnListener); ok {
		b.CardsDrawn.AddListener(l)
		matched = true
	}
	if l, ok := listener.(DeckReplenishedListener); ok {
		b.DeckReplenished.AddListener(l)
		matched = true
	}
	if l, ok := listener.(PlayerWonListener); ok {
		b.PlayerWon.AddListener(l)
		matched = true
	}
	return matched
}
