package event

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/sirupsen/logrus"
)

// LogListener writes every event as one structured log entry. Player numbers
// are logged 1-based, the way the console shows them.
type LogListener struct {
	logger logrus.FieldLogger
}

func NewLogListener(logger logrus.FieldLogger) *LogListener {
	return &LogListener{logger: logger}
}

func (l *LogListener) OnFirstCardPlayed(payload FirstCardPlayedPayload) {
	l.logger.WithField("card", payload.Card.Label()).Info("first card played")
}

func (l *LogListener) OnCardPlayed(payload CardPlayedPayload) {
	l.logger.WithFields(logrus.Fields{
		"player": payload.Player + 1,
		"card":   payload.Card.Label(),
	}).Info("card played")
}

func (l *LogListener) OnColorPicked(payload ColorPickedPayload) {
	l.logger.WithFields(logrus.Fields{
		"player": payload.Player + 1,
		"color":  payload.Color.Name(),
	}).Info("color picked")
}

func (l *LogListener) OnPlayerPassed(payload PlayerPassedPayload) {
	l.logger.WithField("player", payload.Player+1).Info("player passed")
}

func (l *LogListener) OnCardsDrawn(payload CardsDrawnPayload) {
	l.logger.WithFields(logrus.Fields{
		"player": payload.Player + 1,
		"count":  len(payload.Cards),
		"cards":  labels(payload.Cards),
	}).Info("cards drawn")
}

func (l *LogListener) OnDeckReplenished(payload DeckReplenishedPayload) {
	l.logger.WithField("size", payload.Size).Info("draw pile replenished")
}

func (l *LogListener) OnPlayerWon(payload PlayerWonPayload) {
	l.logger.WithField("player", payload.Player+1).Info("player won")
}

func labels(cards []card.Card) []string {
	names := make([]string, 0, len(cards))
	for _, c := range cards {
		names = append(names, c.Label())
	}
	return names
}
