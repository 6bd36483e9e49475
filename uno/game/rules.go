package game

import (
	"github.com/ratel-online/uno/uno/card"
)

// Playable reports whether candidateCard may be played on activeCard: same
// colour, same rank, or a wild.
func Playable(candidateCard card.Card, activeCard card.Card) bool {
	return candidateCard.Color() == activeCard.Color() ||
		candidateCard.Rank() == activeCard.Rank() ||
		candidateCard.IsWild()
}
