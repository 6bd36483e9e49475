package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno/uno/card"
)

// State is a read-only snapshot of the table from the current player's seat.
type State struct {
	Player        int
	ActiveCard    card.Card
	PlayableCards []card.Card
	Hand          []card.Card
	HandCounts    []int
	Direction     Direction
	DrawPileSize  int
}

func (s State) String() string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Card at play: %s", s.ActiveCard))

	var playerStatuses []string
	for player, count := range s.HandCounts {
		playerStatuses = append(playerStatuses, fmt.Sprintf("Player %d (%d card(s))", player+1, count))
	}
	lines = append(lines, fmt.Sprintf("Turn order (%s): %s", s.Direction, strings.Join(playerStatuses, ", ")))

	lines = append(lines, fmt.Sprintf("Player %d hand: %s", s.Player+1, s.Hand))

	return strings.Join(lines, "\n")
}
