package game

import (
	"github.com/ratel-online/uno/uno/msg"
)

// seats pairs every player's hand with the turn pointer.
type seats struct {
	hands  []*Hand
	cycler *Cycler
}

func newSeats(count int) *seats {
	hands := make([]*Hand, count)
	for index := range hands {
		hands[index] = NewHand()
	}
	return &seats{
		hands:  hands,
		cycler: NewCycler(count),
	}
}

func (s *seats) Count() int {
	return s.cycler.Size()
}

func (s *seats) Current() int {
	return s.cycler.Current()
}

func (s *seats) CurrentHand() *Hand {
	return s.hands[s.cycler.Current()]
}

func (s *seats) Hand(index int) *Hand {
	return s.hands[index]
}

func (s *seats) ForEach(function func(index int, hand *Hand)) {
	s.cycler.ForEach(func(index int) {
		function(index, s.hands[index])
	})
}

func (s *seats) Next() int {
	return s.cycler.Next()
}

func (s *seats) Reverse() string {
	s.cycler.Reverse()
	return msg.Message.TurnOrderReversed()
}

// Skip passes over the player whose turn it currently is.
func (s *seats) Skip() string {
	skippedPlayer := s.cycler.Current()
	s.cycler.Next()
	return msg.Message.PlayerTurnSkipped(skippedPlayer)
}

func (s *seats) HandCounts() []int {
	counts := make([]int, len(s.hands))
	for index, hand := range s.hands {
		counts[index] = hand.Size()
	}
	return counts
}
