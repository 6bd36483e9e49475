package player

import (
	"math/rand"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
)

// Scripted answers from queued decisions first. With nothing queued it plays
// the first legal card, accepts every drawn card and picks a random colour.
type Scripted struct {
	random   *rand.Rand
	actions  []game.Selection
	confirms []bool
	colors   []color.Color
	messages []string
}

func NewScripted(random *rand.Rand) *Scripted {
	return &Scripted{random: random}
}

func (s *Scripted) QueueActions(selections ...game.Selection) *Scripted {
	s.actions = append(s.actions, selections...)
	return s
}

func (s *Scripted) QueueConfirms(answers ...bool) *Scripted {
	s.confirms = append(s.confirms, answers...)
	return s
}

func (s *Scripted) QueueColors(colors ...color.Color) *Scripted {
	s.colors = append(s.colors, colors...)
	return s
}

func (s *Scripted) ChooseAction(state game.State) game.Selection {
	if len(s.actions) > 0 {
		selection := s.actions[0]
		s.actions = s.actions[1:]
		return selection
	}
	if len(state.PlayableCards) == 0 {
		return game.DrawSelection()
	}
	return game.PlaySelection(0)
}

func (s *Scripted) ConfirmPlay(game.State, card.Card) bool {
	if len(s.confirms) > 0 {
		answer := s.confirms[0]
		s.confirms = s.confirms[1:]
		return answer
	}
	return true
}

func (s *Scripted) ChooseColor(game.State) color.Color {
	if len(s.colors) > 0 {
		chosen := s.colors[0]
		s.colors = s.colors[1:]
		return chosen
	}
	return color.Concrete[s.random.Intn(len(color.Concrete))]
}

func (s *Scripted) Notify(message string) {
	s.messages = append(s.messages, message)
}

func (s *Scripted) Messages() []string {
	return s.messages
}
