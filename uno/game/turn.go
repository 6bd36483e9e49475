package game

import (
	"fmt"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/msg"
	"github.com/sirupsen/logrus"
)

// ResolveIncomingEffect applies the active card's effect to the player about
// to move. The effect comes from whatever card is on top, so a card that
// stays active after a draw hits the next player as well.
func (g *Game) ResolveIncomingEffect() {
	g.mustBeRunning()
	g.phase = PhaseAwaitingCardEffect
	g.performCardActions(g.ActiveCard())
	g.phase = PhaseAwaitingPlayerChoice
}

func (g *Game) performCardActions(activeCard card.Card) {
	for _, cardAction := range activeCard.Actions() {
		switch cardAction := cardAction.(type) {
		case action.ReverseTurnsAction:
			g.notify(g.seats.Reverse())
			g.notify(g.seats.Skip())
		case action.SkipTurnAction:
			g.notify(g.seats.Skip())
		case action.DrawCardsAction:
			g.drawCards(g.seats.Current(), cardAction.Amount())
		}
		g.log.WithFields(logrus.Fields{
			"card":   activeCard.Label(),
			"action": cardAction.Name(),
			"player": g.seats.Current() + 1,
		}).Debug("card effect resolved")
	}
}

// TakeTurn lets the current player play a legal card or draw, then passes
// the turn on in the current direction.
func (g *Game) TakeTurn() {
	g.mustBeRunning()
	g.phase = PhaseAwaitingPlayerChoice

	player := g.seats.Current()
	hand := g.seats.CurrentHand()
	state := g.State()
	g.log.WithField("state", state.String()).Debug("turn started")
	g.notify(msg.Message.TurnStarted(player, state.ActiveCard, state.PlayableCards, state.Hand))

	var played bool
	if len(state.PlayableCards) == 0 {
		played = g.drawUntilPlayable(player, hand)
	} else {
		played = g.chooseAndPlay(player, hand, state.PlayableCards)
	}
	if !played {
		g.events.PlayerPassed.Emit(event.PlayerPassedPayload{
			Player: player,
		})
		g.notify(msg.Message.PlayerPassed(player))
	}

	if hand.Size() == 1 {
		g.notify(msg.Message.OneCardLeft(player))
	}

	g.seats.Next()
	g.phase = PhaseTurnResolved
	g.log.WithFields(logrus.Fields{
		"player": player + 1,
		"played": played,
		"cards":  hand.Size(),
		"next":   g.seats.Current() + 1,
	}).Debug("turn resolved")
}

func (g *Game) chooseAndPlay(player int, hand *Hand, playableCards []card.Card) bool {
	for {
		selection := g.interaction.ChooseAction(g.State())
		if selection.Draw {
			g.drawCards(player, 1)
			return false
		}
		if selection.Index < 0 || selection.Index >= len(playableCards) {
			g.log.WithField("index", selection.Index).Warn("rejected selection")
			g.notify(msg.Message.SelectionOutOfRange(selection.Index+1, len(playableCards)))
			continue
		}
		g.play(player, hand, playableCards[selection.Index])
		return true
	}
}

// drawUntilPlayable draws one card at a time until the player plays a drawn
// card or nothing is left to draw.
func (g *Game) drawUntilPlayable(player int, hand *Hand) bool {
	for {
		drawnCard, ok := g.drawCard()
		if !ok {
			g.notify(msg.Message.NothingLeftToDraw(player))
			return false
		}
		hand.Add(drawnCard)
		g.events.CardsDrawn.Emit(event.CardsDrawnPayload{
			Player: player,
			Cards:  []card.Card{drawnCard},
		})

		if !Playable(drawnCard, g.ActiveCard()) {
			g.notify(msg.Message.PlayerDrewCard(drawnCard))
			continue
		}
		if g.interaction.ConfirmPlay(g.State(), drawnCard) {
			g.play(player, hand, drawnCard)
			return true
		}
	}
}

func (g *Game) play(player int, hand *Hand, playedCard card.Card) {
	if !hand.RemoveFirstOccurrence(playedCard) {
		panic(fmt.Sprintf("player %d does not hold %s", player+1, playedCard.Label()))
	}
	g.events.CardPlayed.Emit(event.CardPlayedPayload{
		Player: player,
		Card:   playedCard,
	})
	g.notify(msg.Message.PlayerPlayedCard(player, playedCard))

	activeCard := playedCard
	for _, cardAction := range playedCard.Actions() {
		if _, ok := cardAction.(action.PickColorAction); ok {
			activeCard = g.resolveWild(player, playedCard)
		}
	}
	g.pile.Add(playedCard, activeCard)
}

func (g *Game) mustBeRunning() {
	if g.phase == PhaseGameOver {
		panic(fmt.Sprintf("game %s is over, player %d won", g.id, g.winner+1))
	}
}
