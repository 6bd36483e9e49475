package game

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/msg"
	"github.com/sirupsen/logrus"
)

type Phase int

const (
	PhaseAwaitingCardEffect Phase = iota
	PhaseAwaitingPlayerChoice
	PhaseTurnResolved
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingCardEffect:
		return "awaiting card effect"
	case PhaseAwaitingPlayerChoice:
		return "awaiting player choice"
	case PhaseTurnResolved:
		return "turn resolved"
	case PhaseGameOver:
		return "game over"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Game owns the whole table: hands, turn order, draw pile and discards.
type Game struct {
	id          uuid.UUID
	seats       *seats
	deck        *Deck
	pile        *Pile
	interaction Interaction
	events      *event.Bus
	rand        *rand.Rand
	log         logrus.FieldLogger
	phase       Phase
	winner      int
}

type Option func(*Game)

func WithRand(random *rand.Rand) Option {
	return func(g *Game) {
		g.rand = random
	}
}

func WithLogger(logger logrus.FieldLogger) Option {
	return func(g *Game) {
		g.log = logger
	}
}

func WithEvents(bus *event.Bus) Option {
	return func(g *Game) {
		g.events = bus
	}
}

// New seats the players, deals the starting hands and turns over the first
// card. A wild first card gets its colour from the current player.
func New(players int, interaction Interaction, opts ...Option) (*Game, error) {
	if players < consts.MinPlayers || players > consts.MaxPlayers {
		return nil, fmt.Errorf("new game with %d players, want %d-%d: %w",
			players, consts.MinPlayers, consts.MaxPlayers, consts.ErrorsPlayerCountInvalid)
	}
	if interaction == nil {
		return nil, fmt.Errorf("new game: %w", consts.ErrorsInteractionMissing)
	}

	g := &Game{
		id:          uuid.New(),
		seats:       newSeats(players),
		pile:        NewPile(),
		interaction: interaction,
		winner:      -1,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rand == nil {
		g.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if g.events == nil {
		g.events = event.NewBus()
	}
	if g.log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		g.log = discard
	}
	g.log = g.log.WithField("game", g.id.String())

	g.deck = NewDeck(g.rand)
	g.deck.Shuffle()
	g.dealStartingCards()
	g.playFirstCard()

	g.log.WithFields(logrus.Fields{
		"players":   players,
		"drawPile":  g.deck.Size(),
		"firstCard": g.ActiveCard().Label(),
	}).Debug("game started")
	return g, nil
}

func (g *Game) dealStartingCards() {
	for round := 0; round < consts.StartingHandSize; round++ {
		g.seats.ForEach(func(_ int, hand *Hand) {
			hand.Add(g.deck.Draw())
		})
	}
}

func (g *Game) playFirstCard() {
	firstCard := g.deck.Draw()
	g.events.FirstCardPlayed.Emit(event.FirstCardPlayedPayload{
		Card: firstCard,
	})
	g.notify(msg.Message.FirstCardPlayed(firstCard))

	activeCard := firstCard
	if firstCard.IsWild() {
		activeCard = g.resolveWild(g.seats.Current(), firstCard)
	}
	g.pile.Add(firstCard, activeCard)
	g.phase = PhaseAwaitingCardEffect
}

// resolveWild asks the player for a colour until a concrete one comes back.
func (g *Game) resolveWild(player int, wildCard card.Card) card.Card {
	for {
		chosen := g.interaction.ChooseColor(g.stateAgainst(wildCard))
		if !isConcrete(chosen) {
			g.log.WithField("color", chosen.Name()).Warn("rejected wild colour")
			g.notify(msg.Message.ColorNotAllowed(chosen))
			continue
		}
		g.events.ColorPicked.Emit(event.ColorPickedPayload{
			Player: player,
			Color:  chosen,
		})
		g.notify(msg.Message.PlayerPickedColor(player, chosen))
		return wildCard.Resolve(chosen)
	}
}

func isConcrete(c color.Color) bool {
	for _, concrete := range color.Concrete {
		if c == concrete {
			return true
		}
	}
	return false
}

func (g *Game) notify(message string) {
	g.interaction.Notify(message)
}

func (g *Game) ID() uuid.UUID {
	return g.id
}

func (g *Game) Players() int {
	return g.seats.Count()
}

// Hand returns a copy of the player's cards in the order they were received.
func (g *Game) Hand(player int) []card.Card {
	return g.seats.Hand(player).Cards()
}

func (g *Game) ActiveCard() card.Card {
	top, ok := g.pile.Top()
	if !ok {
		panic("game has no active card")
	}
	return top.Active
}

func (g *Game) CurrentPlayer() int {
	return g.seats.Current()
}

func (g *Game) Direction() Direction {
	return g.seats.cycler.Direction()
}

func (g *Game) DrawPileSize() int {
	return g.deck.Size()
}

func (g *Game) Discards() []Discard {
	return g.pile.Discards()
}

func (g *Game) Phase() Phase {
	return g.phase
}

// Winner reports the winning player once the game is over.
func (g *Game) Winner() (int, bool) {
	return g.winner, g.phase == PhaseGameOver
}

// State is the current player's view of the table.
func (g *Game) State() State {
	return g.stateAgainst(g.ActiveCard())
}

func (g *Game) stateAgainst(activeCard card.Card) State {
	hand := g.seats.CurrentHand()
	return State{
		Player:        g.seats.Current(),
		ActiveCard:    activeCard,
		PlayableCards: hand.PlayableCards(activeCard),
		Hand:          hand.Sorted(),
		HandCounts:    g.seats.HandCounts(),
		Direction:     g.Direction(),
		DrawPileSize:  g.deck.Size(),
	}
}

// CheckWin returns the lowest-numbered player with an empty hand.
func (g *Game) CheckWin() (int, bool) {
	for player := 0; player < g.seats.Count(); player++ {
		if g.seats.Hand(player).Empty() {
			return player, true
		}
	}
	return -1, false
}

// Replenish rebuilds the draw pile from a fresh deck without the cards that
// are still in play: every card in a hand and the card on top of the discards.
// It reports false, and announces nothing, when every card is in play.
func (g *Game) Replenish() bool {
	fresh := NewDeck(g.rand)
	g.seats.ForEach(func(_ int, hand *Hand) {
		for _, heldCard := range hand.Cards() {
			fresh.RemoveFirstOccurrence(heldCard)
		}
	})
	if top, ok := g.pile.Top(); ok {
		fresh.RemoveFirstOccurrence(top.Printed)
	}
	fresh.Shuffle()
	g.deck = fresh
	if fresh.Empty() {
		g.log.Debug("nothing left to replenish the draw pile with")
		return false
	}

	g.log.WithField("size", fresh.Size()).Debug("draw pile replenished")
	g.events.DeckReplenished.Emit(event.DeckReplenishedPayload{
		Size: fresh.Size(),
	})
	g.notify(msg.Message.DeckReplenished(fresh.Size()))
	return true
}

// drawCard takes the top of the draw pile, rebuilding it first when empty.
// It fails only when every card of the deck is already in play.
func (g *Game) drawCard() (card.Card, bool) {
	if g.deck.Empty() && !g.Replenish() {
		return card.Card{}, false
	}
	return g.deck.Draw(), true
}

func (g *Game) drawCards(player int, amount int) []card.Card {
	drawnCards := make([]card.Card, 0, amount)
	for len(drawnCards) < amount {
		drawnCard, ok := g.drawCard()
		if !ok {
			g.notify(msg.Message.NothingLeftToDraw(player))
			break
		}
		drawnCards = append(drawnCards, drawnCard)
	}
	if len(drawnCards) == 0 {
		return drawnCards
	}
	g.seats.Hand(player).Add(drawnCards...)
	g.events.CardsDrawn.Emit(event.CardsDrawnPayload{
		Player: player,
		Cards:  drawnCards,
	})
	g.notify(msg.Message.PlayerDrewCards(player, drawnCards))
	return drawnCards
}

// PlayTurn resolves the active card's effect, lets the current player act and
// checks for a winner.
func (g *Game) PlayTurn() (int, bool) {
	g.ResolveIncomingEffect()
	g.TakeTurn()
	winner, over := g.CheckWin()
	if !over {
		return -1, false
	}
	g.phase = PhaseGameOver
	g.winner = winner
	g.log.WithField("player", winner+1).Debug("game over")
	g.events.PlayerWon.Emit(event.PlayerWonPayload{
		Player: winner,
	})
	g.notify(msg.Message.WinnerFound(winner))
	return winner, true
}

// Run plays turns until someone empties their hand and returns that player.
func (g *Game) Run() int {
	if winner, over := g.Winner(); over {
		return winner
	}
	for {
		if winner, over := g.PlayTurn(); over {
			return winner
		}
	}
}
