// Package round runs a single round of Pontoon: the deal, the player's turn,
// the banker's turn and the resolution.
package round

import (
	"fmt"

	"github.com/palemoky/pontoon/internal/apperrors"
	"github.com/palemoky/pontoon/internal/game/card"
	"github.com/palemoky/pontoon/internal/game/rule"
)

// Phase 回合阶段
type Phase int

const (
	PhaseDealing Phase = iota
	PhasePlayerTurn
	PhaseBust // player bust; the banker never plays
	PhaseBankerTurn
	PhaseResolved
	PhaseAborted // an invariant was violated
)

var phaseNames = map[Phase]string{
	PhaseDealing:    "dealing",
	PhasePlayerTurn: "player turn",
	PhaseBust:       "bust",
	PhaseBankerTurn: "banker turn",
	PhaseResolved:   "resolved",
	PhaseAborted:    "aborted",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

// Dealer is the deck as the round sees it. *card.Deck satisfies it.
type Dealer interface {
	Deal() (card.Card, bool)
	NeedsReshuffle() bool
	Reset()
	Remaining() int
}

// Result 回合结果
type Result struct {
	Outcome      rule.Outcome
	Player       rule.ParsedHand
	Banker       rule.ParsedHand
	BankerPlayed bool
}

// PlayerPontoon reports whether the player finished with a Pontoon.
func (r Result) PlayerPontoon() bool {
	return r.Player.Type == rule.Pontoon
}

// PlayerFiveCardTrick reports whether the player finished with a Five Card Trick.
func (r Result) PlayerFiveCardTrick() bool {
	return r.Player.Type == rule.FiveCardTrick
}

// Round 一局游戏. Not safe for concurrent use; a round belongs to one caller.
type Round struct {
	deck   Dealer
	phase  Phase
	player *card.Hand
	banker *card.Hand

	outcome      rule.Outcome
	bankerPlayed bool
	reshuffled   bool
	err          error
}

// New 创建一局
func New(deck Dealer) *Round {
	return &Round{
		deck:   deck,
		phase:  PhaseDealing,
		player: card.NewHand(),
		banker: card.NewHand(),
	}
}

func (r *Round) Phase() Phase        { return r.phase }
func (r *Round) Player() *card.Hand  { return r.player }
func (r *Round) Banker() *card.Hand  { return r.banker }
func (r *Round) Reshuffled() bool    { return r.reshuffled }
func (r *Round) CardsRemaining() int { return r.deck.Remaining() }

// BankerUpCard is the banker's first card, the only one shown during the player's turn.
func (r *Round) BankerUpCard() (card.Card, bool) {
	cards := r.banker.Cards()
	if len(cards) == 0 {
		return card.Card{}, false
	}
	return cards[0], true
}

// Done reports whether the round has an outcome (or was aborted).
func (r *Round) Done() bool {
	return r.phase == PhaseBust || r.phase == PhaseResolved || r.phase == PhaseAborted
}

// Outcome returns the result once the round is over.
func (r *Round) Outcome() (rule.Outcome, bool) {
	if r.phase != PhaseBust && r.phase != PhaseResolved {
		return rule.BankerWins, false
	}
	return r.outcome, true
}

// Result summarises the round. Only meaningful once Done.
func (r *Round) Result() Result {
	return Result{
		Outcome:      r.outcome,
		Player:       rule.Parse(r.player),
		Banker:       rule.Parse(r.banker),
		BankerPlayed: r.bankerPlayed,
	}
}

func (r *Round) expect(p Phase) error {
	if r.err != nil {
		return r.err
	}
	if r.phase != p {
		return fmt.Errorf("%w: in %s, want %s", apperrors.ErrWrongPhase, r.phase, p)
	}
	return nil
}

func (r *Round) abort(err error) error {
	r.phase = PhaseAborted
	r.err = err
	return err
}

// draw deals one card into h, enforcing the five-card ceiling.
func (r *Round) draw(h *card.Hand, who string) (card.Card, error) {
	if h.IsFull() {
		return card.Card{}, r.abort(fmt.Errorf("%s: %w", who, apperrors.ErrHandFull))
	}
	c, ok := r.deck.Deal()
	if !ok {
		return card.Card{}, r.abort(fmt.Errorf("%s: %w", who, apperrors.ErrDeckExhausted))
	}
	h.Add(c)
	return c, nil
}

// Deal 发牌: two cards each, player first. A deck below the reshuffle
// threshold is rebuilt before the first card leaves it.
func (r *Round) Deal() error {
	if err := r.expect(PhaseDealing); err != nil {
		return err
	}
	if r.deck.NeedsReshuffle() {
		r.deck.Reset()
		r.reshuffled = true
	}
	for range 2 {
		if _, err := r.draw(r.player, "player"); err != nil {
			return err
		}
		if _, err := r.draw(r.banker, "banker"); err != nil {
			return err
		}
	}
	r.phase = PhasePlayerTurn
	return nil
}

// Twist 要牌. A bust ends the round at once; a fifth card without bust
// hands over to the banker.
func (r *Round) Twist() (card.Card, error) {
	if err := r.expect(PhasePlayerTurn); err != nil {
		return card.Card{}, err
	}
	c, err := r.draw(r.player, "player")
	if err != nil {
		return card.Card{}, err
	}
	switch {
	case r.player.IsBust():
		r.outcome = rule.BankerWins
		r.phase = PhaseBust
	case r.player.IsFull():
		r.phase = PhaseBankerTurn
	}
	return c, nil
}

// Stick 停牌
func (r *Round) Stick() error {
	if err := r.expect(PhasePlayerTurn); err != nil {
		return err
	}
	r.phase = PhaseBankerTurn
	return nil
}

// BankerStep makes one banker decision. It reports whether a card was drawn;
// the round resolves as soon as the banker sticks, busts or holds five cards.
func (r *Round) BankerStep() (bool, error) {
	if err := r.expect(PhaseBankerTurn); err != nil {
		return false, err
	}
	r.bankerPlayed = true
	if !rule.ShouldTwist(r.banker) {
		r.resolve()
		return false, nil
	}
	if _, err := r.draw(r.banker, "banker"); err != nil {
		return false, err
	}
	if !rule.ShouldTwist(r.banker) {
		r.resolve()
	}
	return true, nil
}

// PlayBanker runs the banker's turn to completion.
func (r *Round) PlayBanker() error {
	for r.phase == PhaseBankerTurn {
		if _, err := r.BankerStep(); err != nil {
			return err
		}
	}
	return r.err
}

func (r *Round) resolve() {
	r.outcome = rule.Compare(r.player, r.banker)
	r.phase = PhaseResolved
}
