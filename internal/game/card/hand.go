package card

import (
	"slices"
	"strings"
)

const (
	// Target 目标点数
	Target = 21
	// MaxCards is the most cards a hand may hold in play.
	MaxCards = 5

	acePromotion = 10
)

// Hand 手牌. Append-only during a round; the value is recomputed on every call.
type Hand struct {
	cards []Card
}

// NewHand 创建手牌
func NewHand(cards ...Card) *Hand {
	h := &Hand{}
	for _, c := range cards {
		h.Add(c)
	}
	return h
}

// Add 加一张牌. The hand does not enforce MaxCards; the round does.
func (h *Hand) Add(c Card) {
	h.cards = append(h.cards, c)
}

// Cards returns a copy of the cards in the order they were dealt.
func (h *Hand) Cards() []Card {
	return slices.Clone(h.cards)
}

// Count 手牌张数
func (h *Hand) Count() int {
	return len(h.cards)
}

// Clear 清空手牌
func (h *Hand) Clear() {
	h.cards = h.cards[:0]
}

// total returns the best value and whether an Ace was promoted to 11.
func (h *Hand) total() (int, bool) {
	sum, aces := 0, 0
	for _, c := range h.cards {
		sum += c.BaseValue()
		if c.IsAce() {
			aces++
		}
	}

	promoted := false
	for aces > 0 && sum+acePromotion <= Target {
		sum += acePromotion
		aces--
		promoted = true
	}
	return sum, promoted
}

// Value 计算点数: every Ace counts 1, then Aces are raised to 11 one at a
// time for as long as the total stays at or under 21.
func (h *Hand) Value() int {
	v, _ := h.total()
	return v
}

// IsSoft reports whether an Ace is currently being counted as 11.
func (h *Hand) IsSoft() bool {
	_, soft := h.total()
	return soft
}

// IsBust 爆牌
func (h *Hand) IsBust() bool {
	return h.Value() > Target
}

// IsPontoon reports a two-card 21 made of an Ace and a 10-valued card.
func (h *Hand) IsPontoon() bool {
	if len(h.cards) != 2 || h.Value() != Target {
		return false
	}
	a, b := h.cards[0], h.cards[1]
	return (a.IsAce() && b.IsTenValued()) || (b.IsAce() && a.IsTenValued())
}

// IsFiveCardTrick reports five cards that have not bust.
func (h *Hand) IsFiveCardTrick() bool {
	return len(h.cards) == MaxCards && !h.IsBust()
}

// IsFull reports whether the hand holds MaxCards or more.
func (h *Hand) IsFull() bool {
	return len(h.cards) >= MaxCards
}

func (h *Hand) String() string {
	parts := make([]string, len(h.cards))
	for i, c := range h.cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
