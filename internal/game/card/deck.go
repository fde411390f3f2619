package card

import (
	"math/rand/v2"
)

const (
	// DeckSize 一副牌的张数
	DeckSize = 52
	// ReshuffleThreshold is the remaining-card count below which the deck
	// must be rebuilt before the next round is dealt.
	ReshuffleThreshold = 15
)

// Deck 定义一副牌. Cards are dealt from the end of the slice.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck returns a shuffled 52-card deck seeded from the runtime's random source.
func NewDeck() *Deck {
	return newDeck(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

// NewSeededDeck returns a shuffled deck whose deal order is fully determined by seed.
func NewSeededDeck(seed uint64) *Deck {
	return newDeck(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

func newDeck(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: standardCards(),
		rng:   rng,
	}
	d.Shuffle()
	return d
}

func standardCards() []Card {
	cards := make([]Card, 0, DeckSize)
	for _, s := range AllSuits() {
		for _, r := range AllRanks() {
			cards = append(cards, Card{Suit: s, Rank: r})
		}
	}
	return cards
}

// Shuffle 洗牌 (Fisher-Yates over the cards still in the deck)
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Reset gathers all 52 cards back into the deck and shuffles them.
func (d *Deck) Reset() {
	d.cards = standardCards()
	d.Shuffle()
}

// Deal 发一张牌. ok is false when the deck is empty.
func (d *Deck) Deal() (c Card, ok bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	last := len(d.cards) - 1
	c = d.cards[last]
	d.cards = d.cards[:last]
	return c, true
}

// Remaining 剩余牌数
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// NeedsReshuffle reports whether fewer than ReshuffleThreshold cards remain.
func (d *Deck) NeedsReshuffle() bool {
	return len(d.cards) < ReshuffleThreshold
}
