package card

import (
	"fmt"
	"strconv"
)

// Suit 定义花色
type Suit int

// Rank 定义点数
type Rank int

// Card 定义一张牌
type Card struct {
	Suit Suit
	Rank Rank
}

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

// suitSymbols 花色符号映射表
var suitSymbols = map[Suit]string{
	Hearts:   "♥",
	Diamonds: "♦",
	Clubs:    "♣",
	Spades:   "♠",
}

var suitNames = map[Suit]string{
	Hearts:   "Hearts",
	Diamonds: "Diamonds",
	Clubs:    "Clubs",
	Spades:   "Spades",
}

func (s Suit) String() string {
	if symbol, ok := suitSymbols[s]; ok {
		return symbol
	}
	return "?"
}

// Name returns the suit's English name.
func (s Suit) Name() string {
	if name, ok := suitNames[s]; ok {
		return name
	}
	return "Unknown"
}

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// rankNames 牌面值字符串映射表
var rankNames = map[Rank]string{
	Ace:   "A",
	Ten:   "10",
	Jack:  "J",
	Queen: "Q",
	King:  "K",
}

var rankLongNames = map[Rank]string{
	Ace:   "Ace",
	Jack:  "Jack",
	Queen: "Queen",
	King:  "King",
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return strconv.Itoa(int(r))
}

// Name returns the rank as written out in full ("Ace", "7", "Queen").
func (r Rank) Name() string {
	if name, ok := rankLongNames[r]; ok {
		return name
	}
	return strconv.Itoa(int(r))
}

// Valid reports whether r is one of the thirteen ranks.
func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

// AllSuits returns the four suits in deck order.
func AllSuits() []Suit {
	return []Suit{Hearts, Diamonds, Clubs, Spades}
}

// AllRanks returns the thirteen ranks from Ace to King.
func AllRanks() []Rank {
	ranks := make([]Rank, 0, 13)
	for r := Ace; r <= King; r++ {
		ranks = append(ranks, r)
	}
	return ranks
}

// New 创建一张牌
func New(rank Rank, suit Suit) Card {
	return Card{Suit: suit, Rank: rank}
}

// BaseValue is the card's value before any Ace promotion:
// Ace counts 1, court cards 10, everything else its number.
func (c Card) BaseValue() int {
	switch {
	case c.Rank == Ace:
		return 1
	case c.Rank >= Ten:
		return 10
	default:
		return int(c.Rank)
	}
}

// IsAce reports whether the card is an Ace.
func (c Card) IsAce() bool {
	return c.Rank == Ace
}

// IsTenValued reports whether the card counts 10 (10, J, Q, K).
func (c Card) IsTenValued() bool {
	return c.BaseValue() == 10
}

// IsRed is used by the renderers to colour hearts and diamonds.
func (c Card) IsRed() bool {
	return c.Suit == Hearts || c.Suit == Diamonds
}

// String returns the short form, e.g. "A♥" or "10♠".
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Name returns the long form, e.g. "Ace of Hearts".
func (c Card) Name() string {
	return fmt.Sprintf("%s of %s", c.Rank.Name(), c.Suit.Name())
}
