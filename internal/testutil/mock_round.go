//go:build !production

package testutil

import (
	"github.com/stretchr/testify/mock"

	"github.com/palemoky/pontoon/internal/game/card"
	"github.com/palemoky/pontoon/internal/game/round"
)

// MockDisplay 实现 round.Display 的 mock
type MockDisplay struct {
	mock.Mock
}

func (m *MockDisplay) ShowMessage(msg string)       { m.Called(msg) }
func (m *MockDisplay) ShowPlayerHand(h *card.Hand)  { m.Called(h) }
func (m *MockDisplay) ShowBankerUpCard(c card.Card) { m.Called(c) }
func (m *MockDisplay) ShowBankerHand(h *card.Hand)  { m.Called(h) }
func (m *MockDisplay) ShowOutcome(r round.Result)   { m.Called(r) }

func (m *MockDisplay) ShowFinalHands(player, banker *card.Hand) {
	m.Called(player, banker)
}

// AcceptAll makes every display call succeed without asserting on it.
func (m *MockDisplay) AcceptAll() *MockDisplay {
	for _, method := range []string{"ShowMessage", "ShowPlayerHand", "ShowBankerUpCard", "ShowBankerHand", "ShowOutcome"} {
		m.On(method, mock.Anything).Maybe()
	}
	m.On("ShowFinalHands", mock.Anything, mock.Anything).Maybe()
	return m
}

// MockInput 实现 round.Input 的 mock
type MockInput struct {
	mock.Mock
}

func (m *MockInput) PlayerAction() round.Action {
	args := m.Called()
	return args.Get(0).(round.Action)
}

func (m *MockInput) YesNo(prompt string) bool {
	args := m.Called(prompt)
	return args.Bool(0)
}

// ScriptedInput 简单的输入脚本，不使用 testify（用于不需要断言的测试）
type ScriptedInput struct {
	Actions []round.Action
	Answers []bool
	Asked   int
}

// PlayerAction returns the next scripted action, sticking once the script runs out.
func (s *ScriptedInput) PlayerAction() round.Action {
	s.Asked++
	if len(s.Actions) == 0 {
		return round.Stick
	}
	a := s.Actions[0]
	s.Actions = s.Actions[1:]
	return a
}

// YesNo returns the next scripted answer, or false once the script runs out.
func (s *ScriptedInput) YesNo(string) bool {
	if len(s.Answers) == 0 {
		return false
	}
	a := s.Answers[0]
	s.Answers = s.Answers[1:]
	return a
}

// StackDeck deals its cards in slice order. It never reshuffles unless
// ForceReshuffle is set, so tests control every card that comes out.
type StackDeck struct {
	Cards          []card.Card
	ForceReshuffle bool
	Resets         int
	Refill         []card.Card
}

// NewStackDeck builds a deck that deals cards in the given order.
func NewStackDeck(cards ...card.Card) *StackDeck {
	return &StackDeck{Cards: cards}
}

func (d *StackDeck) Deal() (card.Card, bool) {
	if len(d.Cards) == 0 {
		return card.Card{}, false
	}
	c := d.Cards[0]
	d.Cards = d.Cards[1:]
	return c, true
}

func (d *StackDeck) NeedsReshuffle() bool { return d.ForceReshuffle }
func (d *StackDeck) Remaining() int       { return len(d.Cards) }

// Reset replaces the stack with Refill.
func (d *StackDeck) Reset() {
	d.Resets++
	d.ForceReshuffle = false
	d.Cards = append([]card.Card(nil), d.Refill...)
}
