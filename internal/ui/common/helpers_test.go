package common

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/palemoky/pontoon/internal/game/card"
)

func TestTruncateName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{"short name within limit", "Alice", 10, "Alice"},
		{"exact length", "HelloWorld", 10, "HelloWorld"},
		{"long name truncated", "VeryLongPlayerName", 10, "VeryLongP…"},
		{"accented name truncated", "Zoë-Élodie", 4, "Zoë…"},
		{"empty name", "", 10, ""},
		{"single char limit", "Hello", 1, "…"},
		{"zero limit", "Hello", 0, ""},
		{"surrounding spaces trimmed", "  Bo  ", 10, "Bo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := TruncateName(tt.input, tt.maxLen)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestRenderCards(t *testing.T) {
	t.Parallel()

	cards := []card.Card{card.New(card.Ace, card.Hearts), card.New(card.King, card.Spades)}

	all := RenderCards(cards, -1)
	assert.Contains(t, all, "A♥")
	assert.Contains(t, all, "K♠")

	hidden := RenderCards(cards, 1)
	assert.Contains(t, hidden, "A♥")
	assert.NotContains(t, hidden, "K♠")
	assert.Contains(t, hidden, HiddenCard)

	assert.True(t, strings.Contains(RenderCards(nil, -1), "no cards"))
}
