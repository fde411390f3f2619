// Package common provides shared styles and utilities for the UI.
package common

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/pontoon/internal/game/card"
)

// Icon constants
const (
	BankerIcon = "🎩"
	PlayerIcon = "🧑"
	HiddenCard = "??"
)

// Lipgloss Styles - shared by the table and summary views
var (
	DocStyle     = lipgloss.NewStyle().Margin(1, 2)
	RedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#CD0000")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	BlackStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	GrayStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	TitleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true).Render
	BoxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	CardStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("250")).Padding(0, 1)
	PromptStyle  = lipgloss.NewStyle().MarginTop(1)
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	WinStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	LoseStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	NoticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	SubtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	HandBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(0, 2)
)

// RenderCard draws one card face.
func RenderCard(c card.Card) string {
	face := BlackStyle
	if c.IsRed() {
		face = RedStyle
	}
	return CardStyle.Render(face.Render(" " + c.String() + " "))
}

// RenderHiddenCard draws a face-down card.
func RenderHiddenCard() string {
	return CardStyle.Render(GrayStyle.Render(" " + HiddenCard + " "))
}

// RenderCards lays cards out side by side, hiding every card from index hideFrom on.
// A negative hideFrom shows them all.
func RenderCards(cards []card.Card, hideFrom int) string {
	if len(cards) == 0 {
		return SubtleStyle.Render("(no cards)")
	}
	faces := make([]string, len(cards))
	for i, c := range cards {
		if hideFrom >= 0 && i >= hideFrom {
			faces[i] = RenderHiddenCard()
			continue
		}
		faces[i] = RenderCard(c)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, faces...)
}
