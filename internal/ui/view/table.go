package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/pontoon/internal/game/card"
	"github.com/palemoky/pontoon/internal/game/round"
	"github.com/palemoky/pontoon/internal/game/rule"
	"github.com/palemoky/pontoon/internal/ui/common"
	"github.com/palemoky/pontoon/internal/ui/model"
)

// TableView renders the table during and right after a round.
func TableView(m model.Model) string {
	width := m.Width()
	r := m.Round()
	if r == nil {
		return "Dealing..."
	}

	var sb strings.Builder

	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderHeader(m, r)))
	sb.WriteString("\n\n")

	// The banker's hole card stays face down until the player has finished.
	hidden := r.Phase() == round.PhasePlayerTurn
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderBankerHand(r.Banker(), hidden)))
	sb.WriteString("\n")
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderPlayerHand(m.PlayerName(), r.Player())))
	sb.WriteString("\n")

	if m.Phase() == model.PhaseRoundOver {
		if res, ok := m.LastResult(); ok {
			sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderOutcome(res)))
			sb.WriteString("\n")
		}
	} else {
		sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderTurnPrompt(r)))
		sb.WriteString("\n")
	}

	if notice := m.Notice(); notice != "" {
		sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, common.NoticeStyle.Render(notice)))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, m.HelpView()))

	return lipgloss.Place(width, m.Height(), lipgloss.Center, lipgloss.Center, sb.String())
}

func renderHeader(m model.Model, r *round.Round) string {
	stats := m.Stats()
	title := common.TitleStyle("🃏 Pontoon")
	line := common.SubtleStyle.Render(fmt.Sprintf("Round %d │ Wins %d │ Win rate %.0f%% │ Cards left %d",
		stats.RoundsPlayed+1, stats.PlayerWins, stats.WinRate(), r.CardsRemaining()))
	if m.Phase() == model.PhaseRoundOver {
		line = common.SubtleStyle.Render(fmt.Sprintf("Rounds %d │ Wins %d │ Win rate %.0f%% │ Cards left %d",
			stats.RoundsPlayed, stats.PlayerWins, stats.WinRate(), r.CardsRemaining()))
	}
	return lipgloss.JoinVertical(lipgloss.Center, title, line)
}

func renderBankerHand(h *card.Hand, hidden bool) string {
	title := fmt.Sprintf("%s Banker", common.BankerIcon)
	hideFrom := -1
	if hidden {
		hideFrom = 1
	} else {
		title += " · " + rule.Describe(h)
	}
	content := lipgloss.JoinVertical(lipgloss.Center, title, common.RenderCards(h.Cards(), hideFrom))
	return common.HandBoxStyle.Render(content)
}

func renderPlayerHand(name string, h *card.Hand) string {
	title := fmt.Sprintf("%s %s · %s", common.PlayerIcon, name, rule.Describe(h))
	if h.IsSoft() && !h.IsPontoon() {
		title += " (soft)"
	}
	content := lipgloss.JoinVertical(lipgloss.Center, title, common.RenderCards(h.Cards(), -1))
	return common.HandBoxStyle.Render(content)
}

func renderTurnPrompt(r *round.Round) string {
	switch r.Phase() {
	case round.PhasePlayerTurn:
		return common.PromptStyle.Render("Your move: twist or stick?")
	case round.PhaseBankerTurn:
		return common.PromptStyle.Render("Banker is playing...")
	default:
		return ""
	}
}

func renderOutcome(res round.Result) string {
	style := common.LoseStyle
	if res.Outcome == rule.PlayerWins {
		style = common.WinStyle
	}
	detail := fmt.Sprintf("You: %s   Banker: %s", res.Player, res.Banker)
	if !res.BankerPlayed {
		detail = fmt.Sprintf("You: %s", res.Player)
	}
	return common.PromptStyle.Render(lipgloss.JoinVertical(lipgloss.Center, style.Render(common.OutcomeText(res)), detail))
}
