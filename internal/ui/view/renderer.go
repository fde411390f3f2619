// Package view provides UI rendering functions.
package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/pontoon/internal/ui/common"
	"github.com/palemoky/pontoon/internal/ui/model"
)

// CreateViewRenderer creates a view renderer function that can be injected into TableModel.
func CreateViewRenderer() func(model.Model, model.GamePhase) string {
	return func(m model.Model, phase model.GamePhase) string {
		if m.ShowingRules() {
			return RulesView(m.Width(), m.Height())
		}
		switch phase {
		case model.PhaseTitle:
			return TitleView(m)
		case model.PhasePlaying, model.PhaseRoundOver:
			return TableView(m)
		case model.PhaseSummary:
			return SummaryView(m)
		case model.PhaseError:
			return ErrorView(m)
		default:
			return "Unknown phase"
		}
	}
}

const banner = `
 ____             _
|  _ \ ___  _ __ | |_ ___   ___  _ __
| |_) / _ \| '_ \| __/ _ \ / _ \| '_ \
|  __/ (_) | | | | || (_) | (_) | | | |
|_|   \___/|_| |_|\__\___/ \___/|_| |_|`

// TitleView renders the welcome screen with the name prompt.
func TitleView(m model.Model) string {
	width := m.Width()
	var sb strings.Builder

	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, common.TitleStyle(banner)))
	sb.WriteString("\n\n")
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, "Beat the banker without going over 21."))
	sb.WriteString("\n\n")

	prompt := common.BoxStyle.Render("Name: " + m.NameInput().View())
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, prompt))
	sb.WriteString("\n\n")

	hint := common.SubtleStyle.Render("Enter to deal, Esc to leave")
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, hint))

	return sb.String()
}

// RulesView renders the rules overlay.
func RulesView(width, height int) string {
	var sb strings.Builder

	title := common.TitleStyle("📖 Rules")
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, title))
	sb.WriteString("\n\n")

	rules := common.BoxStyle.Render(common.GameRules())
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, rules))
	sb.WriteString("\n\n")

	hint := "Press ? or Esc to return"
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, hint))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, sb.String())
}

// ErrorView renders the screen shown after a round aborted.
func ErrorView(m model.Model) string {
	msg := "Something went wrong"
	if err := m.Err(); err != nil {
		msg = err.Error()
	}
	content := common.ErrorStyle.Render("⚠️  The round could not continue:\n\n"+msg) +
		"\n\nPress Enter to exit"

	return lipgloss.Place(m.Width(), m.Height(), lipgloss.Center, lipgloss.Center, common.BoxStyle.Render(content))
}
