package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/pontoon/internal/game/session"
	"github.com/palemoky/pontoon/internal/storage"
	"github.com/palemoky/pontoon/internal/ui/common"
	"github.com/palemoky/pontoon/internal/ui/model"
)

// SummaryView renders the end-of-session statistics and leaderboard.
func SummaryView(m model.Model) string {
	width := m.Width()
	var sb strings.Builder

	title := common.TitleStyle(fmt.Sprintf("📊 Session summary for %s", common.TruncateName(m.PlayerName(), 16)))
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, title))
	sb.WriteString("\n\n")

	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderStatsTable(m.Stats())))
	sb.WriteString("\n\n")

	if entries := m.Leaderboard(); len(entries) > 0 {
		sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderLeaderboardTable(entries)))
		sb.WriteString("\n\n")
	}

	hint := "Thanks for playing! Press Q or Enter to exit"
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, hint))

	return lipgloss.Place(width, m.Height(), lipgloss.Center, lipgloss.Center, sb.String())
}

func renderStatsTable(s session.Statistics) string {
	if s.RoundsPlayed == 0 {
		return common.BoxStyle.Render("No rounds played")
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Rounds played: %d\n", s.RoundsPlayed)
	sb.WriteString(strings.Repeat("─", 30) + "\n")
	fmt.Fprintf(&sb, "Your wins:     %d\n", s.PlayerWins)
	fmt.Fprintf(&sb, "Banker wins:   %d\n", s.BankerWins)
	fmt.Fprintf(&sb, "Win rate:      %.1f%%\n", s.WinRate())
	fmt.Fprintf(&sb, "Pontoons:      %d\n", s.PlayerPontoons)
	fmt.Fprintf(&sb, "Five Card Tricks: %d", s.PlayerFiveCardTricks)

	return common.BoxStyle.Render(sb.String())
}

func renderLeaderboardTable(entries []*storage.LeaderboardEntry) string {
	var sb strings.Builder

	title := fmt.Sprintf("🏆 Top %d sessions", len(entries))
	sb.WriteString(lipgloss.PlaceHorizontal(44, lipgloss.Center, title) + "\n")
	sb.WriteString(strings.Repeat("─", 44) + "\n")

	sb.WriteString("Rank\tPlayer\t\tWins\tRounds\tRate\n")
	sb.WriteString(strings.Repeat("─", 44) + "\n")

	for _, e := range entries {
		fmt.Fprintf(&sb, "%2d.\t%s\t\t%d\t%d\t%.1f%%\n",
			e.Rank, common.TruncateName(e.PlayerName, 10), e.Wins, e.Rounds, e.WinRate)
	}

	return common.BoxStyle.Render(strings.TrimRight(sb.String(), "\n"))
}
