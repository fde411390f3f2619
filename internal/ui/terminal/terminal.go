// Package terminal is the line-mode front end built on pterm.
package terminal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/palemoky/pontoon/internal/game/card"
	"github.com/palemoky/pontoon/internal/game/round"
	"github.com/palemoky/pontoon/internal/game/rule"
	"github.com/palemoky/pontoon/internal/game/session"
	"github.com/palemoky/pontoon/internal/logger"
	"github.com/palemoky/pontoon/internal/sound"
	"github.com/palemoky/pontoon/internal/storage"
	"github.com/palemoky/pontoon/internal/ui/common"
)

const (
	optionTwist = "Twist (take a card)"
	optionStick = "Stick (stay where you are)"

	// maxPromptErrors is how many failed prompts are tolerated before a safe default is used.
	maxPromptErrors = 3
)

// SoundPlayer plays named cues.
type SoundPlayer interface {
	Play(name string)
}

// TerminalUI implements round.Display and round.Input on top of pterm.
type TerminalUI struct {
	ctx         context.Context
	prompt      Prompter
	sound       SoundPlayer
	bankerDelay time.Duration
}

var (
	_ round.Display = (*TerminalUI)(nil)
	_ round.Input   = (*TerminalUI)(nil)
)

// NewTerminalUI 创建终端界面. p and sp may be nil. Once ctx is cancelled the
// banker is no longer paced and prompts are skipped: the player sticks and
// declines another round.
func NewTerminalUI(ctx context.Context, p Prompter, sp SoundPlayer, bankerDelay time.Duration) *TerminalUI {
	if ctx == nil {
		ctx = context.Background()
	}
	if p == nil {
		p = PtermPrompter{}
	}
	return &TerminalUI{ctx: ctx, prompt: p, sound: sp, bankerDelay: bankerDelay}
}

func (t *TerminalUI) play(cue string) {
	if t.sound != nil {
		t.sound.Play(cue)
	}
}

// renderCards 渲染一手牌; cards from hideFrom on are shown face down.
func renderCards(cards []card.Card, hideFrom int) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		switch {
		case hideFrom >= 0 && i >= hideFrom:
			parts[i] = pterm.Gray("[" + common.HiddenCard + "]")
		case c.IsRed():
			parts[i] = pterm.Red("[" + c.String() + "]")
		default:
			parts[i] = "[" + c.String() + "]"
		}
	}
	return strings.Join(parts, " ")
}

func describeHand(h *card.Hand) string {
	desc := rule.Describe(h)
	if h.IsSoft() && !h.IsPontoon() && !h.IsBust() {
		desc += " (soft)"
	}
	return desc
}

// ShowWelcome prints the title banner.
func (t *TerminalUI) ShowWelcome() {
	logo, err := pterm.DefaultBigText.WithLetters(putils.LettersFromString("Pontoon")).Srender()
	if err != nil {
		logo = "PONTOON"
	}
	pterm.DefaultCenter.Println(logo)
	pterm.DefaultCenter.Println("Beat the banker without going over 21.")
	pterm.Println()
}

// ShowRules prints the rules box.
func (t *TerminalUI) ShowRules() {
	pterm.DefaultBox.WithTitle("Rules").WithTitleTopCenter().Println(common.GameRules())
	pterm.Println()
}

// AskName prompts for the player's name, keeping def when left blank.
func (t *TerminalUI) AskName(def string) string {
	name, err := t.prompt.Text("Your name", def)
	if err != nil {
		logger.LogError("name prompt: %v", err)
		return def
	}
	if name = strings.TrimSpace(name); name == "" {
		return def
	}
	return common.TruncateName(name, 16)
}

// --- round.Display ---

func (t *TerminalUI) ShowMessage(msg string) {
	t.play(sound.CueShuffle)
	pterm.Info.Println(msg)
}

func (t *TerminalUI) ShowPlayerHand(h *card.Hand) {
	t.play(sound.CueDeal)
	pterm.DefaultSection.Println("Your hand")
	pterm.Printfln("%s   %s", renderCards(h.Cards(), -1), pterm.Bold.Sprint(describeHand(h)))
}

func (t *TerminalUI) ShowBankerUpCard(c card.Card) {
	// the hole card is never passed in, only its face-down placeholder
	pterm.Printfln("%s Banker shows %s", common.BankerIcon, renderCards([]card.Card{c, {}}, 1))
}

func (t *TerminalUI) ShowBankerHand(h *card.Hand) {
	if t.bankerDelay > 0 && h.Count() > 2 {
		timer := time.NewTimer(t.bankerDelay)
		select {
		case <-t.ctx.Done():
			timer.Stop()
		case <-timer.C:
		}
	}
	pterm.Printfln("%s Banker: %s   %s", common.BankerIcon, renderCards(h.Cards(), -1), describeHand(h))
}

func (t *TerminalUI) ShowFinalHands(player, banker *card.Hand) {
	body := fmt.Sprintf("%s You:    %s   %s\n%s Banker: %s   %s",
		common.PlayerIcon, renderCards(player.Cards(), -1), describeHand(player),
		common.BankerIcon, renderCards(banker.Cards(), -1), describeHand(banker))
	pterm.DefaultBox.WithTitle("Final hands").WithTitleTopCenter().Println(body)
}

func (t *TerminalUI) ShowOutcome(r round.Result) {
	t.play(sound.ForResult(r))
	if r.Outcome == rule.PlayerWins {
		pterm.Success.Println(common.OutcomeText(r))
		return
	}
	pterm.Warning.Println(common.OutcomeText(r))
}

// --- round.Input ---

// PlayerAction asks twist or stick. Repeated prompt failures fall back to Stick.
func (t *TerminalUI) PlayerAction() round.Action {
	if t.ctx.Err() != nil {
		return round.Stick
	}
	for range maxPromptErrors {
		choice, err := t.prompt.Select("Your move", []string{optionTwist, optionStick})
		if err != nil {
			logger.LogError("action prompt: %v", err)
			continue
		}
		if a, ok := parseAction(choice); ok {
			return a
		}
		pterm.Warning.Printfln("Please choose twist or stick, not %q", choice)
	}
	logger.LogError("action prompt failed %d times, sticking", maxPromptErrors)
	return round.Stick
}

// YesNo asks a yes/no question. Repeated prompt failures answer no.
func (t *TerminalUI) YesNo(prompt string) bool {
	if t.ctx.Err() != nil {
		return false
	}
	for range maxPromptErrors {
		ok, err := t.prompt.Confirm(prompt, true)
		if err == nil {
			return ok
		}
		logger.LogError("confirm prompt: %v", err)
	}
	return false
}

// parseAction accepts the select labels as well as typed shorthand.
func parseAction(s string) (round.Action, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case strings.ToLower(optionTwist), "t", "twist":
		return round.Twist, true
	case strings.ToLower(optionStick), "s", "stick":
		return round.Stick, true
	default:
		return round.Stick, false
	}
}

// ShowSummary prints the session statistics and, when available, the leaderboard.
func (t *TerminalUI) ShowSummary(name string, s session.Statistics, board []*storage.LeaderboardEntry) {
	pterm.DefaultHeader.WithFullWidth().Printfln("Session summary for %s", name)

	data := statsTable(s)
	if err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Render(); err != nil {
		logger.LogError("render stats table: %v", err)
	}

	if len(board) == 0 {
		return
	}
	pterm.DefaultSection.Println("🏆 Leaderboard")
	if err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(leaderboardTable(board)).Render(); err != nil {
		logger.LogError("render leaderboard: %v", err)
	}
}

func statsTable(s session.Statistics) pterm.TableData {
	return pterm.TableData{
		{"Rounds", "You", "Banker", "Win rate", "Pontoons", "Five Card Tricks"},
		{
			fmt.Sprint(s.RoundsPlayed),
			fmt.Sprint(s.PlayerWins),
			fmt.Sprint(s.BankerWins),
			fmt.Sprintf("%.1f%%", s.WinRate()),
			fmt.Sprint(s.PlayerPontoons),
			fmt.Sprint(s.PlayerFiveCardTricks),
		},
	}
}

func leaderboardTable(entries []*storage.LeaderboardEntry) pterm.TableData {
	data := pterm.TableData{{"#", "Player", "Wins", "Rounds", "Win rate"}}
	for _, e := range entries {
		data = append(data, []string{
			fmt.Sprint(e.Rank),
			common.TruncateName(e.PlayerName, 10),
			fmt.Sprint(e.Wins),
			fmt.Sprint(e.Rounds),
			fmt.Sprintf("%.1f%%", e.WinRate),
		})
	}
	return data
}
