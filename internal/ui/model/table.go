package model

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/pontoon/internal/game/round"
	"github.com/palemoky/pontoon/internal/game/session"
	"github.com/palemoky/pontoon/internal/logger"
	"github.com/palemoky/pontoon/internal/sound"
	"github.com/palemoky/pontoon/internal/storage"
	"github.com/palemoky/pontoon/internal/ui/common"
)

const (
	leaderboardSize = 5
	maxNameLen      = 16
)

// TableModel is the bubbletea model for one player's session at the table.
type TableModel struct {
	deck        round.Dealer
	session     *session.Session
	sound       SoundPlayer
	bankerDelay time.Duration

	phase       GamePhase
	round       *round.Round
	last        *round.Result
	notice      string
	err         error
	leaderboard []*storage.LeaderboardEntry
	showRules   bool

	nameInput textinput.Model
	keys      keyMap
	help      help.Model

	width  int
	height int

	// View renderer (injected to break circular import)
	viewRenderer func(Model, GamePhase) string
}

// NewTableModel creates the model. sp may be nil.
func NewTableModel(deck round.Dealer, s *session.Session, sp SoundPlayer, bankerDelay time.Duration) *TableModel {
	nameInput := textinput.New()
	nameInput.Placeholder = "Your name"
	nameInput.CharLimit = maxNameLen
	nameInput.Width = maxNameLen + 2
	nameInput.SetValue(s.PlayerName)
	nameInput.Focus()

	m := &TableModel{
		deck:        deck,
		session:     s,
		sound:       sp,
		bankerDelay: bankerDelay,
		phase:       PhaseTitle,
		nameInput:   nameInput,
		keys:        defaultKeyMap(),
		help:        help.New(),
	}
	m.keys.forPhase(m.phase, false)
	return m
}

// --- Model implementation ---

func (m *TableModel) Phase() GamePhase                         { return m.phase }
func (m *TableModel) Round() *round.Round                      { return m.round }
func (m *TableModel) Stats() session.Statistics                { return m.session.Stats }
func (m *TableModel) PlayerName() string                       { return m.session.PlayerName }
func (m *TableModel) Leaderboard() []*storage.LeaderboardEntry { return m.leaderboard }
func (m *TableModel) NameInput() *textinput.Model              { return &m.nameInput }
func (m *TableModel) HelpView() string                         { return m.help.View(m.keys) }
func (m *TableModel) Notice() string                           { return m.notice }
func (m *TableModel) ShowingRules() bool                       { return m.showRules }
func (m *TableModel) Width() int                               { return m.width }
func (m *TableModel) Height() int                              { return m.height }

// Err returns the invariant violation that ended the session, if any.
func (m *TableModel) Err() error { return m.err }

// LastResult returns the most recently finished round.
func (m *TableModel) LastResult() (round.Result, bool) {
	if m.last == nil {
		return round.Result{}, false
	}
	return *m.last, true
}

// SetViewRenderer sets the view rendering function.
func (m *TableModel) SetViewRenderer(fn func(Model, GamePhase) string) {
	m.viewRenderer = fn
}

func (m *TableModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles tea messages.
func (m *TableModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case BankerTickMsg:
		return m, m.bankerStep()

	case StatsSavedMsg:
		if msg.Err != nil {
			logger.LogError("%v", msg.Err)
		}
		return m, nil

	case LeaderboardMsg:
		if msg.Err != nil {
			logger.LogError("load leaderboard: %v", msg.Err)
		}
		m.leaderboard = msg.Entries
		return m, nil
	}

	if m.phase == PhaseTitle {
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *TableModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		return tea.Quit
	}

	switch m.phase {
	case PhaseTitle:
		if msg.Type == tea.KeyEnter {
			if name := strings.TrimSpace(m.nameInput.Value()); name != "" {
				m.session.PlayerName = common.TruncateName(name, maxNameLen)
			}
			m.nameInput.Blur()
			return m.startRound()
		}
		if msg.Type == tea.KeyEsc {
			return tea.Quit
		}
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return cmd

	case PhaseSummary, PhaseError:
		if key.Matches(msg, m.keys.Quit) || msg.Type == tea.KeyEnter || msg.Type == tea.KeyEsc {
			return tea.Quit
		}
		return nil
	}

	if m.showRules {
		if key.Matches(msg, m.keys.Rules) || msg.Type == tea.KeyEsc {
			m.showRules = false
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.enterSummary()
	case key.Matches(msg, m.keys.Rules):
		m.showRules = true
		return nil
	case key.Matches(msg, m.keys.Twist):
		return m.twist()
	case key.Matches(msg, m.keys.Stick):
		return m.stick()
	case key.Matches(msg, m.keys.Next):
		return m.startRound()
	}
	return nil
}

func (m *TableModel) startRound() tea.Cmd {
	m.round = round.New(m.deck)
	m.notice = ""
	if err := m.round.Deal(); err != nil {
		return m.fail(err)
	}
	if m.round.Reshuffled() {
		m.notice = "Deck reshuffled"
		m.play(sound.CueShuffle)
	} else {
		m.play(sound.CueDeal)
	}
	m.setPhase(PhasePlaying)
	return nil
}

func (m *TableModel) twist() tea.Cmd {
	c, err := m.round.Twist()
	if err != nil {
		return m.fail(err)
	}
	m.notice = fmt.Sprintf("You drew %s", c.Name())
	m.play(sound.CueDeal)
	return m.afterPlayer()
}

func (m *TableModel) stick() tea.Cmd {
	if err := m.round.Stick(); err != nil {
		return m.fail(err)
	}
	m.notice = fmt.Sprintf("You stick on %d", m.round.Player().Value())
	return m.afterPlayer()
}

func (m *TableModel) afterPlayer() tea.Cmd {
	switch m.round.Phase() {
	case round.PhaseBust:
		return m.finish()
	case round.PhaseBankerTurn:
		m.keys.forPhase(m.phase, false)
		return m.bankerTick()
	}
	return nil
}

func (m *TableModel) bankerTick() tea.Cmd {
	if m.bankerDelay <= 0 {
		return func() tea.Msg { return BankerTickMsg{} }
	}
	return tea.Tick(m.bankerDelay, func(time.Time) tea.Msg {
		return BankerTickMsg{}
	})
}

func (m *TableModel) bankerStep() tea.Cmd {
	if m.phase != PhasePlaying || m.round == nil || m.round.Phase() != round.PhaseBankerTurn {
		return nil
	}
	drew, err := m.round.BankerStep()
	if err != nil {
		return m.fail(err)
	}
	if drew {
		m.notice = fmt.Sprintf("Banker twists (%d)", m.round.Banker().Value())
		m.play(sound.CueDeal)
	}
	if m.round.Done() {
		return m.finish()
	}
	return m.bankerTick()
}

func (m *TableModel) finish() tea.Cmd {
	res := m.round.Result()
	m.last = &res
	m.session.Apply(res)
	m.notice = ""
	m.play(sound.ForResult(res))
	m.setPhase(PhaseRoundOver)
	return m.saveStats(m.session.Snapshot())
}

func (m *TableModel) enterSummary() tea.Cmd {
	m.showRules = false
	m.setPhase(PhaseSummary)
	return m.loadLeaderboard()
}

// fail moves to the error screen; main reads Err after the program exits.
func (m *TableModel) fail(err error) tea.Cmd {
	logger.LogError("session %s: round aborted: %v", m.session.ID, err)
	m.err = err
	m.setPhase(PhaseError)
	return nil
}

func (m *TableModel) setPhase(p GamePhase) {
	m.phase = p
	playerTurn := m.round != nil && m.round.Phase() == round.PhasePlayerTurn
	m.keys.forPhase(p, playerTurn)
}

func (m *TableModel) play(cue string) {
	if m.sound != nil {
		m.sound.Play(cue)
	}
}

func (m *TableModel) saveStats(snap *storage.SessionStats) tea.Cmd {
	s := m.session
	return func() tea.Msg {
		return StatsSavedMsg{Err: s.Save(context.Background(), snap)}
	}
}

func (m *TableModel) loadLeaderboard() tea.Cmd {
	s := m.session
	return func() tea.Msg {
		entries, err := s.Leaderboard(context.Background(), leaderboardSize)
		return LeaderboardMsg{Entries: entries, Err: err}
	}
}

// View renders the model.
func (m *TableModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	if m.viewRenderer != nil {
		content = m.viewRenderer(m, m.phase)
	} else {
		content = "View renderer not initialized"
	}

	return common.DocStyle.Render(content)
}
