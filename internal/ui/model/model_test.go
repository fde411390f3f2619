package model

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/pontoon/internal/apperrors"
	"github.com/palemoky/pontoon/internal/game/card"
	"github.com/palemoky/pontoon/internal/game/round"
	"github.com/palemoky/pontoon/internal/game/rule"
	"github.com/palemoky/pontoon/internal/game/session"
	"github.com/palemoky/pontoon/internal/storage"
	"github.com/palemoky/pontoon/internal/testutil"
)

type recordingSound struct{ played []string }

func (r *recordingSound) Play(name string) { r.played = append(r.played, name) }

func cs(ranks ...card.Rank) []card.Card {
	suits := card.AllSuits()
	out := make([]card.Card, len(ranks))
	for i, r := range ranks {
		out[i] = card.New(r, suits[i%len(suits)])
	}
	return out
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T, deck round.Dealer) (*TableModel, *storage.MemoryStore, *recordingSound) {
	t.Helper()
	store := storage.NewMemoryStore()
	snd := &recordingSound{}
	m := NewTableModel(deck, session.New("Player", store, 0), snd, 0)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m, store, snd
}

// drive feeds every message produced by cmd back into the model until the
// chain ends. It returns the last message seen.
func drive(t *testing.T, m *TableModel, cmd tea.Cmd) tea.Msg {
	t.Helper()
	var last tea.Msg
	for i := 0; cmd != nil; i++ {
		require.Less(t, i, 20, "command chain did not settle")
		last = cmd()
		if _, ok := last.(tea.QuitMsg); ok {
			return last
		}
		_, cmd = m.Update(last)
	}
	return last
}

func press(t *testing.T, m *TableModel, msg tea.KeyMsg) tea.Msg {
	t.Helper()
	_, cmd := m.Update(msg)
	return drive(t, m, cmd)
}

func TestNewTableModel(t *testing.T) {
	t.Parallel()

	m, _, _ := newTestModel(t, testutil.NewStackDeck())

	assert.Equal(t, PhaseTitle, m.Phase())
	assert.Nil(t, m.Round())
	assert.Equal(t, "Player", m.NameInput().Value())
	_, ok := m.LastResult()
	assert.False(t, ok)
	assert.NoError(t, m.Err())
	assert.Equal(t, 80, m.Width())
	assert.Equal(t, 24, m.Height())
}

func TestTableModel_EnterStartsRoundWithName(t *testing.T) {
	t.Parallel()

	m, _, snd := newTestModel(t, testutil.NewStackDeck(cs(card.Ten, card.Nine, card.Seven, card.Eight)...))
	m.NameInput().SetValue("  Ada  ")

	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, PhasePlaying, m.Phase())
	assert.Equal(t, "Ada", m.PlayerName())
	require.NotNil(t, m.Round())
	assert.Equal(t, round.PhasePlayerTurn, m.Round().Phase())
	assert.Equal(t, 17, m.Round().Player().Value())
	assert.Equal(t, []string{"deal"}, snd.played)
}

func TestTableModel_BlankNameKeepsDefault(t *testing.T) {
	t.Parallel()

	m, _, _ := newTestModel(t, testutil.NewStackDeck(cs(card.Ten, card.Nine, card.Seven, card.Eight)...))
	m.NameInput().SetValue("   ")

	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, "Player", m.PlayerName())
}

func TestTableModel_StickThenBankerPlays(t *testing.T) {
	t.Parallel()

	// player 10+7, banker 10+6 then twists a 5 to reach 21
	deck := testutil.NewStackDeck(cs(card.Ten, card.Ten, card.Seven, card.Six, card.Five)...)
	m, store, snd := newTestModel(t, deck)
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	press(t, m, runes("s"))

	assert.Equal(t, PhaseRoundOver, m.Phase())
	res, ok := m.LastResult()
	require.True(t, ok)
	assert.Equal(t, rule.BankerWins, res.Outcome)
	assert.True(t, res.BankerPlayed)
	assert.Equal(t, 21, res.Banker.Value)
	assert.Equal(t, 3, m.Round().Banker().Count())
	assert.Equal(t, session.Statistics{RoundsPlayed: 1, BankerWins: 1}, m.Stats())
	assert.Equal(t, "lose", snd.played[len(snd.played)-1])

	saved, err := store.Load(context.Background(), m.session.ID)
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, 1, saved.RoundsPlayed)
}

func TestTableModel_TwistToBustSkipsBanker(t *testing.T) {
	t.Parallel()

	deck := testutil.NewStackDeck(cs(card.Ten, card.Nine, card.Six, card.Eight, card.King)...)
	m, _, snd := newTestModel(t, deck)
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	press(t, m, runes("t"))

	assert.Equal(t, PhaseRoundOver, m.Phase())
	res, ok := m.LastResult()
	require.True(t, ok)
	assert.Equal(t, rule.Bust, res.Player.Type)
	assert.False(t, res.BankerPlayed)
	assert.Equal(t, 2, m.Round().Banker().Count())
	assert.Equal(t, "bust", snd.played[len(snd.played)-1])
}

func TestTableModel_KeysIgnoredOutsideTheirPhase(t *testing.T) {
	t.Parallel()

	deck := testutil.NewStackDeck(cs(card.Ten, card.Nine, card.Six, card.Eight, card.King)...)
	m, _, _ := newTestModel(t, deck)
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	// next round is not offered mid-round
	press(t, m, runes("n"))
	assert.Equal(t, 2, m.Round().Player().Count())

	press(t, m, runes("t"))
	require.Equal(t, PhaseRoundOver, m.Phase())

	// twisting after the round is over does nothing
	press(t, m, runes("t"))
	assert.Equal(t, 3, m.Round().Player().Count())
}

func TestTableModel_NextRound(t *testing.T) {
	t.Parallel()

	deck := testutil.NewStackDeck(cs(
		card.Ten, card.Nine, card.Six, card.Eight, card.King,
		card.Ace, card.Two, card.King, card.Three,
	)...)
	m, _, _ := newTestModel(t, deck)
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	press(t, m, runes("t"))
	require.Equal(t, PhaseRoundOver, m.Phase())

	press(t, m, runes("n"))

	assert.Equal(t, PhasePlaying, m.Phase())
	assert.True(t, m.Round().Player().IsPontoon())
	assert.Empty(t, m.Notice())
}

func TestTableModel_ReshuffleNotice(t *testing.T) {
	t.Parallel()

	deck := testutil.NewStackDeck()
	deck.ForceReshuffle = true
	deck.Refill = cs(card.Ten, card.Nine, card.Seven, card.Eight)
	m, _, snd := newTestModel(t, deck)

	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, PhasePlaying, m.Phase())
	assert.Equal(t, 1, deck.Resets)
	assert.Contains(t, m.Notice(), "reshuffled")
	assert.Equal(t, []string{"shuffle"}, snd.played)
}

func TestTableModel_DeckExhaustedIsFatal(t *testing.T) {
	t.Parallel()

	m, _, _ := newTestModel(t, testutil.NewStackDeck(cs(card.Ten, card.Nine, card.Seven)...))

	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, PhaseError, m.Phase())
	assert.True(t, apperrors.IsInvariant(m.Err()))
	assert.ErrorIs(t, m.Err(), apperrors.ErrDeckExhausted)

	last := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.IsType(t, tea.QuitMsg{}, last)
}

func TestTableModel_QuitShowsSummary(t *testing.T) {
	t.Parallel()

	deck := testutil.NewStackDeck(cs(card.Ten, card.Nine, card.Six, card.Eight, card.King)...)
	m, _, _ := newTestModel(t, deck)
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	press(t, m, runes("t"))

	press(t, m, runes("q"))

	assert.Equal(t, PhaseSummary, m.Phase())
	require.Len(t, m.Leaderboard(), 1)
	assert.Equal(t, "Player", m.Leaderboard()[0].PlayerName)

	last := press(t, m, runes("q"))
	assert.IsType(t, tea.QuitMsg{}, last)
}

func TestTableModel_RulesOverlay(t *testing.T) {
	t.Parallel()

	deck := testutil.NewStackDeck(cs(card.Ten, card.Nine, card.Six, card.Eight, card.King)...)
	m, _, _ := newTestModel(t, deck)
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	press(t, m, runes("?"))
	assert.True(t, m.ShowingRules())

	press(t, m, runes("t"))
	assert.Equal(t, 2, m.Round().Player().Count(), "keys are swallowed while rules are open")

	press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.ShowingRules())
}

func TestTableModel_CtrlCQuitsAnywhere(t *testing.T) {
	t.Parallel()

	m, _, _ := newTestModel(t, testutil.NewStackDeck())

	last := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.IsType(t, tea.QuitMsg{}, last)
}

func TestTableModel_View(t *testing.T) {
	t.Parallel()

	m := NewTableModel(testutil.NewStackDeck(), session.New("Player", nil, 0), nil, 0)
	assert.Equal(t, "Loading...", m.View())

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Contains(t, m.View(), "View renderer not initialized")

	m.SetViewRenderer(func(_ Model, p GamePhase) string {
		if p == PhaseTitle {
			return "title screen"
		}
		return "other"
	})
	assert.Contains(t, m.View(), "title screen")
	assert.NotEmpty(t, m.HelpView())
}
