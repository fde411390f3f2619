package round_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/pontoon/internal/apperrors"
	"github.com/palemoky/pontoon/internal/game/card"
	"github.com/palemoky/pontoon/internal/game/round"
	"github.com/palemoky/pontoon/internal/game/rule"
	"github.com/palemoky/pontoon/internal/testutil"
)

func c(r card.Rank, s card.Suit) card.Card { return card.New(r, s) }

// deal builds a deck for the initial deal (player, banker, player, banker)
// followed by any extra cards.
func deal(p1, b1, p2, b2 card.Card, extra ...card.Card) *testutil.StackDeck {
	return testutil.NewStackDeck(append([]card.Card{p1, b1, p2, b2}, extra...)...)
}

func TestRound_DealOrder(t *testing.T) {
	t.Parallel()

	d := deal(c(card.Ace, card.Hearts), c(card.Seven, card.Diamonds), c(card.King, card.Spades), c(card.Eight, card.Clubs))
	r := round.New(d)
	require.Equal(t, round.PhaseDealing, r.Phase())
	require.NoError(t, r.Deal())

	assert.Equal(t, round.PhasePlayerTurn, r.Phase())
	assert.Equal(t, []card.Card{c(card.Ace, card.Hearts), c(card.King, card.Spades)}, r.Player().Cards())
	assert.Equal(t, []card.Card{c(card.Seven, card.Diamonds), c(card.Eight, card.Clubs)}, r.Banker().Cards())

	up, ok := r.BankerUpCard()
	require.True(t, ok)
	assert.Equal(t, c(card.Seven, card.Diamonds), up)
	assert.False(t, r.Done())
	assert.Equal(t, 0, r.CardsRemaining())
}

func TestRound_PontoonBeatsBankerWhateverItDraws(t *testing.T) {
	t.Parallel()

	for _, third := range card.AllRanks() {
		t.Run(third.Name(), func(t *testing.T) {
			t.Parallel()
			d := deal(c(card.Ace, card.Hearts), c(card.Seven, card.Diamonds), c(card.King, card.Spades), c(card.Eight, card.Clubs),
				c(third, card.Spades), c(card.Two, card.Hearts), c(card.Two, card.Diamonds))
			r := round.New(d)
			require.NoError(t, r.Deal())
			require.True(t, r.Player().IsPontoon())

			require.NoError(t, r.Stick())
			require.NoError(t, r.PlayBanker())

			assert.Equal(t, round.PhaseResolved, r.Phase())
			assert.GreaterOrEqual(t, r.Banker().Count(), 3, "banker on 15 must twist")
			outcome, ok := r.Outcome()
			require.True(t, ok)
			assert.Equal(t, rule.PlayerWins, outcome)
			assert.True(t, r.Result().PlayerPontoon())
		})
	}
}

func TestRound_PlayerBustSkipsBanker(t *testing.T) {
	t.Parallel()

	d := deal(c(card.King, card.Hearts), c(card.Five, card.Clubs), c(card.King, card.Diamonds), c(card.Six, card.Clubs),
		c(card.King, card.Clubs))
	r := round.New(d)
	require.NoError(t, r.Deal())

	drawn, err := r.Twist()
	require.NoError(t, err)
	assert.Equal(t, c(card.King, card.Clubs), drawn)

	assert.True(t, r.Player().IsBust())
	assert.Equal(t, 30, r.Player().Value())
	assert.Equal(t, round.PhaseBust, r.Phase())
	assert.True(t, r.Done())
	assert.False(t, r.Result().BankerPlayed)
	assert.Equal(t, 2, r.Banker().Count())

	outcome, ok := r.Outcome()
	require.True(t, ok)
	assert.Equal(t, rule.BankerWins, outcome)

	_, err = r.BankerStep()
	assert.ErrorIs(t, err, apperrors.ErrWrongPhase)
}

func TestRound_FifthCardEndsPlayerTurn(t *testing.T) {
	t.Parallel()

	d := deal(c(card.Two, card.Hearts), c(card.Ten, card.Clubs), c(card.Three, card.Hearts), c(card.Seven, card.Clubs),
		c(card.Two, card.Clubs), c(card.Three, card.Clubs), c(card.Four, card.Clubs))
	r := round.New(d)
	require.NoError(t, r.Deal())

	for range 3 {
		require.Equal(t, round.PhasePlayerTurn, r.Phase())
		_, err := r.Twist()
		require.NoError(t, err)
	}

	assert.Equal(t, round.PhaseBankerTurn, r.Phase())
	assert.True(t, r.Player().IsFiveCardTrick())

	_, err := r.Twist()
	assert.ErrorIs(t, err, apperrors.ErrWrongPhase)

	require.NoError(t, r.PlayBanker())
	assert.Equal(t, 2, r.Banker().Count(), "banker on 17 sticks")
	outcome, _ := r.Outcome()
	assert.Equal(t, rule.PlayerWins, outcome)
	assert.True(t, r.Result().PlayerFiveCardTrick())
}

func TestRound_BankerBustPlayerWins(t *testing.T) {
	t.Parallel()

	d := deal(c(card.Ten, card.Hearts), c(card.Ten, card.Clubs), c(card.Eight, card.Hearts), c(card.Six, card.Clubs),
		c(card.King, card.Spades), c(card.Two, card.Spades))
	r := round.New(d)
	require.NoError(t, r.Deal())
	require.NoError(t, r.Stick())

	drew, err := r.BankerStep()
	require.NoError(t, err)
	assert.True(t, drew)

	assert.True(t, r.Banker().IsBust())
	assert.Equal(t, round.PhaseResolved, r.Phase())
	assert.Equal(t, 3, r.Banker().Count(), "no card after a bust")
	assert.Equal(t, 1, d.Remaining())

	outcome, _ := r.Outcome()
	assert.Equal(t, rule.PlayerWins, outcome)
}

func TestRound_BankerStopsAtFiveCards(t *testing.T) {
	t.Parallel()

	d := deal(c(card.Ten, card.Hearts), c(card.Two, card.Clubs), c(card.Nine, card.Hearts), c(card.Two, card.Diamonds),
		c(card.Two, card.Spades), c(card.Two, card.Hearts), c(card.Three, card.Clubs), c(card.Four, card.Clubs))
	r := round.New(d)
	require.NoError(t, r.Deal())
	require.NoError(t, r.Stick())
	require.NoError(t, r.PlayBanker())

	assert.Equal(t, card.MaxCards, r.Banker().Count())
	assert.Equal(t, 11, r.Banker().Value())
	assert.Equal(t, 1, d.Remaining(), "no sixth card for the banker")

	res := r.Result()
	assert.Equal(t, rule.FiveCardTrick, res.Banker.Type)
	assert.Equal(t, rule.BankerWins, res.Outcome)
	assert.True(t, res.BankerPlayed)
}

func TestRound_BankerSticksWithoutDrawing(t *testing.T) {
	t.Parallel()

	d := deal(c(card.Ten, card.Hearts), c(card.Ten, card.Clubs), c(card.Eight, card.Hearts), c(card.Nine, card.Clubs))
	r := round.New(d)
	require.NoError(t, r.Deal())
	require.NoError(t, r.Stick())

	drew, err := r.BankerStep()
	require.NoError(t, err)
	assert.False(t, drew)

	res := r.Result()
	assert.Equal(t, rule.BankerWins, res.Outcome, "18 loses to 19")
	assert.Equal(t, 18, res.Player.Value)
	assert.Equal(t, 19, res.Banker.Value)
}

func TestRound_TieGoesToBanker(t *testing.T) {
	t.Parallel()

	d := deal(c(card.Ten, card.Hearts), c(card.Ten, card.Clubs), c(card.Eight, card.Hearts), c(card.Eight, card.Clubs))
	r := round.New(d)
	require.NoError(t, r.Deal())
	require.NoError(t, r.Stick())
	require.NoError(t, r.PlayBanker())

	outcome, _ := r.Outcome()
	assert.Equal(t, rule.BankerWins, outcome)
}

func TestRound_ReshuffleBeforeDeal(t *testing.T) {
	t.Parallel()

	d := testutil.NewStackDeck(c(card.Two, card.Clubs))
	d.ForceReshuffle = true
	d.Refill = []card.Card{c(card.Ace, card.Hearts), c(card.Seven, card.Diamonds), c(card.King, card.Spades), c(card.Eight, card.Clubs)}

	r := round.New(d)
	require.NoError(t, r.Deal())

	assert.True(t, r.Reshuffled())
	assert.Equal(t, 1, d.Resets)
	assert.Equal(t, []card.Card{c(card.Ace, card.Hearts), c(card.King, card.Spades)}, r.Player().Cards())
}

func TestRound_DeckExhaustedAborts(t *testing.T) {
	t.Parallel()

	d := testutil.NewStackDeck(c(card.Two, card.Clubs), c(card.Three, card.Clubs), c(card.Four, card.Clubs))
	r := round.New(d)

	err := r.Deal()
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrDeckExhausted)
	assert.True(t, apperrors.IsInvariant(err))
	assert.Equal(t, round.PhaseAborted, r.Phase())
	assert.True(t, r.Done())

	_, ok := r.Outcome()
	assert.False(t, ok)

	// The round stays aborted.
	assert.ErrorIs(t, r.Stick(), apperrors.ErrDeckExhausted)
}

func TestRound_DeckExhaustedOnTwist(t *testing.T) {
	t.Parallel()

	d := deal(c(card.Two, card.Hearts), c(card.Ten, card.Clubs), c(card.Three, card.Hearts), c(card.Seven, card.Clubs))
	r := round.New(d)
	require.NoError(t, r.Deal())

	_, err := r.Twist()
	assert.ErrorIs(t, err, apperrors.ErrDeckExhausted)
	assert.Equal(t, round.PhaseAborted, r.Phase())
}

func TestRound_WrongPhase(t *testing.T) {
	t.Parallel()

	r := round.New(testutil.NewStackDeck())

	_, err := r.Twist()
	assert.ErrorIs(t, err, apperrors.ErrWrongPhase)
	assert.ErrorIs(t, r.Stick(), apperrors.ErrWrongPhase)
	_, err = r.BankerStep()
	assert.ErrorIs(t, err, apperrors.ErrWrongPhase)

	_, ok := r.BankerUpCard()
	assert.False(t, ok)
	assert.Equal(t, round.PhaseDealing, r.Phase(), "wrong-phase calls do not abort")
}

func TestPhase_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "player turn", round.PhasePlayerTurn.String())
	assert.Equal(t, "unknown", round.Phase(99).String())
	assert.Equal(t, "Stick", round.Stick.String())
	assert.Equal(t, "Twist", round.Twist.String())
}
