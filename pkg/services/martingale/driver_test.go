package martingale

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fadedpez/martingale/internal/types"
	"github.com/fadedpez/martingale/pkg/entities"
	"github.com/fadedpez/martingale/pkg/services/blackjack"
	"github.com/fadedpez/martingale/pkg/services/blackjack/mock"
)

func validConfig() Config {
	return Config{
		StartBankroll:    100,
		BaseBet:          10,
		Multiplier:       2,
		NumDecks:         6,
		NumPlayers:       1,
		NumHands:         50,
		DealerHitsSoft17: false,
		Seed:             7,
	}
}

func win(payout float64) blackjack.Outcome {
	return blackjack.Outcome{Result: entities.ResultWin, Payout: payout}
}

func lose() blackjack.Outcome {
	return blackjack.Outcome{Result: entities.ResultLose}
}

func push() blackjack.Outcome {
	return blackjack.Outcome{Result: entities.ResultPush}
}

func TestConfigValidate(t *testing.T) {
	testCases := []struct {
		name         string
		mutate       func(*Config)
		expectedCode types.ErrorCode
	}{
		{"zero bankroll", func(c *Config) { c.StartBankroll = 0 }, types.ErrInvalidBankroll},
		{"negative bankroll", func(c *Config) { c.StartBankroll = -50 }, types.ErrInvalidBankroll},
		{"zero base bet", func(c *Config) { c.BaseBet = 0 }, types.ErrInvalidBet},
		{"multiplier below one", func(c *Config) { c.Multiplier = 0.9 }, types.ErrInvalidMultiplier},
		{"zero decks", func(c *Config) { c.NumDecks = 0 }, types.ErrInvalidDeckCount},
		{"too many decks", func(c *Config) { c.NumDecks = 9 }, types.ErrInvalidDeckCount},
		{"zero players", func(c *Config) { c.NumPlayers = 0 }, types.ErrInvalidPlayerCount},
		{"zero hands", func(c *Config) { c.NumHands = 0 }, types.ErrInvalidHandCount},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, types.IsSimError(err, tc.expectedCode), "got %v", err)
		})
	}

	assert.NoError(t, validConfig().Validate())
	// Fractional multipliers above one are allowed
	cfg := validConfig()
	cfg.Multiplier = 1.5
	assert.NoError(t, cfg.Validate())
}

func TestRunProgressionAndReset(t *testing.T) {
	cfg := validConfig()
	cfg.StartBankroll = 1000
	cfg.NumHands = 4

	table := mock.New()
	table.On("PlayHand", 10.0).Return(lose()).Once()
	table.On("PlayHand", 20.0).Return(lose()).Once()
	table.On("PlayHand", 40.0).Return(win(40)).Once()
	// Streak reset: back to the base bet
	table.On("PlayHand", 10.0).Return(win(10)).Once()

	ledger := Run(cfg, table)
	table.AssertExpectations(t)

	require.Len(t, ledger, 4)
	assert.Equal(t, []float64{10, 20, 40, 10}, []float64{ledger[0].Bet, ledger[1].Bet, ledger[2].Bet, ledger[3].Bet})
	assert.Equal(t, []int{1, 2, 0, 0}, []int{ledger[0].StreakLosses, ledger[1].StreakLosses, ledger[2].StreakLosses, ledger[3].StreakLosses})
	assert.Equal(t, 1000.0-10-20+40+10, ledger[3].Bankroll)
	assert.Equal(t, 20.0, ledger[3].Profit)
}

func TestRunPushHoldsStreakAndBankroll(t *testing.T) {
	cfg := validConfig()
	cfg.StartBankroll = 1000
	cfg.NumHands = 3

	table := mock.New()
	table.On("PlayHand", 10.0).Return(lose()).Once()
	table.On("PlayHand", 20.0).Return(push()).Once()
	// Push neither resets the streak nor settles money; progression holds
	table.On("PlayHand", 20.0).Return(lose()).Once()

	ledger := Run(cfg, table)
	table.AssertExpectations(t)

	require.Len(t, ledger, 3)
	assert.Equal(t, entities.ResultPush, ledger[1].Result)
	assert.Equal(t, ledger[0].Bankroll, ledger[1].Bankroll)
	assert.Equal(t, 1, ledger[1].StreakLosses)
	assert.Equal(t, 2, ledger[2].StreakLosses)
}

func TestRunFractionalMultiplier(t *testing.T) {
	cfg := validConfig()
	cfg.StartBankroll = 1000
	cfg.Multiplier = 1.5
	cfg.NumHands = 3

	table := mock.New()
	table.On("PlayHand", 10.0).Return(lose()).Once()
	table.On("PlayHand", 15.0).Return(lose()).Once()
	table.On("PlayHand", 22.5).Return(win(22.5)).Once()

	ledger := Run(cfg, table)
	table.AssertExpectations(t)
	require.Len(t, ledger, 3)
}

func TestRunBustWhenBetExceedsBankroll(t *testing.T) {
	cfg := validConfig()
	cfg.StartBankroll = 100
	cfg.BaseBet = 60
	cfg.NumHands = 10

	table := mock.New()
	table.On("PlayHand", 60.0).Return(lose()).Once()

	ledger := Run(cfg, table)
	table.AssertExpectations(t)

	require.Len(t, ledger, 2)

	bust := ledger[1]
	assert.Equal(t, entities.ResultBust, bust.Result)
	assert.Equal(t, 2, bust.Hand)
	assert.Equal(t, 120.0, bust.Bet)
	assert.Equal(t, 40.0, bust.Bankroll)
	assert.Equal(t, 1, bust.StreakLosses)
	// No hand is played for a BUST entry: the snapshot stays empty
	assert.Equal(t, entities.HandSnapshot{}, bust.Snapshot)
	// The bet the bankroll could not cover exceeds the prior entry's bankroll
	assert.Greater(t, bust.Bet, ledger[0].Bankroll)
}

func TestRunBustOnFirstHand(t *testing.T) {
	cfg := validConfig()
	cfg.StartBankroll = 5
	cfg.BaseBet = 10

	table := mock.New()
	ledger := Run(cfg, table)
	table.AssertExpectations(t)

	require.Len(t, ledger, 1)
	assert.Equal(t, entities.ResultBust, ledger[0].Result)
	assert.Equal(t, 1, ledger[0].Hand)
	assert.Greater(t, ledger[0].Bet, cfg.StartBankroll)
}

func TestRunStopsOnRuin(t *testing.T) {
	cfg := validConfig()
	cfg.StartBankroll = 10
	cfg.BaseBet = 10
	cfg.NumHands = 10

	table := mock.New()
	table.On("PlayHand", 10.0).Return(lose()).Once()

	ledger := Run(cfg, table)
	table.AssertExpectations(t)

	// Ruin keeps the losing hand's own result; no BUST entry follows
	require.Len(t, ledger, 1)
	assert.Equal(t, entities.ResultLose, ledger[0].Result)
	assert.Equal(t, 0.0, ledger[0].Bankroll)
}

func TestRunPanicsOnUnknownResult(t *testing.T) {
	cfg := validConfig()
	cfg.NumHands = 1

	table := mock.New()
	table.On("PlayHand", 10.0).Return(blackjack.Outcome{Result: "banana"}).Once()

	assert.Panics(t, func() { Run(cfg, table) })
}

func TestRunTrialRejectsInvalidConfig(t *testing.T) {
	cfg := validConfig()
	cfg.BaseBet = -1

	ledger, err := RunTrial(cfg)
	assert.Nil(t, ledger)
	assert.True(t, types.IsSimError(err, types.ErrInvalidBet))
}

func TestRunTrialDeterminism(t *testing.T) {
	cfg := validConfig()

	first, err := RunTrial(cfg)
	require.NoError(t, err)
	second, err := RunTrial(cfg)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// End-to-end over a real shoe: every ledger entry must obey the
// progression formula and the accounting identities.
func TestRunTrialInvariants(t *testing.T) {
	cfg := validConfig()

	ledger, err := RunTrial(cfg)
	require.NoError(t, err)
	require.NotEmpty(t, ledger)

	prevBankroll := cfg.StartBankroll
	prevStreak := 0
	for _, entry := range ledger {
		expectedBet := cfg.BaseBet * math.Pow(cfg.Multiplier, float64(prevStreak))
		assert.InDelta(t, expectedBet, entry.Bet, 1e-9, "hand %d bet", entry.Hand)

		switch entry.Result {
		case entities.ResultWin:
			assert.Greater(t, entry.Bankroll, prevBankroll, "hand %d", entry.Hand)
			assert.Equal(t, 0, entry.StreakLosses)
		case entities.ResultLose:
			assert.InDelta(t, prevBankroll-entry.Bet, entry.Bankroll, 1e-9, "hand %d", entry.Hand)
			assert.Equal(t, prevStreak+1, entry.StreakLosses)
		case entities.ResultPush:
			assert.Equal(t, prevBankroll, entry.Bankroll, "hand %d", entry.Hand)
			assert.Equal(t, prevStreak, entry.StreakLosses)
		case entities.ResultBust:
			assert.Greater(t, entry.Bet, prevBankroll)
			assert.Equal(t, prevBankroll, entry.Bankroll)
		}

		assert.InDelta(t, entry.Bankroll-cfg.StartBankroll, entry.Profit, 1e-9)

		prevBankroll = entry.Bankroll
		prevStreak = entry.StreakLosses
	}

	final := ledger[len(ledger)-1]
	assert.InDelta(t, cfg.StartBankroll+final.Profit, final.Bankroll, 1e-9)
}
