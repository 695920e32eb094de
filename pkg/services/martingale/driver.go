package martingale

import (
	"fmt"
	"math"

	"github.com/fadedpez/martingale/internal/types"
	"github.com/fadedpez/martingale/pkg/entities"
	"github.com/fadedpez/martingale/pkg/services/blackjack"
)

// HandPlayer resolves one complete hand for a given bet. The table in
// the blackjack service is the production implementation.
type HandPlayer interface {
	PlayHand(bet float64) blackjack.Outcome
}

// Config holds every parameter of one simulated trial.
type Config struct {
	StartBankroll    float64 `json:"start_bankroll"`
	BaseBet          float64 `json:"base_bet"`
	Multiplier       float64 `json:"multiplier"`
	NumDecks         int     `json:"num_decks"`
	NumPlayers       int     `json:"num_players"`
	NumHands         int     `json:"num_hands"`
	DealerHitsSoft17 bool    `json:"dealer_hits_soft_17"`
	Seed             int64   `json:"seed"`
}

// Validate rejects configurations no trial should run with. It is
// called before any cards are dealt; a trial never partially runs on
// bad input.
func (c Config) Validate() error {
	if c.StartBankroll <= 0 {
		return types.NewSimError(types.ErrInvalidBankroll,
			fmt.Sprintf("start bankroll must be positive, got %v", c.StartBankroll))
	}
	if c.BaseBet <= 0 {
		return types.NewSimError(types.ErrInvalidBet,
			fmt.Sprintf("base bet must be positive, got %v", c.BaseBet))
	}
	if c.Multiplier < 1 {
		return types.NewSimError(types.ErrInvalidMultiplier,
			fmt.Sprintf("bet multiplier must be at least 1, got %v", c.Multiplier))
	}
	if c.NumDecks < 1 || c.NumDecks > blackjack.MaxDecks {
		return types.NewSimError(types.ErrInvalidDeckCount,
			fmt.Sprintf("deck count must be between 1 and %d, got %d", blackjack.MaxDecks, c.NumDecks))
	}
	if c.NumPlayers < 1 {
		return types.NewSimError(types.ErrInvalidPlayerCount,
			fmt.Sprintf("player count must be at least 1, got %d", c.NumPlayers))
	}
	if c.NumHands <= 0 {
		return types.NewSimError(types.ErrInvalidHandCount,
			fmt.Sprintf("hand count must be positive, got %d", c.NumHands))
	}
	return nil
}

// RunTrial validates the config, builds a fresh seeded shoe and table,
// and plays the trial to completion. The returned ledger has one entry
// per settled hand, plus a terminal BUST entry when the progression
// demands a bet the bankroll cannot cover.
func RunTrial(cfg Config) ([]*entities.LedgerEntry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	shoe := blackjack.NewShoe(cfg.NumDecks, cfg.Seed)
	table := blackjack.NewTable(shoe, cfg.NumPlayers, cfg.DealerHitsSoft17)
	return Run(cfg, table), nil
}

// Run plays up to cfg.NumHands hands against the given table,
// progressing the bet after every loss and resetting it after every
// win. Callers are expected to have validated cfg.
//
// Two distinct stops exist: a BUST entry when the required bet exceeds
// the bankroll (no hand is played), and ruin when the bankroll falls
// to zero or below after a settled hand (the hand's own result
// stands, no extra entry is added).
func Run(cfg Config, table HandPlayer) []*entities.LedgerEntry {
	bankroll := cfg.StartBankroll
	streak := 0
	ledger := make([]*entities.LedgerEntry, 0, cfg.NumHands)

	for hand := 1; hand <= cfg.NumHands; hand++ {
		bet := cfg.BaseBet * math.Pow(cfg.Multiplier, float64(streak))

		if bet > bankroll {
			ledger = append(ledger, &entities.LedgerEntry{
				Hand:         hand,
				Result:       entities.ResultBust,
				Bet:          bet,
				Bankroll:     bankroll,
				Profit:       bankroll - cfg.StartBankroll,
				StreakLosses: streak,
			})
			break
		}

		outcome := table.PlayHand(bet)

		switch outcome.Result {
		case entities.ResultWin:
			bankroll += outcome.Payout
			streak = 0
		case entities.ResultPush:
			// No money moves, streak holds
		case entities.ResultLose:
			bankroll -= bet
			streak++
		default:
			panic(fmt.Sprintf("martingale: hand resolver returned unknown result %q", outcome.Result))
		}

		ledger = append(ledger, &entities.LedgerEntry{
			Hand:         hand,
			Result:       outcome.Result,
			Snapshot:     outcome.Snapshot,
			Bet:          bet,
			Bankroll:     bankroll,
			Profit:       bankroll - cfg.StartBankroll,
			StreakLosses: streak,
		})

		if bankroll <= 0 {
			break
		}
	}

	return ledger
}
