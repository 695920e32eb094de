package blackjack

import (
	"github.com/fadedpez/martingale/pkg/entities"
)

// Outcome is the structured result of one resolved hand.
type Outcome struct {
	Result   entities.Result
	Payout   float64
	Snapshot entities.HandSnapshot
}

// Table resolves single hands against a shoe for one tracked seat.
// It holds no state between hands beyond the shoe it mutates: all
// randomness lives in the shoe, every other step is deterministic.
type Table struct {
	shoe             *Shoe
	numPlayers       int
	dealerHitsSoft17 bool
}

// NewTable creates a table around a shoe. numPlayers includes the
// tracked seat; extra seats are dealt but their outcomes are ignored.
func NewTable(shoe *Shoe, numPlayers int, dealerHitsSoft17 bool) *Table {
	return &Table{
		shoe:             shoe,
		numPlayers:       numPlayers,
		dealerHitsSoft17: dealerHitsSoft17,
	}
}

// PlayHand deals and resolves one complete hand for the given bet.
//
// Deal order is dealer x2, tracked player x2, then each extra seat x2.
// The extra seats consume shoe cards and shift reshuffle timing even
// though only the tracked seat is scored, so skipping them would
// change every card the tracked seat sees for a given seed.
func (t *Table) PlayHand(bet float64) Outcome {
	dealer := []*entities.Card{t.shoe.Draw(), t.shoe.Draw()}
	player := []*entities.Card{t.shoe.Draw(), t.shoe.Draw()}
	for i := 1; i < t.numPlayers; i++ {
		_ = []*entities.Card{t.shoe.Draw(), t.shoe.Draw()}
	}

	playerBJ := IsBlackjack(player)
	dealerBJ := IsBlackjack(dealer)

	switch {
	case playerBJ && !dealerBJ:
		return outcome(entities.ResultWin, BlackjackPayoutRatio*bet, player, dealer)
	case dealerBJ && !playerBJ:
		return outcome(entities.ResultLose, 0, player, dealer)
	case playerBJ && dealerBJ:
		return outcome(entities.ResultPush, 0, player, dealer)
	}

	// Player hits to a fixed threshold; no strategy choice
	for BestScore(player) < StandThreshold {
		player = append(player, t.shoe.Draw())
	}
	if IsBust(player) {
		return outcome(entities.ResultLose, 0, player, dealer)
	}

	// Dealer hits below 17, and on soft 17 when the rule is on
	for {
		val := BestScore(dealer)
		if val < StandThreshold || (t.dealerHitsSoft17 && IsSoft17(dealer)) {
			dealer = append(dealer, t.shoe.Draw())
			continue
		}
		break
	}

	playerVal, dealerVal := BestScore(player), BestScore(dealer)
	switch {
	case dealerVal > 21:
		return outcome(entities.ResultWin, bet, player, dealer)
	case playerVal > dealerVal:
		return outcome(entities.ResultWin, bet, player, dealer)
	case playerVal < dealerVal:
		return outcome(entities.ResultLose, 0, player, dealer)
	default:
		return outcome(entities.ResultPush, 0, player, dealer)
	}
}

func outcome(result entities.Result, payout float64, player, dealer []*entities.Card) Outcome {
	return Outcome{
		Result: result,
		Payout: payout,
		Snapshot: entities.HandSnapshot{
			Player:      HandString(player),
			Dealer:      HandString(dealer),
			PlayerValue: BestScore(player),
			DealerValue: BestScore(dealer),
		},
	}
}
