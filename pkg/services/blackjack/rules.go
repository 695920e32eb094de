package blackjack

import (
	"strconv"
	"strings"

	"github.com/fadedpez/martingale/pkg/entities"
)

const (
	// StandThreshold is the fixed hit/stand boundary for both seats
	StandThreshold = 17

	// BlackjackPayoutRatio is the 3:2 premium paid on a natural
	BlackjackPayoutRatio = 1.5
)

func CardValue(card *entities.Card) int {
	switch card.Rank {
	case entities.Ace:
		return 11
	case entities.Jack, entities.Queen, entities.King:
		return 10
	default:
		val, _ := strconv.Atoi(string(card.Rank))
		return val
	}
}

func IsAce(card *entities.Card) bool {
	return card.Rank == entities.Ace
}

// rawScore sums every card at face value with aces at 11, and counts
// the aces still available for softening.
func rawScore(cards []*entities.Card) (int, int) {
	score := 0
	aces := 0

	for _, card := range cards {
		score += CardValue(card)
		if IsAce(card) {
			aces++
		}
	}

	return score, aces
}

// BestScore returns the best total not exceeding 21, softening aces
// from 11 to 1 one at a time as long as the hand is over. A hand with
// several aces can soften more than one.
func BestScore(cards []*entities.Card) int {
	score, aces := rawScore(cards)

	for score > 21 && aces > 0 {
		score -= 10
		aces--
	}

	return score
}

func IsBlackjack(cards []*entities.Card) bool {
	return len(cards) == 2 && BestScore(cards) == 21
}

// IsBust checks if a hand exceeds 21
func IsBust(cards []*entities.Card) bool {
	return BestScore(cards) > 21
}

// IsSoft17 reports whether the hand is a 17 that counts an ace as 11.
// The check uses the unreduced sum: (A,6) is a soft 17, (A,6,10) is
// not, and neither is a hard (10,7).
func IsSoft17(cards []*entities.Card) bool {
	score, aces := rawScore(cards)
	return aces > 0 && score == 17
}

// HandString renders a hand in deal order, e.g. "A♠ K♥"
func HandString(cards []*entities.Card) string {
	parts := make([]string, 0, len(cards))
	for _, card := range cards {
		parts = append(parts, card.String())
	}
	return strings.Join(parts, " ")
}
