package montecarlo

import (
	"math"
	"sort"

	"github.com/fadedpez/martingale/pkg/entities"
)

// Stats aggregates trial summaries into run-level statistics.
type Stats struct {
	Iterations int `json:"iterations"`
	Busts      int `json:"busts"`
	Wins       int `json:"wins"`

	WinRate  float64 `json:"win_rate"`
	BustRate float64 `json:"bust_rate"`

	MeanProfit   float64 `json:"mean_profit"`
	MedianProfit float64 `json:"median_profit"`
	StdDevProfit float64 `json:"std_dev_profit"`
	MinProfit    float64 `json:"min_profit"`
	MaxProfit    float64 `json:"max_profit"`

	AvgFinalBankroll float64 `json:"avg_final_bankroll"`
	AvgHandsPlayed   float64 `json:"avg_hands_played"`
	AvgMaxLossStreak float64 `json:"avg_max_loss_streak"`
	MaxLossStreak    int     `json:"max_loss_streak"`
}

// ComputeStats derives run statistics from per-trial summaries.
// Standard deviation is the sample deviation (n-1 denominator).
func ComputeStats(summaries []*entities.TrialSummary) Stats {
	n := len(summaries)
	if n == 0 {
		return Stats{}
	}

	stats := Stats{
		Iterations: n,
		MinProfit:  math.Inf(1),
		MaxProfit:  math.Inf(-1),
	}

	profits := make([]float64, 0, n)
	var profitSum, bankrollSum, handsSum, streakSum float64

	for _, s := range summaries {
		if s.Bust {
			stats.Busts++
		}
		if s.Won {
			stats.Wins++
		}
		if s.Profit < stats.MinProfit {
			stats.MinProfit = s.Profit
		}
		if s.Profit > stats.MaxProfit {
			stats.MaxProfit = s.Profit
		}
		if s.MaxLossStreak > stats.MaxLossStreak {
			stats.MaxLossStreak = s.MaxLossStreak
		}

		profits = append(profits, s.Profit)
		profitSum += s.Profit
		bankrollSum += s.FinalBankroll
		handsSum += float64(s.HandsPlayed)
		streakSum += float64(s.MaxLossStreak)
	}

	stats.WinRate = float64(stats.Wins) / float64(n)
	stats.BustRate = float64(stats.Busts) / float64(n)
	stats.MeanProfit = profitSum / float64(n)
	stats.MedianProfit = median(profits)
	stats.StdDevProfit = sampleStdDev(profits, stats.MeanProfit)
	stats.AvgFinalBankroll = bankrollSum / float64(n)
	stats.AvgHandsPlayed = handsSum / float64(n)
	stats.AvgMaxLossStreak = streakSum / float64(n)

	return stats
}

func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

func sampleStdDev(values []float64, mean float64) float64 {
	if len(values) < 2 {
		return 0
	}

	var sum float64
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)-1))
}
