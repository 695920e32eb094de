package montecarlo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fadedpez/martingale/pkg/entities"
)

func TestComputeStats(t *testing.T) {
	summaries := []*entities.TrialSummary{
		{Profit: 10, FinalBankroll: 110, Won: true, HandsPlayed: 50, MaxLossStreak: 2},
		{Profit: -20, FinalBankroll: 80, Bust: true, HandsPlayed: 12, MaxLossStreak: 4},
		{Profit: 30, FinalBankroll: 130, Won: true, HandsPlayed: 50, MaxLossStreak: 3},
		{Profit: -20, FinalBankroll: 80, Bust: true, HandsPlayed: 20, MaxLossStreak: 5},
	}

	stats := ComputeStats(summaries)

	assert.Equal(t, 4, stats.Iterations)
	assert.Equal(t, 2, stats.Busts)
	assert.Equal(t, 2, stats.Wins)
	assert.Equal(t, 0.5, stats.BustRate)
	assert.Equal(t, 0.5, stats.WinRate)

	assert.InDelta(t, 0.0, stats.MeanProfit, 1e-9)
	// Sorted profits: -20, -20, 10, 30 -> median is the middle pair's mean
	assert.InDelta(t, -5.0, stats.MedianProfit, 1e-9)
	// Sample standard deviation: sqrt((100+400+900+400)/3)
	assert.InDelta(t, 24.4948974968, stats.StdDevProfit, 1e-6)
	assert.Equal(t, -20.0, stats.MinProfit)
	assert.Equal(t, 30.0, stats.MaxProfit)

	assert.InDelta(t, 100.0, stats.AvgFinalBankroll, 1e-9)
	assert.InDelta(t, 33.0, stats.AvgHandsPlayed, 1e-9)
	assert.InDelta(t, 3.5, stats.AvgMaxLossStreak, 1e-9)
	assert.Equal(t, 5, stats.MaxLossStreak)
}

func TestComputeStatsSmallInputs(t *testing.T) {
	assert.Equal(t, Stats{}, ComputeStats(nil))

	single := ComputeStats([]*entities.TrialSummary{{Profit: 42, FinalBankroll: 142, Won: true, HandsPlayed: 10}})
	assert.Equal(t, 1, single.Iterations)
	assert.Equal(t, 42.0, single.MeanProfit)
	assert.Equal(t, 42.0, single.MedianProfit)
	// One sample has no spread
	assert.Equal(t, 0.0, single.StdDevProfit)
}

func TestMedian(t *testing.T) {
	assert.Equal(t, 3.0, median([]float64{5, 1, 3}))
	assert.Equal(t, 2.5, median([]float64{4, 1, 2, 3}))
	assert.Equal(t, 7.0, median([]float64{7}))
}
