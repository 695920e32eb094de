package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/fadedpez/martingale/pkg/entities"
	"github.com/fadedpez/martingale/pkg/services/martingale"
	"github.com/fadedpez/martingale/pkg/services/montecarlo"
)

// renderLedger prints the hand-by-hand history of one trial
func renderLedger(ledger []*entities.LedgerEntry) error {
	data := pterm.TableData{
		{"Hand", "Result", "Player", "Dealer", "Bet", "Bankroll", "Profit", "Streak"},
	}
	for _, e := range ledger {
		data = append(data, []string{
			strconv.Itoa(e.Hand),
			e.Result.String(),
			e.Snapshot.Player,
			e.Snapshot.Dealer,
			fmt.Sprintf("%.2f", e.Bet),
			fmt.Sprintf("%.2f", e.Bankroll),
			fmt.Sprintf("%+.2f", e.Profit),
			strconv.Itoa(e.StreakLosses),
		})
	}

	pterm.DefaultSection.Println("Hand History")
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func renderTrialSummary(cfg martingale.Config, summary *entities.TrialSummary) {
	pterm.DefaultSection.Println("Summary")
	pterm.Info.Printfln("Hands played: %d", summary.HandsPlayed)
	pterm.Info.Printfln("Final bankroll: %.2f (started at %.2f)", summary.FinalBankroll, cfg.StartBankroll)
	pterm.Info.Printfln("Total profit: %+.2f", summary.Profit)
	pterm.Info.Printfln("Max loss streak: %d", summary.MaxLossStreak)

	if summary.Bust {
		pterm.Error.Println("Trial ended in BUST: the required bet exceeded the bankroll")
	} else if summary.Won {
		pterm.Success.Println("Trial ended in profit")
	}
}

func renderStats(stats montecarlo.Stats) {
	pterm.DefaultSection.Println("Monte Carlo Results")
	pterm.Info.Printfln("Iterations: %d", stats.Iterations)
	pterm.Info.Printfln("Win rate: %.1f%%  (%d trials)", stats.WinRate*100, stats.Wins)
	pterm.Info.Printfln("Bust rate: %.1f%%  (%d trials)", stats.BustRate*100, stats.Busts)
	pterm.Info.Printfln("Profit mean %.2f, median %.2f, stddev %.2f", stats.MeanProfit, stats.MedianProfit, stats.StdDevProfit)
	pterm.Info.Printfln("Profit range: %.2f to %.2f", stats.MinProfit, stats.MaxProfit)
	pterm.Info.Printfln("Avg final bankroll: %.2f", stats.AvgFinalBankroll)
	pterm.Info.Printfln("Avg hands played: %.1f", stats.AvgHandsPlayed)
	pterm.Info.Printfln("Max loss streak: %d (avg %.1f)", stats.MaxLossStreak, stats.AvgMaxLossStreak)
}

const histogramBins = 10

// renderHistogram prints the profit distribution across trials
func renderHistogram(summaries []*entities.TrialSummary) error {
	if len(summaries) < 2 {
		return nil
	}

	min, max := math.Inf(1), math.Inf(-1)
	for _, s := range summaries {
		min = math.Min(min, s.Profit)
		max = math.Max(max, s.Profit)
	}
	if min == max {
		return nil
	}

	width := (max - min) / histogramBins
	counts := make([]int, histogramBins)
	for _, s := range summaries {
		bin := int((s.Profit - min) / width)
		if bin >= histogramBins {
			bin = histogramBins - 1
		}
		counts[bin]++
	}

	bars := make(pterm.Bars, 0, histogramBins)
	for i, count := range counts {
		bars = append(bars, pterm.Bar{
			Label: fmt.Sprintf("%.0f to %.0f", min+float64(i)*width, min+float64(i+1)*width),
			Value: count,
		})
	}

	pterm.DefaultSection.Println("Profit Distribution")
	return pterm.DefaultBarChart.WithHorizontal().WithShowValue().WithBars(bars).Render()
}

// renderSummaries prints up to limit per-trial rows
func renderSummaries(summaries []*entities.TrialSummary, limit int) error {
	if limit == 0 {
		return nil
	}
	if limit < 0 || limit > len(summaries) {
		limit = len(summaries)
	}

	data := pterm.TableData{
		{"Iteration", "Bust", "Won", "Final Bankroll", "Profit", "Hands", "Max Streak"},
	}
	for _, s := range summaries[:limit] {
		data = append(data, []string{
			strconv.Itoa(s.Iteration),
			strconv.FormatBool(s.Bust),
			strconv.FormatBool(s.Won),
			fmt.Sprintf("%.2f", s.FinalBankroll),
			fmt.Sprintf("%+.2f", s.Profit),
			strconv.Itoa(s.HandsPlayed),
			strconv.Itoa(s.MaxLossStreak),
		})
	}

	pterm.DefaultSection.Printfln("Trials (first %d)", limit)
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
