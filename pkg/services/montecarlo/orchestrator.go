package montecarlo

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/fadedpez/martingale/internal/types"
	"github.com/fadedpez/martingale/pkg/entities"
	"github.com/fadedpez/martingale/pkg/services/blackjack"
	"github.com/fadedpez/martingale/pkg/services/martingale"
)

// TrajectorySampleSize is how many leading trials keep their full
// bankroll curve for downstream visualization
const TrajectorySampleSize = 10

// Result bundles everything one Monte Carlo run produces.
type Result struct {
	Summaries    []*entities.TrialSummary     `json:"summaries"`
	Trajectories [][]entities.TrajectoryPoint `json:"trajectories"`
	Stats        Stats                        `json:"stats"`
}

// Orchestrator fans independent trials out across workers. Trials
// share no mutable state: each gets its own derived seed and a fresh
// shoe, so scheduling order never changes any outcome.
type Orchestrator struct {
	workers int
}

// NewOrchestrator creates an orchestrator running up to workers trials
// at once. A non-positive value uses one worker per CPU.
func NewOrchestrator(workers int) *Orchestrator {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	return &Orchestrator{workers: workers}
}

// Run executes iterations independent trials of cfg. Trial i runs with
// seed baseSeed+i, making the whole run reproducible from baseSeed
// while keeping trials distinct. Results are addressed by trial index,
// not completion order, so output is identical however many workers
// run.
func (o *Orchestrator) Run(cfg martingale.Config, iterations int, baseSeed int64) (*Result, error) {
	if iterations < 1 {
		return nil, types.NewSimError(types.ErrInvalidIterations,
			fmt.Sprintf("iteration count must be at least 1, got %d", iterations))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	sampled := iterations
	if sampled > TrajectorySampleSize {
		sampled = TrajectorySampleSize
	}

	summaries := make([]*entities.TrialSummary, iterations)
	trajectories := make([][]entities.TrajectoryPoint, sampled)

	sem := make(chan struct{}, o.workers)
	var wg sync.WaitGroup

	for i := 0; i < iterations; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			trialCfg := cfg
			trialCfg.Seed = baseSeed + int64(i)

			// Fresh shoe per trial; nothing carries over
			shoe := blackjack.NewShoe(trialCfg.NumDecks, trialCfg.Seed)
			table := blackjack.NewTable(shoe, trialCfg.NumPlayers, trialCfg.DealerHitsSoft17)
			ledger := martingale.Run(trialCfg, table)

			summaries[i] = Summarize(i+1, trialCfg, ledger)
			if i < sampled {
				trajectories[i] = entities.Trajectory(ledger)
			}
		}(i)
	}
	wg.Wait()

	return &Result{
		Summaries:    summaries,
		Trajectories: trajectories,
		Stats:        ComputeStats(summaries),
	}, nil
}

// Summarize condenses one trial's ledger into a TrialSummary. A trial
// counts as won when it neither busted nor ended below its starting
// bankroll.
func Summarize(iteration int, cfg martingale.Config, ledger []*entities.LedgerEntry) *entities.TrialSummary {
	finalBankroll := cfg.StartBankroll
	bust := false
	maxStreak := 0

	for _, entry := range ledger {
		if entry.StreakLosses > maxStreak {
			maxStreak = entry.StreakLosses
		}
	}
	if len(ledger) > 0 {
		last := ledger[len(ledger)-1]
		finalBankroll = last.Bankroll
		bust = last.Result == entities.ResultBust
	}

	profit := finalBankroll - cfg.StartBankroll

	return &entities.TrialSummary{
		Iteration:     iteration,
		Bust:          bust,
		Won:           !bust && profit >= 0,
		FinalBankroll: finalBankroll,
		Profit:        profit,
		HandsPlayed:   len(ledger),
		MaxLossStreak: maxStreak,
	}
}
