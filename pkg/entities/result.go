package entities

// Result represents the outcome of a single hand from the tracked
// seat's point of view. ResultBust is not a hand outcome: it is the
// terminal ledger state reached when the progression demands a bet
// the bankroll can no longer cover.
type Result string

const (
	ResultWin  Result = "win"
	ResultLose Result = "lose"
	ResultPush Result = "push"
	ResultBust Result = "BUST"
)

// String returns the string representation of the result
func (r Result) String() string {
	return string(r)
}

// IsTerminal returns true if this result ends a trial
func (r Result) IsTerminal() bool {
	return r == ResultBust
}

// HandSnapshot captures both hands of a resolved deal, rendered and
// valued, for the ledger and for downstream display.
type HandSnapshot struct {
	Player      string `json:"player_hand"`
	Dealer      string `json:"dealer_hand"`
	PlayerValue int    `json:"player_value"`
	DealerValue int    `json:"dealer_value"`
}

// LedgerEntry is one row of a trial's hand-by-hand ledger. A BUST
// entry carries an empty snapshot and records the bet the bankroll
// could not cover.
type LedgerEntry struct {
	Hand         int          `json:"hand"`
	Result       Result       `json:"result"`
	Snapshot     HandSnapshot `json:"snapshot"`
	Bet          float64      `json:"bet"`
	Bankroll     float64      `json:"bankroll"`
	Profit       float64      `json:"profit"`
	StreakLosses int          `json:"streak_losses"`
}

// TrialSummary condenses one trial's ledger for aggregate analysis.
type TrialSummary struct {
	Iteration     int     `json:"iteration"`
	Bust          bool    `json:"bust"`
	Won           bool    `json:"won"`
	FinalBankroll float64 `json:"final_bankroll"`
	Profit        float64 `json:"profit"`
	HandsPlayed   int     `json:"hands_played"`
	MaxLossStreak int     `json:"max_loss_streak"`
}

// TrajectoryPoint is one sample of a trial's bankroll curve.
type TrajectoryPoint struct {
	Hand     int     `json:"hand"`
	Bankroll float64 `json:"bankroll"`
}

// Trajectory extracts the bankroll-by-hand curve from a ledger.
func Trajectory(ledger []*LedgerEntry) []TrajectoryPoint {
	points := make([]TrajectoryPoint, 0, len(ledger))
	for _, e := range ledger {
		points = append(points, TrajectoryPoint{Hand: e.Hand, Bankroll: e.Bankroll})
	}
	return points
}
