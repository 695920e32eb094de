package results

import (
	"time"

	"github.com/fadedpez/martingale/pkg/services/martingale"
	"github.com/fadedpez/martingale/pkg/services/montecarlo"
)

// Run is one completed Monte Carlo run with the configuration that
// produced it, so any run can be reproduced from its record alone.
type Run struct {
	ID         string             `json:"id"`
	CreatedAt  time.Time          `json:"created_at"`
	Config     martingale.Config  `json:"config"`
	Iterations int                `json:"iterations"`
	BaseSeed   int64              `json:"base_seed"`
	Result     *montecarlo.Result `json:"result"`
}
