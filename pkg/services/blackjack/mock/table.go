package mock

import (
	"github.com/stretchr/testify/mock"

	"github.com/fadedpez/martingale/pkg/services/blackjack"
)

// Table is a mock implementation of martingale.HandPlayer
type Table struct {
	mock.Mock
}

func New() *Table {
	return &Table{}
}

func (t *Table) PlayHand(bet float64) blackjack.Outcome {
	args := t.Called(bet)
	return args.Get(0).(blackjack.Outcome)
}
