package blackjack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShoe(t *testing.T) {
	shoe := NewShoe(6, 42)

	assert.Equal(t, 6, shoe.NumDecks())
	assert.Equal(t, 52*6, shoe.Remaining())
}

func TestShoeDeterminism(t *testing.T) {
	a := NewShoe(6, 42)
	b := NewShoe(6, 42)

	for i := 0; i < 400; i++ {
		assert.Equal(t, a.Draw().String(), b.Draw().String(), "draw %d diverged", i)
	}

	c := NewShoe(6, 43)
	diverged := false
	a = NewShoe(6, 42)
	for i := 0; i < 52; i++ {
		if a.Draw().String() != c.Draw().String() {
			diverged = true
			break
		}
	}
	assert.True(t, diverged, "different seeds should produce different shuffles")
}

func TestShoeReshuffleTiming(t *testing.T) {
	shoe := NewShoe(1, 7)

	// Draw down to exactly the threshold; no reshuffle happens yet
	for shoe.Remaining() > ReshuffleThreshold {
		require.NotNil(t, shoe.Draw())
	}
	assert.Equal(t, ReshuffleThreshold, shoe.Remaining())

	// The next draw still comes from the current pool
	require.NotNil(t, shoe.Draw())
	assert.Equal(t, ReshuffleThreshold-1, shoe.Remaining())

	// Now below the threshold: the following draw reshuffles the
	// full deck first, then serves one card
	require.NotNil(t, shoe.Draw())
	assert.Equal(t, 52-1, shoe.Remaining())
}

func TestShoeNeverRunsDry(t *testing.T) {
	shoe := NewShoe(1, 99)

	for i := 0; i < 1000; i++ {
		require.NotNil(t, shoe.Draw())
		assert.GreaterOrEqual(t, shoe.Remaining(), ReshuffleThreshold-1)
	}
}
