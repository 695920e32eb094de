package blackjack

import (
	"math/rand"

	"github.com/fadedpez/martingale/pkg/entities"
)

const (
	// ReshuffleThreshold is the remaining-card count below which a
	// draw rebuilds and reshuffles the full shoe first
	ReshuffleThreshold = 15

	// MaxDecks is the largest shoe a table will run
	MaxDecks = 8
)

// Shoe is a shuffled multi-deck pool of cards. It owns its random
// generator, seeded at construction, so a full simulation is
// reproducible from the seed alone and concurrent trials never share
// randomness state.
type Shoe struct {
	numDecks int
	rng      *rand.Rand
	cards    []*entities.Card
}

// NewShoe creates a shoe of numDecks shuffled 52-card decks seeded
// with the given seed.
func NewShoe(numDecks int, seed int64) *Shoe {
	return NewShoeWithRand(numDecks, rand.New(rand.NewSource(seed)))
}

// NewShoeWithRand creates a shoe using an externally owned generator.
func NewShoeWithRand(numDecks int, rng *rand.Rand) *Shoe {
	s := &Shoe{
		numDecks: numDecks,
		rng:      rng,
	}
	s.Reshuffle()
	return s
}

// Reshuffle rebuilds the full multi-deck pool and shuffles it,
// discarding whatever remained. Cards already dealt into in-progress
// hands are not returned to the pool; they simply reappear in the
// rebuilt one.
func (s *Shoe) Reshuffle() {
	cards := make([]*entities.Card, 0, 52*s.numDecks)
	for i := 0; i < s.numDecks; i++ {
		cards = append(cards, entities.NewDeck().Cards...)
	}

	s.rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	s.cards = cards
}

// Draw removes and returns the top card. When fewer than
// ReshuffleThreshold cards remain it reshuffles first, so Draw never
// fails and the shoe never runs dry. The reshuffle is part of the
// contract: tests may assert its timing via Remaining.
func (s *Shoe) Draw() *entities.Card {
	if len(s.cards) < ReshuffleThreshold {
		s.Reshuffle()
	}

	card := s.cards[0]
	s.cards = s.cards[1:]
	return card
}

// Remaining returns the number of cards left before the next reshuffle
func (s *Shoe) Remaining() int {
	return len(s.cards)
}

// NumDecks returns the deck count the shoe was built with
func (s *Shoe) NumDecks() int {
	return s.numDecks
}
