package entities

// Suit represents a card suit

type Suit string

const (
	Spades   Suit = "♠"
	Hearts   Suit = "♥"
	Diamonds Suit = "♦"
	Clubs    Suit = "♣"
)

// Rank represents a card rank

type Rank string

const (
	Two   Rank = "2"
	Three Rank = "3"
	Four  Rank = "4"
	Five  Rank = "5"
	Six   Rank = "6"
	Seven Rank = "7"
	Eight Rank = "8"
	Nine  Rank = "9"
	Ten   Rank = "10"
	Jack  Rank = "J"
	Queen Rank = "Q"
	King  Rank = "K"
	Ace   Rank = "A"
)

// Suits lists every suit in deck-building order
var Suits = []Suit{Spades, Hearts, Diamonds, Clubs}

// Ranks lists every rank in deck-building order
var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// Card represents a playing card. Suits are flavor only; every
// valuation rule depends on the rank alone.

type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new card

func NewCard(rank Rank, suit Suit) *Card {
	return &Card{
		Rank: rank,
		Suit: suit,
	}
}

// String returns the compact representation of the card, e.g. "A♠"

func (c *Card) String() string {
	return string(c.Rank) + string(c.Suit)
}
