package entities

type Deck struct {
	Cards []*Card
}

// NewDeck creates a new deck of 52 cards, one of each rank and suit
func NewDeck() *Deck {
	cards := make([]*Card, 0, 52)

	for _, rank := range Ranks {
		for _, suit := range Suits {
			cards = append(cards, NewCard(rank, suit))
		}
	}

	return &Deck{Cards: cards}
}
