package dealer

import (
	rand "math/rand/v2"
	"sort"

	"github.com/vxco/vegas/internal/deck"
	"github.com/vxco/vegas/internal/game"
	"github.com/vxco/vegas/internal/randutil"
)

// basesPerSuit is how many low cards per suit are pulled aside as foundation
// bases before the tableau is built. The bases end up in the stock, so easier
// difficulties keep more of the early foundation plays drawable.
func basesPerSuit(d Difficulty) int {
	switch d {
	case Easy:
		return 3
	case Medium:
		return 2
	default:
		return 1
	}
}

// suitQueues splits a fresh deck into per-suit, rank-ascending queues
func suitQueues() [deck.NumSuits][]deck.Card {
	var queues [deck.NumSuits][]deck.Card
	for _, c := range deck.New() {
		queues[c.Suit] = append(queues[c.Suit], c)
	}
	return queues
}

func generateConstructive(opts Options) *game.Board {
	rng := randutil.New(opts.Seed)
	queues := suitQueues()

	// Reserve the foundation bases (aces upward) for the stock.
	var bases []deck.Card
	reserve := basesPerSuit(opts.Difficulty)
	for s := range queues {
		bases = append(bases, queues[s][:reserve]...)
		queues[s] = queues[s][reserve:]
	}

	// Hard deals maximise interference by destroying the rank ordering the
	// pickers below rely on.
	if opts.Difficulty == Hard {
		for s := range queues {
			randutil.Shuffle(rng, queues[s])
		}
	}

	b := &game.Board{}
	for i := 0; i < game.NumColumns; i++ {
		for j := 0; j < i; j++ {
			b.Tableau[i].Down = append(b.Tableau[i].Down, pickFaceDown(rng, &queues, opts.Difficulty))
		}
		b.Tableau[i].Up = append(b.Tableau[i].Up, pickFaceUp(rng, &queues, opts.Difficulty))
	}

	var leftover []deck.Card
	for s := range queues {
		leftover = append(leftover, queues[s]...)
	}
	b.Stock = arrangeStock(rng, leftover, bases, opts.Difficulty)
	return b
}

// pickFaceUp selects the visible card for a column. Easy prefers high ranks
// so the early tableau offers long building chains; Medium takes a random
// queue's tail; Hard takes from queues it already shuffled.
func pickFaceUp(rng *rand.Rand, queues *[deck.NumSuits][]deck.Card, d Difficulty) deck.Card {
	switch d {
	case Easy:
		best := -1
		for s := range queues {
			n := len(queues[s])
			if n == 0 {
				continue
			}
			if best < 0 || queues[s][n-1].Rank > queues[best][len(queues[best])-1].Rank {
				best = s
			}
		}
		return popBack(&queues[best])
	default:
		s := randomNonEmpty(rng, queues)
		return popBack(&queues[s])
	}
}

// pickFaceDown fills a buried slot. Easy buries high cards (they are needed
// last), Hard buries low cards, Medium mixes.
func pickFaceDown(rng *rand.Rand, queues *[deck.NumSuits][]deck.Card, d Difficulty) deck.Card {
	s := randomNonEmpty(rng, queues)
	switch d {
	case Easy:
		return popBack(&queues[s])
	case Hard:
		return popFront(&queues[s])
	default:
		if rng.IntN(2) == 0 {
			return popBack(&queues[s])
		}
		return popFront(&queues[s])
	}
}

// arrangeStock orders the remaining 24 cards. The slice tail is the next
// card drawn, so later elements surface earlier in play.
func arrangeStock(rng *rand.Rand, leftover, bases []deck.Card, d Difficulty) []deck.Card {
	switch d {
	case Easy:
		return arrangeStockEasy(leftover, bases)
	case Medium:
		return arrangeStockMedium(rng, leftover, bases)
	default:
		return arrangeStockHard(rng, leftover, bases)
	}
}

// arrangeStockEasy surfaces the reserved bases first, aces before twos, and
// the leftovers afterwards in ascending rank.
func arrangeStockEasy(leftover, bases []deck.Card) []deck.Card {
	byRankAsc := func(s []deck.Card) {
		sort.SliceStable(s, func(i, j int) bool { return s[i].Rank < s[j].Rank })
	}
	byRankAsc(bases)
	byRankAsc(leftover)

	// Draw order: bases (low first), then leftovers (low first). The stock
	// slice is the reverse of the draw order.
	draw := append(append([]deck.Card(nil), bases...), leftover...)
	stock := make([]deck.Card, 0, len(draw))
	for i := len(draw) - 1; i >= 0; i-- {
		stock = append(stock, draw[i])
	}
	return stock
}

// arrangeStockMedium chunks the cards into 4-card blocks and shuffles the
// block order, keeping local structure while scrambling the long-range one.
func arrangeStockMedium(rng *rand.Rand, leftover, bases []deck.Card) []deck.Card {
	cards := append(append([]deck.Card(nil), bases...), leftover...)
	var blocks [][]deck.Card
	for len(cards) > 0 {
		n := min(4, len(cards))
		blocks = append(blocks, cards[:n])
		cards = cards[n:]
	}
	randutil.Shuffle(rng, blocks)
	stock := make([]deck.Card, 0, 24)
	for _, blk := range blocks {
		stock = append(stock, blk...)
	}
	return stock
}

// arrangeStockHard partitions each suit's cards into maximal ascending-run
// phases, shuffles the phase order, and concatenates phase by phase with a
// few cross-suit displacements so no suit surfaces contiguously.
func arrangeStockHard(rng *rand.Rand, leftover, bases []deck.Card) []deck.Card {
	cards := append(append([]deck.Card(nil), bases...), leftover...)

	var perSuit [deck.NumSuits][]deck.Card
	for _, c := range cards {
		perSuit[c.Suit] = append(perSuit[c.Suit], c)
	}

	var phases [][]deck.Card
	for s := range perSuit {
		suit := perSuit[s]
		sort.Slice(suit, func(i, j int) bool { return suit[i].Rank < suit[j].Rank })
		start := 0
		for i := 1; i <= len(suit); i++ {
			if i == len(suit) || suit[i].Rank != suit[i-1].Rank+1 {
				phases = append(phases, suit[start:i])
				start = i
			}
		}
	}
	randutil.Shuffle(rng, phases)

	stock := make([]deck.Card, 0, len(cards))
	for _, ph := range phases {
		stock = append(stock, ph...)
	}

	// Cross-suit insertion: displace a handful of single cards.
	for i := 0; i < len(stock)/8; i++ {
		from := rng.IntN(len(stock))
		to := rng.IntN(len(stock))
		c := stock[from]
		stock = append(stock[:from], stock[from+1:]...)
		stock = append(stock[:to], append([]deck.Card{c}, stock[to:]...)...)
	}
	return stock
}
