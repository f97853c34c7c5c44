package dealer

import (
	rand "math/rand/v2"

	"github.com/vxco/vegas/internal/deck"
)

// randomNonEmpty picks a uniformly random suit whose queue still has cards
func randomNonEmpty(rng *rand.Rand, queues *[deck.NumSuits][]deck.Card) int {
	var candidates [deck.NumSuits]int
	n := 0
	for s := range queues {
		if len(queues[s]) > 0 {
			candidates[n] = s
			n++
		}
	}
	return candidates[rng.IntN(n)]
}

func popBack(q *[]deck.Card) deck.Card {
	n := len(*q) - 1
	c := (*q)[n]
	*q = (*q)[:n]
	return c
}

func popFront(q *[]deck.Card) deck.Card {
	c := (*q)[0]
	*q = (*q)[1:]
	return c
}
