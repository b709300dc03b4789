// Package seating assigns classroom seats by unbiased random permutation.
package seating

import (
	"fmt"
	"math/rand"
)

// Desk is one two-seat desk. Right is 0 when the last seat has no partner.
type Desk struct {
	Left  int `json:"left"`
	Right int `json:"right,omitempty"`
}

// Shuffle returns a Fisher-Yates permutation of 1..n drawn from rng.
func Shuffle(n int, rng *rand.Rand) ([]int, error) {
	if n <= 0 {
		return nil, fmt.Errorf("seat count must be positive, got %d", n)
	}
	seats := make([]int, n)
	for i := range seats {
		seats[i] = i + 1
	}
	for i := n - 1; i >= 1; i-- {
		j := rng.Intn(i + 1)
		seats[i], seats[j] = seats[j], seats[i]
	}
	return seats, nil
}

// Desks pairs consecutive seats in shuffled order.
func Desks(seats []int) []Desk {
	desks := make([]Desk, 0, (len(seats)+1)/2)
	for i := 0; i < len(seats); i += 2 {
		d := Desk{Left: seats[i]}
		if i+1 < len(seats) {
			d.Right = seats[i+1]
		}
		desks = append(desks, d)
	}
	return desks
}
