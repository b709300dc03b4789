package seating

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShuffleIsPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, n := range []int{1, 2, 3, 7, 24, 30} {
		seats, err := Shuffle(n, rng)
		require.NoError(t, err)
		require.Len(t, seats, n)

		seen := make(map[int]bool, n)
		for _, s := range seats {
			assert.GreaterOrEqual(t, s, 1)
			assert.LessOrEqual(t, s, n)
			assert.False(t, seen[s], "seat %d appeared twice", s)
			seen[s] = true
		}
	}
}

func TestShuffleRejectsNonPositiveCount(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, n := range []int{0, -1, -24} {
		_, err := Shuffle(n, rng)
		assert.Error(t, err)
	}
}

func TestShuffleDeterministicUnderFixedSource(t *testing.T) {
	a, err := Shuffle(10, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	b, err := Shuffle(10, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestDesksPairsConsecutiveSeats(t *testing.T) {
	desks := Desks([]int{4, 1, 3, 2, 5})

	require.Len(t, desks, 3)
	assert.Equal(t, Desk{Left: 4, Right: 1}, desks[0])
	assert.Equal(t, Desk{Left: 3, Right: 2}, desks[1])
	// odd tail seat has no partner
	assert.Equal(t, Desk{Left: 5}, desks[2])
}
