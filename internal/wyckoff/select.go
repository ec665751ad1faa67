package wyckoff

import "math/rand"

// ChooseWyckoff implements choose_wyckoff: with probability 1/2 it picks
// the first (highest-multiplicity) group in organized whose multiplicity
// is at most remaining and samples uniformly within that group
// (fill-large-first); otherwise it samples uniformly among every
// position across all groups with multiplicity at most remaining
// (diversify). organized must be ordered highest-to-lowest multiplicity,
// e.g. Group.OrganizedByMultiplicity(). Returns ok=false if nothing
// fits.
func ChooseWyckoff(rng *rand.Rand, organized [][]Position, remaining int) (Position, bool) {
	if rng.Float64() < 0.5 {
		for _, group := range organized {
			if group[0].Multiplicity() <= remaining {
				return group[rng.Intn(len(group))], true
			}
		}
		return Position{}, false
	}

	var pool []Position
	for _, group := range organized {
		if group[0].Multiplicity() <= remaining {
			pool = append(pool, group...)
		}
	}
	if len(pool) == 0 {
		return Position{}, false
	}
	return pool[rng.Intn(len(pool))], true
}
