package wyckoff

import "sort"

// CheckCompatible decides whether counts (one per species, already scaled
// to the conventional cell) can in principle be packed into g's Wyckoff
// positions, per spec §4.3: every count must be divisible by the group's
// smallest multiplicity; counts are then greedily covered by WP
// multiplicities starting from the smallest, with zero-rotational-
// freedom (single fixed point) positions usable at most once across the
// whole structure; and at least one position used anywhere must have
// rotational freedom, or the structure has zero degrees of freedom.
func CheckCompatible(g Group, counts []int) (compatible bool, hasFreedom bool) {
	if len(g.Positions) == 0 {
		return false, false
	}
	positions := make([]Position, len(g.Positions))
	copy(positions, g.Positions)
	sort.Slice(positions, func(i, j int) bool {
		return positions[i].Multiplicity() < positions[j].Multiplicity()
	})

	smallest := positions[0].Multiplicity()
	for _, c := range counts {
		if c%smallest != 0 {
			return false, false
		}
	}

	uniqueAvailable := make([]bool, len(positions))
	for i := range uniqueAvailable {
		uniqueAvailable[i] = true
	}

	anyFreedomUsed := false
	for _, c := range counts {
		remaining := c
		for remaining > 0 {
			placed := false
			for i, p := range positions {
				if p.Multiplicity() > remaining {
					continue
				}
				if !p.HasRotationalFreedom() {
					if !uniqueAvailable[i] {
						continue
					}
					uniqueAvailable[i] = false
				} else {
					anyFreedomUsed = true
				}
				remaining -= p.Multiplicity()
				placed = true
				break
			}
			if !placed {
				return false, false
			}
		}
	}
	return true, anyFreedomUsed
}
