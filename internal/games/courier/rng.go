package courier

import (
	"errors"
	"math/rand"
)

// errCandidatesExhausted is returned by randExcludingSet when the exclusion
// set covers the entire candidate range. Callers must size the range so this
// cannot happen in normal play.
var errCandidatesExhausted = errors.New("courier: candidate range exhausted by exclusions")

// randBetween returns a uniform integer in [min, max).
func randBetween(rng *rand.Rand, min, max int) int {
	return min + rng.Intn(max-min)
}

// randBetweenInclusive returns a uniform integer in [min, max].
func randBetweenInclusive(rng *rand.Rand, min, max int) int {
	return min + rng.Intn(max-min+1)
}

// randExcluding returns an integer in [min, max) avoiding excluded.
// On collision the value is nudged by one toward min (or away from it when
// already at min), so the result is near-uniform but never equals excluded.
func randExcluding(rng *rand.Rand, min, max, excluded int) int {
	v := randBetween(rng, min, max)
	if v == excluded {
		if v > min {
			v--
		} else {
			v++
		}
	}
	return v
}

// randExcludingSet returns a uniform integer in [min, max] that is not in
// excluded. Returns errCandidatesExhausted if no candidate remains.
func randExcludingSet(rng *rand.Rand, min, max int, excluded map[int]bool) (int, error) {
	candidates := make([]int, 0, max-min+1)
	for v := min; v <= max; v++ {
		if !excluded[v] {
			candidates = append(candidates, v)
		}
	}
	if len(candidates) == 0 {
		return 0, errCandidatesExhausted
	}
	return candidates[rng.Intn(len(candidates))], nil
}
