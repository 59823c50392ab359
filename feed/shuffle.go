package feed

import "time"

// DailySeed derives the shuffle seed from t's local calendar date, so every
// user sees the same order for the whole day and a new one after midnight.
func DailySeed(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}

// Shuffle returns a permutation of list that is fixed for a given seed.
// The generator is a small LCG; it is a presentation device, not a source
// of randomness for anything that matters. list is not modified.
func Shuffle[T any](list []T, seed int) []T {
	out := make([]T, len(list))
	copy(out, list)

	state := seed % lcgModulus
	if state < 0 {
		state += lcgModulus
	}
	for i := len(out) - 1; i > 0; i-- {
		state = (state*lcgMultiplier + lcgIncrement) % lcgModulus
		j := int(float64(state) / float64(lcgModulus) * float64(i+1))
		out[i], out[j] = out[j], out[i]
	}
	return out
}

const (
	lcgMultiplier = 9301
	lcgIncrement  = 49297
	lcgModulus    = 233280
)
