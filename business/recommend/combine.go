package recommend

// normalize min-max scales a score map into [0, 1] in place of a copy.
// When every value is equal the map is passed through unchanged; an all-equal
// signal contributes a constant, never a division by zero.
func normalize(scores map[uint64]float64) map[uint64]float64 {
	if len(scores) == 0 {
		return map[uint64]float64{}
	}

	first := true
	var min, max float64
	for _, v := range scores {
		if first {
			min, max = v, v
			first = false
			continue
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	out := make(map[uint64]float64, len(scores))
	if max == min {
		for id, v := range scores {
			out[id] = v
		}
		return out
	}

	span := max - min
	for id, v := range scores {
		out[id] = (v - min) / span
	}
	return out
}

type signal struct {
	weight float64
	scores map[uint64]float64
}

// combine normalizes each signal independently and blends them over the union
// of all keys. An event absent from a signal contributes 0 to that signal's
// weighted term, mirroring label-aligned addition with zero fill.
func combine(signals ...signal) map[uint64]float64 {
	combined := make(map[uint64]float64)

	for _, sig := range signals {
		if sig.weight == 0 || len(sig.scores) == 0 {
			continue
		}
		for id, v := range normalize(sig.scores) {
			combined[id] += sig.weight * v
		}
	}

	return combined
}
