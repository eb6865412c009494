package rng

// Choice pairs a value with its relative weight.
type Choice[T any] struct {
	Value  T
	Weight float64
}

// Choose selects a value by cumulative weight. The first bucket whose
// cumulative weight exceeds the roll wins, so the order of choices is part
// of the determinism contract. Non-positive weights never win. ok is false
// when no choice carries weight.
func Choose[T any](r Random, choices []Choice[T]) (value T, ok bool) {
	total := 0.0
	for _, c := range choices {
		if c.Weight > 0 {
			total += c.Weight
		}
	}
	if total <= 0 {
		return value, false
	}

	roll := r.Next() * total
	cumulative := 0.0
	last := -1
	for i, c := range choices {
		if c.Weight <= 0 {
			continue
		}
		cumulative += c.Weight
		last = i
		if roll < cumulative {
			return c.Value, true
		}
	}

	// Rounding can leave roll == total; the last weighted bucket owns it.
	return choices[last].Value, true
}
