package camel

import "slices"

// Compare returns -1 if a is weaker than b under r, +1 if it is stronger
// and 0 if the two hands are indistinguishable.
func Compare(a, b Hand, r Rules) int {
	if c := Classify(a, r).Compare(Classify(b, r)); c != 0 {
		return c
	}
	return compareCards(a, b, r)
}

// compareCards breaks ties position by position in dealt order.
func compareCards(a, b Hand, r Rules) int {
	for i := 0; i < HandSize; i++ {
		sa, sb := Strength(a.Cards[i], r), Strength(b.Cards[i], r)
		if sa < sb {
			return -1
		}
		if sa > sb {
			return 1
		}
	}
	return 0
}

// Sort returns a copy of hands ordered weakest first under r.
// Equal hands keep their input order.
func Sort(hands []Hand, r Rules) []Hand {
	type keyed struct {
		hand Hand
		sig  Signature
	}
	ks := make([]keyed, len(hands))
	for i, h := range hands {
		ks[i] = keyed{hand: h, sig: Classify(h, r)}
	}
	slices.SortStableFunc(ks, func(a, b keyed) int {
		if c := a.sig.Compare(b.sig); c != 0 {
			return c
		}
		return compareCards(a.hand, b.hand, r)
	})

	sorted := make([]Hand, len(ks))
	for i, k := range ks {
		sorted[i] = k.hand
	}
	return sorted
}
