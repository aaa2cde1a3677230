package camel

// Ranked is a hand placed in the final ordering of one rule mode.
type Ranked struct {
	Hand      Hand
	Signature Signature
	Rank      int
	Winnings  int64
}

// Result holds the total winnings of both rule modes.
type Result struct {
	Standard int64
	Jokers   int64
}

// Winnings sums rank*bid over hands already sorted weakest first.
func Winnings(sorted []Hand) int64 {
	var total int64
	for i, h := range sorted {
		total += int64(i+1) * h.Bid
	}
	return total
}

// Score ranks hands under r and returns their total winnings.
func Score(hands []Hand, r Rules) int64 {
	return Winnings(Sort(hands, r))
}

// Rank returns every hand with its rank and winnings under r, weakest first.
func Rank(hands []Hand, r Rules) []Ranked {
	sorted := Sort(hands, r)
	ranked := make([]Ranked, len(sorted))
	for i, h := range sorted {
		ranked[i] = Ranked{
			Hand:      h,
			Signature: Classify(h, r),
			Rank:      i + 1,
			Winnings:  int64(i+1) * h.Bid,
		}
	}
	return ranked
}

// Solve scores the same hands under Standard and then Jokers rules.
func Solve(hands []Hand) Result {
	return Result{
		Standard: Score(hands, Standard),
		Jokers:   Score(hands, Jokers),
	}
}
