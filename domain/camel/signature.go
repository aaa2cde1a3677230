package camel

import "slices"

// Signature describes how the cards of a hand group together.
// Groups is the number of distinct groups once wildcards have joined the
// largest one, Largest is the size of that group.
type Signature struct {
	Groups  int
	Largest int
}

// Category is the named hand type, weakest first.
type Category int

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

func (c Category) String() string {
	switch c {
	case HighCard:
		return "high card"
	case OnePair:
		return "one pair"
	case TwoPair:
		return "two pair"
	case ThreeOfAKind:
		return "three of a kind"
	case FullHouse:
		return "full house"
	case FourOfAKind:
		return "four of a kind"
	case FiveOfAKind:
		return "five of a kind"
	default:
		return "unknown"
	}
}

// Classify computes the signature of h under r.
// Wildcards always join the single largest natural group, which never
// yields a weaker hand than spreading them out.
func Classify(h Hand, r Rules) Signature {
	sorted := h.Cards
	slices.Sort(sorted[:])

	wild := 0
	for _, c := range sorted {
		if c.IsWildcard(r) {
			wild++
		}
	}
	if wild == HandSize {
		return Signature{Groups: 1, Largest: HandSize}
	}

	dup, maxRun := 0, 0
	for i := 0; i < HandSize; {
		if sorted[i].IsWildcard(r) {
			i++
			continue
		}
		j := i + 1
		for j < HandSize && sorted[j] == sorted[i] {
			j++
		}
		run := j - i
		dup += run - 1
		maxRun = max(maxRun, run)
		i = j
	}
	return Signature{Groups: HandSize - dup - wild, Largest: maxRun + wild}
}

// Compare orders signatures: fewer groups is stronger, then a larger
// largest group is stronger.
func (s Signature) Compare(o Signature) int {
	switch {
	case s.Groups < o.Groups:
		return 1
	case s.Groups > o.Groups:
		return -1
	case s.Largest > o.Largest:
		return 1
	case s.Largest < o.Largest:
		return -1
	default:
		return 0
	}
}

// Category names the hand type of s.
func (s Signature) Category() Category {
	switch {
	case s.Largest == 5:
		return FiveOfAKind
	case s.Largest == 4:
		return FourOfAKind
	case s.Largest == 3 && s.Groups == 2:
		return FullHouse
	case s.Largest == 3:
		return ThreeOfAKind
	case s.Largest == 2 && s.Groups == 3:
		return TwoPair
	case s.Largest == 2:
		return OnePair
	default:
		return HighCard
	}
}
