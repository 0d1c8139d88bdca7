package game

import "fmt"

// slot is one solution letter that a guess letter may consume at most once.
type slot struct {
	letter rune
	base   rune
	used   bool
}

// Evaluate scores guess against solution.
//
// Pass 1 marks literal matches in place as exact.
// Pass 2 marks each remaining guess letter present if an unused solution
// slot elsewhere holds the same literal letter (first such slot, left to right).
// Pass 3 marks each remaining guess letter base if an unused slot holds a
// letter that differs only by diacritics.
// Anything left is absent. Every pass consumes the slot it matches, so a
// solution letter is never counted twice.
func Evaluate(guess, solution string) ([]Feedback, error) {
	g := []rune(guess)
	s := []rune(solution)
	if len(g) != len(s) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(g), len(s))
	}

	n := len(g)
	res := make([]Feedback, n)
	slots := make([]slot, n)
	for i, r := range s {
		slots[i] = slot{letter: r, base: Base(r)}
	}

	for i := 0; i < n; i++ {
		if g[i] == slots[i].letter {
			res[i] = FeedbackExact
			slots[i].used = true
		}
	}

	for i := 0; i < n; i++ {
		if res[i] != "" {
			continue
		}
		for j := range slots {
			if j != i && !slots[j].used && slots[j].letter == g[i] {
				res[i] = FeedbackPresent
				slots[j].used = true
				break
			}
		}
	}

	for i := 0; i < n; i++ {
		if res[i] != "" {
			continue
		}
		b := Base(g[i])
		for j := range slots {
			if !slots[j].used && slots[j].base == b && slots[j].letter != g[i] {
				res[i] = FeedbackBase
				slots[j].used = true
				break
			}
		}
	}

	for i := range res {
		if res[i] == "" {
			res[i] = FeedbackAbsent
		}
	}
	return res, nil
}

// allExact reports whether every feedback value is exact.
func allExact(fb []Feedback) bool {
	for _, f := range fb {
		if f != FeedbackExact {
			return false
		}
	}
	return len(fb) > 0
}
