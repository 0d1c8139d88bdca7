// internal/words/words.go
//
// Word list management for the game engine.
//
// Responsibilities:
//   - Load solution and accepted-guess lists from files named in the config,
//     or fall back to the lists embedded in the assets package.
//   - Maintain sets for quick lookups (answers, answers ∪ guesses, and the
//     diacritic-free form of every accepted word).
//   - Supply RandomAnswer for practice mode.
//
// Word Lists:
//   - "answers": possible solutions.
//   - "allowed": extra valid guesses (answers are always accepted).
//
// Load behavior:
//  1. If both files are set, load answers from the first and guesses from the second.
//  2. If only the allowed file is set, use it for both.
//  3. Otherwise use the embedded defaults.

package words

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/robalobadob/wordle-cz/assets"
	"github.com/robalobadob/wordle-cz/internal/game"
)

// Dictionary is an immutable set of fixed-length words.
type Dictionary struct {
	length       int
	answers      []string
	accepted     map[string]struct{} // answers ∪ guesses
	acceptedBase map[string]struct{} // diacritic-free forms of accepted
}

// New builds a Dictionary of words with length letters.
// Every answer must be a valid word; invalid extra guesses are skipped.
func New(length int, answers, allowed []string) (*Dictionary, error) {
	if length < 1 {
		return nil, fmt.Errorf("words: invalid length %d", length)
	}
	answers = lo.Uniq(lo.Map(answers, func(w string, _ int) string { return game.NormalizeWord(w) }))
	if len(answers) == 0 {
		return nil, errors.New("words: answers list is empty")
	}
	for _, w := range answers {
		if !game.IsWord(w, length) {
			return nil, fmt.Errorf("words: answer %q is not a %d-letter word", w, length)
		}
	}

	d := &Dictionary{
		length:       length,
		answers:      answers,
		accepted:     toSet(answers),
		acceptedBase: make(map[string]struct{}),
	}
	for _, w := range allowed {
		w = game.NormalizeWord(w)
		if !game.IsWord(w, length) {
			log.Warn().Str("word", w).Int("length", length).Msg("skipping invalid accepted word")
			continue
		}
		d.accepted[w] = struct{}{}
	}
	for w := range d.accepted {
		d.acceptedBase[game.BaseWord(w)] = struct{}{}
	}
	return d, nil
}

// Load reads the lists named by answersPath / allowedPath, falling back to
// the embedded assets when they are empty.
func Load(length int, answersPath, allowedPath string) (*Dictionary, error) {
	var ansList, allowList []string
	var err error

	switch {
	case answersPath != "" && allowedPath != "":
		if ansList, err = readWordFile(answersPath); err != nil {
			return nil, err
		}
		if allowList, err = readWordFile(allowedPath); err != nil {
			return nil, err
		}

	case allowedPath != "":
		if allowList, err = readWordFile(allowedPath); err != nil {
			return nil, err
		}
		ansList = allowList

	default:
		if ansList, err = assets.AnswersList(); err != nil {
			return nil, fmt.Errorf("words: embedded answers: %w", err)
		}
		if allowList, err = assets.AllowedList(); err != nil {
			return nil, fmt.Errorf("words: embedded allowed: %w", err)
		}
	}
	return New(length, ansList, allowList)
}

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: %w", err)
	}
	defer f.Close()
	return assets.ReadLines(f)
}

// toSet converts a list of strings into a lookup set.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// Length is the number of letters per word.
func (d *Dictionary) Length() int { return d.length }

// Accepts reports whether word may be submitted: either it is accepted
// literally, or its diacritic-free form matches that of an accepted word.
func (d *Dictionary) Accepts(word string) bool {
	word = game.NormalizeWord(word)
	if _, ok := d.accepted[word]; ok {
		return true
	}
	_, ok := d.acceptedBase[game.BaseWord(word)]
	return ok
}

// Answers returns the solution list in file order.
func (d *Dictionary) Answers() []string { return d.answers }

// RandomAnswer returns a uniformly random answer.
func (d *Dictionary) RandomAnswer() string {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(d.answers))))
	if err != nil {
		log.Warn().Err(err).Msg("random answer, using first")
		return d.answers[0]
	}
	return d.answers[n.Int64()]
}

// Stats returns counts of loaded words: (answers, accepted).
func (d *Dictionary) Stats() (answersCount int, acceptedCount int) {
	return len(d.answers), len(d.accepted)
}
