package cipher

import (
	"slices"
	"strings"
	"unicode"

	"github.com/mcoot/dailypuzzles/internal/dependencies/random"
	"github.com/mcoot/dailypuzzles/internal/model"
)

// Alphabet is the set of letters the cipher substitutes
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// maxShuffleAttempts bounds the search for a derangement before the
// neighbour-swap repair takes over
const maxShuffleAttempts = 100

// GenerateMapping returns a derangement of the alphabet driven by seed.
// The alphabet is reshuffled with a single generator until no letter maps to
// itself; if that never happens, each fixed point is swapped with its
// right-hand neighbour.
func GenerateMapping(seed int64) model.CipherMapping {
	letters := []rune(Alphabet)
	rng := random.NewLCG(seed)

	var shuffled []rune
	for attempt := 0; attempt < maxShuffleAttempts; attempt++ {
		shuffled = random.Shuffle(rng, letters)
		if isDerangement(letters, shuffled) {
			break
		}
	}

	for i := range shuffled {
		if shuffled[i] == letters[i] {
			j := (i + 1) % len(shuffled)
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		}
	}

	mapping := make(model.CipherMapping, len(letters))
	for i, l := range letters {
		mapping[l] = shuffled[i]
	}
	return mapping
}

func isDerangement(letters, shuffled []rune) bool {
	for i := range letters {
		if letters[i] == shuffled[i] {
			return false
		}
	}
	return true
}

func isLetter(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// Encode uppercases phrase and substitutes every letter through mapping.
// Anything that is not A-Z passes through unchanged.
func Encode(phrase string, mapping model.CipherMapping) string {
	return substitute(phrase, mapping)
}

// Decode reverses Encode
func Decode(encoded string, mapping model.CipherMapping) string {
	return substitute(encoded, Invert(mapping))
}

// Invert returns the cipher letter → plain letter mapping
func Invert(mapping model.CipherMapping) model.CipherMapping {
	inverse := make(model.CipherMapping, len(mapping))
	for plain, c := range mapping {
		inverse[c] = plain
	}
	return inverse
}

func substitute(text string, mapping model.CipherMapping) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(text) {
		if isLetter(r) {
			if m, ok := mapping[r]; ok {
				b.WriteRune(m)
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ValidateSolution decodes encoded with the player's guesses (cipher letter →
// plain letter) and reports whether it reproduces original exactly. Letters
// with no guess decode to nothing, so an incomplete solution never matches.
func ValidateSolution(encoded, original string, guesses map[rune]rune) bool {
	return substitute(encoded, guesses) == strings.ToUpper(original)
}

// CheckForConflict returns the cipher letter, other than cipherLetter, that is
// already assigned plainLetter. If several are (which a well-behaved client
// never allows), the alphabetically first is returned.
func CheckForConflict(guesses map[rune]rune, cipherLetter, plainLetter rune) (rune, bool) {
	cipherLetter = unicode.ToUpper(cipherLetter)
	plainLetter = unicode.ToUpper(plainLetter)

	var conflicts []rune
	for c, p := range guesses {
		if p == plainLetter && c != cipherLetter {
			conflicts = append(conflicts, c)
		}
	}
	if len(conflicts) == 0 {
		return 0, false
	}
	return slices.Min(conflicts), true
}

// Assign returns a copy of guesses with cipherLetter set to plainLetter. Any
// other cipher letter holding plainLetter loses it, keeping guesses
// one-to-one. A zero plainLetter clears the assignment.
func Assign(guesses map[rune]rune, cipherLetter, plainLetter rune) map[rune]rune {
	cipherLetter = unicode.ToUpper(cipherLetter)
	plainLetter = unicode.ToUpper(plainLetter)

	out := make(map[rune]rune, len(guesses)+1)
	for c, p := range guesses {
		if plainLetter != 0 && p == plainLetter && c != cipherLetter {
			continue
		}
		out[c] = p
	}
	if plainLetter == 0 {
		delete(out, cipherLetter)
	} else {
		out[cipherLetter] = plainLetter
	}
	return out
}

// Guess is a single cipher → plain assignment made by a player
type Guess struct {
	Cipher rune
	Plain  rune
}

// GuessMapping builds a guess map from individual assignments, uppercasing
// both sides and skipping incomplete ones. Later assignments win.
func GuessMapping(assignments []Guess) map[rune]rune {
	out := make(map[rune]rune, len(assignments))
	for _, g := range assignments {
		if g.Cipher == 0 || g.Plain == 0 {
			continue
		}
		out[unicode.ToUpper(g.Cipher)] = unicode.ToUpper(g.Plain)
	}
	return out
}

// UniqueLetters returns the distinct letters of phrase in alphabetical order
func UniqueLetters(phrase string) []rune {
	seen := make(map[rune]bool)
	var out []rune
	for _, r := range strings.ToUpper(phrase) {
		if isLetter(r) && !seen[r] {
			seen[r] = true
			out = append(out, r)
		}
	}
	slices.Sort(out)
	return out
}

// LetterFrequency counts each letter of phrase
func LetterFrequency(phrase string) map[rune]int {
	freq := make(map[rune]int)
	for _, r := range strings.ToUpper(phrase) {
		if isLetter(r) {
			freq[r]++
		}
	}
	return freq
}
