package lexical

import "strings"

const vowels = "aeiou"

func isConsonant(b byte) bool {
	if b < 'a' || b > 'z' {
		return false
	}
	return !strings.ContainsRune(vowels, rune(b))
}

// VerbsMatch reports whether past is the correct past-participle form of the
// imperative present verb, under the English morphology rules Chef loops
// use to pair "Verb the x." with "...until verbed.":
//
//  1. Case-insensitive comparison.
//  2. If present ends in "e": past must equal present + "d".
//  3. Else if past ends in a doubled-consonant + "ed" (e.g. "stopped"): when
//     present itself already ends in a doubled consonant (e.g. "add"), past
//     equals present + "ed"; otherwise past equals present + consonant + "ed".
//  4. Otherwise past equals present + "ed".
func VerbsMatch(present, past string) bool {
	fst := strings.ToLower(present)
	snd := strings.ToLower(past)

	if strings.HasSuffix(fst, "e") {
		return strings.HasSuffix(snd, "d") && fst == snd[:len(snd)-1]
	}

	if isDoubledConsonantPast(snd) {
		if isDoubledConsonantPresent(fst) {
			return fst == snd[:len(snd)-2]
		}
		return fst == snd[:len(snd)-3]
	}

	return strings.HasSuffix(snd, "ed") && fst == snd[:len(snd)-2]
}

// isDoubledConsonantPresent reports whether s ends in two identical
// consonants, e.g. "add", "stop" (stop doesn't, but "add" does: dd).
func isDoubledConsonantPresent(s string) bool {
	if len(s) < 2 {
		return false
	}
	a, b := s[len(s)-2], s[len(s)-1]
	return a == b && isConsonant(a) && isConsonant(b)
}

// isDoubledConsonantPast reports whether s ends in a doubled consonant
// followed by "ed", e.g. "stopped", "added".
func isDoubledConsonantPast(s string) bool {
	if !strings.HasSuffix(s, "ed") || len(s) < 4 {
		return false
	}
	core := s[:len(s)-2]
	a, b := core[len(core)-2], core[len(core)-1]
	return a == b && isConsonant(a) && isConsonant(b)
}
