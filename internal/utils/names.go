package utils

import "strings"

// NormalizeName canonicalizes a reference-data name before submission: the
// input is trimmed, collapsed on whitespace, and each word is Title Cased
// (first letter upper, rest lower). Normalizing an already-normalized name
// returns the same string.
func NormalizeName(name string) string {
	words := strings.Fields(name)
	for i, word := range words {
		runes := []rune(strings.ToLower(word))
		if len(runes) > 0 {
			runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
		}
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
