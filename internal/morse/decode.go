package morse

import "strings"

const wordGap = "   "

// Decode converts Morse to text. Words are separated by three spaces and
// letters by one; a literal "." is read as a dot. Unknown codes are
// recorded in diag and the rest of the word is still decoded.
func Decode(input string, diag *Diagnostics) string {
	var words []string
	for _, word := range strings.Split(normalizeMorse(input), wordGap) {
		tokens := strings.Split(word, " ")
		if len(tokens) == 1 && tokens[0] == "" {
			continue
		}
		words = append(words, decodeWord(tokens, diag))
	}
	return strings.Join(words, " ")
}

func decodeWord(tokens []string, diag *Diagnostics) string {
	var b strings.Builder
	for _, token := range tokens {
		ch, ok := lookupCharacter(token)
		if !ok {
			return decodeEachToken(tokens, diag)
		}
		b.WriteString(ch)
	}
	return b.String()
}

// decodeEachToken is the slow path for a word holding at least one bad code.
func decodeEachToken(tokens []string, diag *Diagnostics) string {
	var b strings.Builder
	for _, token := range tokens {
		ch, ok := lookupCharacter(token)
		if !ok {
			diag.record(token)
			continue
		}
		b.WriteString(ch)
	}
	return b.String()
}
