package morse

import (
	"strings"

	"morse-translator/internal/textutil"
)

// wordPad follows the letter separator so a word gap is three space units.
const wordPad = "\u00a0\u00a0"

// Encode converts text to Morse. Every emitted code is followed by one
// space. Characters outside the dictionary are recorded in diag and skipped.
func Encode(text string, diag *Diagnostics) (string, error) {
	var b strings.Builder
	for _, r := range text {
		switch {
		case textutil.IsLatinAlnum(r), r == '.', r == '?', r == '!':
			code, err := MorseOf(r)
			if err != nil {
				return "", err
			}
			b.WriteString(code)
			b.WriteByte(' ')
		case r == ' ':
			b.WriteString(wordPad)
		default:
			diag.record(string(r))
		}
	}
	return b.String(), nil
}
