package morse

import (
	"strings"

	"morse-translator/internal/textutil"
)

// Language is the detected source language of an input.
type Language int

const (
	LanguageUnsupported Language = iota
	LanguageMorse
	LanguageText
)

func (l Language) String() string {
	switch l {
	case LanguageMorse:
		return "morse"
	case LanguageText:
		return "text"
	default:
		return "unsupported"
	}
}

func (l Language) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// nbsp is accepted as a space unit; Encode pads word gaps with it.
const nbsp = '\u00a0'

// morseNormalizer maps the aliases users type for Morse glyphs.
var morseNormalizer = strings.NewReplacer(".", string(Dot), string(nbsp), " ")

func normalizeMorse(s string) string {
	return morseNormalizer.Replace(s)
}

// Classify decides whether input is Morse, Latin text, or neither.
// Morse is checked first because dashes and spaces are not letters; any
// Latin letter or digit makes mixed-script input Text.
func Classify(input string) Language {
	if isMorse(normalizeMorse(input)) {
		return LanguageMorse
	}
	if textutil.HasLatinAlnum(input) {
		return LanguageText
	}
	return LanguageUnsupported
}

func isMorse(s string) bool {
	for _, r := range s {
		if r != Dot && r != Dash && r != ' ' {
			return false
		}
	}
	return true
}
