// Package morse translates between Latin alphanumeric text and Morse code.
package morse

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

const (
	// Dot is the glyph used for a short signal.
	Dot = '•'
	// Dash is the glyph used for a long signal.
	Dash = '-'
)

var (
	ErrUnknownCharacter    = errors.New("character not found")
	ErrUnknownMorseToken   = errors.New("morse character not found")
	ErrUnsupportedLanguage = errors.New("unsupported language")
)

// Entry pairs a character with its Morse code.
type Entry struct {
	Character string `json:"character" yaml:"character"`
	Code      string `json:"code" yaml:"code"`
}

// table is the single source for both lookup directions.
var table = []struct {
	char rune
	code string
}{
	{'A', "•-"}, {'B', "-•••"}, {'C', "-•-•"}, {'D', "-••"}, {'E', "•"},
	{'F', "••-•"}, {'G', "--•"}, {'H', "••••"}, {'I', "••"}, {'J', "•---"},
	{'K', "-•-"}, {'L', "•-••"}, {'M', "--"}, {'N', "-•"}, {'O', "---"},
	{'P', "•--•"}, {'Q', "--•-"}, {'R', "•-•"}, {'S', "•••"}, {'T', "-"},
	{'U', "••-"}, {'V', "•••-"}, {'W', "•--"}, {'X', "-••-"}, {'Y', "-•--"},
	{'Z', "--••"},
	{'0', "-----"}, {'1', "•----"}, {'2', "••---"}, {'3', "•••--"}, {'4', "••••-"},
	{'5', "•••••"}, {'6', "-••••"}, {'7', "--•••"}, {'8', "---••"}, {'9', "----•"},
	{'.', "•-•-•-"}, {'?', "••--••"}, {'!', "-•-•--"},
}

var (
	toMorse = make(map[rune]string, len(table))
	toChar  = make(map[string]rune, len(table))
)

func init() {
	for _, e := range table {
		if _, dup := toMorse[e.char]; dup {
			panic(fmt.Sprintf("morse: duplicate character %q", e.char))
		}
		if prev, dup := toChar[e.code]; dup {
			panic(fmt.Sprintf("morse: code %q shared by %q and %q", e.code, prev, e.char))
		}
		toMorse[e.char] = e.code
		toChar[e.code] = e.char
	}
}

func lookupMorse(r rune) (string, bool) {
	code, ok := toMorse[unicode.ToUpper(r)]
	return code, ok
}

// lookupCharacter treats empty and whitespace-only tokens as a successful
// empty match so ragged spacing never fails a word.
func lookupCharacter(token string) (string, bool) {
	if strings.TrimSpace(token) == "" {
		return "", true
	}
	r, ok := toChar[token]
	if !ok {
		return "", false
	}
	return string(r), true
}

// MorseOf returns the Morse code for r. Letters are matched case-insensitively.
func MorseOf(r rune) (string, error) {
	code, ok := lookupMorse(r)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCharacter, r)
	}
	return code, nil
}

// CharacterOf returns the character encoded by token. An empty or
// whitespace-only token yields the empty string and no error.
func CharacterOf(token string) (string, error) {
	ch, ok := lookupCharacter(token)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMorseToken, token)
	}
	return ch, nil
}

// Entries returns the dictionary in table order.
func Entries() []Entry {
	entries := make([]Entry, 0, len(table))
	for _, e := range table {
		entries = append(entries, Entry{Character: string(e.char), Code: e.code})
	}
	return entries
}
