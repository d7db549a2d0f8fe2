package morse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMorseOf(t *testing.T) {
	tests := []struct {
		in   rune
		want string
	}{
		{'a', "•-"},
		{'P', "•--•"},
		{'3', "•••--"},
		{'q', "--•-"},
		{'?', "••--••"},
	}
	for _, tt := range tests {
		got, err := MorseOf(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "MorseOf(%q)", tt.in)
	}
}

func TestMorseOf_Unknown(t *testing.T) {
	for _, r := range "*(é#" {
		_, err := MorseOf(r)
		assert.ErrorIs(t, err, ErrUnknownCharacter, "MorseOf(%q)", r)
	}
}

func TestCharacterOf(t *testing.T) {
	tests := map[string]string{
		"----•": "9",
		"---":   "O",
		"--•":   "G",
		"-•-•":  "C",
		"":      "",
		" ":     "",
	}
	for in, want := range tests {
		got, err := CharacterOf(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, "CharacterOf(%q)", in)
	}
}

func TestCharacterOf_Unknown(t *testing.T) {
	for _, in := range []string{"------•", "-••---•", "abc"} {
		_, err := CharacterOf(in)
		assert.ErrorIs(t, err, ErrUnknownMorseToken, "CharacterOf(%q)", in)
	}
}

func TestDictionaryIsBijection(t *testing.T) {
	seen := make(map[string]string)
	for _, e := range Entries() {
		require.NotEmpty(t, e.Code)
		assert.NotContains(t, e.Code, " ")
		assert.Empty(t, strings.Trim(e.Code, string(Dot)+string(Dash)), "code %q has foreign glyphs", e.Code)

		if prev, ok := seen[e.Code]; ok {
			t.Fatalf("code %q shared by %s and %s", e.Code, prev, e.Character)
		}
		seen[e.Code] = e.Character
	}
	assert.Len(t, seen, 39)
	assert.Len(t, toChar, len(toMorse))
}

func TestDictionaryRoundTrip(t *testing.T) {
	supported := "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789.?!"
	for _, r := range supported {
		code, err := MorseOf(r)
		require.NoError(t, err)
		ch, err := CharacterOf(code)
		require.NoError(t, err)
		assert.Equal(t, strings.ToUpper(string(r)), ch)
	}
}
