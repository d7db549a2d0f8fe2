package morse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Language
	}{
		{"single code", "----•", LanguageMorse},
		{"sentence", "meet at 12pm.", LanguageText},
		{"full stops as dots", ".... . .-.. .-.. ---   - .... . .-. . .-.-.-   .... --- .--   .- .-. .   -.-- --- ..- ..--..", LanguageMorse},
		{"dot glyphs", "•••• • •-•• •-•• ---   - ••••", LanguageMorse},
		{"digits", "1234567890", LanguageText},
		{"symbols only", "%^&#$@", LanguageUnsupported},
		{"hiragana", "べんきょう", LanguageUnsupported},
		{"mixed script", "わtashi*&", LanguageText},
		{"encoder output", "••••   •- ", LanguageMorse},
		{"empty", "", LanguageMorse},
		{"tab is not a separator", "•-\t-", LanguageUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.input))
			assert.Equal(t, tt.want, Classify(tt.input), "classification must be stable")
		})
	}
}

func TestLanguageString(t *testing.T) {
	assert.Equal(t, "morse", LanguageMorse.String())
	assert.Equal(t, "text", LanguageText.String())
	assert.Equal(t, "unsupported", LanguageUnsupported.String())

	b, err := LanguageText.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "text", string(b))
}
