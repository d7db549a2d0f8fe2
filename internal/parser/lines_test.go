package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLineParser_CanParse(t *testing.T) {
	p := NewLineParser()
	assert.True(t, p.CanParse(".txt"))
	assert.True(t, p.CanParse(".morse"))
	assert.False(t, p.CanParse(".lua"))
}

func TestLineParser_Parse(t *testing.T) {
	path := writeFile(t, "msg.txt", "hello\n\n   \r\n•••• ••\r\nsos\n")

	result, err := NewLineParser().Parse(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"hello", "", "   ", "•••• ••", "sos"}, result.RawLines)
	assert.Equal(t, []ExtractedLine{
		{Text: "hello", Line: 1},
		{Text: "•••• ••", Line: 4},
		{Text: "sos", Line: 5},
	}, result.Lines)
}

func TestLineParser_ParseMissingFile(t *testing.T) {
	_, err := NewLineParser().Parse(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestLineParser_Reconstruct(t *testing.T) {
	p := NewLineParser()
	path := writeFile(t, "msg.txt", "hi\n\nsos\n")

	result, err := p.Parse(path)
	require.NoError(t, err)

	out, err := p.Reconstruct(result, map[int]string{1: "•••• •• ", 3: "••• --- ••• "})
	require.NoError(t, err)
	assert.Equal(t, "•••• •• \n\n••• --- ••• \n", string(out))
}

func TestLineParser_ReconstructKeepsUntranslated(t *testing.T) {
	p := NewLineParser()
	result := &ParseResult{
		RawLines: []string{"keep", "swap"},
		Lines:    []ExtractedLine{{Text: "keep", Line: 1}, {Text: "swap", Line: 2}},
	}

	out, err := p.Reconstruct(result, map[int]string{2: "done"})
	require.NoError(t, err)
	assert.Equal(t, "keep\ndone\n", string(out))
}
