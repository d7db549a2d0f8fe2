package parser

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LineParser treats every non-blank line of a .txt or .morse file as one
// message.
type LineParser struct{}

func NewLineParser() *LineParser { return &LineParser{} }

func (p *LineParser) CanParse(ext string) bool {
	return ext == ".txt" || ext == ".morse"
}

func (p *LineParser) Parse(filePath string) (*ParseResult, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open input file: %w", err)
	}
	defer file.Close()

	result := &ParseResult{FilePath: filePath}

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		result.RawLines = append(result.RawLines, line)

		if strings.TrimSpace(line) == "" {
			continue
		}
		result.Lines = append(result.Lines, ExtractedLine{Text: line, Line: lineNum})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan input file: %w", err)
	}

	return result, nil
}

func (p *LineParser) Reconstruct(result *ParseResult, translations map[int]string) ([]byte, error) {
	lines := make([]string, len(result.RawLines))
	copy(lines, result.RawLines)

	for _, el := range result.Lines {
		idx := el.Line - 1
		if idx < 0 || idx >= len(lines) {
			continue
		}
		translated, ok := translations[el.Line]
		if !ok {
			continue
		}
		lines[idx] = translated
	}

	if len(lines) == 0 {
		return nil, nil
	}
	return []byte(strings.Join(lines, "\n") + "\n"), nil
}
