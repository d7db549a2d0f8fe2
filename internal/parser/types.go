package parser

// ExtractedLine is a non-blank line taken from an input file.
type ExtractedLine struct {
	// Text is the line content as read, without the line terminator.
	Text string
	// Line is the 1-based line number in the source file.
	Line int
}

// ParseResult holds parsing output for a single file.
type ParseResult struct {
	// FilePath is the absolute path to the parsed file.
	FilePath string
	// Lines are the lines to translate.
	Lines []ExtractedLine
	// RawLines preserves the original file content for reconstruction.
	RawLines []string
}

// Parser is the interface for input file parsers.
type Parser interface {
	// CanParse returns true if this parser handles the given file extension.
	CanParse(ext string) bool
	// Parse extracts translatable lines from a file.
	Parse(filePath string) (*ParseResult, error)
	// Reconstruct rebuilds the file, replacing lines by their 1-based number.
	Reconstruct(result *ParseResult, translations map[int]string) ([]byte, error)
}
