package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"morse-translator/internal/morse"

	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// readInput joins args, or reads all of in when args is empty. One trailing
// line terminator is dropped from stdin input.
func readInput(in io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	s := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(s, "\r"), nil
}

// writeResult prints the translation to out. In text format the warning
// goes to errOut so the translation can be piped on its own.
func writeResult(out, errOut io.Writer, format string, res morse.Result) error {
	switch format {
	case formatText:
		if _, err := fmt.Fprintln(out, res.Text); err != nil {
			return err
		}
		if res.Warning != "" {
			_, err := fmt.Fprintln(errOut, res.Warning)
			return err
		}
		return nil
	default:
		return encode(out, format, res)
	}
}

func writeEntries(out io.Writer, format string, entries []morse.Entry) error {
	if format != formatText {
		return encode(out, format, entries)
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\n", e.Character, e.Code)
	}
	return tw.Flush()
}

func encode(out io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
