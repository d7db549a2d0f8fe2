package morse

import (
	"errors"
	"fmt"
	"strings"
)

const (
	warningPrefix      = "Warning: "
	unsupportedMessage = "This language is currently not supported. Please enter your message in either English or Morse Code."
)

// Diagnostics collects the characters and codes one translation could not
// interpret. A nil *Diagnostics discards entries.
type Diagnostics struct {
	Unknown []string
}

func (d *Diagnostics) record(s string) {
	if d == nil {
		return
	}
	d.Unknown = append(d.Unknown, s)
}

// Warning returns a sentence listing the unknown entries, or "" when there are none.
func (d *Diagnostics) Warning() string {
	if d == nil || len(d.Unknown) == 0 {
		return ""
	}
	list := strings.Join(d.Unknown, ", ")
	if len(d.Unknown) == 1 {
		return fmt.Sprintf("%sOne of the characters you used was unrecognised by the translator: %s.", warningPrefix, list)
	}
	return fmt.Sprintf("%sSome of the characters you used were unrecognised by the translator: %s.", warningPrefix, list)
}

// Result is the outcome of TranslateWithDiagnostics.
type Result struct {
	Text    string   `json:"text" yaml:"text"`
	Warning string   `json:"warning,omitempty" yaml:"warning,omitempty"`
	Source  Language `json:"source" yaml:"source"`
	Unknown []string `json:"unknown,omitempty" yaml:"unknown,omitempty"`
}

// Translate detects the language of input and converts it to the other one.
func Translate(input string, diag *Diagnostics) (string, Language, error) {
	lang := Classify(input)
	switch lang {
	case LanguageText:
		out, err := Encode(input, diag)
		return out, lang, err
	case LanguageMorse:
		return Decode(input, diag), lang, nil
	default:
		return "", lang, ErrUnsupportedLanguage
	}
}

// TranslateWithDiagnostics translates input and summarises any problems in
// Result.Warning. Diagnostics are local to the call.
func TranslateWithDiagnostics(input string) Result {
	var diag Diagnostics
	text, lang, err := Translate(input, &diag)

	res := Result{Source: lang}
	if err != nil {
		res.Warning = warningPrefix + describe(err)
	} else {
		res.Text = text
	}
	if w := diag.Warning(); w != "" {
		res.Warning = w
	}
	res.Unknown = diag.Unknown
	return res
}

func describe(err error) string {
	if errors.Is(err, ErrUnsupportedLanguage) {
		return unsupportedMessage
	}
	return err.Error()
}
