package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/rotisserie/eris"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatXLSX Format = "xlsx"
)

var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatXLSX}

func (f Format) Valid() bool {
	for _, v := range Formats {
		if f == v {
			return true
		}
	}
	return false
}

func (f Format) String() string { return string(f) }

// Extension is the file extension without the dot.
func (f Format) Extension() string {
	if f == FormatText {
		return "txt"
	}
	return string(f)
}

// Binary reports whether the format should not be written to a terminal.
func (f Format) Binary() bool { return f == FormatXLSX }

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "txt":
		return FormatText, nil
	case "yml":
		return FormatYAML, nil
	default:
		if f.Valid() {
			return f, nil
		}
	}
	return "", eris.Errorf("report: unknown format %q (want %s)", s, formatList())
}

func formatList() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// DefaultFilename is adhd-screening-YYYY-MM-DD.<ext>, dated by the result.
func DefaultFilename(doc *Document, format Format) string {
	date := doc.Date
	if date.IsZero() {
		date = time.Now()
	}
	return fmt.Sprintf("adhd-screening-%s.%s", date.Format("2006-01-02"), format.Extension())
}
