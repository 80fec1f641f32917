package report

import (
	"io"

	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Render writes doc to w in the requested format.
func Render(w io.Writer, doc *Document, format Format) error {
	switch format {
	case FormatText:
		return renderText(w, doc)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return eris.Wrap(enc.Encode(doc), "report: encode json")
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return eris.Wrap(err, "report: encode yaml")
		}
		return eris.Wrap(enc.Close(), "report: flush yaml")
	case FormatXLSX:
		return renderXLSX(w, doc)
	}
	return eris.Errorf("report: unknown format %q", format)
}
