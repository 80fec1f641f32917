package formatter

import (
	"fmt"
	"strings"

	"github.com/mindcheck/screener/internal/clinic"
)

// SearchLink is a labeled map-search URL.
type SearchLink struct {
	Provider clinic.Provider
	URL      string
}

// FormatClinics lists clinics followed by map-search links.
func FormatClinics(region string, clinics []clinic.Clinic, links []SearchLink) string {
	title := "Clinics"
	if region != "" {
		title = "Clinics in " + region
	}

	var b strings.Builder
	if len(clinics) == 0 {
		b.WriteString(Dim("No clinics listed for this region. Try a map search below."))
	}
	for i, c := range clinics {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "%s %s\n", Bold(c.Name), StylePurple.Render("["+c.Region+"]"))
		fmt.Fprintf(&b, "  %s  %s\n", Dim("☎"), c.Phone)
		fmt.Fprintf(&b, "  %s  %s\n", Dim("⌂"), c.Address)
		fmt.Fprintf(&b, "  %s  %s", Dim("↗"), StyleBlue.Render(c.Website))
		if len(c.Features) > 0 {
			fmt.Fprintf(&b, "\n  %s", Dim(strings.Join(c.Features, " · ")))
		}
	}

	if len(links) > 0 {
		b.WriteString("\n\n" + Header("Map search") + "\n")
		for _, l := range links {
			fmt.Fprintf(&b, "%-7s %s\n", l.Provider, StyleBlue.Render(l.URL))
		}
	}

	b.WriteString("\n" + Dim("Contact details may have changed. Call ahead to confirm adult ADHD assessment."))
	return RenderBox(title, b.String())
}
