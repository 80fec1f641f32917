package cli

import (
	"fmt"
	"strings"

	"github.com/mindcheck/screener/internal/clinic"
	"github.com/mindcheck/screener/internal/domain"
	"github.com/mindcheck/screener/internal/report"
	"github.com/spf13/pflag"
)

// Custom flag values validate at parse time, so a bad --format fails before
// any work is done.
var (
	_ pflag.Value = (*formatValue)(nil)
	_ pflag.Value = (*regionValue)(nil)
	_ pflag.Value = (*providerValue)(nil)
	_ pflag.Value = (*statusValue)(nil)
)

// formatValue is a report format. set is false until the flag is given.
type formatValue struct {
	format report.Format
	set    bool
}

func (v *formatValue) String() string { return string(v.format) }
func (v *formatValue) Type() string   { return "format" }

func (v *formatValue) Set(s string) error {
	f, err := report.ParseFormat(s)
	if err != nil {
		return fmt.Errorf("want one of %s", formatNames())
	}
	v.format, v.set = f, true
	return nil
}

func (v *formatValue) orDefault(def report.Format) report.Format {
	if v.set {
		return v.format
	}
	return def
}

func formatNames() string {
	names := make([]string, len(report.Formats))
	for i, f := range report.Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

type regionValue struct {
	region string
	set    bool
}

func (v *regionValue) String() string { return v.region }
func (v *regionValue) Type() string   { return "region" }

func (v *regionValue) Set(s string) error {
	r, ok := clinic.NormalizeRegion(s)
	if !ok {
		return fmt.Errorf("unknown region %q (want one of %s)", s, strings.Join(clinic.Regions(), ", "))
	}
	v.region, v.set = r, true
	return nil
}

type providerValue struct {
	provider clinic.Provider
}

func (v *providerValue) String() string { return string(v.provider) }
func (v *providerValue) Type() string   { return "provider" }

func (v *providerValue) Set(s string) error {
	p, err := clinic.ParseProvider(s)
	if err != nil {
		return err
	}
	v.provider = p
	return nil
}

type statusValue struct {
	status domain.ScreeningStatus
}

func (v *statusValue) String() string { return string(v.status) }
func (v *statusValue) Type() string   { return "status" }

func (v *statusValue) Set(s string) error {
	st := domain.ScreeningStatus(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_"))
	if !st.Valid() {
		return fmt.Errorf("want in_progress or completed")
	}
	v.status = st
	return nil
}
