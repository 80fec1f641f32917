// Package instrument holds the static content of the three screening
// instruments: item text, response options, scoring groups and the
// presentation categories.
package instrument

import "github.com/mindcheck/screener/internal/domain"

// MaxItemValue is the top of the 0-4 ordinal response scale.
const MaxItemValue = 4

// Item is a single question.
type Item struct {
	ID       int
	Text     string
	Category string
	// Part is "A" or "B" for ASRS items, the life domain for impairment
	// items and empty for WURS.
	Part string
}

// Option is one selectable response.
type Option struct {
	Value string
	Label string
}

// Category is a clinically labeled group of item ids. Categories of the same
// instrument may share items.
type Category struct {
	Key         string
	Label       string
	Description string
	Icon        string
	ItemIDs     []int
}

// Meta describes an instrument for progress displays and reports.
type Meta struct {
	Instrument  domain.Instrument
	Name        string
	ShortName   string
	Instruction string
	MaxScore    int
}

// Describe returns the metadata for an instrument.
func Describe(inst domain.Instrument) Meta {
	switch inst {
	case domain.InstrumentASRS:
		return Meta{
			Instrument:  inst,
			Name:        "Adult ADHD Self-Report Scale v1.1",
			ShortName:   "ASRS",
			Instruction: asrsInstruction,
			MaxScore:    len(asrsItems) * MaxItemValue,
		}
	case domain.InstrumentImpairment:
		return Meta{
			Instrument:  inst,
			Name:        "Functional impairment check",
			ShortName:   "Impairment",
			Instruction: impairmentInstruction,
			MaxScore:    len(impairmentItems),
		}
	case domain.InstrumentWURS:
		return Meta{
			Instrument:  inst,
			Name:        "Wender Utah Rating Scale",
			ShortName:   "WURS",
			Instruction: wursInstruction,
			MaxScore:    len(wursItems) * MaxItemValue,
		}
	}
	return Meta{Instrument: inst, Name: string(inst), ShortName: string(inst)}
}

// Items returns a copy of the item list for an instrument.
func Items(inst domain.Instrument) []Item {
	var src []Item
	switch inst {
	case domain.InstrumentASRS:
		src = asrsItems
	case domain.InstrumentImpairment:
		src = impairmentItems
	case domain.InstrumentWURS:
		src = wursItems
	}
	out := make([]Item, len(src))
	copy(out, src)
	return out
}

// ItemIDs returns the question ids of an instrument in presentation order.
func ItemIDs(inst domain.Instrument) []int {
	items := Items(inst)
	ids := make([]int, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}

// Options returns the response options for an instrument.
func Options(inst domain.Instrument) []Option {
	var src []Option
	switch inst {
	case domain.InstrumentASRS:
		src = asrsOptions
	case domain.InstrumentImpairment:
		src = impairmentOptions
	case domain.InstrumentWURS:
		src = wursOptions
	}
	out := make([]Option, len(src))
	copy(out, src)
	return out
}

// Categories returns the category table for an instrument. The impairment
// instrument has none.
func Categories(inst domain.Instrument) []Category {
	var src []Category
	switch inst {
	case domain.InstrumentASRS:
		src = asrsCategories
	case domain.InstrumentWURS:
		src = wursCategories
	}
	out := make([]Category, len(src))
	for i, c := range src {
		c.ItemIDs = append([]int(nil), c.ItemIDs...)
		out[i] = c
	}
	return out
}

func idRange(from, to int) []int {
	ids := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		ids = append(ids, i)
	}
	return ids
}
