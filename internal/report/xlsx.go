package report

import (
	"io"

	"github.com/mindcheck/screener/internal/scoring"
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
)

// Sheet names of the XLSX export.
const (
	SheetSummary    = "Summary"
	SheetCriteria   = "Criteria"
	SheetCategories = "Categories"
	SheetActions    = "Actions"
)

func renderXLSX(w io.Writer, doc *Document) error {
	f := xlsx.NewFile()

	summary, err := f.AddSheet(SheetSummary)
	if err != nil {
		return eris.Wrap(err, "report: add summary sheet")
	}
	addRow(summary, "Title", doc.Title)
	addRow(summary, "Date", doc.Date.Format("2006-01-02"))
	addRow(summary, "Respondent", doc.Respondent)
	addRow(summary, "Risk tier", string(doc.Verdict.Tier))
	addRow(summary, "Urgency", string(doc.Verdict.Urgency))
	addRow(summary, "Verdict", doc.Verdict.Title)
	addRow(summary, "Message", plain(doc.Verdict.Message))
	addRow(summary)
	addRow(summary, "Instrument", "Score", "Max", "Level", "Interpretation")
	for _, s := range doc.Scores {
		row := summary.AddRow()
		row.AddCell().SetString(s.Instrument)
		row.AddCell().SetInt(s.Score)
		row.AddCell().SetInt(s.Max)
		row.AddCell().SetString(s.Level)
		row.AddCell().SetString(s.Interpretation)
	}
	if doc.Subtype != nil {
		addRow(summary)
		addRow(summary, "Subtype", doc.Subtype.Label)
	}
	addRow(summary)
	addRow(summary, doc.Disclaimer)

	criteria, err := f.AddSheet(SheetCriteria)
	if err != nil {
		return eris.Wrap(err, "report: add criteria sheet")
	}
	addRow(criteria, "Criterion", "Description", "Status")
	for _, c := range doc.Criteria {
		addRow(criteria, c.Key, c.Label, metLabel(c.Met))
	}

	cats, err := f.AddSheet(SheetCategories)
	if err != nil {
		return eris.Wrap(err, "report: add categories sheet")
	}
	addRow(cats, "Instrument", "Category", "Score", "Max", "Percent", "Band")
	for _, group := range []struct {
		name string
		rows []scoring.CategoryScore
	}{
		{"ASRS", doc.ASRSCategories},
		{"WURS", doc.WURSCategories},
	} {
		for _, c := range group.rows {
			row := cats.AddRow()
			row.AddCell().SetString(group.name)
			row.AddCell().SetString(c.Label)
			row.AddCell().SetInt(c.Score)
			row.AddCell().SetInt(c.MaxScore)
			row.AddCell().SetInt(c.Percentage)
			row.AddCell().SetString(string(c.Band))
		}
	}

	actions, err := f.AddSheet(SheetActions)
	if err != nil {
		return eris.Wrap(err, "report: add actions sheet")
	}
	addRow(actions, "Priority", "Action", "Description", "Urgent")
	for _, a := range doc.Actions {
		row := actions.AddRow()
		row.AddCell().SetInt(a.Priority)
		row.AddCell().SetString(a.Title)
		row.AddCell().SetString(a.Description)
		row.AddCell().SetBool(a.Urgent)
	}

	return eris.Wrap(f.Write(w), "report: write xlsx")
}

func addRow(sheet *xlsx.Sheet, values ...string) {
	row := sheet.AddRow()
	for _, v := range values {
		row.AddCell().SetString(v)
	}
}
