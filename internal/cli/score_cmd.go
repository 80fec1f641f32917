package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/mindcheck/screener/internal/answerfile"
	"github.com/mindcheck/screener/internal/cli/formatter"
	"github.com/mindcheck/screener/internal/domain"
	"github.com/mindcheck/screener/internal/report"
	"github.com/mindcheck/screener/internal/scoring"
	"github.com/spf13/cobra"
)

func newScoreCmd(app *App) *cobra.Command {
	var (
		strict     bool
		save       bool
		categories bool
		name       string
		out        string
		format     formatValue
	)

	cmd := &cobra.Command{
		Use:   "score FILE",
		Short: "Score an answer file without the questionnaire",
		Long: "Scores a YAML or JSON answer file. Missing items count as 0 (or \"no\")\n" +
			"unless --strict is given. Nothing is stored unless --save is given.",
		Example: "  screener score answers.yaml\n  screener score answers.json --strict --format json",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := answerfile.Load(args[0])
			if err != nil {
				return err
			}
			if strict {
				if err := answerfile.ValidateStrict(f); err != nil {
					return err
				}
			}
			answers := f.AnswerSet()

			var (
				sc     *domain.Screening
				result scoring.Result
			)
			if save {
				respondent := name
				if respondent == "" {
					respondent = f.Name
				}
				outcome, err := app.Screenings.Import(cmd.Context(), respondent, answers)
				if err != nil {
					return err
				}
				sc, result = outcome.Screening, *outcome.Result
			} else {
				result = app.Screenings.ScoreOnly(answers)
			}

			w := cmd.OutOrStdout()
			if !format.set && out == "" {
				fmt.Fprint(w, formatter.FormatResult(sc, result, formatter.ResultOptions{Categories: categories}))
				if sc != nil {
					fmt.Fprintln(w, formatter.Dim(fmt.Sprintf("Saved as %s", sc.DisplayID())))
				}
				return nil
			}
			return writeReport(w, report.Build(sc, result), format.orDefault(app.cfg().ReportFormat()), out)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Require every item to be answered with a valid value")
	cmd.Flags().BoolVar(&save, "save", false, "Store the result in the history")
	cmd.Flags().StringVar(&name, "name", "", "Respondent name for --save (defaults to the file's name field)")
	cmd.Flags().BoolVar(&categories, "categories", false, "Include per-category breakdowns")
	cmd.Flags().Var(&format, "format", "Report format: "+formatNames())
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write the report to this file instead of stdout")

	return cmd
}

// writeReport renders doc to path, or to w when path is empty or "-".
// Binary formats are never written to w.
func writeReport(w io.Writer, doc *report.Document, format report.Format, path string) error {
	if path == "" || path == "-" {
		if format.Binary() {
			return fmt.Errorf("%s output is binary; use --out FILE", format)
		}
		return report.Render(w, doc, format)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	if err := report.Render(f, doc, format); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing report file: %w", err)
	}
	fmt.Fprintf(w, "Wrote %s report to %s\n", format, path)
	return nil
}
