package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mindcheck/screener/internal/answerfile"
	"github.com/mindcheck/screener/internal/db"
	"github.com/mindcheck/screener/internal/domain"
	"github.com/mindcheck/screener/internal/report"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var (
		format  formatValue
		out     string
		answers bool
	)

	cmd := &cobra.Command{
		Use:   "export ID",
		Short: "Export a completed screening as a report file",
		Long: "Writes a report for a completed screening. Without --out the file is\n" +
			"named adhd-screening-YYYY-MM-DD.<ext> in the configured report directory.\n" +
			"Use --out - to print text, json or yaml reports to stdout.\n\n" +
			"With --answers the raw answers are written instead, as an answer file\n" +
			"that 'screener score' can read back.",
		Example: "  screener export 3f9a1c2e --format xlsx\n" +
			"  screener export 3f9a --format json --out -\n" +
			"  screener export 3f9a --answers --out answers.json",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outcome, err := getCompleted(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			dir, err := db.ExpandHome(app.cfg().Report.Dir)
			if err != nil {
				return err
			}

			if answers {
				return writeAnswerFile(cmd, outcome.Screening, dir, out)
			}

			doc := report.Build(outcome.Screening, *outcome.Result)
			f := format.orDefault(app.cfg().ReportFormat())

			path := out
			if path == "" {
				path = filepath.Join(dir, report.DefaultFilename(doc, f))
			}
			return writeReport(cmd.OutOrStdout(), doc, f, path)
		},
	}

	cmd.Flags().Var(&format, "format", "Report format: "+formatNames()+" (default from config)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output path, or - for stdout")
	cmd.Flags().BoolVar(&answers, "answers", false, "Export the answers as a YAML or JSON answer file")
	cmd.MarkFlagsMutuallyExclusive("answers", "format")

	return cmd
}

// writeAnswerFile writes sc's answers. The format follows the path's
// extension; stdout and the default file name use YAML.
func writeAnswerFile(cmd *cobra.Command, sc *domain.Screening, dir, path string) error {
	file := answerfile.FromAnswerSet(sc.RespondentName, sc.Answers)

	if path == "-" {
		return file.Encode(cmd.OutOrStdout(), answerfile.FormatYAML)
	}
	if path == "" {
		path = filepath.Join(dir, fmt.Sprintf("answers-%s.yaml", sc.DisplayID()))
	}
	format, err := answerfile.FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating answer file: %w", err)
	}
	if err := file.Encode(f, format); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing answer file: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote answers to %s\n", path)
	return nil
}
