package cli

import (
	"fmt"

	"github.com/mindcheck/screener/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newResultCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "result",
		Short: "Show stored screening results",
	}

	cmd.AddCommand(
		newResultShowCmd(app),
		newResultViewCmd(app),
	)

	return cmd
}

func newResultShowCmd(app *App) *cobra.Command {
	var categories bool

	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Print a screening's result (or progress, if unfinished)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			outcome, err := app.Screenings.Get(cmd.Context(), args[0])
			if err != nil {
				return lookupError(args[0], err)
			}

			if outcome.Result == nil {
				progress, err := app.Screenings.Progress(cmd.Context(), outcome.Screening.ID)
				if err != nil {
					return err
				}
				id := outcome.Screening.DisplayID()
				fmt.Fprintln(out, formatter.RenderBox("In progress", formatter.FormatProgress(progress)))
				fmt.Fprintln(out, formatter.Dim(fmt.Sprintf("Continue with: screener screen --resume %s", id)))
				return nil
			}

			fmt.Fprint(out, formatter.FormatResult(outcome.Screening, *outcome.Result, formatter.ResultOptions{Categories: categories}))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&categories, "categories", "c", false, "Include per-category breakdowns")

	return cmd
}

func newResultViewCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "view ID",
		Short: "Browse a full result in a scrollable view",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outcome, err := getCompleted(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			content := formatter.FormatResult(outcome.Screening, *outcome.Result, formatter.ResultOptions{Categories: true})
			title := fmt.Sprintf("%s · %s", outcome.Screening.RespondentName, outcome.Screening.DisplayID())
			return app.page(title, content, cmd.OutOrStdout())
		},
	}
}
