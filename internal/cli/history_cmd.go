package cli

import (
	"fmt"

	"github.com/mindcheck/screener/internal/cli/formatter"
	"github.com/mindcheck/screener/internal/domain"
	"github.com/mindcheck/screener/internal/repository"
	"github.com/mindcheck/screener/internal/scoring"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "history",
		Aliases: []string{"hist"},
		Short:   "Manage stored screenings",
	}

	cmd.AddCommand(
		newHistoryListCmd(app),
		newHistoryRemoveCmd(app),
		newHistoryResetCmd(app),
	)

	return cmd
}

func newHistoryListCmd(app *App) *cobra.Command {
	var (
		status statusValue
		limit  int
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List screenings, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return fmt.Errorf("--limit must not be negative")
			}
			screenings, err := app.Screenings.List(cmd.Context(), repository.ScreeningFilter{
				Status: status.status,
				Limit:  limit,
			})
			if err != nil {
				return err
			}

			entries := make([]formatter.HistoryEntry, len(screenings))
			for i, sc := range screenings {
				entries[i] = formatter.HistoryEntry{Screening: sc}
				if sc.IsCompleted() {
					entries[i].Tier = tierOf(sc)
				}
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHistory(entries))
			return nil
		},
	}

	cmd.Flags().Var(&status, "status", "Only show in_progress or completed screenings")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show at most this many screenings (0 for all)")

	return cmd
}

// tierOf scores a completed screening for the history table.
func tierOf(sc *domain.Screening) domain.RiskTier {
	at := sc.UpdatedAt
	if sc.CompletedAt != nil {
		at = *sc.CompletedAt
	}
	return scoring.Assemble(sc.Answers, at).Composite.Tier
}

func newHistoryRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove ID",
		Aliases: []string{"rm"},
		Short:   "Delete one screening",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Screenings.Delete(cmd.Context(), args[0]); err != nil {
				return lookupError(args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed screening %s\n", args[0])
			return nil
		},
	}
}

func newHistoryResetCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every stored screening",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				if app.Prompt == nil && !app.interactive() {
					return fmt.Errorf("refusing to delete all screenings without --yes")
				}
				ok, err := app.prompter().Confirm("Delete every stored screening? This cannot be undone.")
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Nothing deleted.")
					return nil
				}
			}

			n, err := app.Screenings.Reset(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d screening(s)\n", n)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
