package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/mindcheck/screener/internal/cli/formatter"
	"github.com/mindcheck/screener/internal/domain"
	"github.com/mindcheck/screener/internal/instrument"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// itemsPerPage keeps each questionnaire page within one terminal screen.
const itemsPerPage = 6

func newScreenCmd(app *App) *cobra.Command {
	var name, resume string

	cmd := &cobra.Command{
		Use:   "screen",
		Short: "Take the screening questionnaire",
		Long: "Walks through the ASRS, impairment and WURS questionnaires in order.\n" +
			"Answers are saved after every page, so an interrupted screening can be\n" +
			"continued with --resume.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Prompt == nil && !app.interactive() {
				return fmt.Errorf("screen needs an interactive terminal; use 'screener score FILE' for answer files")
			}
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			sc, err := startOrResume(ctx, app, name, resume)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s %s %s\n\n", formatter.Dim("Screening"), formatter.Bold(sc.RespondentName), formatter.TruncID(sc.ID))

			if err := runQuestionnaire(ctx, app, sc, out); err != nil {
				return err
			}

			outcome, err := app.Screenings.Complete(ctx, sc.ID)
			if err != nil {
				return err
			}
			app.logger().Debug("screening completed",
				zap.String("screening_id", sc.ID),
				zap.String("tier", string(outcome.Result.Composite.Tier)))

			fmt.Fprint(out, formatter.FormatResult(outcome.Screening, *outcome.Result, formatter.ResultOptions{Categories: true}))
			fmt.Fprintln(out, formatter.Dim(fmt.Sprintf("Export a report with: screener export %s", sc.DisplayID())))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Respondent name (asked when omitted)")
	cmd.Flags().StringVar(&resume, "resume", "", "Continue an in-progress screening by ID or ID prefix")
	cmd.MarkFlagsMutuallyExclusive("name", "resume")

	return cmd
}

func startOrResume(ctx context.Context, app *App, name, resume string) (*domain.Screening, error) {
	if resume != "" {
		outcome, err := app.Screenings.Get(ctx, resume)
		if err != nil {
			return nil, lookupError(resume, err)
		}
		if outcome.Screening.IsCompleted() {
			return nil, fmt.Errorf("screening %s is already completed; see 'screener result show %s'",
				outcome.Screening.DisplayID(), outcome.Screening.DisplayID())
		}
		return outcome.Screening, nil
	}

	if name == "" {
		var err error
		if name, err = app.prompter().RespondentName(); err != nil {
			return nil, err
		}
	}
	return app.Screenings.Start(ctx, name)
}

// runQuestionnaire asks every unanswered page in instrument order and saves
// the answers after each page.
func runQuestionnaire(ctx context.Context, app *App, sc *domain.Screening, out io.Writer) error {
	answers := sc.Answers.Clone()
	prompt := app.prompter()

	for _, inst := range domain.Instruments {
		meta := instrument.Describe(inst)
		pages := paginate(instrument.Items(inst), itemsPerPage)

		for i, items := range pages {
			values := currentValues(answers, inst, items)
			if allAnswered(values) {
				continue
			}

			req := PageRequest{
				Meta:    meta,
				Page:    i + 1,
				Pages:   len(pages),
				Items:   items,
				Options: instrument.Options(inst),
				Values:  values,
			}
			if err := prompt.Page(req); err != nil {
				return err
			}
			if err := applyValues(answers, inst, items, req.Values); err != nil {
				return err
			}
			if err := app.Screenings.SaveAnswers(ctx, sc.ID, answers); err != nil {
				return err
			}
		}

		progress, err := app.Screenings.Progress(ctx, sc.ID)
		if err != nil {
			return err
		}
		if progress.Next != "" {
			fmt.Fprintln(out, formatter.FormatProgress(progress))
			fmt.Fprintln(out)
		}
	}
	return nil
}

func paginate(items []instrument.Item, size int) [][]instrument.Item {
	var pages [][]instrument.Item
	for len(items) > size {
		pages = append(pages, items[:size])
		items = items[size:]
	}
	if len(items) > 0 {
		pages = append(pages, items)
	}
	return pages
}

func currentValues(answers domain.AnswerSet, inst domain.Instrument, items []instrument.Item) []string {
	values := make([]string, len(items))
	for i, item := range items {
		switch inst {
		case domain.InstrumentImpairment:
			if v, ok := answers.Impairment[item.ID]; ok {
				values[i] = string(v)
			}
		case domain.InstrumentASRS:
			if v, ok := answers.ASRS[item.ID]; ok {
				values[i] = strconv.Itoa(v)
			}
		case domain.InstrumentWURS:
			if v, ok := answers.WURS[item.ID]; ok {
				values[i] = strconv.Itoa(v)
			}
		}
	}
	return values
}

func allAnswered(values []string) bool {
	for _, v := range values {
		if v == "" {
			return false
		}
	}
	return true
}

// applyValues copies page answers into the set. Blank values are skipped.
func applyValues(answers domain.AnswerSet, inst domain.Instrument, items []instrument.Item, values []string) error {
	for i, item := range items {
		v := values[i]
		if v == "" {
			continue
		}
		if inst == domain.InstrumentImpairment {
			answers.Impairment[item.ID] = domain.ParseYesNo(v)
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("item %d: invalid answer %q", item.ID, v)
		}
		if inst == domain.InstrumentASRS {
			answers.ASRS[item.ID] = n
		} else {
			answers.WURS[item.ID] = n
		}
	}
	return nil
}
