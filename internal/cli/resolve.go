package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/mindcheck/screener/internal/repository"
	"github.com/mindcheck/screener/internal/service"
)

// lookupError rewords repository lookup failures for the terminal.
func lookupError(input string, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return fmt.Errorf("screening not found: %q (see 'screener history list')", input)
	case errors.Is(err, repository.ErrAmbiguousID):
		return fmt.Errorf("screening ID prefix %q is ambiguous; type more characters", input)
	default:
		return err
	}
}

// getCompleted fetches a screening by ID or prefix and requires a result.
func getCompleted(ctx context.Context, app *App, input string) (*service.Outcome, error) {
	outcome, err := app.Screenings.Get(ctx, input)
	if err != nil {
		return nil, lookupError(input, err)
	}
	if outcome.Result == nil {
		id := outcome.Screening.DisplayID()
		return nil, fmt.Errorf("screening %s is still in progress; finish it with 'screener screen --resume %s': %w",
			id, id, service.ErrIncomplete)
	}
	return outcome, nil
}
