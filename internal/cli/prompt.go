package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/mindcheck/screener/internal/domain"
	"github.com/mindcheck/screener/internal/instrument"
)

// errAborted is returned when the respondent quits a form.
var errAborted = errors.New("screening paused; resume later with 'screener screen --resume ID'")

// PageRequest is one page of the questionnaire. Values holds the current
// answer per item ("" when unanswered) and receives the chosen option values.
type PageRequest struct {
	Meta    instrument.Meta
	Page    int
	Pages   int
	Items   []instrument.Item
	Options []instrument.Option
	Values  []string
}

// Prompter asks the respondent questions.
type Prompter interface {
	RespondentName() (string, error)
	Page(req PageRequest) error
	Confirm(title string) (bool, error)
}

type huhPrompter struct{}

func (huhPrompter) RespondentName() (string, error) {
	var name string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What should we call you?").
				Description("Used only to label your results on this computer.").
				Placeholder("Name").
				Value(&name).
				Validate(func(s string) error {
					_, err := domain.ValidateRespondentName(s)
					return err
				}),
		),
	).WithTheme(screenerHuhTheme()).WithShowHelp(false)

	if err := runForm(form); err != nil {
		return "", err
	}
	return name, nil
}

func (huhPrompter) Page(req PageRequest) error {
	opts := make([]huh.Option[string], len(req.Options))
	for i, o := range req.Options {
		opts[i] = huh.NewOption(o.Label, o.Value)
	}

	fields := make([]huh.Field, len(req.Items))
	for i, item := range req.Items {
		fields[i] = huh.NewSelect[string]().
			Title(fmt.Sprintf("%d. %s", item.ID, item.Text)).
			Options(opts...).
			Inline(true).
			Value(&req.Values[i])
	}

	group := huh.NewGroup(fields...).
		Title(fmt.Sprintf("%s (%d/%d)", req.Meta.Name, req.Page, req.Pages))
	if req.Page == 1 {
		group = group.Description(req.Meta.Instruction)
	}

	return runForm(huh.NewForm(group).WithTheme(screenerHuhTheme()))
}

func (huhPrompter) Confirm(title string) (bool, error) {
	var ok bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(&ok),
		),
	).WithTheme(screenerHuhTheme()).WithShowHelp(false)

	if err := runForm(form); err != nil {
		return false, err
	}
	return ok, nil
}

func runForm(form *huh.Form) error {
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return errAborted
		}
		return err
	}
	return nil
}
