package cli

import (
	"io"
	"os"

	"github.com/mindcheck/screener/internal/config"
	"github.com/mindcheck/screener/internal/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// App holds the services and settings used by CLI commands.
type App struct {
	Screenings service.ScreeningService
	Config     *config.Config
	Logger     *zap.Logger

	// Setup runs before every command with the --config value. main uses it
	// to load configuration, open the store and wire Screenings. Tests leave
	// it nil and fill the fields directly.
	Setup func(configPath string) error

	// IsInteractive reports whether stdin is a terminal. Nil means no.
	IsInteractive func() bool

	// Prompt asks questions during the wizard. Nil uses huh forms.
	Prompt Prompter

	// Pager shows long output. Nil uses the bubbletea pager.
	Pager func(title, content string) error
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) prompter() Prompter {
	if a.Prompt != nil {
		return a.Prompt
	}
	return huhPrompter{}
}

func (a *App) cfg() *config.Config {
	if a.Config == nil {
		a.Config = defaultConfig()
	}
	return a.Config
}

func (a *App) logger() *zap.Logger {
	if a.Logger == nil {
		return zap.NewNop()
	}
	return a.Logger
}

func (a *App) page(title, content string, out io.Writer) error {
	if a.Pager != nil {
		return a.Pager(title, content)
	}
	if out != os.Stdout || !a.interactive() {
		_, err := io.WriteString(out, content)
		return err
	}
	return runPager(title, content)
}

func defaultConfig() *config.Config {
	return &config.Config{
		Store:  config.StoreConfig{Path: "~/.screener/screener.db"},
		Log:    config.LogConfig{Level: "warn", Format: "console"},
		Report: config.ReportConfig{Dir: ".", DefaultFormat: "text"},
	}
}

// NewRootCmd creates the top-level "screener" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "screener",
		Short: "Adult ADHD self-screening (ASRS, impairment, WURS)",
		Long: "screener walks you through three short questionnaires and scores them:\n" +
			"current symptoms (ASRS-v1.1), impairment in daily life, and childhood\n" +
			"symptoms (WURS-25). The result is a screening aid, not a diagnosis.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.Setup == nil {
				return nil
			}
			return app.Setup(configPath)
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ./screener.yaml or ~/.screener/screener.yaml)")

	root.AddCommand(
		newScreenCmd(app),
		newScoreCmd(app),
		newResultCmd(app),
		newHistoryCmd(app),
		newExportCmd(app),
		newClinicsCmd(app),
	)

	return root
}
