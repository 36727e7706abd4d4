package main

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/typepreview/internal/customization"
	"github.com/alexisbeaulieu97/typepreview/internal/tui"
)

type rootFlags struct {
	configPath string
	logFile    string
	verbose    bool
}

var errNoTerminal = errors.New("typepreview needs an interactive terminal; use 'typepreview render' for image output")

var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "typepreview",
		Short:         "Preview text under different typographic settings",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a YAML config file")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write logs to this file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newFontsCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func runInteractive(cmd *cobra.Command, flags *rootFlags) error {
	if !isTerminal() {
		return errNoTerminal
	}

	app, err := newAppContext(flags, cmd.ErrOrStderr(), true)
	if err != nil {
		return err
	}
	defer app.Close()

	values := app.Config.Values()
	if err := values.Validate(); err != nil {
		return err
	}
	state := customization.NewState(values)

	model := tui.NewModel(state, tui.Options{
		Resolver:  app.Catalog,
		Faces:     app.Catalog,
		Logger:    app.Logger,
		Render:    app.Config.RenderOptions(),
		ExportDir: app.Config.Export.Dir,
	})
	defer model.Close()

	app.Logger.Info("starting interactive preview")
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		app.Logger.Error(err, "interactive preview failed")
		return err
	}
	return nil
}
