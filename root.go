package main

import (
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sdahlbac/palettegen/internal/config"
	"github.com/sdahlbac/palettegen/internal/logger"
)

// appState carries what PersistentPreRunE resolves to the subcommands.
type appState struct {
	cfg      config.Config
	log      *logger.Logger
	logClose func() error

	// newProgram is swapped in tests to avoid taking over the terminal.
	newProgram func(tea.Model, ...tea.ProgramOption) programRunner
}

type programRunner interface {
	Run() (tea.Model, error)
}

type rootFlags struct {
	configPath  string
	columns     int
	logFile     string
	logLevel    string
	noAltScreen bool
}

func newRootCmd(state *appState) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "palettegen",
		Short:         "Generate color palettes with lockable colors and example components",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return state.prepare(cmd, flags)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return state.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return state.runTUI()
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file path")
	cmd.PersistentFlags().IntVarP(&flags.columns, "columns", "n", 0, "number of colors in the palette")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "append structured logs to this file")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	cmd.Flags().BoolVar(&flags.noAltScreen, "no-alt-screen", false, "render inline instead of using the alternate screen")

	cmd.AddCommand(newGenerateCmd(state))
	cmd.AddCommand(newSnippetCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// prepare loads config, applies flag overrides and opens the log sink.
func (s *appState) prepare(cmd *cobra.Command, flags *rootFlags) error {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}

	pf := cmd.Flags()
	if pf.Changed("columns") {
		cfg.Columns = flags.columns
	}
	if pf.Changed("log-file") {
		cfg.Log.File = flags.logFile
	}
	if pf.Changed("log-level") {
		cfg.Log.Level = flags.logLevel
	}
	if pf.Lookup("no-alt-screen") != nil && pf.Changed("no-alt-screen") {
		cfg.UI.AltScreen = !flags.noAltScreen
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	s.cfg = cfg

	var w io.Writer
	if cfg.Log.File != "" {
		f, err := logger.OpenFile(cfg.Log.File)
		if err != nil {
			return err
		}
		w = f
		s.logClose = f.Close
	}
	log, err := logger.New(logger.Options{Level: cfg.Log.Level, HumanReadable: cfg.Log.Human, Writer: w})
	if err != nil {
		return err
	}
	s.log = log.WithFields(map[string]any{"command": cmd.Name()})
	return nil
}

func (s *appState) close() error {
	if s.logClose == nil {
		return nil
	}
	err := s.logClose()
	s.logClose = nil
	return err
}

// runTUI starts the interactive palette screen.
func (s *appState) runTUI() error {
	app := NewApp(AppOptions{
		Columns:        s.cfg.Columns,
		Logger:         s.log,
		Unicode:        s.cfg.UI.Unicode,
		StatusDuration: time.Duration(s.cfg.UI.StatusSeconds) * time.Second,
	})

	var opts []tea.ProgramOption
	if s.cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	newProgram := s.newProgram
	if newProgram == nil {
		newProgram = func(m tea.Model, opts ...tea.ProgramOption) programRunner {
			return tea.NewProgram(m, opts...)
		}
	}

	if _, err := newProgram(app, opts...).Run(); err != nil {
		s.log.Error(err, "tui exited with error")
		return fmt.Errorf("failed to run TUI application: %w", err)
	}
	s.log.Info("tui exited")
	return nil
}
