package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"backpack/internal/config"
	"backpack/internal/flux"
	"backpack/internal/graph"
	"backpack/internal/telemetry"
	"backpack/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// options holds flag values; they override the loaded config.
type options struct {
	configPath  string
	vars        string
	debugLog    string
	noAltScreen bool
}

func newRootCommand() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "backpack",
		Short: "Pick graphs, variables and a time range",
		Long: "backpack is a terminal UI for choosing how many data graphs to show,\n" +
			"which measured variable each graph plots, and the time interval.",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "config file (default: ./.backpack.yaml, ~/.config/backpack/config.yaml)")
	f.StringVar(&opts.vars, "vars", "", "comma separated variables offered per graph (e.g. CH4,CO2,H2O)")
	f.StringVar(&opts.debugLog, "debug-log", "", "write debug log to this file")
	f.BoolVar(&opts.noAltScreen, "no-alt-screen", false, "render inline instead of the alternate screen")
	return cmd
}

func loadConfig(opts options) (*config.Config, error) {
	cfg, err := config.NewLoader().Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.vars != "" {
		cfg.Variables = config.SplitList(opts.vars)
	}
	if opts.debugLog != "" {
		cfg.DebugLog = opts.debugLog
	}
	if opts.noAltScreen {
		cfg.AltScreen = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

func run(ctx context.Context, cfg *config.Config) error {
	if cfg.DebugLog != "" {
		f, err := tea.LogToFile(cfg.DebugLog, "backpack")
		if err != nil {
			return fmt.Errorf("debug log %q: %w", cfg.DebugLog, err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	tp, err := telemetry.New(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Printf("telemetry: shutdown: %v", err)
		}
	}()
	if tp.Enabled() {
		log.Printf("telemetry: exporting to %s", cfg.Telemetry.Endpoint)
	}

	dispatcher := flux.NewDispatcher(flux.WithTracer(tp.Tracer()))
	store := graph.NewStore(dispatcher)
	defer store.Close()
	actions := graph.NewCreators(dispatcher)

	sel := ui.NewGraphSelect(store, actions, ui.GraphSelectConfig{
		Variables:    cfg.Variables,
		SelectedVars: cfg.SelectedVars,
		Now:          time.Now(),
	})
	app := ui.NewApp(sel, actions)
	defer app.Close()

	popts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.AltScreen {
		popts = append(popts, tea.WithAltScreen())
	}
	p := tea.NewProgram(app.AsTeaModel(), popts...)
	if _, err := p.Run(); err != nil {
		return err
	}
	if n := store.ListenerCount(); n != 0 {
		log.Printf("graph: %d store listener(s) still registered at exit", n)
	}
	return nil
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "backpack: %v\n", err)
		os.Exit(1)
	}
}
