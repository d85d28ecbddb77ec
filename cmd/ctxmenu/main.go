package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"ctxmenu/internal/action"
	"ctxmenu/internal/config"
	"ctxmenu/internal/menu"
	"ctxmenu/internal/trace"
	"ctxmenu/internal/ui"
)

func main() {
	fs := pflag.NewFlagSet("ctxmenu", pflag.ContinueOnError)
	config.RegisterFlags(fs)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ctxmenu [flags]\n\n")
		fmt.Fprintf(os.Stderr, "ctxmenu shows a drill-down context menu defined in a YAML, TOML\n")
		fmt.Fprintf(os.Stderr, "or JSONC file and runs the command of the chosen item.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	if err := run(fs); err != nil {
		fmt.Fprintf(os.Stderr, "ctxmenu: %v\n", err)
		os.Exit(1)
	}
}

func run(fs *pflag.FlagSet) error {
	settings, err := config.Load(fs)
	if err != nil {
		return err
	}

	logger, closer, err := config.NewLogger(settings.LogFile, settings.LogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	def, err := loadMenu(settings)
	if err != nil {
		return err
	}
	if settings.InitialPanel != "" {
		def.InitialPanel = menu.PanelID(settings.InitialPanel)
	}
	if settings.MaxHeight > 0 {
		def.MaximumHeight = settings.MaxHeight
	}
	if err := def.Validate(); err != nil {
		if settings.Strict {
			return fmt.Errorf("invalid menu: %w", err)
		}
		logger.Warn("menu has problems", "error", err)
	}

	ctx := context.Background()
	exporter, err := trace.NewOTLPExporter(ctx)
	if err != nil {
		return fmt.Errorf("otlp exporter: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := exporter.Shutdown(shutdownCtx); err != nil {
			logger.Warn("otlp shutdown", "error", err)
		}
	}()
	tracer := trace.NewNavigationTracer(ctx, exporter.Tracer())
	defer tracer.Close()

	zones := ui.NewBubbleZones()
	defer zones.Close()

	app := ui.NewAppModel(def.PanelSet(), zones, action.NewExecutor(logger), logger,
		ui.WithInitialPanel(def.InitialPanel),
		ui.WithMaximumHeight(def.MaximumHeight),
		ui.WithTransitionFrames(settings.TransitionFrames, 0),
		ui.WithObserver(tracer),
	)
	logger.Info("starting", "panels", len(def.Panels), "initial_panel", def.InitialPanel, "max_height", def.MaximumHeight)

	p := tea.NewProgram(app.AsTeaModel(), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func loadMenu(s config.Settings) (*config.Menu, error) {
	if s.MenuFile == "" {
		return config.DefaultMenu()
	}
	return config.LoadMenu(s.MenuFile)
}

