package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"cardpanel/internal/card"
	"cardpanel/internal/config"
	"cardpanel/internal/telemetry"
	"cardpanel/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// flags holds command-line overrides applied on top of the loaded config.
type flags struct {
	state     string
	exportDir string
	debug     bool
}

func parseFlags() flags {
	var f flags

	flag.StringVar(&f.state, "state", "", "initial panel state: minimized, stack or expanded")
	flag.StringVar(&f.exportDir, "export-dir", "", "directory for exported snapshot images")
	flag.BoolVar(&f.debug, "debug", os.Getenv("CARDPANEL_DEBUG") != "", "write a debug log to cardpanel.log")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: cardpanel [flags]\n\n")
		fmt.Fprintf(os.Stderr, "cardpanel shows a draggable card that snaps between minimized,\n")
		fmt.Fprintf(os.Stderr, "stack and expanded positions.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()
	return f
}

func run(f flags) error {
	if f.debug {
		logFile, err := tea.LogToFile("cardpanel.log", "cardpanel")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer logFile.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if f.state != "" {
		if _, err := card.ParseState(f.state); err != nil {
			return fmt.Errorf("-state: %w", err)
		}
		cfg.UI.InitialState = f.state
	}
	if f.exportDir != "" {
		cfg.UI.ExportDir = f.exportDir
	}

	ctx := context.Background()
	tp, err := telemetry.NewProvider(ctx)
	if err != nil {
		log.Printf("telemetry: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Printf("telemetry shutdown: %v", err)
		}
	}()

	model := ui.NewAppModel(cfg, tp.Tracer(card.TracerName), log.Default()).AsTeaModel()
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func main() {
	if err := run(parseFlags()); err != nil {
		fmt.Fprintf(os.Stderr, "cardpanel: %v\n", err)
		os.Exit(1)
	}
}
