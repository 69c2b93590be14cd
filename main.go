//go:build !tinygo

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Black-And-White-Club/pingpong-scoreboard/app/console"
	"github.com/Black-And-White-Club/pingpong-scoreboard/app/display"
	"github.com/Black-And-White-Club/pingpong-scoreboard/app/heartbeat"
	"github.com/Black-And-White-Club/pingpong-scoreboard/app/shared/attr"
	"github.com/Black-And-White-Club/pingpong-scoreboard/app/shared/logging"
	"github.com/Black-And-White-Club/pingpong-scoreboard/app/shared/tracing"
	"github.com/Black-And-White-Club/pingpong-scoreboard/app/system"
	"github.com/Black-And-White-Club/pingpong-scoreboard/config"
	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	// Load configuration.
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// The console owns the terminal, so logs always go to a file.
	if cfg.Log.File == "" {
		cfg.Log.File = "scoreboard.log"
	}
	logger, closeLog, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to open log: %v", err)
	}

	tracerShutdown, err := tracing.Init(cfg.Tracing, cfg.Service, logger)
	if err != nil {
		log.Fatalf("Failed to initialize tracing: %v", err)
	}

	// One in-memory panel per configured display.
	frames := make([]*display.Framebuffer, 0, len(cfg.Displays))
	surfaces := make([]display.Surface, 0, len(cfg.Displays))
	for _, d := range cfg.Displays {
		fb := display.NewFramebuffer(d.Width, d.Height)
		frames = append(frames, fb)
		surfaces = append(surfaces, display.NewPanel(d.Name, fb))
	}

	sb, err := system.New(cfg, logger, system.Hardware{
		Surfaces: surfaces,
		LED:      heartbeat.NewLogLED(logger),
	})
	if err != nil {
		log.Fatalf("Failed to create scoreboard: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	// Keys stand in for the button interrupts.
	ui := console.New(ctx, logger, sb.Debouncer, sb.Bindings)
	for i, d := range cfg.Displays {
		ui.Attach(d.Name, frames[i])
	}
	prog := tea.NewProgram(ui, tea.WithAltScreen(), tea.WithoutSignalHandler())

	errCh := make(chan error, 1)
	go func() {
		err := sb.Run(ctx)
		errCh <- err
		prog.Send(console.StoppedMsg{Err: err})
	}()

	// Handle graceful shutdown.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		prog.Quit()
	}()

	exitCode := 0
	if _, err := prog.Run(); err != nil {
		logger.Error("Console failed", attr.Error(err))
		exitCode = 1
	}

	logger.Info("Shutting down gracefully...")
	cancel()
	if err := <-errCh; err != nil {
		log.Printf("Scoreboard stopped: %v", err)
		exitCode = 1
	}

	sb.Close()
	if err := tracerShutdown(context.Background()); err != nil {
		logger.Error("Failed to shut down tracing", attr.Error(err))
	}

	logger.Info("Shutdown complete.")
	_ = closeLog()
	os.Exit(exitCode)
}
