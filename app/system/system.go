// Package system wires the scoreboard together and runs its tasks.
package system

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Black-And-White-Club/pingpong-scoreboard/app/debounce"
	"github.com/Black-And-White-Club/pingpong-scoreboard/app/dispatch"
	"github.com/Black-And-White-Club/pingpong-scoreboard/app/display"
	"github.com/Black-And-White-Club/pingpong-scoreboard/app/health"
	"github.com/Black-And-White-Club/pingpong-scoreboard/app/heartbeat"
	"github.com/Black-And-White-Club/pingpong-scoreboard/app/input"
	"github.com/Black-And-White-Club/pingpong-scoreboard/app/ledger"
	"github.com/Black-And-White-Club/pingpong-scoreboard/app/metrics"
	"github.com/Black-And-White-Club/pingpong-scoreboard/app/scoreboard"
	"github.com/Black-And-White-Club/pingpong-scoreboard/app/scoreevents"
	"github.com/Black-And-White-Club/pingpong-scoreboard/app/shared/attr"
	"github.com/Black-And-White-Club/pingpong-scoreboard/config"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"golang.org/x/sync/errgroup"
)

// Hardware is what the build target provides. Surfaces are in the same
// order as cfg.Displays.
type Hardware struct {
	Surfaces []display.Surface
	LED      heartbeat.LED
}

// Scoreboard holds every long-lived component.
type Scoreboard struct {
	Logger      *slog.Logger
	Config      *config.Config
	Bindings    []input.Binding
	Debouncer   *debounce.Debouncer
	Ledger      *ledger.Ledger
	Controller  *scoreboard.Controller
	Loop        *dispatch.Loop
	Heartbeat   *heartbeat.Heartbeat
	Registry    *prometheus.Registry
	EventBus    *gochannel.GoChannel
	EventRouter *scoreevents.ScoreEventsRouter
	Health      *health.Server
}

// New builds the scoreboard. Nothing is drawn until Run.
func New(cfg *config.Config, logger *slog.Logger, hw Hardware) (*Scoreboard, error) {
	logger.Info("Creating scoreboard", attr.String("service", cfg.Service.Name))

	if len(hw.Surfaces) != len(cfg.Displays) {
		return nil, fmt.Errorf("have %d surfaces for %d configured displays", len(hw.Surfaces), len(cfg.Displays))
	}
	if hw.LED == nil {
		return nil, errors.New("no heartbeat LED")
	}

	bindings, err := input.Bindings(cfg.Inputs)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	m, err := metrics.NewPrometheusMetrics(registry)
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	bus := scoreevents.NewBus(logger)
	router, err := message.NewRouter(message.RouterConfig{}, watermill.NewSlogLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to create event router: %w", err)
	}
	eventRouter := scoreevents.NewScoreEventsRouter(logger, router, bus, registry)

	screens := make([]scoreboard.Screen, len(hw.Surfaces))
	for i, surf := range hw.Surfaces {
		screens[i] = scoreboard.Screen{Surface: surf, Label: cfg.Displays[i].Label}
	}

	l := ledger.New()
	controller, err := scoreboard.NewController(
		logger,
		otel.Tracer("scoreboard"),
		m,
		scoreevents.NewEventPublisher(bus, logger),
		l,
		screens,
	)
	if err != nil {
		return nil, err
	}

	deb := debounce.New(cfg.Scoreboard.DebounceWindow)

	sb := &Scoreboard{
		Logger:      logger,
		Config:      cfg,
		Bindings:    bindings,
		Debouncer:   deb,
		Ledger:      l,
		Controller:  controller,
		Loop:        dispatch.NewLoop(logger, deb, controller, m, cfg.Scoreboard.PollInterval),
		Heartbeat:   heartbeat.New(logger, hw.LED, cfg.Heartbeat.On, cfg.Heartbeat.Off),
		Registry:    registry,
		EventBus:    bus,
		EventRouter: eventRouter,
	}

	if err := eventRouter.Configure(context.Background(), scoreevents.NewScoreEventHandlers(logger, m)); err != nil {
		return nil, err
	}

	if cfg.Health.Addr != "" {
		sb.Health = health.NewServer(logger, cfg.Health.Addr, health.NewHandler(cfg.Service.Version, controller, registry))
	}
	return sb, nil
}

// Run draws the screens and then runs the event loop, heartbeat, event
// router and health server until ctx is cancelled or one of them fails.
// Health server failures are logged only.
func (s *Scoreboard) Run(ctx context.Context) error {
	s.Logger.InfoContext(ctx, "Starting scoreboard",
		attr.GameID(s.Controller.GameID().String()),
		attr.Duration("debounce_window", s.Debouncer.Window()),
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.EventRouter.Run(ctx)
	})

	g.Go(func() error {
		select {
		case <-s.EventRouter.Running():
		case <-ctx.Done():
			return nil
		}
		if err := s.Controller.DrawScreens(ctx); err != nil {
			return fmt.Errorf("failed to draw screens: %w", err)
		}
		return s.Loop.Run(ctx)
	})

	g.Go(func() error {
		return s.Heartbeat.Run(ctx)
	})

	// A bad health address must not stop score keeping.
	if s.Health != nil {
		g.Go(func() error {
			if err := s.Health.Run(ctx); err != nil {
				s.Logger.WarnContext(ctx, "Health server unavailable", attr.Error(err))
			}
			return nil
		})
	}

	err := g.Wait()
	if err != nil {
		s.Logger.Error("Scoreboard stopped", attr.Error(err))
	} else {
		s.Logger.Info("Scoreboard stopped")
	}
	return err
}

// Close releases the event router and bus.
func (s *Scoreboard) Close() {
	s.Logger.Info("Closing scoreboard")
	if s.EventRouter != nil {
		if err := s.EventRouter.Close(); err != nil {
			s.Logger.Error("Failed to close event router", attr.Error(err))
		}
	}
	if s.EventBus != nil {
		if err := s.EventBus.Close(); err != nil {
			s.Logger.Error("Failed to close event bus", attr.Error(err))
		}
	}
}
