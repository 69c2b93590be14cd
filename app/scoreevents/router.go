package scoreevents

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Black-And-White-Club/pingpong-scoreboard/app/shared/attr"
	watermillmetrics "github.com/ThreeDotsLabs/watermill/components/metrics"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

// ScoreEventsRouter handles routing for scoreboard events.
type ScoreEventsRouter struct {
	logger     *slog.Logger
	Router     *message.Router
	subscriber message.Subscriber
	registry   prometheus.Registerer
}

// NewScoreEventsRouter creates a new ScoreEventsRouter. A nil registry skips router metrics.
func NewScoreEventsRouter(
	logger *slog.Logger,
	router *message.Router,
	subscriber message.Subscriber,
	registry prometheus.Registerer,
) *ScoreEventsRouter {
	return &ScoreEventsRouter{
		logger:     logger,
		Router:     router,
		subscriber: subscriber,
		registry:   registry,
	}
}

// Configure sets up the router.
func (r *ScoreEventsRouter) Configure(ctx context.Context, handlers Handlers) error {
	if r.registry != nil {
		metricsBuilder := watermillmetrics.NewPrometheusMetricsBuilder(r.registry, "scoreboard", "events")
		metricsBuilder.AddPrometheusRouterMetrics(r.Router)
	}

	r.Router.AddMiddleware(
		middleware.CorrelationID,
		middleware.Recoverer,
	)

	if err := r.RegisterHandlers(ctx, handlers); err != nil {
		return fmt.Errorf("failed to configure score events router: %w", err)
	}
	return nil
}

// RegisterHandlers registers event handlers.
func (r *ScoreEventsRouter) RegisterHandlers(ctx context.Context, handlers Handlers) error {
	r.logger.InfoContext(ctx, "Registering Score Event Handlers")

	eventsToHandlers := map[string]message.NoPublishHandlerFunc{
		GameStartedV1:  handlers.HandleGameStarted,
		ScoreUpdatedV1: handlers.HandleScoreUpdated,
	}

	for topic, handlerFunc := range eventsToHandlers {
		handlerFunc := handlerFunc // per-iteration copy; go directive is below 1.22
		handlerName := fmt.Sprintf("scoreboard.%s", topic)
		r.Router.AddNoPublisherHandler(
			handlerName,
			topic,
			r.subscriber,
			func(msg *message.Message) error {
				if err := handlerFunc(msg); err != nil {
					r.logger.ErrorContext(ctx, "Error processing score event",
						attr.String("message_id", msg.UUID),
						attr.String("handler", handlerName),
						attr.Error(err),
					)
					return err
				}
				return nil
			},
		)
	}
	return nil
}

// Run blocks until ctx is done or the router is closed.
func (r *ScoreEventsRouter) Run(ctx context.Context) error {
	return r.Router.Run(ctx)
}

// Running is closed once every handler is subscribed.
func (r *ScoreEventsRouter) Running() chan struct{} {
	return r.Router.Running()
}

// Close stops the router.
func (r *ScoreEventsRouter) Close() error {
	return r.Router.Close()
}
