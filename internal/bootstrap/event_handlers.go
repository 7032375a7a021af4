package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/pointmotion/engage-backend/internal/config"
	"github.com/pointmotion/engage-backend/internal/event"
	"github.com/pointmotion/engage-backend/internal/metrics"
	"github.com/pointmotion/engage-backend/internal/notify"
)

// RegisterEventHandlers sets up all event subscribers:
// - Metrics collector (event-based Prometheus counters)
// - Notification subscriber (goal and badge workflows to the provider)
func RegisterEventHandlers(cfg *config.Config, eventBus event.Bus) error {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(eventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	notifier := notify.NewClient(notify.Config{
		BaseURL:   cfg.NotifyBaseURL,
		ProjectID: cfg.NotifyProjectID,
		APIKey:    cfg.NotifyAPIKey,
	})
	if notifier.Enabled() {
		notify.NewSubscriber(notifier).Subscribe(eventBus)
		slog.Info(LogMsgNotifierRegistered, "base_url", cfg.NotifyBaseURL)
	} else {
		slog.Info(LogMsgNotifierDisabled)
	}

	return nil
}
