package jobs

import (
	"context"
	"log/slog"

	"fastfeet/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultDeliveryBacklogSchedule runs the report once a minute.
const DefaultDeliveryBacklogSchedule = "@every 1m"

// DeliveryBacklogHandler returns the pending delivery count per deliveryman.
type DeliveryBacklogHandler interface {
	Handle(ctx context.Context, query queries.GetDeliveryBacklogQuery) ([]queries.GetDeliveryBacklogQueryResponse, error)
}

// DeliveryBacklogJob periodically logs how many deliveries each deliveryman
// still has to complete.
type DeliveryBacklogJob struct {
	handler  DeliveryBacklogHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDeliveryBacklogJob creates the job. An empty schedule falls back to
// DefaultDeliveryBacklogSchedule.
func NewDeliveryBacklogJob(handler DeliveryBacklogHandler, schedule string, logger *slog.Logger) *DeliveryBacklogJob {
	if schedule == "" {
		schedule = DefaultDeliveryBacklogSchedule
	}

	return &DeliveryBacklogJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "delivery_backlog_job"),
	}
}

// Start schedules the report. Returns an error for an invalid schedule.
func (j *DeliveryBacklogJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery backlog job started", "schedule", j.schedule)
	return nil
}

// RunOnce produces a single report. Failures are logged, never returned.
func (j *DeliveryBacklogJob) RunOnce(ctx context.Context) {
	backlog, err := j.handler.Handle(ctx, queries.NewGetDeliveryBacklogQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Delivery backlog job failed", "error", err)
		return
	}

	var total int64
	for _, entry := range backlog {
		total += entry.Pending
		j.logger.InfoContext(ctx, "Pending deliveries",
			"deliveryman_id", entry.DeliverymanID,
			"pending", entry.Pending,
		)
	}

	j.logger.InfoContext(ctx, "Delivery backlog",
		"deliverymen", len(backlog),
		"pending_total", total,
	)
}

// Stop stops scheduling and waits for a running report to finish.
func (j *DeliveryBacklogJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Delivery backlog job stopped")
}
