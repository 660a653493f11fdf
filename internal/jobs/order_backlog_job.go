package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/order"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
)

// DefaultBacklogSchedule runs the backlog count once a minute.
const DefaultBacklogSchedule = "@every 1m"

// OrderCounter counts orders per status.
type OrderCounter interface {
	Handle(ctx context.Context, query queries.CountOrdersByStatusQuery) (map[order.Status]int64, error)
}

// OrderBacklogJob periodically counts orders per status and exports the
// result as the restaurant_orders gauge.
type OrderBacklogJob struct {
	counter  OrderCounter
	schedule string
	cron     *cron.Cron
	gauge    *prometheus.GaugeVec
	logger   *slog.Logger
}

// NewOrderBacklogJob creates the job and registers its gauge with reg.
// An empty schedule selects DefaultBacklogSchedule.
func NewOrderBacklogJob(
	counter OrderCounter,
	schedule string,
	reg prometheus.Registerer,
	logger *slog.Logger,
) (*OrderBacklogJob, error) {
	if schedule == "" {
		schedule = DefaultBacklogSchedule
	}

	gauge := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "restaurant_orders",
		Help: "Number of orders per status at the last backlog count",
	}, []string{"status"})
	if err := reg.Register(gauge); err != nil {
		return nil, fmt.Errorf("register order backlog gauge: %w", err)
	}

	return &OrderBacklogJob{
		counter:  counter,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		gauge:    gauge,
		logger:   logger.With("component", "order_backlog_job"),
	}, nil
}

// Run performs one count. On error the gauge keeps its previous values.
func (j *OrderBacklogJob) Run(ctx context.Context) error {
	counts, err := j.counter.Handle(ctx, queries.NewCountOrdersByStatusQuery())
	if err != nil {
		return err
	}

	attrs := make([]any, 0, 2*len(counts))
	for _, status := range order.AllowedStatuses() {
		j.gauge.WithLabelValues(status.String()).Set(float64(counts[status]))
		attrs = append(attrs, status.String(), counts[status])
	}

	j.logger.InfoContext(ctx, "Order backlog", attrs...)
	return nil
}

// Start schedules the job. The schedule accepts six-field cron expressions
// and descriptors such as "@every 30s".
func (j *OrderBacklogJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Order backlog job failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order backlog job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running count to finish.
func (j *OrderBacklogJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order backlog job stopped")
}
