package workers

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-shipment-tracker/internal/config"
	"github.com/MKhiriev/go-shipment-tracker/internal/logger"
	"github.com/MKhiriev/go-shipment-tracker/internal/service"
	"github.com/robfig/cron/v3"
)

type Workers struct {
	workers []Worker
	cron    *cron.Cron
	cancel  context.CancelFunc
	logger  *logger.Logger
}

// NewWorkers creates the audit dispatcher and the expired token pruner.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewAuditDispatcher(services.AuditService, cfg.AuditSchedule, logger),
			NewTokenPruner(services.AuthService, cfg.TokenPruneSchedule, logger),
		},
		logger: logger,
	}
}

// Run performs one pass of every worker, in order.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

// Start schedules every worker. Passes receive a context derived from ctx
// that is cancelled by Stop.
func (w *Workers) Start(ctx context.Context) error {
	cronLog := cronLogger{logger: w.logger}
	c := cron.New(cron.WithLogger(cronLog), cron.WithChain(cron.Recover(cronLog)))

	runCtx, cancel := context.WithCancel(ctx)
	for _, worker := range w.workers {
		job := cron.NewChain(cron.SkipIfStillRunning(cronLog)).Then(cron.FuncJob(func() {
			worker.Run(runCtx)
		}))

		if _, err := c.AddJob(worker.Schedule(), job); err != nil {
			cancel()
			return fmt.Errorf("error scheduling worker %q: %w", worker.Name(), err)
		}
		w.logger.Info().Str("worker", worker.Name()).Str("schedule", worker.Schedule()).Msg("worker scheduled")
	}

	w.cron, w.cancel = c, cancel
	c.Start()

	return nil
}

// Stop cancels running passes and waits for them to return.
func (w *Workers) Stop() {
	if w.cron == nil {
		return
	}

	w.cancel()
	<-w.cron.Stop().Done()
	w.logger.Info().Msg("workers stopped")
}

// cronLogger adapts the application logger to cron.Logger.
type cronLogger struct {
	logger *logger.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug().Fields(keysAndValues).Msg("cron: " + msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Err(err).Fields(keysAndValues).Msg("cron: " + msg)
}
