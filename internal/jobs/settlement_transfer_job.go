package jobs

import (
	"context"
	"log/slog"
	"time"

	"farmlink/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// SettlementTransferJob periodically completes the payout legs of settled
// orders. Settlement opens the legs in processing status; this sweep
// finishes every leg whose settlement is older than the configured delay.
type SettlementTransferJob struct {
	handler commands.CompleteTransfersCommandHandler
	delay   time.Duration
	spec    string
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewSettlementTransferJob creates the sweep job. spec is a six-field cron
// expression; delay is how long a settled payment rests before its transfers
// complete.
func NewSettlementTransferJob(
	handler commands.CompleteTransfersCommandHandler,
	delay time.Duration,
	spec string,
	logger *slog.Logger,
) *SettlementTransferJob {
	return &SettlementTransferJob{
		handler: handler,
		delay:   delay,
		spec:    spec,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "settlement_transfer_job"),
	}
}

// Start schedules the sweep.
func (j *SettlementTransferJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		ctx := context.Background()

		cmd, err := commands.NewCompleteTransfersCommand(time.Now().Add(-j.delay))
		if err != nil {
			j.logger.ErrorContext(ctx, "Settlement transfer job misconfigured", "error", err)
			return
		}

		completed, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Settlement transfer job failed", "error", err)
			return
		}
		if completed > 0 {
			j.logger.InfoContext(ctx, "Completed settlement transfers", "orders", completed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Settlement transfer job started", "spec", j.spec)
	return nil
}

// Stop stops the sweep.
func (j *SettlementTransferJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Settlement transfer job stopped")
}
