package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"farmlink/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	settlementTransferJob *SettlementTransferJob
}

// NewJobManager creates a job manager with all required jobs wired to their
// command handlers.
func NewJobManager(
	completeTransfersHandler commands.CompleteTransfersCommandHandler,
	settlementDelay time.Duration,
	sweepSpec string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		settlementTransferJob: NewSettlementTransferJob(
			completeTransfersHandler, settlementDelay, sweepSpec, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.settlementTransferJob.Start(); err != nil {
		return fmt.Errorf("failed to start settlement transfer job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.settlementTransferJob.Stop()
}
