package jobs

import (
	"fmt"
	"time"

	"pizzabot/internal/core/application/usecases/commands"

	"github.com/rs/zerolog"
)

// JobManager starts and stops the background jobs together.
type JobManager struct {
	// nil when draft sweeping is disabled
	draftSweepJob *DraftSweepJob
}

// NewJobManager wires the jobs. A zero draftTTL disables the draft sweep.
func NewJobManager(
	deleteStaleDraftsHandler commands.DeleteStaleDraftsCommandHandler,
	sweepSchedule string,
	draftTTL time.Duration,
	logger zerolog.Logger,
) *JobManager {
	jm := &JobManager{}
	if draftTTL > 0 {
		jm.draftSweepJob = NewDraftSweepJob(deleteStaleDraftsHandler, sweepSchedule, draftTTL, logger)
	}
	return jm
}

func (jm *JobManager) StartAll() error {
	if jm.draftSweepJob == nil {
		return nil
	}
	if err := jm.draftSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start draft sweep job: %w", err)
	}
	return nil
}

func (jm *JobManager) StopAll() {
	if jm.draftSweepJob != nil {
		jm.draftSweepJob.Stop()
	}
}
