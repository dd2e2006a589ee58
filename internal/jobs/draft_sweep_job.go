package jobs

import (
	"context"
	"time"

	"pizzabot/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// DefaultSweepSchedule runs the sweep every fifteen minutes. Schedules have a
// leading seconds field.
const DefaultSweepSchedule = "0 */15 * * * *"

// DraftSweepJob deletes draft orders that have not changed for longer than ttl.
type DraftSweepJob struct {
	handler  commands.DeleteStaleDraftsCommandHandler
	schedule string
	ttl      time.Duration
	cron     *cron.Cron
	logger   zerolog.Logger
}

func NewDraftSweepJob(
	handler commands.DeleteStaleDraftsCommandHandler,
	schedule string,
	ttl time.Duration,
	logger zerolog.Logger,
) *DraftSweepJob {
	return &DraftSweepJob{
		handler:  handler,
		schedule: schedule,
		ttl:      ttl,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With().Str("component", "draft_sweep_job").Logger(),
	}
}

// Sweep runs one pass and returns the number of drafts removed.
func (j *DraftSweepJob) Sweep(ctx context.Context) (int64, error) {
	cmd, err := commands.NewDeleteStaleDraftsCommand(j.ttl)
	if err != nil {
		return 0, err
	}
	return j.handler.Handle(ctx, cmd)
}

func (j *DraftSweepJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		n, err := j.Sweep(context.Background())
		if err != nil {
			j.logger.Error().Err(err).Msg("draft sweep failed")
			return
		}
		if n > 0 {
			j.logger.Info().Int64("deleted", n).Msg("stale drafts deleted")
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info().Str("schedule", j.schedule).Dur("ttl", j.ttl).Msg("draft sweep job started")
	return nil
}

// Stop waits for a running sweep to finish.
func (j *DraftSweepJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info().Msg("draft sweep job stopped")
}
