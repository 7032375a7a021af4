package worker

import (
	"context"

	"github.com/pointmotion/engage-backend/internal/goal"
	"github.com/pointmotion/engage-backend/internal/logger"
)

// GoalSweepJob deletes goals whose expiry has passed. It is scheduled at a
// fixed interval and runs on the shared worker pool.
type GoalSweepJob struct {
	goalService goal.Service
}

// NewGoalSweepJob creates a new GoalSweepJob
func NewGoalSweepJob(goalService goal.Service) *GoalSweepJob {
	return &GoalSweepJob{goalService: goalService}
}

// Process runs one sweep. A sweep that removes nothing is not an error.
func (j *GoalSweepJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgGoalSweepStarting)

	removed, err := j.goalService.SweepExpired(ctx)
	if err != nil {
		log.Error(LogMsgGoalSweepFailed, "error", err)
		return err
	}

	if removed > 0 {
		log.Info(LogMsgGoalSweepCompleted, "removed", removed)
	}
	return nil
}
