package worker

import (
	"context"

	"github.com/MyteScripts/investbot/internal/logger"
	"github.com/MyteScripts/investbot/internal/venture"
)

// SweepJob advances all ventures when run. It is scheduled at a fixed
// interval and is safe to run back to back: missed intervals are absorbed
// by the engine's elapsed-time accounting.
type SweepJob struct {
	svc venture.Service
}

// NewSweepJob creates a sweep job backed by the venture service
func NewSweepJob(svc venture.Service) *SweepJob {
	return &SweepJob{svc: svc}
}

// Process runs one sweep pass
func (j *SweepJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgSweepStarting)

	if _, err := j.svc.Sweep(ctx); err != nil {
		log.Error(LogMsgSweepFailed, "error", err)
		return err
	}
	return nil
}
