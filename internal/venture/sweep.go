package venture

import (
	"context"
	"fmt"
	"time"

	"github.com/MyteScripts/investbot/internal/event"
	"github.com/MyteScripts/investbot/internal/logger"
	"github.com/MyteScripts/investbot/internal/metrics"
	"github.com/MyteScripts/investbot/internal/repository"
)

// SweepStats summarizes a completed sweep pass
type SweepStats struct {
	Swept     int           `json:"swept"`
	Incidents int           `json:"incidents"`
	Pruned    int           `json:"pruned"`
	Skipped   int           `json:"skipped"`
	Duration  time.Duration `json:"duration"`
}

// Sweep advances every venture to the current time, one owner per
// transaction. A failing owner does not abort the pass; their ventures
// simply catch up on the next sweep. The global checkpoint only advances
// after the pass completes.
func (s *service) Sweep(ctx context.Context) (*SweepStats, error) {
	start := s.now()
	log := logger.FromContext(ctx)

	checkpoint, err := s.repo.GetSweepCheckpoint(ctx)
	if err != nil {
		metrics.SweepErrors.Inc()
		return nil, fmt.Errorf("failed to get sweep checkpoint: %w", err)
	}

	owners, err := s.repo.GetOwnerIDs(ctx)
	if err != nil {
		metrics.SweepErrors.Inc()
		return nil, fmt.Errorf("failed to get venture owners: %w", err)
	}

	stats := &SweepStats{}
	for _, ownerID := range owners {
		if err := s.sweepOwner(ctx, ownerID, checkpoint, stats); err != nil {
			log.Error(LogMsgSweepOwnerFailed, "user_id", ownerID, "error", err)
			metrics.SweepErrors.Inc()
		}
	}

	if err := s.repo.SetSweepCheckpoint(ctx, start); err != nil {
		metrics.SweepErrors.Inc()
		return nil, fmt.Errorf("failed to set sweep checkpoint: %w", err)
	}

	stats.Duration = s.now().Sub(start)

	metrics.SweepDuration.Observe(stats.Duration.Seconds())
	metrics.SweepVentures.WithLabelValues("swept").Set(float64(stats.Swept))
	metrics.SweepVentures.WithLabelValues("pruned").Set(float64(stats.Pruned))
	metrics.SweepVentures.WithLabelValues("skipped").Set(float64(stats.Skipped))

	s.publish(ctx, event.NewSweepCompletedEvent(
		stats.Swept, stats.Incidents, stats.Pruned, stats.Skipped, stats.Duration))

	log.Info(LogMsgSweepCompleted,
		"swept", stats.Swept,
		"incidents", stats.Incidents,
		"pruned", stats.Pruned,
		"skipped", stats.Skipped,
		"duration", stats.Duration)

	return stats, nil
}

func (s *service) sweepOwner(ctx context.Context, ownerID string, checkpoint time.Time, stats *SweepStats) error {
	log := logger.FromContext(ctx)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	ventures, err := tx.GetVenturesForUserForUpdate(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgGetVentureFailed, err)
	}

	type incident struct {
		typeKey string
		cause   string
	}
	var incidents []incident

	now := s.now()
	for i := range ventures {
		v := &ventures[i]

		vt, err := s.catalog.Get(v.TypeKey)
		if err != nil {
			// A row referencing a type no longer in the catalog is left
			// untouched rather than advanced against stale tuning
			log.Warn(LogMsgUnknownTypeSkipped, "type", v.TypeKey, "venture_id", v.ID)
			stats.Skipped++
			continue
		}

		result := s.engine.Advance(v, vt, checkpoint, now)

		if result.IncidentStarted {
			incidents = append(incidents, incident{typeKey: v.TypeKey, cause: result.Incident})
		}

		if v.Abandoned() {
			if err := tx.DeleteVenture(ctx, v.ID); err != nil {
				return err
			}
			stats.Pruned++
			log.Info(LogMsgVenturePruned, "user_id", ownerID, "type", v.TypeKey)
			continue
		}

		if err := tx.UpdateVenture(ctx, v); err != nil {
			return err
		}
		stats.Swept++
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgCommitFailed, err)
	}

	// Incident events describe committed state; a rolled-back owner must
	// not announce incidents that never happened
	for _, inc := range incidents {
		stats.Incidents++
		log.Info(LogMsgIncidentTriggered,
			"user_id", ownerID, "type", inc.typeKey, "incident", inc.cause)
		s.publish(ctx, event.NewVentureEvent(
			event.VentureIncident, ownerID, inc.typeKey, 0, inc.cause))
	}
	return nil
}
