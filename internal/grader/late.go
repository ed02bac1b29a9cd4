package grader

import (
	"context"
	"math"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	lf "github.com/classgrade/classgrade/internal/logfield"
	"github.com/classgrade/classgrade/internal/models"
)

// LatePolicy blends a pair of resolved totals under a penalty fraction.
type LatePolicy struct {
	Penalty float64
}

func NewLatePolicy(penalty float64) (LatePolicy, error) {
	if penalty < 0 || penalty > 1 {
		return LatePolicy{}, errors.Errorf("Penalty fraction out of range: %f", penalty)
	}
	return LatePolicy{Penalty: penalty}, nil
}

// Final returns the blended score. A late attempt that did not improve
// on the on-time score is ignored entirely; an improving one is scaled
// down by the penalty.
func (p LatePolicy) Final(onTime, late int) int {
	if late <= onTime {
		return onTime
	}
	return int(math.Round(float64(late) * (1.0 - p.Penalty)))
}

// LateBatchResult pairs the on-time and late resolution passes. Results
// follows the on-time batch order; students present in only one of the
// two passes are dropped.
type LateBatchResult struct {
	OnTime  *BatchResult
	Late    *BatchResult
	Results []*models.LateGradingResult
}

// ResolveLateGrading resolves the roster once per deadline and blends the
// paired results. The two passes run concurrently; each pass keeps its
// own sequential per-student ordering.
func (r *Resolver) ResolveLateGrading(
	ctx context.Context,
	assignmentID int64,
	onTimeDeadline *time.Time,
	lateDeadline *time.Time,
	policy LatePolicy,
	progress ProgressObserver,
) (*LateBatchResult, error) {
	var onTime, late *BatchResult

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		batch, err := r.ResolveAssignment(gctx, assignmentID, onTimeDeadline, progress)
		if err != nil {
			return errors.Wrap(err, "On-time pass failed")
		}
		onTime = batch
		return nil
	})
	g.Go(func() error {
		batch, err := r.ResolveAssignment(gctx, assignmentID, lateDeadline, nil)
		if err != nil {
			return errors.Wrap(err, "Late pass failed")
		}
		late = batch
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return r.combineBatches(onTime, late, policy), nil
}

func (r *Resolver) combineBatches(onTime, late *BatchResult, policy LatePolicy) *LateBatchResult {
	lateByLogin := make(map[string]*models.StudentResult, len(late.Results))
	for _, result := range late.Results {
		lateByLogin[result.Login] = result
	}

	combined := &LateBatchResult{
		OnTime:  onTime,
		Late:    late,
		Results: make([]*models.LateGradingResult, 0, len(onTime.Results)),
	}

	log := r.logger.With(lf.BatchID(onTime.BatchID))
	for _, onTimeResult := range onTime.Results {
		lateResult, found := lateByLogin[onTimeResult.Login]
		if !found {
			log.Warn("Student missing from late pass, dropping",
				lf.StudentLogin(onTimeResult.Login))
			continue
		}

		combined.Results = append(combined.Results, &models.LateGradingResult{
			Login:      onTimeResult.Login,
			RepoURL:    onTimeResult.RepoURL,
			OnTime:     onTimeResult,
			Late:       lateResult,
			FinalScore: policy.Final(onTimeResult.TotalAwarded, lateResult.TotalAwarded),
		})
	}

	return combined
}
