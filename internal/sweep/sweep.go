package sweep

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const workerCount = 4

type TrackingService interface {
	ActiveAffiliateIDs(ctx context.Context) ([]int, error)
	EvaluateAffiliate(ctx context.Context, affiliateID int, previousMonth time.Time) error
}

type Repo interface {
	TryMarkSweep(ctx context.Context, month time.Time) (bool, error)
}

// Service runs the first-of-month compliance sweep: once a new month starts,
// every affiliate that missed the previous month's minimum purchase quota is
// deactivated. The sweep for a given month executes at most once, guarded by
// a database marker, so several instances can run the ticker concurrently.
type Service struct {
	trackingService TrackingService
	sweepRepo       Repo
	interval        time.Duration
}

func New(trackingService TrackingService, sweepRepo Repo, interval time.Duration) *Service {
	return &Service{
		trackingService: trackingService,
		sweepRepo:       sweepRepo,
		interval:        interval,
	}
}

// Run blocks until ctx is cancelled, checking on every tick whether the
// current month still needs its sweep.
func (s *Service) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := s.sweepOnce(ctx, time.Now()); err != nil {
				zap.L().Error("monthly sweep failed", zap.Error(err))
			}
		}
	}
}

func (s *Service) sweepOnce(ctx context.Context, now time.Time) error {
	month := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	acquired, err := s.sweepRepo.TryMarkSweep(ctx, month)
	if err != nil {
		return err
	}
	if !acquired {
		return nil
	}

	previousMonth := month.AddDate(0, -1, 0)
	ids, err := s.trackingService.ActiveAffiliateIDs(ctx)
	if err != nil {
		return err
	}
	zap.L().Info("starting monthly sweep",
		zap.String("month", month.Format("2006-01")),
		zap.Int("affiliates", len(ids)))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workerCount)
	for _, id := range ids {
		id := id
		g.Go(func() error {
			if err := s.trackingService.EvaluateAffiliate(gctx, id, previousMonth); err != nil {
				zap.L().Error("can't evaluate affiliate",
					zap.Int("affiliateID", id), zap.Error(err))
			}
			return nil
		})
	}
	return g.Wait()
}
