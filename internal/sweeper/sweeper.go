package sweeper

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/betcha-app/betcha/internal/config"
	"github.com/betcha-app/betcha/internal/domain"
	"github.com/betcha-app/betcha/internal/notify"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=sweeper.go -destination=sweeper_mock.go -package=sweeper

type WagerRepo interface {
	FindExpired(ctx context.Context, now time.Time, limit uint32) ([]domain.Wager, error)
	MarkExpired(ctx context.Context, wagerID int) (bool, error)
	GetLockedParticipants(ctx context.Context, wagerID int) ([]domain.WagerParticipant, error)
	ClearStakeLock(ctx context.Context, participantID int) (bool, error)
}

type RaidRepo interface {
	FindOverdue(ctx context.Context, now time.Time, budget time.Duration, limit uint32) ([]domain.RaidAttempt, error)
	TimeOut(ctx context.Context, raidID int, now time.Time) (bool, error)
}

type FriendshipRepo interface {
	FindMismatchedPairs(ctx context.Context, limit uint32) ([]domain.Friendship, error)
	UpdateHeatPair(ctx context.Context, userID, friendID int, f *domain.Friendship) error
}

type Ledger interface {
	Credit(ctx context.Context, userID int, amount int64, entryType string, ref domain.Ref) error
}

var inFlight sync.Map

// Service is the background corrective loop: it expires wagers and returns
// their locked stakes, times out overdue raids, and repairs friendship pairs
// whose directed rows diverged.
type Service struct {
	wagerRepo  WagerRepo
	raidRepo   RaidRepo
	friendRepo FriendshipRepo
	ledger     Ledger
	publisher  notify.Publisher

	limit      uint32
	budget     time.Duration
	interval   time.Duration
	workerPool WorkerPoolI
	now        func() time.Time
}

func New(cfg *config.Config, wagerRepo WagerRepo, raidRepo RaidRepo, friendRepo FriendshipRepo, ledger Ledger, publisher notify.Publisher) *Service {
	return &Service{
		wagerRepo:  wagerRepo,
		raidRepo:   raidRepo,
		friendRepo: friendRepo,
		ledger:     ledger,
		publisher:  publisher,
		limit:      1000,
		budget:     cfg.RaidBudget,
		interval:   cfg.SweepInterval,
		workerPool: NewWorkerPool(10),
		now:        time.Now,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Sweeper started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping sweeper")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	var g errgroup.Group
	g.Go(func() error { return s.sweepWagers(ctx) })
	g.Go(func() error { return s.sweepRaids(ctx) })
	g.Go(func() error { return s.repairFriendships(ctx) })

	if err := g.Wait(); err != nil {
		zap.L().Error("Sweep pass finished with errors", zap.Error(err))
	}
}

func (s *Service) sweepWagers(ctx context.Context) error {
	wagers, err := s.wagerRepo.FindExpired(ctx, s.now(), s.limit)
	if err != nil {
		zap.L().Error("Failed to fetch expired wagers", zap.Error(err))
		return err
	}

	var g errgroup.Group
	for _, wager := range wagers {
		wager := wager
		key := fmt.Sprintf("wager-%d", wager.ID)

		if _, loaded := inFlight.LoadOrStore(key, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer inFlight.Delete(key)
				return s.expireWager(ctx, wager)
			})
			if err != nil {
				inFlight.Delete(key)
				return err
			}
			return nil
		})
	}
	return g.Wait()
}

// expireWager closes an open wager past its expiry and returns every still
// locked stake. MarkExpired and ClearStakeLock are the once-only guards; a
// credit that fails after its lock was cleared is logged and lost, matching
// the engine's best-effort ordering between ledger calls.
func (s *Service) expireWager(ctx context.Context, wager domain.Wager) error {
	ok, err := s.wagerRepo.MarkExpired(ctx, wager.ID)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	participants, err := s.wagerRepo.GetLockedParticipants(ctx, wager.ID)
	if err != nil {
		return err
	}
	ref := domain.Ref{Type: domain.RefWager, ID: int64(wager.ID)}
	for _, p := range participants {
		cleared, err := s.wagerRepo.ClearStakeLock(ctx, p.ID)
		if err != nil {
			return err
		}
		if !cleared {
			continue
		}
		if err := s.ledger.Credit(ctx, p.UserID, p.StakeAmount, domain.TxStakeReturn, ref); err != nil {
			zap.L().Error("stake return failed after lock was cleared",
				zap.Int("wagerID", wager.ID), zap.Int("userID", p.UserID), zap.Error(err))
			return err
		}
	}
	zap.L().Info("Wager expired, stakes returned", zap.Int("wagerID", wager.ID), zap.Int("participants", len(participants)))
	return nil
}

func (s *Service) sweepRaids(ctx context.Context) error {
	raids, err := s.raidRepo.FindOverdue(ctx, s.now(), s.budget, s.limit)
	if err != nil {
		zap.L().Error("Failed to fetch overdue raids", zap.Error(err))
		return err
	}

	var g errgroup.Group
	for _, raid := range raids {
		raid := raid
		key := fmt.Sprintf("raid-%d", raid.ID)

		if _, loaded := inFlight.LoadOrStore(key, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer inFlight.Delete(key)
				return s.timeOutRaid(ctx, raid)
			})
			if err != nil {
				inFlight.Delete(key)
				return err
			}
			return nil
		})
	}
	return g.Wait()
}

// timeOutRaid closes an overdue raid. No ledger effect.
func (s *Service) timeOutRaid(ctx context.Context, raid domain.RaidAttempt) error {
	ok, err := s.raidRepo.TimeOut(ctx, raid.ID, s.now())
	if err != nil {
		return err
	}
	if ok {
		s.publisher.Publish(ctx, notify.Event{Type: notify.EventRaidTimedOut, RaidID: raid.ID, UserID: raid.ThiefID})
		zap.L().Info("Raid timed out", zap.Int("raidID", raid.ID))
	}
	return nil
}

// repairFriendships re-applies the lower-id side of a diverged pair over
// both rows.
func (s *Service) repairFriendships(ctx context.Context) error {
	rows, err := s.friendRepo.FindMismatchedPairs(ctx, s.limit)
	if err != nil {
		zap.L().Error("Failed to fetch mismatched friendship pairs", zap.Error(err))
		return err
	}
	for _, f := range rows {
		f := f
		if err := s.friendRepo.UpdateHeatPair(ctx, f.UserID, f.FriendID, &f); err != nil {
			return err
		}
		zap.L().Warn("Repaired diverged friendship pair", zap.Int("userID", f.UserID), zap.Int("friendID", f.FriendID))
	}
	return nil
}
