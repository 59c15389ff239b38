package raidservice

import (
	"context"
	"errors"
	"time"

	"github.com/betcha-app/betcha/internal/domain"
	"github.com/betcha-app/betcha/internal/notify"
	"go.uber.org/zap"
)

//go:generate mockgen -source=raidservice.go -destination=raidservice_mock.go -package=raidservice

type Repo interface {
	FindByID(ctx context.Context, raidID int) (*domain.RaidAttempt, error)
	Save(ctx context.Context, raid *domain.RaidAttempt) (*domain.RaidAttempt, error)
	Defend(ctx context.Context, raidID, targetID int, now time.Time) (bool, error)
	Claim(ctx context.Context, raidID, thiefID int, now time.Time, budget time.Duration) (bool, error)
	TimeOut(ctx context.Context, raidID int, now time.Time) (bool, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, userID int) (*domain.User, error)
	AddStats(ctx context.Context, userID int, stats domain.Stats) error
}

type Ledger interface {
	Credit(ctx context.Context, userID int, amount int64, entryType string, ref domain.Ref) error
	Debit(ctx context.Context, userID int, amount int64, entryType string, ref domain.Ref) error
	Penalize(ctx context.Context, userID int, amount int64, entryType string, ref domain.Ref) (int64, error)
}

var (
	ErrNotFound        = errors.New("raid not found")
	ErrNotAuthorized   = errors.New("not a party to this raid")
	ErrAlreadyDefended = errors.New("raid already defended")
	ErrRaidClosed      = errors.New("raid already resolved")
	ErrRaidExpired     = errors.New("raid time budget elapsed")
	ErrWindowClosed    = errors.New("defense window closed")
	ErrSelfRaid        = errors.New("cannot raid yourself")
	ErrNothingToSteal  = errors.New("target has nothing to steal")
)

const (
	baseStealPercentage = 0.10
	stealPercentPerWin  = 0.02
	maxStealPercentage  = 0.50

	onlineWindow = 2 * time.Minute
)

// Service runs the timed thief/target mini-game. The raid record is the only
// authority: every transition is a conditional write, and the defended flag
// is re-checked at claim commit time. Events exist for responsiveness only.
type Service struct {
	repo      Repo
	userRepo  UserRepo
	ledger    Ledger
	publisher notify.Publisher

	defenseWindow time.Duration
	budget        time.Duration
	now           func() time.Time
}

func New(repo Repo, userRepo UserRepo, ledger Ledger, publisher notify.Publisher, defenseWindow, budget time.Duration) *Service {
	return &Service{
		repo:          repo,
		userRepo:      userRepo,
		ledger:        ledger,
		publisher:     publisher,
		defenseWindow: defenseWindow,
		budget:        budget,
		now:           time.Now,
	}
}

// stealPercentage scales with the thief's track record, capped at half the
// target's balance.
func stealPercentage(thiefWins int) float64 {
	pct := baseStealPercentage + stealPercentPerWin*float64(thiefWins)
	if pct > maxStealPercentage {
		pct = maxStealPercentage
	}
	return pct
}

// Initiate opens a raid. The potential amount is computed here, from the
// target's balance at this moment, and is the only figure ever paid out; the
// attacker's client never supplies its own.
func (s *Service) Initiate(ctx context.Context, thiefID, targetID int) (*domain.RaidAttempt, error) {
	if thiefID == targetID {
		return nil, ErrSelfRaid
	}

	thief, err := s.userRepo.FindByID(ctx, thiefID)
	if err != nil {
		return nil, err
	}
	if thief == nil {
		return nil, ErrNotFound
	}
	target, err := s.userRepo.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, ErrNotFound
	}

	pct := stealPercentage(thief.Wins)
	potential := int64(float64(target.Balance) * pct)
	if potential <= 0 {
		return nil, ErrNothingToSteal
	}

	now := s.now()
	online := target.LastSeenAt != nil && now.Sub(*target.LastSeenAt) < onlineWindow

	raid := &domain.RaidAttempt{
		ThiefID:         thiefID,
		TargetID:        targetID,
		StealPercentage: pct,
		PotentialAmount: potential,
		TargetWasOnline: online,
		Status:          domain.RaidInProgress,
		StartedAt:       now,
	}
	if online {
		windowEnd := now.Add(s.defenseWindow)
		raid.DefenseWindowEnd = &windowEnd
	}

	if _, err := s.repo.Save(ctx, raid); err != nil {
		zap.L().Error("can't save raid", zap.Error(err))
		return nil, err
	}
	if err := s.userRepo.AddStats(ctx, thiefID, domain.Stats{RaidsAttempted: 1}); err != nil {
		return nil, err
	}

	if online {
		s.publisher.Publish(ctx, notify.Event{Type: notify.EventRaidStarted, RaidID: raid.ID, UserID: targetID})
	}
	return raid, nil
}

func (s *Service) Get(ctx context.Context, raidID int) (*domain.RaidAttempt, error) {
	raid, err := s.repo.FindByID(ctx, raidID)
	if err != nil {
		return nil, err
	}
	if raid == nil {
		return nil, ErrNotFound
	}
	return raid, nil
}

// Defend is the target's single counter-move. The conditional write on the
// record decides the race; when it lands the raid is caught, terminal, and
// the thief pays the penalty.
func (s *Service) Defend(ctx context.Context, raidID, userID int) (*domain.RaidAttempt, error) {
	raid, err := s.repo.FindByID(ctx, raidID)
	if err != nil {
		return nil, err
	}
	if raid == nil {
		return nil, ErrNotFound
	}
	if raid.TargetID != userID {
		return nil, ErrNotAuthorized
	}

	ok, err := s.repo.Defend(ctx, raidID, userID, s.now())
	if err != nil {
		return nil, err
	}
	if !ok {
		current, gerr := s.repo.FindByID(ctx, raidID)
		if gerr != nil {
			return nil, gerr
		}
		if current != nil && current.Status != domain.RaidInProgress {
			return nil, ErrRaidClosed
		}
		return nil, ErrWindowClosed
	}

	// Fixed penalty: twice the potential, clamped so the thief's balance
	// never goes negative. Credited to no one.
	ref := domain.Ref{Type: domain.RefRaid, ID: int64(raidID)}
	if _, err := s.ledger.Penalize(ctx, raid.ThiefID, 2*raid.PotentialAmount, domain.TxRaidPenalty, ref); err != nil {
		zap.L().Error("raid penalty failed after defend", zap.Int("raidID", raidID), zap.Error(err))
		return nil, err
	}
	if err := s.userRepo.AddStats(ctx, userID, domain.Stats{RaidsDefended: 1}); err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, notify.Event{Type: notify.EventRaidDefended, RaidID: raidID, UserID: raid.ThiefID})

	return s.Get(ctx, raidID)
}

// Claim is the thief's completion call. The defended flag is re-checked by
// the conditional write at this moment, so a claim that raced a defend is
// rejected even if the defend notification never arrived.
func (s *Service) Claim(ctx context.Context, raidID, userID int) (*domain.RaidAttempt, error) {
	raid, err := s.repo.FindByID(ctx, raidID)
	if err != nil {
		return nil, err
	}
	if raid == nil {
		return nil, ErrNotFound
	}
	if raid.ThiefID != userID {
		return nil, ErrNotAuthorized
	}

	ok, err := s.repo.Claim(ctx, raidID, userID, s.now(), s.budget)
	if err != nil {
		return nil, err
	}
	if !ok {
		current, gerr := s.repo.FindByID(ctx, raidID)
		if gerr != nil {
			return nil, gerr
		}
		switch {
		case current != nil && current.WasDefended:
			return nil, ErrAlreadyDefended
		case current != nil && current.Status != domain.RaidInProgress:
			return nil, ErrRaidClosed
		default:
			return nil, ErrRaidExpired
		}
	}

	ref := domain.Ref{Type: domain.RefRaid, ID: int64(raidID)}
	if err := s.ledger.Debit(ctx, raid.TargetID, raid.PotentialAmount, domain.TxRaidLoss, ref); err != nil {
		zap.L().Error("raid loot debit failed after claim", zap.Int("raidID", raidID), zap.Error(err))
		return nil, err
	}
	if err := s.ledger.Credit(ctx, userID, raid.PotentialAmount, domain.TxRaidLoot, ref); err != nil {
		zap.L().Error("raid loot credit failed after debit", zap.Int("raidID", raidID), zap.Error(err))
		return nil, err
	}
	if err := s.userRepo.AddStats(ctx, raid.TargetID, domain.Stats{RaidsSuffered: 1}); err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, notify.Event{Type: notify.EventRaidClaimed, RaidID: raidID, UserID: raid.TargetID})

	return s.Get(ctx, raidID)
}
