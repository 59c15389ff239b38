package consentservice

import (
	"context"
	"errors"
	"time"

	"github.com/betcha-app/betcha/internal/domain"
	"github.com/betcha-app/betcha/internal/notify"
	"go.uber.org/zap"
)

//go:generate mockgen -source=consentservice.go -destination=consentservice_mock.go -package=consentservice

type Repo interface {
	GetDirected(ctx context.Context, userID, friendID int) (*domain.Friendship, error)
	CreatePair(ctx context.Context, userID, friendID int) error
	AcceptPair(ctx context.Context, userID, friendID int) error
	UpdateHeatPair(ctx context.Context, userID, friendID int, f *domain.Friendship) error
}

var (
	ErrNotFound                = errors.New("friendship not found")
	ErrNotFriends              = errors.New("friendship not accepted")
	ErrInvalidLevel            = errors.New("heat level must be 1, 2 or 3")
	ErrCooldownActive          = errors.New("heat level changed less than 24h ago")
	ErrAlreadyAtLevel          = errors.New("already at the requested level")
	ErrNoPendingProposal       = errors.New("no pending proposal")
	ErrCannotAcceptOwnProposal = errors.New("cannot act on your own proposal")
)

const (
	MinHeatLevel = 1
	MaxHeatLevel = 3
)

// Service runs the per-friendship heat-level state machine. Both directed
// rows are written together on every transition.
type Service struct {
	repo      Repo
	publisher notify.Publisher

	cooldown time.Duration
	now      func() time.Time
}

func New(repo Repo, publisher notify.Publisher, cooldown time.Duration) *Service {
	return &Service{
		repo:      repo,
		publisher: publisher,
		cooldown:  cooldown,
		now:       time.Now,
	}
}

func (s *Service) AddFriend(ctx context.Context, userID, friendID int) error {
	existing, err := s.repo.GetDirected(ctx, userID, friendID)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	return s.repo.CreatePair(ctx, userID, friendID)
}

func (s *Service) AcceptFriend(ctx context.Context, userID, friendID int) error {
	f, err := s.repo.GetDirected(ctx, userID, friendID)
	if err != nil {
		return err
	}
	if f == nil {
		return ErrNotFound
	}
	return s.repo.AcceptPair(ctx, userID, friendID)
}

// Get returns the caller's side of the friendship.
func (s *Service) Get(ctx context.Context, userID, friendID int) (*domain.Friendship, error) {
	f, err := s.repo.GetDirected(ctx, userID, friendID)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, ErrNotFound
	}
	return f, nil
}

// ConfirmedLevel is the heat level the content generator may use for this
// pair. Only an accepted friendship has one.
func (s *Service) ConfirmedLevel(ctx context.Context, userID, friendID int) (int, error) {
	f, err := s.repo.GetDirected(ctx, userID, friendID)
	if err != nil {
		return 0, err
	}
	if f == nil {
		return 0, ErrNotFound
	}
	if f.Status != domain.FriendshipAccepted {
		return 0, ErrNotFriends
	}
	return f.HeatLevel, nil
}

// Propose requests a new heat level. If the counterpart already proposed the
// same level, the two proposals converge and the level confirms immediately.
func (s *Service) Propose(ctx context.Context, proposerID, friendID, level int) error {
	if level < MinHeatLevel || level > MaxHeatLevel {
		return ErrInvalidLevel
	}

	f, err := s.repo.GetDirected(ctx, proposerID, friendID)
	if err != nil {
		return err
	}
	if f == nil {
		return ErrNotFound
	}
	if f.Status != domain.FriendshipAccepted {
		return ErrNotFriends
	}
	if s.now().Sub(f.HeatChangedAt) < s.cooldown {
		return ErrCooldownActive
	}
	if level == f.HeatLevel {
		return ErrAlreadyAtLevel
	}

	// Symmetric double-proposal convergence.
	if f.ProposedLevel != nil && *f.ProposedLevel == level && f.ProposedBy != nil && *f.ProposedBy != proposerID {
		return s.confirm(ctx, proposerID, friendID, level)
	}

	now := s.now()
	f.ProposedLevel = &level
	f.ProposedBy = &proposerID
	f.ProposedAt = &now
	if err := s.repo.UpdateHeatPair(ctx, proposerID, friendID, f); err != nil {
		zap.L().Error("can't record heat proposal", zap.Error(err))
		return err
	}

	s.publisher.Publish(ctx, notify.Event{Type: notify.EventHeatProposed, UserID: friendID, Level: level})
	return nil
}

// Accept confirms the counterpart's pending proposal and resets the cooldown.
func (s *Service) Accept(ctx context.Context, userID, friendID int) error {
	f, err := s.repo.GetDirected(ctx, userID, friendID)
	if err != nil {
		return err
	}
	if f == nil {
		return ErrNotFound
	}
	if f.Status != domain.FriendshipAccepted {
		return ErrNotFriends
	}
	if f.ProposedLevel == nil || f.ProposedBy == nil {
		return ErrNoPendingProposal
	}
	if *f.ProposedBy == userID {
		return ErrCannotAcceptOwnProposal
	}

	return s.confirm(ctx, userID, friendID, *f.ProposedLevel)
}

// Reject clears the pending proposal. A rejected decrease still lowers the
// confirmed level to the proposed one: the more cautious party wins. The
// cooldown clock is untouched; only confirmed changes reset it.
func (s *Service) Reject(ctx context.Context, userID, friendID int) error {
	f, err := s.repo.GetDirected(ctx, userID, friendID)
	if err != nil {
		return err
	}
	if f == nil {
		return ErrNotFound
	}
	if f.Status != domain.FriendshipAccepted {
		return ErrNotFriends
	}
	if f.ProposedLevel == nil || f.ProposedBy == nil {
		return ErrNoPendingProposal
	}
	if *f.ProposedBy == userID {
		return ErrCannotAcceptOwnProposal
	}

	level := f.HeatLevel
	if *f.ProposedLevel < f.HeatLevel {
		level = *f.ProposedLevel
	}

	f.HeatLevel = level
	f.HeatConfirmed = true
	f.ProposedLevel = nil
	f.ProposedBy = nil
	f.ProposedAt = nil
	if err := s.repo.UpdateHeatPair(ctx, userID, friendID, f); err != nil {
		zap.L().Error("can't record heat rejection", zap.Error(err))
		return err
	}

	s.publisher.Publish(ctx, notify.Event{Type: notify.EventHeatRejected, UserID: friendID, Level: level})
	return nil
}

func (s *Service) confirm(ctx context.Context, userID, friendID, level int) error {
	f := &domain.Friendship{
		HeatLevel:     level,
		HeatConfirmed: true,
		HeatChangedAt: s.now(),
	}
	if err := s.repo.UpdateHeatPair(ctx, userID, friendID, f); err != nil {
		zap.L().Error("can't confirm heat level", zap.Error(err))
		return err
	}

	s.publisher.Publish(ctx, notify.Event{Type: notify.EventHeatConfirmed, UserID: friendID, Level: level})
	return nil
}
