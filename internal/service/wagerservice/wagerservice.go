package wagerservice

import (
	"context"
	"errors"
	"time"

	"github.com/betcha-app/betcha/internal/domain"
	"github.com/betcha-app/betcha/internal/notify"
	"github.com/betcha-app/betcha/internal/wagergen"
	"go.uber.org/zap"
)

//go:generate mockgen -source=wagerservice.go -destination=wagerservice_mock.go -package=wagerservice

type WagerRepo interface {
	FindByID(ctx context.Context, wagerID int) (*domain.Wager, error)
	Save(ctx context.Context, wager *domain.Wager, participantIDs []int) error
	GetParticipant(ctx context.Context, wagerID, userID int) (*domain.WagerParticipant, error)
	RecordVote(ctx context.Context, wagerID, userID int, vote string, stake int64, votedAt time.Time) (bool, error)
	GetVotedParticipants(ctx context.Context, wagerID int) ([]domain.WagerParticipant, error)
	FindOpenForUser(ctx context.Context, userID int, now time.Time) ([]domain.Wager, error)
	MarkMatched(ctx context.Context, wagerID int) error
}

type ClashRepo interface {
	FindByID(ctx context.Context, clashID int) (*domain.Clash, error)
	CreateOrGet(ctx context.Context, clash *domain.Clash) (*domain.Clash, bool, error)
	SubmitProof(ctx context.Context, clashID int, proofRef string) (bool, error)
	Complete(ctx context.Context, clashID, winnerID int) (bool, error)
	Dispute(ctx context.Context, clashID int, reason string) (bool, error)
}

type UserRepo interface {
	AddStats(ctx context.Context, userID int, stats domain.Stats) error
}

type Ledger interface {
	Lock(ctx context.Context, userID int, amount int64, ref domain.Ref) error
	Credit(ctx context.Context, userID int, amount int64, entryType string, ref domain.Ref) error
}

type Consent interface {
	ConfirmedLevel(ctx context.Context, userID, friendID int) (int, error)
}

type Generator interface {
	Candidates(ctx context.Context, heatLevel int, counterpart, riskProfile string) []wagergen.Candidate
}

var (
	ErrAlreadyVoted      = errors.New("already voted")
	ErrNotFound          = errors.New("wager not found")
	ErrNotAuthorized     = errors.New("not a party to this wager")
	ErrWagerClosed       = errors.New("wager is closed")
	ErrInvalidVote       = errors.New("vote must be yes or no")
	ErrInvalidState      = errors.New("clash is not in the required state")
	ErrDeadlinePassed    = errors.New("proof deadline has passed")
	ErrReviewBeforeProof = errors.New("no proof submitted yet")
)

type Outcome string

const (
	OutcomePending  Outcome = "pending"
	OutcomeClash    Outcome = "clash"
	OutcomeHairball Outcome = "hairball"
)

type SwipeResult struct {
	Outcome Outcome
	ClashID int
}

type Service struct {
	wagerRepo WagerRepo
	clashRepo ClashRepo
	userRepo  UserRepo
	ledger    Ledger
	consent   Consent
	generator Generator
	publisher notify.Publisher

	proofWindow time.Duration
	wagerTTL    time.Duration
	now         func() time.Time
}

func New(wagerRepo WagerRepo, clashRepo ClashRepo, userRepo UserRepo, ledger Ledger, consent Consent, generator Generator, publisher notify.Publisher, proofWindow time.Duration) *Service {
	return &Service{
		wagerRepo:   wagerRepo,
		clashRepo:   clashRepo,
		userRepo:    userRepo,
		ledger:      ledger,
		consent:     consent,
		generator:   generator,
		publisher:   publisher,
		proofWindow: proofWindow,
		wagerTTL:    72 * time.Hour,
		now:         time.Now,
	}
}

// CreateWager asks the generator for content gated by the pair's confirmed
// heat level and persists the wager with pre-seeded participant rows for
// both parties.
func (s *Service) CreateWager(ctx context.Context, creatorID, counterpartID int, counterpartLogin, riskProfile string) (*domain.Wager, error) {
	level, err := s.consent.ConfirmedLevel(ctx, creatorID, counterpartID)
	if err != nil {
		zap.L().Error("can't resolve heat level", zap.Error(err))
		return nil, err
	}

	candidates := s.generator.Candidates(ctx, level, counterpartLogin, riskProfile)
	candidate := candidates[0]

	wager := &domain.Wager{
		Text:            candidate.Text,
		BaseStake:       candidate.SuggestedStake,
		HeatRequirement: level,
		Status:          domain.WagerOpen,
		ExpiresAt:       s.now().Add(s.wagerTTL),
	}
	if err := s.wagerRepo.Save(ctx, wager, []int{creatorID, counterpartID}); err != nil {
		zap.L().Error("can't save wager", zap.Error(err))
		return nil, err
	}

	s.publisher.Publish(ctx, notify.Event{Type: notify.EventWagerCreated, WagerID: wager.ID, UserID: counterpartID})
	return wager, nil
}

func (s *Service) GetOpenWagers(ctx context.Context, userID int) ([]domain.Wager, error) {
	wagers, err := s.wagerRepo.FindOpenForUser(ctx, userID, s.now())
	if err != nil {
		zap.L().Error("can't fetch open wagers", zap.Error(err))
		return nil, err
	}
	return wagers, nil
}

// RecordSwipe turns one swipe into a vote. The order is load-bearing: the
// stake is locked before the vote is merged, and the merge is conditional so
// a racing duplicate cannot slip past the lock. If the merge fails after the
// lock succeeded the stake stays locked; the expiry sweep is the corrective
// path.
func (s *Service) RecordSwipe(ctx context.Context, wagerID, userID int, vote string, stakeAmount int64) (*SwipeResult, error) {
	if vote != domain.VoteYes && vote != domain.VoteNo {
		return nil, ErrInvalidVote
	}

	wager, err := s.wagerRepo.FindByID(ctx, wagerID)
	if err != nil {
		return nil, err
	}
	if wager == nil {
		return nil, ErrNotFound
	}
	if wager.Status != domain.WagerOpen || !wager.ExpiresAt.After(s.now()) {
		return nil, ErrWagerClosed
	}

	participant, err := s.wagerRepo.GetParticipant(ctx, wagerID, userID)
	if err != nil {
		return nil, err
	}
	if participant != nil && participant.Vote != nil {
		return nil, ErrAlreadyVoted
	}
	if participant == nil && !wager.TargetAll {
		return nil, ErrNotAuthorized
	}

	stake := stakeAmount
	if stake <= 0 {
		stake = wager.BaseStake
	}

	if err := s.ledger.Lock(ctx, userID, stake, domain.Ref{Type: domain.RefWager, ID: int64(wagerID)}); err != nil {
		return nil, err
	}

	applied, err := s.wagerRepo.RecordVote(ctx, wagerID, userID, vote, stake, s.now())
	if err != nil {
		zap.L().Error("vote merge failed after stake lock; stake remains locked",
			zap.Int("wagerID", wagerID), zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	if !applied {
		// Lost the race to our own duplicate; that call's lock stands.
		return nil, ErrAlreadyVoted
	}

	voted, err := s.wagerRepo.GetVotedParticipants(ctx, wagerID)
	if err != nil {
		return nil, err
	}
	if len(voted) < 2 {
		return &SwipeResult{Outcome: OutcomePending}, nil
	}
	if len(voted) > 2 {
		zap.L().Warn("wager has more than two votes", zap.Int("wagerID", wagerID), zap.Int("votes", len(voted)))
		return &SwipeResult{Outcome: OutcomePending}, nil
	}

	a, b := voted[0], voted[1]
	if *a.Vote == *b.Vote {
		return &SwipeResult{Outcome: OutcomeHairball}, nil
	}

	yes, no := a, b
	if *yes.Vote != domain.VoteYes {
		yes, no = b, a
	}

	clash := &domain.Clash{
		WagerID:       wagerID,
		YesUserID:     yes.UserID,
		NoUserID:      no.UserID,
		YesStake:      yes.StakeAmount,
		NoStake:       no.StakeAmount,
		TotalPot:      yes.StakeAmount + no.StakeAmount,
		ProverID:      yes.UserID,
		ProofDeadline: s.now().Add(s.proofWindow),
		Status:        domain.ClashPendingProof,
	}
	clash, created, err := s.clashRepo.CreateOrGet(ctx, clash)
	if err != nil {
		zap.L().Error("can't create clash", zap.Error(err))
		return nil, err
	}
	if created {
		if err := s.wagerRepo.MarkMatched(ctx, wagerID); err != nil {
			return nil, err
		}
		for _, p := range voted {
			if err := s.userRepo.AddStats(ctx, p.UserID, domain.Stats{ClashesTotal: 1}); err != nil {
				return nil, err
			}
		}
		s.publisher.Publish(ctx, notify.Event{Type: notify.EventClashCreated, WagerID: wagerID, ClashID: clash.ID})
		s.publisher.Publish(ctx, notify.Event{Type: notify.EventProofRequested, ClashID: clash.ID, UserID: clash.ProverID})
	}

	return &SwipeResult{Outcome: OutcomeClash, ClashID: clash.ID}, nil
}

func (s *Service) GetClash(ctx context.Context, clashID int) (*domain.Clash, error) {
	clash, err := s.clashRepo.FindByID(ctx, clashID)
	if err != nil {
		return nil, err
	}
	if clash == nil {
		return nil, ErrNotFound
	}
	return clash, nil
}

// SubmitProof records the prover's proof reference before the deadline.
func (s *Service) SubmitProof(ctx context.Context, clashID, userID int, proofRef string) error {
	clash, err := s.clashRepo.FindByID(ctx, clashID)
	if err != nil {
		return err
	}
	if clash == nil {
		return ErrNotFound
	}
	if clash.ProverID != userID {
		return ErrNotAuthorized
	}
	if !clash.ProofDeadline.After(s.now()) {
		return ErrDeadlinePassed
	}

	ok, err := s.clashRepo.SubmitProof(ctx, clashID, proofRef)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidState
	}

	s.publisher.Publish(ctx, notify.Event{Type: notify.EventProofSubmitted, ClashID: clashID, UserID: userID})
	return nil
}

// Review settles a submitted proof. Accepting pays the full pot to the
// prover; disputing records the reason and leaves the pot frozen for
// external resolution.
func (s *Service) Review(ctx context.Context, clashID, reviewerID int, accept bool, reason string) error {
	clash, err := s.clashRepo.FindByID(ctx, clashID)
	if err != nil {
		return err
	}
	if clash == nil {
		return ErrNotFound
	}
	if reviewerID != clash.YesUserID && reviewerID != clash.NoUserID {
		return ErrNotAuthorized
	}
	if reviewerID == clash.ProverID {
		return ErrNotAuthorized
	}
	if clash.Status == domain.ClashPendingProof {
		return ErrReviewBeforeProof
	}

	if !accept {
		ok, err := s.clashRepo.Dispute(ctx, clashID, reason)
		if err != nil {
			return err
		}
		if !ok {
			return ErrInvalidState
		}
		s.publisher.Publish(ctx, notify.Event{Type: notify.EventClashDisputed, ClashID: clashID})
		return nil
	}

	winnerID := clash.ProverID
	ok, err := s.clashRepo.Complete(ctx, clashID, winnerID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidState
	}

	if err := s.ledger.Credit(ctx, winnerID, clash.TotalPot, domain.TxPotPayout, domain.Ref{Type: domain.RefClash, ID: int64(clashID)}); err != nil {
		zap.L().Error("pot payout failed after clash completion", zap.Int("clashID", clashID), zap.Error(err))
		return err
	}
	if err := s.userRepo.AddStats(ctx, winnerID, domain.Stats{Wins: 1}); err != nil {
		return err
	}

	s.publisher.Publish(ctx, notify.Event{Type: notify.EventClashCompleted, ClashID: clashID, UserID: winnerID})
	return nil
}
