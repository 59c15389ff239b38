package ledgerservice

import (
	"context"
	"errors"

	"github.com/betcha-app/betcha/internal/domain"
	ledgerrepo "github.com/betcha-app/betcha/internal/repo/ledger-repo"
	"github.com/betcha-app/betcha/internal/pg"
	"go.uber.org/zap"
)

//go:generate mockgen -source=ledgerservice.go -destination=ledgerservice_mock.go -package=ledgerservice

type Repo interface {
	GetBalance(ctx context.Context, userID int) (int64, error)
	ApplyDelta(ctx context.Context, userID int, delta int64) (int64, error)
	ApplyDeltaClamped(ctx context.Context, userID int, delta int64) (int64, int64, error)
	CreateTransaction(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
	GetTransactionsByUserID(ctx context.Context, userID int) ([]domain.Transaction, error)
	InTx(ctx context.Context, fn pg.TransactionalFn) error
}

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNotFound          = errors.New("user not found")
	ErrInvalidAmount     = errors.New("amount must be positive")
)

// Service owns every balance mutation. Each mutation is one conditional
// balance update paired with one append-only transaction row; callers are
// responsible for invoking each operation at most once per logical event.
type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) GetBalance(ctx context.Context, userID int) (int64, error) {
	balance, err := s.repo.GetBalance(ctx, userID)
	if errors.Is(err, ledgerrepo.ErrNotApplied) {
		return 0, ErrNotFound
	}
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return 0, err
	}
	return balance, nil
}

func (s *Service) GetTransactions(ctx context.Context, userID int) ([]domain.Transaction, error) {
	txs, err := s.repo.GetTransactionsByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	return txs, nil
}

// Lock earmarks amount for the referenced wager or raid. It is a plain debit;
// the earmark itself lives on the participant/raid row.
func (s *Service) Lock(ctx context.Context, userID int, amount int64, ref domain.Ref) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	return s.apply(ctx, userID, -amount, domain.TxStakeLock, ref)
}

func (s *Service) Credit(ctx context.Context, userID int, amount int64, entryType string, ref domain.Ref) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	return s.apply(ctx, userID, amount, entryType, ref)
}

func (s *Service) Debit(ctx context.Context, userID int, amount int64, entryType string, ref domain.Ref) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	return s.apply(ctx, userID, -amount, entryType, ref)
}

// apply's callers have already checked amount > 0, so the sign of delta
// always matches the entry type.
func (s *Service) apply(ctx context.Context, userID int, delta int64, entryType string, ref domain.Ref) error {
	return s.repo.InTx(ctx, func(ctx context.Context) error {
		balance, err := s.repo.ApplyDelta(ctx, userID, delta)
		if errors.Is(err, ledgerrepo.ErrNotApplied) {
			if _, berr := s.repo.GetBalance(ctx, userID); errors.Is(berr, ledgerrepo.ErrNotApplied) {
				return ErrNotFound
			}
			return ErrInsufficientFunds
		}
		if err != nil {
			zap.L().Error("failed to apply balance delta", zap.Error(err))
			return err
		}
		_, err = s.repo.CreateTransaction(ctx, &domain.Transaction{
			UserID:           userID,
			Amount:           delta,
			ResultingBalance: balance,
			Type:             entryType,
			RefType:          ref.Type,
			RefID:            ref.ID,
		})
		if err != nil {
			zap.L().Error("failed to record transaction", zap.Error(err))
			return err
		}
		return nil
	})
}

// Penalize debits up to amount, clamped so the balance never goes negative.
// Returns the amount actually taken.
func (s *Service) Penalize(ctx context.Context, userID int, amount int64, entryType string, ref domain.Ref) (int64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}
	var taken int64
	err := s.repo.InTx(ctx, func(ctx context.Context) error {
		balance, applied, err := s.repo.ApplyDeltaClamped(ctx, userID, -amount)
		if errors.Is(err, ledgerrepo.ErrNotApplied) {
			return ErrNotFound
		}
		if err != nil {
			zap.L().Error("failed to apply penalty", zap.Error(err))
			return err
		}
		taken = -applied
		if applied == 0 {
			return nil
		}
		_, err = s.repo.CreateTransaction(ctx, &domain.Transaction{
			UserID:           userID,
			Amount:           applied,
			ResultingBalance: balance,
			Type:             entryType,
			RefType:          ref.Type,
			RefID:            ref.ID,
		})
		if err != nil {
			zap.L().Error("failed to record penalty transaction", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return taken, nil
}
