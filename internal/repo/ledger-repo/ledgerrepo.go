package ledgerrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/betcha-app/betcha/internal/domain"
	"github.com/betcha-app/betcha/internal/pg"
	"go.uber.org/zap"
)

// ErrNotApplied is returned when the conditional balance update matched no
// row: either the user does not exist or the delta would drive the balance
// negative.
var ErrNotApplied = errors.New("balance update not applied")

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) GetBalance(ctx context.Context, userID int) (int64, error) {
	query := `
        SELECT balance
        FROM users
        WHERE id = $1
    `
	var balance int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrNotApplied
	}
	if err != nil {
		zap.L().Error("can't get balance", zap.Error(err))
		return 0, err
	}
	return balance, nil
}

// ApplyDelta is the single-row conditional write every balance mutation goes
// through. The WHERE clause is the no-negative-balance guard; a rejected
// mutation applies nothing.
func (r *Repository) ApplyDelta(ctx context.Context, userID int, delta int64) (int64, error) {
	query := `
        UPDATE users
        SET balance = balance + $1
        WHERE id = $2 AND balance + $1 >= 0
        RETURNING balance
    `
	var balance int64
	err := r.db.QueryRow(ctx, query, delta, userID).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrNotApplied
	}
	if err != nil {
		zap.L().Error("can't apply balance delta", zap.Error(err))
		return 0, err
	}
	return balance, nil
}

// ApplyDeltaClamped debits as much of -delta as the balance covers, flooring
// at zero. Returns the new balance and the amount actually applied.
func (r *Repository) ApplyDeltaClamped(ctx context.Context, userID int, delta int64) (int64, int64, error) {
	query := `
        WITH prev AS (
            SELECT balance FROM users WHERE id = $2 FOR UPDATE
        )
        UPDATE users
        SET balance = GREATEST(users.balance + $1, 0)
        FROM prev
        WHERE users.id = $2
        RETURNING users.balance, users.balance - prev.balance
    `
	var balance, applied int64
	err := r.db.QueryRow(ctx, query, delta, userID).Scan(&balance, &applied)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, 0, ErrNotApplied
	}
	if err != nil {
		zap.L().Error("can't apply clamped balance delta", zap.Error(err))
		return 0, 0, err
	}
	return balance, applied, nil
}

func (r *Repository) CreateTransaction(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	query := `
        INSERT INTO transactions (user_id, amount, resulting_balance, type, ref_type, ref_id)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		tx.UserID, tx.Amount, tx.ResultingBalance, tx.Type, tx.RefType, tx.RefID,
	).Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		zap.L().Error("can't save transaction", zap.Error(err))
		return nil, err
	}
	return tx, nil
}

func (r *Repository) GetTransactionsByUserID(ctx context.Context, userID int) ([]domain.Transaction, error) {
	query := `
        SELECT id, user_id, amount, resulting_balance, type, ref_type, ref_id, created_at
        FROM transactions
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txs []domain.Transaction
	for rows.Next() {
		var tx domain.Transaction
		err := rows.Scan(&tx.ID, &tx.UserID, &tx.Amount, &tx.ResultingBalance, &tx.Type, &tx.RefType, &tx.RefID, &tx.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan transaction row", zap.Error(err))
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// InTx exposes the repo's transaction manager so the ledger service can pair
// a balance mutation with its transaction row.
func (r *Repository) InTx(ctx context.Context, fn pg.TransactionalFn) error {
	return r.txManager.Begin(ctx, fn)
}
