package clashrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/betcha-app/betcha/internal/domain"
	"github.com/betcha-app/betcha/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const clashColumns = `id, wager_id, yes_user_id, no_user_id, yes_stake, no_stake, total_pot, prover_id, proof_deadline, status, proof_ref, winner_id, dispute_reason, created_at`

func scanClash(row pgx.Row) (*domain.Clash, error) {
	var c domain.Clash
	err := row.Scan(
		&c.ID, &c.WagerID, &c.YesUserID, &c.NoUserID, &c.YesStake, &c.NoStake,
		&c.TotalPot, &c.ProverID, &c.ProofDeadline, &c.Status,
		&c.ProofRef, &c.WinnerID, &c.DisputeReason, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) FindByID(ctx context.Context, clashID int) (*domain.Clash, error) {
	query := `
        SELECT ` + clashColumns + `
        FROM clashes
        WHERE id = $1
    `
	c, err := scanClash(r.db.QueryRow(ctx, query, clashID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find clash", zap.Error(err))
		return nil, err
	}
	return c, nil
}

func (r *Repository) FindByWagerID(ctx context.Context, wagerID int) (*domain.Clash, error) {
	query := `
        SELECT ` + clashColumns + `
        FROM clashes
        WHERE wager_id = $1
    `
	c, err := scanClash(r.db.QueryRow(ctx, query, wagerID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find clash by wager", zap.Error(err))
		return nil, err
	}
	return c, nil
}

// CreateOrGet inserts the clash; the UNIQUE(wager_id) constraint plus
// ON CONFLICT DO NOTHING makes a racing duplicate creation land on the row
// the other call created. Exactly one clash per wager ever exists.
func (r *Repository) CreateOrGet(ctx context.Context, clash *domain.Clash) (*domain.Clash, bool, error) {
	query := `
        INSERT INTO clashes (wager_id, yes_user_id, no_user_id, yes_stake, no_stake, total_pot, prover_id, proof_deadline, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        ON CONFLICT (wager_id) DO NOTHING
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		clash.WagerID, clash.YesUserID, clash.NoUserID, clash.YesStake, clash.NoStake,
		clash.TotalPot, clash.ProverID, clash.ProofDeadline, clash.Status,
	).Scan(&clash.ID, &clash.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		existing, ferr := r.FindByWagerID(ctx, clash.WagerID)
		if ferr != nil {
			return nil, false, ferr
		}
		return existing, false, nil
	}
	if err != nil {
		zap.L().Error("can't create clash", zap.Error(err))
		return nil, false, err
	}
	return clash, true, nil
}

// SubmitProof moves pending_proof→proof_submitted; false when the clash was
// not in pending_proof (or the id is wrong) and nothing changed.
func (r *Repository) SubmitProof(ctx context.Context, clashID int, proofRef string) (bool, error) {
	query := `
        UPDATE clashes
        SET status = 'proof_submitted', proof_ref = $2
        WHERE id = $1 AND status = 'pending_proof'
        RETURNING id
    `
	var id int
	err := r.db.QueryRow(ctx, query, clashID, proofRef).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		zap.L().Error("can't submit proof", zap.Error(err))
		return false, err
	}
	return true, nil
}

func (r *Repository) Complete(ctx context.Context, clashID, winnerID int) (bool, error) {
	query := `
        UPDATE clashes
        SET status = 'completed', winner_id = $2
        WHERE id = $1 AND status = 'proof_submitted'
        RETURNING id
    `
	var id int
	err := r.db.QueryRow(ctx, query, clashID, winnerID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		zap.L().Error("can't complete clash", zap.Error(err))
		return false, err
	}
	return true, nil
}

// Dispute freezes the pot; the reason is recorded, resolution stays external.
func (r *Repository) Dispute(ctx context.Context, clashID int, reason string) (bool, error) {
	query := `
        UPDATE clashes
        SET status = 'disputed', dispute_reason = $2
        WHERE id = $1 AND status = 'proof_submitted'
        RETURNING id
    `
	var id int
	err := r.db.QueryRow(ctx, query, clashID, reason).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		zap.L().Error("can't dispute clash", zap.Error(err))
		return false, err
	}
	return true, nil
}
