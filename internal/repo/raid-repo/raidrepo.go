package raidrepo

import (
	"context"
	"errors"
	"time"

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

const raidColumns = `id, thief_id, target_id, steal_percentage, potential_amount, target_was_online, defense_window_end, was_defended, status, started_at, completed_at`

func scanRaid(row pgx.Row) (*domain.RaidAttempt, error) {
	var raid domain.RaidAttempt
	err := row.Scan(
		&raid.ID, &raid.ThiefID, &raid.TargetID, &raid.StealPercentage, &raid.PotentialAmount,
		&raid.TargetWasOnline, &raid.DefenseWindowEnd, &raid.WasDefended,
		&raid.Status, &raid.StartedAt, &raid.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &raid, nil
}

func (r *Repository) FindByID(ctx context.Context, raidID int) (*domain.RaidAttempt, error) {
	query := `
        SELECT ` + raidColumns + `
        FROM raid_attempts
        WHERE id = $1
    `
	raid, err := scanRaid(r.db.QueryRow(ctx, query, raidID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find raid", zap.Error(err))
		return nil, err
	}
	return raid, nil
}

func (r *Repository) Save(ctx context.Context, raid *domain.RaidAttempt) (*domain.RaidAttempt, error) {
	query := `
        INSERT INTO raid_attempts (thief_id, target_id, steal_percentage, potential_amount, target_was_online, defense_window_end, status, started_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		raid.ThiefID, raid.TargetID, raid.StealPercentage, raid.PotentialAmount,
		raid.TargetWasOnline, raid.DefenseWindowEnd, raid.Status, raid.StartedAt,
	).Scan(&raid.ID)
	if err != nil {
		zap.L().Error("can't save raid", zap.Error(err))
		return nil, err
	}
	return raid, nil
}

// Defend flips was_defended on the record; the WHERE clause is the whole race
// arbiter: only an in-progress raid with an open defense window can flip, and
// only once.
func (r *Repository) Defend(ctx context.Context, raidID, targetID int, now time.Time) (bool, error) {
	query := `
        UPDATE raid_attempts
        SET was_defended = TRUE, status = 'defended', completed_at = $3
        WHERE id = $1 AND target_id = $2 AND status = 'in_progress'
          AND defense_window_end IS NOT NULL AND defense_window_end > $3
        RETURNING id
    `
	var id int
	err := r.db.QueryRow(ctx, query, raidID, targetID, now).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		zap.L().Error("can't defend raid", zap.Error(err))
		return false, err
	}
	return true, nil
}

// Claim completes the raid for the thief. was_defended is re-checked here, at
// commit time, so a claim racing a defend can never pay out.
func (r *Repository) Claim(ctx context.Context, raidID, thiefID int, now time.Time, budget time.Duration) (bool, error) {
	query := `
        UPDATE raid_attempts
        SET status = 'success', completed_at = $3
        WHERE id = $1 AND thief_id = $2 AND status = 'in_progress'
          AND was_defended = FALSE AND started_at + $4 > $3
        RETURNING id
    `
	var id int
	err := r.db.QueryRow(ctx, query, raidID, thiefID, now, budget).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		zap.L().Error("can't claim raid", zap.Error(err))
		return false, err
	}
	return true, nil
}

// FindOverdue lists in-progress raids whose total budget elapsed.
func (r *Repository) FindOverdue(ctx context.Context, now time.Time, budget time.Duration, limit uint32) ([]domain.RaidAttempt, error) {
	query := `
        SELECT ` + raidColumns + `
        FROM raid_attempts
        WHERE status = 'in_progress' AND started_at + $2 <= $1
        ORDER BY started_at ASC
        LIMIT $3
    `
	rows, err := r.db.Query(ctx, query, now, budget, int(limit))
	if err != nil {
		zap.L().Error("can't find overdue raids", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var out []domain.RaidAttempt
	for rows.Next() {
		raid, err := scanRaid(rows)
		if err != nil {
			zap.L().Error("can't scan raid row", zap.Error(err))
			return nil, err
		}
		out = append(out, *raid)
	}
	return out, nil
}

// TimeOut closes an overdue raid with no ledger effect.
func (r *Repository) TimeOut(ctx context.Context, raidID int, now time.Time) (bool, error) {
	query := `
        UPDATE raid_attempts
        SET status = 'timed_out', completed_at = $2
        WHERE id = $1 AND status = 'in_progress'
        RETURNING id
    `
	var id int
	err := r.db.QueryRow(ctx, query, raidID, now).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		zap.L().Error("can't time out raid", zap.Error(err))
		return false, err
	}
	return true, nil
}
