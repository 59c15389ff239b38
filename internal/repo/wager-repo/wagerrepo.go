package wagerrepo

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
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) FindByID(ctx context.Context, wagerID int) (*domain.Wager, error) {
	query := `
        SELECT id, text, base_stake, heat_requirement, target_all, status, expires_at, created_at
        FROM wagers
        WHERE id = $1
    `
	var w domain.Wager
	err := r.db.QueryRow(ctx, query, wagerID).Scan(
		&w.ID, &w.Text, &w.BaseStake, &w.HeatRequirement, &w.TargetAll, &w.Status, &w.ExpiresAt, &w.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find wager", zap.Error(err))
		return nil, err
	}
	return &w, nil
}

// Save persists the wager and its pre-seeded participant rows.
func (r *Repository) Save(ctx context.Context, wager *domain.Wager, participantIDs []int) error {
	wagerQuery := `
        INSERT INTO wagers (text, base_stake, heat_requirement, target_all, status, expires_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at
    `
	participantQuery := `
        INSERT INTO wager_participants (wager_id, user_id, stake_amount)
        VALUES ($1, $2, $3)
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, wagerQuery,
			wager.Text, wager.BaseStake, wager.HeatRequirement, wager.TargetAll, wager.Status, wager.ExpiresAt,
		).Scan(&wager.ID, &wager.CreatedAt)
		if err != nil {
			zap.L().Error("can't save wager", zap.Error(err))
			return err
		}
		for _, userID := range participantIDs {
			if _, err := r.db.Exec(ctx, participantQuery, wager.ID, userID, wager.BaseStake); err != nil {
				zap.L().Error("can't seed wager participant", zap.Error(err))
				return err
			}
		}
		return nil
	})
}

func (r *Repository) GetParticipant(ctx context.Context, wagerID, userID int) (*domain.WagerParticipant, error) {
	query := `
        SELECT id, wager_id, user_id, vote, stake_amount, stake_locked, voted_at
        FROM wager_participants
        WHERE wager_id = $1 AND user_id = $2
    `
	var p domain.WagerParticipant
	err := r.db.QueryRow(ctx, query, wagerID, userID).Scan(
		&p.ID, &p.WagerID, &p.UserID, &p.Vote, &p.StakeAmount, &p.StakeLocked, &p.VotedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get wager participant", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

// RecordVote merges the vote into the participant row with a conditional
// upsert keyed on (wager_id, user_id). The WHERE vote IS NULL arm makes a
// racing duplicate vote a no-op; applied reports whether this call won.
func (r *Repository) RecordVote(ctx context.Context, wagerID, userID int, vote string, stake int64, votedAt time.Time) (bool, error) {
	query := `
        INSERT INTO wager_participants (wager_id, user_id, vote, stake_amount, stake_locked, voted_at)
        VALUES ($1, $2, $3, $4, TRUE, $5)
        ON CONFLICT (wager_id, user_id) DO UPDATE
        SET vote = $3, stake_amount = $4, stake_locked = TRUE, voted_at = $5
        WHERE wager_participants.vote IS NULL
        RETURNING id
    `
	var id int
	err := r.db.QueryRow(ctx, query, wagerID, userID, vote, stake, votedAt).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		zap.L().Error("can't record vote", zap.Error(err))
		return false, err
	}
	return true, nil
}

func (r *Repository) GetVotedParticipants(ctx context.Context, wagerID int) ([]domain.WagerParticipant, error) {
	query := `
        SELECT id, wager_id, user_id, vote, stake_amount, stake_locked, voted_at
        FROM wager_participants
        WHERE wager_id = $1 AND vote IS NOT NULL
        ORDER BY voted_at ASC
    `
	rows, err := r.db.Query(ctx, query, wagerID)
	if err != nil {
		zap.L().Error("can't get voted participants", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var out []domain.WagerParticipant
	for rows.Next() {
		var p domain.WagerParticipant
		err := rows.Scan(&p.ID, &p.WagerID, &p.UserID, &p.Vote, &p.StakeAmount, &p.StakeLocked, &p.VotedAt)
		if err != nil {
			zap.L().Error("can't scan participant row", zap.Error(err))
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *Repository) FindOpenForUser(ctx context.Context, userID int, now time.Time) ([]domain.Wager, error) {
	query := `
        SELECT w.id, w.text, w.base_stake, w.heat_requirement, w.target_all, w.status, w.expires_at, w.created_at
        FROM wagers w
        JOIN wager_participants p ON p.wager_id = w.id
        WHERE p.user_id = $1 AND p.vote IS NULL AND w.status = 'open' AND w.expires_at > $2
        ORDER BY w.created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID, now)
	if err != nil {
		zap.L().Error("can't get open wagers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var out []domain.Wager
	for rows.Next() {
		var w domain.Wager
		err := rows.Scan(&w.ID, &w.Text, &w.BaseStake, &w.HeatRequirement, &w.TargetAll, &w.Status, &w.ExpiresAt, &w.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan wager row", zap.Error(err))
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}

func (r *Repository) MarkMatched(ctx context.Context, wagerID int) error {
	query := `
        UPDATE wagers
        SET status = 'matched'
        WHERE id = $1 AND status = 'open'
    `
	if _, err := r.db.Exec(ctx, query, wagerID); err != nil {
		zap.L().Error("can't mark wager matched", zap.Error(err))
		return err
	}
	return nil
}

// FindExpired lists open wagers past their expiry for the sweeper.
func (r *Repository) FindExpired(ctx context.Context, now time.Time, limit uint32) ([]domain.Wager, error) {
	query := `
        SELECT id, text, base_stake, heat_requirement, target_all, status, expires_at, created_at
        FROM wagers
        WHERE status = 'open' AND expires_at <= $1
        ORDER BY expires_at ASC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, now, int(limit))
	if err != nil {
		zap.L().Error("can't find expired wagers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var out []domain.Wager
	for rows.Next() {
		var w domain.Wager
		err := rows.Scan(&w.ID, &w.Text, &w.BaseStake, &w.HeatRequirement, &w.TargetAll, &w.Status, &w.ExpiresAt, &w.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan expired wager row", zap.Error(err))
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}

// MarkExpired transitions open→expired; false means someone else got there
// first and the stakes must not be returned twice.
func (r *Repository) MarkExpired(ctx context.Context, wagerID int) (bool, error) {
	query := `
        UPDATE wagers
        SET status = 'expired'
        WHERE id = $1 AND status = 'open'
        RETURNING id
    `
	var id int
	err := r.db.QueryRow(ctx, query, wagerID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		zap.L().Error("can't mark wager expired", zap.Error(err))
		return false, err
	}
	return true, nil
}

func (r *Repository) GetLockedParticipants(ctx context.Context, wagerID int) ([]domain.WagerParticipant, error) {
	query := `
        SELECT id, wager_id, user_id, vote, stake_amount, stake_locked, voted_at
        FROM wager_participants
        WHERE wager_id = $1 AND stake_locked = TRUE
    `
	rows, err := r.db.Query(ctx, query, wagerID)
	if err != nil {
		zap.L().Error("can't get locked participants", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var out []domain.WagerParticipant
	for rows.Next() {
		var p domain.WagerParticipant
		err := rows.Scan(&p.ID, &p.WagerID, &p.UserID, &p.Vote, &p.StakeAmount, &p.StakeLocked, &p.VotedAt)
		if err != nil {
			zap.L().Error("can't scan locked participant row", zap.Error(err))
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// ClearStakeLock flips stake_locked off exactly once per participant so a
// stake return can't be issued twice.
func (r *Repository) ClearStakeLock(ctx context.Context, participantID int) (bool, error) {
	query := `
        UPDATE wager_participants
        SET stake_locked = FALSE
        WHERE id = $1 AND stake_locked = TRUE
        RETURNING id
    `
	var id int
	err := r.db.QueryRow(ctx, query, participantID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		zap.L().Error("can't clear stake lock", zap.Error(err))
		return false, err
	}
	return true, nil
}
