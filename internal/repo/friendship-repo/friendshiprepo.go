package friendshiprepo

import (
	"context"
	"errors"

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

const friendshipColumns = `id, user_id, friend_id, status, heat_level, heat_confirmed, heat_changed_at, proposed_level, proposed_by, proposed_at`

func scanFriendship(row pgx.Row) (*domain.Friendship, error) {
	var f domain.Friendship
	err := row.Scan(
		&f.ID, &f.UserID, &f.FriendID, &f.Status,
		&f.HeatLevel, &f.HeatConfirmed, &f.HeatChangedAt,
		&f.ProposedLevel, &f.ProposedBy, &f.ProposedAt,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// GetDirected returns the userID→friendID row.
func (r *Repository) GetDirected(ctx context.Context, userID, friendID int) (*domain.Friendship, error) {
	query := `
        SELECT ` + friendshipColumns + `
        FROM friendships
        WHERE user_id = $1 AND friend_id = $2
    `
	f, err := scanFriendship(r.db.QueryRow(ctx, query, userID, friendID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get friendship", zap.Error(err))
		return nil, err
	}
	return f, nil
}

// CreatePair inserts both directed rows of a new pending friendship.
func (r *Repository) CreatePair(ctx context.Context, userID, friendID int) error {
	query := `
        INSERT INTO friendships (user_id, friend_id, status)
        VALUES ($1, $2, $3)
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, query, userID, friendID, domain.FriendshipPending); err != nil {
			zap.L().Error("can't create friendship row", zap.Error(err))
			return err
		}
		if _, err := r.db.Exec(ctx, query, friendID, userID, domain.FriendshipPending); err != nil {
			zap.L().Error("can't create reverse friendship row", zap.Error(err))
			return err
		}
		return nil
	})
}

func (r *Repository) AcceptPair(ctx context.Context, userID, friendID int) error {
	query := `
        UPDATE friendships
        SET status = $1
        WHERE (user_id = $2 AND friend_id = $3) OR (user_id = $3 AND friend_id = $2)
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, query, domain.FriendshipAccepted, userID, friendID); err != nil {
			zap.L().Error("can't accept friendship", zap.Error(err))
			return err
		}
		return nil
	})
}

// UpdateHeatPair writes the heat and proposal fields of f to both directed
// rows so the pair can't diverge.
func (r *Repository) UpdateHeatPair(ctx context.Context, userID, friendID int, f *domain.Friendship) error {
	query := `
        UPDATE friendships
        SET heat_level = $1, heat_confirmed = $2, heat_changed_at = $3,
            proposed_level = $4, proposed_by = $5, proposed_at = $6
        WHERE (user_id = $7 AND friend_id = $8) OR (user_id = $8 AND friend_id = $7)
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query,
			f.HeatLevel, f.HeatConfirmed, f.HeatChangedAt,
			f.ProposedLevel, f.ProposedBy, f.ProposedAt,
			userID, friendID,
		)
		if err != nil {
			zap.L().Error("can't update heat pair", zap.Error(err))
			return err
		}
		if tag.RowsAffected() != 2 {
			zap.L().Warn("heat pair update touched unexpected row count",
				zap.Int64("rows", tag.RowsAffected()), zap.Int("userID", userID), zap.Int("friendID", friendID))
		}
		return nil
	})
}

// FindMismatchedPairs lists directed pairs whose heat fields diverged; the
// sweeper repairs them by copying the more recently changed side.
func (r *Repository) FindMismatchedPairs(ctx context.Context, limit uint32) ([]domain.Friendship, error) {
	query := `
        SELECT ` + friendshipColumns + `
        FROM friendships a
        WHERE a.user_id < a.friend_id
          AND EXISTS (
            SELECT 1 FROM friendships b
            WHERE b.user_id = a.friend_id AND b.friend_id = a.user_id
              AND (b.heat_level <> a.heat_level
                OR b.heat_confirmed <> a.heat_confirmed
                OR b.proposed_level IS DISTINCT FROM a.proposed_level)
          )
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't find mismatched friendship pairs", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var out []domain.Friendship
	for rows.Next() {
		f, err := scanFriendship(rows)
		if err != nil {
			zap.L().Error("can't scan friendship row", zap.Error(err))
			return nil, err
		}
		out = append(out, *f)
	}
	return out, nil
}
