package userrepo

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

const userColumns = `id, login, password_hash, balance, wins, clashes_total, raids_attempted, raids_defended, raids_suffered, last_seen_at, created_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID, &user.Login, &user.PasswordHash, &user.Balance,
		&user.Wins, &user.ClashesTotal, &user.RaidsAttempted, &user.RaidsDefended, &user.RaidsSuffered,
		&user.LastSeenAt, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE login = $1
    `
	user, err := scanUser(r.db.QueryRow(ctx, query, login))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user by login", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) FindByID(ctx context.Context, userID int) (*domain.User, error) {
	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE id = $1
    `
	user, err := scanUser(r.db.QueryRow(ctx, query, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user by id", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
        INSERT INTO users (login, password_hash, balance)
        VALUES ($1, $2, $3)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, user.Login, user.PasswordHash, user.Balance).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		zap.L().Error("can't create user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// Touch records presence; raid initiation samples it.
func (r *Repository) Touch(ctx context.Context, userID int, seenAt time.Time) error {
	query := `
        UPDATE users
        SET last_seen_at = $1
        WHERE id = $2
    `
	if _, err := r.db.Exec(ctx, query, seenAt, userID); err != nil {
		zap.L().Error("can't touch user presence", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) AddStats(ctx context.Context, userID int, stats domain.Stats) error {
	query := `
        UPDATE users
        SET wins = wins + $1,
            clashes_total = clashes_total + $2,
            raids_attempted = raids_attempted + $3,
            raids_defended = raids_defended + $4,
            raids_suffered = raids_suffered + $5
        WHERE id = $6
    `
	_, err := r.db.Exec(ctx, query,
		stats.Wins, stats.ClashesTotal, stats.RaidsAttempted, stats.RaidsDefended, stats.RaidsSuffered, userID)
	if err != nil {
		zap.L().Error("can't update user stats", zap.Error(err))
		return err
	}
	return nil
}
