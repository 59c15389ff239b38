package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/betcha-app/betcha/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func userRows(u *domain.User) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "login", "password_hash", "balance",
		"wins", "clashes_total", "raids_attempted", "raids_defended", "raids_suffered",
		"last_seen_at", "created_at",
	}).AddRow(
		u.ID, u.Login, u.PasswordHash, u.Balance,
		u.Wins, u.ClashesTotal, u.RaidsAttempted, u.RaidsDefended, u.RaidsSuffered,
		u.LastSeenAt, u.CreatedAt,
	)
}

func TestRepository_FindByLogin(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		login     string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:  "Existing login",
			login: "testuser",
			mockSetup: func() {
				user := &domain.User{ID: 1, Login: "testuser", PasswordHash: "hashedpassword", Balance: 500}
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE login = $1`)).
					WithArgs("testuser").
					WillReturnRows(userRows(user))
			},
			result: &domain.User{ID: 1, Login: "testuser", PasswordHash: "hashedpassword", Balance: 500},
		},
		{
			name:  "Unknown login returns nil",
			login: "nobody",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE login = $1`)).
					WithArgs("nobody").
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:  "Database error",
			login: "testuser",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE login = $1`)).
					WithArgs("testuser").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByLogin(context.Background(), tt.login)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	lastSeen := time.Now().Add(-30 * time.Second)

	user := &domain.User{ID: 2, Login: "target", Balance: 1000, Wins: 5, LastSeenAt: &lastSeen}
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE id = $1`)).
		WithArgs(2).
		WillReturnRows(userRows(user))

	result, err := repo.FindByID(context.Background(), 2)
	assert.NoError(t, err)
	assert.Equal(t, user, result)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Now()

	t.Run("Returns id and created_at", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "created_at"}).AddRow(1, createdAt)
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
			WithArgs("testuser", "hashedpassword", int64(0)).
			WillReturnRows(rows)

		user, err := repo.Create(context.Background(), &domain.User{Login: "testuser", PasswordHash: "hashedpassword"})
		assert.NoError(t, err)
		assert.Equal(t, 1, user.ID)
		assert.Equal(t, createdAt, user.CreatedAt)
	})

	t.Run("Duplicate login", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
			WithArgs("testuser", "hashedpassword", int64(0)).
			WillReturnError(errors.New("duplicate key value violates unique constraint"))

		_, err := repo.Create(context.Background(), &domain.User{Login: "testuser", PasswordHash: "hashedpassword"})
		assert.Error(t, err)
	})
}

func TestRepository_Touch(t *testing.T) {
	repo, mock := NewMock(t)
	seenAt := time.Now()

	mock.ExpectExec(regexp.QuoteMeta(`SET last_seen_at = $1`)).
		WithArgs(seenAt, 1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.Touch(context.Background(), 1, seenAt))
}

func TestRepository_AddStats(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`SET wins = wins + $1`)).
		WithArgs(1, 1, 0, 0, 0, 5).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.AddStats(context.Background(), 5, domain.Stats{Wins: 1, ClashesTotal: 1}))
}
