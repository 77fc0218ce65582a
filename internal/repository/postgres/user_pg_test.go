// internal/repository/postgres/user_pg_test.go
package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finance-tracker/internal/domain"
	"finance-tracker/internal/util"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func userColumns() []string {
	return []string{"id", "email", "password_hash", "refresh_token", "created_at", "updated_at"}
}

func TestUserRepositoryCreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)
		user := domain.NewUser("a@x.com", "hashed")

		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO users`)).
			WithArgs(user.ID, user.Email, user.PasswordHash, user.RefreshToken, user.CreatedAt, user.UpdatedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.CreateUser(ctx, db, user))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)
		user := domain.NewUser("a@x.com", "hashed")

		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO users`)).
			WillReturnError(&pq.Error{Code: "23505"})

		err := repo.CreateUser(ctx, db, user)
		assert.ErrorIs(t, err, util.ErrUserExists)
	})
}

func TestUserRepositoryGetUserByEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)
		now := time.Now().UTC()

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, email, password_hash, refresh_token, created_at, updated_at FROM users WHERE email = $1`)).
			WithArgs("a@x.com").
			WillReturnRows(sqlmock.NewRows(userColumns()).
				AddRow("user-1", "a@x.com", "hashed", "stored-refresh", now, now))

		user, err := repo.GetUserByEmail(ctx, db, "a@x.com")
		require.NoError(t, err)
		assert.Equal(t, "user-1", user.ID)
		assert.Equal(t, "stored-refresh", user.RefreshToken)
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, email, password_hash, refresh_token, created_at, updated_at FROM users WHERE email = $1`)).
			WithArgs("nobody@x.com").
			WillReturnRows(sqlmock.NewRows(userColumns()))

		_, err := repo.GetUserByEmail(ctx, db, "nobody@x.com")
		assert.ErrorIs(t, err, util.ErrNotFound)
	})
}

func TestUserRepositorySetRefreshToken(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET refresh_token = $1, updated_at = $2 WHERE id = $3`)).
			WithArgs("new-token", sqlmock.AnyArg(), "user-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.SetRefreshToken(ctx, db, "user-1", "new-token"))
	})

	t.Run("UserMissing", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET refresh_token = $1, updated_at = $2 WHERE id = $3`)).
			WithArgs("new-token", sqlmock.AnyArg(), "gone").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.SetRefreshToken(ctx, db, "gone", "new-token")
		assert.ErrorIs(t, err, util.ErrNotFound)
	})
}

func TestUserRepositoryRotateRefreshToken(t *testing.T) {
	ctx := context.Background()
	query := regexp.QuoteMeta(`UPDATE users SET refresh_token = $1, updated_at = $2 WHERE id = $3 AND refresh_token = $4`)

	t.Run("RotatesWhenTokenMatches", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectExec(query).
			WithArgs("new-token", sqlmock.AnyArg(), "user-1", "old-token").
			WillReturnResult(sqlmock.NewResult(0, 1))

		rotated, err := repo.RotateRefreshToken(ctx, db, "user-1", "old-token", "new-token")
		require.NoError(t, err)
		assert.True(t, rotated)
	})

	t.Run("RefusesWhenTokenSuperseded", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectExec(query).
			WithArgs("new-token", sqlmock.AnyArg(), "user-1", "stale-token").
			WillReturnResult(sqlmock.NewResult(0, 0))

		rotated, err := repo.RotateRefreshToken(ctx, db, "user-1", "stale-token", "new-token")
		require.NoError(t, err)
		assert.False(t, rotated)
	})
}
