package userservice

import (
	"context"
	"database/sql"
	"testing"

	"github.com/awptimizer/medium-api/internal/common"
	"github.com/stretchr/testify/assert"
)

func setupTestEnvironment(t *testing.T) (*UserService, *sql.DB, func() error) {
	db := common.TestDB("file://../../migrations", t)

	cleanup := func() error {
		_, err := db.Exec("DELETE FROM users")
		return err
	}

	return NewUserService(db), db, cleanup
}

func TestCreateUser(t *testing.T) {
	s, db, cleanup := setupTestEnvironment(t)

	testCases := []struct {
		name        string
		username    string
		password    string
		fullName    string
		setup       func(t *testing.T)
		expectedErr error
	}{
		{
			name:     "valid user",
			username: "alice@example.com",
			password: "secret123",
			fullName: "Alice",
		},
		{
			name:     "duplicate username",
			username: "bob@example.com",
			password: "secret123",
			fullName: "Bob",
			setup: func(t *testing.T) {
				_, err := db.Exec("INSERT INTO users (username, password, name) VALUES ($1, $2, $3)", "bob@example.com", "other", "Bob")
				assert.NoError(t, err)
			},
			expectedErr: ErrDuplicateUsername,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()

			if tc.setup != nil {
				tc.setup(t)
			}

			user, err := s.CreateUser(ctx, tc.username, tc.password, tc.fullName)
			assert.Equal(t, tc.expectedErr, err)

			if err == nil {
				assert.NotZero(t, user.ID)
				assert.Equal(t, tc.username, user.Username)

				var count int
				err := db.QueryRow("SELECT COUNT(*) FROM users WHERE username = $1", tc.username).Scan(&count)
				assert.NoError(t, err)
				assert.Equal(t, 1, count)
			}

			t.Cleanup(func() {
				assert.NoError(t, cleanup())
			})
		})
	}
}

func TestGetUserByUsername(t *testing.T) {
	s, db, cleanup := setupTestEnvironment(t)
	t.Cleanup(func() {
		assert.NoError(t, cleanup())
	})

	ctx := context.Background()

	_, err := db.Exec("INSERT INTO users (username, password, name) VALUES ($1, $2, $3)", "carol@example.com", "secret123", "Carol")
	assert.NoError(t, err)

	user, err := s.GetUserByUsername(ctx, "carol@example.com")
	assert.NoError(t, err)
	assert.Equal(t, "carol@example.com", user.Username)
	assert.Equal(t, "Carol", user.Name)

	user, err = s.GetUserByUsername(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, user)
}

func TestGetUserByCredentials(t *testing.T) {
	s, db, cleanup := setupTestEnvironment(t)
	t.Cleanup(func() {
		assert.NoError(t, cleanup())
	})

	ctx := context.Background()

	_, err := db.Exec("INSERT INTO users (username, password, name) VALUES ($1, $2, $3)", "dave@example.com", "secret123", "Dave")
	assert.NoError(t, err)

	testCases := []struct {
		name        string
		username    string
		password    string
		expectedErr error
	}{
		{name: "matching credentials", username: "dave@example.com", password: "secret123"},
		{name: "wrong password", username: "dave@example.com", password: "wrong", expectedErr: ErrNotFound},
		{name: "unknown username", username: "nobody@example.com", password: "secret123", expectedErr: ErrNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			user, err := s.GetUserByCredentials(ctx, tc.username, tc.password)
			assert.Equal(t, tc.expectedErr, err)

			if err == nil {
				assert.Equal(t, tc.username, user.Username)
			}
		})
	}
}
