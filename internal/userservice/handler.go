package userservice

import (
	"context"
	"database/sql"
)

func NewUserService(db *sql.DB) *UserService {
	return &UserService{m: newUserModel(db)}
}

// CreateUser inserts a new user and returns it with the store-assigned id.
func (s *UserService) CreateUser(ctx context.Context, username, password, name string) (*User, error) {
	user := &User{
		Username: username,
		Password: password,
		Name:     name,
	}

	err := s.m.insertUser(ctx, user)
	if err != nil {
		return nil, err
	}

	return user, nil
}

// GetUserByUsername returns the user with the given username, or ErrNotFound.
func (s *UserService) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	return s.m.getUserByUsername(ctx, username)
}

// GetUserByCredentials returns the user matching both username and password,
// or ErrNotFound when either does not match.
func (s *UserService) GetUserByCredentials(ctx context.Context, username, password string) (*User, error) {
	return s.m.getUserByCredentials(ctx, username, password)
}
