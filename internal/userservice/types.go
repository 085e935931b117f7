package userservice

import "database/sql"

type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	// Password is stored verbatim; signin matches the submitted password
	// against the stored value directly.
	Password string `json:"-"`
	Name     string `json:"name"`
}

type UserService struct {
	m *UserModel
}

type UserModel struct {
	db *sql.DB
}
