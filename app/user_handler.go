package main

import (
	"errors"
	"net/http"

	"github.com/awptimizer/medium-api/internal/userservice"
)

type signupRequest struct {
	Username string `json:"username" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"omitempty"`
}

func (app *application) signupUserHandler(w http.ResponseWriter, r *http.Request) {
	var input signupRequest

	// Parse and validate the request body
	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.invalidInputErrorResponse(w, r)
		return
	}

	err = app.validate.Struct(input)
	if err != nil {
		app.invalidInputErrorResponse(w, r)
		return
	}

	// Existence check before insert. A concurrent duplicate slips past this
	// and surfaces through the unique index as the generic error below.
	_, err = app.userService.GetUserByUsername(r.Context(), input.Username)
	if err == nil {
		app.writeText(w, http.StatusOK, "Username Exists")
		return
	}
	if !errors.Is(err, userservice.ErrNotFound) {
		app.invalidCredentialsTextResponse(w, r, err)
		return
	}

	user, err := app.userService.CreateUser(r.Context(), input.Username, input.Password, input.Name)
	if err != nil {
		app.invalidCredentialsTextResponse(w, r, err)
		return
	}

	jwt, err := app.tokenService.Sign(user.ID)
	if err != nil {
		app.invalidCredentialsTextResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"jwt": jwt}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

type signinRequest struct {
	Username string `json:"username" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func (app *application) signinUserHandler(w http.ResponseWriter, r *http.Request) {
	var input signinRequest

	// Parse and validate the request body
	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.invalidInputErrorResponse(w, r)
		return
	}

	err = app.validate.Struct(input)
	if err != nil {
		app.invalidInputErrorResponse(w, r)
		return
	}

	user, err := app.userService.GetUserByCredentials(r.Context(), input.Username, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, userservice.ErrNotFound):
			app.badCredentialsErrorResponse(w, r)
		default:
			app.invalidCredentialsTextResponse(w, r, err)
		}
		return
	}

	jwt, err := app.tokenService.Sign(user.ID)
	if err != nil {
		app.invalidCredentialsTextResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"jwt": jwt}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}
