package main

import (
	"log/slog"
	"net/http"
)

func (app *application) logError(r *http.Request, err error) {
	var (
		method  = r.Method
		url     = r.URL.RequestURI()
		message = err.Error()
	)

	app.logger.Error(message, slog.String("method", method), slog.String("url", url))
}

func (app *application) writeErrorResponse(w http.ResponseWriter, r *http.Request, status int, message any) {
	err := app.writeJSON(w, status, envelope{"message": message}, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
}

// serverErrorResponse is the generic unhandled-error answer. Store or token
// failures on routes without local recovery end up here.
func (app *application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)
	message := "the server encountered a problem and could not process your request"
	app.writeErrorResponse(w, r, http.StatusInternalServerError, message)
}

func (app *application) notFoundErrorResponse(w http.ResponseWriter, r *http.Request) {
	app.writeErrorResponse(w, r, http.StatusNotFound, "resource not found")
}

func (app *application) methodNotAllowedErrorResponse(w http.ResponseWriter, r *http.Request) {
	app.writeErrorResponse(w, r, http.StatusMethodNotAllowed, "method not allowed")
}

// invalidInputErrorResponse answers every schema validation failure.
func (app *application) invalidInputErrorResponse(w http.ResponseWriter, r *http.Request) {
	app.writeErrorResponse(w, r, http.StatusNotAcceptable, "Input not correct")
}

// notLoggedInErrorResponse answers both auth failure modes; the status code
// (401 or 404) is chosen by the middleware.
func (app *application) notLoggedInErrorResponse(w http.ResponseWriter, r *http.Request, status int) {
	app.writeErrorResponse(w, r, status, "You are not logged in!")
}

// invalidCredentialsTextResponse answers unexpected store or token failures
// on signup and signin with 411 and a plain-text body.
func (app *application) invalidCredentialsTextResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)
	app.writeText(w, http.StatusLengthRequired, "Invalid Credentials")
}

func (app *application) badCredentialsErrorResponse(w http.ResponseWriter, r *http.Request) {
	app.writeErrorResponse(w, r, http.StatusForbidden, "Invalid credentials")
}
