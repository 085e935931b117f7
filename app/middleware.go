package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
)

func (app *application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")
				app.serverErrorResponse(w, r, fmt.Errorf("%s", err))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

func (app *application) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var (
			id     = uuid.NewString()
			ip     = r.RemoteAddr
			method = r.Method
			proto  = r.Proto
			uri    = r.URL.RequestURI()
		)

		w.Header().Set("X-Request-ID", id)

		app.logger.Info("request from", slog.String("request_id", id), slog.String("method", method), slog.String("uri", uri), slog.String("remote_addr", ip), slog.String("proto", proto))

		next.ServeHTTP(w, r)
	})
}

// requireAuthUser verifies the Authorization header and exposes the caller id
// to the wrapped handler. The whole header value is passed to the token
// service as-is, with no Bearer prefix stripping.
//
// A failed verification answers 404, a valid token without a usable id
// answers 401. Both carry the same message.
func (app *application) requireAuthUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Authorization")

		authHeader := r.Header.Get("Authorization")

		claims, err := app.tokenService.Verify(authHeader)
		if err != nil {
			app.notLoggedInErrorResponse(w, r, http.StatusNotFound)
			return
		}

		if claims.UserID <= 0 {
			app.notLoggedInErrorResponse(w, r, http.StatusUnauthorized)
			return
		}

		r = app.createUserContext(r, strconv.Itoa(claims.UserID))
		next.ServeHTTP(w, r)
	})
}
