package main

import (
	"context"
	"net/http"
)

type contextKey string

const userIDContextKey = contextKey("userId")

// createUserContext stores the stringified caller id on the request context.
func (app *application) createUserContext(r *http.Request, userID string) *http.Request {
	ctx := context.WithValue(r.Context(), userIDContextKey, userID)
	return r.WithContext(ctx)
}

// getUserContext returns the caller id set by the auth middleware, or the
// empty string when the request never passed through it.
func (app *application) getUserContext(r *http.Request) string {
	userID, ok := r.Context().Value(userIDContextKey).(string)
	if !ok {
		return ""
	}
	return userID
}
