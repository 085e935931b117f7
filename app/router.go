package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (app *application) routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundErrorResponse)
	r.MethodNotAllowed(app.methodNotAllowedErrorResponse)

	r.Get("/api/v1/healthcheck", app.healthCheckHandler)

	// user router
	r.Route("/api/v1/user", func(r chi.Router) {
		r.Post("/signup", app.signupUserHandler)
		r.Post("/signin", app.signinUserHandler)
	})

	// blog router, every route behind the auth middleware
	r.Route("/api/v1/blog", func(r chi.Router) {
		r.Use(app.requireAuthUser)

		r.Post("/", app.createBlogHandler)
		r.Put("/", app.updateBlogHandler)
		r.Get("/bulk", app.getAllBlogsHandler)
		r.Get("/{id}", app.getBlogHandler)
	})

	return app.recoverPanic(app.logRequest(r))
}
