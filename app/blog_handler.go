package main

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/awptimizer/medium-api/internal/blogservice"
)

type createBlogRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

func (app *application) createBlogHandler(w http.ResponseWriter, r *http.Request) {
	var input createBlogRequest

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

	// The author is always the authenticated caller
	authorID, err := strconv.Atoi(app.getUserContext(r))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	id, err := app.blogService.CreateBlog(r.Context(), input.Title, input.Content, authorID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"id": id}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

type updateBlogRequest struct {
	ID      int    `json:"id" validate:"required,gt=0"`
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// updateBlogHandler updates any blog by id. The caller's identity is not
// checked against the blog's author: any signed-in user may update any blog.
func (app *application) updateBlogHandler(w http.ResponseWriter, r *http.Request) {
	var input updateBlogRequest

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

	id, err := app.blogService.UpdateBlog(r.Context(), input.ID, input.Title, input.Content)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"id": id}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) getAllBlogsHandler(w http.ResponseWriter, r *http.Request) {
	blogs, err := app.blogService.GetBlogs(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"blogs": blogs}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) getBlogHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.blogLookupErrorResponse(w, r, err)
		return
	}

	blog, err := app.blogService.GetBlogByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, blogservice.ErrRecordNotFound):
			// the store reports "no match" rather than failing: answer 200
			// with a null blog
			blog = nil
		default:
			app.blogLookupErrorResponse(w, r, err)
			return
		}
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"blog": blog}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

// blogLookupErrorResponse interpolates the error into the body, so the
// client sees the underlying lookup failure verbatim.
func (app *application) blogLookupErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)
	app.writeErrorResponse(w, r, http.StatusNotFound, fmt.Sprintf("Error in blogRouter get /:id method: %s", err))
}
