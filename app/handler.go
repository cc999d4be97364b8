package main

import (
	"errors"
	"net/http"

	"github.com/MamunHossain005/blog-website-server/internal/blogservice"
	"github.com/MamunHossain005/blog-website-server/internal/commentservice"
	"github.com/MamunHossain005/blog-website-server/internal/common"
	"github.com/MamunHossain005/blog-website-server/internal/tokenservice"
	"github.com/MamunHossain005/blog-website-server/internal/wishlistservice"
)

func (app *application) rootHandler(w http.ResponseWriter, r *http.Request) {
	err := app.writeJSON(w, http.StatusOK, envelope{"message": "Bloggy server is running"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// issueTokenHandler signs whatever claims payload the client supplies and
// hands the token back inside the session cookie.
func (app *application) issueTokenHandler(w http.ResponseWriter, r *http.Request) {
	var claims map[string]any

	err := app.parseJSON(w, r, &claims)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	token, expiry, err := app.tokenService.Issue(claims)
	if err != nil {
		switch {
		case errors.As(err, &common.ValidationError{}):
			validationErr := err.(common.ValidationError)
			app.failedValidationErrorResponse(w, r, validationErr.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	http.SetCookie(w, app.tokenService.Cookie(token, expiry))

	err = app.writeJSON(w, http.StatusOK, envelope{"success": true}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) logoutHandler(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, app.tokenService.ExpiredCookie())

	err := app.writeJSON(w, http.StatusOK, envelope{"success": true}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) getRecentBlogsHandler(w http.ResponseWriter, r *http.Request) {
	blogs, err := app.blogService.GetRecentBlogs(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, blogs, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) getAllBlogsHandler(w http.ResponseWriter, r *http.Request) {
	blogs, err := app.blogService.GetAllBlogs(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, blogs, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) getPaginatedBlogsHandler(w http.ResponseWriter, r *http.Request) {
	page, limit, err := app.readPageLimitParams(r)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	query := r.URL.Query()

	blogPage, err := app.blogService.GetBlogPage(r.Context(), page, limit, query.Get("category"), query.Get("title"))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, blogPage, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) getFeaturedBlogsHandler(w http.ResponseWriter, r *http.Request) {
	blogs, err := app.blogService.GetFeaturedBlogs(r.Context(), r.URL.Query().Get("sort"))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, blogs, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) getBlogHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	blog, err := app.blogService.GetBlogByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, blogservice.ErrRecordNotFound):
			// absent blogs are a null body, not a 404; clients check
			// for emptiness
			err = app.writeJSON(w, http.StatusOK, nil, nil)
			if err != nil {
				app.serverErrorResponse(w, r, err)
			}
		case errors.Is(err, blogservice.ErrInvalidID):
			app.badRequestErrorResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, blog, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) updateBlogHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	var input blogservice.BlogRequest
	err = app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	res, err := app.blogService.UpsertBlog(r.Context(), id, &input)
	if err != nil {
		switch {
		case errors.Is(err, blogservice.ErrInvalidID):
			app.badRequestErrorResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, res, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) createBlogHandler(w http.ResponseWriter, r *http.Request) {
	var input blogservice.BlogRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	res, err := app.blogService.CreateBlog(r.Context(), &input)
	if err != nil {
		switch {
		case errors.As(err, &common.ValidationError{}):
			validationErr := err.(common.ValidationError)
			app.failedValidationErrorResponse(w, r, validationErr.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, res, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// getWishlistBlogsHandler runs behind requireToken. On top of the gate it
// checks that the caller only lists their own wishlist.
func (app *application) getWishlistBlogsHandler(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("user")

	claims := app.getClaimsContext(r)
	tokenEmail, _ := claims[tokenservice.EmailClaim].(string)

	if email != tokenEmail {
		app.forbiddenErrorResponse(w, r)
		return
	}

	entries, err := app.wishlistService.GetWishlistBlogs(r.Context(), email)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, entries, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) addWishlistBlogHandler(w http.ResponseWriter, r *http.Request) {
	var input wishlistservice.AddWishlistBlogRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	res, err := app.wishlistService.AddWishlistBlog(r.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, wishlistservice.ErrAlreadyInWishlist):
			// informational, not an error
			err = app.writeJSON(w, http.StatusOK, envelope{"message": wishlistservice.DuplicateMessage}, nil)
			if err != nil {
				app.serverErrorResponse(w, r, err)
			}
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, res, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) deleteWishlistBlogHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	res, err := app.wishlistService.DeleteWishlistBlog(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, wishlistservice.ErrInvalidID):
			app.badRequestErrorResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, res, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) getCommentsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	comments, err := app.commentService.GetCommentsByBlogID(r.Context(), id)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, comments, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) createCommentHandler(w http.ResponseWriter, r *http.Request) {
	var input commentservice.AddCommentRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	res, err := app.commentService.AddComment(r.Context(), &input)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, res, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
