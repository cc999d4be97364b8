package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (app *application) routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(app.notFoundErrorResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedErrorResponse)

	router.HandlerFunc(http.MethodGet, "/", app.rootHandler)
	router.HandlerFunc(http.MethodGet, "/health", app.healthCheckHandler)

	// auth
	router.HandlerFunc(http.MethodPost, "/jwt", app.issueTokenHandler)
	router.HandlerFunc(http.MethodPost, "/logout", app.logoutHandler)

	// blogs
	router.HandlerFunc(http.MethodGet, "/blogs", app.getRecentBlogsHandler)
	router.HandlerFunc(http.MethodGet, "/allBlogs", app.getAllBlogsHandler)
	router.HandlerFunc(http.MethodGet, "/paginationBlogs", app.getPaginatedBlogsHandler)
	router.HandlerFunc(http.MethodGet, "/featuredBlogs", app.getFeaturedBlogsHandler)
	router.HandlerFunc(http.MethodGet, "/blogs/:id", app.getBlogHandler)
	router.HandlerFunc(http.MethodPut, "/blogs/:id", app.updateBlogHandler)
	router.HandlerFunc(http.MethodPost, "/blogs", app.createBlogHandler)

	// wishlist; only the listing is gated, add and delete stay open for
	// compatibility with the deployed clients
	router.HandlerFunc(http.MethodGet, "/wishlistBlogs", app.requireToken(app.getWishlistBlogsHandler))
	router.HandlerFunc(http.MethodPost, "/wishlistBlogs", app.addWishlistBlogHandler)
	router.HandlerFunc(http.MethodDelete, "/wishlistBlogs/:id", app.deleteWishlistBlogHandler)

	// comments
	router.HandlerFunc(http.MethodGet, "/comments/:id", app.getCommentsHandler)
	router.HandlerFunc(http.MethodPost, "/comments", app.createCommentHandler)

	return app.recoverPanic(app.logRequest(app.rateLimit(app.enableCORS(router))))
}
