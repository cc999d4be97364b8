package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MamunHossain005/blog-website-server/internal/blogservice"
	"github.com/MamunHossain005/blog-website-server/internal/commentservice"
	"github.com/MamunHossain005/blog-website-server/internal/common"
	"github.com/MamunHossain005/blog-website-server/internal/tokenservice"
	"github.com/MamunHossain005/blog-website-server/internal/wishlistservice"
)

const testSecret = "test-access-secret"

type testServer struct {
	*httptest.Server
}

func newTestServer(t *testing.T, h http.Handler) *testServer {
	ts := httptest.NewServer(h)

	t.Cleanup(ts.Close)

	return &testServer{ts}
}

type testStores struct {
	blogs    *blogservice.MockBlogStore
	wishlist *wishlistservice.MockWishlistStore
	comments *commentservice.MockCommentStore
}

func newTestApplication(t *testing.T) (*application, *testStores) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &Config{
		Port:        ":0",
		Environment: "development",
	}
	cfg.JWT.AccessSecret = testSecret
	cfg.CORS.TrustedOrigins = "http://localhost:3000"
	cfg.Limiter.Enabled = false

	stores := &testStores{
		blogs:    new(blogservice.MockBlogStore),
		wishlist: new(wishlistservice.MockWishlistStore),
		comments: new(commentservice.MockCommentStore),
	}

	cache := common.NewCache(5*time.Minute, 10*time.Minute)

	app := &application{
		config:          cfg,
		logger:          logger,
		tokenService:    tokenservice.NewTokenService(cfg.JWT.AccessSecret, cfg.production()),
		blogService:     blogservice.NewBlogService(stores.blogs, cache),
		wishlistService: wishlistservice.NewWishlistService(stores.wishlist),
		commentService:  commentservice.NewCommentService(stores.comments),
	}

	return app, stores
}

func sessionCookie(t *testing.T, app *application, email string) *http.Cookie {
	t.Helper()

	token, expiry, err := app.tokenService.Issue(map[string]any{tokenservice.EmailClaim: email})
	if err != nil {
		t.Fatal(err)
	}

	return app.tokenService.Cookie(token, expiry)
}

func readResponse(t *testing.T, res *http.Response) (int, http.Header, []byte) {
	t.Helper()
	defer res.Body.Close()

	responseBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatal(err)
	}

	return res.StatusCode, res.Header, responseBody
}

func unmarshalResponse(t *testing.T, body []byte, dst any) {
	t.Helper()

	err := json.Unmarshal(body, dst)
	if err != nil {
		t.Fatal(err)
	}
}

func (ts *testServer) do(t *testing.T, method, path string, data any, cookie *http.Cookie) *http.Response {
	t.Helper()

	var body io.Reader
	if data != nil {
		jsonPayload, err := json.Marshal(data)
		if err != nil {
			t.Fatal(err)
		}
		body = bytes.NewReader(jsonPayload)
	}

	req, err := http.NewRequest(method, ts.URL+path, body)
	if err != nil {
		t.Fatal(err)
	}

	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	res, err := ts.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}

	return res
}

func (ts *testServer) get(t *testing.T, path string, cookie *http.Cookie) (int, http.Header, []byte) {
	return readResponse(t, ts.do(t, http.MethodGet, path, nil, cookie))
}

func (ts *testServer) post(t *testing.T, path string, data any, cookie *http.Cookie) (int, http.Header, []byte) {
	return readResponse(t, ts.do(t, http.MethodPost, path, data, cookie))
}

func (ts *testServer) put(t *testing.T, path string, data any, cookie *http.Cookie) (int, http.Header, []byte) {
	return readResponse(t, ts.do(t, http.MethodPut, path, data, cookie))
}

func (ts *testServer) delete(t *testing.T, path string, cookie *http.Cookie) (int, http.Header, []byte) {
	return readResponse(t, ts.do(t, http.MethodDelete, path, nil, cookie))
}
