package main

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-playground/validator/v10"

	"github.com/awptimizer/medium-api/internal/blogservice"
	"github.com/awptimizer/medium-api/internal/common"
	"github.com/awptimizer/medium-api/internal/tokenservice"
	"github.com/awptimizer/medium-api/internal/userservice"
)

type testServer struct {
	*httptest.Server
}

func newTestServer(t *testing.T, h http.Handler) *testServer {
	ts := httptest.NewServer(h)

	t.Cleanup(ts.Close)

	return &testServer{ts}
}

func newTestApplication(t *testing.T) (*application, *sql.DB) {
	db := common.TestDB("file://../migrations", t)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := &Config{
		Port:        ":0",
		Environment: "test",
		Version:     "test",
		JWTSecret:   "test-secret",
	}

	app := &application{
		config:       cfg,
		logger:       logger,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
		tokenService: tokenservice.New(cfg.JWTSecret),
		userService:  userservice.NewUserService(db),
		blogService:  blogservice.NewBlogService(db),
	}

	return app, db
}

func readResponse(t *testing.T, res *http.Response) (int, http.Header, []byte) {
	defer res.Body.Close()

	responseBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatal(err)
	}

	return res.StatusCode, res.Header, responseBody
}

func decodeEnvelope(t *testing.T, body []byte) envelope {
	var env envelope
	err := json.Unmarshal(body, &env)
	if err != nil {
		t.Fatalf("could not decode response body %q: %v", body, err)
	}

	return env
}

// do sends a request with an optional JSON payload. The token, when given, is
// placed verbatim in the Authorization header; the verification contract
// operates on the raw header value, with no Bearer prefix.
func (ts *testServer) do(t *testing.T, method, path string, payload any, token *string) (int, http.Header, []byte) {
	var body io.Reader
	if payload != nil {
		jsonPayload, err := json.Marshal(payload)
		if err != nil {
			t.Fatal(err)
		}
		body = bytes.NewReader(jsonPayload)
	}

	req, err := http.NewRequest(method, ts.URL+path, body)
	if err != nil {
		t.Fatal(err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != nil {
		req.Header.Set("Authorization", *token)
	}

	res, err := ts.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}

	return readResponse(t, res)
}

func (ts *testServer) post(t *testing.T, path string, payload any, token *string) (int, http.Header, []byte) {
	return ts.do(t, http.MethodPost, path, payload, token)
}

func (ts *testServer) put(t *testing.T, path string, payload any, token *string) (int, http.Header, []byte) {
	return ts.do(t, http.MethodPut, path, payload, token)
}

func (ts *testServer) get(t *testing.T, path string, token *string) (int, http.Header, []byte) {
	return ts.do(t, http.MethodGet, path, nil, token)
}

func strptr(s string) *string {
	return &s
}
