// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/xiaoe7442-ops/todo/auth"
	"github.com/xiaoe7442-ops/todo/cliparse"
	"github.com/xiaoe7442-ops/todo/db"
)

// TestSessionSecret signs session cookies in tests
const TestSessionSecret = "test-session-secret-0123456789"

// SetupTestDB creates a fresh sqlite database file with the full schema.
// The file lives in t.TempDir and the connection is closed on cleanup.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.SQLite, filepath.Join(t.TempDir(), "todo_test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, db.SQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          8000,
		DatabaseType:  db.SQLite,
		DatabaseURL:   "todo_test.db",
		SessionSecret: TestSessionSecret,
		SessionTTL:    time.Hour,
		LogLevel:      "error",
	}
}

// CreateTestUser inserts a user with a hashed password and returns its ID
func CreateTestUser(t *testing.T, conn *sql.DB, username, password string) int64 {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	res, err := conn.Exec(`INSERT INTO users (username, password) VALUES (?, ?)`, username, hash)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to read user ID: %v", err)
	}
	return id
}

// CreateTestTask inserts a pending task for userID and returns its ID
func CreateTestTask(t *testing.T, conn *sql.DB, userID int64, title string) int64 {
	t.Helper()

	res, err := conn.Exec(`
		INSERT INTO tasks (title, created, done, user_id)
		VALUES (?, ?, 0, ?)
	`, title, time.Now().Format(time.RFC3339), userID)
	if err != nil {
		t.Fatalf("Failed to create test task: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to read task ID: %v", err)
	}
	return id
}

// TaskDone reports the stored done flag of a task
func TaskDone(t *testing.T, conn *sql.DB, taskID int64) bool {
	t.Helper()

	var done int
	if err := conn.QueryRow(`SELECT done FROM tasks WHERE id = ?`, taskID).Scan(&done); err != nil {
		t.Fatalf("Failed to read task %d: %v", taskID, err)
	}
	return done != 0
}

// CountTasks returns the number of stored tasks
func CountTasks(t *testing.T, conn *sql.DB) int {
	t.Helper()

	var n int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM tasks`).Scan(&n); err != nil {
		t.Fatalf("Failed to count tasks: %v", err)
	}
	return n
}

// SessionCookie signs a session for userID the way the login handler does
func SessionCookie(t *testing.T, cfg cliparse.Config, userID int64, username string) *http.Cookie {
	t.Helper()

	w := httptest.NewRecorder()
	m := auth.NewSessionManager(cfg.SessionSecret, cfg.SessionTTL, cfg.SecureCookie)
	if err := m.Issue(w, auth.Session{UserID: userID, Username: username}); err != nil {
		t.Fatalf("Failed to issue session: %v", err)
	}
	for _, c := range w.Result().Cookies() {
		if c.Name == auth.SessionCookieName {
			return c
		}
	}
	t.Fatal("No session cookie issued")
	return nil
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, cookies ...*http.Cookie) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for _, c := range cookies {
		req.AddCookie(c)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// Client is a browser-like client with a cookie jar, talking to a test server
type Client struct {
	t      *testing.T
	server *httptest.Server
	http   *http.Client
}

// NewClient starts handler on a test server and returns a client for it
func NewClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClientFor(t, server)
}

// NewClientFor returns a client with its own cookie jar for an existing server
func NewClientFor(t *testing.T, server *httptest.Server) *Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("Failed to create cookie jar: %v", err)
	}

	// server.Client() is shared; each Client gets its own jar
	hc := &http.Client{Transport: server.Client().Transport, Jar: jar}
	return &Client{t: t, server: server, http: hc}
}

// Server returns the underlying test server
func (c *Client) Server() *httptest.Server {
	return c.server
}

// Do sends a JSON request and decodes the JSON response into out (if non-nil).
// Returns the status code.
func (c *Client) Do(method, path string, body, out interface{}) int {
	c.t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			c.t.Fatalf("Failed to encode request: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, c.server.URL+path, rdr)
	if err != nil {
		c.t.Fatalf("Failed to build request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer resp.Body.Close()

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			c.t.Fatalf("Failed to decode %s %s response: %v", method, path, err)
		}
	}
	return resp.StatusCode
}
