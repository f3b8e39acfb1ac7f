// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/xiaoe7442-ops/todo/auth"
	"github.com/xiaoe7442-ops/todo/cliparse"
	"github.com/xiaoe7442-ops/todo/handlers"
	"github.com/xiaoe7442-ops/todo/middleware"
)

// NewRouter returns the full HTTP handler: routes plus CORS and request ids
func NewRouter(db *sql.DB, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	sessions := auth.NewSessionManager(cfg.SessionSecret, cfg.SessionTTL, cfg.SecureCookie)
	authHandler := handlers.NewAuthHandler(db, cfg, sessions)
	taskHandler := handlers.NewTaskHandler(db, cfg)

	public := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.WithMetrics(h))
	}
	protected := func(h http.HandlerFunc) http.HandlerFunc {
		return public(middleware.RequireSession(sessions, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.Handle("GET /metrics", middleware.MetricsHandler())

	// Accounts
	mux.HandleFunc("POST /register", public(authHandler.Register))
	mux.HandleFunc("POST /login", public(authHandler.Login))
	mux.HandleFunc("POST /logout", public(authHandler.Logout))

	// Tasks (session required)
	mux.HandleFunc("GET /tasks", protected(taskHandler.ListTasks))
	mux.HandleFunc("POST /tasks", protected(taskHandler.CreateTask))
	mux.HandleFunc("PUT /tasks/{id}/toggle", protected(taskHandler.ToggleTask))
	mux.HandleFunc("DELETE /tasks/{id}", protected(taskHandler.DeleteTask))

	return middleware.WithRequestID(middleware.CORS(mux))
}
