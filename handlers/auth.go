// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/xiaoe7442-ops/todo/auth"
	"github.com/xiaoe7442-ops/todo/cliparse"
	"github.com/xiaoe7442-ops/todo/middleware"
	"github.com/xiaoe7442-ops/todo/models"
	"github.com/xiaoe7442-ops/todo/service"
	"github.com/xiaoe7442-ops/todo/store"
)

type AuthHandler struct {
	users    *service.AuthService
	sessions *auth.SessionManager
}

// NewAuthHandler issues cookies with sessions, which must be the same
// manager that verifies them in middleware.RequireSession.
func NewAuthHandler(db *sql.DB, cfg cliparse.Config, sessions *auth.SessionManager) *AuthHandler {
	return &AuthHandler{
		users:    service.NewAuthService(store.New(db, cfg.DatabaseType)),
		sessions: sessions,
	}
}

// Register handles POST /register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.CredentialsRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.users.Register(r.Context(), req.Username, req.Password); err != nil {
		writeError(w, r, err)
		return
	}

	slog.Info("user registered", "request_id", middleware.RequestID(r.Context()))

	middleware.JSONResponse(w, http.StatusOK, models.StatusResponse{
		Status:  models.StatusOK,
		Message: "registration successful",
	})
}

// Login handles POST /login
// Sets the session cookie on success
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.CredentialsRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	s, err := h.users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.sessions.Issue(w, s); err != nil {
		writeError(w, r, err)
		return
	}

	slog.Info("user logged in", "user_id", s.UserID, "request_id", middleware.RequestID(r.Context()))

	middleware.JSONResponse(w, http.StatusOK, models.StatusResponse{
		Status:   models.StatusOK,
		Username: s.Username,
	})
}

// Logout handles POST /logout
// Always succeeds, with or without a session
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	middleware.JSONResponse(w, http.StatusOK, models.StatusResponse{Status: models.StatusOK})
}
