// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the to-do API.

# Route Registration

NewRouter returns the complete handler (ServeMux wrapped in CORS and
request-id middleware):

	handler := router.NewRouter(db, cfg)

# Endpoints

Health and metrics:

	GET /health
	GET /metrics

Accounts (public):

	POST /register - Create an account
	POST /login    - Start a session (sets the session cookie)
	POST /logout   - End the session

Tasks (session cookie required, 401 otherwise):

	GET    /tasks             - List own tasks, newest first
	POST   /tasks             - Add a task
	PUT    /tasks/{id}/toggle - Flip done
	DELETE /tasks/{id}        - Delete (idempotent)

# Handler Initialization

The router creates handler instances with dependency injection. One
SessionManager both issues cookies (login) and verifies them (RequireSession):

	sessions := auth.NewSessionManager(cfg.SessionSecret, cfg.SessionTTL, cfg.SecureCookie)
	authHandler := handlers.NewAuthHandler(db, cfg, sessions)
	taskHandler := handlers.NewTaskHandler(db, cfg)

Every account and task route is wrapped with WithLogging and WithMetrics;
task routes additionally pass through RequireSession.
*/
package router
