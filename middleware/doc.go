// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request IDs

WithRequestID wraps the whole server. It reuses an incoming X-Request-ID
header or generates a UUID, echoes it on the response and stores it on the
request context:

	id := middleware.RequestID(r.Context())

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start at debug level and completion (status, duration_ms,
remote, request_id) at info level.

# Session Guard

Protected routes are wrapped with RequireSession, which verifies the session
cookie and responds 401 {"error": "Unauthorized", "code": 401} when it is
missing, expired or forged:

	mux.HandleFunc("GET /tasks", middleware.RequireSession(sessions, taskHandler.ListTasks))

Handlers read the verified session with auth.SessionFromContext.

# Metrics

WithMetrics records Prometheus counters and histograms labeled by method,
route pattern and status. MetricsHandler serves them:

	mux.Handle("GET /metrics", middleware.MetricsHandler())

# CORS Middleware

Enable credentialed cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

The request Origin is echoed with Access-Control-Allow-Credentials: true.
Preflight OPTIONS requests are answered directly.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies (limited to 1 MiB):

	var req models.CreateTaskRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Used in request logs.
*/
package middleware
