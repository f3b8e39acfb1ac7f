// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the to-do API.

# Handler Types

  - AuthHandler: Registration, login and logout
  - TaskHandler: Listing, adding, toggling and deleting the caller's tasks

Handlers are created via constructor functions that accept *sql.DB and Config;
AuthHandler also takes the SessionManager shared with the router:

	authHandler := handlers.NewAuthHandler(db, cfg, sessions)

# Accounts

	POST /register → Register (trims username and password)
	POST /login    → Login (sets the session cookie)
	POST /logout   → Logout (expires the cookie, always succeeds)

# Tasks

Task handlers read the session that middleware.RequireSession stored on the
request context and only ever touch rows owned by that user:

	GET    /tasks             → ListTasks (newest first)
	POST   /tasks             → CreateTask
	PUT    /tasks/{id}/toggle → ToggleTask (returns new_status 0 or 1)
	DELETE /tasks/{id}        → DeleteTask (idempotent)

An {id} that is not a positive integer, or names another user's task,
is reported as 404 "task not found" by ToggleTask.

# Errors

Service errors map onto status codes: validation and duplicate username
are 400, bad credentials or a missing session 401, unknown task 404.
Anything else is logged and returned as 500 "internal server error".
Error bodies have the form {"error": "...", "code": 400}.
*/
package handlers
