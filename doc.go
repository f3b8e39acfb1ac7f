// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the to-do API server.

The server keeps a private task list per account. Users register and log in
with a username and password; a signed session cookie identifies them on
every task request.

# Starting the Server

Only the session secret is required; the database defaults to a local
SQLite file:

	SESSION_SECRET=$(openssl rand -hex 32) go run .

Or with flags:

	go run . -p 8000 -t postgres -d "postgres://..." -session-secret "..."

A .env file in the working directory is loaded first when present.

# Configuration

Required settings:

  - SESSION_SECRET (-session-secret): HMAC key for session cookies, at least 16 bytes

Optional settings:

  - PORT (-p): Server port (default: 8000)
  - DATABASE_TYPE (-t): sqlite, postgres or mysql (default: sqlite)
  - DATABASE_URL (-d): Connection string, or file path for sqlite (default: todo.db)
  - SESSION_TTL (-session-ttl): Session lifetime (default: 744h)
  - COOKIE_SECURE (-secure-cookie): Secure, SameSite=None cookie for HTTPS deployments
  - LOG_LEVEL (-log-level): debug, info, warn or error (default: info)

# Architecture

  - handlers: HTTP request handlers (accounts, tasks)
  - service: Validation and account/task rules
  - store: SQL access for users and tasks
  - router: Route definitions using Go 1.22+ routing
  - middleware: Request ids, logging, metrics, session guard, CORS, JSON helpers
  - models: Request/response and domain types
  - auth: Password hashing and signed session cookies
  - db: Driver selection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
