// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8000)
  - DatabaseType: sqlite, postgres or mysql (default: sqlite)
  - DatabaseURL: DSN, or a file path for sqlite (default: todo.db)
  - SessionSecret: HMAC secret for session cookies (required, >= 16 bytes)
  - SessionTTL: Session lifetime (default: 744h)
  - SecureCookie: Mark the session cookie Secure and SameSite=None
  - LogLevel: slog level (default: info)

# CLI Flags

	-p               Server port
	-d               Database URL
	-t               Database type
	-session-secret  Session signing secret
	-session-ttl     Session lifetime
	-secure-cookie   true/false
	-log-level       debug, info, warn, error

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	SESSION_SECRET → -session-secret
	SESSION_TTL    → -session-ttl
	COOKIE_SECURE  → -secure-cookie
	LOG_LEVEL      → -log-level

CLI flags take precedence over environment variables. main loads a .env file
into the environment before ParseFlags runs.

# Validation

ParseFlags returns an error if:

  - SESSION_SECRET is missing or shorter than 16 bytes
  - DATABASE_URL is missing for postgres or mysql
  - PORT, SESSION_TTL or COOKIE_SECURE cannot be parsed
*/
package cliparse
