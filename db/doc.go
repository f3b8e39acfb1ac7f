// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation.

# Connecting

Open selects the driver for the configured database type and pings it:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

Supported types:

  - sqlite: modernc.org/sqlite, DatabaseURL is a file path (default todo.db).
    foreign_keys and busy_timeout pragmas are appended, and the pool is
    limited to one connection.
  - postgres: github.com/lib/pq
  - mysql: github.com/go-sql-driver/mysql

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - users: id, username (unique), password (bcrypt hash)
  - tasks: id, title, created (RFC 3339 text), done (0/1), user_id

# Relationships

	users 1──* tasks

tasks.user_id references users.id with ON DELETE CASCADE.

# Dialect Helpers

Queries are written with ? placeholders; Rebind converts them to $N for
postgres. IsUniqueViolation recognizes unique-constraint errors from all
three drivers.
*/
package db
