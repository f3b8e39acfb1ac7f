// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store reads and writes users and tasks.

Queries are written once with ? placeholders and rebound for PostgreSQL
(see db.Rebind). Each call checks out its own connection and releases it
before returning:

	s := store.New(conn, cfg.DatabaseType)
	id, err := s.CreateTask(ctx, userID, "Buy milk", created)

Task methods always filter on the owning user id. A task that exists but
belongs to someone else behaves exactly like a missing one.

# Errors

  - ErrDuplicate: username already taken (unique violation on any driver)
  - ErrNotFound: no matching user, or no matching task for this user
*/
package store
