// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/xiaoe7442-ops/todo/db"
	"github.com/xiaoe7442-ops/todo/models"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// Store is the repository over the users and tasks tables.
// Every task method takes the owning user's id; there is no unscoped task query.
type Store struct {
	db     *sql.DB
	dbType string
}

func New(conn *sql.DB, dbType string) *Store {
	return &Store{db: conn, dbType: dbType}
}

// withConn runs fn on a dedicated connection that is always released.
func (s *Store) withConn(ctx context.Context, fn func(*sql.Conn) error) error {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Close()

	return fn(conn)
}

func (s *Store) q(query string) string {
	return db.Rebind(s.dbType, query)
}

// CreateUser inserts a user. Returns ErrDuplicate if the username is taken.
func (s *Store) CreateUser(ctx context.Context, username, passwordHash string) error {
	return s.withConn(ctx, func(conn *sql.Conn) error {
		_, err := conn.ExecContext(ctx, s.q(`
			INSERT INTO users (username, password)
			VALUES (?, ?)
		`), username, passwordHash)
		if db.IsUniqueViolation(err) {
			return ErrDuplicate
		}
		if err != nil {
			return fmt.Errorf("failed to insert user: %w", err)
		}
		return nil
	})
}

// GetUserByUsername looks up a user by exact username
func (s *Store) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	var user models.User
	err := s.withConn(ctx, func(conn *sql.Conn) error {
		err := conn.QueryRowContext(ctx, s.q(`
			SELECT id, username, password
			FROM users
			WHERE username = ?
		`), username).Scan(&user.ID, &user.Username, &user.PasswordHash)
		if err == sql.ErrNoRows {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to query user: %w", err)
		}
		return nil
	})
	return user, err
}

// ListTasks returns the user's tasks, newest first
func (s *Store) ListTasks(ctx context.Context, userID int64) ([]models.Task, error) {
	tasks := []models.Task{}
	err := s.withConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, s.q(`
			SELECT id, title, created, done, user_id
			FROM tasks
			WHERE user_id = ?
			ORDER BY id DESC
		`), userID)
		if err != nil {
			return fmt.Errorf("failed to query tasks: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var t models.Task
			var done int
			if err := rows.Scan(&t.ID, &t.Title, &t.Created, &done, &t.UserID); err != nil {
				return fmt.Errorf("failed to scan task: %w", err)
			}
			t.Done = done != 0
			tasks = append(tasks, t)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateTask inserts a pending task for userID and returns its id
func (s *Store) CreateTask(ctx context.Context, userID int64, title, created string) (int64, error) {
	var id int64
	err := s.withConn(ctx, func(conn *sql.Conn) error {
		// lib/pq has no LastInsertId
		if s.dbType == db.Postgres {
			err := conn.QueryRowContext(ctx, s.q(`
				INSERT INTO tasks (title, created, done, user_id)
				VALUES (?, ?, 0, ?)
				RETURNING id
			`), title, created, userID).Scan(&id)
			if err != nil {
				return fmt.Errorf("failed to insert task: %w", err)
			}
			return nil
		}

		res, err := conn.ExecContext(ctx, s.q(`
			INSERT INTO tasks (title, created, done, user_id)
			VALUES (?, ?, 0, ?)
		`), title, created, userID)
		if err != nil {
			return fmt.Errorf("failed to insert task: %w", err)
		}
		id, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read task id: %w", err)
		}
		return nil
	})
	return id, err
}

// ToggleTask flips the done flag of the user's task and returns the new value.
// Returns ErrNotFound if the task does not exist or belongs to someone else.
func (s *Store) ToggleTask(ctx context.Context, userID, taskID int64) (bool, error) {
	var done bool
	err := s.withConn(ctx, func(conn *sql.Conn) error {
		var current int
		err := conn.QueryRowContext(ctx, s.q(`
			SELECT done FROM tasks WHERE id = ? AND user_id = ?
		`), taskID, userID).Scan(&current)
		if err == sql.ErrNoRows {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to query task: %w", err)
		}

		next := 1
		if current != 0 {
			next = 0
		}

		res, err := conn.ExecContext(ctx, s.q(`
			UPDATE tasks SET done = ? WHERE id = ? AND user_id = ?
		`), next, taskID, userID)
		if err != nil {
			return fmt.Errorf("failed to update task: %w", err)
		}
		// deleted between the two statements
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return ErrNotFound
		}

		done = next == 1
		return nil
	})
	return done, err
}

// DeleteTask removes the user's task. Deleting a missing task is not an error.
func (s *Store) DeleteTask(ctx context.Context, userID, taskID int64) error {
	return s.withConn(ctx, func(conn *sql.Conn) error {
		_, err := conn.ExecContext(ctx, s.q(`
			DELETE FROM tasks WHERE id = ? AND user_id = ?
		`), taskID, userID)
		if err != nil {
			return fmt.Errorf("failed to delete task: %w", err)
		}
		return nil
	})
}
