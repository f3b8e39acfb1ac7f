// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/xiaoe7442-ops/todo/auth"
	"github.com/xiaoe7442-ops/todo/models"
	"github.com/xiaoe7442-ops/todo/store"
)

type TaskService struct {
	store *store.Store
	now   func() time.Time
}

func NewTaskService(s *store.Store) *TaskService {
	return &TaskService{store: s, now: time.Now}
}

func requireSession(s auth.Session) error {
	if !s.Authenticated() {
		return newError(ErrAuth, "not logged in")
	}
	return nil
}

// List returns the session user's tasks, newest first
func (t *TaskService) List(ctx context.Context, s auth.Session) ([]models.Task, error) {
	if err := requireSession(s); err != nil {
		return nil, err
	}

	tasks, err := t.store.ListTasks(ctx, s.UserID)
	if err != nil {
		return nil, fmt.Errorf("list tasks for user %d: %w", s.UserID, err)
	}
	return tasks, nil
}

// Add creates a pending task with a trimmed title and returns its id
func (t *TaskService) Add(ctx context.Context, s auth.Session, title string) (int64, error) {
	if err := requireSession(s); err != nil {
		return 0, err
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return 0, newError(ErrValidation, "title is required")
	}

	id, err := t.store.CreateTask(ctx, s.UserID, title, t.now().Format(time.RFC3339))
	if err != nil {
		return 0, fmt.Errorf("add task for user %d: %w", s.UserID, err)
	}
	return id, nil
}

// Toggle flips the task's done flag and returns the new value
func (t *TaskService) Toggle(ctx context.Context, s auth.Session, taskID int64) (bool, error) {
	if err := requireSession(s); err != nil {
		return false, err
	}

	done, err := t.store.ToggleTask(ctx, s.UserID, taskID)
	if errors.Is(err, store.ErrNotFound) {
		return false, newError(ErrNotFound, "task not found")
	}
	if err != nil {
		return false, fmt.Errorf("toggle task %d: %w", taskID, err)
	}
	return done, nil
}

// Delete removes the task if the session user owns it; missing tasks are not an error
func (t *TaskService) Delete(ctx context.Context, s auth.Session, taskID int64) error {
	if err := requireSession(s); err != nil {
		return err
	}

	if err := t.store.DeleteTask(ctx, s.UserID, taskID); err != nil {
		return fmt.Errorf("delete task %d: %w", taskID, err)
	}
	return nil
}
