// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/xiaoe7442-ops/todo/auth"
	"github.com/xiaoe7442-ops/todo/cliparse"
	"github.com/xiaoe7442-ops/todo/middleware"
	"github.com/xiaoe7442-ops/todo/models"
	"github.com/xiaoe7442-ops/todo/service"
	"github.com/xiaoe7442-ops/todo/store"
)

type TaskHandler struct {
	tasks *service.TaskService
}

func NewTaskHandler(db *sql.DB, cfg cliparse.Config) *TaskHandler {
	return &TaskHandler{tasks: service.NewTaskService(store.New(db, cfg.DatabaseType))}
}

// session returns the session stored by middleware.RequireSession.
// Without one the zero Session is returned and the service rejects it.
func session(r *http.Request) auth.Session {
	s, _ := auth.SessionFromContext(r.Context())
	return s
}

// taskID parses the {id} path value
func taskID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// ListTasks handles GET /tasks
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	s := session(r)

	tasks, err := h.tasks.List(r.Context(), s)
	if err != nil {
		writeError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.TaskListResponse{
		Tasks:    tasks,
		Username: s.Username,
	})
}

// CreateTask handles POST /tasks
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTaskRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	s := session(r)
	id, err := h.tasks.Add(r.Context(), s, req.Title)
	if err != nil {
		writeError(w, r, err)
		return
	}

	slog.Info("task created", "task_id", id, "user_id", s.UserID)

	middleware.JSONResponse(w, http.StatusOK, models.StatusResponse{Status: models.StatusOK})
}

// ToggleTask handles PUT /tasks/{id}/toggle
func (h *TaskHandler) ToggleTask(w http.ResponseWriter, r *http.Request) {
	id, ok := taskID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "task not found")
		return
	}

	done, err := h.tasks.Toggle(r.Context(), session(r), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := models.ToggleResponse{Status: models.StatusOK}
	if done {
		resp.NewStatus = 1
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}

// DeleteTask handles DELETE /tasks/{id}
// Succeeds whether or not the task existed
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := taskID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "task not found")
		return
	}

	s := session(r)
	if err := h.tasks.Delete(r.Context(), s, id); err != nil {
		writeError(w, r, err)
		return
	}

	slog.Debug("task deleted", "task_id", id, "user_id", s.UserID)

	middleware.JSONResponse(w, http.StatusOK, models.StatusResponse{Status: models.StatusOK})
}
