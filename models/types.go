package models

// Response status value
const (
	StatusOK = "ok"
)

// Request types

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CreateTaskRequest struct {
	Title string `json:"title"`
}

// Response types

type StatusResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message,omitempty"`
	Username string `json:"username,omitempty"`
}

type TaskListResponse struct {
	Tasks    []Task `json:"tasks"`
	Username string `json:"username"`
}

// NewStatus is 1 when the task is done, 0 otherwise
type ToggleResponse struct {
	Status    string `json:"status"`
	NewStatus int    `json:"new_status"`
}

// Domain types

type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // Never expose in JSON
}

type Task struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Created string `json:"created"`
	Done    bool   `json:"done"`
	UserID  int64  `json:"user_id"`
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code,omitempty"`
}
