// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CredentialsRequest: username, password (register and login)
  - CreateTaskRequest: title

# Response Types

Types for JSON responses:

  - StatusResponse: status, message, username
  - TaskListResponse: tasks, username
  - ToggleResponse: status, new_status (0 or 1)
  - ErrorResponse: error, code

# Domain Types

  - User: account row; PasswordHash is never serialized
  - Task: to-do item owned by a user

# Constants

	StatusOK = "ok"
*/
package models
