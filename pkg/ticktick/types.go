package ticktick

import "time"

// Task is the TickTick open API task object.
type Task struct {
	ID      string `json:"id,omitempty"`
	Title   string `json:"title"`
	Content string `json:"content,omitempty"`
	DueDate string `json:"dueDate,omitempty"` // ISO-8601 string
	Status  int    `json:"status,omitempty"`  // 0 = open, 2 = completed
}

// CreateTaskRequest is the body for POST /task.
type CreateTaskRequest struct {
	Title   string     `json:"title"`
	Content string     `json:"content,omitempty"`
	DueDate *time.Time `json:"-"`
}

// UpdateTaskRequest carries optional fields for POST /task/{id}.
// Nil pointers are omitted from the payload.
type UpdateTaskRequest struct {
	Title     *string    `json:"-"`
	Content   *string    `json:"-"`
	DueDate   *time.Time `json:"-"`
	Completed *bool      `json:"-"`
}

// tokenResponse is the OAuth token endpoint response.
type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
}
