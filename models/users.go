package models

import "time"

// User represents one managed record in the users table.
// Age is a pointer so an absent age is distinguishable from zero.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Age       *int      `json:"age,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserPayload is the whole-record input for create and update.
// Field rules run through the ordered validators in the validation
// package, not through binding tags, so the first failing field wins.
type UserPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   *int   `json:"age"`
}

type BulkCreateRequest struct {
	Users []UserPayload `json:"users"`
}

// BulkCreateResult reports the outcome of a best-effort batch:
// per-entry failures do not abort the remaining entries.
type BulkCreateResult struct {
	Created int               `json:"created"`
	Failed  int               `json:"failed"`
	Users   []User            `json:"users"`
	Errors  []BulkCreateError `json:"errors,omitempty"`
}

type BulkCreateError struct {
	Index int    `json:"index"`
	Error string `json:"error"`
	Code  string `json:"code"`
	Field string `json:"field,omitempty"`
}

// ListUsersQuery carries the normalized list parameters. Page and
// PerPage are already clamped by the handler; SortBy and SortOrder are
// validated by the service against the sortable column whitelist.
type ListUsersQuery struct {
	Page      int
	PerPage   int
	SortBy    string
	SortOrder string
}

func (q ListUsersQuery) Offset() int {
	return (q.Page - 1) * q.PerPage
}

// HealthStatus is the health check payload consumed by the deploy
// pipeline's post-deploy verification step.
type HealthStatus struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Database  string    `json:"database"`
}
