package dto

import "time"

// AdminRequest carries the shared secret for password-gated operations.
// The secret may also arrive in the X-Admin-Password header.
type AdminRequest struct {
	Password string `json:"password"`
}

type AdminEntry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Message   string    `json:"message"`
	IP        string    `json:"ip"`
	Country   string    `json:"country"`
	CreatedAt time.Time `json:"created_at"`
}

// AdminEntriesResult is the one result variant shared by the admin read
// operations: either ok with data, or not ok with a reason.
type AdminEntriesResult struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Entries []AdminEntry `json:"entries,omitempty"`
}

type BlacklistRequest struct {
	Password string `json:"password"`
	IP       string `json:"ip"`
}

type BlacklistEntry struct {
	IP        string    `json:"ip"`
	CreatedAt time.Time `json:"created_at"`
}

type BlacklistResult struct {
	Success bool             `json:"success"`
	Message string           `json:"message,omitempty"`
	Entries []BlacklistEntry `json:"entries,omitempty"`
}

type ActionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
