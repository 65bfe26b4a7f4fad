package dto

import "time"

type GuestbookSubmission struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// GuestbookEntry is the public shape of an entry; origin addresses never
// leave the admin surface.
type GuestbookEntry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type SubmitResult struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
	Entry   *GuestbookEntry   `json:"entry,omitempty"`
}
