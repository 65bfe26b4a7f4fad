package server

import (
	"encoding/json"
	"net/http"

	"retrofolio/internal/api/dto"
	"retrofolio/internal/database"
	"retrofolio/internal/domain"
	"retrofolio/internal/guestbook"

	"github.com/charmbracelet/log"
)

func (s *Server) submitGuestbookEntry(w http.ResponseWriter, r *http.Request) {
	var submission dto.GuestbookSubmission
	if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
		writeError(w, "Invalid request", http.StatusBadRequest)
		return
	}

	result := s.pipeline.Submit(r.Context(), guestbook.Submission{
		Name:    submission.Name,
		Message: submission.Message,
		Origin:  guestbook.ResolveOrigin(r.Header),
	})

	response := dto.SubmitResult{
		Success: result.Success,
		Message: result.Message,
		Errors:  result.FieldErrors,
	}
	if result.Entry != nil {
		response.Entry = publicEntry(*result.Entry)
	}

	status := http.StatusCreated
	if !result.Success {
		status = http.StatusOK
	}
	writeJSON(w, status, response)
}

func (s *Server) getGuestbookEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := database.GetRecentGuestbookEntries(r.Context())
	if err != nil {
		log.Error("failed to load guestbook entries", "error", err)
		writeError(w, "Could not load guestbook entries.", http.StatusInternalServerError)
		return
	}

	out := make([]dto.GuestbookEntry, 0, len(entries))
	for _, entry := range entries {
		out = append(out, *publicEntry(entry))
	}
	writeJSON(w, http.StatusOK, out)
}

func publicEntry(entry domain.GuestbookEntry) *dto.GuestbookEntry {
	return &dto.GuestbookEntry{
		ID:        entry.ID,
		Name:      entry.Name,
		Message:   entry.Message,
		CreatedAt: entry.CreatedAt,
	}
}
