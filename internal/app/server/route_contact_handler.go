package server

import (
	"encoding/json"
	"net/http"

	"retrofolio/internal/api/dto"
	"retrofolio/internal/mail"

	"github.com/charmbracelet/log"
)

func (s *Server) sendContactMessage(w http.ResponseWriter, r *http.Request) {
	var req dto.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request", http.StatusBadRequest)
		return
	}

	if fieldErrors := mail.ValidateContact(req.Name, req.Email, req.Message); len(fieldErrors) > 0 {
		writeJSON(w, http.StatusOK, dto.ContactResult{
			Message: "Validation failed.",
			Errors:  fieldErrors,
		})
		return
	}

	if !s.mailer.Configured() {
		log.Error("contact form used while mail service is unconfigured")
		writeJSON(w, http.StatusOK, dto.ContactResult{
			Message: msgServerConfigError,
			Error:   "Email service is not configured.",
		})
		return
	}

	if err := s.mailer.Send(r.Context(), req.Name, req.Email, req.Message); err != nil {
		log.Error("failed to send contact message", "error", err)
		// The provider's error string is surfaced verbatim.
		writeJSON(w, http.StatusOK, dto.ContactResult{
			Message: "Failed to send message.",
			Error:   err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, dto.ContactResult{
		Success: true,
		Message: "Message sent successfully!",
	})
}
