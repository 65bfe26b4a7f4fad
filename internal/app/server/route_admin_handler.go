package server

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"retrofolio/internal/api/dto"
	"retrofolio/internal/database"

	"github.com/charmbracelet/log"
)

const (
	msgServerConfigError = "Server configuration error."
	msgInvalidPassword   = "Invalid password."
)

// requireAdmin gates an admin operation on the shared secret. An
// unconfigured secret is a server configuration error, distinct from an
// authentication failure; neither response names the missing variable.
func (s *Server) requireAdmin(w http.ResponseWriter, supplied string) bool {
	if s.cfg.AdminPassword == "" {
		writeJSON(w, http.StatusInternalServerError, dto.ActionResult{Message: msgServerConfigError})
		return false
	}
	if subtle.ConstantTimeCompare([]byte(supplied), []byte(s.cfg.AdminPassword)) != 1 {
		writeJSON(w, http.StatusUnauthorized, dto.ActionResult{Message: msgInvalidPassword})
		return false
	}
	return true
}

// adminSecret takes the secret from the X-Admin-Password header, falling
// back to the password field decoded from the body.
func adminSecret(r *http.Request, bodyPassword string) string {
	if header := r.Header.Get("X-Admin-Password"); header != "" {
		return header
	}
	return bodyPassword
}

func (s *Server) getAdminEntries(w http.ResponseWriter, r *http.Request) {
	var req dto.AdminRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if !s.requireAdmin(w, adminSecret(r, req.Password)) {
		return
	}

	entries, err := database.GetAllGuestbookEntries(r.Context())
	if err != nil {
		log.Error("failed to load admin entries", "error", err)
		writeJSON(w, http.StatusInternalServerError, dto.AdminEntriesResult{Message: "Could not load entries."})
		return
	}

	out := make([]dto.AdminEntry, 0, len(entries))
	for _, entry := range entries {
		out = append(out, dto.AdminEntry{
			ID:        entry.ID,
			Name:      entry.Name,
			Message:   entry.Message,
			IP:        entry.IP,
			Country:   s.geo.CountryCode(entry.IP),
			CreatedAt: entry.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, dto.AdminEntriesResult{Success: true, Entries: out})
}

func (s *Server) deleteGuestbookEntry(w http.ResponseWriter, r *http.Request) {
	var req dto.AdminRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if !s.requireAdmin(w, adminSecret(r, req.Password)) {
		return
	}

	id := r.PathValue("id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, dto.ActionResult{Message: "Missing entry ID."})
		return
	}

	// Idempotent: deleting an ID that no longer exists still succeeds.
	if err := database.DeleteGuestbookEntry(r.Context(), id); err != nil {
		log.Error("failed to delete guestbook entry", "id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, dto.ActionResult{Message: "Could not delete entry."})
		return
	}
	writeJSON(w, http.StatusOK, dto.ActionResult{Success: true, Message: "Entry deleted."})
}

func (s *Server) getBlacklistedIPs(w http.ResponseWriter, r *http.Request) {
	var req dto.AdminRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if !s.requireAdmin(w, adminSecret(r, req.Password)) {
		return
	}

	entries, err := database.ListBlacklistedIPs(r.Context())
	if err != nil {
		log.Error("failed to load blacklist", "error", err)
		writeJSON(w, http.StatusInternalServerError, dto.BlacklistResult{Message: "Could not load blacklist."})
		return
	}

	out := make([]dto.BlacklistEntry, 0, len(entries))
	for _, entry := range entries {
		out = append(out, dto.BlacklistEntry{IP: entry.IP, CreatedAt: entry.CreatedAt})
	}
	writeJSON(w, http.StatusOK, dto.BlacklistResult{Success: true, Entries: out})
}

func (s *Server) addBlacklistedIP(w http.ResponseWriter, r *http.Request) {
	var req dto.BlacklistRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if !s.requireAdmin(w, adminSecret(r, req.Password)) {
		return
	}

	if err := database.AddBlacklistedIP(r.Context(), req.IP); err != nil {
		log.Error("failed to blacklist IP", "error", err)
		writeJSON(w, http.StatusBadRequest, dto.ActionResult{Message: "Could not blacklist IP."})
		return
	}
	writeJSON(w, http.StatusOK, dto.ActionResult{Success: true, Message: "IP blacklisted."})
}

func (s *Server) removeBlacklistedIP(w http.ResponseWriter, r *http.Request) {
	var req dto.BlacklistRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if !s.requireAdmin(w, adminSecret(r, req.Password)) {
		return
	}

	if err := database.RemoveBlacklistedIP(r.Context(), req.IP); err != nil {
		log.Error("failed to remove blacklisted IP", "error", err)
		writeJSON(w, http.StatusInternalServerError, dto.ActionResult{Message: "Could not remove IP."})
		return
	}
	writeJSON(w, http.StatusOK, dto.ActionResult{Success: true, Message: "IP removed from blacklist."})
}
