package server

import (
	"net/http"

	"retrofolio/internal/api/dto"
)

func (s *Server) getProfile(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.profile)
}

func (s *Server) getStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.StatsResult{
		Visitors:      s.visitors.Count(r.Context()),
		UptimeSeconds: int64(s.visitors.Uptime().Seconds()),
	})
}

func (s *Server) recordVisit(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.StatsResult{
		Visitors:      s.visitors.RecordVisit(r.Context()),
		UptimeSeconds: int64(s.visitors.Uptime().Seconds()),
	})
}
