package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"retrofolio/internal/blog"
	"retrofolio/internal/config"
	"retrofolio/internal/geo"
	"retrofolio/internal/guestbook"
	"retrofolio/internal/mail"
	"retrofolio/internal/profile"
	"retrofolio/internal/stats"

	"github.com/charmbracelet/log"
)

const distDir = "./static/frontend"

// Server wires the HTTP surface to the injected components. Handlers hold
// no state of their own beyond these dependencies.
type Server struct {
	cfg      config.Config
	pipeline *guestbook.Pipeline
	mailer   *mail.Mailer
	blog     *blog.Loader
	profile  profile.Profile
	visitors *stats.Visitors
	geo      *geo.Resolver
}

func New(cfg config.Config, pipeline *guestbook.Pipeline, mailer *mail.Mailer, blogLoader *blog.Loader, prof profile.Profile, visitors *stats.Visitors, geoResolver *geo.Resolver) *Server {
	return &Server{
		cfg:      cfg,
		pipeline: pipeline,
		mailer:   mailer,
		blog:     blogLoader,
		profile:  prof,
		visitors: visitors,
		geo:      geoResolver,
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, msg string, status int) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Admin-Password")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Handler builds the full route table.
func (s *Server) Handler(serveStatic bool) http.Handler {
	router := http.NewServeMux()

	router.HandleFunc("POST /api/guestbook", s.submitGuestbookEntry)
	router.HandleFunc("GET /api/guestbook", s.getGuestbookEntries)

	router.HandleFunc("POST /api/contact", s.sendContactMessage)

	router.HandleFunc("GET /api/blog", s.getBlogPosts)
	router.HandleFunc("GET /api/blog/{slug}", s.getBlogPost)

	router.HandleFunc("GET /api/profile", s.getProfile)

	router.HandleFunc("GET /api/stats", s.getStats)
	router.HandleFunc("POST /api/stats/visit", s.recordVisit)

	router.HandleFunc("POST /api/admin/entries", s.getAdminEntries)
	router.HandleFunc("DELETE /api/admin/entries/{id}", s.deleteGuestbookEntry)
	router.HandleFunc("POST /api/admin/blacklist/list", s.getBlacklistedIPs)
	router.HandleFunc("POST /api/admin/blacklist", s.addBlacklistedIP)
	router.HandleFunc("DELETE /api/admin/blacklist", s.removeBlacklistedIP)
	router.HandleFunc("POST /api/admin/blog/reload", s.reloadBlog)

	if serveStatic {
		fs := http.FileServer(http.Dir(distDir))

		router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet && r.Method != http.MethodHead {
				http.NotFound(w, r)
				return
			}
			path := filepath.Join(distDir, filepath.Clean(r.URL.Path))
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				fs.ServeHTTP(w, r)
				return
			}
			http.ServeFile(w, r, filepath.Join(distDir, "index.html"))
		})

		log.Debugf("Frontend assets served from %s on the same port", distDir)
	}

	return enableCORS(router)
}

// OpenRoutes starts the API server and blocks until it terminates.
func (s *Server) OpenRoutes(port int, serveStatic bool) error {
	log.Debug("Routes opened")

	server := http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: s.Handler(serveStatic),
	}

	log.Infof("Starting retrofolio backend on port :%d", port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("api server failed: %w", err)
	}
	return nil
}
