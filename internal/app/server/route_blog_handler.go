package server

import (
	"encoding/json"
	"net/http"

	"retrofolio/internal/api/dto"
	"retrofolio/internal/blog"

	"github.com/charmbracelet/log"
)

const relatedPostCount = 2

type blogPostDetail struct {
	blog.Post
	Related []blog.Post `json:"related"`
}

func (s *Server) getBlogPosts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.blog.Posts())
}

func (s *Server) getBlogPost(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	post, ok := s.blog.Get(slug)
	if !ok {
		writeError(w, "Post not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, blogPostDetail{
		Post:    post,
		Related: s.blog.Related(post, relatedPostCount),
	})
}

// reloadBlog rescans the content directory. Concurrent requests collapse
// into a single scan.
func (s *Server) reloadBlog(w http.ResponseWriter, r *http.Request) {
	var req dto.AdminRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if !s.requireAdmin(w, adminSecret(r, req.Password)) {
		return
	}

	if err := s.blog.Reload(r.Context()); err != nil {
		log.Error("failed to reload blog content", "error", err)
		writeJSON(w, http.StatusInternalServerError, dto.ActionResult{Message: "Could not reload blog content."})
		return
	}
	writeJSON(w, http.StatusOK, dto.ActionResult{Success: true, Message: "Blog content reloaded."})
}
