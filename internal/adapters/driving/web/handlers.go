package web

import (
	"errors"
	"net/http"

	"github.com/custodia-labs/wordbook/internal/core/domain"
	"github.com/custodia-labs/wordbook/internal/logger"
)

// handleIndex renders the search form.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, "index.html", nil)
}

// handleWords renders the full word list in creation order.
func (s *Server) handleWords(w http.ResponseWriter, r *http.Request) {
	words, err := s.ports.Words.List(r.Context())
	if err != nil {
		logger.Warn("Listing words failed: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	s.render(w, "words.html", map[string]any{"Words": words})
}

// handleWordShow renders a single word page. An unknown ID is the one
// NotFound the system surfaces, and it surfaces here as a 404 page.
func (s *Server) handleWordShow(w http.ResponseWriter, r *http.Request) {
	word, err := s.ports.Words.Get(r.Context(), r.PathValue("id"))
	if errors.Is(err, domain.ErrNotFound) {
		s.renderNotFound(w)
		return
	}
	if err != nil {
		logger.Warn("Fetching word failed: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	s.render(w, "word.html", map[string]any{"Word": word})
}

// handleSearch resolves the keyword and applies the singleton policy:
// an exact match or a lone fuzzy hit redirects to the word page,
// everything else renders the results list (which doubles as the
// "no results" page when empty).
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("keyword")

	res, err := s.ports.Search.Resolve(r.Context(), query)
	if err != nil {
		logger.Warn("Resolution failed: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if word, ok := res.Singleton(); ok {
		http.Redirect(w, r, "/words/"+word.ID, http.StatusFound)
		return
	}

	s.render(w, "results.html", map[string]any{
		"Query":   query,
		"Matches": res.Matches,
	})
}

// render executes a page template, falling back to a 500 when the
// template fails mid-write.
func (s *Server) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		logger.Warn("Rendering %s failed: %v", name, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// renderNotFound renders the 404 page. The status line must go out
// before the template writes the body.
func (s *Server) renderNotFound(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	if err := templates.ExecuteTemplate(w, "notfound.html", nil); err != nil {
		logger.Warn("Rendering notfound.html failed: %v", err)
	}
}
