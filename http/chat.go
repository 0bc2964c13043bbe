package http

import (
	"net/http"

	"github.com/Muzammil-Ahm3d/jobready"
)

// handleChat handles "POST /api/chat".
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req jobready.ChatRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.Error(w, r, err)
		return
	}

	ans, err := s.Resolver.Resolve(r.Context(), &req)
	if err != nil {
		s.Error(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ans)
}
