package http

import (
	"net/http"

	"github.com/Muzammil-Ahm3d/jobready"
)

// handleCategoryCreate handles "POST /api/admin/categories".
func (s *Server) handleCategoryCreate(w http.ResponseWriter, r *http.Request) {
	var c jobready.Category
	if err := decodeJSON(w, r, &c); err != nil {
		s.Error(w, r, err)
		return
	}
	if err := s.Categories.CreateCategory(r.Context(), &c); err != nil {
		s.Error(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, &c)
}

// handleCategoryUpdate handles "PATCH /api/admin/categories/{id}".
func (s *Server) handleCategoryUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		s.Error(w, r, err)
		return
	}
	var upd jobready.CategoryUpdate
	if err := decodeJSON(w, r, &upd); err != nil {
		s.Error(w, r, err)
		return
	}

	c, err := s.Categories.UpdateCategory(r.Context(), id, upd)
	if err != nil {
		s.Error(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// handleCategoryDelete handles "DELETE /api/admin/categories/{id}".
func (s *Server) handleCategoryDelete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		s.Error(w, r, err)
		return
	}
	if err := s.Categories.DeleteCategory(r.Context(), id); err != nil {
		s.Error(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleQuestionCreate handles "POST /api/admin/questions".
func (s *Server) handleQuestionCreate(w http.ResponseWriter, r *http.Request) {
	var q jobready.Question
	if err := decodeJSON(w, r, &q); err != nil {
		s.Error(w, r, err)
		return
	}
	if err := s.Questions.CreateQuestion(r.Context(), &q); err != nil {
		s.Error(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, &q)
}

// handleQuestionUpdate handles "PATCH /api/admin/questions/{id}".
func (s *Server) handleQuestionUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		s.Error(w, r, err)
		return
	}
	var upd jobready.QuestionUpdate
	if err := decodeJSON(w, r, &upd); err != nil {
		s.Error(w, r, err)
		return
	}

	q, err := s.Questions.UpdateQuestion(r.Context(), id, upd)
	if err != nil {
		s.Error(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

// handleQuestionDelete handles "DELETE /api/admin/questions/{id}".
func (s *Server) handleQuestionDelete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		s.Error(w, r, err)
		return
	}
	if err := s.Questions.DeleteQuestion(r.Context(), id); err != nil {
		s.Error(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleReformat handles "POST /api/admin/reformat".
func (s *Server) handleReformat(w http.ResponseWriter, r *http.Request) {
	result, err := s.Reformatter.Reformat(r.Context())
	if err != nil {
		s.Error(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
