package http

import (
	"net/http"
	"strconv"

	"github.com/Muzammil-Ahm3d/jobready"
	"github.com/go-chi/chi/v5"
)

// CategoryResponse is a category with its questions.
type CategoryResponse struct {
	*jobready.Category
	Questions []*jobready.Question `json:"questions"`
}

// handleCategoryList handles "GET /api/categories".
func (s *Server) handleCategoryList(w http.ResponseWriter, r *http.Request) {
	categories, err := s.Categories.FindCategories(r.Context())
	if err != nil {
		s.Error(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

// handleCategoryView handles "GET /api/categories/{slug}".
func (s *Server) handleCategoryView(w http.ResponseWriter, r *http.Request) {
	c, err := s.Categories.FindCategoryBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		s.Error(w, r, err)
		return
	}

	questions, err := s.Questions.FindQuestions(r.Context(), jobready.QuestionFilter{CategoryID: &c.ID})
	if err != nil {
		s.Error(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, &CategoryResponse{Category: c, Questions: questions})
}

// handleCategoryQuestions handles "GET /api/categories/{slug}/questions".
// Supports offset and limit query parameters.
func (s *Server) handleCategoryQuestions(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if _, err := s.Categories.FindCategoryBySlug(r.Context(), slug); err != nil {
		s.Error(w, r, err)
		return
	}

	filter := jobready.QuestionFilter{CategorySlug: &slug}
	if err := parsePage(r, &filter); err != nil {
		s.Error(w, r, err)
		return
	}

	questions, err := s.Questions.FindQuestions(r.Context(), filter)
	if err != nil {
		s.Error(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, questions)
}

// handleQuestionView handles "GET /api/categories/{slug}/questions/{questionSlug}".
func (s *Server) handleQuestionView(w http.ResponseWriter, r *http.Request) {
	slug, questionSlug := chi.URLParam(r, "slug"), chi.URLParam(r, "questionSlug")
	questions, err := s.Questions.FindQuestions(r.Context(), jobready.QuestionFilter{
		CategorySlug: &slug,
		Slug:         &questionSlug,
		Limit:        1,
	})
	if err != nil {
		s.Error(w, r, err)
		return
	}
	if len(questions) == 0 {
		s.Error(w, r, jobready.Errorf(jobready.ENOTFOUND, "question not found"))
		return
	}
	writeJSON(w, http.StatusOK, questions[0])
}

// handleQuestionSearch handles "GET /api/questions?q=".
func (s *Server) handleQuestionSearch(w http.ResponseWriter, r *http.Request) {
	var filter jobready.QuestionFilter
	if q := r.URL.Query().Get("q"); q != "" {
		filter.Search = &q
	}
	if err := parsePage(r, &filter); err != nil {
		s.Error(w, r, err)
		return
	}

	questions, err := s.Questions.FindQuestions(r.Context(), filter)
	if err != nil {
		s.Error(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, questions)
}

func parsePage(r *http.Request, filter *jobready.QuestionFilter) error {
	for name, dst := range map[string]*int{"offset": &filter.Offset, "limit": &filter.Limit} {
		v := r.URL.Query().Get(name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return jobready.Errorf(jobready.EINVALID, "invalid %s", name)
		}
		*dst = n
	}
	return nil
}

func parseID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0, jobready.Errorf(jobready.EINVALID, "invalid id")
	}
	return id, nil
}
