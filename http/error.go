package http

import (
	"encoding/json"
	"net/http"

	"github.com/Muzammil-Ahm3d/jobready"
)

// codes maps application error codes to HTTP status codes.
var codes = map[string]int{
	jobready.ECONFLICT:    http.StatusConflict,
	jobready.EINVALID:     http.StatusBadRequest,
	jobready.ENOTFOUND:    http.StatusNotFound,
	jobready.EUNAVAILABLE: http.StatusServiceUnavailable,
	jobready.EINTERNAL:    http.StatusInternalServerError,
}

// ErrorStatusCode returns the HTTP status code for an application error code.
func ErrorStatusCode(code string) int {
	if v, ok := codes[code]; ok {
		return v
	}
	return http.StatusInternalServerError
}

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error writes err as a JSON error reply. Internal errors are logged and
// reported without detail.
func (s *Server) Error(w http.ResponseWriter, r *http.Request, err error) {
	code, message := jobready.ErrorCode(err), jobready.ErrorMessage(err)
	if code == jobready.EINTERNAL {
		s.logger.Error("http error",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", RequestIDFromContext(r.Context()),
			"err", err,
		)
		message = "internal error"
	}
	writeJSON(w, ErrorStatusCode(code), &ErrorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeJSON reads a JSON body into v. Returns EINVALID on malformed input.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		return jobready.Errorf(jobready.EINVALID, "invalid JSON body: %v", err)
	}
	return nil
}
