package httpapi

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/akarpov/mentora/internal/llm"
)

// Error envelope codes. The auth middleware emits "unauthorized" with the
// same envelope shape, so clients see one error format everywhere.
const (
	codeUnauthorized = "unauthorized"
	codeNotFound     = "not_found"
	codeValidation   = "validation"
	codeLLMFailure   = "llm_failure"
	codeInternal     = "internal"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[http] encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorEnvelope{Error: errorBody{Code: code, Message: message}})
}

func notFound(w http.ResponseWriter, format string, args ...any) {
	writeError(w, http.StatusNotFound, codeNotFound, fmt.Sprintf(format, args...))
}

func unprocessable(w http.ResponseWriter, format string, args ...any) {
	writeError(w, http.StatusUnprocessableEntity, codeValidation, fmt.Sprintf(format, args...))
}

// llmError writes the 502 envelope for a failed provider call. The error
// kind is appended so clients can tell a rate limit from an outage.
func llmError(w http.ResponseWriter, action string, err error) {
	msg := action
	if kind := llm.ErrorKind(err); kind != "" {
		msg = fmt.Sprintf("%s (%s)", action, kind)
	}
	writeError(w, http.StatusBadGateway, codeLLMFailure, msg)
}

func (s *Server) internalError(w http.ResponseWriter, err error) {
	log.Printf("[http] internal error: %v", err)
	writeError(w, http.StatusInternalServerError, codeInternal, "internal error")
}

// decodeBody decodes a JSON request body into v, writing the validation
// envelope on malformed input.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		unprocessable(w, "invalid request body: %v", err)
		return false
	}
	return true
}

// queryInt reads an integer query parameter, returning def when absent.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	return n, nil
}
