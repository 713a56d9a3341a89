// Package ipc provides the stateless HTTP API over the questionnaire core.
// Every request carries the full answer set; the server holds no session
// state between calls.
package ipc

import (
	"encoding/json"
	"net/http"

	"github.com/anthropics/teamforge/internal/compile"
	"github.com/anthropics/teamforge/internal/domain"
	"github.com/anthropics/teamforge/internal/recommend"
)

// Handler holds all dependencies for the HTTP handlers.
type Handler struct {
	Catalog     []domain.Question
	Engine      *recommend.Engine
	Compiler    *compile.Compiler
	DefaultLang recommend.Language
}

// RecommendRequest is the body for POST /api/v1/recommend.
type RecommendRequest struct {
	QuestionID int              `json:"question_id"`
	Answers    domain.AnswerSet `json:"answers"`
	Lang       string           `json:"lang"`
}

// RecommendResponse is the response for POST /api/v1/recommend. The
// recommendation is null when no rule applies to the question.
type RecommendResponse struct {
	Recommendation *domain.Recommendation `json:"recommendation"`
}

// CompileRequest is the body for POST /api/v1/compile.
type CompileRequest struct {
	Answers domain.AnswerSet `json:"answers"`
}

// CompileResponse is the response for POST /api/v1/compile.
type CompileResponse struct {
	Files domain.FileSet `json:"files"`
}

// APIError is a structured error response.
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Health handles GET /api/v1/health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ListQuestions handles GET /api/v1/questions.
func (h *Handler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Catalog)
}

// Recommend handles POST /api/v1/recommend.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, APIError{Code: 400, Message: "invalid request body"})
		return
	}

	lang := recommend.Language(req.Lang)
	if req.Lang == "" {
		lang = h.DefaultLang
	}
	if req.Answers == nil {
		req.Answers = domain.AnswerSet{}
	}

	rec, err := h.Engine.Recommend(req.QuestionID, req.Answers, lang)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, RecommendResponse{Recommendation: rec})
}

// Compile handles POST /api/v1/compile.
func (h *Handler) Compile(w http.ResponseWriter, r *http.Request) {
	var req CompileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, APIError{Code: 400, Message: "invalid request body"})
		return
	}
	if req.Answers == nil {
		req.Answers = domain.AnswerSet{}
	}

	files := h.Compiler.Compile(req.Answers)
	writeJSON(w, http.StatusOK, CompileResponse{Files: files})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	if engErr, ok := err.(*domain.EngineError); ok {
		status := http.StatusInternalServerError
		switch engErr.Code {
		case domain.ErrInvalidQuestionID.Code, domain.ErrUnknownLanguage.Code, domain.ErrInvalidStep.Code:
			status = http.StatusBadRequest
		}
		writeJSON(w, status, APIError{Code: engErr.Code, Message: engErr.Message})
		return
	}
	writeJSON(w, http.StatusInternalServerError, APIError{Code: -1, Message: err.Error()})
}
