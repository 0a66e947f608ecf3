package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-agent/internal/types"
)

// handleFeedback interprets a batch of feedback items and applies the
// resulting rule and profile changes.
func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	var req types.ResumeFeedback
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid feedback payload")
		return
	}
	if len(req.FeedbackItems) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "feedback_items must not be empty")
		return
	}

	summary, err := s.interpreter.Process(r.Context(), userID, req.FeedbackItems)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to process feedback")
		return
	}

	s.jsonResponse(w, http.StatusOK, summary)
}

// SuggestionsRequest is the suggestions payload; the job description is
// optional.
type SuggestionsRequest struct {
	JobDescription string `json:"job_description"`
}

// handleSuggestions returns proactive improvement suggestions.
func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	var req SuggestionsRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	profile, err := s.db.LoadProfile(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to load profile")
		return
	}
	rules, err := s.db.List(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to load rules")
		return
	}

	response := s.suggester.Suggest(r.Context(), profile, rules, req.JobDescription)
	s.jsonResponse(w, http.StatusOK, response)
}
