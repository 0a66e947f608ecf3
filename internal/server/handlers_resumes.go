package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-agent/internal/db"
	"github.com/jonathan/resume-agent/internal/refine"
	"github.com/jonathan/resume-agent/internal/types"
)

// GenerateResumeRequest is the generation payload.
type GenerateResumeRequest struct {
	VersionName     string `json:"version_name"`
	FreeInstruction string `json:"free_instruction"`
	JobDescription  string `json:"job_description"`
}

// handleGenerateResume runs the full generation loop and persists one draft.
func (s *Server) handleGenerateResume(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	var req GenerateResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	draft, err := s.generator.Generate(r.Context(), userID, refine.GenerateParams{
		VersionName:     req.VersionName,
		FreeInstruction: req.FreeInstruction,
		JobDescription:  req.JobDescription,
		MaxIterations:   s.maxIter,
	})
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, draft)
}

// handleListRules returns the user's learned rules.
func (s *Server) handleListRules(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	rules, err := s.db.List(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to list rules")
		return
	}
	if rules == nil {
		rules = []types.Rule{}
	}
	s.jsonResponse(w, http.StatusOK, rules)
}

// handleListResumes returns the user's generated resume versions, newest
// first.
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	drafts, err := s.db.ListDrafts(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to list resumes")
		return
	}
	if drafts == nil {
		drafts = []types.Draft{}
	}
	s.jsonResponse(w, http.StatusOK, drafts)
}

// handleGetResume returns one resume version by ID.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid resume ID")
		return
	}

	draft, err := s.db.GetDraft(r.Context(), userID, id)
	if err != nil {
		if err == db.ErrDraftNotFound {
			s.errorResponse(w, http.StatusNotFound, "resume not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "failed to get resume")
		return
	}

	s.jsonResponse(w, http.StatusOK, draft)
}
