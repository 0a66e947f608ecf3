package server

import (
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/resume-agent/internal/profile"
	"github.com/jonathan/resume-agent/internal/types"
)

// maxUploadBytes bounds resume uploads.
const maxUploadBytes = 10 << 20

// handleGetProfile returns the user's profile.
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	p, err := s.db.LoadProfile(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to load profile")
		return
	}
	s.jsonResponse(w, http.StatusOK, p)
}

// handleSaveProfile merges a submitted profile into the stored one. Non-empty
// scalars win, skills union, list sections append.
func (s *Server) handleSaveProfile(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	var submitted types.Profile
	if err := json.NewDecoder(r.Body).Decode(&submitted); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid profile payload")
		return
	}

	existing, err := s.db.LoadProfile(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to load profile")
		return
	}

	merged := profile.Merge(existing, submitted)
	if err := s.db.SaveProfile(r.Context(), userID, merged); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to save profile")
		return
	}

	s.jsonResponse(w, http.StatusOK, merged)
}

// handleUploadResume extracts a structured profile from an uploaded resume
// file and merges it into the stored profile.
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid multipart upload")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "missing 'file' form field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read uploaded file")
		return
	}

	fileType := strings.TrimPrefix(strings.ToLower(filepath.Ext(header.Filename)), ".")

	existing, err := s.db.LoadProfile(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to load profile")
		return
	}

	merged, err := s.extractor.IngestFile(r.Context(), existing, data, fileType)
	if err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if err := s.db.SaveProfile(r.Context(), userID, merged); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to save profile")
		return
	}

	s.jsonResponse(w, http.StatusOK, merged)
}
