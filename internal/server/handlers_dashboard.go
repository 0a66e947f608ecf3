package server

import (
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-agent/internal/types"
)

// Dashboard aggregates everything the frontend needs on first load.
type Dashboard struct {
	Profile types.Profile `json:"profile"`
	Rules   []types.Rule  `json:"rules"`
	Resumes []types.Draft `json:"resumes"`
}

// handleDashboard loads the profile, rules, and resume versions
// concurrently.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	var dashboard Dashboard

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		p, err := s.db.LoadProfile(ctx, userID)
		if err == nil {
			dashboard.Profile = p
		}
		return err
	})
	g.Go(func() error {
		rules, err := s.db.List(ctx, userID)
		if err == nil {
			dashboard.Rules = rules
		}
		return err
	})
	g.Go(func() error {
		drafts, err := s.db.ListDrafts(ctx, userID)
		if err == nil {
			dashboard.Resumes = drafts
		}
		return err
	})

	if err := g.Wait(); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to load dashboard")
		return
	}

	if dashboard.Rules == nil {
		dashboard.Rules = []types.Rule{}
	}
	if dashboard.Resumes == nil {
		dashboard.Resumes = []types.Draft{}
	}

	s.jsonResponse(w, http.StatusOK, dashboard)
}
