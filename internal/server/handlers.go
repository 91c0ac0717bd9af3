package server

import (
	"encoding/json"
	"net/http"

	"github.com/LAWSA07/ProFel/internal/aggregate"
	"github.com/LAWSA07/ProFel/internal/jobs"
	"github.com/LAWSA07/ProFel/internal/schemas"
	"github.com/LAWSA07/ProFel/internal/sources"
	"github.com/LAWSA07/ProFel/internal/types"
)

// MatchRequest is the body for POST /api/match.
type MatchRequest struct {
	Profile types.RawRecord `json:"profile" validate:"required"`
	Job     types.RawRecord `json:"job" validate:"required"`
}

// BatchMatchRequest is the body for POST /api/match/batch.
type BatchMatchRequest struct {
	Profiles []types.RawRecord `json:"profiles" validate:"required,min=1"`
	Jobs     []types.RawRecord `json:"jobs" validate:"required,min=1"`
}

// CombinedMatchRequest is the body for POST /api/match/combined.
type CombinedMatchRequest struct {
	Profiles []types.PlatformProfile `json:"profiles" validate:"required,min=1"`
	Job      types.RawRecord         `json:"job" validate:"required"`
}

// CombineProfilesRequest is the body for POST /api/profiles/combine.
type CombineProfilesRequest struct {
	Profiles []types.PlatformProfile `json:"profiles" validate:"required,min=1"`
}

// FetchProfilesRequest is the body for POST /api/profiles/fetch.
type FetchProfilesRequest struct {
	Requests []sources.Request `json:"requests" validate:"required,min=1,dive"`
}

// handleMatch runs the weighted matcher for one profile against one job.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if !s.decode(w, r, &req) {
		return
	}

	if err := schemas.ValidateProfileRecord(req.Profile); err != nil {
		s.errorResponse(w, err)
		return
	}
	if err := schemas.ValidateJobRecord(req.Job); err != nil {
		s.errorResponse(w, err)
		return
	}

	result := s.scorer.Score(r.Context(), req.Profile, req.Job)
	s.jsonResponse(w, http.StatusOK, result)
}

// handleBatchMatch scores every profile against every job.
func (s *Server) handleBatchMatch(w http.ResponseWriter, r *http.Request) {
	var req BatchMatchRequest
	if !s.decode(w, r, &req) {
		return
	}

	results := s.scorer.BatchMatch(r.Context(), req.Profiles, req.Jobs)
	s.jsonResponse(w, http.StatusOK, results)
}

// handleCombinedMatch merges multi-platform profiles and produces the
// coarse blended score against the job.
func (s *Server) handleCombinedMatch(w http.ResponseWriter, r *http.Request) {
	var req CombinedMatchRequest
	if !s.decode(w, r, &req) {
		return
	}

	score := s.scorer.CombinedProfiles(r.Context(), req.Profiles, req.Job)
	s.jsonResponse(w, http.StatusOK, score)
}

// handleCombineProfiles merges platform profiles without scoring them.
func (s *Server) handleCombineProfiles(w http.ResponseWriter, r *http.Request) {
	var req CombineProfilesRequest
	if !s.decode(w, r, &req) {
		return
	}

	s.jsonResponse(w, http.StatusOK, aggregate.Combine(req.Profiles))
}

// handleFetchProfiles fetches the requested platform profiles through the
// source registry.
func (s *Server) handleFetchProfiles(w http.ResponseWriter, r *http.Request) {
	var req FetchProfilesRequest
	if !s.decode(w, r, &req) {
		return
	}

	profiles, err := s.registry.FetchAll(r.Context(), req.Requests, s.log)
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, profiles)
}

// handleBuildJob builds a full job posting from a sparse spec.
func (s *Server) handleBuildJob(w http.ResponseWriter, r *http.Request) {
	var spec types.JobSpec
	if !s.decode(w, r, &spec) {
		return
	}
	if spec.Title == "" {
		s.errorResponse(w, &ErrValidation{Field: "title", Message: "title is required"})
		return
	}

	job := jobs.Build(spec)
	if id, err := s.scorer.SaveJob(r.Context(), job); err != nil {
		s.log.Warn().Err(err).Msg("failed to persist built job")
	} else if id != 0 {
		s.log.Debug().Int64("job_id", id).Str("title", job.Title).Msg("job stored")
	}

	s.jsonResponse(w, http.StatusCreated, job)
}

// decode parses and validates a JSON request body, writing the error
// response itself when the body is bad.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, out any) bool {
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		s.errorResponse(w, &ErrBadRequest{Message: "invalid request body: " + err.Error()})
		return false
	}
	if err := s.validate.Struct(out); err != nil {
		s.errorResponse(w, &ErrValidation{Field: "body", Message: err.Error()})
		return false
	}
	return true
}
