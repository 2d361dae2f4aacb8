package store

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/nadji40/dolab/internal/domain"
	"github.com/nadji40/dolab/internal/fixtures"
	"github.com/nadji40/dolab/internal/gateway"
	"github.com/nadji40/dolab/internal/repository"
)

// Team returns the workspace team members
func (s *Store) Team(ctx context.Context) ([]domain.TeamMember, error) {
	if err := s.pause(ctx, s.cfg.ReadDelay); err != nil {
		return nil, err
	}

	var team []domain.TeamMember
	if s.loadJSON(repository.KeyTeamCache, &team) {
		return team, nil
	}

	team = fixtures.DefaultTeam()
	s.saveJSON(repository.KeyTeamCache, team)
	return team, nil
}

// Jobs returns the published job postings
func (s *Store) Jobs(ctx context.Context) ([]domain.JobPosting, error) {
	if err := s.pause(ctx, s.cfg.ReadDelay); err != nil {
		return nil, err
	}

	var jobs []domain.JobPosting
	if s.loadJSON(repository.KeyJobsCache, &jobs) {
		return jobs, nil
	}

	jobs = fixtures.DefaultJobs()
	s.saveJSON(repository.KeyJobsCache, jobs)
	return jobs, nil
}

// JobApplicationRequest describes one job application
type JobApplicationRequest struct {
	JobID       string
	Name        string
	Email       string
	Phone       string
	CoverLetter string
}

// ApplyForJob submits an application for a published job posting. The
// posting must exist; delivery goes through the application gateway
// and a rejected submission surfaces as ErrApplicationFailed without
// retry. The receipt is returned to the caller, not stored.
func (s *Store) ApplyForJob(ctx context.Context, req *JobApplicationRequest) (*domain.JobApplication, error) {
	if err := s.pause(ctx, s.cfg.ApplyDelay); err != nil {
		return nil, err
	}

	jobs, err := s.Jobs(ctx)
	if err != nil {
		return nil, err
	}
	var posting *domain.JobPosting
	for i := range jobs {
		if jobs[i].ID == req.JobID {
			posting = &jobs[i]
			break
		}
	}
	if posting == nil {
		return nil, domain.ErrJobNotFound
	}

	submission := &gateway.ApplicationRequest{
		JobID: req.JobID,
		Name:  req.Name,
		Email: req.Email,
	}
	if err := s.apps.Submit(ctx, submission); err != nil {
		s.log.Info("application rejected",
			zap.String("job_id", req.JobID),
			zap.Error(err))
		return nil, domain.ErrApplicationFailed
	}

	now := s.now()
	return &domain.JobApplication{
		ID:            domain.NewApplicationID(now.UnixMilli()),
		JobID:         req.JobID,
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		CoverLetter:   req.CoverLetter,
		SubmittedDate: now.UTC().Format(time.RFC3339),
	}, nil
}
