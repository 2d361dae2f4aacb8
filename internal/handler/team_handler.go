package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nadji40/dolab/internal/domain"
	"github.com/nadji40/dolab/internal/dto"
	"github.com/nadji40/dolab/internal/store"
	"github.com/nadji40/dolab/pkg/response"
)

// TeamHandler serves the workspace team and job postings
type TeamHandler struct {
	store *store.Store
}

// NewTeamHandler creates a team handler
func NewTeamHandler(s *store.Store) *TeamHandler {
	return &TeamHandler{store: s}
}

// List handles GET /team
func (h *TeamHandler) List(c *gin.Context) {
	team, err := h.store.Team(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, team)
}

// Jobs handles GET /jobs
func (h *TeamHandler) Jobs(c *gin.Context) {
	jobs, err := h.store.Jobs(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, jobs)
}

// Apply handles POST /jobs/:id/apply. A rejected submission returns
// 502 and the client decides whether to retry.
func (h *TeamHandler) Apply(c *gin.Context) {
	var req dto.ApplyJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "name and a valid email are required")
		return
	}

	receipt, err := h.store.ApplyForJob(c.Request.Context(), &store.JobApplicationRequest{
		JobID:       c.Param("id"),
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		CoverLetter: req.CoverLetter,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrJobNotFound):
			response.NotFound(c, "job posting not found")
		case errors.Is(err, domain.ErrApplicationFailed):
			response.Error(c, http.StatusBadGateway, "APPLICATION_FAILED", err.Error(), "")
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.Created(c, receipt)
}
