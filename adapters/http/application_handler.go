package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appUC "github.com/khoahotran/planmoni-site/internal/application/usecase/jobapplication"
	"github.com/khoahotran/planmoni-site/internal/domain/jobapplication"
)

type ApplicationHandler struct {
	useCase *appUC.ApplicationsUseCase
}

func NewApplicationHandler(uc *appUC.ApplicationsUseCase) *ApplicationHandler {
	return &ApplicationHandler{useCase: uc}
}

// Submit handles the public application form. The position id comes from
// the path.
func (h *ApplicationHandler) Submit(c *gin.Context) {
	var req SubmitApplicationRequest
	if !bindJSON(c, &req) {
		return
	}
	a, err := h.useCase.Submit(c.Request.Context(), appUC.SubmitInput{
		PositionID:         c.Param("id"),
		PositionTitle:      req.PositionTitle,
		ApplicantName:      req.ApplicantName,
		Email:              req.Email,
		Phone:              req.Phone,
		Location:           req.Location,
		Experience:         req.Experience,
		CoverLetter:        req.CoverLetter,
		ResumeFileName:     req.ResumeFileName,
		PortfolioURL:       req.PortfolioURL,
		LinkedinURL:        req.LinkedinURL,
		AvailableStartDate: req.AvailableStartDate,
		SalaryExpectation:  req.SalaryExpectation,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": a.ID, "status": a.Status, "message": "Application submitted successfully"})
}

func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	ctx := c.Request.Context()
	apps := h.useCase.ListApplications(ctx, jobapplication.Filter{
		PositionID: c.Query("position_id"),
		Status:     jobapplication.Status(c.Query("status")),
		Query:      c.Query("q"),
	})
	c.JSON(http.StatusOK, gin.H{"applications": apps, "stats": h.useCase.Stats(ctx)})
}

func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	a, err := h.useCase.GetApplication(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *ApplicationHandler) UpdateApplication(c *gin.Context) {
	var patch jobapplication.Patch
	if !bindJSON(c, &patch) {
		return
	}
	a, err := h.useCase.UpdateApplication(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *ApplicationHandler) DeleteApplication(c *gin.Context) {
	id := c.Param("id")
	if !requireConfirmation(c, "job application", id) {
		return
	}
	if err := h.useCase.DeleteApplication(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
