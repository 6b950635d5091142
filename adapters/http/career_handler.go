package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	careerUC "github.com/khoahotran/planmoni-site/internal/application/usecase/career"
	"github.com/khoahotran/planmoni-site/internal/domain/career"
)

type CareerHandler struct {
	useCase *careerUC.CareersUseCase
}

func NewCareerHandler(uc *careerUC.CareersUseCase) *CareerHandler {
	return &CareerHandler{useCase: uc}
}

func (h *CareerHandler) CreatePosition(c *gin.Context) {
	var req CreatePositionRequest
	if !bindJSON(c, &req) {
		return
	}
	p, err := h.useCase.CreatePosition(c.Request.Context(), careerUC.CreatePositionInput{
		Title:        req.Title,
		Department:   req.Department,
		Location:     req.Location,
		Type:         req.Type,
		Salary:       req.Salary,
		Description:  req.Description,
		Requirements: req.Requirements,
		Status:       req.Status,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *CareerHandler) UpdatePosition(c *gin.Context) {
	var patch career.Patch
	if !bindJSON(c, &patch) {
		return
	}
	p, err := h.useCase.UpdatePosition(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *CareerHandler) DeletePosition(c *gin.Context) {
	id := c.Param("id")
	if !requireConfirmation(c, "job position", id) {
		return
	}
	if err := h.useCase.DeletePosition(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CareerHandler) GetPosition(c *gin.Context) {
	p, err := h.useCase.GetPosition(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *CareerHandler) ListPositions(c *gin.Context) {
	positions := h.useCase.ListPositions(c.Request.Context(), career.Filter{
		Status:     career.Status(c.Query("status")),
		Department: c.Query("department"),
		Query:      c.Query("q"),
	})
	c.JSON(http.StatusOK, gin.H{"positions": positions, "total": len(positions)})
}

func (h *CareerHandler) ListPublicPositions(c *gin.Context) {
	positions := h.useCase.ActivePositions(c.Request.Context(), c.Query("department"), c.Query("q"))
	c.JSON(http.StatusOK, gin.H{
		"positions":   positions,
		"departments": career.Departments,
		"job_types":   career.JobTypes,
	})
}

func (h *CareerHandler) GetPublicPosition(c *gin.Context) {
	p, err := h.useCase.GetActivePosition(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, p)
}
