package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	aboutUC "github.com/khoahotran/planmoni-site/internal/application/usecase/about"
	"github.com/khoahotran/planmoni-site/internal/domain/about"
)

type AboutHandler struct {
	useCase *aboutUC.AboutUseCase
}

func NewAboutHandler(uc *aboutUC.AboutUseCase) *AboutHandler {
	return &AboutHandler{useCase: uc}
}

func (h *AboutHandler) GetAbout(c *gin.Context) {
	c.JSON(http.StatusOK, h.useCase.Get(c.Request.Context()))
}

func (h *AboutHandler) ReplaceAbout(c *gin.Context) {
	var req about.Content
	if !bindJSON(c, &req) {
		return
	}
	content, err := h.useCase.ReplaceAll(c.Request.Context(), req)
	respond(c, http.StatusOK, content, err)
}

func (h *AboutHandler) SetMission(c *gin.Context) {
	var req TextRequest
	if !bindJSON(c, &req) {
		return
	}
	content, err := h.useCase.SetMission(c.Request.Context(), req.Text)
	respond(c, http.StatusOK, content, err)
}

func (h *AboutHandler) SetStory(c *gin.Context) {
	var req TextRequest
	if !bindJSON(c, &req) {
		return
	}
	content, err := h.useCase.SetStory(c.Request.Context(), req.Text)
	respond(c, http.StatusOK, content, err)
}

func (h *AboutHandler) AddTeamMember(c *gin.Context) {
	var req about.TeamMember
	if !bindJSON(c, &req) {
		return
	}
	m, err := h.useCase.AddTeamMember(c.Request.Context(), req)
	respond(c, http.StatusCreated, m, err)
}

func (h *AboutHandler) UpdateTeamMember(c *gin.Context) {
	var patch about.TeamMemberPatch
	if !bindJSON(c, &patch) {
		return
	}
	m, err := h.useCase.UpdateTeamMember(c.Request.Context(), c.Param("id"), patch)
	respond(c, http.StatusOK, m, err)
}

func (h *AboutHandler) DeleteTeamMember(c *gin.Context) {
	id := c.Param("id")
	if !requireConfirmation(c, "team member", id) {
		return
	}
	respondDeleted(c, h.useCase.DeleteTeamMember(c.Request.Context(), id))
}

func (h *AboutHandler) AddMilestone(c *gin.Context) {
	var req about.Milestone
	if !bindJSON(c, &req) {
		return
	}
	m, err := h.useCase.AddMilestone(c.Request.Context(), req)
	respond(c, http.StatusCreated, m, err)
}

func (h *AboutHandler) UpdateMilestone(c *gin.Context) {
	var patch about.MilestonePatch
	if !bindJSON(c, &patch) {
		return
	}
	m, err := h.useCase.UpdateMilestone(c.Request.Context(), c.Param("id"), patch)
	respond(c, http.StatusOK, m, err)
}

func (h *AboutHandler) DeleteMilestone(c *gin.Context) {
	id := c.Param("id")
	if !requireConfirmation(c, "milestone", id) {
		return
	}
	respondDeleted(c, h.useCase.DeleteMilestone(c.Request.Context(), id))
}

func (h *AboutHandler) AddValue(c *gin.Context) {
	var req about.Value
	if !bindJSON(c, &req) {
		return
	}
	v, err := h.useCase.AddValue(c.Request.Context(), req)
	respond(c, http.StatusCreated, v, err)
}

func (h *AboutHandler) UpdateValue(c *gin.Context) {
	var patch about.ValuePatch
	if !bindJSON(c, &patch) {
		return
	}
	v, err := h.useCase.UpdateValue(c.Request.Context(), c.Param("id"), patch)
	respond(c, http.StatusOK, v, err)
}

func (h *AboutHandler) DeleteValue(c *gin.Context) {
	id := c.Param("id")
	if !requireConfirmation(c, "value", id) {
		return
	}
	respondDeleted(c, h.useCase.DeleteValue(c.Request.Context(), id))
}
