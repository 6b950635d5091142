package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	legalUC "github.com/khoahotran/planmoni-site/internal/application/usecase/legal"
	"github.com/khoahotran/planmoni-site/internal/domain/legal"
)

type LegalHandler struct {
	useCase *legalUC.LegalUseCase
}

func NewLegalHandler(uc *legalUC.LegalUseCase) *LegalHandler {
	return &LegalHandler{useCase: uc}
}

func (h *LegalHandler) GetPage(c *gin.Context) {
	p, err := h.useCase.GetPage(c.Request.Context(), c.Param("kind"))
	respond(c, http.StatusOK, p, err)
}

func (h *LegalHandler) SetLastUpdated(c *gin.Context) {
	var req TextRequest
	if !bindJSON(c, &req) {
		return
	}
	p, err := h.useCase.SetLastUpdated(c.Request.Context(), c.Param("kind"), req.Text)
	respond(c, http.StatusOK, p, err)
}

func (h *LegalHandler) AddSection(c *gin.Context) {
	var req legal.Section
	if !bindJSON(c, &req) {
		return
	}
	s, err := h.useCase.AddSection(c.Request.Context(), c.Param("kind"), req)
	respond(c, http.StatusCreated, s, err)
}

func (h *LegalHandler) UpdateSection(c *gin.Context) {
	var patch legal.SectionPatch
	if !bindJSON(c, &patch) {
		return
	}
	s, err := h.useCase.UpdateSection(c.Request.Context(), c.Param("kind"), c.Param("id"), patch)
	respond(c, http.StatusOK, s, err)
}

func (h *LegalHandler) DeleteSection(c *gin.Context) {
	id := c.Param("id")
	if !requireConfirmation(c, "section", id) {
		return
	}
	respondDeleted(c, h.useCase.DeleteSection(c.Request.Context(), c.Param("kind"), id))
}
