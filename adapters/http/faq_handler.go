package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	faqUC "github.com/khoahotran/planmoni-site/internal/application/usecase/faq"
	"github.com/khoahotran/planmoni-site/internal/domain/faq"
)

type FAQHandler struct {
	useCase *faqUC.FAQUseCase
}

func NewFAQHandler(uc *faqUC.FAQUseCase) *FAQHandler {
	return &FAQHandler{useCase: uc}
}

func filterFromQuery(c *gin.Context) faq.Filter {
	return faq.Filter{Category: c.Query("category"), Query: c.Query("q")}
}

func (h *FAQHandler) ListPublicFAQs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"groups":     h.useCase.Grouped(c.Request.Context(), filterFromQuery(c)),
		"categories": faq.Categories,
	})
}

func (h *FAQHandler) ListFAQs(c *gin.Context) {
	c.JSON(http.StatusOK, h.useCase.ListFAQs(c.Request.Context(), filterFromQuery(c)))
}

func (h *FAQHandler) GetFAQ(c *gin.Context) {
	f, err := h.useCase.GetFAQ(c.Request.Context(), c.Param("id"))
	respond(c, http.StatusOK, f, err)
}

func (h *FAQHandler) CreateFAQ(c *gin.Context) {
	var req faq.FAQ
	if !bindJSON(c, &req) {
		return
	}
	req.ID = ""
	f, err := h.useCase.CreateFAQ(c.Request.Context(), req)
	respond(c, http.StatusCreated, f, err)
}

func (h *FAQHandler) UpdateFAQ(c *gin.Context) {
	var patch faq.Patch
	if !bindJSON(c, &patch) {
		return
	}
	f, err := h.useCase.UpdateFAQ(c.Request.Context(), c.Param("id"), patch)
	respond(c, http.StatusOK, f, err)
}

func (h *FAQHandler) DeleteFAQ(c *gin.Context) {
	id := c.Param("id")
	if !requireConfirmation(c, "faq", id) {
		return
	}
	respondDeleted(c, h.useCase.DeleteFAQ(c.Request.Context(), id))
}
