package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	contactUC "github.com/khoahotran/planmoni-site/internal/application/usecase/contact"
	"github.com/khoahotran/planmoni-site/internal/domain/contact"
)

type ContactHandler struct {
	useCase *contactUC.ContactUseCase
}

func NewContactHandler(uc *contactUC.ContactUseCase) *ContactHandler {
	return &ContactHandler{useCase: uc}
}

func (h *ContactHandler) GetInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"info":       h.useCase.GetInfo(c.Request.Context()),
		"categories": contact.Categories,
	})
}

func (h *ContactHandler) UpdateInfo(c *gin.Context) {
	var patch contact.InfoPatch
	if !bindJSON(c, &patch) {
		return
	}
	info, err := h.useCase.UpdateInfo(c.Request.Context(), patch)
	respond(c, http.StatusOK, info, err)
}

func (h *ContactHandler) SubmitMessage(c *gin.Context) {
	var req SubmitMessageRequest
	if !bindJSON(c, &req) {
		return
	}
	m, err := h.useCase.SubmitMessage(c.Request.Context(), contactUC.SubmitMessageInput{
		Name:     req.Name,
		Email:    req.Email,
		Subject:  req.Subject,
		Category: req.Category,
		Message:  req.Message,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": m.ID, "message": "Thanks for reaching out, we will get back to you shortly"})
}

func (h *ContactHandler) ListMessages(c *gin.Context) {
	messages := h.useCase.ListMessages(c.Request.Context(), contact.Filter{
		Status: contact.Status(c.Query("status")),
		Query:  c.Query("q"),
	})
	c.JSON(http.StatusOK, gin.H{"messages": messages, "total": len(messages)})
}

func (h *ContactHandler) GetMessage(c *gin.Context) {
	m, err := h.useCase.GetMessage(c.Request.Context(), c.Param("id"))
	respond(c, http.StatusOK, m, err)
}

func (h *ContactHandler) SetStatus(c *gin.Context) {
	var req StatusRequest
	if !bindJSON(c, &req) {
		return
	}
	m, err := h.useCase.SetStatus(c.Request.Context(), c.Param("id"), contact.Status(req.Status))
	respond(c, http.StatusOK, m, err)
}

func (h *ContactHandler) Reply(c *gin.Context) {
	var req ReplyRequest
	if !bindJSON(c, &req) {
		return
	}
	m, err := h.useCase.Reply(c.Request.Context(), c.Param("id"), req.Reply)
	respond(c, http.StatusOK, m, err)
}

func (h *ContactHandler) DeleteMessage(c *gin.Context) {
	id := c.Param("id")
	if !requireConfirmation(c, "contact message", id) {
		return
	}
	respondDeleted(c, h.useCase.DeleteMessage(c.Request.Context(), id))
}
