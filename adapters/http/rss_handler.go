package http

import (
	"github.com/gin-gonic/gin"

	blogUC "github.com/khoahotran/planmoni-site/internal/application/usecase/blog"
	"github.com/khoahotran/planmoni-site/pkg/apperror"
	"github.com/khoahotran/planmoni-site/pkg/logger"
)

type RSSHandler struct {
	rssUseCase *blogUC.RSSUseCase
	logger     logger.Logger
}

func NewRSSHandler(uc *blogUC.RSSUseCase, log logger.Logger) *RSSHandler {
	return &RSSHandler{
		rssUseCase: uc,
		logger:     log,
	}
}

func (h *RSSHandler) GenerateRSS(c *gin.Context) {
	feed, err := h.rssUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(apperror.NewInternal("failed to generate RSS feed", err))
		return
	}

	c.Header("Content-Type", "application/rss+xml; charset=utf-8")
	if err := feed.WriteRss(c.Writer); err != nil {
		h.logger.Error("Failed to write RSS feed to response", err)
	}
}
