package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	pressUC "github.com/khoahotran/planmoni-site/internal/application/usecase/press"
	"github.com/khoahotran/planmoni-site/internal/domain/press"
	"github.com/khoahotran/planmoni-site/pkg/apperror"
)

const maxUploadBytes = 25 << 20

type PressHandler struct {
	useCase *pressUC.PressUseCase
}

func NewPressHandler(uc *pressUC.PressUseCase) *PressHandler {
	return &PressHandler{useCase: uc}
}

func (h *PressHandler) GetKit(c *gin.Context) {
	ctx := c.Request.Context()
	if category := c.Query("category"); category != "" {
		c.JSON(http.StatusOK, gin.H{"assets": h.useCase.ListAssets(ctx, press.AssetCategory(category))})
		return
	}
	c.JSON(http.StatusOK, h.useCase.GetKit(ctx))
}

func (h *PressHandler) AddAsset(c *gin.Context) {
	var req press.Asset
	if !bindJSON(c, &req) {
		return
	}
	a, err := h.useCase.AddAsset(c.Request.Context(), req)
	respond(c, http.StatusCreated, a, err)
}

// UploadAsset takes a multipart form: file, name, category, description.
func (h *PressHandler) UploadAsset(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.NewMissingFields("file"))
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.Error(apperror.NewInvalidInput("file is larger than 25MB", nil))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.NewInternal("file cannot open", err))
		return
	}
	defer file.Close()

	a, err := h.useCase.UploadAsset(c.Request.Context(), pressUC.UploadAssetInput{
		File:        file,
		FileName:    fileHeader.Filename,
		SizeBytes:   fileHeader.Size,
		Name:        c.PostForm("name"),
		Category:    press.AssetCategory(c.PostForm("category")),
		Description: c.PostForm("description"),
	})
	respond(c, http.StatusCreated, a, err)
}

func (h *PressHandler) UpdateAsset(c *gin.Context) {
	var patch press.AssetPatch
	if !bindJSON(c, &patch) {
		return
	}
	a, err := h.useCase.UpdateAsset(c.Request.Context(), c.Param("id"), patch)
	respond(c, http.StatusOK, a, err)
}

func (h *PressHandler) DeleteAsset(c *gin.Context) {
	id := c.Param("id")
	if !requireConfirmation(c, "press asset", id) {
		return
	}
	respondDeleted(c, h.useCase.DeleteAsset(c.Request.Context(), id))
}

func (h *PressHandler) AddNews(c *gin.Context) {
	var req press.NewsItem
	if !bindJSON(c, &req) {
		return
	}
	n, err := h.useCase.AddNews(c.Request.Context(), req)
	respond(c, http.StatusCreated, n, err)
}

func (h *PressHandler) UpdateNews(c *gin.Context) {
	var patch press.NewsPatch
	if !bindJSON(c, &patch) {
		return
	}
	n, err := h.useCase.UpdateNews(c.Request.Context(), c.Param("id"), patch)
	respond(c, http.StatusOK, n, err)
}

func (h *PressHandler) DeleteNews(c *gin.Context) {
	id := c.Param("id")
	if !requireConfirmation(c, "news item", id) {
		return
	}
	respondDeleted(c, h.useCase.DeleteNews(c.Request.Context(), id))
}

func (h *PressHandler) SetFacts(c *gin.Context) {
	var facts []press.Fact
	if !bindJSON(c, &facts) {
		return
	}
	out, err := h.useCase.SetFacts(c.Request.Context(), facts)
	respond(c, http.StatusOK, out, err)
}

func (h *PressHandler) UpdateFact(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid fact index", err))
		return
	}
	var req press.Fact
	if !bindJSON(c, &req) {
		return
	}
	f, err := h.useCase.UpdateFact(c.Request.Context(), index, req)
	respond(c, http.StatusOK, f, err)
}
