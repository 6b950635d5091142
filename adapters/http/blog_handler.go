package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	blogUC "github.com/khoahotran/planmoni-site/internal/application/usecase/blog"
	"github.com/khoahotran/planmoni-site/internal/domain/blog"
	"github.com/khoahotran/planmoni-site/pkg/apperror"
)

type BlogHandler struct {
	useCase *blogUC.BlogUseCase
}

func NewBlogHandler(uc *blogUC.BlogUseCase) *BlogHandler {
	return &BlogHandler{useCase: uc}
}

func (h *BlogHandler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.useCase.CreatePost(c.Request.Context(), blogUC.CreatePostInput{
		Title:    req.Title,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		Author:   req.Author,
		Category: req.Category,
		Status:   req.Status,
		ReadTime: req.ReadTime,
		Image:    req.Image,
		Slug:     req.Slug,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *BlogHandler) UpdatePost(c *gin.Context) {
	var patch blog.Patch
	if !bindJSON(c, &patch) {
		return
	}
	p, err := h.useCase.UpdatePost(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *BlogHandler) DeletePost(c *gin.Context) {
	id := c.Param("id")
	if !requireConfirmation(c, "blog post", id) {
		return
	}
	if err := h.useCase.DeletePost(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BlogHandler) GetPost(c *gin.Context) {
	p, err := h.useCase.GetPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *BlogHandler) ListPosts(c *gin.Context) {
	posts := h.useCase.ListPosts(c.Request.Context(), blog.Filter{
		Status:   blog.Status(c.Query("status")),
		Category: c.Query("category"),
		Query:    c.Query("q"),
	})
	c.JSON(http.StatusOK, gin.H{"posts": posts, "total": len(posts)})
}

func (h *BlogHandler) ListPublicPosts(c *gin.Context) {
	ctx := c.Request.Context()
	posts := h.useCase.ListPublished(ctx, c.Query("category"), c.Query("q"))

	dtos := make([]PostSummaryDTO, len(posts))
	for i, p := range posts {
		dtos[i] = ToPostSummaryDTO(p)
	}

	resp := gin.H{"posts": dtos, "categories": h.useCase.CategoryCounts(ctx)}
	if featured, ok := h.useCase.Featured(ctx); ok {
		resp["featured"] = ToPostSummaryDTO(*featured)
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BlogHandler) GetPublicPost(c *gin.Context) {
	p, err := h.useCase.GetPublishedPost(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.Error(err)
		return
	}
	dto, err := ToPostDTO(*p)
	if err != nil {
		c.Error(apperror.NewInternal("failed to render post content", err))
		return
	}
	c.JSON(http.StatusOK, dto)
}
