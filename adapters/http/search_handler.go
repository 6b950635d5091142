package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	searchUC "github.com/khoahotran/planmoni-site/internal/application/usecase/search"
	"github.com/khoahotran/planmoni-site/pkg/apperror"
)

type SearchHandler struct {
	searchUseCase *searchUC.SearchUseCase
}

func NewSearchHandler(uc *searchUC.SearchUseCase) *SearchHandler {
	return &SearchHandler{searchUseCase: uc}
}

func (h *SearchHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.Error(apperror.NewInvalidInput("'q' query param is required", nil))
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	output, err := h.searchUseCase.Execute(c.Request.Context(), searchUC.SearchInput{Query: query, Limit: limit})
	respond(c, http.StatusOK, output, err)
}
