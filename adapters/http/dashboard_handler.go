package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	activityUC "github.com/khoahotran/planmoni-site/internal/application/usecase/activity"
	backupUC "github.com/khoahotran/planmoni-site/internal/application/usecase/backup"
)

type DashboardHandler struct {
	activity *activityUC.ActivityUseCase
	backup   *backupUC.BackupUseCase
}

func NewDashboardHandler(a *activityUC.ActivityUseCase, b *backupUC.BackupUseCase) *DashboardHandler {
	return &DashboardHandler{activity: a, backup: b}
}

func (h *DashboardHandler) Dashboard(c *gin.Context) {
	recent, _ := strconv.Atoi(c.DefaultQuery("recent", "10"))
	c.JSON(http.StatusOK, h.activity.Dashboard(c.Request.Context(), recent))
}

func (h *DashboardHandler) Activity(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	c.JSON(http.StatusOK, h.activity.Recent(c.Request.Context(), limit))
}

func (h *DashboardHandler) Backup(c *gin.Context) {
	res, err := h.backup.Execute(c.Request.Context())
	respond(c, http.StatusCreated, res, err)
}
