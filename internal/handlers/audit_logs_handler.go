package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/cafe-directory/internal/audit"
	"github.com/BruksfildServices01/cafe-directory/internal/httperr"
	"github.com/BruksfildServices01/cafe-directory/internal/httpresp"
	"github.com/BruksfildServices01/cafe-directory/internal/models"
)

const maxAuditLogs = 200

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewAuditLogsHandler(db *gorm.DB, log *zap.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{db: db, log: log}
}

type AuditLogsResponse struct {
	Logs []models.AuditLog `json:"logs"`
}

// List returns the most recent audit rows, optionally narrowed by action
// and cafe id.
func (h *AuditLogsHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > maxAuditLogs {
		limit = 50
	}

	q := h.db.WithContext(c.Request.Context()).Model(&models.AuditLog{})

	if action := c.Query("action"); action != "" {
		q = q.Where("action = ?", action)
	}

	if idStr := c.Query("cafe_id"); idStr != "" {
		id, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil {
			httperr.BadRequest(c, msgInvalidID)
			return
		}
		q = q.Where("entity = ? AND entity_id = ?", audit.EntityCafe, id)
	}

	logs := make([]models.AuditLog, 0)
	if err := q.
		Order("id DESC").
		Limit(limit).
		Find(&logs).Error; err != nil {

		h.log.Error("audit list failed", zap.Error(err))
		httperr.Internal(c, msgInternal)
		return
	}

	httpresp.OK(c, AuditLogsResponse{Logs: logs})
}
