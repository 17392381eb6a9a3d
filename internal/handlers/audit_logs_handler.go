package handlers

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-appointments/internal/audit"
	"github.com/BruksfildServices01/barber-appointments/internal/httperr"
	"github.com/BruksfildServices01/barber-appointments/internal/models"
)

// AuditLogReader is satisfied by *audit.Logger.
type AuditLogReader interface {
	List(ctx context.Context, f audit.Filter) ([]models.AuditLog, int64, error)
}

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logs AuditLogReader
	loc  *time.Location
}

func NewAuditLogsHandler(logs AuditLogReader, loc *time.Location) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs, loc: loc}
}

// GET /audit-logs?action=&entity=&entity_id=&from=YYYY-MM-DD&to=YYYY-MM-DD&page=&limit=
// Admin only.
func (h *AuditLogsHandler) List(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	if !caller.IsAdmin() {
		httperr.Forbidden(c, "forbidden", "Admin only.")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	f := audit.Filter{
		Action:   c.Query("action"),
		Entity:   c.Query("entity"),
		EntityID: c.Query("entity_id"),
		Offset:   (page - 1) * limit,
		Limit:    limit,
	}

	// --------------------------------------------------
	// Date range, whole days in the scheduling timezone
	// --------------------------------------------------

	if fromStr := c.Query("from"); fromStr != "" {
		from, err := parseDate(h.loc, fromStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Invalid from date.")
			return
		}
		f.From = from
	}

	if toStr := c.Query("to"); toStr != "" {
		to, err := parseDate(h.loc, toStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Invalid to date.")
			return
		}
		f.To = to.AddDate(0, 0, 1)
	}

	logs, total, err := h.logs.List(c.Request.Context(), f)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(200, gin.H{
		"page":  page,
		"limit": limit,
		"total": total,
		"logs":  logs,
	})
}
