package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/go-kit/log"

	"github.com/VaibhaviS123/SafeStay/internal/httperr"
	"github.com/VaibhaviS123/SafeStay/internal/httpresp"
	"github.com/VaibhaviS123/SafeStay/internal/middleware"
	"github.com/VaibhaviS123/SafeStay/internal/usecase/auditlog"
)

type AuditLogsHandler struct {
	list   *auditlog.ListAuditLogs
	logger log.Logger
}

func NewAuditLogsHandler(list *auditlog.ListAuditLogs, logger log.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{list: list, logger: logger}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	limit, err := queryInt(c, "limit")
	if err != nil {
		httperr.Respond(c, h.logger, err)
		return
	}
	offset, err := queryInt(c, "offset")
	if err != nil {
		httperr.Respond(c, h.logger, err)
		return
	}

	page, err := h.list.Execute(c.Request.Context(), middleware.UserID(c), auditlog.ListInput{
		Action: c.Query("action"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		httperr.Respond(c, h.logger, err)
		return
	}

	httpresp.OK(c, page)
}
