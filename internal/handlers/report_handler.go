package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/finrecords/financial-records-api/internal/httperr"
	"github.com/finrecords/financial-records-api/internal/httpresp"
	"github.com/finrecords/financial-records-api/internal/reports"
)

type ReportHandler struct {
	svc *reports.Service
}

func NewReportHandler(svc *reports.Service) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// GET /api/reports/total-payments
func (h *ReportHandler) TotalPayments(c *gin.Context) {
	rows, err := h.svc.TotalPayments(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "Failed to load total payments report", err)
		return
	}
	httpresp.List(c, rows, len(rows))
}

// GET /api/reports/pending-invoices
func (h *ReportHandler) PendingInvoices(c *gin.Context) {
	rows, err := h.svc.PendingInvoices(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "Failed to load pending invoices report", err)
		return
	}
	httpresp.List(c, rows, len(rows))
}

// GET /api/reports/transactions-by-platform?platform=
func (h *ReportHandler) TransactionsByPlatform(c *gin.Context) {
	platform := strings.TrimSpace(c.Query("platform"))

	rows, err := h.svc.TransactionsByPlatform(c.Request.Context(), platform)
	if err != nil {
		httperr.Internal(c, "Failed to load transactions report", err)
		return
	}

	var filter any
	if platform != "" {
		filter = platform
	}
	httpresp.FilteredList(c, rows, len(rows), filter)
}
