package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"snabbit/models"
	"snabbit/services/booking"
	"snabbit/services/export"
	"snabbit/services/matching"
	"snabbit/services/user"
	"snabbit/utils"
)

// ExportHandler renders PDF invoices and transaction reports.
type ExportHandler struct {
	BookingSvc booking.BookingSessionService
	ExportSvc  export.Service
	UserSvc    user.UserService
	Logger     *zap.Logger
}

func NewExportHandler(bookingSvc booking.BookingSessionService, exportSvc export.Service, userSvc user.UserService, logger *zap.Logger) *ExportHandler {
	return &ExportHandler{BookingSvc: bookingSvc, ExportSvc: exportSvc, UserSvc: userSvc, Logger: logger}
}

// InvoicePDF handles GET /api/export/invoice/:bookingID.
func (h *ExportHandler) InvoicePDF(c *gin.Context) {
	record, err := h.BookingSvc.GetBooking(c.Param("bookingID"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "booking not found", err.Error())
		return
	}

	data, err := h.ExportSvc.InvoicePDF(booking.BuildInvoice(*record))
	if err != nil {
		h.Logger.Error("InvoicePDF: render failed", zap.String("bookingId", record.ID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to render invoice", err.Error())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=invoice-%s.pdf", record.ID[:8]))
	c.Data(http.StatusOK, "application/pdf", data)
}

// ReportPDF handles GET /api/export/report?status=all|completed|cancelled.
func (h *ExportHandler) ReportPDF(c *gin.Context) {
	account, err := h.UserSvc.GetByID(c.GetString("accountID"))
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "unknown account", err.Error())
		return
	}

	role := matching.ViewerCustomer
	if c.GetString("role") == "helper" {
		role = matching.ViewerHelper
	}
	statusFilter := c.DefaultQuery("status", matching.StatusFilterAll)

	records, err := h.BookingSvc.GetHistory(account.Details(), booking.HistoryQuery{
		StatusFilter:  statusFilter,
		ServiceFilter: matching.ServiceFilterAll,
		SortKey:       matching.HistoryByDate,
		Role:          role,
	})
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch history", err.Error())
		return
	}

	rows := make([]models.TransactionRow, 0, len(records))
	for _, rec := range records {
		var amount float64
		if rec.Payment != nil {
			amount = rec.Payment.Amount
		}
		counterparty := rec.Helper.Name
		if role == matching.ViewerHelper {
			counterparty = rec.Customer.Name()
		}
		rows = append(rows, models.TransactionRow{
			Date:         rec.CreatedAt.Format("2006-01-02"),
			Service:      rec.Service.Name,
			Counterparty: counterparty,
			Amount:       amount,
			Status:       string(rec.Status),
		})
	}

	data, err := h.ExportSvc.TransactionReportPDF(rows, statusFilter, time.Now())
	if err != nil {
		h.Logger.Error("ReportPDF: render failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to render report", err.Error())
		return
	}

	c.Header("Content-Disposition", "attachment; filename=transactions.pdf")
	c.Data(http.StatusOK, "application/pdf", data)
}
