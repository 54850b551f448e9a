package http

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/shiftsync/shiftsync-backend-go/internal/domain/report"
	"github.com/shiftsync/shiftsync-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	// Monthly Attendance Report
	GetMonthlyAttendanceReport(w http.ResponseWriter, r *http.Request)

	// Attendance CSV export
	ExportAttendanceCSV(w http.ResponseWriter, r *http.Request)

	// Leave Balance Report
	GetLeaveBalanceReport(w http.ResponseWriter, r *http.Request)

	// Document Expiry Report
	GetDocumentExpiryReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// GetMonthlyAttendanceReport handles GET /reports/attendance-summary
func (h *reportHandlerImpl) GetMonthlyAttendanceReport(w http.ResponseWriter, r *http.Request) {
	year, month, err := queryPeriod(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reportService.GenerateMonthlyAttendanceReport(r.Context(), report.MonthlyAttendanceReportRequest{
		Month: month,
		Year:  year,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportAttendanceCSV handles GET /reports/attendance.csv
func (h *reportHandlerImpl) ExportAttendanceCSV(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := report.AttendanceExportRequest{
		StartDate:  q.Get("start_date"),
		EndDate:    q.Get("end_date"),
		EmployeeID: q.Get("employee_id"),
	}

	var buf bytes.Buffer
	if err := h.reportService.ExportAttendanceCSV(r.Context(), req, &buf); err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, "text/csv; charset=utf-8", fmt.Sprintf("attendance-%s-to-%s.csv", req.StartDate, req.EndDate), buf.Bytes())
}

// GetLeaveBalanceReport handles GET /reports/leave-balance
func (h *reportHandlerImpl) GetLeaveBalanceReport(w http.ResponseWriter, r *http.Request) {
	year, err := queryInt(r, "year", time.Now().Year())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reportService.GenerateLeaveBalanceReport(r.Context(), report.LeaveBalanceReportRequest{Year: year})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetDocumentExpiryReport handles GET /reports/document-expiry
func (h *reportHandlerImpl) GetDocumentExpiryReport(w http.ResponseWriter, r *http.Request) {
	within, err := queryInt(r, "within_days", 30)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	rows, err := h.reportService.GenerateDocumentExpiryReport(r.Context(), report.DocumentExpiryRequest{
		WithinDays: within,
		AsOf:       r.URL.Query().Get("as_of"),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.List(w, rows, len(rows))
}
