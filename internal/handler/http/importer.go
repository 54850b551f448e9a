package http

import (
	"log/slog"
	"net/http"

	"github.com/shiftsync/shiftsync-backend-go/internal/domain/importer"
	"github.com/shiftsync/shiftsync-backend-go/internal/handler/http/middleware"
	"github.com/shiftsync/shiftsync-backend-go/internal/handler/http/response"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/spreadsheet"
)

type ImportHandler interface {
	ImportAttendance(w http.ResponseWriter, r *http.Request)
	ImportEmployees(w http.ResponseWriter, r *http.Request)
}

type importHandlerImpl struct {
	importService importer.ImportService
}

func NewImportHandler(importService importer.ImportService) ImportHandler {
	return &importHandlerImpl{importService: importService}
}

// uploadedText reads the "file" form field of a multipart upload as CSV text.
func uploadedText(w http.ResponseWriter, r *http.Request) (string, bool) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return "", false
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "Field 'file' is required", nil)
		return "", false
	}
	defer file.Close()

	text, err := spreadsheet.ToCSVText(fileHeader.Filename, file)
	if err != nil {
		response.HandleError(w, err)
		return "", false
	}
	return text, true
}

// ImportAttendance implements ImportHandler
func (h *importHandlerImpl) ImportAttendance(w http.ResponseWriter, r *http.Request) {
	text, ok := uploadedText(w, r)
	if !ok {
		return
	}

	result, err := h.importService.ImportAttendance(r.Context(), text, middleware.Actor(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ImportEmployees implements ImportHandler
func (h *importHandlerImpl) ImportEmployees(w http.ResponseWriter, r *http.Request) {
	text, ok := uploadedText(w, r)
	if !ok {
		return
	}

	result, err := h.importService.ImportEmployees(r.Context(), text)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
