package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/shiftsync/shiftsync-backend-go/internal/handler/http/response"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/validator"
)

// maxUploadSize bounds multipart import uploads.
const maxUploadSize = 10 << 20

// decodeJSON decodes the body into dst and writes a 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return false
	}
	return true
}

// queryInt reads an integer query parameter, falling back to def when absent.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, validator.ValidationErrors{{Field: name, Message: name + " must be a number"}}
	}
	return v, nil
}

// queryPeriod reads year and month, defaulting to the current month.
func queryPeriod(r *http.Request) (int, int, error) {
	now := time.Now()
	year, err := queryInt(r, "year", now.Year())
	if err != nil {
		return 0, 0, err
	}
	month, err := queryInt(r, "month", int(now.Month()))
	if err != nil {
		return 0, 0, err
	}
	return year, month, nil
}
