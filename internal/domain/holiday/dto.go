package holiday

import (
	"strings"

	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/dateutil"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/validator"
)

type CreateHolidayRequest struct {
	Date  string `json:"date" validate:"required"`
	Name  string `json:"name" validate:"required,max=200"`
	Actor string `json:"-"`
}

func (r *CreateHolidayRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)

	errs := validator.Struct(r)
	if r.Date != "" && !dateutil.Valid(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CreateHolidayResponse reports how many attendance records were stamped.
type CreateHolidayResponse struct {
	Holiday PublicHoliday `json:"holiday"`
	Stamped int           `json:"stamped"`
}
