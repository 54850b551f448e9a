package about

import "github.com/shiftsync/shiftsync-backend-go/internal/pkg/validator"

type UpdateAboutRequest struct {
	AppTitle     string `json:"app_title" validate:"required,max=100"`
	Version      string `json:"version" validate:"max=50"`
	Description  string `json:"description" validate:"max=2000"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`
	ContactPhone string `json:"contact_phone" validate:"max=50"`
	Website      string `json:"website" validate:"omitempty,url"`
}

func (r *UpdateAboutRequest) Validate() error {
	if errs := validator.Struct(r); len(errs) > 0 {
		return errs
	}
	return nil
}
