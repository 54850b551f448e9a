package about

// AboutData is the single document shown on the about page.
type AboutData struct {
	AppTitle     string `json:"app_title"`
	Version      string `json:"version"`
	Description  string `json:"description"`
	ContactEmail string `json:"contact_email,omitempty"`
	ContactPhone string `json:"contact_phone,omitempty"`
	Website      string `json:"website,omitempty"`
}

func Default(version string) AboutData {
	return AboutData{
		AppTitle:    "ShiftSync",
		Version:     version,
		Description: "Attendance, leave and payroll management",
	}
}
