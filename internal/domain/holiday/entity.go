package holiday

import "time"

// PublicHoliday is a company-wide day off. Creating one stamps attendance
// for every active employee on that date.
type PublicHoliday struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
