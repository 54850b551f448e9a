// Package local implements the entity repositories on top of the kvstore
// record store. Each entity type lives in its own versioned collection.
package local

import "github.com/shiftsync/shiftsync-backend-go/internal/pkg/kvstore"

// Collection names and versions. Bumping a version abandons the old key.
const (
	collectionEmployees      = "employees"
	collectionAttendance     = "attendance"
	collectionLeaveRequests  = "leave_requests"
	collectionPublicHolidays = "public_holidays"
	collectionCompanies      = "companies"
	collectionUsers          = "users"
	collectionDeductions     = "deductions"
	documentAbout            = "about"

	schemaVersion = 1
)

func indexOf[T any](items []T, match func(T) bool) int {
	for i, item := range items {
		if match(item) {
			return i
		}
	}
	return -1
}

func newCollection[T any](store kvstore.Store, name string) *kvstore.Collection[T] {
	return kvstore.NewCollection[T](store, name, schemaVersion)
}
