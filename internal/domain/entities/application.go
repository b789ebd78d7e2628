package entities

import "time"

// ApplicationStatus is the review state of a vendor's bid.
//
// PENDING resolves to AWARDED or DECLINED, both terminal. INACTIVE is a
// terminal administrative override. A status never regresses.
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "PENDING"
	ApplicationStatusAwarded  ApplicationStatus = "AWARDED"
	ApplicationStatusDeclined ApplicationStatus = "DECLINED"
	ApplicationStatusInactive ApplicationStatus = "INACTIVE"
)

// ValidReviewDecision reports whether s is an outcome a reviewer may
// set.
func ValidReviewDecision(s ApplicationStatus) bool {
	return s == ApplicationStatusAwarded || s == ApplicationStatusDeclined
}

// Application is a vendor's bid against a listing.
//
// Storage model (DynamoDB):
//   - PK: listing_vendor = "<listing_id>#<vendor_id>"
//   - GSI1 (id-index): id
//
// Using the (listing, vendor) pair as the primary key makes the
// at-most-one-application-per-pair rule a conditional put, so two
// concurrent applies cannot both succeed.
type Application struct {
	ID        string            `json:"id"`
	ListingID string            `json:"listing_id"`
	VendorID  string            `json:"vendor_id"`
	Comment   string            `json:"comment"`
	Status    ApplicationStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}
