package entities

import "time"

// VendorStatus is the vendor approval state.
//
// There is no transition lattice between the review states: an admin may
// move an existing vendor from any review state to any other. Only the
// no-op transition (same status twice) is rejected.
type VendorStatus string

const (
	VendorStatusPending     VendorStatus = "PENDING"
	VendorStatusApproved    VendorStatus = "APPROVED"
	VendorStatusDeclined    VendorStatus = "DECLINED"
	VendorStatusDeactivated VendorStatus = "DEACTIVATED"
)

// ValidVendorReviewStatus reports whether s is a status an admin review
// may set. PENDING is assigned only at onboarding and is not reachable
// through review.
func ValidVendorReviewStatus(s VendorStatus) bool {
	switch s {
	case VendorStatusApproved, VendorStatusDeclined, VendorStatusDeactivated:
		return true
	default:
		return false
	}
}

// Vendor is a supplier account created through invited onboarding.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (email-index): email
//   - GSI2 (phone_number-index): phone_number
//
// A vendor is one-to-one with its owning User account (UserID).
type Vendor struct {
	ID               string       `json:"id"`
	UserID           string       `json:"user_id"`
	BusinessName     string       `json:"business_name"`
	Category         string       `json:"category"`
	Email            string       `json:"email"`
	PhoneNumber      string       `json:"phone_number"`
	OtherPhoneNumber string       `json:"other_phone_number,omitempty"`
	Address          string       `json:"address"`
	Status           VendorStatus `json:"status"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}
