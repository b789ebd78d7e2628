package entities

import "time"

// ListingReport is a delivery/progress report filed by the contracted
// vendor of an awarded application.
//
// Storage model (DynamoDB):
//   - PK: id
type ListingReport struct {
	ID            string    `json:"id"`
	ListingID     string    `json:"listing_id"`
	ApplicationID string    `json:"application_id"`
	VendorID      string    `json:"vendor_id"`
	Comment       string    `json:"comment"`
	CreatedAt     time.Time `json:"created_at"`
}
