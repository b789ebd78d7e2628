package entities

import "time"

// AwardedListing records the single accepted application of a listing.
//
// Storage model (DynamoDB):
//   - PK: listing_id
//
// Keying by listing id guarantees at most one award row per listing; the
// award transaction puts it with attribute_not_exists so a concurrent
// double-award cannot slip through.
type AwardedListing struct {
	ID            string     `json:"id"`
	ListingID     string     `json:"listing_id"`
	ApplicationID string     `json:"application_id"`
	VendorID      string     `json:"vendor_id"`
	DeliveryDate  *time.Time `json:"delivery_date,omitempty"`
	Description   string     `json:"description,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}
