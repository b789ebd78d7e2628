package entities

import "time"

// ListingStatus is the job listing lifecycle state.
//
// The only forward path is PENDING → AWARDED → ONGOING → DELIVERED.
// AWARDED is reached exclusively through application review; ONGOING and
// DELIVERED through the advance operation. INACTIVE is a terminal
// administrative override reachable from any non-terminal state. A
// listing status never moves backward.
type ListingStatus string

const (
	ListingStatusPending   ListingStatus = "PENDING"
	ListingStatusAwarded   ListingStatus = "AWARDED"
	ListingStatusOngoing   ListingStatus = "ONGOING"
	ListingStatusDelivered ListingStatus = "DELIVERED"
	ListingStatusInactive  ListingStatus = "INACTIVE"
)

// listingStatusRank orders the forward path. INACTIVE has no rank; it is
// handled separately as a terminal override.
var listingStatusRank = map[ListingStatus]int{
	ListingStatusPending:   0,
	ListingStatusAwarded:   1,
	ListingStatusOngoing:   2,
	ListingStatusDelivered: 3,
}

// ListingStatusAdvances reports whether moving from to target is a
// strictly forward step on the delivery path.
func ListingStatusAdvances(from, to ListingStatus) bool {
	fr, ok := listingStatusRank[from]
	if !ok {
		return false
	}
	tr, ok := listingStatusRank[to]
	if !ok {
		return false
	}
	return tr > fr
}

// ValidAdvanceTarget reports whether s is a status the advance operation
// accepts. PENDING→AWARDED happens only through review, never advance.
func ValidAdvanceTarget(s ListingStatus) bool {
	return s == ListingStatusOngoing || s == ListingStatusDelivered
}

// Listing is a job opportunity vendors apply to.
//
// Storage model (DynamoDB):
//   - PK: id
//
// AllowedVendorIDs empty means the listing is open to all approved
// vendors; non-empty restricts applications to the listed vendor ids.
type Listing struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	Description      string        `json:"description"`
	CategoryID       string        `json:"category_id"`
	Status           ListingStatus `json:"status"`
	AllowedVendorIDs []string      `json:"allowed_vendor_ids,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

// OpenToAllVendors reports whether any vendor may apply.
func (l Listing) OpenToAllVendors() bool {
	return len(l.AllowedVendorIDs) == 0
}

// VendorAllowed reports whether vendorID may apply to this listing.
func (l Listing) VendorAllowed(vendorID string) bool {
	if l.OpenToAllVendors() {
		return true
	}
	for _, id := range l.AllowedVendorIDs {
		if id == vendorID {
			return true
		}
	}
	return false
}
