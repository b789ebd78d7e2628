package response

import (
	"time"

	"zoracom_vms/internal/domain/entities"
)

type ListingResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	CategoryID       string    `json:"category_id"`
	Status           string    `json:"status"`
	AllowedVendorIDs []string  `json:"allowed_vendor_ids,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	Attachments []AttachmentResponse `json:"attachments,omitempty"`
}

func FromListing(l entities.Listing) ListingResponse {
	return ListingResponse{
		ID:               l.ID,
		Name:             l.Name,
		Description:      l.Description,
		CategoryID:       l.CategoryID,
		Status:           string(l.Status),
		AllowedVendorIDs: l.AllowedVendorIDs,
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
	}
}

func FromListings(listings []entities.Listing) []ListingResponse {
	out := make([]ListingResponse, 0, len(listings))
	for _, l := range listings {
		out = append(out, FromListing(l))
	}
	return out
}
