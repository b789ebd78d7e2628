package response

import (
	"time"

	"zoracom_vms/internal/domain/entities"
)

type ApplicationResponse struct {
	ID        string    `json:"id"`
	ListingID string    `json:"listing_id"`
	VendorID  string    `json:"vendor_id"`
	Comment   string    `json:"comment"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Attachments []AttachmentResponse `json:"attachments,omitempty"`
}

func FromApplication(a entities.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:        a.ID,
		ListingID: a.ListingID,
		VendorID:  a.VendorID,
		Comment:   a.Comment,
		Status:    string(a.Status),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func FromApplications(applications []entities.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(applications))
	for _, a := range applications {
		out = append(out, FromApplication(a))
	}
	return out
}

type ListingReportResponse struct {
	ID            string    `json:"id"`
	ListingID     string    `json:"listing_id"`
	ApplicationID string    `json:"application_id"`
	VendorID      string    `json:"vendor_id"`
	Comment       string    `json:"comment"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromListingReport(r entities.ListingReport) ListingReportResponse {
	return ListingReportResponse{
		ID:            r.ID,
		ListingID:     r.ListingID,
		ApplicationID: r.ApplicationID,
		VendorID:      r.VendorID,
		Comment:       r.Comment,
		CreatedAt:     r.CreatedAt,
	}
}
