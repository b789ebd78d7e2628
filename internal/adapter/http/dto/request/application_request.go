package request

import (
	"strings"
	"time"

	"zoracom_vms/internal/domain/entities"
	"zoracom_vms/internal/usecase"
)

// ApplyRequest is bound from the multipart form a vendor posts against
// a listing. Supporting documents travel as file parts.
type ApplyRequest struct {
	Comment string `form:"comment"`
}

type ReviewApplicationRequest struct {
	ApplicationID string `form:"application_id" binding:"required"`
	VendorID      string `form:"vendor_id" binding:"required"`
	ListingID     string `form:"listing_id" binding:"required"`
	Status        string `form:"status" binding:"required"`
	DeliveryDate  string `form:"delivery_date"`
	Description   string `form:"description"`
}

// ResolveDecision normalizes the wire value and rejects anything other
// than the two review outcomes.
func (r ReviewApplicationRequest) ResolveDecision() (entities.ApplicationStatus, bool) {
	decision := entities.ApplicationStatus(strings.ToUpper(strings.TrimSpace(r.Status)))
	if !entities.ValidReviewDecision(decision) {
		return "", false
	}
	return decision, true
}

func (r ReviewApplicationRequest) ToInput() (usecase.ReviewInput, error) {
	decision, _ := r.ResolveDecision()
	input := usecase.ReviewInput{
		ApplicationID: r.ApplicationID,
		VendorID:      r.VendorID,
		ListingID:     r.ListingID,
		Decision:      decision,
		Description:   r.Description,
	}
	if raw := strings.TrimSpace(r.DeliveryDate); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return usecase.ReviewInput{}, err
		}
		input.DeliveryDate = &parsed
	}
	return input, nil
}

type ReportRequest struct {
	ApplicationID string `form:"application_id" binding:"required"`
	Comment       string `form:"comment" binding:"required"`
}

func (r ReportRequest) ToInput(listingID, vendorID string) usecase.ReportInput {
	return usecase.ReportInput{
		ListingID:     listingID,
		ApplicationID: r.ApplicationID,
		VendorID:      vendorID,
		Comment:       r.Comment,
	}
}
