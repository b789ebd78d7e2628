package request

import (
	"strings"

	"zoracom_vms/internal/domain/entities"
	"zoracom_vms/internal/usecase"
)

// CreateListingRequest is bound from a multipart form; repeat the
// "vendors" field to restrict the listing to specific vendor ids.
type CreateListingRequest struct {
	Name        string   `form:"name" binding:"required"`
	Description string   `form:"description" binding:"required"`
	CategoryID  string   `form:"category_id" binding:"required"`
	Vendors     []string `form:"vendors"`
}

func (r CreateListingRequest) ToInput() usecase.CreateListingInput {
	return usecase.CreateListingInput{
		Name:             r.Name,
		Description:      r.Description,
		CategoryID:       r.CategoryID,
		AllowedVendorIDs: r.Vendors,
	}
}

// UpdateListingRequest replaces every mutable field, including the
// allowed vendor set and the attachment list. Omitting "vendors" opens
// the listing to all vendors.
type UpdateListingRequest struct {
	Name        string   `form:"name" binding:"required"`
	Description string   `form:"description" binding:"required"`
	CategoryID  string   `form:"category_id" binding:"required"`
	Vendors     []string `form:"vendors"`
}

func (r UpdateListingRequest) ToInput(id string) usecase.UpdateListingInput {
	return usecase.UpdateListingInput{
		ID:               id,
		Name:             r.Name,
		Description:      r.Description,
		CategoryID:       r.CategoryID,
		AllowedVendorIDs: r.Vendors,
	}
}

type ListingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ResolveStatus normalizes the wire value into a listing status without
// deciding whether the transition is legal; the use case owns that.
func (r ListingStatusRequest) ResolveStatus() entities.ListingStatus {
	return entities.ListingStatus(strings.ToUpper(strings.TrimSpace(r.Status)))
}
