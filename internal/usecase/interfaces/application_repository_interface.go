package interfaces

import (
	"context"

	"zoracom_vms/internal/domain/entities"
)

// IApplicationRepository abstracts DynamoDB persistence for Application
// and the cross-entity award transaction.
//
// Applications are keyed by the (listing, vendor) pair; Create is a
// conditional put so two concurrent applies for the same pair cannot
// both succeed; the loser gets the zero value back.
type IApplicationRepository interface {
	Create(ctx context.Context, a entities.Application) (entities.Application, error)
	GetByID(ctx context.Context, id string) (entities.Application, error)
	GetByIDAndVendor(ctx context.Context, id, vendorID string) (entities.Application, error)
	ListByListingID(ctx context.Context, listingID string) ([]entities.Application, error)
	// UpdateStatusIf sets the application status only while it still
	// equals from. Returns the zero value when the application is absent
	// or already resolved.
	UpdateStatusIf(ctx context.Context, listingID, vendorID string, from, to entities.ApplicationStatus) (entities.Application, error)
	// Award atomically marks the application AWARDED, the listing
	// AWARDED, and creates the single AwardedListing row. Returns
	// won=false without error when the listing was already awarded by a
	// concurrent reviewer or the application was already resolved.
	Award(ctx context.Context, a entities.Application, award entities.AwardedListing) (won bool, err error)
}
