package interfaces

import (
	"context"

	"zoracom_vms/internal/domain/entities"
)

// IListingRepository abstracts DynamoDB persistence for Listing.
type IListingRepository interface {
	Create(ctx context.Context, l entities.Listing) (entities.Listing, error)
	GetByID(ctx context.Context, id string) (entities.Listing, error)
	List(ctx context.Context) ([]entities.Listing, error)
	// Update rewrites the mutable fields (name, description, category,
	// allowed vendors) of an existing listing. Returns the zero value
	// when the listing is absent.
	Update(ctx context.Context, l entities.Listing) (entities.Listing, error)
	Delete(ctx context.Context, id string) error
	// UpdateStatusIf sets the status only while the stored status still
	// equals from (compare-and-swap). Returns the zero value when the
	// listing is absent or the status moved concurrently.
	UpdateStatusIf(ctx context.Context, id string, from, to entities.ListingStatus) (entities.Listing, error)
	// ExistsByCategoryID reports whether any listing references the
	// category. Used by the category registry's delete guard.
	ExistsByCategoryID(ctx context.Context, categoryID string) (bool, error)
}
