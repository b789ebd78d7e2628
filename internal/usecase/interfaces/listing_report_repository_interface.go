package interfaces

import (
	"context"

	"zoracom_vms/internal/domain/entities"
)

// IListingReportRepository abstracts DynamoDB persistence for
// ListingReport. Reports are append-only.
type IListingReportRepository interface {
	Create(ctx context.Context, r entities.ListingReport) (entities.ListingReport, error)
	ListByApplicationID(ctx context.Context, applicationID string) ([]entities.ListingReport, error)
}
