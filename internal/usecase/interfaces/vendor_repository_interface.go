package interfaces

import (
	"context"

	"zoracom_vms/internal/domain/entities"
)

// IVendorRepository abstracts DynamoDB persistence for Vendor.
//
// CreateWithAccount writes the owning account, the vendor row, and the
// onboarding attachments in a single transaction: a failure anywhere
// leaves no partial vendor behind.
type IVendorRepository interface {
	CreateWithAccount(ctx context.Context, u entities.User, v entities.Vendor, uploads []entities.Attachment) (entities.Vendor, error)
	GetByID(ctx context.Context, id string) (entities.Vendor, error)
	GetByEmail(ctx context.Context, email string) (entities.Vendor, error)
	GetByPhoneNumber(ctx context.Context, phoneNumber string) (entities.Vendor, error)
	List(ctx context.Context) ([]entities.Vendor, error)
	// UpdateStatus sets the vendor status unconditionally and returns the
	// updated row, or the zero value when the vendor does not exist.
	UpdateStatus(ctx context.Context, id string, status entities.VendorStatus) (entities.Vendor, error)
}
