package interfaces

import (
	"context"

	"zoracom_vms/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB reads over User accounts.
//
// Accounts are only ever created inside the vendor onboarding
// transaction (IVendorRepository.CreateWithAccount), so this interface
// carries the uniqueness lookups alone.
type IUserRepository interface {
	GetByEmail(ctx context.Context, email string) (entities.User, error)
	GetByPhoneNumber(ctx context.Context, phoneNumber string) (entities.User, error)
}
