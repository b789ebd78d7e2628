package entities

import "time"

type UserRole string

const (
	UserRoleAdmin  UserRole = "ADMIN"
	UserRoleVendor UserRole = "VENDOR"
)

// User is the account that owns a vendor profile. Credentials are opaque
// to the workflow engine; PasswordHash is produced by the hasher
// collaborator during onboarding and never inspected afterwards.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (email-index): email
//   - GSI2 (phone_number-index): phone_number
type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	PhoneNumber  string    `json:"phone_number"`
	Address      string    `json:"address"`
	Role         UserRole  `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
