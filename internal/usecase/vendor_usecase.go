package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"zoracom_vms/internal/domain/entities"
	"zoracom_vms/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrVendorNotFound        = errors.New("vendor not found")
	ErrInvalidVendorID       = errors.New("invalid vendor id")
	ErrInvalidVendorStatus   = errors.New("invalid vendor status")
	ErrVendorStatusUnchanged = errors.New("vendor already in requested status")
	ErrEmailTaken            = errors.New("email has been used")
	ErrPhoneNumberTaken      = errors.New("phone number has been used")
	ErrMissingVendorFields   = errors.New("missing required vendor fields")
)

// RegisterVendorInput is the onboarding payload. Personal fields belong
// to the owning account, business fields to the vendor profile.
type RegisterVendorInput struct {
	InviteToken string

	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Address     string

	BusinessName        string
	BusinessEmail       string
	BusinessPhoneNumber string
	OtherPhoneNumber    string
	BusinessAddress     string
	Category            string
}

// IVendorUseCase is the vendor onboarding manager: invited registration
// plus approval-state review.
type IVendorUseCase interface {
	Register(ctx context.Context, input RegisterVendorInput, uploads []entities.FileUpload) (entities.Vendor, error)
	ReviewStatus(ctx context.Context, vendorID string, status entities.VendorStatus) (entities.Vendor, error)
	GetByID(ctx context.Context, id string) (entities.Vendor, error)
	List(ctx context.Context) ([]entities.Vendor, error)
}

type VendorUseCase struct {
	repo     interfaces.IVendorRepository
	userRepo interfaces.IUserRepository
	invites  IInviteUseCase
	hasher   interfaces.IHasher
}

var _ IVendorUseCase = (*VendorUseCase)(nil)

func NewVendorUseCase(repo interfaces.IVendorRepository, userRepo interfaces.IUserRepository, invites IInviteUseCase, hasher interfaces.IHasher) *VendorUseCase {
	return &VendorUseCase{repo: repo, userRepo: userRepo, invites: invites, hasher: hasher}
}

// Register onboards a vendor through a valid invite.
//
// The account row, vendor row, and onboarding attachments are written in
// one store transaction; the invite is consumed only after that
// transaction succeeds, so a failed onboarding leaves the invite usable
// for retry.
func (u *VendorUseCase) Register(ctx context.Context, input RegisterVendorInput, uploads []entities.FileUpload) (entities.Vendor, error) {
	input = trimRegisterInput(input)
	if input.Email == "" || input.BusinessEmail == "" || input.BusinessName == "" ||
		input.PhoneNumber == "" || input.BusinessPhoneNumber == "" || input.LastName == "" {
		return entities.Vendor{}, ErrMissingVendorFields
	}

	if _, err := u.invites.Validate(ctx, input.InviteToken, input.BusinessEmail); err != nil {
		return entities.Vendor{}, err
	}

	// All uniqueness checks run before any write.
	if err := u.checkEmailTaken(ctx, input.Email, "email"); err != nil {
		return entities.Vendor{}, err
	}
	if err := u.checkEmailTaken(ctx, input.BusinessEmail, "business_email"); err != nil {
		return entities.Vendor{}, err
	}
	if err := u.checkPhoneNumberTaken(ctx, input.PhoneNumber, "phone_number"); err != nil {
		return entities.Vendor{}, err
	}
	if err := u.checkPhoneNumberTaken(ctx, input.BusinessPhoneNumber, "business_phone_number"); err != nil {
		return entities.Vendor{}, err
	}

	// Initial placeholder credential; the vendor resets it on first
	// login.
	passwordHash, err := u.hasher.Hash(input.LastName)
	if err != nil {
		return entities.Vendor{}, err
	}

	now := time.Now().UTC()
	user := entities.User{
		ID:           uuid.NewString(),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PhoneNumber:  input.PhoneNumber,
		Address:      input.Address,
		Role:         entities.UserRoleVendor,
		PasswordHash: passwordHash,
		CreatedAt:    now,
	}
	vendor := entities.Vendor{
		ID:               uuid.NewString(),
		UserID:           user.ID,
		BusinessName:     input.BusinessName,
		Category:         input.Category,
		Email:            input.BusinessEmail,
		PhoneNumber:      input.BusinessPhoneNumber,
		OtherPhoneNumber: input.OtherPhoneNumber,
		Address:          input.BusinessAddress,
		Status:           entities.VendorStatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	attachments := make([]entities.Attachment, 0, len(uploads))
	parent := entities.ParentRef{Kind: entities.ParentVendor, ID: vendor.ID}
	for _, f := range uploads {
		attachments = append(attachments, entities.Attachment{
			ID:        uuid.NewString(),
			Name:      f.Name,
			Size:      f.Size,
			MimeType:  f.MimeType,
			Bytes:     f.Bytes,
			Parent:    parent,
			CreatedAt: now,
		})
	}

	created, err := u.repo.CreateWithAccount(ctx, user, vendor, attachments)
	if err != nil {
		return entities.Vendor{}, err
	}

	if err := u.invites.Consume(ctx, input.BusinessEmail, input.InviteToken); err != nil {
		// The vendor exists; a dangling invite only permits a retry
		// that will fail the uniqueness checks.
		log.Printf("[vendor][usecase] invite consume failed email=%s err=%v", input.BusinessEmail, err)
	}

	return created, nil
}

// ReviewStatus moves a vendor between APPROVED, DECLINED, and
// DEACTIVATED. Any state may move to any other; only the no-op
// transition is rejected.
func (u *VendorUseCase) ReviewStatus(ctx context.Context, vendorID string, status entities.VendorStatus) (entities.Vendor, error) {
	vendorID = strings.TrimSpace(vendorID)
	if vendorID == "" {
		return entities.Vendor{}, ErrInvalidVendorID
	}
	if !entities.ValidVendorReviewStatus(status) {
		return entities.Vendor{}, ErrInvalidVendorStatus
	}

	vendor, err := u.repo.GetByID(ctx, vendorID)
	if err != nil {
		return entities.Vendor{}, err
	}
	if vendor.ID == "" {
		return entities.Vendor{}, ErrVendorNotFound
	}
	if vendor.Status == status {
		return entities.Vendor{}, ErrVendorStatusUnchanged
	}

	updated, err := u.repo.UpdateStatus(ctx, vendorID, status)
	if err != nil {
		return entities.Vendor{}, err
	}
	if updated.ID == "" {
		return entities.Vendor{}, ErrVendorNotFound
	}
	return updated, nil
}

func (u *VendorUseCase) GetByID(ctx context.Context, id string) (entities.Vendor, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Vendor{}, ErrInvalidVendorID
	}

	vendor, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Vendor{}, err
	}
	if vendor.ID == "" {
		return entities.Vendor{}, ErrVendorNotFound
	}
	return vendor, nil
}

func (u *VendorUseCase) List(ctx context.Context) ([]entities.Vendor, error) {
	return u.repo.List(ctx)
}

func (u *VendorUseCase) checkEmailTaken(ctx context.Context, email, field string) error {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user.ID != "" {
		return fmt.Errorf("%w: %s", ErrEmailTaken, field)
	}

	vendor, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if vendor.ID != "" {
		return fmt.Errorf("%w: %s", ErrEmailTaken, field)
	}
	return nil
}

func (u *VendorUseCase) checkPhoneNumberTaken(ctx context.Context, phoneNumber, field string) error {
	user, err := u.userRepo.GetByPhoneNumber(ctx, phoneNumber)
	if err != nil {
		return err
	}
	if user.ID != "" {
		return fmt.Errorf("%w: %s", ErrPhoneNumberTaken, field)
	}

	vendor, err := u.repo.GetByPhoneNumber(ctx, phoneNumber)
	if err != nil {
		return err
	}
	if vendor.ID != "" {
		return fmt.Errorf("%w: %s", ErrPhoneNumberTaken, field)
	}
	return nil
}

func trimRegisterInput(in RegisterVendorInput) RegisterVendorInput {
	in.InviteToken = strings.TrimSpace(in.InviteToken)
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.TrimSpace(in.Email)
	in.PhoneNumber = strings.TrimSpace(in.PhoneNumber)
	in.Address = strings.TrimSpace(in.Address)
	in.BusinessName = strings.TrimSpace(in.BusinessName)
	in.BusinessEmail = strings.TrimSpace(in.BusinessEmail)
	in.BusinessPhoneNumber = strings.TrimSpace(in.BusinessPhoneNumber)
	in.OtherPhoneNumber = strings.TrimSpace(in.OtherPhoneNumber)
	in.BusinessAddress = strings.TrimSpace(in.BusinessAddress)
	in.Category = strings.TrimSpace(in.Category)
	return in
}
