package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"zoracom_vms/internal/domain/entities"
	"zoracom_vms/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrListingNotFound        = errors.New("listing not found")
	ErrInvalidListingID       = errors.New("invalid listing id")
	ErrMissingListingFields   = errors.New("missing required listing fields")
	ErrInvalidListingStatus   = errors.New("invalid status")
	ErrListingNotAwarded      = errors.New("listing has not been awarded")
	ErrListingStatusUnchanged = errors.New("listing already in requested status")
	ErrListingStatusBackward  = errors.New("listing status cannot move backward")
	ErrListingTerminal        = errors.New("listing is in a terminal status")
	ErrListingStatusMoved     = errors.New("listing status changed concurrently")
)

// CreateListingInput carries the fields for a new listing.
type CreateListingInput struct {
	Name             string
	Description      string
	CategoryID       string
	AllowedVendorIDs []string
}

// UpdateListingInput carries a listing update. AllowedVendorIDs is a
// full replacement of the current set, never a merge: nil or empty
// clears the restriction and the listing becomes open to all vendors.
type UpdateListingInput struct {
	ID               string
	Name             string
	Description      string
	CategoryID       string
	AllowedVendorIDs []string
}

// IListingUseCase is the listing lifecycle manager: CRUD plus the
// status state machine. AWARDED is never set here; it is reached only
// through application review.
type IListingUseCase interface {
	Create(ctx context.Context, input CreateListingInput, uploads []entities.FileUpload) (entities.Listing, error)
	Update(ctx context.Context, input UpdateListingInput, uploads []entities.FileUpload) (entities.Listing, error)
	Delete(ctx context.Context, id string) error
	Advance(ctx context.Context, id string, target entities.ListingStatus) (entities.Listing, error)
	Deactivate(ctx context.Context, id string) (entities.Listing, error)
	GetByID(ctx context.Context, id string) (entities.Listing, error)
	List(ctx context.Context) ([]entities.Listing, error)
}

type ListingUseCase struct {
	repo         interfaces.IListingRepository
	categoryRepo interfaces.ICategoryRepository
	attachments  interfaces.IAttachmentRepository
}

var _ IListingUseCase = (*ListingUseCase)(nil)

func NewListingUseCase(repo interfaces.IListingRepository, categoryRepo interfaces.ICategoryRepository, attachments interfaces.IAttachmentRepository) *ListingUseCase {
	return &ListingUseCase{repo: repo, categoryRepo: categoryRepo, attachments: attachments}
}

func (u *ListingUseCase) Create(ctx context.Context, input CreateListingInput, uploads []entities.FileUpload) (entities.Listing, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Description = strings.TrimSpace(input.Description)
	input.CategoryID = strings.TrimSpace(input.CategoryID)
	if input.Name == "" || input.Description == "" || input.CategoryID == "" {
		return entities.Listing{}, ErrMissingListingFields
	}

	category, err := u.categoryRepo.GetByID(ctx, input.CategoryID)
	if err != nil {
		return entities.Listing{}, err
	}
	if category.ID == "" {
		return entities.Listing{}, ErrCategoryNotFound
	}

	now := time.Now().UTC()
	l := entities.Listing{
		ID:               uuid.NewString(),
		Name:             input.Name,
		Description:      input.Description,
		CategoryID:       input.CategoryID,
		Status:           entities.ListingStatusPending,
		AllowedVendorIDs: input.AllowedVendorIDs,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	created, err := u.repo.Create(ctx, l)
	if err != nil {
		return entities.Listing{}, err
	}

	if len(uploads) > 0 {
		parent := entities.ParentRef{Kind: entities.ParentListing, ID: created.ID}
		if _, err := u.attachments.Attach(ctx, parent, uploads); err != nil {
			return entities.Listing{}, err
		}
	}

	return created, nil
}

// Update rewrites a listing's mutable fields. Both the allowed-vendor
// set and the attachment set are full replacements: prior vendor links
// are dropped for whatever the input carries, and prior attachments are
// deleted before the new batch is stored, so calling update without
// attachments removes all existing ones.
func (u *ListingUseCase) Update(ctx context.Context, input UpdateListingInput, uploads []entities.FileUpload) (entities.Listing, error) {
	input.ID = strings.TrimSpace(input.ID)
	if input.ID == "" {
		return entities.Listing{}, ErrInvalidListingID
	}
	input.Name = strings.TrimSpace(input.Name)
	input.Description = strings.TrimSpace(input.Description)
	input.CategoryID = strings.TrimSpace(input.CategoryID)
	if input.Name == "" || input.Description == "" || input.CategoryID == "" {
		return entities.Listing{}, ErrMissingListingFields
	}

	existing, err := u.repo.GetByID(ctx, input.ID)
	if err != nil {
		return entities.Listing{}, err
	}
	if existing.ID == "" {
		return entities.Listing{}, ErrListingNotFound
	}

	category, err := u.categoryRepo.GetByID(ctx, input.CategoryID)
	if err != nil {
		return entities.Listing{}, err
	}
	if category.ID == "" {
		return entities.Listing{}, ErrCategoryNotFound
	}

	existing.Name = input.Name
	existing.Description = input.Description
	existing.CategoryID = input.CategoryID
	existing.AllowedVendorIDs = input.AllowedVendorIDs
	existing.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, existing)
	if err != nil {
		return entities.Listing{}, err
	}
	if updated.ID == "" {
		return entities.Listing{}, ErrListingNotFound
	}

	parent := entities.ParentRef{Kind: entities.ParentListing, ID: updated.ID}
	if _, err := u.attachments.Replace(ctx, parent, uploads); err != nil {
		return entities.Listing{}, err
	}

	return updated, nil
}

func (u *ListingUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidListingID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrListingNotFound
	}

	parent := entities.ParentRef{Kind: entities.ParentListing, ID: id}
	if err := u.attachments.DeleteByParent(ctx, parent); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}

// Advance moves a listing forward to ONGOING or DELIVERED. PENDING
// listings must go through the award workflow first; the status never
// moves backward and terminal listings never move at all. The write is
// a compare-and-swap against the status the caller observed.
func (u *ListingUseCase) Advance(ctx context.Context, id string, target entities.ListingStatus) (entities.Listing, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Listing{}, ErrInvalidListingID
	}
	if !entities.ValidAdvanceTarget(target) {
		return entities.Listing{}, ErrInvalidListingStatus
	}

	listing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Listing{}, err
	}
	if listing.ID == "" {
		return entities.Listing{}, ErrListingNotFound
	}

	switch {
	case listing.Status == entities.ListingStatusPending:
		return entities.Listing{}, ErrListingNotAwarded
	case listing.Status == entities.ListingStatusInactive:
		return entities.Listing{}, ErrListingTerminal
	case listing.Status == target:
		return entities.Listing{}, ErrListingStatusUnchanged
	case !entities.ListingStatusAdvances(listing.Status, target):
		return entities.Listing{}, ErrListingStatusBackward
	}

	updated, err := u.repo.UpdateStatusIf(ctx, id, listing.Status, target)
	if err != nil {
		return entities.Listing{}, err
	}
	if updated.ID == "" {
		return entities.Listing{}, ErrListingStatusMoved
	}
	return updated, nil
}

// Deactivate is the administrative override: any non-terminal listing
// moves to INACTIVE, terminally.
func (u *ListingUseCase) Deactivate(ctx context.Context, id string) (entities.Listing, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Listing{}, ErrInvalidListingID
	}

	listing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Listing{}, err
	}
	if listing.ID == "" {
		return entities.Listing{}, ErrListingNotFound
	}
	if listing.Status == entities.ListingStatusInactive {
		return entities.Listing{}, ErrListingStatusUnchanged
	}
	if listing.Status == entities.ListingStatusDelivered {
		return entities.Listing{}, ErrListingTerminal
	}

	updated, err := u.repo.UpdateStatusIf(ctx, id, listing.Status, entities.ListingStatusInactive)
	if err != nil {
		return entities.Listing{}, err
	}
	if updated.ID == "" {
		return entities.Listing{}, ErrListingStatusMoved
	}
	return updated, nil
}

func (u *ListingUseCase) GetByID(ctx context.Context, id string) (entities.Listing, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Listing{}, ErrInvalidListingID
	}

	l, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Listing{}, err
	}
	if l.ID == "" {
		return entities.Listing{}, ErrListingNotFound
	}
	return l, nil
}

func (u *ListingUseCase) List(ctx context.Context) ([]entities.Listing, error) {
	return u.repo.List(ctx)
}
