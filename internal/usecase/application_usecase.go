package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"zoracom_vms/internal/domain/entities"
	"zoracom_vms/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrApplicationNotFound    = errors.New("application not found")
	ErrInvalidApplicationID   = errors.New("invalid application id")
	ErrApplicationExists      = errors.New("vendor has already applied to this listing")
	ErrVendorNotAllowed       = errors.New("vendor is not allowed to apply to this listing")
	ErrInvalidReviewDecision  = errors.New("invalid review decision")
	ErrListingAlreadyAwarded  = errors.New("listing already awarded")
	ErrApplicationResolved    = errors.New("application already resolved")
	ErrApplicationNotAwarded  = errors.New("application has not been awarded")
	ErrListingInactive        = errors.New("listing is inactive")
	ErrApplicationDeactivated = errors.New("application already inactive")
)

// ReviewInput identifies the application under review and the outcome.
// DeliveryDate and Description are recorded on the award row for an
// AWARDED decision only.
type ReviewInput struct {
	ApplicationID string
	VendorID      string
	ListingID     string
	Decision      entities.ApplicationStatus
	DeliveryDate  *time.Time
	Description   string
}

// ReportInput is a delivery report filed by the contracted vendor.
type ReportInput struct {
	ListingID     string
	ApplicationID string
	VendorID      string
	Comment       string
}

// IApplicationUseCase is the application review engine: vendor bids,
// their award/decline resolution, and delivery reporting.
type IApplicationUseCase interface {
	Apply(ctx context.Context, listingID, vendorID, comment string, uploads []entities.FileUpload) (entities.Application, error)
	Review(ctx context.Context, input ReviewInput, uploads []entities.FileUpload) (entities.Application, error)
	Report(ctx context.Context, input ReportInput, uploads []entities.FileUpload) (entities.ListingReport, error)
	Deactivate(ctx context.Context, applicationID string) (entities.Application, error)
	ListByListingID(ctx context.Context, listingID string) ([]entities.Application, error)
}

type ApplicationUseCase struct {
	repo        interfaces.IApplicationRepository
	listingRepo interfaces.IListingRepository
	vendorRepo  interfaces.IVendorRepository
	reportRepo  interfaces.IListingReportRepository
	attachments interfaces.IAttachmentRepository
	mailer      interfaces.IMailer
}

var _ IApplicationUseCase = (*ApplicationUseCase)(nil)

func NewApplicationUseCase(
	repo interfaces.IApplicationRepository,
	listingRepo interfaces.IListingRepository,
	vendorRepo interfaces.IVendorRepository,
	reportRepo interfaces.IListingReportRepository,
	attachments interfaces.IAttachmentRepository,
	mailer interfaces.IMailer,
) *ApplicationUseCase {
	return &ApplicationUseCase{
		repo:        repo,
		listingRepo: listingRepo,
		vendorRepo:  vendorRepo,
		reportRepo:  reportRepo,
		attachments: attachments,
		mailer:      mailer,
	}
}

// Apply files a vendor's bid against a listing. A vendor may apply to a
// given listing at most once, ever: a prior decline does not reopen
// the door. Uniqueness rides on the store's conditional put, so two
// concurrent applies resolve to exactly one application.
func (u *ApplicationUseCase) Apply(ctx context.Context, listingID, vendorID, comment string, uploads []entities.FileUpload) (entities.Application, error) {
	listingID = strings.TrimSpace(listingID)
	vendorID = strings.TrimSpace(vendorID)
	if listingID == "" {
		return entities.Application{}, ErrInvalidListingID
	}
	if vendorID == "" {
		return entities.Application{}, ErrInvalidVendorID
	}

	listing, err := u.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return entities.Application{}, err
	}
	if listing.ID == "" {
		return entities.Application{}, ErrListingNotFound
	}

	// An empty allowed set means the listing is open to all vendors.
	if !listing.VendorAllowed(vendorID) {
		return entities.Application{}, ErrVendorNotAllowed
	}

	now := time.Now().UTC()
	a := entities.Application{
		ID:        uuid.NewString(),
		ListingID: listingID,
		VendorID:  vendorID,
		Comment:   strings.TrimSpace(comment),
		Status:    entities.ApplicationStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := u.repo.Create(ctx, a)
	if err != nil {
		return entities.Application{}, err
	}
	if created.ID == "" {
		return entities.Application{}, ErrApplicationExists
	}

	if len(uploads) > 0 {
		parent := entities.ParentRef{Kind: entities.ParentApplication, ID: created.ID}
		if _, err := u.attachments.Attach(ctx, parent, uploads); err != nil {
			return entities.Application{}, err
		}
	}

	return created, nil
}

// Review resolves a pending application. A DECLINED decision touches
// only the application. An AWARDED decision writes the application, the
// listing, and the single AwardedListing row in one store transaction
// guarded on the listing not being awarded yet, so concurrent reviewers
// produce exactly one winner; the losers see ErrListingAlreadyAwarded.
func (u *ApplicationUseCase) Review(ctx context.Context, input ReviewInput, uploads []entities.FileUpload) (entities.Application, error) {
	input.ApplicationID = strings.TrimSpace(input.ApplicationID)
	input.VendorID = strings.TrimSpace(input.VendorID)
	input.ListingID = strings.TrimSpace(input.ListingID)
	if input.ApplicationID == "" {
		return entities.Application{}, ErrInvalidApplicationID
	}
	if !entities.ValidReviewDecision(input.Decision) {
		return entities.Application{}, ErrInvalidReviewDecision
	}

	app, err := u.repo.GetByIDAndVendor(ctx, input.ApplicationID, input.VendorID)
	if err != nil {
		return entities.Application{}, err
	}
	if app.ID == "" || app.ListingID != input.ListingID {
		return entities.Application{}, ErrApplicationNotFound
	}

	listing, err := u.listingRepo.GetByID(ctx, input.ListingID)
	if err != nil {
		return entities.Application{}, err
	}
	if listing.ID == "" {
		return entities.Application{}, ErrListingNotFound
	}

	// A listing is awarded at most once; this error is terminal for the
	// caller, not retryable.
	if listing.Status == entities.ListingStatusAwarded {
		return entities.Application{}, ErrListingAlreadyAwarded
	}

	if input.Decision == entities.ApplicationStatusDeclined {
		updated, err := u.repo.UpdateStatusIf(ctx, app.ListingID, app.VendorID,
			entities.ApplicationStatusPending, entities.ApplicationStatusDeclined)
		if err != nil {
			return entities.Application{}, err
		}
		if updated.ID == "" {
			return entities.Application{}, ErrApplicationResolved
		}

		u.notifyVendor(ctx, app.VendorID, applicationDeclinedSubject, applicationDeclinedHTML(listing.Name))
		return updated, nil
	}

	award := entities.AwardedListing{
		ID:            uuid.NewString(),
		ListingID:     app.ListingID,
		ApplicationID: app.ID,
		VendorID:      app.VendorID,
		DeliveryDate:  input.DeliveryDate,
		Description:   strings.TrimSpace(input.Description),
		CreatedAt:     time.Now().UTC(),
	}
	won, err := u.repo.Award(ctx, app, award)
	if err != nil {
		return entities.Application{}, err
	}
	if !won {
		return entities.Application{}, ErrListingAlreadyAwarded
	}

	// Award documents belong to the award record, not the application.
	if len(uploads) > 0 {
		parent := entities.ParentRef{Kind: entities.ParentAwardedListing, ID: award.ID}
		if _, err := u.attachments.Attach(ctx, parent, uploads); err != nil {
			return entities.Application{}, err
		}
	}

	u.notifyVendor(ctx, app.VendorID, applicationAwardedSubject, applicationAwardedHTML(listing.Name))

	app.Status = entities.ApplicationStatusAwarded
	return app, nil
}

// Report files a delivery report. Only the vendor holding the AWARDED
// application may report, and never against an inactive listing.
func (u *ApplicationUseCase) Report(ctx context.Context, input ReportInput, uploads []entities.FileUpload) (entities.ListingReport, error) {
	input.ListingID = strings.TrimSpace(input.ListingID)
	input.ApplicationID = strings.TrimSpace(input.ApplicationID)
	input.VendorID = strings.TrimSpace(input.VendorID)
	if input.ListingID == "" {
		return entities.ListingReport{}, ErrInvalidListingID
	}
	if input.ApplicationID == "" {
		return entities.ListingReport{}, ErrInvalidApplicationID
	}

	listing, err := u.listingRepo.GetByID(ctx, input.ListingID)
	if err != nil {
		return entities.ListingReport{}, err
	}
	if listing.ID == "" {
		return entities.ListingReport{}, ErrListingNotFound
	}
	if listing.Status == entities.ListingStatusInactive {
		return entities.ListingReport{}, ErrListingInactive
	}

	app, err := u.repo.GetByID(ctx, input.ApplicationID)
	if err != nil {
		return entities.ListingReport{}, err
	}
	if app.ID == "" || app.ListingID != input.ListingID || app.VendorID != input.VendorID {
		return entities.ListingReport{}, ErrApplicationNotFound
	}
	if app.Status != entities.ApplicationStatusAwarded {
		return entities.ListingReport{}, ErrApplicationNotAwarded
	}

	r := entities.ListingReport{
		ID:            uuid.NewString(),
		ListingID:     input.ListingID,
		ApplicationID: input.ApplicationID,
		VendorID:      input.VendorID,
		Comment:       strings.TrimSpace(input.Comment),
		CreatedAt:     time.Now().UTC(),
	}
	created, err := u.reportRepo.Create(ctx, r)
	if err != nil {
		return entities.ListingReport{}, err
	}

	if len(uploads) > 0 {
		parent := entities.ParentRef{Kind: entities.ParentListingReport, ID: created.ID}
		if _, err := u.attachments.Attach(ctx, parent, uploads); err != nil {
			return entities.ListingReport{}, err
		}
	}

	return created, nil
}

// Deactivate is the administrative override moving an application to
// INACTIVE, terminally.
func (u *ApplicationUseCase) Deactivate(ctx context.Context, applicationID string) (entities.Application, error) {
	applicationID = strings.TrimSpace(applicationID)
	if applicationID == "" {
		return entities.Application{}, ErrInvalidApplicationID
	}

	app, err := u.repo.GetByID(ctx, applicationID)
	if err != nil {
		return entities.Application{}, err
	}
	if app.ID == "" {
		return entities.Application{}, ErrApplicationNotFound
	}
	if app.Status == entities.ApplicationStatusInactive {
		return entities.Application{}, ErrApplicationDeactivated
	}

	updated, err := u.repo.UpdateStatusIf(ctx, app.ListingID, app.VendorID, app.Status, entities.ApplicationStatusInactive)
	if err != nil {
		return entities.Application{}, err
	}
	if updated.ID == "" {
		return entities.Application{}, ErrApplicationDeactivated
	}
	return updated, nil
}

func (u *ApplicationUseCase) ListByListingID(ctx context.Context, listingID string) ([]entities.Application, error) {
	listingID = strings.TrimSpace(listingID)
	if listingID == "" {
		return nil, ErrInvalidListingID
	}
	return u.repo.ListByListingID(ctx, listingID)
}

// notifyVendor sends a review outcome mail. Best effort: failures are
// logged and the workflow result stands.
func (u *ApplicationUseCase) notifyVendor(ctx context.Context, vendorID, subject, body string) {
	vendor, err := u.vendorRepo.GetByID(ctx, vendorID)
	if err != nil || vendor.ID == "" {
		log.Printf("[application][usecase] vendor lookup for notification failed vendor_id=%s err=%v", vendorID, err)
		return
	}
	if err := u.mailer.Send(ctx, vendor.Email, subject, body); err != nil {
		log.Printf("[application][usecase] notification mail failed vendor_id=%s err=%v", vendorID, err)
	}
}
