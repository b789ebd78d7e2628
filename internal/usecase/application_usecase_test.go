package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"zoracom_vms/internal/domain/entities"
	mock_interfaces "zoracom_vms/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type applicationMocks struct {
	repo        *mock_interfaces.MockIApplicationRepository
	listingRepo *mock_interfaces.MockIListingRepository
	vendorRepo  *mock_interfaces.MockIVendorRepository
	reportRepo  *mock_interfaces.MockIListingReportRepository
	attachments *mock_interfaces.MockIAttachmentRepository
	mailer      *mock_interfaces.MockIMailer
}

func newApplicationUseCaseWithMocks(ctrl *gomock.Controller) (*ApplicationUseCase, applicationMocks) {
	m := applicationMocks{
		repo:        mock_interfaces.NewMockIApplicationRepository(ctrl),
		listingRepo: mock_interfaces.NewMockIListingRepository(ctrl),
		vendorRepo:  mock_interfaces.NewMockIVendorRepository(ctrl),
		reportRepo:  mock_interfaces.NewMockIListingReportRepository(ctrl),
		attachments: mock_interfaces.NewMockIAttachmentRepository(ctrl),
		mailer:      mock_interfaces.NewMockIMailer(ctrl),
	}
	uc := NewApplicationUseCase(m.repo, m.listingRepo, m.vendorRepo, m.reportRepo, m.attachments, m.mailer)
	return uc, m
}

func TestApplicationUseCase_Apply(t *testing.T) {
	t.Run("listing not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newApplicationUseCaseWithMocks(ctrl)

		m.listingRepo.EXPECT().GetByID(gomock.Any(), "l-1").Return(entities.Listing{}, nil)

		_, err := uc.Apply(context.Background(), "l-1", "v-1", "", nil)
		if !errors.Is(err, ErrListingNotFound) {
			t.Fatalf("expected ErrListingNotFound, got %v", err)
		}
	})

	t.Run("vendor not on allowed list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newApplicationUseCaseWithMocks(ctrl)

		m.listingRepo.EXPECT().GetByID(gomock.Any(), "l-1").Return(entities.Listing{
			ID: "l-1", Status: entities.ListingStatusPending, AllowedVendorIDs: []string{"v-2"},
		}, nil)

		_, err := uc.Apply(context.Background(), "l-1", "v-1", "", nil)
		if !errors.Is(err, ErrVendorNotAllowed) {
			t.Fatalf("expected ErrVendorNotAllowed, got %v", err)
		}
	})

	t.Run("open listing accepts any vendor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newApplicationUseCaseWithMocks(ctrl)

		m.listingRepo.EXPECT().GetByID(gomock.Any(), "l-1").Return(entities.Listing{
			ID: "l-1", Status: entities.ListingStatusPending,
		}, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.Application) (entities.Application, error) {
				if a.Status != entities.ApplicationStatusPending || a.Comment != "we can do it" {
					t.Fatalf("unexpected application: %+v", a)
				}
				return a, nil
			})

		app, err := uc.Apply(context.Background(), "l-1", "v-1", " we can do it ", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if app.ListingID != "l-1" || app.VendorID != "v-1" {
			t.Fatalf("unexpected application: %+v", app)
		}
	})

	t.Run("duplicate application", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newApplicationUseCaseWithMocks(ctrl)

		m.listingRepo.EXPECT().GetByID(gomock.Any(), "l-1").Return(entities.Listing{ID: "l-1"}, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Application{}, nil)

		_, err := uc.Apply(context.Background(), "l-1", "v-1", "", nil)
		if !errors.Is(err, ErrApplicationExists) {
			t.Fatalf("expected ErrApplicationExists, got %v", err)
		}
	})

	t.Run("uploads attach to application", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newApplicationUseCaseWithMocks(ctrl)

		m.listingRepo.EXPECT().GetByID(gomock.Any(), "l-1").Return(entities.Listing{ID: "l-1"}, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.Application) (entities.Application, error) { return a, nil })
		m.attachments.EXPECT().Attach(gomock.Any(), gomock.Any(), gomock.Len(1)).DoAndReturn(
			func(_ context.Context, parent entities.ParentRef, _ []entities.FileUpload) ([]entities.Attachment, error) {
				if parent.Kind != entities.ParentApplication {
					t.Fatalf("unexpected parent: %+v", parent)
				}
				return nil, nil
			})

		uploads := []entities.FileUpload{{Name: "bid.pdf", Bytes: []byte("doc")}}
		if _, err := uc.Apply(context.Background(), "l-1", "v-1", "", uploads); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestApplicationUseCase_Review(t *testing.T) {
	pendingApp := entities.Application{
		ID: "a-1", ListingID: "l-1", VendorID: "v-1",
		Status: entities.ApplicationStatusPending,
	}
	reviewInput := func(decision entities.ApplicationStatus) ReviewInput {
		return ReviewInput{ApplicationID: "a-1", VendorID: "v-1", ListingID: "l-1", Decision: decision}
	}

	t.Run("invalid decision", func(t *testing.T) {
		uc, _ := newApplicationUseCaseWithMocks(gomock.NewController(t))
		_, err := uc.Review(context.Background(), reviewInput(entities.ApplicationStatusPending), nil)
		if !errors.Is(err, ErrInvalidReviewDecision) {
			t.Fatalf("expected ErrInvalidReviewDecision, got %v", err)
		}
	})

	t.Run("application listing mismatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newApplicationUseCaseWithMocks(ctrl)

		other := pendingApp
		other.ListingID = "l-9"
		m.repo.EXPECT().GetByIDAndVendor(gomock.Any(), "a-1", "v-1").Return(other, nil)

		_, err := uc.Review(context.Background(), reviewInput(entities.ApplicationStatusAwarded), nil)
		if !errors.Is(err, ErrApplicationNotFound) {
			t.Fatalf("expected ErrApplicationNotFound, got %v", err)
		}
	})

	t.Run("listing already awarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newApplicationUseCaseWithMocks(ctrl)

		m.repo.EXPECT().GetByIDAndVendor(gomock.Any(), "a-1", "v-1").Return(pendingApp, nil)
		m.listingRepo.EXPECT().GetByID(gomock.Any(), "l-1").Return(entities.Listing{
			ID: "l-1", Status: entities.ListingStatusAwarded,
		}, nil)

		_, err := uc.Review(context.Background(), reviewInput(entities.ApplicationStatusAwarded), nil)
		if !errors.Is(err, ErrListingAlreadyAwarded) {
			t.Fatalf("expected ErrListingAlreadyAwarded, got %v", err)
		}
	})

	t.Run("decline resolved application", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newApplicationUseCaseWithMocks(ctrl)

		m.repo.EXPECT().GetByIDAndVendor(gomock.Any(), "a-1", "v-1").Return(pendingApp, nil)
		m.listingRepo.EXPECT().GetByID(gomock.Any(), "l-1").Return(entities.Listing{
			ID: "l-1", Status: entities.ListingStatusPending,
		}, nil)
		m.repo.EXPECT().UpdateStatusIf(gomock.Any(), "l-1", "v-1",
			entities.ApplicationStatusPending, entities.ApplicationStatusDeclined).
			Return(entities.Application{}, nil)

		_, err := uc.Review(context.Background(), reviewInput(entities.ApplicationStatusDeclined), nil)
		if !errors.Is(err, ErrApplicationResolved) {
			t.Fatalf("expected ErrApplicationResolved, got %v", err)
		}
	})

	t.Run("decline success notifies vendor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newApplicationUseCaseWithMocks(ctrl)

		declined := pendingApp
		declined.Status = entities.ApplicationStatusDeclined
		m.repo.EXPECT().GetByIDAndVendor(gomock.Any(), "a-1", "v-1").Return(pendingApp, nil)
		m.listingRepo.EXPECT().GetByID(gomock.Any(), "l-1").Return(entities.Listing{
			ID: "l-1", Name: "Fibre run", Status: entities.ListingStatusPending,
		}, nil)
		m.repo.EXPECT().UpdateStatusIf(gomock.Any(), "l-1", "v-1",
			entities.ApplicationStatusPending, entities.ApplicationStatusDeclined).
			Return(declined, nil)
		m.vendorRepo.EXPECT().GetByID(gomock.Any(), "v-1").Return(entities.Vendor{ID: "v-1", Email: "biz@acme.com"}, nil)
		m.mailer.EXPECT().Send(gomock.Any(), "biz@acme.com", gomock.Any(), gomock.Any()).Return(nil)

		app, err := uc.Review(context.Background(), reviewInput(entities.ApplicationStatusDeclined), nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if app.Status != entities.ApplicationStatusDeclined {
			t.Fatalf("unexpected application: %+v", app)
		}
	})

	t.Run("award race loser", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newApplicationUseCaseWithMocks(ctrl)

		m.repo.EXPECT().GetByIDAndVendor(gomock.Any(), "a-1", "v-1").Return(pendingApp, nil)
		m.listingRepo.EXPECT().GetByID(gomock.Any(), "l-1").Return(entities.Listing{
			ID: "l-1", Status: entities.ListingStatusPending,
		}, nil)
		m.repo.EXPECT().Award(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := uc.Review(context.Background(), reviewInput(entities.ApplicationStatusAwarded), nil)
		if !errors.Is(err, ErrListingAlreadyAwarded) {
			t.Fatalf("expected ErrListingAlreadyAwarded, got %v", err)
		}
	})

	t.Run("award success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newApplicationUseCaseWithMocks(ctrl)

		date := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
		input := reviewInput(entities.ApplicationStatusAwarded)
		input.DeliveryDate = &date
		input.Description = "phase one"

		m.repo.EXPECT().GetByIDAndVendor(gomock.Any(), "a-1", "v-1").Return(pendingApp, nil)
		m.listingRepo.EXPECT().GetByID(gomock.Any(), "l-1").Return(entities.Listing{
			ID: "l-1", Name: "Fibre run", Status: entities.ListingStatusPending,
		}, nil)

		var awardID string
		m.repo.EXPECT().Award(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.Application, award entities.AwardedListing) (bool, error) {
				if award.ListingID != "l-1" || award.ApplicationID != "a-1" || award.VendorID != "v-1" {
					t.Fatalf("unexpected award: %+v", award)
				}
				if award.DeliveryDate == nil || !award.DeliveryDate.Equal(date) {
					t.Fatalf("unexpected delivery date: %+v", award.DeliveryDate)
				}
				awardID = award.ID
				return true, nil
			})
		m.attachments.EXPECT().Attach(gomock.Any(), gomock.Any(), gomock.Len(1)).DoAndReturn(
			func(_ context.Context, parent entities.ParentRef, _ []entities.FileUpload) ([]entities.Attachment, error) {
				if parent.Kind != entities.ParentAwardedListing || parent.ID != awardID {
					t.Fatalf("expected contract docs on the award record, got %+v", parent)
				}
				return nil, nil
			})
		m.vendorRepo.EXPECT().GetByID(gomock.Any(), "v-1").Return(entities.Vendor{ID: "v-1", Email: "biz@acme.com"}, nil)
		m.mailer.EXPECT().Send(gomock.Any(), "biz@acme.com", gomock.Any(), gomock.Any()).Return(nil)

		uploads := []entities.FileUpload{{Name: "contract.pdf", Bytes: []byte("doc")}}
		app, err := uc.Review(context.Background(), input, uploads)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if app.Status != entities.ApplicationStatusAwarded {
			t.Fatalf("unexpected application: %+v", app)
		}
	})

	t.Run("notification failure does not fail award", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newApplicationUseCaseWithMocks(ctrl)

		m.repo.EXPECT().GetByIDAndVendor(gomock.Any(), "a-1", "v-1").Return(pendingApp, nil)
		m.listingRepo.EXPECT().GetByID(gomock.Any(), "l-1").Return(entities.Listing{
			ID: "l-1", Status: entities.ListingStatusPending,
		}, nil)
		m.repo.EXPECT().Award(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		m.vendorRepo.EXPECT().GetByID(gomock.Any(), "v-1").Return(entities.Vendor{ID: "v-1", Email: "biz@acme.com"}, nil)
		m.mailer.EXPECT().Send(gomock.Any(), "biz@acme.com", gomock.Any(), gomock.Any()).Return(errors.New("ses down"))

		if _, err := uc.Review(context.Background(), reviewInput(entities.ApplicationStatusAwarded), nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestApplicationUseCase_Report(t *testing.T) {
	awarded := entities.Application{
		ID: "a-1", ListingID: "l-1", VendorID: "v-1",
		Status: entities.ApplicationStatusAwarded,
	}
	input := ReportInput{ListingID: "l-1", ApplicationID: "a-1", VendorID: "v-1", Comment: "laid 2km"}

	t.Run("inactive listing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newApplicationUseCaseWithMocks(ctrl)

		m.listingRepo.EXPECT().GetByID(gomock.Any(), "l-1").Return(entities.Listing{
			ID: "l-1", Status: entities.ListingStatusInactive,
		}, nil)

		_, err := uc.Report(context.Background(), input, nil)
		if !errors.Is(err, ErrListingInactive) {
			t.Fatalf("expected ErrListingInactive, got %v", err)
		}
	})

	t.Run("wrong vendor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newApplicationUseCaseWithMocks(ctrl)

		m.listingRepo.EXPECT().GetByID(gomock.Any(), "l-1").Return(entities.Listing{
			ID: "l-1", Status: entities.ListingStatusOngoing,
		}, nil)
		other := awarded
		other.VendorID = "v-2"
		m.repo.EXPECT().GetByID(gomock.Any(), "a-1").Return(other, nil)

		_, err := uc.Report(context.Background(), input, nil)
		if !errors.Is(err, ErrApplicationNotFound) {
			t.Fatalf("expected ErrApplicationNotFound, got %v", err)
		}
	})

	t.Run("application not awarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newApplicationUseCaseWithMocks(ctrl)

		m.listingRepo.EXPECT().GetByID(gomock.Any(), "l-1").Return(entities.Listing{
			ID: "l-1", Status: entities.ListingStatusOngoing,
		}, nil)
		pending := awarded
		pending.Status = entities.ApplicationStatusPending
		m.repo.EXPECT().GetByID(gomock.Any(), "a-1").Return(pending, nil)

		_, err := uc.Report(context.Background(), input, nil)
		if !errors.Is(err, ErrApplicationNotAwarded) {
			t.Fatalf("expected ErrApplicationNotAwarded, got %v", err)
		}
	})

	t.Run("report with uploads", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newApplicationUseCaseWithMocks(ctrl)

		m.listingRepo.EXPECT().GetByID(gomock.Any(), "l-1").Return(entities.Listing{
			ID: "l-1", Status: entities.ListingStatusOngoing,
		}, nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "a-1").Return(awarded, nil)
		m.reportRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.ListingReport) (entities.ListingReport, error) {
				if r.ID == "" || r.Comment != "laid 2km" {
					t.Fatalf("unexpected report: %+v", r)
				}
				return r, nil
			})
		m.attachments.EXPECT().Attach(gomock.Any(), gomock.Any(), gomock.Len(1)).DoAndReturn(
			func(_ context.Context, parent entities.ParentRef, _ []entities.FileUpload) ([]entities.Attachment, error) {
				if parent.Kind != entities.ParentListingReport {
					t.Fatalf("unexpected parent: %+v", parent)
				}
				return nil, nil
			})

		uploads := []entities.FileUpload{{Name: "photos.zip", Bytes: []byte("zip")}}
		report, err := uc.Report(context.Background(), input, uploads)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.ListingID != "l-1" || report.VendorID != "v-1" {
			t.Fatalf("unexpected report: %+v", report)
		}
	})
}

func TestApplicationUseCase_Deactivate(t *testing.T) {
	t.Run("already inactive", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newApplicationUseCaseWithMocks(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "a-1").Return(entities.Application{
			ID: "a-1", Status: entities.ApplicationStatusInactive,
		}, nil)

		_, err := uc.Deactivate(context.Background(), "a-1")
		if !errors.Is(err, ErrApplicationDeactivated) {
			t.Fatalf("expected ErrApplicationDeactivated, got %v", err)
		}
	})

	t.Run("deactivate pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newApplicationUseCaseWithMocks(ctrl)

		app := entities.Application{ID: "a-1", ListingID: "l-1", VendorID: "v-1", Status: entities.ApplicationStatusPending}
		m.repo.EXPECT().GetByID(gomock.Any(), "a-1").Return(app, nil)
		inactive := app
		inactive.Status = entities.ApplicationStatusInactive
		m.repo.EXPECT().UpdateStatusIf(gomock.Any(), "l-1", "v-1",
			entities.ApplicationStatusPending, entities.ApplicationStatusInactive).
			Return(inactive, nil)

		updated, err := uc.Deactivate(context.Background(), "a-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.ApplicationStatusInactive {
			t.Fatalf("unexpected application: %+v", updated)
		}
	})
}
