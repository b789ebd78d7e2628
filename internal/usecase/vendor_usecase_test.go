package usecase

import (
	"context"
	"errors"
	"testing"

	"zoracom_vms/internal/domain/entities"
	mock_interfaces "zoracom_vms/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validRegisterInput() RegisterVendorInput {
	return RegisterVendorInput{
		InviteToken:         "tok",
		FirstName:           "Ada",
		LastName:            "Obi",
		Email:               "ada@acme.com",
		PhoneNumber:         "0801",
		BusinessName:        "Acme Ltd",
		BusinessEmail:       "biz@acme.com",
		BusinessPhoneNumber: "0802",
		Category:            "networking",
	}
}

func TestVendorUseCase_Register(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		uc := NewVendorUseCase(nil, nil, nil, nil)
		input := validRegisterInput()
		input.BusinessEmail = "  "
		_, err := uc.Register(context.Background(), input, nil)
		if !errors.Is(err, ErrMissingVendorFields) {
			t.Fatalf("expected ErrMissingVendorFields, got %v", err)
		}
	})

	t.Run("invalid invite", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invites := mock_interfaces.NewMockIInviteUseCase(ctrl)
		uc := NewVendorUseCase(nil, nil, invites, nil)

		invites.EXPECT().Validate(gomock.Any(), "tok", "biz@acme.com").Return(entities.Invite{}, ErrInvalidInvite)

		_, err := uc.Register(context.Background(), validRegisterInput(), nil)
		if !errors.Is(err, ErrInvalidInvite) {
			t.Fatalf("expected ErrInvalidInvite, got %v", err)
		}
	})

	t.Run("personal email taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVendorRepository(ctrl)
		userRepo := mock_interfaces.NewMockIUserRepository(ctrl)
		invites := mock_interfaces.NewMockIInviteUseCase(ctrl)
		uc := NewVendorUseCase(repo, userRepo, invites, nil)

		invites.EXPECT().Validate(gomock.Any(), "tok", "biz@acme.com").Return(entities.Invite{ID: "i-1"}, nil)
		userRepo.EXPECT().GetByEmail(gomock.Any(), "ada@acme.com").Return(entities.User{ID: "u-1"}, nil)

		_, err := uc.Register(context.Background(), validRegisterInput(), nil)
		if !errors.Is(err, ErrEmailTaken) {
			t.Fatalf("expected ErrEmailTaken, got %v", err)
		}
	})

	t.Run("business phone taken by vendor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVendorRepository(ctrl)
		userRepo := mock_interfaces.NewMockIUserRepository(ctrl)
		invites := mock_interfaces.NewMockIInviteUseCase(ctrl)
		uc := NewVendorUseCase(repo, userRepo, invites, nil)

		invites.EXPECT().Validate(gomock.Any(), "tok", "biz@acme.com").Return(entities.Invite{ID: "i-1"}, nil)
		userRepo.EXPECT().GetByEmail(gomock.Any(), "ada@acme.com").Return(entities.User{}, nil)
		repo.EXPECT().GetByEmail(gomock.Any(), "ada@acme.com").Return(entities.Vendor{}, nil)
		userRepo.EXPECT().GetByEmail(gomock.Any(), "biz@acme.com").Return(entities.User{}, nil)
		repo.EXPECT().GetByEmail(gomock.Any(), "biz@acme.com").Return(entities.Vendor{}, nil)
		userRepo.EXPECT().GetByPhoneNumber(gomock.Any(), "0801").Return(entities.User{}, nil)
		repo.EXPECT().GetByPhoneNumber(gomock.Any(), "0801").Return(entities.Vendor{}, nil)
		userRepo.EXPECT().GetByPhoneNumber(gomock.Any(), "0802").Return(entities.User{}, nil)
		repo.EXPECT().GetByPhoneNumber(gomock.Any(), "0802").Return(entities.Vendor{ID: "v-9"}, nil)

		_, err := uc.Register(context.Background(), validRegisterInput(), nil)
		if !errors.Is(err, ErrPhoneNumberTaken) {
			t.Fatalf("expected ErrPhoneNumberTaken, got %v", err)
		}
	})

	t.Run("register success consumes invite", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVendorRepository(ctrl)
		userRepo := mock_interfaces.NewMockIUserRepository(ctrl)
		invites := mock_interfaces.NewMockIInviteUseCase(ctrl)
		hasher := mock_interfaces.NewMockIHasher(ctrl)
		uc := NewVendorUseCase(repo, userRepo, invites, hasher)

		invites.EXPECT().Validate(gomock.Any(), "tok", "biz@acme.com").Return(entities.Invite{ID: "i-1"}, nil)
		userRepo.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(entities.User{}, nil).Times(2)
		repo.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(entities.Vendor{}, nil).Times(2)
		userRepo.EXPECT().GetByPhoneNumber(gomock.Any(), gomock.Any()).Return(entities.User{}, nil).Times(2)
		repo.EXPECT().GetByPhoneNumber(gomock.Any(), gomock.Any()).Return(entities.Vendor{}, nil).Times(2)
		hasher.EXPECT().Hash("Obi").Return("hashed", nil)

		uploads := []entities.FileUpload{{Name: "cac.pdf", Size: 3, MimeType: "application/pdf", Bytes: []byte("pdf")}}
		repo.EXPECT().CreateWithAccount(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.User, v entities.Vendor, attachments []entities.Attachment) (entities.Vendor, error) {
				if u.Role != entities.UserRoleVendor || u.PasswordHash != "hashed" {
					t.Fatalf("unexpected user: %+v", u)
				}
				if v.UserID != u.ID || v.Status != entities.VendorStatusPending {
					t.Fatalf("unexpected vendor: %+v", v)
				}
				if v.Email != "biz@acme.com" || v.PhoneNumber != "0802" {
					t.Fatalf("expected business contact on vendor, got %+v", v)
				}
				if len(attachments) != 1 || attachments[0].Parent.Kind != entities.ParentVendor || attachments[0].Parent.ID != v.ID {
					t.Fatalf("unexpected attachments: %+v", attachments)
				}
				return v, nil
			})
		invites.EXPECT().Consume(gomock.Any(), "biz@acme.com", "tok").Return(nil)

		vendor, err := uc.Register(context.Background(), validRegisterInput(), uploads)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if vendor.ID == "" {
			t.Fatalf("expected minted vendor id")
		}
	})

	t.Run("consume failure does not fail register", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVendorRepository(ctrl)
		userRepo := mock_interfaces.NewMockIUserRepository(ctrl)
		invites := mock_interfaces.NewMockIInviteUseCase(ctrl)
		hasher := mock_interfaces.NewMockIHasher(ctrl)
		uc := NewVendorUseCase(repo, userRepo, invites, hasher)

		invites.EXPECT().Validate(gomock.Any(), "tok", "biz@acme.com").Return(entities.Invite{ID: "i-1"}, nil)
		userRepo.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(entities.User{}, nil).Times(2)
		repo.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(entities.Vendor{}, nil).Times(2)
		userRepo.EXPECT().GetByPhoneNumber(gomock.Any(), gomock.Any()).Return(entities.User{}, nil).Times(2)
		repo.EXPECT().GetByPhoneNumber(gomock.Any(), gomock.Any()).Return(entities.Vendor{}, nil).Times(2)
		hasher.EXPECT().Hash("Obi").Return("hashed", nil)
		repo.EXPECT().CreateWithAccount(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ entities.User, v entities.Vendor, _ []entities.Attachment) (entities.Vendor, error) {
				return v, nil
			})
		invites.EXPECT().Consume(gomock.Any(), "biz@acme.com", "tok").Return(errors.New("gone"))

		if _, err := uc.Register(context.Background(), validRegisterInput(), nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestVendorUseCase_ReviewStatus(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewVendorUseCase(nil, nil, nil, nil)
		_, err := uc.ReviewStatus(context.Background(), "  ", entities.VendorStatusApproved)
		if !errors.Is(err, ErrInvalidVendorID) {
			t.Fatalf("expected ErrInvalidVendorID, got %v", err)
		}
	})

	t.Run("pending is not a review status", func(t *testing.T) {
		uc := NewVendorUseCase(nil, nil, nil, nil)
		_, err := uc.ReviewStatus(context.Background(), "v-1", entities.VendorStatusPending)
		if !errors.Is(err, ErrInvalidVendorStatus) {
			t.Fatalf("expected ErrInvalidVendorStatus, got %v", err)
		}
	})

	t.Run("vendor not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVendorRepository(ctrl)
		uc := NewVendorUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "v-1").Return(entities.Vendor{}, nil)

		_, err := uc.ReviewStatus(context.Background(), "v-1", entities.VendorStatusApproved)
		if !errors.Is(err, ErrVendorNotFound) {
			t.Fatalf("expected ErrVendorNotFound, got %v", err)
		}
	})

	t.Run("no-op transition rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVendorRepository(ctrl)
		uc := NewVendorUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "v-1").Return(entities.Vendor{ID: "v-1", Status: entities.VendorStatusApproved}, nil)

		_, err := uc.ReviewStatus(context.Background(), "v-1", entities.VendorStatusApproved)
		if !errors.Is(err, ErrVendorStatusUnchanged) {
			t.Fatalf("expected ErrVendorStatusUnchanged, got %v", err)
		}
	})

	t.Run("declined to approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVendorRepository(ctrl)
		uc := NewVendorUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "v-1").Return(entities.Vendor{ID: "v-1", Status: entities.VendorStatusDeclined}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "v-1", entities.VendorStatusApproved).
			Return(entities.Vendor{ID: "v-1", Status: entities.VendorStatusApproved}, nil)

		vendor, err := uc.ReviewStatus(context.Background(), "v-1", entities.VendorStatusApproved)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if vendor.Status != entities.VendorStatusApproved {
			t.Fatalf("unexpected vendor: %+v", vendor)
		}
	})
}

func TestVendorUseCase_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVendorRepository(ctrl)
		uc := NewVendorUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Vendor{}, nil)

		_, err := uc.GetByID(context.Background(), "missing")
		if !errors.Is(err, ErrVendorNotFound) {
			t.Fatalf("expected ErrVendorNotFound, got %v", err)
		}
	})
}
