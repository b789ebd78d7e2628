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

func TestInviteUseCase_Issue(t *testing.T) {
	t.Run("invalid email", func(t *testing.T) {
		uc := NewInviteUseCase(nil, nil, nil, "http://client")
		_, err := uc.Issue(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidInviteEmail) {
			t.Fatalf("expected ErrInvalidInviteEmail, got %v", err)
		}
	})

	t.Run("vendor already exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInviteRepository(ctrl)
		vendorRepo := mock_interfaces.NewMockIVendorRepository(ctrl)
		uc := NewInviteUseCase(repo, vendorRepo, nil, "http://client")

		vendorRepo.EXPECT().GetByEmail(gomock.Any(), "taken@acme.com").Return(entities.Vendor{ID: "v-1"}, nil)

		_, err := uc.Issue(context.Background(), "taken@acme.com")
		if !errors.Is(err, ErrInviteeAlreadyVendor) {
			t.Fatalf("expected ErrInviteeAlreadyVendor, got %v", err)
		}
	})

	t.Run("issue success sends mail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInviteRepository(ctrl)
		vendorRepo := mock_interfaces.NewMockIVendorRepository(ctrl)
		mailer := mock_interfaces.NewMockIMailer(ctrl)
		uc := NewInviteUseCase(repo, vendorRepo, mailer, "http://client/")

		vendorRepo.EXPECT().GetByEmail(gomock.Any(), "new@acme.com").Return(entities.Vendor{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inv entities.Invite) (entities.Invite, error) {
				if inv.ID == "" || inv.InviteToken == "" {
					t.Fatalf("expected minted id and token, got %+v", inv)
				}
				if !inv.Valid {
					t.Fatalf("expected new invite to be valid")
				}
				ttl := time.Until(inv.ExpiresAt)
				if ttl < 47*time.Hour || ttl > 49*time.Hour {
					t.Fatalf("expected two day expiry, got %v", ttl)
				}
				return inv, nil
			})
		mailer.EXPECT().Send(gomock.Any(), "new@acme.com", gomock.Any(), gomock.Any()).Return(nil)

		inv, err := uc.Issue(context.Background(), "new@acme.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.Email != "new@acme.com" {
			t.Fatalf("unexpected invite: %+v", inv)
		}
	})

	t.Run("mail failure does not fail issue", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInviteRepository(ctrl)
		vendorRepo := mock_interfaces.NewMockIVendorRepository(ctrl)
		mailer := mock_interfaces.NewMockIMailer(ctrl)
		uc := NewInviteUseCase(repo, vendorRepo, mailer, "http://client")

		vendorRepo.EXPECT().GetByEmail(gomock.Any(), "new@acme.com").Return(entities.Vendor{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inv entities.Invite) (entities.Invite, error) { return inv, nil })
		mailer.EXPECT().Send(gomock.Any(), "new@acme.com", gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

		if _, err := uc.Issue(context.Background(), "new@acme.com"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestInviteUseCase_Validate(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		uc := NewInviteUseCase(nil, nil, nil, "http://client")
		_, err := uc.Validate(context.Background(), "", "a@b.com")
		if !errors.Is(err, ErrInvalidInvite) {
			t.Fatalf("expected ErrInvalidInvite, got %v", err)
		}
	})

	t.Run("unknown token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInviteRepository(ctrl)
		uc := NewInviteUseCase(repo, nil, nil, "http://client")

		repo.EXPECT().GetByToken(gomock.Any(), "tok").Return(entities.Invite{}, nil)

		_, err := uc.Validate(context.Background(), "tok", "a@b.com")
		if !errors.Is(err, ErrInvalidInvite) {
			t.Fatalf("expected ErrInvalidInvite, got %v", err)
		}
	})

	t.Run("email mismatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInviteRepository(ctrl)
		uc := NewInviteUseCase(repo, nil, nil, "http://client")

		repo.EXPECT().GetByToken(gomock.Any(), "tok").Return(entities.Invite{
			ID: "i-1", Email: "someone@acme.com", InviteToken: "tok",
			ExpiresAt: time.Now().Add(time.Hour), Valid: true,
		}, nil)

		_, err := uc.Validate(context.Background(), "tok", "else@acme.com")
		if !errors.Is(err, ErrInvalidInvite) {
			t.Fatalf("expected ErrInvalidInvite, got %v", err)
		}
	})

	t.Run("expired invite is invalidated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInviteRepository(ctrl)
		uc := NewInviteUseCase(repo, nil, nil, "http://client")

		repo.EXPECT().GetByToken(gomock.Any(), "tok").Return(entities.Invite{
			ID: "i-1", Email: "a@b.com", InviteToken: "tok",
			ExpiresAt: time.Now().Add(-time.Minute), Valid: true,
		}, nil)
		repo.EXPECT().Invalidate(gomock.Any(), "tok").Return(nil)

		_, err := uc.Validate(context.Background(), "tok", "a@b.com")
		if !errors.Is(err, ErrInvalidInvite) {
			t.Fatalf("expected ErrInvalidInvite, got %v", err)
		}
	})

	t.Run("already consumed invite", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInviteRepository(ctrl)
		uc := NewInviteUseCase(repo, nil, nil, "http://client")

		repo.EXPECT().GetByToken(gomock.Any(), "tok").Return(entities.Invite{
			ID: "i-1", Email: "a@b.com", InviteToken: "tok",
			ExpiresAt: time.Now().Add(time.Hour), Valid: false,
		}, nil)

		_, err := uc.Validate(context.Background(), "tok", "a@b.com")
		if !errors.Is(err, ErrInvalidInvite) {
			t.Fatalf("expected ErrInvalidInvite, got %v", err)
		}
	})

	t.Run("valid invite", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInviteRepository(ctrl)
		uc := NewInviteUseCase(repo, nil, nil, "http://client")

		repo.EXPECT().GetByToken(gomock.Any(), "tok").Return(entities.Invite{
			ID: "i-1", Email: "a@b.com", InviteToken: "tok",
			ExpiresAt: time.Now().Add(time.Hour), Valid: true,
		}, nil)

		inv, err := uc.Validate(context.Background(), "tok", "a@b.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.ID != "i-1" {
			t.Fatalf("unexpected invite: %+v", inv)
		}
	})
}

func TestInviteUseCase_Consume(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIInviteRepository(ctrl)
	uc := NewInviteUseCase(repo, nil, nil, "http://client")

	repo.EXPECT().Delete(gomock.Any(), "a@b.com", "tok").Return(nil)

	if err := uc.Consume(context.Background(), " a@b.com ", " tok "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
