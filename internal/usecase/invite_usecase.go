package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
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
	ErrInviteeAlreadyVendor = errors.New("vendor already exists for this email")
	ErrInvalidInvite        = errors.New("invalid invite")
	ErrInvalidInviteEmail   = errors.New("invalid email")
)

// inviteTTL is how long a registration link stays usable.
const inviteTTL = 2 * 24 * time.Hour

// IInviteUseCase is the invitation token service: it issues, validates,
// and consumes the single-use tokens that gate vendor onboarding.
//
// Issue does not deduplicate outstanding invites for the same email;
// resending a lost link creates a second usable row.
type IInviteUseCase interface {
	Issue(ctx context.Context, email string) (entities.Invite, error)
	Validate(ctx context.Context, token, expectedEmail string) (entities.Invite, error)
	Consume(ctx context.Context, email, token string) error
}

type InviteUseCase struct {
	repo       interfaces.IInviteRepository
	vendorRepo interfaces.IVendorRepository
	mailer     interfaces.IMailer

	// clientBaseURL is the frontend origin embedded in registration
	// links, e.g. https://vendors.example.com.
	clientBaseURL string
}

var _ IInviteUseCase = (*InviteUseCase)(nil)

func NewInviteUseCase(repo interfaces.IInviteRepository, vendorRepo interfaces.IVendorRepository, mailer interfaces.IMailer, clientBaseURL string) *InviteUseCase {
	return &InviteUseCase{repo: repo, vendorRepo: vendorRepo, mailer: mailer, clientBaseURL: strings.TrimRight(clientBaseURL, "/")}
}

func (u *InviteUseCase) Issue(ctx context.Context, email string) (entities.Invite, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return entities.Invite{}, ErrInvalidInviteEmail
	}

	existing, err := u.vendorRepo.GetByEmail(ctx, email)
	if err != nil {
		return entities.Invite{}, err
	}
	if existing.ID != "" {
		return entities.Invite{}, ErrInviteeAlreadyVendor
	}

	token, err := generateInviteToken()
	if err != nil {
		return entities.Invite{}, err
	}

	now := time.Now().UTC()
	inv := entities.Invite{
		ID:          uuid.NewString(),
		Email:       email,
		InviteToken: token,
		ExpiresAt:   now.Add(inviteTTL),
		Valid:       true,
		CreatedAt:   now,
	}
	created, err := u.repo.Create(ctx, inv)
	if err != nil {
		return entities.Invite{}, err
	}

	link := fmt.Sprintf("%s/registration?token=%s", u.clientBaseURL, token)
	if err := u.mailer.Send(ctx, email, vendorInvitationSubject, vendorInvitationHTML(link)); err != nil {
		// Delivery failures never roll back the issued invite.
		log.Printf("[invite][usecase] invitation mail failed email=%s err=%v", email, err)
	}

	return created, nil
}

func (u *InviteUseCase) Validate(ctx context.Context, token, expectedEmail string) (entities.Invite, error) {
	token = strings.TrimSpace(token)
	expectedEmail = strings.TrimSpace(expectedEmail)
	if token == "" || expectedEmail == "" {
		return entities.Invite{}, ErrInvalidInvite
	}

	inv, err := u.repo.GetByToken(ctx, token)
	if err != nil {
		return entities.Invite{}, err
	}
	if inv.ID == "" {
		return entities.Invite{}, ErrInvalidInvite
	}

	// A token issued for one address must not onboard another.
	if inv.Email != expectedEmail {
		return entities.Invite{}, ErrInvalidInvite
	}

	if inv.Expired(time.Now().UTC()) {
		if err := u.repo.Invalidate(ctx, token); err != nil {
			log.Printf("[invite][usecase] invalidate failed token=%s err=%v", token, err)
		}
		return entities.Invite{}, ErrInvalidInvite
	}

	if !inv.Valid {
		return entities.Invite{}, ErrInvalidInvite
	}

	return inv, nil
}

func (u *InviteUseCase) Consume(ctx context.Context, email, token string) error {
	return u.repo.Delete(ctx, strings.TrimSpace(email), strings.TrimSpace(token))
}

// generateInviteToken returns a 64-hex-char cryptographically random
// opaque token.
func generateInviteToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
