package interfaces

import (
	"context"

	"zoracom_vms/internal/domain/entities"
)

// IInviteRepository abstracts DynamoDB persistence for Invite.
//
// The invite token is the primary key. Delete is conditional on the row
// still existing and matching the email, so racing consumers resolve to
// exactly one effective deletion; the loser observes a no-op, not an
// error.
type IInviteRepository interface {
	Create(ctx context.Context, i entities.Invite) (entities.Invite, error)
	GetByToken(ctx context.Context, token string) (entities.Invite, error)
	// Invalidate flips valid=false on an expired invite.
	Invalidate(ctx context.Context, token string) error
	// Delete removes the invite matching both token and email. Absent
	// rows are a no-op.
	Delete(ctx context.Context, email, token string) error
}
