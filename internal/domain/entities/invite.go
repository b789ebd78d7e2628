package entities

import "time"

// Invite is a single-use, time-boxed token permitting vendor
// self-registration. Invites are ephemeral: consumption deletes the row
// and nothing references it afterwards.
//
// Storage model (DynamoDB):
//   - PK: invite_token (the opaque secret; one row per issued invite)
//
// Multiple outstanding invites for the same email are allowed so an
// admin can resend a lost link.
type Invite struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	InviteToken string    `json:"invite_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	Valid       bool      `json:"valid"`
	CreatedAt   time.Time `json:"created_at"`
}

// Expired reports whether the invite is past its expiry at the given
// instant.
func (i Invite) Expired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}
