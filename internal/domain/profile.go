package domain

import (
	"time"

	"github.com/google/uuid"
)

type ProfileStatus string

const (
	ProfileStatusPending     ProfileStatus = "pending"
	ProfileStatusInvited     ProfileStatus = "invited"
	ProfileStatusActive      ProfileStatus = "active"
	ProfileStatusDeactivated ProfileStatus = "deactivated"
)

// Profile is the client-scoped user record handed to business logic
// after identity extraction. Keyed by (client_id, user_id).
type Profile struct {
	ClientID      uuid.UUID     `json:"client_id" db:"client_id"`
	UserID        uuid.UUID     `json:"user_id" db:"user_id"`
	IsClientOwner bool          `json:"is_client_owner" db:"is_client_owner"`
	FullName      *string       `json:"full_name,omitempty" db:"full_name"`
	AvatarURL     *string       `json:"avatar_url,omitempty" db:"avatar_url"`
	Status        ProfileStatus `json:"status" db:"status"`
	LastLoginAt   *time.Time    `json:"last_login_at,omitempty" db:"last_login_at"`
	CreatedAt     time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at" db:"updated_at"`
}
