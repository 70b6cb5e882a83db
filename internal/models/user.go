package models

import (
	"fmt"
	"strings"
)

// UserProfile is the identity returned by the auth endpoints.
type UserProfile struct {
	ID        ID     `json:"id" yaml:"id" validate:"required"`
	Username  string `json:"username" yaml:"username" validate:"required"`
	Email     string `json:"email,omitempty" yaml:"email,omitempty"`
	FirstName string `json:"first_name,omitempty" yaml:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty" yaml:"last_name,omitempty"`
	Phone     string `json:"phone,omitempty" yaml:"phone,omitempty"`
	IsAdmin   bool   `json:"is_admin" yaml:"is_admin"`
	CreatedAt string `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

// Validate checks the fields every stored or received profile must carry.
func (u *UserProfile) Validate() error {
	if u.ID.IsZero() {
		return fmt.Errorf("user profile is missing an id")
	}
	if len(u.Username) == 0 {
		return fmt.Errorf("user profile is missing a username")
	}
	return nil
}

func (u *UserProfile) GetName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if len(name) > 0 {
		return name
	} else if len(u.Username) > 0 {
		return u.Username
	} else if len(u.Email) > 0 {
		return u.Email
	}
	return "Unknown"
}

// ProfilePatch holds the profile fields echoed back by a profile update.
// Nil fields were not returned and keep their previous value on merge.
type ProfilePatch struct {
	ID        *ID     `json:"id,omitempty"`
	Username  *string `json:"username,omitempty"`
	Email     *string `json:"email,omitempty"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	IsAdmin   *bool   `json:"is_admin,omitempty"`
	CreatedAt *string `json:"created_at,omitempty"`
}

// MergeProfile returns old shallow-merged with patch. Fields present in the
// patch win. The input profile is never modified.
func MergeProfile(old UserProfile, patch ProfilePatch) UserProfile {
	merged := old

	if patch.ID != nil {
		merged.ID = *patch.ID
	}
	if patch.Username != nil {
		merged.Username = *patch.Username
	}
	if patch.Email != nil {
		merged.Email = *patch.Email
	}
	if patch.FirstName != nil {
		merged.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		merged.LastName = *patch.LastName
	}
	if patch.Phone != nil {
		merged.Phone = *patch.Phone
	}
	if patch.IsAdmin != nil {
		merged.IsAdmin = *patch.IsAdmin
	}
	if patch.CreatedAt != nil {
		merged.CreatedAt = *patch.CreatedAt
	}

	return merged
}
