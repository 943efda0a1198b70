package models

import (
	"regexp"
	"strings"
	"time"

	"github.com/ifti227i/RideShareX/internal/common"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// NormalizeEmail trims and lower-cases an email for the login request.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// User is the profile cached for the active session. It never carries a
// password.
type User struct {
	ID        ID        `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
}

// ProfileUpdate is a partial user. Nil fields are left unchanged.
type ProfileUpdate struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
	Bio      *string `json:"bio,omitempty"`
}

func (p ProfileUpdate) IsEmpty() bool {
	return p.Username == nil && p.Email == nil && p.Phone == nil && p.Address == nil && p.Bio == nil
}

// Validate checks the fields that are set.
func (p ProfileUpdate) Validate() error {
	if p.Username != nil && len([]rune(strings.TrimSpace(*p.Username))) < 2 {
		return common.NewValidationError("username", common.RuleMinLength, "username must be at least 2 characters")
	}
	if p.Email != nil && !ValidEmail(strings.TrimSpace(*p.Email)) {
		return common.NewValidationError("email", common.RuleEmailFormat, "email address is invalid")
	}
	return nil
}

// Apply merges p onto u and returns the result.
func (p ProfileUpdate) Apply(u User) User {
	if p.Username != nil {
		u.Username = strings.TrimSpace(*p.Username)
	}
	if p.Email != nil {
		u.Email = strings.TrimSpace(*p.Email)
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Address != nil {
		u.Address = *p.Address
	}
	if p.Bio != nil {
		u.Bio = *p.Bio
	}
	return u
}
