// Package directory is the local user directory: the accounts known on this
// device, used when the remote API cannot be reached. Emails are matched
// case-insensitively and passwords are kept only as argon2 verifiers.
package directory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ifti227i/RideShareX/internal/client/models"
	"github.com/ifti227i/RideShareX/internal/client/store"
	"github.com/ifti227i/RideShareX/internal/common"
	"github.com/ifti227i/RideShareX/internal/cryptox"
	"golang.org/x/text/cases"
)

const version = 1

// Demo account seeded into an empty directory.
const (
	DemoUserID   = "123456"
	DemoUsername = "demo_user"
	DemoEmail    = "user@example.com"
	DemoPassword = "password123"
)

type Entry struct {
	models.User
	Password cryptox.PasswordHash `json:"password"`
}

type Directory struct {
	st store.Store
}

func New(st store.Store) *Directory {
	return &Directory{st: st}
}

// SameEmail compares two emails ignoring case and surrounding space.
func SameEmail(a, b string) bool {
	fold := cases.Fold()
	return fold.String(strings.TrimSpace(a)) == fold.String(strings.TrimSpace(b))
}

// List returns the entries in insertion order.
func (d *Directory) List(ctx context.Context) ([]Entry, error) {
	entries, _, err := store.Load[[]Entry](ctx, d.st, store.KeyUsers, version)
	if err != nil {
		return nil, fmt.Errorf("failed to read user directory: %w", err)
	}
	return entries, nil
}

// Find returns the entry whose email matches email.
func (d *Directory) Find(ctx context.Context, email string) (Entry, bool, error) {
	entries, err := d.List(ctx)
	if err != nil {
		return Entry{}, false, err
	}
	for _, e := range entries {
		if SameEmail(e.Email, email) {
			return e, true, nil
		}
	}
	return Entry{}, false, nil
}

// Authenticate returns the user for email when password matches exactly.
func (d *Directory) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	e, ok, err := d.Find(ctx, email)
	if err != nil {
		return models.User{}, err
	}
	if !ok || !e.Password.Matches([]byte(password)) {
		return models.User{}, common.ErrInvalidCredentials
	}
	return e.User, nil
}

// Append adds a user. A missing id or creation time is filled in. An email
// already present fails with a duplicate_email validation error.
func (d *Directory) Append(ctx context.Context, user models.User, password string) (models.User, error) {
	entries, err := d.List(ctx)
	if err != nil {
		return models.User{}, err
	}
	for _, e := range entries {
		if SameEmail(e.Email, user.Email) {
			return models.User{}, common.NewValidationError("email", common.RuleDuplicateEmail, "email is already registered")
		}
	}

	if user.ID == "" {
		user.ID = models.NewID()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC().Truncate(time.Second)
	}

	entries = append(entries, Entry{User: user, Password: cryptox.HashPassword([]byte(password))})
	if err := store.Save(ctx, d.st, store.KeyUsers, version, entries); err != nil {
		return models.User{}, fmt.Errorf("failed to write user directory: %w", err)
	}
	return user, nil
}

// SeedDefault adds the demo account when the directory is empty and reports
// whether it did.
func (d *Directory) SeedDefault(ctx context.Context) (bool, error) {
	entries, err := d.List(ctx)
	if err != nil {
		return false, err
	}
	if len(entries) > 0 {
		return false, nil
	}

	demo := models.User{ID: DemoUserID, Username: DemoUsername, Email: DemoEmail}
	if _, err := d.Append(ctx, demo, DemoPassword); err != nil {
		return false, err
	}
	return true, nil
}
