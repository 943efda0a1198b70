// Package session is the explicit, injected session context: the stored
// auth token, the cached user and the profile picture, plus the remembered
// login email. It is built over the local store at start-up and cleared on
// logout or when the server rejects the token.
package session

import (
	"context"
	"fmt"

	"github.com/ifti227i/RideShareX/internal/client/models"
	"github.com/ifti227i/RideShareX/internal/client/store"
	"github.com/ifti227i/RideShareX/internal/common"
)

// Schema versions of the records this package owns.
const (
	tokenVersion   = 1
	userVersion    = 1
	pictureVersion = 1
	emailVersion   = 1
)

type Session struct {
	st store.TxStore
}

func New(st store.TxStore) *Session {
	return &Session{st: st}
}

// Token returns the stored bearer token.
func (s *Session) Token(ctx context.Context) (string, bool, error) {
	token, ok, err := store.Load[string](ctx, s.st, store.KeyToken, tokenVersion)
	if err != nil || !ok || token == "" {
		return "", false, err
	}
	return token, true, nil
}

// User returns the cached user. It fails with common.ErrNotAuthenticated
// when no session is stored.
func (s *Session) User(ctx context.Context) (models.User, error) {
	if _, ok, err := s.Token(ctx); err != nil {
		return models.User{}, err
	} else if !ok {
		return models.User{}, common.ErrNotAuthenticated
	}

	u, ok, err := store.Load[models.User](ctx, s.st, store.KeyUser, userVersion)
	if err != nil {
		return models.User{}, err
	}
	if !ok {
		return models.User{}, common.ErrNotAuthenticated
	}
	return u, nil
}

func (s *Session) IsAuthenticated(ctx context.Context) bool {
	_, err := s.User(ctx)
	return err == nil
}

// Start stores token and user together, replacing any previous session.
func (s *Session) Start(ctx context.Context, token string, user models.User) error {
	err := s.st.WithTx(ctx, func(ctx context.Context, tx store.Store) error {
		if err := store.Save(ctx, tx, store.KeyToken, tokenVersion, token); err != nil {
			return err
		}
		return store.Save(ctx, tx, store.KeyUser, userVersion, user)
	})
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	return nil
}

// SaveUser replaces the cached user of the active session.
func (s *Session) SaveUser(ctx context.Context, user models.User) error {
	return store.Save(ctx, s.st, store.KeyUser, userVersion, user)
}

// Clear drops the token, the cached user and the picture.
func (s *Session) Clear(ctx context.Context) error {
	err := s.st.WithTx(ctx, func(ctx context.Context, tx store.Store) error {
		for _, key := range []string{store.KeyToken, store.KeyUser, store.KeyPicture} {
			if err := tx.Remove(ctx, key); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// Picture returns the stored profile picture as a data URL.
func (s *Session) Picture(ctx context.Context) (string, bool, error) {
	return store.Load[string](ctx, s.st, store.KeyPicture, pictureVersion)
}

func (s *Session) SetPicture(ctx context.Context, dataURL string) error {
	return store.Save(ctx, s.st, store.KeyPicture, pictureVersion, dataURL)
}

func (s *Session) ClearPicture(ctx context.Context) error {
	return s.st.Remove(ctx, store.KeyPicture)
}

func (s *Session) RememberedEmail(ctx context.Context) (string, bool, error) {
	return store.Load[string](ctx, s.st, store.KeyRememberedEmail, emailVersion)
}

func (s *Session) SetRememberedEmail(ctx context.Context, email string) error {
	return store.Save(ctx, s.st, store.KeyRememberedEmail, emailVersion, email)
}

func (s *Session) ForgetEmail(ctx context.Context) error {
	return s.st.Remove(ctx, store.KeyRememberedEmail)
}
