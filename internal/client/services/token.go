package services

import (
	"context"
	"fmt"

	"github.com/ifti227i/RideShareX/internal/client/models"
	"github.com/ifti227i/RideShareX/internal/client/store"
	"github.com/ifti227i/RideShareX/internal/common"
	"github.com/ifti227i/RideShareX/internal/jwtx"
)

const (
	localIssuer        = "ridesharex-local"
	localSecretVersion = 1
)

// LocalTokens issues the bearer tokens of fallback sessions. They are
// signed with a per-install secret kept in the store, so they can be told
// apart from tokens issued by the remote API.
type LocalTokens struct {
	st store.Store
}

func NewLocalTokens(st store.Store) *LocalTokens {
	return &LocalTokens{st: st}
}

func (t *LocalTokens) secret(ctx context.Context, create bool) ([]byte, bool, error) {
	s, ok, err := store.Load[string](ctx, t.st, store.KeyLocalSecret, localSecretVersion)
	if err != nil {
		return nil, false, err
	}
	if ok && s != "" {
		return []byte(s), true, nil
	}
	if !create {
		return nil, false, nil
	}

	s, err = common.MakeRandHexString(32)
	if err != nil {
		return nil, false, fmt.Errorf("generate local secret: %w", err)
	}
	if err := store.Save(ctx, t.st, store.KeyLocalSecret, localSecretVersion, s); err != nil {
		return nil, false, err
	}
	return []byte(s), true, nil
}

// Issue returns a new, unique local token for userID.
func (t *LocalTokens) Issue(ctx context.Context, userID models.ID) (string, error) {
	secret, _, err := t.secret(ctx, true)
	if err != nil {
		return "", err
	}
	return jwtx.GenerateToken(userID.String(), localIssuer, secret, 0)
}

// IsLocal reports whether token was issued by Issue on this install.
func (t *LocalTokens) IsLocal(ctx context.Context, token string) bool {
	secret, ok, err := t.secret(ctx, false)
	if err != nil || !ok {
		return false
	}
	_, err = jwtx.ParseToken(token, localIssuer, secret)
	return err == nil
}
