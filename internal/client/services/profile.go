package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/ifti227i/RideShareX/internal/client/client"
	"github.com/ifti227i/RideShareX/internal/client/models"
	"github.com/ifti227i/RideShareX/internal/client/session"
	"github.com/ifti227i/RideShareX/internal/common"
	"github.com/ifti227i/RideShareX/internal/filex"
	"github.com/ifti227i/RideShareX/internal/logging"
)

// DefaultPictureMaxBytes caps profile pictures unless configured otherwise.
const DefaultPictureMaxBytes = 5 << 20

type ProfileService interface {
	Get(ctx context.Context) (models.User, error)
	Refresh(ctx context.Context) (models.User, Source, error)
	Update(ctx context.Context, update models.ProfileUpdate) (models.User, Source, error)
	SetPicture(ctx context.Context, data []byte, declaredSize int64) error
	SetPictureFile(ctx context.Context, path string) error
	Picture(ctx context.Context) (string, bool, error)
	ClearPicture(ctx context.Context) error
}

type profileService struct {
	client     client.Client
	session    *session.Session
	tokens     *LocalTokens
	maxPicture int64
	log        logging.Logger
}

// NewProfileService builds the profile manager. A non-positive maxPicture
// means DefaultPictureMaxBytes.
func NewProfileService(c client.Client, s *session.Session, tokens *LocalTokens, maxPicture int64, log logging.Logger) ProfileService {
	if maxPicture <= 0 {
		maxPicture = DefaultPictureMaxBytes
	}
	return &profileService{client: c, session: s, tokens: tokens, maxPicture: maxPicture, log: log}
}

// Get returns the cached user, or common.ErrNotAuthenticated.
func (p *profileService) Get(ctx context.Context) (models.User, error) {
	return p.session.User(ctx)
}

// localSession reports whether the stored token is a local fallback token.
// Such sessions are unknown to the remote API and skip remote calls.
func (p *profileService) localSession(ctx context.Context) (bool, error) {
	token, ok, err := p.session.Token(ctx)
	if err != nil {
		return false, err
	}
	return ok && p.tokens.IsLocal(ctx, token), nil
}

// Refresh reloads the user from GET /api/users/{id}. When the API cannot
// serve it, the cached user is returned instead.
func (p *profileService) Refresh(ctx context.Context) (models.User, Source, error) {
	user, err := p.session.User(ctx)
	if err != nil {
		return models.User{}, "", err
	}

	local, err := p.localSession(ctx)
	if err != nil {
		return models.User{}, "", err
	}
	if local {
		return user, SourceLocalFallback, nil
	}

	remote, err := p.client.GetUser(ctx, user.ID)
	if err != nil {
		if isExpired(err) {
			return models.User{}, "", err
		}
		p.log.Warn(ctx, "remote profile fetch failed, using cached user", "user_id", user.ID, "error", err)
		return user, SourceLocalFallback, nil
	}

	if err := p.session.SaveUser(ctx, remote); err != nil {
		return models.User{}, "", err
	}
	return remote, SourceRemote, nil
}

// Update sends PATCH /api/users/{id} and caches the response. Any failure
// other than an expired session merges update onto the cached user.
func (p *profileService) Update(ctx context.Context, update models.ProfileUpdate) (models.User, Source, error) {
	if err := update.Validate(); err != nil {
		return models.User{}, "", err
	}

	user, err := p.session.User(ctx)
	if err != nil {
		return models.User{}, "", err
	}
	if update.IsEmpty() {
		return user, SourceLocalFallback, nil
	}

	local, err := p.localSession(ctx)
	if err != nil {
		return models.User{}, "", err
	}

	if !local {
		remote, err := p.client.UpdateUser(ctx, user.ID, update)
		if err == nil {
			if err := p.session.SaveUser(ctx, remote); err != nil {
				return models.User{}, "", err
			}
			return remote, SourceRemote, nil
		}
		if isExpired(err) {
			return models.User{}, "", err
		}
		p.log.Warn(ctx, "remote profile update failed, saving locally", "user_id", user.ID, "error", err)
	}

	merged := update.Apply(user)
	if err := p.session.SaveUser(ctx, merged); err != nil {
		return models.User{}, "", err
	}
	return merged, SourceLocalFallback, nil
}

// SetPicture stores data as the profile picture. The declared size is
// checked against the cap before the data is looked at.
func (p *profileService) SetPicture(ctx context.Context, data []byte, declaredSize int64) error {
	if declaredSize > p.maxPicture || int64(len(data)) > p.maxPicture {
		return fmt.Errorf("%w: limit is %d bytes", common.ErrFileTooLarge, p.maxPicture)
	}

	if _, err := p.session.User(ctx); err != nil {
		return err
	}

	ctype := http.DetectContentType(data)
	if !strings.HasPrefix(ctype, "image/") {
		return common.NewValidationError("picture", common.RuleImageType, "please select an image file")
	}

	dataURL := "data:" + ctype + ";base64," + base64.StdEncoding.EncodeToString(data)
	return p.session.SetPicture(ctx, dataURL)
}

// SetPictureFile reads the image at path, refusing oversized files before
// reading them.
func (p *profileService) SetPictureFile(ctx context.Context, path string) error {
	data, size, err := filex.ReadLimited(path, p.maxPicture)
	if errors.Is(err, filex.ErrTooLarge) {
		return fmt.Errorf("%w: %d bytes, limit is %d", common.ErrFileTooLarge, size, p.maxPicture)
	}
	if err != nil {
		return err
	}
	return p.SetPicture(ctx, data, size)
}

func (p *profileService) Picture(ctx context.Context) (string, bool, error) {
	return p.session.Picture(ctx)
}

func (p *profileService) ClearPicture(ctx context.Context) error {
	return p.session.ClearPicture(ctx)
}
