package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ifti227i/RideShareX/internal/client/client"
	"github.com/ifti227i/RideShareX/internal/client/directory"
	"github.com/ifti227i/RideShareX/internal/client/models"
	"github.com/ifti227i/RideShareX/internal/client/session"
	"github.com/ifti227i/RideShareX/internal/common"
	"github.com/ifti227i/RideShareX/internal/logging"
)

// Credentials is the login form.
type Credentials struct {
	Email    string
	Password string
	Remember bool
}

// NewUser is the registration form.
type NewUser struct {
	Username string
	Email    string
	Password string
	Confirm  string
}

type LoginResult struct {
	User   models.User
	Source Source
}

type RegisterResult struct {
	User   models.User
	Source Source
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: authenticate remotely, or against the local directory when the
//     remote call fails, and store the session.
//   - Register: validate, register remotely if possible, and always add the
//     user to the local directory.
//   - Logout: clear the session.
//   - RememberedEmail: the email saved by the last "remember me" login.
//   - CurrentUser: the user of the stored session.
//   - OAuthURL: the browser entry point of a provider's login flow.
//   - Ping: check that the API answers.
type AuthService interface {
	Login(ctx context.Context, cred Credentials) (LoginResult, error)
	Register(ctx context.Context, nu NewUser) (RegisterResult, error)
	Logout(ctx context.Context) error
	RememberedEmail(ctx context.Context) (string, error)
	CurrentUser(ctx context.Context) (models.User, error)
	OAuthURL(provider string) (string, error)
	Ping(ctx context.Context) error
}

type authService struct {
	client  client.Client
	session *session.Session
	dir     *directory.Directory
	tokens  *LocalTokens
	log     logging.Logger
}

func NewAuthService(c client.Client, s *session.Session, dir *directory.Directory, tokens *LocalTokens, log logging.Logger) AuthService {
	return &authService{client: c, session: s, dir: dir, tokens: tokens, log: log}
}

// Login tries the remote API first with the normalized email. On any
// remote failure it looks the user up in the local directory and, on a
// match, starts a session with a fresh local token. With no match it fails
// with common.ErrInvalidCredentials and leaves the stored session alone.
func (a *authService) Login(ctx context.Context, cred Credentials) (LoginResult, error) {
	email := models.NormalizeEmail(cred.Email)
	if email == "" {
		return LoginResult{}, common.NewValidationError("email", common.RuleRequired, "email is required")
	}
	if cred.Password == "" {
		return LoginResult{}, common.NewValidationError("password", common.RuleRequired, "password is required")
	}

	res, err := a.remoteLogin(ctx, email, cred.Password)
	if err != nil {
		a.log.Warn(ctx, "remote login failed, trying local directory", "error", err)

		res, err = a.localLogin(ctx, email, cred.Password)
		if err != nil {
			return LoginResult{}, err
		}
	}

	if err := a.remember(ctx, cred); err != nil {
		return LoginResult{}, err
	}

	a.log.Info(ctx, "login succeeded", "user_id", res.User.ID, "source", res.Source)
	return res, nil
}

func (a *authService) remoteLogin(ctx context.Context, email, password string) (LoginResult, error) {
	resp, err := a.client.Login(ctx, email, password)
	if err != nil {
		return LoginResult{}, err
	}
	if err := a.session.Start(ctx, resp.Token, resp.User); err != nil {
		return LoginResult{}, err
	}
	return LoginResult{User: resp.User, Source: SourceRemote}, nil
}

func (a *authService) localLogin(ctx context.Context, email, password string) (LoginResult, error) {
	user, err := a.dir.Authenticate(ctx, email, password)
	if err != nil {
		return LoginResult{}, err
	}

	token, err := a.tokens.Issue(ctx, user.ID)
	if err != nil {
		return LoginResult{}, fmt.Errorf("issue local token: %w", err)
	}
	if err := a.session.Start(ctx, token, user); err != nil {
		return LoginResult{}, err
	}
	return LoginResult{User: user, Source: SourceLocalFallback}, nil
}

func (a *authService) remember(ctx context.Context, cred Credentials) error {
	if cred.Remember {
		return a.session.SetRememberedEmail(ctx, strings.TrimSpace(cred.Email))
	}
	return a.session.ForgetEmail(ctx)
}

// validate applies the registration rules in order and stops at the first
// failure.
func (a *authService) validate(ctx context.Context, nu NewUser) error {
	if len([]rune(strings.TrimSpace(nu.Username))) < 2 {
		return common.NewValidationError("username", common.RuleMinLength, "username must be at least 2 characters")
	}
	if !models.ValidEmail(nu.Email) {
		return common.NewValidationError("email", common.RuleEmailFormat, "please enter a valid email address")
	}

	_, exists, err := a.dir.Find(ctx, nu.Email)
	if err != nil {
		return err
	}
	if exists {
		return common.NewValidationError("email", common.RuleDuplicateEmail, "email is already registered")
	}

	if len([]rune(nu.Password)) < 6 {
		return common.NewValidationError("password", common.RuleMinLength, "password must be at least 6 characters")
	}
	if nu.Password != nu.Confirm {
		return common.NewValidationError("confirm", common.RulePasswordMismatch, "passwords do not match")
	}
	return nil
}

// Register validates nu, then registers it remotely. Whether or not the
// remote call succeeds, the user is added to the local directory; the
// result's Source tells which happened.
func (a *authService) Register(ctx context.Context, nu NewUser) (RegisterResult, error) {
	nu.Username = strings.TrimSpace(nu.Username)
	nu.Email = strings.TrimSpace(nu.Email)

	if err := a.validate(ctx, nu); err != nil {
		return RegisterResult{}, err
	}

	source := SourceRemote
	if err := a.client.Register(ctx, nu.Username, nu.Email, nu.Password); err != nil {
		a.log.Warn(ctx, "remote registration failed, keeping local account only", "error", err)
		source = SourceLocalFallback
	}

	user, err := a.dir.Append(ctx, models.User{Username: nu.Username, Email: nu.Email}, nu.Password)
	if err != nil {
		return RegisterResult{}, err
	}

	a.log.Info(ctx, "user registered", "user_id", user.ID, "source", source)
	return RegisterResult{User: user, Source: source}, nil
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.session.Clear(ctx); err != nil {
		return err
	}
	a.log.Info(ctx, "session cleared", "reason", "logout")
	return nil
}

func (a *authService) RememberedEmail(ctx context.Context) (string, error) {
	email, _, err := a.session.RememberedEmail(ctx)
	return email, err
}

func (a *authService) CurrentUser(ctx context.Context) (models.User, error) {
	return a.session.User(ctx)
}

func (a *authService) OAuthURL(provider string) (string, error) {
	provider = strings.TrimSpace(provider)
	if provider == "" {
		return "", common.NewValidationError("provider", common.RuleRequired, "provider is required")
	}
	return a.client.OAuthURL(provider), nil
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

// isExpired reports whether err means the server rejected the session.
func isExpired(err error) bool {
	return errors.Is(err, common.ErrSessionExpired)
}
