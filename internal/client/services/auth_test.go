package services_test

import (
	"context"
	"testing"

	"github.com/ifti227i/RideShareX/internal/client/directory"
	"github.com/ifti227i/RideShareX/internal/client/models"
	"github.com/ifti227i/RideShareX/internal/client/services"
	"github.com/ifti227i/RideShareX/internal/client/store"
	"github.com/ifti227i/RideShareX/internal/client/testfixture"
	"github.com/ifti227i/RideShareX/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_RemoteSuccess(t *testing.T) {
	env := testfixture.New(t)
	ctx := context.Background()
	u := env.API.AddUser(models.User{Username: "rahim", Email: "rahim@example.com"}, "secret1")

	res, err := env.Auth.Login(ctx, services.Credentials{Email: "  Rahim@Example.COM ", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, services.SourceRemote, res.Source)
	assert.Equal(t, u.ID, res.User.ID)

	token, ok, err := env.Session.Token(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.False(t, env.Tokens.IsLocal(ctx, token))

	cached, err := env.Auth.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, u, cached)
}

func TestLogin_FallbackToLocalDirectory(t *testing.T) {
	env := testfixture.New(t)
	ctx := context.Background()

	_, err := env.Dir.SeedDefault(ctx)
	require.NoError(t, err)
	env.Offline()

	res, err := env.Auth.Login(ctx, services.Credentials{Email: "USER@example.com", Password: directory.DemoPassword})
	require.NoError(t, err)
	assert.Equal(t, services.SourceLocalFallback, res.Source)
	assert.Equal(t, models.ID(directory.DemoUserID), res.User.ID)

	token, ok, err := env.Session.Token(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, env.Tokens.IsLocal(ctx, token))
}

func TestLogin_LocalTokensAreUnique(t *testing.T) {
	env := testfixture.New(t)
	ctx := context.Background()
	_, err := env.Dir.SeedDefault(ctx)
	require.NoError(t, err)
	env.Offline()

	cred := services.Credentials{Email: directory.DemoEmail, Password: directory.DemoPassword}
	_, err = env.Auth.Login(ctx, cred)
	require.NoError(t, err)
	first, _, _ := env.Session.Token(ctx)

	_, err = env.Auth.Login(ctx, cred)
	require.NoError(t, err)
	second, _, _ := env.Session.Token(ctx)

	assert.NotEqual(t, first, second)
}

func TestLogin_RemoteRejectsButLocalMatches(t *testing.T) {
	env := testfixture.New(t)
	ctx := context.Background()
	_, err := env.Dir.Append(ctx, models.User{Username: "karim", Email: "karim@example.com"}, "pw1234")
	require.NoError(t, err)

	res, err := env.Auth.Login(ctx, services.Credentials{Email: "karim@example.com", Password: "pw1234"})
	require.NoError(t, err)
	assert.Equal(t, services.SourceLocalFallback, res.Source)
}

func TestLogin_InvalidCredentialsKeepsPriorSession(t *testing.T) {
	env := testfixture.New(t)
	ctx := context.Background()
	prior := env.SignInRemote(t, models.User{Username: "rahim", Email: "rahim@example.com"}, "secret1")
	priorToken, _, _ := env.Session.Token(ctx)

	_, err := env.Auth.Login(ctx, services.Credentials{Email: "rahim@example.com", Password: "wrong"})
	require.ErrorIs(t, err, common.ErrInvalidCredentials)

	token, _, _ := env.Session.Token(ctx)
	assert.Equal(t, priorToken, token)
	u, err := env.Session.User(ctx)
	require.NoError(t, err)
	assert.Equal(t, prior.ID, u.ID)
}

func TestLogin_PasswordComparedExactly(t *testing.T) {
	env := testfixture.New(t)
	ctx := context.Background()
	_, err := env.Dir.SeedDefault(ctx)
	require.NoError(t, err)
	env.Offline()

	_, err = env.Auth.Login(ctx, services.Credentials{Email: directory.DemoEmail, Password: "PASSWORD123"})
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestLogin_RequiredFields(t *testing.T) {
	env := testfixture.New(t)
	ctx := context.Background()

	_, err := env.Auth.Login(ctx, services.Credentials{Email: "  ", Password: "x"})
	require.ErrorIs(t, err, common.ErrValidation)
	assert.Equal(t, "email", common.AsValidationError(err).Field)

	_, err = env.Auth.Login(ctx, services.Credentials{Email: "a@b.co"})
	require.ErrorIs(t, err, common.ErrValidation)
	assert.Equal(t, "password", common.AsValidationError(err).Field)
	assert.Zero(t, env.API.Hits("/api/auth/login"))
}

func TestLogin_RememberEmail(t *testing.T) {
	env := testfixture.New(t)
	ctx := context.Background()
	env.API.AddUser(models.User{Username: "rahim", Email: "rahim@example.com"}, "secret1")

	_, err := env.Auth.Login(ctx, services.Credentials{Email: "Rahim@example.com", Password: "secret1", Remember: true})
	require.NoError(t, err)

	email, err := env.Auth.RememberedEmail(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Rahim@example.com", email)

	_, err = env.Auth.Login(ctx, services.Credentials{Email: "rahim@example.com", Password: "secret1"})
	require.NoError(t, err)

	email, err = env.Auth.RememberedEmail(ctx)
	require.NoError(t, err)
	assert.Empty(t, email)
}

func TestRegister_ValidationOrder(t *testing.T) {
	env := testfixture.New(t)
	ctx := context.Background()
	_, err := env.Dir.SeedDefault(ctx)
	require.NoError(t, err)

	tests := []struct {
		name  string
		in    services.NewUser
		field string
		rule  string
	}{
		{"short username", services.NewUser{Username: " a ", Email: "bad", Password: "1", Confirm: "2"}, "username", common.RuleMinLength},
		{"bad email", services.NewUser{Username: "ab", Email: "user@example", Password: "1", Confirm: "2"}, "email", common.RuleEmailFormat},
		{"duplicate", services.NewUser{Username: "ab", Email: "USER@EXAMPLE.COM", Password: "1", Confirm: "2"}, "email", common.RuleDuplicateEmail},
		{"short password", services.NewUser{Username: "ab", Email: "new@example.com", Password: "12345", Confirm: "2"}, "password", common.RuleMinLength},
		{"mismatch", services.NewUser{Username: "ab", Email: "new@example.com", Password: "123456", Confirm: "1234567"}, "confirm", common.RulePasswordMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.Auth.Register(ctx, tt.in)
			require.ErrorIs(t, err, common.ErrValidation)
			ve := common.AsValidationError(err)
			require.NotNil(t, ve)
			assert.Equal(t, tt.field, ve.Field)
			assert.Equal(t, tt.rule, ve.Rule)
		})
	}
	assert.Zero(t, env.API.Hits("/api/auth/register"))
}

func TestRegister_Remote(t *testing.T) {
	env := testfixture.New(t)
	ctx := context.Background()

	res, err := env.Auth.Register(ctx, services.NewUser{Username: "karim", Email: "karim@example.com", Password: "pw1234", Confirm: "pw1234"})
	require.NoError(t, err)
	assert.Equal(t, services.SourceRemote, res.Source)
	assert.Equal(t, 1, env.API.Hits("/api/auth/register"))

	_, found, err := env.Dir.Find(ctx, "karim@example.com")
	require.NoError(t, err)
	assert.True(t, found)

	_, err = env.Session.User(ctx)
	assert.ErrorIs(t, err, common.ErrNotAuthenticated, "registering does not sign in")
}

func TestRegister_FallbackThenLocalLogin(t *testing.T) {
	env := testfixture.New(t)
	ctx := context.Background()
	env.Offline()

	res, err := env.Auth.Register(ctx, services.NewUser{Username: "karim", Email: "karim@example.com", Password: "pw1234", Confirm: "pw1234"})
	require.NoError(t, err)
	assert.Equal(t, services.SourceLocalFallback, res.Source)

	login, err := env.Auth.Login(ctx, services.Credentials{Email: "KARIM@example.com", Password: "pw1234"})
	require.NoError(t, err)
	assert.Equal(t, services.SourceLocalFallback, login.Source)
	assert.Equal(t, res.User.ID, login.User.ID)
}

func TestLogout_ClearsSession(t *testing.T) {
	env := testfixture.New(t)
	ctx := context.Background()
	env.SignInRemote(t, models.User{Username: "rahim", Email: "rahim@example.com"}, "pw")
	require.NoError(t, env.Session.SetPicture(ctx, "data:image/png;base64,AA=="))

	require.NoError(t, env.Auth.Logout(ctx))

	_, err := env.Auth.CurrentUser(ctx)
	assert.ErrorIs(t, err, common.ErrNotAuthenticated)
	_, ok, err := env.Store.Get(ctx, store.KeyPicture)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOAuthURL(t *testing.T) {
	env := testfixture.New(t)

	url, err := env.Auth.OAuthURL("google")
	require.NoError(t, err)
	assert.Equal(t, env.API.URL+"/oauth2/authorization/google", url)

	_, err = env.Auth.OAuthURL(" ")
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestPing(t *testing.T) {
	env := testfixture.New(t)
	require.NoError(t, env.Auth.Ping(context.Background()))

	env.Offline()
	assert.ErrorIs(t, env.Auth.Ping(context.Background()), common.ErrNetworkUnavailable)
}

func TestPasswordStrength(t *testing.T) {
	tests := []struct {
		pw    string
		score int
		label string
	}{
		{"", 0, ""},
		{"abc", 0, ""},
		{"abcdefgh", 1, "Weak"},
		{"Abcdefgh", 2, "Fair"},
		{"Abcdefg1", 3, "Good"},
		{"Abcdef1!", 4, "Strong"},
		{"a1!", 2, "Fair"},
	}
	for _, tt := range tests {
		score := services.PasswordStrength(tt.pw)
		assert.Equal(t, tt.score, score, tt.pw)
		assert.Equal(t, tt.label, services.StrengthLabel(score), tt.pw)
	}
}
