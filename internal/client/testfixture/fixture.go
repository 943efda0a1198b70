// Package testfixture wires the client services over an in-memory store and
// a fake API, and seeds sessions for tests. It stands in for any
// "fake login" helper: production code never fabricates a session.
package testfixture

import (
	"context"
	"testing"
	"time"

	"github.com/ifti227i/RideShareX/internal/client/apitest"
	"github.com/ifti227i/RideShareX/internal/client/client"
	"github.com/ifti227i/RideShareX/internal/client/directory"
	"github.com/ifti227i/RideShareX/internal/client/models"
	"github.com/ifti227i/RideShareX/internal/client/prefs"
	"github.com/ifti227i/RideShareX/internal/client/services"
	"github.com/ifti227i/RideShareX/internal/client/session"
	"github.com/ifti227i/RideShareX/internal/client/store"
	"github.com/ifti227i/RideShareX/internal/logging"
	"github.com/stretchr/testify/require"
)

// PictureMaxBytes is the picture cap used by fixtures.
const PictureMaxBytes = 1024

type Env struct {
	Store   *store.Memory
	Session *session.Session
	Dir     *directory.Directory
	Tokens  *services.LocalTokens
	Prefs   *prefs.Prefs
	API     *apitest.Server
	Client  *client.HTTPClient

	Auth    services.AuthService
	Profile services.ProfileService
	Rides   services.RideService
}

// New builds an Env whose client points at a fresh fake API.
func New(t testing.TB) *Env {
	t.Helper()

	log := logging.Discard()
	st := store.NewMemory()
	sess := session.New(st)
	dir := directory.New(st)
	tokens := services.NewLocalTokens(st)
	api := apitest.New(t)
	c := client.NewHTTPClient(api.URL, 2*time.Second, sess, log)

	return &Env{
		Store:   st,
		Session: sess,
		Dir:     dir,
		Tokens:  tokens,
		Prefs:   prefs.New(st, true),
		API:     api,
		Client:  c,
		Auth:    services.NewAuthService(c, sess, dir, tokens, log),
		Profile: services.NewProfileService(c, sess, tokens, PictureMaxBytes, log),
		Rides:   services.NewRideService(c, sess, tokens, log),
	}
}

// Offline shuts the fake API down so every call fails to connect.
func (e *Env) Offline() {
	e.API.Close()
}

// SignInRemote registers u with the fake API and stores a session holding
// a token the API accepts.
func (e *Env) SignInRemote(t testing.TB, u models.User, password string) models.User {
	t.Helper()
	u = e.API.AddUser(u, password)
	token, err := e.API.IssueToken(u.ID)
	require.NoError(t, err)
	require.NoError(t, e.Session.Start(context.Background(), token, u))
	return u
}

// SignInLocal adds u to the local directory and stores a local session.
func (e *Env) SignInLocal(t testing.TB, u models.User, password string) models.User {
	t.Helper()
	ctx := context.Background()
	u, err := e.Dir.Append(ctx, u, password)
	require.NoError(t, err)
	token, err := e.Tokens.Issue(ctx, u.ID)
	require.NoError(t, err)
	require.NoError(t, e.Session.Start(ctx, token, u))
	return u
}
