package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ifti227i/RideShareX/internal/client/config"
	"github.com/ifti227i/RideShareX/internal/client/directory"
	"github.com/ifti227i/RideShareX/internal/client/models"
	"github.com/ifti227i/RideShareX/internal/client/rides"
	"github.com/ifti227i/RideShareX/internal/client/testfixture"
	"github.com/ifti227i/RideShareX/internal/common"
	"github.com/ifti227i/RideShareX/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ------------ helpers ------------

func newTestApp(t *testing.T, lines ...string) (*App, *testfixture.Env, *bytes.Buffer) {
	t.Helper()
	stubTerminal(t, false, nil)

	env := testfixture.New(t)
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.APIBaseURL = env.API.URL
	cfg.OnlineCheckInterval = time.Hour

	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	a := New(cfg, Services{
		Auth:    env.Auth,
		Profile: env.Profile,
		Rides:   env.Rides,
		Prefs:   env.Prefs,
	}, in, &out, logging.Discard())
	return a, env, &out
}

func signInRemote(t *testing.T, a *App, env *testfixture.Env, name string) models.User {
	t.Helper()
	u := env.SignInRemote(t, models.User{Username: name, Email: name + "@example.com"}, "Secret123!")
	a.setUser(u.Username)
	return u
}

func signInLocal(t *testing.T, a *App, env *testfixture.Env, name string) models.User {
	t.Helper()
	u := env.SignInLocal(t, models.User{Username: name, Email: name + "@example.com"}, "Secret123!")
	a.setUser(u.Username)
	return u
}

func requireRule(t *testing.T, err error, field, rule string) {
	t.Helper()
	ve := common.AsValidationError(err)
	require.NotNil(t, ve, "expected validation error, got %v", err)
	assert.Equal(t, field, ve.Field)
	assert.Equal(t, rule, ve.Rule)
}

// ------------ auth ------------

func TestLogin_Remote(t *testing.T) {
	a, env, out := newTestApp(t, "Alice@Example.com", "Secret123!", "y")
	env.API.AddUser(models.User{Username: "alice", Email: "alice@example.com"}, "Secret123!")
	ctx := context.Background()

	require.NoError(t, a.Login(ctx))

	assert.True(t, a.isLoggedIn())
	assert.Equal(t, ModeOnline, a.Mode())
	assert.Equal(t, "(alice online)", a.getStatus())
	assert.Contains(t, out.String(), "Welcome, alice!")

	remembered, err := env.Auth.RememberedEmail(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Alice@Example.com", strings.TrimSpace(remembered))
}

func TestLogin_RememberedEmailOffline(t *testing.T) {
	a, env, out := newTestApp(t, "", directory.DemoPassword, "n")
	ctx := context.Background()

	_, err := env.Dir.SeedDefault(ctx)
	require.NoError(t, err)
	require.NoError(t, env.Session.SetRememberedEmail(ctx, directory.DemoEmail))
	env.Offline()

	require.NoError(t, a.Login(ctx))

	assert.Contains(t, out.String(), "Enter email ["+directory.DemoEmail+"]")
	assert.Contains(t, out.String(), "signed in with the account saved on this device")
	assert.Equal(t, "("+directory.DemoUsername+" offline)", a.getStatus())

	remembered, err := env.Auth.RememberedEmail(ctx)
	require.NoError(t, err)
	assert.Empty(t, remembered)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	a, _, _ := newTestApp(t, "nobody@example.com", "wrong-password", "")

	err := a.Login(context.Background())
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
	assert.False(t, a.isLoggedIn())
}

func TestRegister_OfflineShowsStrengthAndSavesLocally(t *testing.T) {
	a, env, out := newTestApp(t, "bob", "bob@example.com", "Passw0rd!", "Passw0rd!")
	env.Offline()
	ctx := context.Background()

	require.NoError(t, a.Register(ctx))

	assert.Contains(t, out.String(), "Password strength: Strong")
	assert.Contains(t, out.String(), "account saved on this device")
	assert.False(t, a.isLoggedIn())

	_, found, err := env.Dir.Find(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.True(t, found)
}

func TestRegister_PasswordMismatch(t *testing.T) {
	a, _, _ := newTestApp(t, "bob", "bob@example.com", "Passw0rd!", "Passw0rd?")

	err := a.Register(context.Background())
	requireRule(t, err, "confirm", common.RulePasswordMismatch)
}

func TestOAuthAndTheme(t *testing.T) {
	a, _, out := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, a.OAuth(ctx, "Google"))
	assert.Contains(t, out.String(), "/oauth2/authorization/google")

	require.NoError(t, a.ToggleTheme(ctx))
	assert.Contains(t, out.String(), "Theme: dark")
}

func TestLogout(t *testing.T) {
	a, env, _ := newTestApp(t)
	ctx := context.Background()
	signInRemote(t, a, env, "erin")

	require.NoError(t, a.Logout(ctx))
	assert.False(t, a.isLoggedIn())
	assert.False(t, env.Session.IsAuthenticated(ctx))
}

// ------------ profile ------------

func TestProfile_Remote(t *testing.T) {
	a, env, out := newTestApp(t)
	signInRemote(t, a, env, "carol")

	require.NoError(t, a.Profile(context.Background()))

	s := out.String()
	assert.Contains(t, s, "carol@example.com")
	assert.Contains(t, s, "not set")
	assert.NotContains(t, s, "saved profile")
}

func TestEditProfile_LocalSession(t *testing.T) {
	// username, email kept; phone set; address "-" on an empty field; bio kept
	a, env, out := newTestApp(t, "", "", "01711-000000", "-", "")
	ctx := context.Background()
	signInLocal(t, a, env, "dan")

	require.NoError(t, a.EditProfile(ctx))
	assert.Contains(t, out.String(), "Profile updated on this device only")

	u, err := env.Session.User(ctx)
	require.NoError(t, err)
	assert.Equal(t, "01711-000000", u.Phone)
	assert.Equal(t, "dan", u.Username)
}

func TestEditProfile_NothingToChange(t *testing.T) {
	a, env, out := newTestApp(t, "", "", "", "", "")
	signInLocal(t, a, env, "dan")

	require.NoError(t, a.EditProfile(context.Background()))
	assert.Contains(t, out.String(), "Nothing to change")
}

func TestSetPicture(t *testing.T) {
	a, env, out := newTestApp(t)
	ctx := context.Background()
	signInLocal(t, a, env, "fay")

	dir := t.TempDir()
	small := filepath.Join(dir, "me.png")
	require.NoError(t, os.WriteFile(small, append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 32)...), 0o600))
	big := filepath.Join(dir, "big.png")
	require.NoError(t, os.WriteFile(big, make([]byte, testfixture.PictureMaxBytes+1), 0o600))

	require.NoError(t, a.SetPicture(ctx, small))
	assert.Contains(t, out.String(), "Profile picture updated")
	_, ok, err := env.Session.Picture(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	assert.ErrorIs(t, a.SetPicture(ctx, big), common.ErrFileTooLarge)

	require.NoError(t, a.ClearPicture(ctx))
	_, ok, err = env.Session.Picture(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

// ------------ preferences ------------

func TestLocations_AddListRemove(t *testing.T) {
	a, env, out := newTestApp(t, "Park", "Ramna Park, Shahbag", "")
	ctx := context.Background()
	signInLocal(t, a, env, "gail")

	require.NoError(t, a.AddLocation(ctx))
	require.NoError(t, a.Locations(ctx))

	s := out.String()
	assert.Contains(t, s, "Home")
	assert.Contains(t, s, "Ramna Park, Shahbag")
	assert.Contains(t, s, models.DefaultLocationIcon)

	require.NoError(t, a.RemoveLocation(ctx, "1"))
	assert.ErrorIs(t, a.RemoveLocation(ctx, "1"), common.ErrorNotFound)

	items, err := env.Prefs.Locations.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestPayments_AddValidatesType(t *testing.T) {
	a, env, _ := newTestApp(t, "crypto", "Wallet", "0xabc", "")
	signInLocal(t, a, env, "hal")

	err := a.AddPayment(context.Background())
	requireRule(t, err, "type", common.RuleOneOf)
}

func TestPayments_AddDefaults(t *testing.T) {
	a, env, out := newTestApp(t, "", "Work Visa", "4111222233334444", "")
	ctx := context.Background()
	signInLocal(t, a, env, "hal")

	require.NoError(t, a.AddPayment(ctx))
	require.NoError(t, a.Payments(ctx))
	assert.Contains(t, out.String(), "************4444")

	items, err := env.Prefs.Payments.List(ctx)
	require.NoError(t, err)
	last := items[len(items)-1]
	assert.Equal(t, models.PaymentCard, last.Type)
	assert.Equal(t, models.NoExpiry, last.Expiry)

	require.NoError(t, a.RemovePayment(ctx, string(last.ID)))
}

func TestAddRide_DefaultsDateAndFare(t *testing.T) {
	old := timeNow
	timeNow = func() time.Time { return time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { timeNow = old })

	a, env, _ := newTestApp(t, "Gulshan", "Airport", "", "", "4")
	ctx := context.Background()
	signInLocal(t, a, env, "ivy")

	require.NoError(t, a.AddRide(ctx))

	items, err := env.Prefs.Rides.List(ctx)
	require.NoError(t, err)
	last := items[len(items)-1]

	g, _ := rides.Lookup("Gulshan")
	ap, _ := rides.Lookup("Airport")
	assert.Equal(t, "2025-09-01", last.Date)
	assert.Equal(t, rides.FormatTaka(rides.EstimateRoute(g.Position, ap.Position).Fare), last.Price)
	require.NotNil(t, last.Rating)
	assert.Equal(t, 4, *last.Rating)

	require.NoError(t, a.RemoveRide(ctx, string(last.ID)))
}

func TestAddRide_BadRating(t *testing.T) {
	a, env, _ := newTestApp(t, "Somewhere", "Elsewhere", "2025-01-01", "৳100", "great")
	signInLocal(t, a, env, "ivy")

	requireRule(t, a.AddRide(context.Background()), "rating", common.RuleRange)
}

func TestHistoryAndStats(t *testing.T) {
	a, env, out := newTestApp(t)
	ctx := context.Background()
	signInLocal(t, a, env, "jo")

	require.NoError(t, a.History(ctx))
	require.NoError(t, a.Stats(ctx))

	s := out.String()
	assert.Contains(t, s, "Dhanmondi")
	assert.Contains(t, s, "5/5")
	assert.Contains(t, s, "৳1200")
	assert.Contains(t, s, "4.2 (5 rated)")
}

// ------------ rides ------------

func TestEstimate(t *testing.T) {
	a, _, out := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, a.Estimate(ctx, "gulshan", "Airport"))
	assert.Contains(t, out.String(), "Gulshan → Airport")

	requireRule(t, a.Estimate(ctx, "Narnia", "Airport"), "from", common.RuleOneOf)
	requireRule(t, a.Estimate(ctx, "Airport", "Narnia"), "to", common.RuleOneOf)
}

func TestPickups(t *testing.T) {
	a, _, out := newTestApp(t)
	require.NoError(t, a.Pickups(context.Background()))
	for _, p := range rides.PickupPoints() {
		assert.Contains(t, out.String(), p.Name)
	}
}

func TestNearest(t *testing.T) {
	a, _, out := newTestApp(t)
	ctx := context.Background()

	assert.ErrorIs(t, a.Nearest(ctx, "", ""), rides.ErrLocateUnsupported)
	requireRule(t, a.Nearest(ctx, "north", "90.4"), "lat", common.RuleRange)
	requireRule(t, a.Nearest(ctx, "23.7", "200"), "lng", common.RuleRange)

	require.NoError(t, a.Nearest(ctx, "23.7925", "90.4078"))
	assert.Contains(t, out.String(), "Nearest pickup: Gulshan")
}

func TestRiders_LocalSessionUsesSamples(t *testing.T) {
	a, env, out := newTestApp(t)
	signInLocal(t, a, env, "kim")

	require.NoError(t, a.Riders(context.Background()))
	assert.Contains(t, out.String(), "Offline, showing sample riders")
	assert.Contains(t, out.String(), "John Smith")
	assert.Zero(t, env.API.Hits("/rides"))
}

func TestRiders_Remote(t *testing.T) {
	a, env, out := newTestApp(t)
	signInRemote(t, a, env, "lee")
	env.API.SetRiders([]models.Rider{{ID: "9", Name: "Rahim Uddin", Rating: 4.6, Car: "Toyota Axio", Plate: "DHA-11", Price: 240, ETA: "3 mins"}})

	require.NoError(t, a.Riders(context.Background()))
	assert.Contains(t, out.String(), "Rahim Uddin")
	assert.Contains(t, out.String(), "৳240")
	assert.NotContains(t, out.String(), "sample riders")
}

// ------------ REPL over the real app ------------

func TestREPL_SessionExpiryReturnsToLogin(t *testing.T) {
	a, env, out := newTestApp(t, "riders", "profile", "exit")
	ctx := context.Background()
	signInRemote(t, a, env, "max")
	env.API.SetStatus("/rides", 401)

	runREPL(ctx, a, a.getStatus, a.reader, a.out)

	assert.Contains(t, out.String(), "Your session has expired, please login again.")
	assert.Contains(t, out.String(), "Please login first")
	assert.False(t, a.isLoggedIn())
	assert.False(t, env.Session.IsAuthenticated(ctx))
}

func TestRun_RestoresSessionAndShowsMode(t *testing.T) {
	a, env, out := newTestApp(t, "help", "exit")
	env.SignInRemote(t, models.User{Username: "nia", Email: "nia@example.com"}, "Secret123!")

	a.Run(context.Background())

	s := out.String()
	assert.Contains(t, s, "Signed in as nia")
	assert.Contains(t, s, "rsx (nia online)> ")
	assert.Contains(t, s, helpLoggedIn)
}

func TestCheckOnline(t *testing.T) {
	a, env, _ := newTestApp(t)
	ctx := context.Background()

	a.checkOnline(ctx)
	assert.Equal(t, ModeOnline, a.Mode())

	env.Offline()
	a.checkOnline(ctx)
	assert.Equal(t, ModeOffline, a.Mode())
	assert.Equal(t, "(offline)", a.getStatus())
}
