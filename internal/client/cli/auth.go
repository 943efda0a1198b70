package cli

import (
	"context"
	"fmt"

	"github.com/ifti227i/RideShareX/internal/client/services"
	"github.com/ifti227i/RideShareX/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a new account and creates it remotely, or only in
// the local directory when the API is unreachable. It does not sign in.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, "Enter password: ", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if label := services.StrengthLabel(services.PasswordStrength(string(password))); label != "" {
		fmt.Fprintf(a.out, "Password strength: %s\n", label)
	}

	confirm, err := getPassword(a.reader, "Confirm password: ", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	res, err := a.auth.Register(ctx, services.NewUser{
		Username: username,
		Email:    email,
		Password: string(password),
		Confirm:  string(confirm),
	})
	if err != nil {
		return err
	}

	if res.Source == services.SourceRemote {
		fmt.Fprintln(a.out, "Account created. You can now login.")
	} else {
		fmt.Fprintln(a.out, "Server unreachable, account saved on this device. You can now login.")
	}
	return nil
}

// Login prompts for credentials, pre-filling the remembered email, and
// signs in. A local sign-in switches the prompt to offline.
func (a *App) Login(ctx context.Context) error {
	remembered, err := a.auth.RememberedEmail(ctx)
	if err != nil {
		return err
	}

	prompt := "Enter email"
	if remembered != "" {
		prompt = fmt.Sprintf("Enter email [%s]", remembered)
	}
	email, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return err
	}
	if email == "" {
		email = remembered
	}

	password, err := getPassword(a.reader, "Enter password: ", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	answer, err := getSimpleText(a.reader, "Remember me? (y/N)", a.out)
	if err != nil {
		return err
	}

	res, err := a.auth.Login(ctx, services.Credentials{
		Email:    email,
		Password: string(password),
		Remember: yes(answer),
	})
	if err != nil {
		return err
	}

	a.setUser(res.User.Username)
	if res.Source == services.SourceRemote {
		a.setMode(ModeOnline)
		fmt.Fprintf(a.out, "Welcome, %s!\n", res.User.Username)
	} else {
		a.setMode(ModeOffline)
		fmt.Fprintf(a.out, "Welcome, %s! Server unreachable, signed in with the account saved on this device.\n", res.User.Username)
	}
	return nil
}

// OAuth prints the browser URL that starts the provider's login flow.
func (a *App) OAuth(ctx context.Context, provider string) error {
	url, err := a.auth.OAuthURL(provider)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Open this URL in your browser to continue:\n%s\n", url)
	return nil
}

// Logout clears the stored session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.setUser("")
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// ToggleTheme switches between the light and dark theme.
func (a *App) ToggleTheme(ctx context.Context) error {
	theme, err := a.prefs.Theme.Toggle(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Theme: %s\n", theme)
	return nil
}
