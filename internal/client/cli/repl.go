package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ifti227i/RideShareX/internal/common"
)

// execIface defines the command surface the REPL dispatches to.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	sessionExpired(ctx context.Context)

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	OAuth(ctx context.Context, provider string) error
	Logout(ctx context.Context) error
	ToggleTheme(ctx context.Context) error

	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	SetPicture(ctx context.Context, path string) error
	ClearPicture(ctx context.Context) error

	Locations(ctx context.Context) error
	AddLocation(ctx context.Context) error
	RemoveLocation(ctx context.Context, id string) error
	Payments(ctx context.Context) error
	AddPayment(ctx context.Context) error
	RemovePayment(ctx context.Context, id string) error
	History(ctx context.Context) error
	AddRide(ctx context.Context) error
	RemoveRide(ctx context.Context, id string) error
	Stats(ctx context.Context) error

	Estimate(ctx context.Context, from, to string) error
	Pickups(ctx context.Context) error
	Nearest(ctx context.Context, lat, lng string) error
	Riders(ctx context.Context) error
}

type access int

const (
	anyState access = iota
	loggedOutOnly
	loggedInOnly
)

type command struct {
	access access
	args   int
	usage  string
}

var commands = map[string]command{
	"register": {access: loggedOutOnly},
	"login":    {access: loggedOutOnly},
	"oauth":    {access: loggedOutOnly, args: 1, usage: "oauth <provider>"},
	"theme":    {access: anyState},

	"profile":     {access: loggedInOnly},
	"edit":        {access: loggedInOnly},
	"picture":     {access: loggedInOnly, args: 1, usage: "picture <path>"},
	"nopicture":   {access: loggedInOnly},
	"locations":   {access: loggedInOnly},
	"addlocation": {access: loggedInOnly},
	"dellocation": {access: loggedInOnly, args: 1, usage: "dellocation <id>"},
	"payments":    {access: loggedInOnly},
	"addpayment":  {access: loggedInOnly},
	"delpayment":  {access: loggedInOnly, args: 1, usage: "delpayment <id>"},
	"rides":       {access: loggedInOnly},
	"addride":     {access: loggedInOnly},
	"delride":     {access: loggedInOnly, args: 1, usage: "delride <id>"},
	"stats":       {access: loggedInOnly},
	"estimate":    {access: loggedInOnly, args: 2, usage: "estimate <from> <to>"},
	"pickups":     {access: loggedInOnly},
	"nearest":     {access: loggedInOnly},
	"riders":      {access: loggedInOnly},
	"logout":      {access: loggedInOnly},
}

const (
	helpLoggedOut = "Available commands: register, login, oauth <provider>, theme, exit"
	helpLoggedIn  = "Available commands: profile, edit, picture <path>, nopicture, " +
		"locations, addlocation, dellocation <id>, payments, addpayment, delpayment <id>, " +
		"rides, addride, delride <id>, stats, estimate <from> <to>, pickups, " +
		"nearest <lat> <lng>, riders, theme, logout, exit"
)

// runREPL reads commands from in until EOF, "exit" or "quit", or until ctx
// is done.
//
// The prompt is "rsx <status>> " where status comes from statusFn. Each
// handler returns an error; the REPL prints it and keeps going. An expired
// session drops the REPL back to the logged-out state.
func runREPL(ctx context.Context, a execIface, statusFn func() string, in *bufio.Reader, out io.Writer) {
	for ctx.Err() == nil {
		fmt.Fprintf(out, "rsx %s> ", statusFn())

		line, err := readLine(in)
		if err != nil {
			fmt.Fprintln(out)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(out, helpLoggedIn)
			} else {
				fmt.Fprintln(out, helpLoggedOut)
			}
			continue
		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return
		}

		c, ok := commands[cmd]
		if !ok {
			fmt.Fprintln(out, "Unknown command:", cmd)
			continue
		}
		if c.access == loggedInOnly && !a.isLoggedIn() {
			fmt.Fprintln(out, "Please login first")
			continue
		}
		if c.access == loggedOutOnly && a.isLoggedIn() {
			fmt.Fprintln(out, "Already logged in, logout first")
			continue
		}
		if len(args) < c.args {
			fmt.Fprintln(out, "Usage:", c.usage)
			continue
		}

		report(ctx, a, out, dispatch(ctx, a, cmd, args))
	}
}

func dispatch(ctx context.Context, a execIface, cmd string, args []string) error {
	switch cmd {
	case "register":
		return a.Register(ctx)
	case "login":
		return a.Login(ctx)
	case "oauth":
		return a.OAuth(ctx, args[0])
	case "theme":
		return a.ToggleTheme(ctx)
	case "profile":
		return a.Profile(ctx)
	case "edit":
		return a.EditProfile(ctx)
	case "picture":
		return a.SetPicture(ctx, strings.Join(args, " "))
	case "nopicture":
		return a.ClearPicture(ctx)
	case "locations":
		return a.Locations(ctx)
	case "addlocation":
		return a.AddLocation(ctx)
	case "dellocation":
		return a.RemoveLocation(ctx, args[0])
	case "payments":
		return a.Payments(ctx)
	case "addpayment":
		return a.AddPayment(ctx)
	case "delpayment":
		return a.RemovePayment(ctx, args[0])
	case "rides":
		return a.History(ctx)
	case "addride":
		return a.AddRide(ctx)
	case "delride":
		return a.RemoveRide(ctx, args[0])
	case "stats":
		return a.Stats(ctx)
	case "estimate":
		return a.Estimate(ctx, args[0], args[1])
	case "pickups":
		return a.Pickups(ctx)
	case "nearest":
		var lat, lng string
		if len(args) >= 2 {
			lat, lng = args[0], args[1]
		}
		return a.Nearest(ctx, lat, lng)
	case "riders":
		return a.Riders(ctx)
	case "logout":
		return a.Logout(ctx)
	}
	return fmt.Errorf("unhandled command %q", cmd)
}

func report(ctx context.Context, a execIface, out io.Writer, err error) {
	switch {
	case err == nil:
	case errors.Is(err, common.ErrSessionExpired):
		fmt.Fprintln(out, "Your session has expired, please login again.")
		a.sessionExpired(ctx)
	case errors.Is(err, common.ErrNotAuthenticated):
		fmt.Fprintln(out, "Please login first")
		a.sessionExpired(ctx)
	default:
		fmt.Fprintln(out, "Error:", err)
	}
}
