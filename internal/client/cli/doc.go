// Package cli provides the interactive RideShareX terminal client.
//
// It wires configuration, the local store, the API client and the services
// into a REPL that keeps working when the API is unreachable. A background
// watcher probes the API and shows online or offline in the prompt.
//
// Logged out, the REPL offers register, login and oauth. Logged in, it
// covers the profile, saved locations, payment methods, ride history,
// fare estimates, pickup points and available riders.
//
// App.Run blocks until the user exits. See runREPL for the command table.
package cli
