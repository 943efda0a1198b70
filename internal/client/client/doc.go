// Package client talks to the RideShareX remote API.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface):
//     Login, Register, GetUser, UpdateUser, AvailableRides, Ping and the
//     OAuth entry URL.
//  2. A concrete HTTP/JSON implementation (see HTTPClient). Authenticated
//     calls go through FetchWithAuth, which attaches the bearer token from a
//     TokenSource and is the only place where an expired session is
//     detected: on HTTP 401 it clears the session and returns
//     common.ErrSessionExpired.
//
// # Error Handling
//
// Transport failures, 502/503/504 and timeouts map to ErrUnavailable, which
// wraps common.ErrNetworkUnavailable. A 401 on an unauthenticated call maps
// to ErrUnauthorized. Any other non-2xx status is a *StatusError.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation and timeouts.
package client
