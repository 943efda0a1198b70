// Package services contains application services for the RideShareX client:
// authentication with a local-directory fallback, the profile manager and
// the available-rides lookup. Each remote call that fails for a reason
// other than an expired session falls back to local data, and results say
// which path served them.
package services

// Source tells whether a result came from the remote API or from local data.
type Source string

const (
	SourceRemote        Source = "remote"
	SourceLocalFallback Source = "local"
)
