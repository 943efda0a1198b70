package store

// Keys of the values kept in the local session store.
const (
	KeyToken           = "user-token"
	KeyUser            = "user"
	KeyPicture         = "user-profile-picture"
	KeyRememberedEmail = "remembered-email"
	KeyUsers           = "users"
	KeySavedLocations  = "saved-locations"
	KeyPaymentMethods  = "payment-methods"
	KeyRecentRides     = "recent-rides"
	KeyTheme           = "theme"
	KeyLocalSecret     = "local-token-secret"
)
