package templates

const (
	// LoggedInLabel is shown when a token is present.
	LoggedInLabel = "Logged in"
	// GuestLabel is shown without a token.
	GuestLabel = "Guest"
)

// AuthLabel picks the header text from the token. Only presence matters.
func AuthLabel(token string) string {
	if token != "" {
		return LoggedInLabel
	}
	return GuestLabel
}
