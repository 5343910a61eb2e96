package domain

// User is a registry account. The registry is static configuration loaded at
// process start; there is no create/update lifecycle.
type User struct {
	Username string
	// StoredCredential is either a bcrypt hash or the legacy sentinel value
	// kept for one pre-existing integration account.
	StoredCredential string
	FullName         string
	Disabled         bool
}
