package authentication

// CredentialChecker gates the admin panel. The static implementation below
// is the whole story today; swapping in a real credential store only means
// replacing this interface's implementation, not touching view logic.
type CredentialChecker interface {
	Check(username, password string) bool
}

// StaticCredentials compares against one fixed username/password pair by
// exact string equality.
type StaticCredentials struct {
	Username string
	Password string
}

func (s StaticCredentials) Check(username, password string) bool {
	return username == s.Username && password == s.Password
}

// DefaultAdminCredentials returns the built-in admin login.
func DefaultAdminCredentials() StaticCredentials {
	return StaticCredentials{Username: "admin", Password: "admin123"}
}
