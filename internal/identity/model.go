package identity

import "time"

// Identity represents a registered account with email-based login. Rows are
// created once at registration and never mutated by this service.
type Identity struct {
	ID             int64
	FirstName      string
	LastName       string
	Email          string
	PasswordDigest string
	PhoneNumber    string
	Address        string
	CreatedAt      time.Time
}

// RegisterInput carries the fields collected at signup.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     string
	Address   string
}
