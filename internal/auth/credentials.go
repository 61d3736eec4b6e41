package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// Credentials is the single admin principal, configured statically. There
// are no user records; the admin surface is gated by this one pair.
type Credentials struct {
	Username string
	// Password is the plaintext credential used when PasswordHash is
	// empty. Deployments that set ADMIN_PASSWORD_HASH never carry the
	// plaintext.
	Password     string
	PasswordHash string
}

// Check compares a submitted username/password pair against the
// configured values. A configured bcrypt hash takes precedence over the
// plaintext password.
func (c Credentials) Check(username, password string) bool {
	if subtle.ConstantTimeCompare([]byte(username), []byte(c.Username)) != 1 {
		return false
	}
	if c.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(c.Password)) == 1
}
