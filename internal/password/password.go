// Package password provides the one-way hashing capability the credential
// store depends on.
package password

import "golang.org/x/crypto/bcrypt"

// Hasher produces and checks salted one-way digests of secrets.
type Hasher interface {
	Hash(secret string) (string, error)
	Verify(secret, digest string) bool
}

// Bcrypt implements Hasher with bcrypt at the default cost.
type Bcrypt struct{}

// Hash derives a salted digest from the secret.
func (Bcrypt) Hash(secret string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether the secret matches the digest.
func (Bcrypt) Verify(secret, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(secret)) == nil
}
