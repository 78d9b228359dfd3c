package identity

import (
	"context"
	"errors"
	"unicode"

	"github.com/cardcheck/cardcheck/internal/password"
)

var (
	// ErrInvalidCredential indicates the supplied password did not verify.
	ErrInvalidCredential = errors.New("invalid credentials")

	// ErrInvalidInput indicates a registration field failed validation.
	ErrInvalidInput = errors.New("invalid registration input")
)

// Service manages account registration and authentication.
type Service struct {
	repo   Repository
	hasher password.Hasher
}

// NewService creates a new identity service.
func NewService(repo Repository, hasher password.Hasher) *Service {
	return &Service{repo: repo, hasher: hasher}
}

// Register hashes the password and persists a new identity. Returns
// ErrDuplicateEmail when the email is already taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (Identity, error) {
	if err := validate(input); err != nil {
		return Identity{}, err
	}

	digest, err := s.hasher.Hash(input.Password)
	if err != nil {
		return Identity{}, err
	}

	return s.repo.Create(ctx, input, digest)
}

// Authenticate resolves the email and verifies the password. Returns
// ErrNotFound for an unknown email and ErrInvalidCredential for a wrong
// password.
func (s *Service) Authenticate(ctx context.Context, email, plaintext string) (Identity, error) {
	ident, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return Identity{}, err
	}

	if !s.hasher.Verify(plaintext, ident.PasswordDigest) {
		return Identity{}, ErrInvalidCredential
	}

	return ident, nil
}

// Lookup resolves an email to its identity without side effects.
func (s *Service) Lookup(ctx context.Context, email string) (Identity, error) {
	return s.repo.FindByEmail(ctx, email)
}

func validate(input RegisterInput) error {
	if input.Email == "" {
		return errors.Join(ErrInvalidInput, errors.New("email is required"))
	}
	if input.Password == "" {
		return errors.Join(ErrInvalidInput, errors.New("password is required"))
	}
	if input.Phone == "" {
		return errors.Join(ErrInvalidInput, errors.New("phone number is required"))
	}
	for _, r := range input.Phone {
		if !unicode.IsDigit(r) {
			return errors.Join(ErrInvalidInput, errors.New("phone number must be numeric"))
		}
	}
	return nil
}
