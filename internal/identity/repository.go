package identity

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// ErrDuplicateEmail indicates an identity already exists for the email.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrNotFound indicates no identity matches the lookup key. Callers must
	// treat this as an expected outcome, not an infrastructure failure.
	ErrNotFound = errors.New("identity not found")
)

const uniqueViolation = "23505"

// Repository persists identities. Email is the sole external lookup key and
// matching is case-sensitive.
type Repository interface {
	Create(ctx context.Context, input RegisterInput, passwordDigest string) (Identity, error)
	FindByEmail(ctx context.Context, email string) (Identity, error)
	FindByID(ctx context.Context, id int64) (Identity, error)
}

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed identity repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new identity. The unique constraint on email is the
// safeguard against concurrent duplicate registrations.
func (r *PostgresRepository) Create(ctx context.Context, input RegisterInput, passwordDigest string) (Identity, error) {
	now := time.Now().UTC()
	row := r.db.QueryRow(ctx, `INSERT INTO profile (first_name, last_name, email, password_digest, phone_number, address, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id`,
		input.FirstName, input.LastName, input.Email, passwordDigest, input.Phone, input.Address, now)

	var id int64
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return Identity{}, ErrDuplicateEmail
		}
		return Identity{}, err
	}

	return Identity{
		ID:             id,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Email:          input.Email,
		PasswordDigest: passwordDigest,
		PhoneNumber:    input.Phone,
		Address:        input.Address,
		CreatedAt:      now,
	}, nil
}

// FindByEmail fetches an identity by its exact email.
func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (Identity, error) {
	row := r.db.QueryRow(ctx, `SELECT id, first_name, last_name, email, password_digest, phone_number, COALESCE(address, ''), created_at
        FROM profile WHERE email = $1`, email)
	return scanIdentity(row)
}

// FindByID fetches an identity by its surrogate key.
func (r *PostgresRepository) FindByID(ctx context.Context, id int64) (Identity, error) {
	row := r.db.QueryRow(ctx, `SELECT id, first_name, last_name, email, password_digest, phone_number, COALESCE(address, ''), created_at
        FROM profile WHERE id = $1`, id)
	return scanIdentity(row)
}

func scanIdentity(row pgx.Row) (Identity, error) {
	var ident Identity
	var createdAt time.Time
	err := row.Scan(&ident.ID, &ident.FirstName, &ident.LastName, &ident.Email,
		&ident.PasswordDigest, &ident.PhoneNumber, &ident.Address, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Identity{}, ErrNotFound
		}
		return Identity{}, err
	}
	ident.CreatedAt = createdAt.UTC()
	return ident, nil
}
