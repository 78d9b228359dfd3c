package profile

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cardcheck/cardcheck/internal/eligibility"
)

var (
	// ErrAlreadyExists indicates the identity already holds a profile;
	// create refuses rather than overwriting.
	ErrAlreadyExists = errors.New("profile already exists")

	// ErrProfileMissing indicates the identity holds no profile; update and
	// delete refuse rather than creating one.
	ErrProfileMissing = errors.New("profile missing")
)

const uniqueViolation = "23505"

// Repository persists eligibility profiles. Each mutation is a single
// statement so a failed write leaves the store untouched.
type Repository interface {
	Create(ctx context.Context, p Profile) error
	Update(ctx context.Context, p Profile) error
	Delete(ctx context.Context, identityID int64) error
	FindByIdentity(ctx context.Context, identityID int64) (Profile, error)
}

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed profile repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts the profile row. The unique constraint on identity_id turns
// a concurrent double-create into ErrAlreadyExists instead of a duplicate
// row, so no check-then-insert is needed.
func (r *PostgresRepository) Create(ctx context.Context, p Profile) error {
	_, err := r.db.Exec(ctx, `INSERT INTO user_details (identity_id, minimum_credit_score, minimum_credit_limit, minimum_credit_history, minimum_income_requirement)
        VALUES ($1, $2, $3, $4, $5)`,
		p.IdentityID, p.Thresholds.CreditScore, p.Thresholds.CreditLimit, p.Thresholds.CreditHistoryMonths, p.Thresholds.Income)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrAlreadyExists
		}
		return err
	}
	return nil
}

// Update overwrites all four threshold fields in one statement.
func (r *PostgresRepository) Update(ctx context.Context, p Profile) error {
	cmd, err := r.db.Exec(ctx, `UPDATE user_details
        SET minimum_credit_score = $2,
            minimum_credit_limit = $3,
            minimum_credit_history = $4,
            minimum_income_requirement = $5
        WHERE identity_id = $1`,
		p.IdentityID, p.Thresholds.CreditScore, p.Thresholds.CreditLimit, p.Thresholds.CreditHistoryMonths, p.Thresholds.Income)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrProfileMissing
	}
	return nil
}

// Delete removes the profile row entirely.
func (r *PostgresRepository) Delete(ctx context.Context, identityID int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM user_details WHERE identity_id = $1`, identityID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrProfileMissing
	}
	return nil
}

// FindByIdentity fetches the stored thresholds for the identity.
func (r *PostgresRepository) FindByIdentity(ctx context.Context, identityID int64) (Profile, error) {
	row := r.db.QueryRow(ctx, `SELECT identity_id, minimum_credit_score, minimum_credit_limit, minimum_credit_history, minimum_income_requirement
        FROM user_details WHERE identity_id = $1`, identityID)

	var p Profile
	var t eligibility.Thresholds
	if err := row.Scan(&p.IdentityID, &t.CreditScore, &t.CreditLimit, &t.CreditHistoryMonths, &t.Income); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Profile{}, ErrProfileMissing
		}
		return Profile{}, err
	}
	p.Thresholds = t
	return p, nil
}
