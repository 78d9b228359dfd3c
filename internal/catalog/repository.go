package catalog

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository reads the card catalog.
type Repository interface {
	List(ctx context.Context) ([]CardRequirement, error)
}

// PostgresRepository reads the catalog from PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed catalog repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns every card with its requirements in insertion order. Columns
// are projected by name so catalog schema changes cannot silently shift the
// card name to another position.
func (r *PostgresRepository) List(ctx context.Context) ([]CardRequirement, error) {
	rows, err := r.db.Query(ctx, `SELECT card_name, minimum_credit_score, minimum_past_credit_limit, minimum_credit_history, minimum_income_requirement
        FROM credit_card_details ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []CardRequirement
	for rows.Next() {
		var card CardRequirement
		if err := rows.Scan(&card.Name, &card.MinCreditScore, &card.MinPastCreditLimit, &card.MinCreditHistoryMonths, &card.MinIncome); err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}

	return cards, rows.Err()
}
