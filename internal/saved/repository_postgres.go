package saved

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alytantawyy/Ehgezli-sub000/internal/core"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Save(
	ctx context.Context,
	userID string,
	ref core.BranchRef,
) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO saved_branches (user_id, restaurant_id, branch_index)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, restaurant_id, branch_index) DO NOTHING
	`, userID, ref.RestaurantID, ref.BranchIndex)
	return err
}

func (r *PostgresRepository) Remove(
	ctx context.Context,
	userID string,
	ref core.BranchRef,
) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM saved_branches
		WHERE user_id = $1 AND restaurant_id = $2 AND branch_index = $3
	`, userID, ref.RestaurantID, ref.BranchIndex)
	return err
}

func (r *PostgresRepository) ListRefs(
	ctx context.Context,
	userID string,
) ([]core.BranchRef, error) {

	rows, err := r.db.Query(ctx, `
		SELECT restaurant_id, branch_index
		FROM saved_branches
		WHERE user_id = $1
		ORDER BY created_at
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refs []core.BranchRef
	for rows.Next() {
		var ref core.BranchRef
		if err := rows.Scan(&ref.RestaurantID, &ref.BranchIndex); err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}

	return refs, rows.Err()
}
