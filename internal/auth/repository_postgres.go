package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresUserRepository struct {
	db *pgxpool.Pool
}

func NewPostgresUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Save(user *User) error {
	// Generate UUID if not already set
	if user.ID == "" {
		user.ID = uuid.New().String()
	}

	query := `
		INSERT INTO users (id, name, email, password, city, favorite_cuisines)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(context.Background(), query,
		user.ID, user.Name, user.Email, user.Password,
		user.City, user.FavoriteCuisines,
	)
	return err
}

func (r *PostgresUserRepository) ExistsByEmail(email string) (bool, error) {
	query := `SELECT 1 FROM users WHERE email=$1 LIMIT 1`
	row := r.db.QueryRow(context.Background(), query, email)

	var exists int
	if err := row.Scan(&exists); err != nil {
		return false, nil
	}
	return true, nil
}

func (r *PostgresUserRepository) FindByEmail(email string) (*User, error) {
	query := `
		SELECT id, name, email, password, city,
		       COALESCE(favorite_cuisines, '{}'), COALESCE(photo_url, '')
		FROM users WHERE email=$1
	`
	row := r.db.QueryRow(context.Background(), query, email)

	user := &User{}
	if err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.Password,
		&user.City, &user.FavoriteCuisines, &user.PhotoURL,
	); err != nil {
		return nil, errors.New("user not found")
	}
	return user, nil
}

// --------------------------------------------------
// Preferences
// --------------------------------------------------

func (r *PostgresUserRepository) UpdatePreferences(
	ctx context.Context,
	userID, city string,
	cuisines []string,
) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users
		SET city = $1, favorite_cuisines = $2
		WHERE id = $3
	`, city, cuisines, userID)
	return err
}

func (r *PostgresUserRepository) UpdatePhotoURL(
	ctx context.Context,
	userID, photoURL string,
) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users
		SET photo_url = $1
		WHERE id = $2
	`, photoURL, userID)
	return err
}

func (r *PostgresUserRepository) GetFavoriteCuisines(
	ctx context.Context,
	userID string,
) ([]string, error) {

	var cuisines []string
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(favorite_cuisines, '{}')
		FROM users
		WHERE id = $1
	`, userID).Scan(&cuisines)

	if err != nil {
		return nil, err
	}
	return cuisines, nil
}
