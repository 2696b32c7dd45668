package auth

import "context"

// UserRepository defines the data-access contract.
// Service depends ONLY on this interface.
type UserRepository interface {
	Save(user *User) error
	ExistsByEmail(email string) (bool, error)
	FindByEmail(email string) (*User, error)

	UpdatePreferences(ctx context.Context, userID, city string, cuisines []string) error
	UpdatePhotoURL(ctx context.Context, userID, photoURL string) error
	GetFavoriteCuisines(ctx context.Context, userID string) ([]string, error)
}
