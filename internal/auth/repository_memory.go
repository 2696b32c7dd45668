package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

type InMemoryUserRepository struct {
	users map[string]*User
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		users: make(map[string]*User),
	}
}

func (r *InMemoryUserRepository) Save(user *User) error {
	// Generate UUID if not already set
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	r.users[user.Email] = user
	return nil
}

func (r *InMemoryUserRepository) ExistsByEmail(email string) (bool, error) {
	_, exists := r.users[email]
	return exists, nil
}

func (r *InMemoryUserRepository) FindByEmail(email string) (*User, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, errors.New("user not found")
	}
	return user, nil
}

func (r *InMemoryUserRepository) UpdatePreferences(
	ctx context.Context,
	userID, city string,
	cuisines []string,
) error {
	user, err := r.findByID(userID)
	if err != nil {
		return err
	}
	user.City = city
	user.FavoriteCuisines = cuisines
	return nil
}

func (r *InMemoryUserRepository) UpdatePhotoURL(
	ctx context.Context,
	userID, photoURL string,
) error {
	user, err := r.findByID(userID)
	if err != nil {
		return err
	}
	user.PhotoURL = photoURL
	return nil
}

func (r *InMemoryUserRepository) GetFavoriteCuisines(
	ctx context.Context,
	userID string,
) ([]string, error) {
	user, err := r.findByID(userID)
	if err != nil {
		return nil, err
	}
	return user.FavoriteCuisines, nil
}

func (r *InMemoryUserRepository) findByID(userID string) (*User, error) {
	for _, user := range r.users {
		if user.ID == userID {
			return user, nil
		}
	}
	return nil, errors.New("user not found")
}
