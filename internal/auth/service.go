package auth

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"golang.org/x/crypto/bcrypt"

	"github.com/alytantawyy/Ehgezli-sub000/internal/storage"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type Service struct {
	repo   UserRepository
	photos *storage.R2Client
}

func NewService(repo UserRepository, photos *storage.R2Client) *Service {
	return &Service{repo: repo, photos: photos}
}

// REGISTER
func (s *Service) Register(name, email, password, city string) (*User, error) {
	if name == "" || email == "" || password == "" {
		return nil, errors.New("missing required fields")
	}

	exists, _ := s.repo.ExistsByEmail(email)
	if exists {
		return nil, errors.New("email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword(
		[]byte(password),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return nil, err
	}

	user := &User{
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
		City:     city,
	}

	if err := s.repo.Save(user); err != nil {
		return nil, err
	}

	return user, nil
}

// LOGIN
func (s *Service) Login(email, password string) (*User, error) {
	user, err := s.repo.FindByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	err = bcrypt.CompareHashAndPassword(
		[]byte(user.Password),
		[]byte(password),
	)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// --------------------------------------------------
// Preferences (feed discovery ranking)
// --------------------------------------------------

func (s *Service) UpdatePreferences(
	ctx context.Context,
	userID, city string,
	cuisines []string,
) error {
	if userID == "" {
		return errors.New("missing user id")
	}
	return s.repo.UpdatePreferences(ctx, userID, city, cuisines)
}

// FavoriteCuisines implements core.PreferenceReader for discovery.
func (s *Service) FavoriteCuisines(
	ctx context.Context,
	userID string,
) ([]string, error) {
	return s.repo.GetFavoriteCuisines(ctx, userID)
}

// --------------------------------------------------
// Profile photo
// --------------------------------------------------

func (s *Service) SetProfilePhoto(
	ctx context.Context,
	userID string,
	file multipart.File,
	filename string,
) (string, error) {
	if s.photos == nil {
		return "", errors.New("photo storage not configured")
	}

	key := fmt.Sprintf("profiles/%s/%s", userID, filename)
	url, err := s.photos.Upload(ctx, key, file)
	if err != nil {
		return "", err
	}

	if err := s.repo.UpdatePhotoURL(ctx, userID, url); err != nil {
		return "", err
	}
	return url, nil
}
