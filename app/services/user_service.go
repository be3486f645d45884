package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/goncalvesethan/park-manager-api/app/models"
	"github.com/goncalvesethan/park-manager-api/app/repo"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type UserService struct{ users *repo.UserRepository }

func NewUserService(users *repo.UserRepository) *UserService { return &UserService{users: users} }

// EnsureAdmin seeds the initial administrator account if no user with
// that email exists yet.
func (s *UserService) EnsureAdmin(email, password string) error {
	count, err := s.users.CountByEmail(email)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.users.Create(&models.User{
		Lastname:     "Admin",
		Firstname:    "Admin",
		Email:        email,
		PasswordHash: string(hash),
		IsAdmin:      true,
	})
}

func (s *UserService) Create(u *models.User, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return s.users.Create(u)
}

func (s *UserService) ValidateCredentials(email, password string) (*models.User, error) {
	u, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (s *UserService) ListActive() ([]models.User, error) { return s.users.ListActive() }

func (s *UserService) GetByID(id uint) (*models.User, error) { return s.users.FindByID(id) }

func (s *UserService) Update(id uint, in *models.User, password string) (*models.User, error) {
	u, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}
	u.Lastname = in.Lastname
	u.Firstname = in.Firstname
	u.Email = in.Email
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = string(hash)
	}
	if err := s.users.Save(u); err != nil {
		return nil, err
	}
	return u, nil
}

// SetAdmin grants administrator rights to the user.
func (s *UserService) SetAdmin(id uint) (*models.User, error) {
	u, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}
	u.IsAdmin = true
	if err := s.users.Save(u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserService) SoftDelete(id uint) error { return s.users.SoftDelete(id) }
