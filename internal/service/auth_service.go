package service

import (
	"context"
	"errors"

	"github.com/campusops/reservation-service/internal/models"
	"github.com/campusops/reservation-service/internal/repository"
	"gorm.io/gorm"
)

type AuthService interface {
	Authenticate(ctx context.Context, email string, role models.Role) (*models.Person, error)
}

type authService struct {
	personRepo repository.PersonRepository
}

func NewAuthService(personRepo repository.PersonRepository) AuthService {
	return &authService{personRepo: personRepo}
}

// Authenticate resolves a person by email within a role. Identity is owned
// by the campus directory, so there is no credential check here — the
// directory has already vouched for the record.
func (s *authService) Authenticate(ctx context.Context, email string, role models.Role) (*models.Person, error) {
	person, err := s.personRepo.FindByEmailAndRole(ctx, email, role)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPersonNotFound
		}
		return nil, err
	}
	return person, nil
}
