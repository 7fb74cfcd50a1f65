package repository

import (
	"context"

	"github.com/campusops/reservation-service/internal/models"
	"gorm.io/gorm"
)

type PersonRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Person, error)
	FindByEmailAndRole(ctx context.Context, email string, role models.Role) (*models.Person, error)
}

type personRepository struct {
	db *gorm.DB
}

func NewPersonRepository(db *gorm.DB) PersonRepository {
	return &personRepository{db: db}
}

func (r *personRepository) FindByID(ctx context.Context, id uint) (*models.Person, error) {
	var person models.Person
	if err := r.db.WithContext(ctx).First(&person, id).Error; err != nil {
		return nil, err
	}
	return &person, nil
}

func (r *personRepository) FindByEmailAndRole(ctx context.Context, email string, role models.Role) (*models.Person, error) {
	var person models.Person
	err := r.db.WithContext(ctx).
		Where("email = ? AND role = ?", email, role).
		First(&person).Error
	if err != nil {
		return nil, err
	}
	return &person, nil
}
