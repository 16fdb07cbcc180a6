package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"petboard/internal/model"
)

// PetRepository defines pet persistence operations.
type PetRepository interface {
	Create(ctx context.Context, pet *model.Pet) error
	Update(ctx context.Context, pet *model.Pet) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Pet, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Pet, error)
}

type petRepository struct {
	db *gorm.DB
}

// NewPetRepository builds a GORM-backed repository.
func NewPetRepository(db *gorm.DB) PetRepository {
	return &petRepository{db: db}
}

func (r *petRepository) Create(ctx context.Context, pet *model.Pet) error {
	return r.db.WithContext(ctx).Create(pet).Error
}

func (r *petRepository) Update(ctx context.Context, pet *model.Pet) error {
	return r.db.WithContext(ctx).Save(pet).Error
}

func (r *petRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Pet{}, "id = ?", id).Error
}

func (r *petRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Pet, error) {
	var pet model.Pet
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&pet).Error; err != nil {
		return nil, err
	}
	return &pet, nil
}

func (r *petRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Pet, error) {
	var pets []model.Pet
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at").Find(&pets).Error; err != nil {
		return nil, err
	}
	return pets, nil
}
