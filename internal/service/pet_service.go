package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"petboard/internal/errors"
	"petboard/internal/model"
	"petboard/internal/repository"
	"petboard/internal/validation"
)

const petListCacheTTL = 5 * time.Minute

// ViewCache is the cached-view collaborator. *cache.Client satisfies it.
type ViewCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// PetService handles pet boarding records. Every mutation follows the same
// pipeline: validate, authorize ownership, mutate, invalidate the cached
// listing. No step runs if an earlier one failed.
type PetService interface {
	ListPets(ctx context.Context, userID uuid.UUID) ([]model.Pet, error)
	GetPet(ctx context.Context, petID string, userID uuid.UUID) (*model.Pet, error)
	AddPet(ctx context.Context, userID uuid.UUID, form validation.PetForm) (*model.Pet, error)
	EditPet(ctx context.Context, petID string, userID uuid.UUID, form validation.PetForm) (*model.Pet, error)
	CheckoutPet(ctx context.Context, petID string, userID uuid.UUID) error
}

type petService struct {
	petRepo repository.PetRepository
	views   ViewCache
}

// NewPetService creates a new pet service.
func NewPetService(petRepo repository.PetRepository, views ViewCache) PetService {
	return &petService{
		petRepo: petRepo,
		views:   views,
	}
}

func (s *petService) listCacheKey(userID uuid.UUID) string {
	return fmt.Sprintf("pets:user:%s", userID)
}

// authorizeOwnedPet loads the pet and confirms the caller owns it. Runs
// strictly before any mutation.
func (s *petService) authorizeOwnedPet(ctx context.Context, petID, userID uuid.UUID) (*model.Pet, error) {
	pet, err := s.petRepo.FindByID(ctx, petID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrPetNotFound
		}
		return nil, fmt.Errorf("find pet: %w", err)
	}
	if pet.UserID != userID {
		return nil, errors.ErrNotOwner
	}
	return pet, nil
}

// ListPets returns the user's pets, served from the cached listing when warm.
func (s *petService) ListPets(ctx context.Context, userID uuid.UUID) ([]model.Pet, error) {
	key := s.listCacheKey(userID)
	if data, _ := s.views.Get(ctx, key); data != nil {
		var cached []model.Pet
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	pets, err := s.petRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}

	if payload, err := json.Marshal(pets); err == nil {
		_ = s.views.Set(ctx, key, payload, petListCacheTTL)
	}
	return pets, nil
}

// GetPet returns a single pet after the ownership check.
func (s *petService) GetPet(ctx context.Context, petID string, userID uuid.UUID) (*model.Pet, error) {
	id, ok := validation.PetID(petID)
	if !ok {
		return nil, errors.ErrInvalidPetData
	}
	return s.authorizeOwnedPet(ctx, id, userID)
}

// AddPet creates a boarding record owned by the caller.
func (s *petService) AddPet(ctx context.Context, userID uuid.UUID, form validation.PetForm) (*model.Pet, error) {
	normalized, ok := validation.Pet(form)
	if !ok {
		return nil, errors.ErrInvalidPetData
	}

	pet := &model.Pet{
		UserID:    userID,
		Name:      normalized.Name,
		OwnerName: normalized.OwnerName,
		ImageURL:  normalized.ImageURL,
		Age:       normalized.Age,
		Notes:     normalized.Notes,
	}
	if err := s.petRepo.Create(ctx, pet); err != nil {
		return nil, fmt.Errorf("create pet: %w", err)
	}

	_ = s.views.Delete(ctx, s.listCacheKey(userID))
	return pet, nil
}

// EditPet updates a boarding record in place.
func (s *petService) EditPet(ctx context.Context, petID string, userID uuid.UUID, form validation.PetForm) (*model.Pet, error) {
	id, okID := validation.PetID(petID)
	normalized, okForm := validation.Pet(form)
	if !okID || !okForm {
		return nil, errors.ErrInvalidPetData
	}

	pet, err := s.authorizeOwnedPet(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	pet.Name = normalized.Name
	pet.OwnerName = normalized.OwnerName
	pet.ImageURL = normalized.ImageURL
	pet.Age = normalized.Age
	pet.Notes = normalized.Notes
	if err := s.petRepo.Update(ctx, pet); err != nil {
		return nil, fmt.Errorf("update pet: %w", err)
	}

	_ = s.views.Delete(ctx, s.listCacheKey(userID))
	return pet, nil
}

// CheckoutPet removes the boarding record.
func (s *petService) CheckoutPet(ctx context.Context, petID string, userID uuid.UUID) error {
	id, ok := validation.PetID(petID)
	if !ok {
		return errors.ErrInvalidPetData
	}

	if _, err := s.authorizeOwnedPet(ctx, id, userID); err != nil {
		return err
	}

	if err := s.petRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete pet: %w", err)
	}

	_ = s.views.Delete(ctx, s.listCacheKey(userID))
	return nil
}
