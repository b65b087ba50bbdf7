package services

import (
	"context"

	"rakb/api/internal/models"
	"rakb/api/internal/store"
)

// ICatalogService defines creation of the entities that need no logic
// beyond a validated insert.
type ICatalogService interface {
	CreateUser(ctx context.Context, user *models.User) (string, error)
	CreateCar(ctx context.Context, car *models.Car) (string, error)
	CreateReview(ctx context.Context, review *models.Review) (string, error)
}

// catalogService implements ICatalogService.
type catalogService struct {
	store store.Store
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(st store.Store) ICatalogService {
	return &catalogService{store: st}
}

func (s *catalogService) CreateUser(ctx context.Context, user *models.User) (string, error) {
	return s.store.Create(ctx, models.UserCollection, user)
}

func (s *catalogService) CreateCar(ctx context.Context, car *models.Car) (string, error) {
	return s.store.Create(ctx, models.CarCollection, car)
}

func (s *catalogService) CreateReview(ctx context.Context, review *models.Review) (string, error) {
	return s.store.Create(ctx, models.ReviewCollection, review)
}
