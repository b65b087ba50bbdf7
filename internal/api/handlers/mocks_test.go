package handlers_test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"

	"rakb/api/internal/models"
	"rakb/api/internal/services"
	"rakb/api/internal/store"
)

// --- Mocks ---

// MockListingService
type MockListingService struct {
	mock.Mock
}

func (m *MockListingService) Create(ctx context.Context, listing *models.Listing) (string, error) {
	args := m.Called(ctx, listing)
	return args.String(0), args.Error(1)
}

func (m *MockListingService) Search(ctx context.Context, q services.SearchQuery) ([]bson.M, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]bson.M), args.Error(1)
}

func (m *MockListingService) FindByID(ctx context.Context, idHex string) (bson.M, error) {
	args := m.Called(ctx, idHex)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(bson.M), args.Error(1)
}

func (m *MockListingService) Cities(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockBookingService
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) Create(ctx context.Context, booking *models.Booking) (string, error) {
	args := m.Called(ctx, booking)
	return args.String(0), args.Error(1)
}

// MockCatalogService
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) CreateUser(ctx context.Context, user *models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *MockCatalogService) CreateCar(ctx context.Context, car *models.Car) (string, error) {
	args := m.Called(ctx, car)
	return args.String(0), args.Error(1)
}

func (m *MockCatalogService) CreateReview(ctx context.Context, review *models.Review) (string, error) {
	args := m.Called(ctx, review)
	return args.String(0), args.Error(1)
}

// MockStore (for the diagnostics handler)
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Create(ctx context.Context, collection string, doc any) (string, error) {
	args := m.Called(ctx, collection, doc)
	return args.String(0), args.Error(1)
}

func (m *MockStore) Find(ctx context.Context, collection string, filter store.Filter, limit int64) ([]bson.M, error) {
	args := m.Called(ctx, collection, filter, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]bson.M), args.Error(1)
}

func (m *MockStore) FindOne(ctx context.Context, collection string, filter store.Filter) (bson.M, error) {
	args := m.Called(ctx, collection, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(bson.M), args.Error(1)
}

func (m *MockStore) Distinct(ctx context.Context, collection, field string) ([]any, error) {
	args := m.Called(ctx, collection, field)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]any), args.Error(1)
}

func (m *MockStore) CollectionNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockStore) Configured() bool {
	args := m.Called()
	return args.Bool(0)
}
