package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/pasajes-microservice/internal/domain"
)

// MockGateway runs the unit of work unless an error is configured for it
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) WithinConnection(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx)
}

func (m *MockGateway) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx)
}

type MockReferenceRepository struct {
	mock.Mock
}

func (m *MockReferenceRepository) ListRoutes(ctx context.Context) ([]domain.Route, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Route), args.Error(1)
}

func (m *MockReferenceRepository) ListVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}

func (m *MockReferenceRepository) ListFareTypes(ctx context.Context) ([]domain.FareType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FareType), args.Error(1)
}

func (m *MockReferenceRepository) GetRouteBasePrice(ctx context.Context, routeID domain.ID) (float64, error) {
	args := m.Called(ctx, routeID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockReferenceRepository) GetFareTypeDiscount(ctx context.Context, fareTypeID domain.ID) (float64, error) {
	args := m.Called(ctx, fareTypeID)
	return args.Get(0).(float64), args.Error(1)
}

type MockTicketRepository struct {
	mock.Mock
}

func (m *MockTicketRepository) List(ctx context.Context, routeID *domain.ID) ([]domain.TicketView, error) {
	args := m.Called(ctx, routeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TicketView), args.Error(1)
}

func (m *MockTicketRepository) Create(ctx context.Context, ticket *domain.Ticket) (domain.ID, error) {
	args := m.Called(ctx, ticket)
	return args.Get(0).(domain.ID), args.Error(1)
}

func (m *MockTicketRepository) Delete(ctx context.Context, id domain.ID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) GenerateCSV(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) GetMetadata(ctx context.Context) (*domain.Metadata, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Metadata), args.Error(1)
}

func (m *MockCacheRepository) SetMetadata(ctx context.Context, metadata *domain.Metadata, ttl time.Duration) error {
	args := m.Called(ctx, metadata, ttl)
	return args.Error(0)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishTicketEvent(ctx context.Context, event domain.TicketEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
