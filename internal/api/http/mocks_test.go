package http_test

import (
	"context"

	"toala-backend/internal/domain"
	"toala-backend/internal/service"

	"github.com/stretchr/testify/mock"
)

// MockAuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, in service.RegisterInput) (*service.AuthResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AuthResult), args.Error(1)
}
func (m *MockAuthService) Login(ctx context.Context, email, password string) (*service.AuthResult, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AuthResult), args.Error(1)
}
func (m *MockAuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockEquipmentService
type MockEquipmentService struct {
	mock.Mock
}

func (m *MockEquipmentService) Create(ctx context.Context, owner *domain.User, in service.EquipmentInput) (*service.EquipmentView, error) {
	args := m.Called(ctx, owner, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.EquipmentView), args.Error(1)
}
func (m *MockEquipmentService) List(ctx context.Context, filter domain.EquipmentFilter) ([]service.EquipmentView, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.EquipmentView), args.Error(1)
}
func (m *MockEquipmentService) Get(ctx context.Context, id string) (*service.EquipmentView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.EquipmentView), args.Error(1)
}
func (m *MockEquipmentService) ListMine(ctx context.Context, owner *domain.User) ([]service.EquipmentView, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.EquipmentView), args.Error(1)
}

// MockRentalService
type MockRentalService struct {
	mock.Mock
}

func (m *MockRentalService) Create(ctx context.Context, requester *domain.User, in service.CreateRentalInput) (*service.RentalView, error) {
	args := m.Called(ctx, requester, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RentalView), args.Error(1)
}
func (m *MockRentalService) ListReceived(ctx context.Context, owner *domain.User) ([]service.RentalView, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.RentalView), args.Error(1)
}
func (m *MockRentalService) ListSent(ctx context.Context, requester *domain.User) ([]service.RentalView, error) {
	args := m.Called(ctx, requester)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.RentalView), args.Error(1)
}
func (m *MockRentalService) Get(ctx context.Context, caller *domain.User, id string) (*service.RentalView, error) {
	args := m.Called(ctx, caller, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RentalView), args.Error(1)
}
func (m *MockRentalService) SetStatus(ctx context.Context, actor *domain.User, id string, status domain.RequestStatus) (string, error) {
	args := m.Called(ctx, actor, id, status)
	return args.String(0), args.Error(1)
}

// MockMessageService
type MockMessageService struct {
	mock.Mock
}

func (m *MockMessageService) Send(ctx context.Context, sender *domain.User, in service.SendMessageInput) (*service.MessageView, error) {
	args := m.Called(ctx, sender, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.MessageView), args.Error(1)
}
func (m *MockMessageService) ListForRequest(ctx context.Context, caller *domain.User, requestID string) ([]service.MessageView, error) {
	args := m.Called(ctx, caller, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.MessageView), args.Error(1)
}

// MockPinger
type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
