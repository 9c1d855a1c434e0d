package repository

import (
	"context"

	"toala-backend/internal/domain"
)

// Lookups that find nothing return (nil, nil); callers decide whether a
// missing entity is an error.

type UserRepository interface {
	// Create inserts u, assigning ID and CreatedAt. A duplicate email
	// returns domain.ErrEmailTaken.
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type EquipmentRepository interface {
	Create(ctx context.Context, e *domain.Equipment) error
	GetByID(ctx context.Context, id string) (*domain.Equipment, error)
	ListAvailable(ctx context.Context, filter domain.EquipmentFilter) ([]domain.Equipment, error)
	ListByOwner(ctx context.Context, ownerID string, limit int) ([]domain.Equipment, error)
}

type RentalRepository interface {
	Create(ctx context.Context, r *domain.RentalRequest) error
	GetByID(ctx context.Context, id string) (*domain.RentalRequest, error)
	UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) error
	ListByOwner(ctx context.Context, ownerID string, limit int) ([]domain.RentalRequest, error)
	ListByRequester(ctx context.Context, requesterID string, limit int) ([]domain.RentalRequest, error)
}

type MessageRepository interface {
	Create(ctx context.Context, m *domain.Message) error
	// ListByRequest returns messages in ascending timestamp order.
	ListByRequest(ctx context.Context, requestID string, limit int) ([]domain.Message, error)
}
