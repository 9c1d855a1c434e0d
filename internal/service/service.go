package service

import (
	"context"
	"time"

	"toala-backend/internal/domain"
)

const (
	defaultPageSize = 20
	maxListResults  = 100
	maxMessages     = 1000
)

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	// Authenticate resolves a bearer token to the user it was issued for.
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

type EquipmentService interface {
	Create(ctx context.Context, owner *domain.User, in EquipmentInput) (*EquipmentView, error)
	List(ctx context.Context, filter domain.EquipmentFilter) ([]EquipmentView, error)
	Get(ctx context.Context, id string) (*EquipmentView, error)
	ListMine(ctx context.Context, owner *domain.User) ([]EquipmentView, error)
}

type RentalService interface {
	Create(ctx context.Context, requester *domain.User, in CreateRentalInput) (*RentalView, error)
	ListReceived(ctx context.Context, owner *domain.User) ([]RentalView, error)
	ListSent(ctx context.Context, requester *domain.User) ([]RentalView, error)
	Get(ctx context.Context, caller *domain.User, id string) (*RentalView, error)
	// SetStatus returns a confirmation message on success.
	SetStatus(ctx context.Context, actor *domain.User, id string, status domain.RequestStatus) (string, error)
}

type MessageService interface {
	Send(ctx context.Context, sender *domain.User, in SendMessageInput) (*MessageView, error)
	ListForRequest(ctx context.Context, caller *domain.User, requestID string) ([]MessageView, error)
}

type RegisterInput struct {
	Email     string
	Password  string
	Name      string
	Phone     *string
	Location  string
	Latitude  *float64
	Longitude *float64
}

// AuthResult is returned by Register and Login.
type AuthResult struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        *domain.User `json:"user"`
}

type EquipmentInput struct {
	Title         string
	Description   string
	Category      domain.EquipmentCategory
	PricePerDay   float64
	Location      string
	Latitude      *float64
	Longitude     *float64
	Images        []string
	MinRentalDays int
	MaxRentalDays *int
}

type CreateRentalInput struct {
	EquipmentID string
	StartDate   time.Time
	EndDate     time.Time
	Message     string
}

type SendMessageInput struct {
	RequestID   string
	RecipientID string
	Content     string
}

// EquipmentView is a listing enriched with its owner's current name.
type EquipmentView struct {
	domain.Equipment
	OwnerName string `json:"owner_name"`
}

// RentalView is a rental request enriched with names resolved at read time.
type RentalView struct {
	domain.RentalRequest
	EquipmentTitle string `json:"equipment_title"`
	RequesterName  string `json:"requester_name"`
	OwnerName      string `json:"owner_name"`
}

type MessageView struct {
	domain.Message
	SenderName    string `json:"sender_name"`
	RecipientName string `json:"recipient_name"`
}
