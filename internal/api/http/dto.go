package http

import (
	"encoding/json"
	"time"

	"toala-backend/internal/domain"
	"toala-backend/internal/service"
)

type registerRequest struct {
	Email     string   `json:"email" validate:"required,email"`
	Name      string   `json:"name" validate:"required"`
	Password  string   `json:"password" validate:"required"`
	Phone     *string  `json:"phone"`
	Location  string   `json:"location" validate:"required"`
	Latitude  *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
}

func (r registerRequest) toInput() service.RegisterInput {
	return service.RegisterInput{
		Email:     r.Email,
		Password:  r.Password,
		Name:      r.Name,
		Phone:     r.Phone,
		Location:  r.Location,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
	}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// The image limit is enforced by the catalog so the error carries its own
// message.
type equipmentRequest struct {
	Title         string   `json:"title" validate:"required"`
	Description   string   `json:"description"`
	Category      string   `json:"category" validate:"required,oneof=power_tools lawn_equipment welding_equipment construction_tools automotive household other"`
	PricePerDay   float64  `json:"price_per_day" validate:"gt=0"`
	Location      string   `json:"location" validate:"required"`
	Latitude      *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude     *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	Images        []string `json:"images"`
	MinRentalDays int      `json:"min_rental_days" validate:"gte=0"`
	MaxRentalDays *int     `json:"max_rental_days" validate:"omitempty,gte=1"`
}

func (r equipmentRequest) toInput() service.EquipmentInput {
	return service.EquipmentInput{
		Title:         r.Title,
		Description:   r.Description,
		Category:      domain.EquipmentCategory(r.Category),
		PricePerDay:   r.PricePerDay,
		Location:      r.Location,
		Latitude:      r.Latitude,
		Longitude:     r.Longitude,
		Images:        r.Images,
		MinRentalDays: r.MinRentalDays,
		MaxRentalDays: r.MaxRentalDays,
	}
}

type rentalRequest struct {
	EquipmentID string  `json:"equipment_id" validate:"required"`
	StartDate   isoTime `json:"start_date" validate:"required"`
	EndDate     isoTime `json:"end_date" validate:"required"`
	Message     string  `json:"message"`
}

func (r rentalRequest) toInput() service.CreateRentalInput {
	return service.CreateRentalInput{
		EquipmentID: r.EquipmentID,
		StartDate:   r.StartDate.Time,
		EndDate:     r.EndDate.Time,
		Message:     r.Message,
	}
}

type statusRequest struct {
	Status string `json:"status"`
}

type messageRequest struct {
	RequestID   string `json:"request_id" validate:"required"`
	RecipientID string `json:"recipient_id" validate:"required"`
	Content     string `json:"content" validate:"required"`
}

func (r messageRequest) toInput() service.SendMessageInput {
	return service.SendMessageInput{
		RequestID:   r.RequestID,
		RecipientID: r.RecipientID,
		Content:     r.Content,
	}
}

// isoTime accepts RFC 3339 timestamps as well as zone-less ISO 8601 forms,
// which are read as UTC.
type isoTime struct {
	time.Time
}

var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

func (t *isoTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	for _, layout := range isoLayouts {
		if parsed, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return &time.ParseError{Layout: time.RFC3339, Value: s, Message: ": not an ISO 8601 timestamp"}
}
