package domain

import "time"

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Phone        *string   `json:"phone,omitempty"`
	Location     string    `json:"location"`
	Latitude     *float64  `json:"latitude,omitempty"`
	Longitude    *float64  `json:"longitude,omitempty"`
	Avatar       *string   `json:"avatar,omitempty"` // base64 image, never updated by this service
	CreatedAt    time.Time `json:"created_at"`
}
