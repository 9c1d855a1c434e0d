package domain

import "time"

type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusApproved  RequestStatus = "approved"
	RequestStatusDeclined  RequestStatus = "declined"
	RequestStatusCompleted RequestStatus = "completed"
)

var requestStatuses = []RequestStatus{
	RequestStatusPending,
	RequestStatusApproved,
	RequestStatusDeclined,
	RequestStatusCompleted,
}

func (s RequestStatus) Valid() bool {
	for _, known := range requestStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// StatusTransitions is the owner-driven transition policy. Every status may
// currently move to every other status, including regressions such as
// completed -> pending. Tighten a row here to restrict the graph.
var StatusTransitions = map[RequestStatus][]RequestStatus{
	RequestStatusPending:   requestStatuses,
	RequestStatusApproved:  requestStatuses,
	RequestStatusDeclined:  requestStatuses,
	RequestStatusCompleted: requestStatuses,
}

// CanTransition reports whether StatusTransitions allows from -> to.
func CanTransition(from, to RequestStatus) bool {
	for _, allowed := range StatusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

type RentalRequest struct {
	ID          string        `json:"id"`
	EquipmentID string        `json:"equipment_id"`
	RequesterID string        `json:"requester_id"`
	OwnerID     string        `json:"owner_id"`
	StartDate   time.Time     `json:"start_date"`
	EndDate     time.Time     `json:"end_date"`
	TotalPrice  float64       `json:"total_price"`
	Message     string        `json:"message"`
	Status      RequestStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// IsParticipant reports whether userID is the owner or the requester of r.
func (r *RentalRequest) IsParticipant(userID string) bool {
	return userID == r.OwnerID || userID == r.RequesterID
}

// Counterpart returns the other participant for userID, or "" if userID is
// not a participant.
func (r *RentalRequest) Counterpart(userID string) string {
	switch userID {
	case r.OwnerID:
		return r.RequesterID
	case r.RequesterID:
		return r.OwnerID
	}
	return ""
}
