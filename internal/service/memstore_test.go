package service_test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"toala-backend/internal/domain"

	"github.com/google/uuid"
)

// memStore is an in-memory stand-in for the postgres store. Like the real
// schema it enforces email uniqueness at insert time.
type memStore struct {
	mu        sync.Mutex
	clock     time.Time
	users     map[string]domain.User
	equipment []domain.Equipment
	rentals   map[string]domain.RentalRequest
	messages  []domain.Message
}

func newMemStore() *memStore {
	return &memStore{
		clock:   time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC),
		users:   map[string]domain.User{},
		rentals: map[string]domain.RentalRequest{},
	}
}

// tick returns a strictly increasing timestamp; callers hold mu.
func (s *memStore) tick() time.Time {
	s.clock = s.clock.Add(time.Second)
	return s.clock
}

type memUsers struct{ *memStore }
type memEquipment struct{ *memStore }
type memRentals struct{ *memStore }
type memMessages struct{ *memStore }

func (s memUsers) Create(_ context.Context, u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return domain.ErrEmailTaken
		}
	}
	u.ID = uuid.NewString()
	u.CreatedAt = s.tick()
	s.users[u.ID] = *u
	return nil
}

func (s memUsers) GetByID(_ context.Context, id string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (s memUsers) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, nil
}

func (s memEquipment) Create(_ context.Context, e *domain.Equipment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = uuid.NewString()
	e.CreatedAt = s.tick()
	s.equipment = append(s.equipment, *e)
	return nil
}

func (s memEquipment) GetByID(_ context.Context, id string) (*domain.Equipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.equipment {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, nil
}

func (s memEquipment) ListAvailable(_ context.Context, f domain.EquipmentFilter) ([]domain.Equipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Equipment
	for _, e := range s.equipment {
		switch {
		case !e.IsAvailable:
		case f.Category != "" && e.Category != f.Category:
		case f.Location != "" && !strings.Contains(strings.ToLower(e.Location), strings.ToLower(f.Location)):
		case f.MaxPrice > 0 && e.PricePerDay > f.MaxPrice:
		default:
			out = append(out, e)
		}
	}
	if f.Skip >= len(out) {
		return []domain.Equipment{}, nil
	}
	out = out[f.Skip:]
	if len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (s memEquipment) ListByOwner(_ context.Context, ownerID string, limit int) ([]domain.Equipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.Equipment{}
	for _, e := range s.equipment {
		if e.OwnerID == ownerID && len(out) < limit {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s memRentals) Create(_ context.Context, r *domain.RentalRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = uuid.NewString()
	r.CreatedAt = s.tick()
	r.UpdatedAt = r.CreatedAt
	s.rentals[r.ID] = *r
	return nil
}

func (s memRentals) GetByID(_ context.Context, id string) (*domain.RentalRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rentals[id]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (s memRentals) UpdateStatus(_ context.Context, id string, status domain.RequestStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rentals[id]
	if !ok {
		return domain.ErrRequestNotFound
	}
	r.Status = status
	r.UpdatedAt = s.tick()
	s.rentals[id] = r
	return nil
}

func (s memRentals) list(match func(domain.RentalRequest) bool, limit int) []domain.RentalRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.RentalRequest{}
	for _, r := range s.rentals {
		if match(r) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (s memRentals) ListByOwner(_ context.Context, ownerID string, limit int) ([]domain.RentalRequest, error) {
	return s.list(func(r domain.RentalRequest) bool { return r.OwnerID == ownerID }, limit), nil
}

func (s memRentals) ListByRequester(_ context.Context, requesterID string, limit int) ([]domain.RentalRequest, error) {
	return s.list(func(r domain.RentalRequest) bool { return r.RequesterID == requesterID }, limit), nil
}

func (s memMessages) Create(_ context.Context, m *domain.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m.ID = uuid.NewString()
	m.Timestamp = s.tick()
	m.Read = false
	s.messages = append(s.messages, *m)
	return nil
}

func (s memMessages) ListByRequest(_ context.Context, requestID string, limit int) ([]domain.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.Message{}
	for _, m := range s.messages {
		if m.RequestID == requestID {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
