package service

import (
	"context"
	"fmt"

	"toala-backend/internal/domain"
	"toala-backend/internal/logger"
	"toala-backend/internal/repository"
	"toala-backend/internal/utils"
)

type rentalService struct {
	rentalRepo    repository.RentalRepository
	equipmentRepo repository.EquipmentRepository
	names         resolver
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	equipmentRepo repository.EquipmentRepository,
	userRepo repository.UserRepository,
) RentalService {
	return &rentalService{
		rentalRepo:    rentalRepo,
		equipmentRepo: equipmentRepo,
		names:         resolver{users: userRepo, equipment: equipmentRepo},
	}
}

// Create files a pending request against a listing owned by someone else.
// The date range is not checked: an end before the start produces a zero or
// negative day count and total.
func (s *rentalService) Create(ctx context.Context, requester *domain.User, in CreateRentalInput) (*RentalView, error) {
	const method = "rentalService.Create"
	logger.EnterMethod(ctx, method, "requesterID", requester.ID, "equipmentID", in.EquipmentID)

	e, err := s.equipmentRepo.GetByID(ctx, in.EquipmentID)
	if err != nil {
		return nil, exitWithError(ctx, method, err, "equipmentID", in.EquipmentID)
	}
	if e == nil {
		return nil, exitWithError(ctx, method, domain.ErrEquipmentNotFound, "equipmentID", in.EquipmentID)
	}
	if e.OwnerID == requester.ID {
		return nil, exitWithError(ctx, method, domain.ErrSelfRental, "equipmentID", e.ID)
	}

	days, total := utils.RentalTotal(in.StartDate, in.EndDate, e.PricePerDay)
	if days <= 0 {
		logger.WarnContext(ctx, "Rental request with non-positive day count",
			"equipmentID", e.ID, "days", days, "totalPrice", total)
	}

	rt := &domain.RentalRequest{
		EquipmentID: e.ID,
		RequesterID: requester.ID,
		OwnerID:     e.OwnerID,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		TotalPrice:  total,
		Message:     in.Message,
		Status:      domain.RequestStatusPending,
	}
	if err := s.rentalRepo.Create(ctx, rt); err != nil {
		return nil, exitWithError(ctx, method, err, "equipmentID", e.ID)
	}

	view := s.names.rentalView(ctx, *rt)
	logger.ExitMethod(ctx, method, "requestID", rt.ID, "days", days, "totalPrice", total)
	return &view, nil
}

func (s *rentalService) ListReceived(ctx context.Context, owner *domain.User) ([]RentalView, error) {
	const method = "rentalService.ListReceived"
	logger.EnterMethod(ctx, method, "ownerID", owner.ID)

	list, err := s.rentalRepo.ListByOwner(ctx, owner.ID, maxListResults)
	if err != nil {
		return nil, exitWithError(ctx, method, err, "ownerID", owner.ID)
	}

	views := s.views(ctx, list)
	logger.ExitMethod(ctx, method, "count", len(views))
	return views, nil
}

func (s *rentalService) ListSent(ctx context.Context, requester *domain.User) ([]RentalView, error) {
	const method = "rentalService.ListSent"
	logger.EnterMethod(ctx, method, "requesterID", requester.ID)

	list, err := s.rentalRepo.ListByRequester(ctx, requester.ID, maxListResults)
	if err != nil {
		return nil, exitWithError(ctx, method, err, "requesterID", requester.ID)
	}

	views := s.views(ctx, list)
	logger.ExitMethod(ctx, method, "count", len(views))
	return views, nil
}

func (s *rentalService) Get(ctx context.Context, caller *domain.User, id string) (*RentalView, error) {
	const method = "rentalService.Get"
	logger.EnterMethod(ctx, method, "userID", caller.ID, "requestID", id)

	rt, err := participantRequest(ctx, s.rentalRepo, caller.ID, id, domain.ErrNotRequestParty)
	if err != nil {
		return nil, exitWithError(ctx, method, err, "requestID", id)
	}

	view := s.names.rentalView(ctx, *rt)
	logger.ExitMethod(ctx, method, "requestID", id)
	return &view, nil
}

// SetStatus lets the equipment owner move a request to any status the
// transition table allows. The requester has no say, not even to cancel.
func (s *rentalService) SetStatus(ctx context.Context, actor *domain.User, id string, status domain.RequestStatus) (string, error) {
	const method = "rentalService.SetStatus"
	logger.EnterMethod(ctx, method, "actorID", actor.ID, "requestID", id, "status", status)

	if !status.Valid() {
		return "", exitWithError(ctx, method, domain.ErrInvalidStatus, "status", status)
	}

	rt, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		return "", exitWithError(ctx, method, err, "requestID", id)
	}
	if rt == nil {
		return "", exitWithError(ctx, method, domain.ErrRequestNotFound, "requestID", id)
	}
	if rt.OwnerID != actor.ID {
		return "", exitWithError(ctx, method, domain.ErrNotRequestOwner, "requestID", id)
	}
	if !domain.CanTransition(rt.Status, status) {
		return "", exitWithError(ctx, method, domain.ErrTransitionDenied, "from", rt.Status, "to", status)
	}

	if err := s.rentalRepo.UpdateStatus(ctx, id, status); err != nil {
		return "", exitWithError(ctx, method, err, "requestID", id)
	}

	logger.ExitMethod(ctx, method, "requestID", id, "from", rt.Status, "to", status)
	return fmt.Sprintf("Request status updated to %s", status), nil
}

func (s *rentalService) views(ctx context.Context, list []domain.RentalRequest) []RentalView {
	views := make([]RentalView, 0, len(list))
	for _, rt := range list {
		views = append(views, s.names.rentalView(ctx, rt))
	}
	return views
}

// participantRequest loads a request and checks that userID is its owner or
// requester. denied is returned when the user is not a participant.
func participantRequest(ctx context.Context, rentals repository.RentalRepository, userID, requestID string, denied error) (*domain.RentalRequest, error) {
	rt, err := rentals.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if rt == nil {
		return nil, domain.ErrRequestNotFound
	}
	if !rt.IsParticipant(userID) {
		return nil, denied
	}
	return rt, nil
}
