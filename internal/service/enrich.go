package service

import (
	"context"
	"errors"

	"toala-backend/internal/domain"
	"toala-backend/internal/logger"
	"toala-backend/internal/repository"
)

// unknownName stands in for a name whose record could not be resolved.
const unknownName = "Unknown"

// resolver looks names up at read time. Names are never copied onto the
// records they describe, so a rename shows up in every later response.
// A failed lookup degrades to unknownName and never fails the caller.
type resolver struct {
	users     repository.UserRepository
	equipment repository.EquipmentRepository
}

func (r resolver) userName(ctx context.Context, id string) string {
	u, err := r.users.GetByID(ctx, id)
	if err != nil {
		logger.WarnContext(ctx, "User name lookup failed", "userID", id, "error", err)
		return unknownName
	}
	if u == nil {
		return unknownName
	}
	return u.Name
}

func (r resolver) equipmentTitle(ctx context.Context, id string) string {
	e, err := r.equipment.GetByID(ctx, id)
	if err != nil {
		logger.WarnContext(ctx, "Equipment title lookup failed", "equipmentID", id, "error", err)
		return unknownName
	}
	if e == nil {
		return unknownName
	}
	return e.Title
}

func (r resolver) equipmentView(ctx context.Context, e domain.Equipment) EquipmentView {
	return EquipmentView{Equipment: e, OwnerName: r.userName(ctx, e.OwnerID)}
}

func (r resolver) rentalView(ctx context.Context, rt domain.RentalRequest) RentalView {
	return RentalView{
		RentalRequest:  rt,
		EquipmentTitle: r.equipmentTitle(ctx, rt.EquipmentID),
		RequesterName:  r.userName(ctx, rt.RequesterID),
		OwnerName:      r.userName(ctx, rt.OwnerID),
	}
}

func (r resolver) messageView(ctx context.Context, m domain.Message) MessageView {
	return MessageView{
		Message:       m,
		SenderName:    r.userName(ctx, m.SenderID),
		RecipientName: r.userName(ctx, m.RecipientID),
	}
}

// isCallerError reports whether err is one of the domain kinds a caller can
// trigger, as opposed to an infrastructure failure.
func isCallerError(err error) bool {
	return errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrUnauthenticated) ||
		errors.Is(err, domain.ErrForbidden) ||
		errors.Is(err, domain.ErrNotFound)
}

func exitWithError(ctx context.Context, method string, err error, args ...any) error {
	logger.ExitMethodWithError(ctx, method, err, isCallerError(err), args...)
	return err
}
