package service

import (
	"context"

	"toala-backend/internal/domain"
	"toala-backend/internal/logger"
	"toala-backend/internal/repository"
)

type equipmentService struct {
	equipmentRepo repository.EquipmentRepository
	names         resolver
}

func NewEquipmentService(equipmentRepo repository.EquipmentRepository, userRepo repository.UserRepository) EquipmentService {
	return &equipmentService{
		equipmentRepo: equipmentRepo,
		names:         resolver{users: userRepo, equipment: equipmentRepo},
	}
}

func (s *equipmentService) Create(ctx context.Context, owner *domain.User, in EquipmentInput) (*EquipmentView, error) {
	const method = "equipmentService.Create"
	logger.EnterMethod(ctx, method, "ownerID", owner.ID, "category", in.Category)

	if len(in.Images) > domain.MaxEquipmentImages {
		return nil, exitWithError(ctx, method, domain.ErrTooManyImages, "images", len(in.Images))
	}
	if !in.Category.Valid() {
		return nil, exitWithError(ctx, method, domain.ErrInvalidCategory, "category", in.Category)
	}
	if in.PricePerDay <= 0 {
		return nil, exitWithError(ctx, method, domain.NewValidationError("price_per_day must be greater than 0"))
	}

	minDays := in.MinRentalDays
	if minDays == 0 {
		minDays = 1
	}

	e := &domain.Equipment{
		OwnerID:              owner.ID,
		Title:                in.Title,
		Description:          in.Description,
		Category:             in.Category,
		PricePerDay:          in.PricePerDay,
		Location:             in.Location,
		Latitude:             in.Latitude,
		Longitude:            in.Longitude,
		Images:               in.Images,
		AvailabilityCalendar: map[string]bool{},
		MinRentalDays:        minDays,
		MaxRentalDays:        in.MaxRentalDays,
		IsAvailable:          true,
	}
	if err := s.equipmentRepo.Create(ctx, e); err != nil {
		return nil, exitWithError(ctx, method, err, "ownerID", owner.ID)
	}

	logger.ExitMethod(ctx, method, "equipmentID", e.ID)
	return &EquipmentView{Equipment: *e, OwnerName: owner.Name}, nil
}

// List returns available listings only. Pagination is plain skip/limit, so a
// concurrent insert can shift items between pages.
func (s *equipmentService) List(ctx context.Context, filter domain.EquipmentFilter) ([]EquipmentView, error) {
	const method = "equipmentService.List"
	logger.EnterMethod(ctx, method, "category", filter.Category, "location", filter.Location,
		"maxPrice", filter.MaxPrice, "skip", filter.Skip, "limit", filter.Limit)

	if filter.Skip < 0 || filter.Limit < 0 {
		return nil, exitWithError(ctx, method, domain.ErrInvalidPagination)
	}
	if filter.Category != "" && !filter.Category.Valid() {
		return nil, exitWithError(ctx, method, domain.ErrInvalidCategory, "category", filter.Category)
	}
	if filter.Limit == 0 {
		filter.Limit = defaultPageSize
	}
	if filter.Limit > maxListResults {
		filter.Limit = maxListResults
	}
	if filter.MaxPrice < 0 {
		filter.MaxPrice = 0
	}

	items, err := s.equipmentRepo.ListAvailable(ctx, filter)
	if err != nil {
		return nil, exitWithError(ctx, method, err)
	}

	views := make([]EquipmentView, 0, len(items))
	for _, e := range items {
		if !e.IsAvailable {
			continue
		}
		views = append(views, s.names.equipmentView(ctx, e))
	}

	logger.ExitMethod(ctx, method, "count", len(views))
	return views, nil
}

func (s *equipmentService) Get(ctx context.Context, id string) (*EquipmentView, error) {
	const method = "equipmentService.Get"
	logger.EnterMethod(ctx, method, "equipmentID", id)

	e, err := s.equipmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, exitWithError(ctx, method, err, "equipmentID", id)
	}
	if e == nil {
		return nil, exitWithError(ctx, method, domain.ErrEquipmentNotFound, "equipmentID", id)
	}

	view := s.names.equipmentView(ctx, *e)
	logger.ExitMethod(ctx, method, "equipmentID", id)
	return &view, nil
}

// ListMine returns the caller's listings whether or not they are available.
func (s *equipmentService) ListMine(ctx context.Context, owner *domain.User) ([]EquipmentView, error) {
	const method = "equipmentService.ListMine"
	logger.EnterMethod(ctx, method, "ownerID", owner.ID)

	items, err := s.equipmentRepo.ListByOwner(ctx, owner.ID, maxListResults)
	if err != nil {
		return nil, exitWithError(ctx, method, err, "ownerID", owner.ID)
	}

	views := make([]EquipmentView, 0, len(items))
	for _, e := range items {
		views = append(views, s.names.equipmentView(ctx, e))
	}

	logger.ExitMethod(ctx, method, "count", len(views))
	return views, nil
}
