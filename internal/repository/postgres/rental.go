package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"toala-backend/internal/domain"
	"toala-backend/internal/logger"
	"toala-backend/internal/repository"
)

const rentalColumns = `id, equipment_id, requester_id, owner_id, start_date, end_date, total_price, message, status, created_at, updated_at`

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

func (r *rentalRepository) Create(ctx context.Context, rt *domain.RentalRequest) error {
	rt.ID = uuid.NewString()
	now := time.Now().UTC()
	rt.CreatedAt = now
	rt.UpdatedAt = now

	query := `INSERT INTO rental_requests (` + rentalColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	logger.DatabaseCall(ctx, "INSERT", "rental_requests", "requestID", rt.ID, "equipmentID", rt.EquipmentID)
	_, err := r.db.ExecContext(ctx, query, rt.ID, rt.EquipmentID, rt.RequesterID, rt.OwnerID, rt.StartDate, rt.EndDate,
		rt.TotalPrice, rt.Message, rt.Status, rt.CreatedAt, rt.UpdatedAt)
	logger.DatabaseResult(ctx, "INSERT", 1, err)
	return err
}

func (r *rentalRepository) GetByID(ctx context.Context, id string) (*domain.RentalRequest, error) {
	if !validID(id) {
		return nil, nil
	}
	query := `SELECT ` + rentalColumns + ` FROM rental_requests WHERE id = $1`
	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	list, err := scanRentals(rows)
	if err != nil || len(list) == 0 {
		return nil, err
	}
	return &list[0], nil
}

func (r *rentalRepository) UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) error {
	if !validID(id) {
		return domain.ErrRequestNotFound
	}
	query := `UPDATE rental_requests SET status = $1, updated_at = $2 WHERE id = $3`
	logger.DatabaseCall(ctx, "UPDATE", "rental_requests", "requestID", id, "status", status)
	result, err := r.db.ExecContext(ctx, query, status, time.Now().UTC(), id)
	if err != nil {
		logger.DatabaseResult(ctx, "UPDATE", 0, err)
		return err
	}
	n, err := result.RowsAffected()
	logger.DatabaseResult(ctx, "UPDATE", n, err)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrRequestNotFound
	}
	return nil
}

func (r *rentalRepository) ListByOwner(ctx context.Context, ownerID string, limit int) ([]domain.RentalRequest, error) {
	return r.listBy(ctx, "owner_id", ownerID, limit)
}

func (r *rentalRepository) ListByRequester(ctx context.Context, requesterID string, limit int) ([]domain.RentalRequest, error) {
	return r.listBy(ctx, "requester_id", requesterID, limit)
}

// listBy filters on a fixed column name chosen by the callers above.
func (r *rentalRepository) listBy(ctx context.Context, column, userID string, limit int) ([]domain.RentalRequest, error) {
	if !validID(userID) {
		return []domain.RentalRequest{}, nil
	}
	query := `SELECT ` + rentalColumns + ` FROM rental_requests WHERE ` + column + ` = $1 ORDER BY created_at, id LIMIT $2`
	logger.DatabaseCall(ctx, "SELECT", "rental_requests", column, userID)
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		logger.DatabaseResult(ctx, "SELECT", 0, err)
		return nil, err
	}
	list, err := scanRentals(rows)
	logger.DatabaseResult(ctx, "SELECT", int64(len(list)), err)
	return list, err
}

func scanRentals(rows *sql.Rows) ([]domain.RentalRequest, error) {
	defer rows.Close()

	list := []domain.RentalRequest{}
	for rows.Next() {
		var rt domain.RentalRequest
		if err := rows.Scan(&rt.ID, &rt.EquipmentID, &rt.RequesterID, &rt.OwnerID, &rt.StartDate, &rt.EndDate,
			&rt.TotalPrice, &rt.Message, &rt.Status, &rt.CreatedAt, &rt.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}
