package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"toala-backend/internal/domain"
	"toala-backend/internal/logger"
	"toala-backend/internal/repository"
)

const equipmentColumns = `id, owner_id, title, description, category, price_per_day, location, latitude, longitude,
	images, availability_calendar, min_rental_days, max_rental_days, is_available, created_at`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type equipmentRepository struct {
	db *sql.DB
}

func NewEquipmentRepository(db *sql.DB) repository.EquipmentRepository {
	return &equipmentRepository{db: db}
}

func (r *equipmentRepository) Create(ctx context.Context, e *domain.Equipment) error {
	e.ID = uuid.NewString()
	e.CreatedAt = time.Now().UTC()
	if e.Images == nil {
		e.Images = []string{}
	}
	if e.AvailabilityCalendar == nil {
		e.AvailabilityCalendar = map[string]bool{}
	}

	calendar, err := json.Marshal(e.AvailabilityCalendar)
	if err != nil {
		return err
	}

	query := `INSERT INTO equipment (` + equipmentColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	logger.DatabaseCall(ctx, "INSERT", "equipment", "equipmentID", e.ID, "ownerID", e.OwnerID)
	_, err = r.db.ExecContext(ctx, query,
		e.ID, e.OwnerID, e.Title, e.Description, e.Category, e.PricePerDay, e.Location, e.Latitude, e.Longitude,
		pq.Array(e.Images), calendar, e.MinRentalDays, e.MaxRentalDays, e.IsAvailable, e.CreatedAt)
	logger.DatabaseResult(ctx, "INSERT", 1, err)
	return err
}

func (r *equipmentRepository) GetByID(ctx context.Context, id string) (*domain.Equipment, error) {
	if !validID(id) {
		return nil, nil
	}
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE id = $1`
	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	list, err := scanEquipment(rows)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return &list[0], nil
}

func (r *equipmentRepository) ListAvailable(ctx context.Context, f domain.EquipmentFilter) ([]domain.Equipment, error) {
	sql := `SELECT ` + equipmentColumns + ` FROM equipment WHERE is_available = TRUE`

	args := []interface{}{}
	argIdx := 1

	if f.Category != "" {
		sql += fmt.Sprintf(" AND category = $%d", argIdx)
		args = append(args, f.Category)
		argIdx++
	}
	if f.Location != "" {
		sql += fmt.Sprintf(" AND location ILIKE $%d", argIdx)
		args = append(args, "%"+likeEscaper.Replace(f.Location)+"%")
		argIdx++
	}
	if f.MaxPrice > 0 {
		sql += fmt.Sprintf(" AND price_per_day <= $%d", argIdx)
		args = append(args, f.MaxPrice)
		argIdx++
	}

	sql += fmt.Sprintf(" ORDER BY created_at, id LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, f.Limit, f.Skip)

	logger.DatabaseCall(ctx, "SELECT", "equipment", "filter", f)
	rows, err := r.db.QueryContext(ctx, sql, args...)
	if err != nil {
		logger.DatabaseResult(ctx, "SELECT", 0, err)
		return nil, err
	}
	list, err := scanEquipment(rows)
	logger.DatabaseResult(ctx, "SELECT", int64(len(list)), err)
	return list, err
}

func (r *equipmentRepository) ListByOwner(ctx context.Context, ownerID string, limit int) ([]domain.Equipment, error) {
	if !validID(ownerID) {
		return []domain.Equipment{}, nil
	}
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE owner_id = $1 ORDER BY created_at, id LIMIT $2`
	rows, err := r.db.QueryContext(ctx, query, ownerID, limit)
	if err != nil {
		return nil, err
	}
	return scanEquipment(rows)
}

func scanEquipment(rows *sql.Rows) ([]domain.Equipment, error) {
	defer rows.Close()

	list := []domain.Equipment{}
	for rows.Next() {
		var e domain.Equipment
		var calendar []byte
		if err := rows.Scan(&e.ID, &e.OwnerID, &e.Title, &e.Description, &e.Category, &e.PricePerDay, &e.Location,
			&e.Latitude, &e.Longitude, pq.Array(&e.Images), &calendar, &e.MinRentalDays, &e.MaxRentalDays,
			&e.IsAvailable, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.AvailabilityCalendar = map[string]bool{}
		if len(calendar) > 0 {
			if err := json.Unmarshal(calendar, &e.AvailabilityCalendar); err != nil {
				return nil, fmt.Errorf("decode availability_calendar for %s: %w", e.ID, err)
			}
		}
		if e.Images == nil {
			e.Images = []string{}
		}
		list = append(list, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}
