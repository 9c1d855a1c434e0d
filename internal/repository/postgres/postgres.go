package postgres

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"toala-backend/internal/logger"
	"toala-backend/internal/repository"
)

//go:embed schema.sql
var schema string

const uniqueViolation = "23505"

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.EquipmentRepository
	repository.RentalRepository
	repository.MessageRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                  db,
		UserRepository:      NewUserRepository(db),
		EquipmentRepository: NewEquipmentRepository(db),
		RentalRepository:    NewRentalRepository(db),
		MessageRepository:   NewMessageRepository(db),
	}
}

// Ping verifies the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Migrate applies the embedded schema. Every statement is idempotent.
func Migrate(ctx context.Context, db *sql.DB) error {
	logger.DatabaseCall(ctx, "MIGRATE", "schema")
	_, err := db.ExecContext(ctx, schema)
	logger.DatabaseResult(ctx, "MIGRATE", 0, err)
	return err
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

// validID reports whether id can be compared against a UUID column.
// Malformed ids can never match a row.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
