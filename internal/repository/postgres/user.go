package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"toala-backend/internal/domain"
	"toala-backend/internal/logger"
	"toala-backend/internal/repository"
)

const userColumns = `id, email, name, password_hash, phone, location, latitude, longitude, avatar, created_at`

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now().UTC()

	query := `INSERT INTO users (` + userColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	logger.DatabaseCall(ctx, "INSERT", "users", "userID", u.ID)
	res, err := r.db.ExecContext(ctx, query, u.ID, u.Email, u.Name, u.PasswordHash, u.Phone, u.Location, u.Latitude, u.Longitude, u.Avatar, u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			logger.DatabaseResult(ctx, "INSERT", 0, nil, "duplicate", "email")
			return domain.ErrEmailTaken
		}
		logger.DatabaseResult(ctx, "INSERT", 0, err)
		return err
	}
	n, _ := res.RowsAffected()
	logger.DatabaseResult(ctx, "INSERT", n, nil)
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if !validID(id) {
		return nil, nil
	}
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1)`
	return r.scanOne(r.db.QueryRowContext(ctx, query, email))
}

func (r *userRepository) scanOne(row *sql.Row) (*domain.User, error) {
	u := &domain.User{}
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.Phone, &u.Location, &u.Latitude, &u.Longitude, &u.Avatar, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}
