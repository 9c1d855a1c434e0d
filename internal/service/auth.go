package service

import (
	"context"
	"strings"

	"toala-backend/internal/domain"
	"toala-backend/internal/logger"
	"toala-backend/internal/repository"
	"toala-backend/internal/security"
)

const tokenTypeBearer = "bearer"

type authService struct {
	userRepo repository.UserRepository
	hasher   security.PasswordHasher
	tokens   security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, hasher security.PasswordHasher, tokens security.TokenManager) AuthService {
	return &authService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}

// Register creates an account and signs the new user in. The email check
// here is advisory; two concurrent registrations can both pass it, and the
// store's unique email index decides which insert wins.
func (s *authService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	const method = "authService.Register"
	email := strings.TrimSpace(in.Email)
	logger.EnterMethod(ctx, method, "email", email)

	if email == "" || in.Password == "" || strings.TrimSpace(in.Name) == "" {
		return nil, exitWithError(ctx, method, domain.NewValidationError("email, password and name are required"))
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, exitWithError(ctx, method, err, "email", email)
	}
	if existing != nil {
		return nil, exitWithError(ctx, method, domain.ErrEmailTaken, "email", email)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, exitWithError(ctx, method, err)
	}

	user := &domain.User{
		Email:        email,
		Name:         in.Name,
		PasswordHash: hash,
		Phone:        in.Phone,
		Location:     in.Location,
		Latitude:     in.Latitude,
		Longitude:    in.Longitude,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, exitWithError(ctx, method, err, "email", email)
	}

	res, err := s.issue(user)
	if err != nil {
		return nil, exitWithError(ctx, method, err, "userID", user.ID)
	}

	logger.ExitMethod(ctx, method, "userID", user.ID)
	return res, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	const method = "authService.Login"
	email = strings.TrimSpace(email)
	logger.EnterMethod(ctx, method, "email", email)

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, exitWithError(ctx, method, err, "email", email)
	}
	if user == nil || !s.hasher.Verify(user.PasswordHash, password) {
		return nil, exitWithError(ctx, method, domain.ErrInvalidCredentials, "email", email)
	}

	res, err := s.issue(user)
	if err != nil {
		return nil, exitWithError(ctx, method, err, "userID", user.ID)
	}

	logger.ExitMethod(ctx, method, "userID", user.ID)
	return res, nil
}

func (s *authService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.tokens.ValidateToken(token)
	if err != nil {
		logger.DebugContext(ctx, "Token rejected", "error", err)
		return nil, domain.ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (s *authService) issue(user *domain.User) (*AuthResult, error) {
	token, err := s.tokens.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	return &AuthResult{AccessToken: token, TokenType: tokenTypeBearer, User: user}, nil
}
