package services

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/lacpaorocelyn/cpsunav/internal/auth"
	"github.com/lacpaorocelyn/cpsunav/internal/models"
	"github.com/lacpaorocelyn/cpsunav/internal/repositories"
	"github.com/lacpaorocelyn/cpsunav/internal/validator"
)

// maxIDAttempts bounds student ID generation; with four random digits
// per year prefix a collision streak this long means the namespace is
// effectively full.
const maxIDAttempts = 25

// TokenConfig carries the signing parameters for issued tokens.
type TokenConfig struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

type authService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	tokens    TokenConfig

	now func() time.Time
}

func NewAuthService(repo repositories.Repository, logger *slog.Logger, v *validator.Validator, tokens TokenConfig) AuthService {
	return &authService{
		repo:      repo,
		logger:    logger,
		validator: v,
		tokens:    tokens,
		now:       time.Now,
	}
}

func (s *authService) Register(ctx context.Context, req *RegisterRequest) (*models.PublicUser, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	studentID, err := s.generateStudentID(ctx)
	if err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.PIN)
	if err != nil {
		return nil, fmt.Errorf("failed to hash pin: %w", err)
	}

	user := &models.User{
		StudentID: studentID,
		Password:  hash,
		FullName:  req.FullName,
	}
	if err := s.repo.User().Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User registered", "user_id", user.ID, "student_id", user.StudentID)

	return user.Public(), nil
}

func (s *authService) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.repo.User().GetByStudentID(ctx, req.StudentID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := auth.CheckPassword(user.Password, req.PIN); err != nil {
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("User logged in", "user_id", user.ID, "student_id", user.StudentID)

	return s.loginResponse(user)
}

func (s *authService) loginResponse(user *models.User) (*AuthResponse, error) {
	token, err := auth.NewAccessToken(s.tokens.Secret, s.tokens.Issuer, s.tokens.TTL, user.ID, user.StudentID)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return &AuthResponse{AccessToken: token, User: user.Public()}, nil
}

// generateStudentID allocates an ID of the form <year>-<4 digits>,
// retrying on collision with existing accounts.
func (s *authService) generateStudentID(ctx context.Context) (string, error) {
	year := s.now().Year()

	for i := 0; i < maxIDAttempts; i++ {
		candidate := fmt.Sprintf("%d-%04d", year, 1000+rand.Intn(9000))

		exists, err := s.repo.User().ExistsByStudentID(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check student id: %w", err)
		}
		if !exists {
			return candidate, nil
		}
	}

	return "", ErrStudentIDExhausted
}
