package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/sertech/movie-watchList-Porftolio/internal/data/entity"
	"github.com/sertech/movie-watchList-Porftolio/internal/data/repository"
	"github.com/sertech/movie-watchList-Porftolio/internal/dto/request"
	"github.com/sertech/movie-watchList-Porftolio/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, form *request.RegisterForm) error
	Login(ctx context.Context, form *request.LoginForm) (*entity.Session, error)
	Logout(ctx context.Context, token uuid.UUID) error
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, form *request.RegisterForm) error {
	// 1. Check email is not taken
	existingUser, err := s.repo.User.FindByEmail(ctx, form.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", form.Email))
		return fmt.Errorf("failed to check email")
	}
	if existingUser != nil {
		return fmt.Errorf("email already in use")
	}

	// 2. Hash password, plaintext is never stored
	hashedPassword, err := utils.HashPassword(form.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return fmt.Errorf("failed to process password")
	}

	// 3. Create user entity
	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:        form.Email,
		PasswordHash: hashedPassword,
		Movies:       []uuid.UUID{},
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", form.Email))
		return fmt.Errorf("failed to create account")
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return nil
}

func (s *authService) Login(ctx context.Context, form *request.LoginForm) (*entity.Session, error) {
	user, err := s.repo.User.FindByEmail(ctx, form.Email)
	if err != nil {
		s.log.Error("Failed to find user by email", zap.Error(err), zap.String("email", form.Email))
		return nil, fmt.Errorf("failed to find user")
	}

	// Unknown email and wrong password answer identically so neither factor
	// leaks.
	if user == nil {
		s.log.Warn("User not found for login", zap.String("email", form.Email))
		return nil, fmt.Errorf("incorrect email or password")
	}

	if !utils.CheckPasswordHash(form.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("incorrect email or password")
	}

	session, err := s.createSession(ctx, user)
	if err != nil {
		s.log.Error("Failed to create session", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("failed to create session")
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return session, nil
}

func (s *authService) Logout(ctx context.Context, token uuid.UUID) error {
	if err := s.repo.Session.Revoke(ctx, token); err != nil {
		s.log.Error("Failed to revoke session", zap.Error(err), zap.String("token", token.String()))
		return fmt.Errorf("failed to logout")
	}

	s.log.Info("User logged out", zap.String("token", token.String()))
	return nil
}

func (s *authService) createSession(ctx context.Context, user *entity.User) (*entity.Session, error) {
	expiry := time.Duration(s.config.Session.ExpiryHours) * time.Hour
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}

	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:    user.ID,
		Email:     user.Email,
		Token:     utils.GenerateSessionToken(),
		ExpiresAt: time.Now().Add(expiry),
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}
