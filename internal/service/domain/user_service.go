package domain

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/qs-lzh/hotel-booking/internal/model"
	"github.com/qs-lzh/hotel-booking/internal/repository"
	"github.com/qs-lzh/hotel-booking/internal/service"
	"github.com/qs-lzh/hotel-booking/internal/util"
)

type SignInResult struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

type UserService interface {
	SignUp(ctx context.Context, email, password string) (*model.User, error)
	SignIn(ctx context.Context, email, password string) (*SignInResult, error)
	Authenticate(ctx context.Context, token string) (userID uint, err error)
}

type UserServiceConfig struct {
	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int
}

type userService struct {
	userRepo    repository.UserRepo
	sessionRepo repository.SessionRepo
	cfg         UserServiceConfig
}

var _ UserService = (*userService)(nil)

func NewUserService(userRepo repository.UserRepo, sessionRepo repository.SessionRepo, cfg UserServiceConfig) *userService {
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	return &userService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		cfg:         cfg,
	}
}

func (s *userService) SignUp(ctx context.Context, email, password string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	_, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, service.ErrConflict
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Email:    email,
		Password: string(hashed),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) SignIn(ctx context.Context, email, password string) (*SignInResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, service.ErrInvalidCredentials
	}

	token, err := util.NewAccessToken(s.cfg.JWTSecret, user.ID, s.cfg.TokenTTL)
	if err != nil {
		return nil, err
	}
	if err := s.sessionRepo.Create(ctx, &model.Session{UserID: user.ID, Token: token}); err != nil {
		return nil, err
	}

	return &SignInResult{User: user, Token: token}, nil
}

// Authenticate accepts a token only if it verifies and a session was opened with it.
func (s *userService) Authenticate(ctx context.Context, token string) (uint, error) {
	userID, err := util.ParseAccessToken(s.cfg.JWTSecret, token)
	if err != nil {
		return 0, service.ErrUnauthorized
	}

	session, err := s.sessionRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, service.ErrUnauthorized
		}
		return 0, err
	}
	if session.UserID != userID {
		return 0, service.ErrUnauthorized
	}
	return userID, nil
}
