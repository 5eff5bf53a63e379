package service

import (
	"context"
	"errors"
	"movie_tracker/configs"
	"movie_tracker/db"
	"movie_tracker/db/redis"
	"movie_tracker/internal/repository"
	"movie_tracker/model"
	"movie_tracker/pkg/response"
	"movie_tracker/util"
	"strings"
	"time"

	"github.com/badoux/checkmail"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

type IAuthService interface {
	Register(req *model.RegisterRequest) (*model.User, string, error)
	Login(req *model.LoginRequest) (*model.User, string, error)
	GetUserById(userId int) (*model.User, error)
	Logout(ctx context.Context, token string, expiresAt *jwt.NumericDate) error
}

type AuthService struct {
	userRepo repository.IUserRepository
}

func NewAuthService(userRepo repository.IUserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
	}
}

//------------------------------------------
//------------------------------------------

func (s *AuthService) Register(req *model.RegisterRequest) (*model.User, string, error) {
	if err := validateRegisterRequest(req); err != nil {
		return nil, "", err
	}

	exists, err := s.userRepo.UsernameExists(req.Username)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", ErrUsernameTaken
	}

	hash, err := util.HashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}

	user := &model.User{
		Username:     req.Username,
		PasswordHash: hash,
		Email:        strings.TrimSpace(req.Email),
		Age:          req.Age,
		RegisteredAt: time.Now(),
		Active:       true,
	}
	if err := s.userRepo.CreateUser(user); err != nil {
		// the unique index wins races the pre-check cannot see
		if db.IsUniqueViolationError(err) {
			return nil, "", ErrUsernameTaken
		}
		return nil, "", err
	}

	token, err := util.GenerateToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) Login(req *model.LoginRequest) (*model.User, string, error) {
	user, err := s.userRepo.GetUserByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrUserNotFound
		}
		return nil, "", err
	}

	if !util.CheckPassword(req.Password, user.PasswordHash) {
		return nil, "", ErrWrongPassword
	}

	token, err := util.GenerateToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) GetUserById(userId int) (*model.User, error) {
	user, err := s.userRepo.GetUserById(userId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// Logout blacklists the token in redis until its natural expiry, the auth
// middleware rejects blacklisted tokens afterwards. Tokens without an exp
// claim fall back to the configured access token lifetime.
func (s *AuthService) Logout(ctx context.Context, token string, expiresAt *jwt.NumericDate) error {
	ttl := time.Duration(configs.GetConfigs().AccessTokenExpireHour) * time.Hour
	if expiresAt != nil {
		ttl = time.Until(expiresAt.Time)
	}
	if ttl <= 0 {
		return nil
	}
	return redis.SetRedis(ctx, "jwtKey:"+token, "revoked", ttl)
}

//------------------------------------------
//------------------------------------------

func validateRegisterRequest(req *model.RegisterRequest) error {
	req.Username = strings.TrimSpace(req.Username)
	if len(req.Username) < 3 || len(req.Username) > 50 {
		return NewValidationError(response.BadRequestBody)
	}
	if len(req.Password) < 6 {
		return NewValidationError(response.BadRequestBody)
	}
	if req.Age < 0 || req.Age > 120 {
		return NewValidationError(response.BadRequestBody)
	}
	if req.Email != "" {
		if err := checkmail.ValidateFormat(req.Email); err != nil {
			return NewValidationError(response.BadRequestBody)
		}
	}
	return nil
}
