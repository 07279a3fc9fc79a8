package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"retail-api/dtos"
	"retail-api/models"
	"retail-api/utils/apperror"
	"retail-api/utils/token"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const passwordCost = bcrypt.DefaultCost

const msgInvalidCredentials = "Invalid credentials"

type AuthService interface {
	Register(ctx context.Context, input dtos.RegisterInput) (*dtos.AuthResponse, error)
	Login(ctx context.Context, input dtos.LoginInput) (*dtos.AuthResponse, error)
	Profile(ctx context.Context, userID uint) (*dtos.UserResponse, error)
	UpdateProfile(ctx context.Context, userID uint, input dtos.UpdateProfileInput) (*dtos.UserResponse, error)
	ChangePassword(ctx context.Context, userID uint, input dtos.ChangePasswordInput) error
}

type authService struct {
	db     *gorm.DB
	tokens *token.Manager
}

func NewAuthService(db *gorm.DB, tokens *token.Manager) AuthService {
	return &authService{db: db, tokens: tokens}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) Register(ctx context.Context, input dtos.RegisterInput) (*dtos.AuthResponse, error) {
	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, apperror.Validation("Email and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), passwordCost)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("hash password: %w", err))
	}

	user := models.User{
		Name:     strings.TrimSpace(input.Name),
		Email:    email,
		Password: string(hash),
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, apperror.FromDB(err, "User already exists")
	}

	return s.issue(user)
}

func (s *authService) Login(ctx context.Context, input dtos.LoginInput) (*dtos.AuthResponse, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", normalizeEmail(input.Email)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.Unauthorized(msgInvalidCredentials)
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, apperror.Unauthorized(msgInvalidCredentials)
	}

	return s.issue(user)
}

func (s *authService) issue(user models.User) (*dtos.AuthResponse, error) {
	signed, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &dtos.AuthResponse{Token: signed, User: dtos.NewUserResponse(user)}, nil
}

func (s *authService) findUser(ctx context.Context, userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return &user, nil
}

func (s *authService) Profile(ctx context.Context, userID uint) (*dtos.UserResponse, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := dtos.NewUserResponse(*user)
	return &resp, nil
}

// UpdateProfile overwrites name and photo_url, including with empty values.
func (s *authService) UpdateProfile(ctx context.Context, userID uint, input dtos.UpdateProfileInput) (*dtos.UserResponse, error) {
	result := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).
		Updates(map[string]interface{}{
			"name":      strings.TrimSpace(input.Name),
			"photo_url": input.PhotoURL,
		})
	if result.Error != nil {
		return nil, apperror.Internal(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, apperror.NotFound("User not found")
	}
	return s.Profile(ctx, userID)
}

func (s *authService) ChangePassword(ctx context.Context, userID uint, input dtos.ChangePasswordInput) error {
	if input.CurrentPassword == "" || input.NewPassword == "" {
		return apperror.Validation("Current and new password are required")
	}

	user, err := s.findUser(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.CurrentPassword)); err != nil {
		return apperror.Unauthorized("Current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), passwordCost)
	if err != nil {
		return apperror.Internal(fmt.Errorf("hash password: %w", err))
	}
	if err := s.db.WithContext(ctx).Model(user).Update("password_hash", string(hash)).Error; err != nil {
		return apperror.Internal(err)
	}
	return nil
}
