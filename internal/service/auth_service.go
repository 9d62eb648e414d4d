package service

import (
	"errors"
	"fmt"

	"github.com/edumobile/edu-api/internal/apperrors"
	"github.com/edumobile/edu-api/internal/dto"
	"github.com/edumobile/edu-api/internal/model"
	"github.com/edumobile/edu-api/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

type AuthService interface {
	Login(email, password string) (*dto.AuthResponse, error)
	Register(req dto.RegisterRequest) (*dto.AuthResponse, error)
	ValidateToken(token string) (*dto.TokenValidationResponse, error)
	RefreshToken(refreshToken string) (*dto.AuthResponse, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *TokenManager
}

func NewAuthService(userRepo repository.UserRepository, tokens *TokenManager) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens}
}

func (s *authService) Login(email, password string) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user with this email not found: %w", apperrors.ErrUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid password: %w", apperrors.ErrUnauthorized)
	}
	if user.IsBlocked {
		return nil, fmt.Errorf("account is blocked: %w", apperrors.ErrUnauthorized)
	}

	if err := s.userRepo.TouchLastAccess(user.ID); err != nil {
		log.Warn().Err(err).Uint("userID", user.ID).Msg("Login: failed to touch last access")
	}

	return s.issueTokens(user, true)
}

func (s *authService) Register(req dto.RegisterRequest) (*dto.AuthResponse, error) {
	existing, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("checking email: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("user with this email already exists: %w", apperrors.ErrAlreadyExists)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
		LastName:     req.LastName,
		Patronymic:   req.Patronymic,
		Role:         "student",
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, apperrors.ErrAlreadyExists) {
			return nil, fmt.Errorf("user with this email already exists: %w", apperrors.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}

	log.Info().Uint("userID", user.ID).Str("email", user.Email).Msg("Register: new user created")
	return s.issueTokens(user, false)
}

func (s *authService) ValidateToken(token string) (*dto.TokenValidationResponse, error) {
	claims, err := s.tokens.ParseAccessToken(token)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("user not found: %w", apperrors.ErrUnauthorized)
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	if user.IsBlocked {
		return nil, fmt.Errorf("account is blocked: %w", apperrors.ErrUnauthorized)
	}

	var userResp dto.UserResponse
	if err := copier.Copy(&userResp, user); err != nil {
		return nil, fmt.Errorf("preparing response: %w", err)
	}
	return &dto.TokenValidationResponse{Valid: true, User: userResp}, nil
}

func (s *authService) RefreshToken(refreshToken string) (*dto.AuthResponse, error) {
	claims, err := s.tokens.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("user not found: %w", apperrors.ErrUnauthorized)
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	if user.IsBlocked {
		return nil, fmt.Errorf("account is blocked: %w", apperrors.ErrUnauthorized)
	}

	return s.issueTokens(user, true)
}

func (s *authService) issueTokens(user *model.User, withRefresh bool) (*dto.AuthResponse, error) {
	token, err := s.tokens.IssueAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("issuing access token: %w", err)
	}

	resp := &dto.AuthResponse{
		Token:     token,
		ExpiresIn: s.tokens.AccessTTL().String(),
	}
	if withRefresh {
		refresh, err := s.tokens.IssueRefreshToken(user.ID)
		if err != nil {
			return nil, fmt.Errorf("issuing refresh token: %w", err)
		}
		resp.RefreshToken = refresh
	}
	if err := copier.Copy(&resp.User, user); err != nil {
		return nil, fmt.Errorf("preparing response: %w", err)
	}
	return resp, nil
}
