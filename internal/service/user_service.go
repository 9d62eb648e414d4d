package service

import (
	"errors"
	"fmt"

	"github.com/edumobile/edu-api/internal/apperrors"
	"github.com/edumobile/edu-api/internal/dto"
	"github.com/edumobile/edu-api/internal/repository"
	"github.com/jinzhu/copier"
)

type UserService interface {
	GetUserByID(id uint) (*dto.UserResponse, error)
	GetAllUsers() ([]dto.UserResponse, error)
	UpdateUser(id uint, req dto.UpdateUserRequest) (*dto.UserResponse, error)
	DeleteUser(id uint) error
	GetUserStats(id uint) (*repository.UserStats, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetUserByID(id uint) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("user not found: %w", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("looking up user %d: %w", id, err)
	}

	var resp dto.UserResponse
	if err := copier.Copy(&resp, user); err != nil {
		return nil, fmt.Errorf("preparing response: %w", err)
	}
	return &resp, nil
}

func (s *userService) GetAllUsers() ([]dto.UserResponse, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		var item dto.UserResponse
		if err := copier.Copy(&item, &users[i]); err != nil {
			return nil, fmt.Errorf("preparing response: %w", err)
		}
		resp = append(resp, item)
	}
	return resp, nil
}

func (s *userService) UpdateUser(id uint, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("user not found: %w", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("looking up user %d: %w", id, err)
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Patronymic != nil {
		user.Patronymic = *req.Patronymic
	}
	if req.IsBlocked != nil {
		user.IsBlocked = *req.IsBlocked
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("updating user %d: %w", id, err)
	}

	var resp dto.UserResponse
	if err := copier.Copy(&resp, user); err != nil {
		return nil, fmt.Errorf("preparing response: %w", err)
	}
	return &resp, nil
}

func (s *userService) DeleteUser(id uint) error {
	if err := s.userRepo.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("user not found: %w", apperrors.ErrNotFound)
		}
		return fmt.Errorf("deleting user %d: %w", id, err)
	}
	return nil
}

func (s *userService) GetUserStats(id uint) (*repository.UserStats, error) {
	if _, err := s.userRepo.FindByID(id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("user not found: %w", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("looking up user %d: %w", id, err)
	}
	stats, err := s.userRepo.GetStats(id)
	if err != nil {
		return nil, fmt.Errorf("computing user stats: %w", err)
	}
	return stats, nil
}
