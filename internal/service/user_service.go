package service

import (
	"errors"
	"fmt"

	"go-dealership-api/internal/access"
	"go-dealership-api/internal/model"
	"go-dealership-api/internal/repository"
	"go-dealership-api/pkg/validator"

	"github.com/google/uuid"
)

var ErrUserNotFound = errors.New("user not found")

type UserService interface {
	List(actor *model.User) ([]model.UserResponse, error)
	Update(actor *model.User, userID uuid.UUID, req *UpdateUserRequest) (*model.UserResponse, error)
	Delete(actor *model.User, userID uuid.UUID) error
}

type UpdateUserRequest struct {
	Name    string     `json:"name" validate:"required"`
	Email   string     `json:"email" validate:"required,email"`
	Role    model.Role `json:"role" validate:"required,oneof=seller manager admin"`
	StoreID *uuid.UUID `json:"store_id"`
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// List returns users visible to the actor. Responses never carry passwords.
func (s *userService) List(actor *model.User) ([]model.UserResponse, error) {
	scope, err := access.UserScopeFor(actor)
	if err != nil {
		return nil, err
	}

	users, err := s.userRepo.FindScoped(scope)
	if err != nil {
		return nil, err
	}

	responses := make([]model.UserResponse, len(users))
	for i, user := range users {
		responses[i] = user.ToResponse()
	}
	return responses, nil
}

// Update is admin-only. The allow-listed fields are name, email, role and
// store assignment; the password is untouched here.
func (s *userService) Update(actor *model.User, userID uuid.UUID, req *UpdateUserRequest) (*model.UserResponse, error) {
	if err := access.CanMutateUser(actor); err != nil {
		return nil, err
	}

	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if req.Email != user.Email {
		existing, _ := s.userRepo.FindByEmail(req.Email)
		if existing != nil {
			return nil, ErrEmailExists
		}
	}

	user.Name = req.Name
	user.Email = req.Email
	user.Role = req.Role
	user.StoreID = req.StoreID
	user.UpdatedBy = actor.ID.String()

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	resp := user.ToResponse()
	return &resp, nil
}

// Delete is admin-only and refuses self-deletion.
func (s *userService) Delete(actor *model.User, userID uuid.UUID) error {
	if err := access.CanDeleteUser(actor, userID); err != nil {
		return err
	}

	if _, err := s.userRepo.FindByID(userID); err != nil {
		return ErrUserNotFound
	}
	return s.userRepo.Delete(userID)
}
