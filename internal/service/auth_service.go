package service

import (
	"errors"
	"fmt"

	"go-dealership-api/internal/model"
	"go-dealership-api/internal/repository"
	"go-dealership-api/pkg/validator"

	"github.com/google/uuid"
)

var (
	ErrUnauthenticated    = errors.New("authentication required")
	ErrUnknownIdentity    = errors.New("identity does not resolve to a user")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailExists        = errors.New("email already registered")
)

type AuthService interface {
	Resolve(identifier string) (*model.User, error)
	Login(email, password string) (*model.UserResponse, error)
	Register(req *RegisterRequest) (*model.User, error)
}

type RegisterRequest struct {
	Name     string     `json:"name" validate:"required"`
	Email    string     `json:"email" validate:"required,email"`
	Password string     `json:"password" validate:"required"`
	Role     model.Role `json:"role"`
	StoreID  *uuid.UUID `json:"store_id"`
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

// Resolve looks up the caller identity from the opaque identifier supplied
// per request. The identifier is trusted as presented; there is no
// cryptographic verification.
func (s *authService) Resolve(identifier string) (*model.User, error) {
	if identifier == "" {
		return nil, ErrUnauthenticated
	}

	id, err := uuid.Parse(identifier)
	if err != nil {
		return nil, ErrUnknownIdentity
	}

	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, ErrUnknownIdentity
	}
	return user, nil
}

// Login compares the stored plain-text password. The response carries the
// user id the client sends back as X-User-ID on subsequent requests.
func (s *authService) Login(email, password string) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	resp := user.ToResponse()
	return &resp, nil
}

func (s *authService) Register(req *RegisterRequest) (*model.User, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	if req.Role == "" {
		req.Role = model.RoleSeller
	}
	if !req.Role.Valid() {
		return nil, errors.New("invalid role")
	}

	existing, _ := s.userRepo.FindByEmail(req.Email)
	if existing != nil {
		return nil, ErrEmailExists
	}

	user := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password, // stored as-is, see model.User
		Role:     req.Role,
		StoreID:  req.StoreID,
	}
	user.CreatedBy = "registration"
	user.UpdatedBy = "registration"

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}
