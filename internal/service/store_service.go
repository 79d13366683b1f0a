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

var ErrTaxIDExists = errors.New("tax id already registered")

type StoreService interface {
	List() ([]model.Store, error)
	Create(actor *model.User, req *CreateStoreRequest) (*model.Store, error)
	Delete(actor *model.User, id uuid.UUID) error
}

type CreateStoreRequest struct {
	Name  string `json:"name" validate:"required"`
	TaxID string `json:"tax_id" validate:"required"`
}

type storeService struct {
	storeRepo repository.StoreRepository
}

func NewStoreService(storeRepo repository.StoreRepository) StoreService {
	return &storeService{storeRepo: storeRepo}
}

// List is available to every authenticated user; the dashboard needs the
// store selector regardless of role.
func (s *storeService) List() ([]model.Store, error) {
	return s.storeRepo.FindAll()
}

func (s *storeService) Create(actor *model.User, req *CreateStoreRequest) (*model.Store, error) {
	if actor.Role != model.RoleAdmin {
		return nil, access.ErrForbidden
	}

	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	if existing, _ := s.storeRepo.FindByTaxID(req.TaxID); existing != nil {
		return nil, ErrTaxIDExists
	}

	store := &model.Store{Name: req.Name, TaxID: req.TaxID}
	store.CreatedBy = actor.ID.String()
	store.UpdatedBy = actor.ID.String()

	if err := s.storeRepo.Create(store); err != nil {
		return nil, err
	}
	return store, nil
}

// Delete removes the store record only. Vehicles keep their (now dangling)
// store reference and denormalized store name; references are weak.
func (s *storeService) Delete(actor *model.User, id uuid.UUID) error {
	if actor.Role != model.RoleAdmin {
		return access.ErrForbidden
	}

	if _, err := s.storeRepo.FindByID(id); err != nil {
		return ErrStoreNotFound
	}
	return s.storeRepo.Delete(id)
}
