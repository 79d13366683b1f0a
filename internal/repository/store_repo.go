package repository

import (
	"go-dealership-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StoreRepository interface {
	Create(store *model.Store) error
	FindAll() ([]model.Store, error)
	FindByID(id uuid.UUID) (*model.Store, error)
	FindByTaxID(taxID string) (*model.Store, error)
	Delete(id uuid.UUID) error
}

type storeRepo struct {
	db *gorm.DB
}

func NewStoreRepo(db *gorm.DB) StoreRepository {
	return &storeRepo{db}
}

func (r *storeRepo) Create(store *model.Store) error {
	return r.db.Create(store).Error
}

func (r *storeRepo) FindAll() ([]model.Store, error) {
	var stores []model.Store
	err := r.db.Order("created_at DESC").Find(&stores).Error
	return stores, err
}

func (r *storeRepo) FindByID(id uuid.UUID) (*model.Store, error) {
	var store model.Store
	if err := r.db.First(&store, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &store, nil
}

func (r *storeRepo) FindByTaxID(taxID string) (*model.Store, error) {
	var store model.Store
	if err := r.db.First(&store, "tax_id = ?", taxID).Error; err != nil {
		return nil, err
	}
	return &store, nil
}

// Delete removes the store only. Vehicles reference stores weakly and are
// left untouched.
func (r *storeRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Store{}, "id = ?", id).Error
}
