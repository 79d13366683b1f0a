package repository

import (
	"go-dealership-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransferRepository is append-only: events are written once and never
// mutated or deleted.
type TransferRepository interface {
	Create(event *model.TransferEvent) error
	FindAll() ([]model.TransferEvent, error)
	FindByVehicleID(vehicleID uuid.UUID) ([]model.TransferEvent, error)
	FindByStoreID(storeID uuid.UUID) ([]model.TransferEvent, error)
}

type transferRepo struct {
	db *gorm.DB
}

func NewTransferRepo(db *gorm.DB) TransferRepository {
	return &transferRepo{db}
}

func (r *transferRepo) Create(event *model.TransferEvent) error {
	return r.db.Create(event).Error
}

func (r *transferRepo) FindAll() ([]model.TransferEvent, error) {
	var events []model.TransferEvent
	err := r.db.Order("occurred_at DESC").Find(&events).Error
	return events, err
}

func (r *transferRepo) FindByVehicleID(vehicleID uuid.UUID) ([]model.TransferEvent, error) {
	var events []model.TransferEvent
	err := r.db.Where("vehicle_id = ?", vehicleID).Order("occurred_at DESC").Find(&events).Error
	return events, err
}

// FindByStoreID returns events where the store appears as origin or
// destination.
func (r *transferRepo) FindByStoreID(storeID uuid.UUID) ([]model.TransferEvent, error) {
	var events []model.TransferEvent
	err := r.db.Where("origin_store_id = ? OR dest_store_id = ?", storeID, storeID).
		Order("occurred_at DESC").Find(&events).Error
	return events, err
}
