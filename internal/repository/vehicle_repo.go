package repository

import (
	"go-dealership-api/internal/access"
	"go-dealership-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VehicleRepository interface {
	Create(vehicle *model.Vehicle) error
	FindScoped(scope access.VehicleScope) ([]model.Vehicle, error)
	FindByID(id uuid.UUID) (*model.Vehicle, error)
	FindByChassis(chassis string) (*model.Vehicle, error)
	Update(vehicle *model.Vehicle) error
	UpdateWithTransfer(vehicle *model.Vehicle, event *model.TransferEvent) error
	Delete(id uuid.UUID) error
}

type vehicleRepo struct {
	db *gorm.DB
}

func NewVehicleRepo(db *gorm.DB) VehicleRepository {
	return &vehicleRepo{db}
}

func (r *vehicleRepo) Create(vehicle *model.Vehicle) error {
	return r.db.Create(vehicle).Error
}

// FindScoped applies the access scope as a WHERE clause at the query
// boundary. An empty scope (storeless manager) returns no rows without
// touching the table.
func (r *vehicleRepo) FindScoped(scope access.VehicleScope) ([]model.Vehicle, error) {
	if scope.Empty {
		return []model.Vehicle{}, nil
	}

	query := r.db.Order("created_at DESC")
	switch {
	case scope.StoreID != nil:
		query = query.Where("store_id = ?", scope.StoreID)
	case scope.CreatorID != nil:
		query = query.Where("created_by_user_id = ?", scope.CreatorID)
	}

	var vehicles []model.Vehicle
	if err := query.Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (r *vehicleRepo) FindByID(id uuid.UUID) (*model.Vehicle, error) {
	var vehicle model.Vehicle
	if err := r.db.First(&vehicle, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *vehicleRepo) FindByChassis(chassis string) (*model.Vehicle, error) {
	var vehicle model.Vehicle
	if err := r.db.First(&vehicle, "chassis = ?", chassis).Error; err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *vehicleRepo) Update(vehicle *model.Vehicle) error {
	return r.db.Save(vehicle).Error
}

// UpdateWithTransfer persists the audit event and the vehicle replacement in
// one transaction so a failed save cannot leave an orphan audit record.
func (r *vehicleRepo) UpdateWithTransfer(vehicle *model.Vehicle, event *model.TransferEvent) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(event).Error; err != nil {
			return err
		}
		return tx.Save(vehicle).Error
	})
}

func (r *vehicleRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Vehicle{}, "id = ?", id).Error
}
