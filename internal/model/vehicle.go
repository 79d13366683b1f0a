package model

import (
	"time"

	"github.com/google/uuid"
)

type VehicleType string

const (
	VehicleCar        VehicleType = "car"
	VehicleMotorcycle VehicleType = "motorcycle"
	VehicleTruck      VehicleType = "truck"
)

type Condition string

const (
	ConditionNew  Condition = "new"
	ConditionUsed Condition = "used"
)

type VehicleStatus string

const (
	StatusInStock VehicleStatus = "in_stock"
	StatusSold    VehicleStatus = "sold"
)

// SaleDateLayout is the locale format the dashboard writes sale dates in.
// The reporting aggregator parses it back; see report_service.go.
const SaleDateLayout = "02/01/2006"

type Vehicle struct {
	BaseModel
	Type      VehicleType `gorm:"type:varchar(20);not null" json:"type" validate:"required,oneof=car motorcycle truck"`
	Brand     string      `gorm:"type:varchar(100);not null" json:"brand" validate:"required"`
	Chassis   string      `gorm:"type:varchar(50);not null" json:"chassis" validate:"required"` // Uniqueness is advisory only, see VehicleService.Create
	Year      int         `gorm:"not null" json:"year" validate:"required"`
	Mileage   int         `gorm:"default:0" json:"mileage"`
	Condition Condition   `gorm:"type:varchar(10);not null;default:'used'" json:"condition" validate:"required,oneof=new used"`
	Notes     string      `gorm:"type:text" json:"notes"`

	PurchasePrice float64 `gorm:"not null" json:"purchase_price" validate:"required"`
	ExtraCosts    float64 `gorm:"default:0" json:"extra_costs"`
	SalePrice     float64 `gorm:"not null" json:"sale_price" validate:"required"`

	Status   VehicleStatus `gorm:"type:varchar(20);not null;default:'in_stock'" json:"status"`
	SaleDate string        `gorm:"type:varchar(10)" json:"sale_date"` // dd/mm/yyyy, empty while in stock

	// Owning branch, weakly referenced: deleting a store leaves its vehicles
	// in place. StoreName is denormalized for display and audit snapshots.
	StoreID   uuid.UUID `gorm:"type:uuid;not null;index" json:"store_id"`
	StoreName string    `gorm:"type:varchar(255)" json:"store_name"`

	CreatedByUserID uuid.UUID `gorm:"type:uuid;index" json:"created_by_user_id"`

	// Stamped whenever the vehicle changes stores
	TransferredAt *time.Time `json:"transferred_at,omitempty"`
}

// Profit is sale price minus total cost basis (purchase + extra costs)
func (v *Vehicle) Profit() float64 {
	return v.SalePrice - (v.PurchasePrice + v.ExtraCosts)
}
