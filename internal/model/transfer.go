package model

import (
	"time"

	"github.com/google/uuid"
)

// TransferEvent is an append-only audit record of a vehicle moving between
// stores. Created exactly once per detected store change on a vehicle
// update; never mutated or deleted. Brand, chassis and store names are
// denormalized so the log stays readable after the vehicle or store goes
// away.
type TransferEvent struct {
	BaseModel
	VehicleID uuid.UUID `gorm:"type:uuid;not null;index" json:"vehicle_id"`
	Brand     string    `gorm:"type:varchar(100)" json:"brand"`
	Chassis   string    `gorm:"type:varchar(50)" json:"chassis"`

	OriginStoreID   uuid.UUID `gorm:"type:uuid;index" json:"origin_store_id"`
	OriginStoreName string    `gorm:"type:varchar(255)" json:"origin_store_name"`
	DestStoreID     uuid.UUID `gorm:"type:uuid;index" json:"dest_store_id"`
	DestStoreName   string    `gorm:"type:varchar(255)" json:"dest_store_name"`

	OccurredAt time.Time `gorm:"not null" json:"occurred_at"`
	ActorName  string    `gorm:"type:varchar(255)" json:"actor_name"`
}
