package model

// Store represents a dealership branch owning a subset of vehicles and users
type Store struct {
	BaseModel
	Name  string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	TaxID string `gorm:"type:varchar(20);not null" json:"tax_id" validate:"required"` // CNPJ
}
