package service

import (
	"errors"
	"fmt"
	"time"

	"go-dealership-api/internal/access"
	"go-dealership-api/internal/model"
	"go-dealership-api/internal/repository"
	"go-dealership-api/internal/ws"
	"go-dealership-api/pkg/validator"

	"github.com/google/uuid"
)

var (
	ErrVehicleNotFound    = errors.New("vehicle not found")
	ErrStoreNotFound      = errors.New("store not found")
	ErrChassisExists      = errors.New("chassis already registered")
	ErrStoreRequired      = errors.New("store_id is required")
	ErrVehicleAlreadySold = errors.New("vehicle is already sold")
)

type VehicleService interface {
	List(actor *model.User) ([]model.Vehicle, error)
	Create(actor *model.User, req *CreateVehicleRequest) (*model.Vehicle, error)
	Update(actor *model.User, id uuid.UUID, req *UpdateVehicleRequest) (*model.Vehicle, error)
	Sell(actor *model.User, id uuid.UUID) (*model.Vehicle, error)
	Delete(actor *model.User, id uuid.UUID) error
	ListTransfers(vehicleID, storeID *uuid.UUID) ([]model.TransferEvent, error)
}

type CreateVehicleRequest struct {
	Type          model.VehicleType `json:"type" validate:"required,oneof=car motorcycle truck"`
	Brand         string            `json:"brand" validate:"required"`
	Chassis       string            `json:"chassis" validate:"required"`
	Year          int               `json:"year" validate:"required"`
	Mileage       int               `json:"mileage"`
	Condition     model.Condition   `json:"condition" validate:"required,oneof=new used"`
	Notes         string            `json:"notes"`
	PurchasePrice float64           `json:"purchase_price" validate:"required"`
	ExtraCosts    float64           `json:"extra_costs"`
	SalePrice     float64           `json:"sale_price" validate:"required"`

	// Honored for admins only; managers and sellers get their own store
	// forced regardless of what was supplied.
	StoreID *uuid.UUID `json:"store_id"`
}

// UpdateVehicleRequest is the explicit allow-list of mutable fields. Nothing
// outside it ever reaches the stored record.
type UpdateVehicleRequest struct {
	Type          model.VehicleType `json:"type" validate:"required,oneof=car motorcycle truck"`
	Brand         string            `json:"brand" validate:"required"`
	Chassis       string            `json:"chassis" validate:"required"`
	Year          int               `json:"year" validate:"required"`
	Mileage       int               `json:"mileage"`
	Condition     model.Condition   `json:"condition" validate:"required,oneof=new used"`
	Notes         string            `json:"notes"`
	PurchasePrice float64           `json:"purchase_price" validate:"required"`
	ExtraCosts    float64           `json:"extra_costs"`
	SalePrice     float64           `json:"sale_price" validate:"required"`

	// Moving the vehicle to another store triggers the transfer audit trail
	StoreID *uuid.UUID `json:"store_id"`
}

type vehicleService struct {
	vehicleRepo  repository.VehicleRepository
	storeRepo    repository.StoreRepository
	transferRepo repository.TransferRepository
	wsHub        *ws.Hub
}

func NewVehicleService(vRepo repository.VehicleRepository, sRepo repository.StoreRepository, tRepo repository.TransferRepository, hub *ws.Hub) VehicleService {
	return &vehicleService{
		vehicleRepo:  vRepo,
		storeRepo:    sRepo,
		transferRepo: tRepo,
		wsHub:        hub,
	}
}

// List returns the vehicles visible to the actor. The scope is resolved
// once and pushed into the repository query.
func (s *vehicleService) List(actor *model.User) ([]model.Vehicle, error) {
	return s.vehicleRepo.FindScoped(access.VehicleScopeFor(actor))
}

func (s *vehicleService) Create(actor *model.User, req *CreateVehicleRequest) (*model.Vehicle, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	// Advisory duplicate check only: a concurrent create with the same
	// chassis can race past it, there is no unique index backing it up.
	if existing, _ := s.vehicleRepo.FindByChassis(req.Chassis); existing != nil {
		return nil, ErrChassisExists
	}

	vehicle := &model.Vehicle{
		Type:          req.Type,
		Brand:         req.Brand,
		Chassis:       req.Chassis,
		Year:          req.Year,
		Mileage:       req.Mileage,
		Condition:     req.Condition,
		Notes:         req.Notes,
		PurchasePrice: req.PurchasePrice,
		ExtraCosts:    req.ExtraCosts,
		SalePrice:     req.SalePrice,
		Status:        model.StatusInStock,
	}
	if req.StoreID != nil {
		vehicle.StoreID = *req.StoreID
	}

	if err := access.ForceOwnership(actor, vehicle); err != nil {
		return nil, err
	}
	if vehicle.StoreID == uuid.Nil {
		return nil, ErrStoreRequired
	}

	store, err := s.storeRepo.FindByID(vehicle.StoreID)
	if err != nil {
		return nil, ErrStoreNotFound
	}
	vehicle.StoreName = store.Name
	vehicle.CreatedBy = actor.ID.String()
	vehicle.UpdatedBy = actor.ID.String()

	if err := s.vehicleRepo.Create(vehicle); err != nil {
		return nil, err
	}

	s.publish("vehicle_created", vehicle, actor)
	return vehicle, nil
}

// Update applies the allow-listed field set onto the stored record. When the
// store reference changes, one transfer event is appended and the vehicle's
// transfer timestamp is stamped; both writes share a transaction. Store ids
// are compared as uuid values, so a same-store update can never emit an
// event through a representation mismatch.
func (s *vehicleService) Update(actor *model.User, id uuid.UUID, req *UpdateVehicleRequest) (*model.Vehicle, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	vehicle, err := s.vehicleRepo.FindByID(id)
	if err != nil {
		return nil, ErrVehicleNotFound
	}
	if err := access.CanWriteVehicle(actor, vehicle); err != nil {
		return nil, err
	}

	originStoreID := vehicle.StoreID
	originStoreName := vehicle.StoreName

	vehicle.Type = req.Type
	vehicle.Brand = req.Brand
	vehicle.Chassis = req.Chassis
	vehicle.Year = req.Year
	vehicle.Mileage = req.Mileage
	vehicle.Condition = req.Condition
	vehicle.Notes = req.Notes
	vehicle.PurchasePrice = req.PurchasePrice
	vehicle.ExtraCosts = req.ExtraCosts
	vehicle.SalePrice = req.SalePrice
	vehicle.UpdatedBy = actor.ID.String()

	if req.StoreID == nil || *req.StoreID == originStoreID {
		if err := s.vehicleRepo.Update(vehicle); err != nil {
			return nil, err
		}
		return vehicle, nil
	}

	destStore, err := s.storeRepo.FindByID(*req.StoreID)
	if err != nil {
		return nil, ErrStoreNotFound
	}

	now := time.Now()
	vehicle.StoreID = destStore.ID
	vehicle.StoreName = destStore.Name
	vehicle.TransferredAt = &now

	event := &model.TransferEvent{
		VehicleID:       vehicle.ID,
		Brand:           vehicle.Brand,
		Chassis:         vehicle.Chassis,
		OriginStoreID:   originStoreID,
		OriginStoreName: originStoreName,
		DestStoreID:     destStore.ID,
		DestStoreName:   destStore.Name,
		OccurredAt:      now,
		ActorName:       actor.Name,
	}

	if err := s.vehicleRepo.UpdateWithTransfer(vehicle, event); err != nil {
		return nil, err
	}

	s.publish("vehicle_transferred", vehicle, actor)
	return vehicle, nil
}

// Sell flips the status to sold and stamps the sale date in the locale
// format the reporting aggregator parses.
func (s *vehicleService) Sell(actor *model.User, id uuid.UUID) (*model.Vehicle, error) {
	vehicle, err := s.vehicleRepo.FindByID(id)
	if err != nil {
		return nil, ErrVehicleNotFound
	}
	if err := access.CanWriteVehicle(actor, vehicle); err != nil {
		return nil, err
	}
	if vehicle.Status == model.StatusSold {
		return nil, ErrVehicleAlreadySold
	}

	vehicle.Status = model.StatusSold
	vehicle.SaleDate = time.Now().Format(model.SaleDateLayout)
	vehicle.UpdatedBy = actor.ID.String()

	if err := s.vehicleRepo.Update(vehicle); err != nil {
		return nil, err
	}

	s.publish("vehicle_sold", vehicle, actor)
	return vehicle, nil
}

func (s *vehicleService) Delete(actor *model.User, id uuid.UUID) error {
	vehicle, err := s.vehicleRepo.FindByID(id)
	if err != nil {
		return ErrVehicleNotFound
	}
	if err := access.CanWriteVehicle(actor, vehicle); err != nil {
		return err
	}
	return s.vehicleRepo.Delete(id)
}

func (s *vehicleService) ListTransfers(vehicleID, storeID *uuid.UUID) ([]model.TransferEvent, error) {
	switch {
	case vehicleID != nil:
		return s.transferRepo.FindByVehicleID(*vehicleID)
	case storeID != nil:
		return s.transferRepo.FindByStoreID(*storeID)
	default:
		return s.transferRepo.FindAll()
	}
}

func (s *vehicleService) publish(action string, vehicle *model.Vehicle, actor *model.User) {
	if s.wsHub == nil {
		return
	}
	s.wsHub.Publish(map[string]interface{}{
		"type":   "inventory_update",
		"action": action,
		"vehicle": map[string]interface{}{
			"id":         vehicle.ID,
			"brand":      vehicle.Brand,
			"chassis":    vehicle.Chassis,
			"status":     vehicle.Status,
			"store_id":   vehicle.StoreID,
			"store_name": vehicle.StoreName,
		},
		"user": map[string]interface{}{
			"id":   actor.ID,
			"name": actor.Name,
		},
		"message": fmt.Sprintf("%s: %s %s", actor.Name, action, vehicle.Brand),
	})
}
