package service

import (
	"go-dealership-api/internal/access"
	"go-dealership-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repository fakes. FindScoped mirrors the WHERE clauses of the
// real repositories so the scope semantics stay observable from the
// service layer.

type fakeVehicleRepo struct {
	vehicles []*model.Vehicle
	events   []*model.TransferEvent

	// Simulates the window where a concurrent insert is not yet visible
	// to the advisory chassis lookup.
	chassisLookupMiss bool

	createErr error
	updateErr error
}

func (f *fakeVehicleRepo) Create(v *model.Vehicle) error {
	if f.createErr != nil {
		return f.createErr
	}
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	f.vehicles = append(f.vehicles, v)
	return nil
}

func (f *fakeVehicleRepo) FindScoped(scope access.VehicleScope) ([]model.Vehicle, error) {
	if scope.Empty {
		return []model.Vehicle{}, nil
	}
	var out []model.Vehicle
	for _, v := range f.vehicles {
		switch {
		case scope.All:
			out = append(out, *v)
		case scope.StoreID != nil && v.StoreID == *scope.StoreID:
			out = append(out, *v)
		case scope.CreatorID != nil && v.CreatedByUserID == *scope.CreatorID:
			out = append(out, *v)
		}
	}
	return out, nil
}

func (f *fakeVehicleRepo) FindByID(id uuid.UUID) (*model.Vehicle, error) {
	for _, v := range f.vehicles {
		if v.ID == id {
			cp := *v
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeVehicleRepo) FindByChassis(chassis string) (*model.Vehicle, error) {
	if f.chassisLookupMiss {
		return nil, gorm.ErrRecordNotFound
	}
	for _, v := range f.vehicles {
		if v.Chassis == chassis {
			cp := *v
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeVehicleRepo) Update(v *model.Vehicle) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	for i, existing := range f.vehicles {
		if existing.ID == v.ID {
			cp := *v
			f.vehicles[i] = &cp
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeVehicleRepo) UpdateWithTransfer(v *model.Vehicle, event *model.TransferEvent) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.events = append(f.events, event)
	return f.Update(v)
}

func (f *fakeVehicleRepo) Delete(id uuid.UUID) error {
	for i, v := range f.vehicles {
		if v.ID == id {
			f.vehicles = append(f.vehicles[:i], f.vehicles[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeStoreRepo struct {
	stores []*model.Store
}

func (f *fakeStoreRepo) Create(s *model.Store) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	f.stores = append(f.stores, s)
	return nil
}

func (f *fakeStoreRepo) FindAll() ([]model.Store, error) {
	out := make([]model.Store, 0, len(f.stores))
	for _, s := range f.stores {
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeStoreRepo) FindByID(id uuid.UUID) (*model.Store, error) {
	for _, s := range f.stores {
		if s.ID == id {
			cp := *s
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStoreRepo) FindByTaxID(taxID string) (*model.Store, error) {
	for _, s := range f.stores {
		if s.TaxID == taxID {
			cp := *s
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStoreRepo) Delete(id uuid.UUID) error {
	for i, s := range f.stores {
		if s.ID == id {
			f.stores = append(f.stores[:i], f.stores[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeTransferRepo struct {
	events []*model.TransferEvent
}

func (f *fakeTransferRepo) Create(e *model.TransferEvent) error {
	f.events = append(f.events, e)
	return nil
}

func (f *fakeTransferRepo) FindAll() ([]model.TransferEvent, error) {
	out := make([]model.TransferEvent, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, *e)
	}
	return out, nil
}

func (f *fakeTransferRepo) FindByVehicleID(vehicleID uuid.UUID) ([]model.TransferEvent, error) {
	var out []model.TransferEvent
	for _, e := range f.events {
		if e.VehicleID == vehicleID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeTransferRepo) FindByStoreID(storeID uuid.UUID) ([]model.TransferEvent, error) {
	var out []model.TransferEvent
	for _, e := range f.events {
		if e.OriginStoreID == storeID || e.DestStoreID == storeID {
			out = append(out, *e)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	users []*model.User
}

func (f *fakeUserRepo) FindByEmail(email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) FindByID(id uuid.UUID) (*model.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) FindScoped(scope access.UserScope) ([]model.User, error) {
	var out []model.User
	for _, u := range f.users {
		if scope.All {
			out = append(out, *u)
			continue
		}
		if scope.StoreID != nil && u.StoreID != nil && *u.StoreID == *scope.StoreID {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) Create(u *model.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	f.users = append(f.users, u)
	return nil
}

func (f *fakeUserRepo) Update(u *model.User) error {
	for i, existing := range f.users {
		if existing.ID == u.ID {
			cp := *u
			f.users[i] = &cp
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) Delete(id uuid.UUID) error {
	for i, u := range f.users {
		if u.ID == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// Test identities and fixtures shared across service tests.

func newAdmin() *model.User {
	u := &model.User{Name: "Admin", Email: "admin@auto.com", Role: model.RoleAdmin}
	u.ID = uuid.New()
	return u
}

func newManager(storeID *uuid.UUID) *model.User {
	u := &model.User{Name: "Manager", Email: "manager@auto.com", Role: model.RoleManager, StoreID: storeID}
	u.ID = uuid.New()
	return u
}

func newSeller(storeID *uuid.UUID) *model.User {
	u := &model.User{Name: "Seller", Email: "seller@auto.com", Role: model.RoleSeller, StoreID: storeID}
	u.ID = uuid.New()
	return u
}

func newStore(name string) *model.Store {
	s := &model.Store{Name: name, TaxID: "11222333000181"}
	s.ID = uuid.New()
	return s
}

func newVehicle(storeID uuid.UUID, storeName string, creator uuid.UUID) *model.Vehicle {
	v := &model.Vehicle{
		Type:            model.VehicleCar,
		Brand:           "Toyota",
		Chassis:         "9BW111060T5002156",
		Year:            2020,
		Condition:       model.ConditionUsed,
		PurchasePrice:   10000,
		ExtraCosts:      500,
		SalePrice:       15000,
		Status:          model.StatusInStock,
		StoreID:         storeID,
		StoreName:       storeName,
		CreatedByUserID: creator,
	}
	v.ID = uuid.New()
	return v
}
