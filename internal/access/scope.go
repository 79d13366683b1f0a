// Package access computes which records a resolved identity may read or
// mutate. Scopes are applied at the query boundary: the repositories turn
// them into WHERE clauses instead of post-filtering loaded sets.
package access

import (
	"errors"

	"go-dealership-api/internal/model"

	"github.com/google/uuid"
)

var (
	ErrForbidden              = errors.New("role lacks scope for the requested action")
	ErrMissingStoreAssignment = errors.New("user must be assigned to a store")
	ErrSelfDeleteForbidden    = errors.New("cannot delete own account")
)

// VehicleScope restricts a vehicle query. Exactly one of the fields is
// meaningful: All for admins, StoreID for managers, CreatorID for sellers.
// Empty marks a scope that matches nothing (manager without a store).
type VehicleScope struct {
	All       bool
	Empty     bool
	StoreID   *uuid.UUID
	CreatorID *uuid.UUID
}

// UserScope restricts a user query: everything for admins, one store for
// managers.
type UserScope struct {
	All     bool
	StoreID *uuid.UUID
}

// VehicleScopeFor computes the read scope for vehicle listings.
//
//	admin   -> all vehicles
//	manager -> vehicles of the manager's store (empty set without a store)
//	seller  -> vehicles created by the seller
func VehicleScopeFor(actor *model.User) VehicleScope {
	switch actor.Role {
	case model.RoleAdmin:
		return VehicleScope{All: true}
	case model.RoleManager:
		if actor.StoreID == nil {
			return VehicleScope{Empty: true}
		}
		return VehicleScope{StoreID: actor.StoreID}
	default:
		creatorID := actor.ID
		return VehicleScope{CreatorID: &creatorID}
	}
}

// CanWriteVehicle checks edit/delete/sell rights on a specific vehicle.
func CanWriteVehicle(actor *model.User, vehicle *model.Vehicle) error {
	switch actor.Role {
	case model.RoleAdmin:
		return nil
	case model.RoleManager:
		if actor.StoreID == nil {
			return ErrMissingStoreAssignment
		}
		if vehicle.StoreID != *actor.StoreID {
			return ErrForbidden
		}
		return nil
	default:
		if vehicle.CreatedByUserID != actor.ID {
			return ErrForbidden
		}
		return nil
	}
}

// ForceOwnership stamps the ownership fields on a vehicle being created.
// The creator is always the actor; managers and sellers get their own store
// forced regardless of what the request carried, admins keep the supplied
// store.
func ForceOwnership(actor *model.User, vehicle *model.Vehicle) error {
	vehicle.CreatedByUserID = actor.ID

	if actor.Role == model.RoleAdmin {
		return nil
	}
	if actor.StoreID == nil {
		return ErrMissingStoreAssignment
	}
	vehicle.StoreID = *actor.StoreID
	return nil
}

// UserScopeFor computes the read scope for user listings.
//
//	admin   -> all users
//	manager -> users of the manager's store (refused without a store)
//	seller  -> refused entirely
func UserScopeFor(actor *model.User) (UserScope, error) {
	switch actor.Role {
	case model.RoleAdmin:
		return UserScope{All: true}, nil
	case model.RoleManager:
		if actor.StoreID == nil {
			return UserScope{}, ErrMissingStoreAssignment
		}
		return UserScope{StoreID: actor.StoreID}, nil
	default:
		return UserScope{}, ErrForbidden
	}
}

// CanMutateUser restricts user update/delete to admins.
func CanMutateUser(actor *model.User) error {
	if actor.Role != model.RoleAdmin {
		return ErrForbidden
	}
	return nil
}

// CanDeleteUser additionally refuses self-deletion.
func CanDeleteUser(actor *model.User, targetID uuid.UUID) error {
	if err := CanMutateUser(actor); err != nil {
		return err
	}
	if actor.ID == targetID {
		return ErrSelfDeleteForbidden
	}
	return nil
}
