package service

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"go-dealership-api/internal/access"
	"go-dealership-api/internal/model"

	"github.com/google/uuid"
)

func TestUserList_Scoping(t *testing.T) {
	storeX := uuid.New()
	storeY := uuid.New()

	admin := newAdmin()
	managerX := newManager(&storeX)
	sellerX := newSeller(&storeX)
	sellerX.Password = "s3cret"
	sellerY := newSeller(&storeY)

	repo := &fakeUserRepo{users: []*model.User{admin, managerX, sellerX, sellerY}}
	svc := NewUserService(repo)

	t.Run("manager sees only own store, passwords excluded", func(t *testing.T) {
		users, err := svc.List(managerX)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(users) != 2 {
			t.Fatalf("expected 2 users in store X, got %d", len(users))
		}
		for _, u := range users {
			if u.StoreID == nil || *u.StoreID != storeX {
				t.Fatalf("user %s outside manager store", u.ID)
			}
		}

		payload, err := json.Marshal(users)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if strings.Contains(string(payload), "s3cret") || strings.Contains(string(payload), "password") {
			t.Fatal("password leaked into the user list payload")
		}
	})

	t.Run("storeless manager is refused", func(t *testing.T) {
		if _, err := svc.List(newManager(nil)); !errors.Is(err, access.ErrMissingStoreAssignment) {
			t.Fatalf("expected ErrMissingStoreAssignment, got %v", err)
		}
	})

	t.Run("seller is refused", func(t *testing.T) {
		if _, err := svc.List(sellerX); !errors.Is(err, access.ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("admin sees everyone", func(t *testing.T) {
		users, err := svc.List(admin)
		if err != nil || len(users) != 4 {
			t.Fatalf("expected 4 users, got %d err=%v", len(users), err)
		}
	})
}

func TestUserUpdate(t *testing.T) {
	storeX := uuid.New()
	admin := newAdmin()
	target := newSeller(&storeX)

	t.Run("admin updates role and store", func(t *testing.T) {
		repo := &fakeUserRepo{users: []*model.User{admin, target}}
		svc := NewUserService(repo)

		resp, err := svc.Update(admin, target.ID, &UpdateUserRequest{
			Name: "Promoted", Email: target.Email, Role: model.RoleManager, StoreID: &storeX,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Role != model.RoleManager || resp.Name != "Promoted" {
			t.Fatalf("update not applied: %+v", resp)
		}
	})

	t.Run("non-admin is refused", func(t *testing.T) {
		repo := &fakeUserRepo{users: []*model.User{admin, target}}
		svc := NewUserService(repo)

		_, err := svc.Update(newManager(&storeX), target.ID, &UpdateUserRequest{
			Name: "X", Email: "x@auto.com", Role: model.RoleSeller,
		})
		if !errors.Is(err, access.ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("duplicate email is refused", func(t *testing.T) {
		other := newManager(&storeX)
		repo := &fakeUserRepo{users: []*model.User{admin, target, other}}
		svc := NewUserService(repo)

		_, err := svc.Update(admin, target.ID, &UpdateUserRequest{
			Name: target.Name, Email: other.Email, Role: target.Role,
		})
		if !errors.Is(err, ErrEmailExists) {
			t.Fatalf("expected ErrEmailExists, got %v", err)
		}
	})
}

func TestUserDelete(t *testing.T) {
	storeX := uuid.New()

	t.Run("admin cannot delete own account", func(t *testing.T) {
		admin := newAdmin()
		repo := &fakeUserRepo{users: []*model.User{admin}}
		svc := NewUserService(repo)

		if err := svc.Delete(admin, admin.ID); !errors.Is(err, access.ErrSelfDeleteForbidden) {
			t.Fatalf("expected ErrSelfDeleteForbidden, got %v", err)
		}
		if len(repo.users) != 1 {
			t.Fatal("self-delete refusal must not remove the record")
		}
	})

	t.Run("deleting another user removes exactly that record", func(t *testing.T) {
		admin := newAdmin()
		victim := newSeller(&storeX)
		bystander := newManager(&storeX)
		repo := &fakeUserRepo{users: []*model.User{admin, victim, bystander}}
		svc := NewUserService(repo)

		if err := svc.Delete(admin, victim.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.users) != 2 {
			t.Fatalf("expected 2 users left, got %d", len(repo.users))
		}
		if _, err := repo.FindByID(victim.ID); err == nil {
			t.Fatal("victim still present")
		}
		if _, err := repo.FindByID(bystander.ID); err != nil {
			t.Fatal("bystander was removed")
		}
	})

	t.Run("unknown target fails with not found", func(t *testing.T) {
		admin := newAdmin()
		repo := &fakeUserRepo{users: []*model.User{admin}}
		svc := NewUserService(repo)

		if err := svc.Delete(admin, uuid.New()); !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("non-admin is refused", func(t *testing.T) {
		admin := newAdmin()
		seller := newSeller(&storeX)
		repo := &fakeUserRepo{users: []*model.User{admin, seller}}
		svc := NewUserService(repo)

		if err := svc.Delete(seller, admin.ID); !errors.Is(err, access.ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})
}
