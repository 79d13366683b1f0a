package service

import (
	"errors"
	"testing"

	"go-dealership-api/internal/model"

	"github.com/google/uuid"
)

func TestResolve(t *testing.T) {
	admin := newAdmin()
	repo := &fakeUserRepo{users: []*model.User{admin}}
	svc := NewAuthService(repo)

	t.Run("missing identifier", func(t *testing.T) {
		if _, err := svc.Resolve(""); !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
	})

	t.Run("malformed identifier", func(t *testing.T) {
		if _, err := svc.Resolve("not-a-uuid"); !errors.Is(err, ErrUnknownIdentity) {
			t.Fatalf("expected ErrUnknownIdentity, got %v", err)
		}
	})

	t.Run("unknown identifier", func(t *testing.T) {
		if _, err := svc.Resolve(uuid.New().String()); !errors.Is(err, ErrUnknownIdentity) {
			t.Fatalf("expected ErrUnknownIdentity, got %v", err)
		}
	})

	t.Run("resolves the full user record", func(t *testing.T) {
		user, err := svc.Resolve(admin.ID.String())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.ID != admin.ID || user.Role != model.RoleAdmin {
			t.Fatalf("wrong user resolved: %+v", user)
		}
	})
}

func TestLogin(t *testing.T) {
	seller := newSeller(nil)
	seller.Password = "123456"
	repo := &fakeUserRepo{users: []*model.User{seller}}
	svc := NewAuthService(repo)

	t.Run("valid credentials return the user payload", func(t *testing.T) {
		resp, err := svc.Login(seller.Email, "123456")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.ID != seller.ID {
			t.Fatal("wrong user returned")
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		if _, err := svc.Login(seller.Email, "wrong"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		if _, err := svc.Login("nobody@auto.com", "123456"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}

func TestRegister(t *testing.T) {
	t.Run("defaults to seller role", func(t *testing.T) {
		repo := &fakeUserRepo{}
		svc := NewAuthService(repo)

		user, err := svc.Register(&RegisterRequest{
			Name: "Ana", Email: "ana@auto.com", Password: "123456",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Role != model.RoleSeller {
			t.Fatalf("expected seller role, got %s", user.Role)
		}
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		existing := newSeller(nil)
		repo := &fakeUserRepo{users: []*model.User{existing}}
		svc := NewAuthService(repo)

		_, err := svc.Register(&RegisterRequest{
			Name: "Dup", Email: existing.Email, Password: "123456",
		})
		if !errors.Is(err, ErrEmailExists) {
			t.Fatalf("expected ErrEmailExists, got %v", err)
		}
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		svc := NewAuthService(&fakeUserRepo{})
		if _, err := svc.Register(&RegisterRequest{Name: "NoEmail"}); err == nil {
			t.Fatal("expected validation failure")
		}
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		svc := NewAuthService(&fakeUserRepo{})
		_, err := svc.Register(&RegisterRequest{
			Name: "Bad", Email: "bad@auto.com", Password: "123456", Role: "owner",
		})
		if err == nil {
			t.Fatal("expected role rejection")
		}
	})
}
