package services

import (
	"errors"
	"testing"

	"github.com/terraincognita07/autonomie/internal/models"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestEnsureOwnerAdminIsIdempotent(t *testing.T) {
	users := newStubUserStore(models.User{ID: "u1", Email: "owner@example.com", Role: models.RoleUser})
	core, logs := observer.New(zap.InfoLevel)
	service := NewSetupService(users, zap.New(core))

	promoted, err := service.EnsureOwnerAdmin(" Owner@Example.com ")
	if err != nil || !promoted {
		t.Fatalf("expected first call to promote, got %v, %v", promoted, err)
	}
	promoted, err = service.EnsureOwnerAdmin("owner@example.com")
	if err != nil || promoted {
		t.Fatalf("expected second call to be a no-op, got %v, %v", promoted, err)
	}

	if users.users["u1"].Role != models.RoleAdmin {
		t.Fatalf("expected admin role, got %q", users.users["u1"].Role)
	}
	if len(users.promoted) != 1 {
		t.Fatalf("expected one promotion, got %d", len(users.promoted))
	}
	if entries := logs.FilterMessage("owner promoted to admin").All(); len(entries) != 1 {
		t.Fatalf("expected one audit log entry, got %d", len(entries))
	}
}

func TestEnsureOwnerAdminBeforeRegistration(t *testing.T) {
	service := NewSetupService(newStubUserStore(), nil)

	if _, err := service.EnsureOwnerAdmin("owner@example.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := service.EnsureOwnerAdmin("  "); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for empty email, got %v", err)
	}

	required, err := service.RequiresInitialSetup()
	if err != nil || !required {
		t.Fatalf("expected initial setup to be required, got %v, %v", required, err)
	}
}
