package auth

import (
	"context"
	"testing"

	"github.com/pkg/errors"
)

func TestPasswordIsHashedBeforeSaving(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	password := "Password@123"

	_, err := service.Register(context.Background(), "asha", password)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user := repo.users["asha"]
	if user == nil {
		t.Fatalf("user not found")
	}

	if user.Password == password {
		t.Fatalf("password was stored in plain text")
	}
	if user.Role != RoleUser {
		t.Fatalf("expected role %q, got %q", RoleUser, user.Role)
	}
}

func TestServiceRegisterDuplicateUsername(t *testing.T) {
	service := NewService(NewInMemoryUserRepository())
	ctx := context.Background()

	if _, err := service.Register(ctx, "asha", "pw"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := service.Register(ctx, "asha", "other")
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestServiceRegisterMissingFields(t *testing.T) {
	service := NewService(NewInMemoryUserRepository())

	for _, tc := range []struct{ username, password string }{
		{"", "pw"},
		{"   ", "pw"},
		{"asha", ""},
	} {
		_, err := service.Register(context.Background(), tc.username, tc.password)
		if !errors.Is(err, ErrMissingFields) {
			t.Errorf("Register(%q, %q): expected ErrMissingFields, got %v", tc.username, tc.password, err)
		}
	}
}

func TestLoginReturnsStoredRole(t *testing.T) {
	service := NewService(NewInMemoryUserRepository())
	ctx := context.Background()

	if _, err := service.CreateAdmin(ctx, "boss", "secret"); err != nil {
		t.Fatal(err)
	}

	user, err := service.Login(ctx, "boss", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Role != RoleAdmin {
		t.Fatalf("expected admin role, got %q", user.Role)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	service := NewService(NewInMemoryUserRepository())
	ctx := context.Background()

	service.Register(ctx, "asha", "right")
	service.CreateAdmin(ctx, "boss", "right")

	for _, username := range []string{"asha", "boss", "nobody"} {
		if _, err := service.Login(ctx, username, "wrong"); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("%s: expected ErrInvalidCredentials, got %v", username, err)
		}
	}
}
