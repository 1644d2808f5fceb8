package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/roomiesplit/roomiesplit/internal/models"
)

func TestJWTManager(t *testing.T) {
	user := &models.User{
		ID:    "user-123",
		Email: "alice@example.com",
	}

	t.Run("generate and validate round trip", func(t *testing.T) {
		manager := NewJWTManager("test-secret", time.Hour)

		token, err := manager.Generate(user)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if token == "" {
			t.Fatal("Expected non-empty token")
		}

		claims, err := manager.Validate(token)
		if err != nil {
			t.Fatalf("Validate failed: %v", err)
		}
		if claims.UserID != user.ID {
			t.Errorf("UserID = %q, want %q", claims.UserID, user.ID)
		}
		if claims.Email != user.Email {
			t.Errorf("Email = %q, want %q", claims.Email, user.Email)
		}
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		manager := NewJWTManager("test-secret", -time.Minute)

		token, err := manager.Generate(user)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}

		if _, err := manager.Validate(token); err == nil {
			t.Error("Expected validation error for expired token")
		}
	})

	t.Run("token signed with different secret is rejected", func(t *testing.T) {
		manager := NewJWTManager("test-secret", time.Hour)
		other := NewJWTManager("other-secret", time.Hour)

		token, err := other.Generate(user)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}

		if _, err := manager.Validate(token); err == nil {
			t.Error("Expected validation error for wrong secret")
		}
	})

	t.Run("tampered token is rejected", func(t *testing.T) {
		manager := NewJWTManager("test-secret", time.Hour)

		token, err := manager.Generate(user)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}

		parts := strings.Split(token, ".")
		if len(parts) != 3 {
			t.Fatalf("Unexpected token format: %d parts", len(parts))
		}
		tampered := parts[0] + ".eyJ1c2VyX2lkIjoidXNlci05OTkifQ." + parts[2]

		if _, err := manager.Validate(tampered); err == nil {
			t.Error("Expected validation error for tampered payload")
		}
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		manager := NewJWTManager("test-secret", time.Hour)

		if _, err := manager.Validate("not-a-token"); err == nil {
			t.Error("Expected validation error for malformed token")
		}
	})
}
