package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/roomiesplit/roomiesplit/internal/auth"
	"github.com/roomiesplit/roomiesplit/internal/models"
)

func TestRequireAuth(t *testing.T) {
	manager := auth.NewJWTManager("test-secret", time.Hour)
	user := &models.User{ID: "user-1", Email: "alice@example.com"}

	onError := func(w http.ResponseWriter, status int, message string) {
		http.Error(w, message, status)
	}

	var gotUserID, gotEmail string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = GetUserID(r.Context())
		gotEmail = GetEmail(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	protected := RequireAuth(manager, onError)(next)

	t.Run("valid token populates context", func(t *testing.T) {
		token, err := manager.Generate(user)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}

		req := httptest.NewRequest("GET", "/api/purchases", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		protected.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", rec.Code)
		}
		if gotUserID != user.ID {
			t.Errorf("user ID in context = %q, want %q", gotUserID, user.ID)
		}
		if gotEmail != user.Email {
			t.Errorf("email in context = %q, want %q", gotEmail, user.Email)
		}
	})

	t.Run("missing header returns 401", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/purchases", nil)
		rec := httptest.NewRecorder()

		protected.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("malformed header returns 403", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/purchases", nil)
		req.Header.Set("Authorization", "Basic abc123")
		rec := httptest.NewRecorder()

		protected.ServeHTTP(rec, req)

		if rec.Code != http.StatusForbidden {
			t.Errorf("status = %d, want 403", rec.Code)
		}
	})

	t.Run("invalid token returns 403", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/purchases", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		rec := httptest.NewRecorder()

		protected.ServeHTTP(rec, req)

		if rec.Code != http.StatusForbidden {
			t.Errorf("status = %d, want 403", rec.Code)
		}
	})
}
