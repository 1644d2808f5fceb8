package auth

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/roomiesplit/roomiesplit/internal/models"
)

// memoryUserStorage is an in-memory UserStorage for testing the
// authenticator without a database.
type memoryUserStorage struct {
	users map[string]*models.User // keyed by lowercased email
}

func newMemoryUserStorage() *memoryUserStorage {
	return &memoryUserStorage{users: make(map[string]*models.User)}
}

func (m *memoryUserStorage) CreateUser(ctx context.Context, user *models.User) error {
	m.users[strings.ToLower(user.Email)] = user
	return nil
}

func (m *memoryUserStorage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.users[strings.ToLower(email)], nil
}

func (m *memoryUserStorage) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates user with hashed password", func(t *testing.T) {
		storage := newMemoryUserStorage()
		a := NewPasswordAuthenticator(storage)

		user, err := a.Register(ctx, "Alice Smith", "alice@example.com", "hunter22")
		if err != nil {
			t.Fatalf("Register failed: %v", err)
		}
		if user.ID == "" {
			t.Error("Expected generated user ID")
		}
		if user.PasswordHash == "hunter22" || user.PasswordHash == "" {
			t.Error("Expected password to be hashed")
		}
	})

	t.Run("missing fields fail validation", func(t *testing.T) {
		storage := newMemoryUserStorage()
		a := NewPasswordAuthenticator(storage)

		cases := [][3]string{
			{"", "alice@example.com", "hunter22"},
			{"Alice Smith", "", "hunter22"},
			{"Alice Smith", "alice@example.com", ""},
		}
		for _, c := range cases {
			if _, err := a.Register(ctx, c[0], c[1], c[2]); !errors.Is(err, ErrMissingFields) {
				t.Errorf("Register(%q, %q, ...) error = %v, want ErrMissingFields", c[0], c[1], err)
			}
		}
	})

	t.Run("duplicate email fails regardless of other fields", func(t *testing.T) {
		storage := newMemoryUserStorage()
		a := NewPasswordAuthenticator(storage)

		if _, err := a.Register(ctx, "Alice Smith", "alice@example.com", "hunter22"); err != nil {
			t.Fatalf("Register failed: %v", err)
		}

		if _, err := a.Register(ctx, "Different Name", "alice@example.com", "otherpass"); !errors.Is(err, ErrEmailExists) {
			t.Errorf("Register error = %v, want ErrEmailExists", err)
		}

		// Case-insensitive match
		if _, err := a.Register(ctx, "Third Name", "ALICE@Example.COM", "thirdpass"); !errors.Is(err, ErrEmailExists) {
			t.Errorf("Register (upper case) error = %v, want ErrEmailExists", err)
		}

		if len(storage.users) != 1 {
			t.Errorf("Expected exactly one user record, got %d", len(storage.users))
		}
	})
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	storage := newMemoryUserStorage()
	a := NewPasswordAuthenticator(storage)

	if _, err := a.Register(ctx, "Alice Smith", "alice@example.com", "hunter22"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	t.Run("valid credentials succeed", func(t *testing.T) {
		user, err := a.Authenticate(ctx, "alice@example.com", "hunter22")
		if err != nil {
			t.Fatalf("Authenticate failed: %v", err)
		}
		if user.Email != "alice@example.com" {
			t.Errorf("Email = %q, want alice@example.com", user.Email)
		}
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		_, errWrongPass := a.Authenticate(ctx, "alice@example.com", "wrong")
		_, errNoUser := a.Authenticate(ctx, "nobody@example.com", "hunter22")

		if !errors.Is(errWrongPass, ErrInvalidCredentials) {
			t.Errorf("wrong password error = %v, want ErrInvalidCredentials", errWrongPass)
		}
		if !errors.Is(errNoUser, ErrInvalidCredentials) {
			t.Errorf("unknown email error = %v, want ErrInvalidCredentials", errNoUser)
		}
		if errWrongPass.Error() != errNoUser.Error() {
			t.Error("Expected identical errors for wrong password and unknown email")
		}
	})
}
