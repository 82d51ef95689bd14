package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ValidationError
		expected string
	}{
		{"field only", &ValidationError{Field: "query"}, "query is required"},
		{"location field", &ValidationError{Field: "location"}, "location is required"},
		{"explicit message", &ValidationError{Field: "email", Message: "invalid email format or too long"}, "invalid email format or too long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestValidationError_Is(t *testing.T) {
	err := &ValidationError{Field: "query"}

	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestAsValidation(t *testing.T) {
	t.Run("direct validation error", func(t *testing.T) {
		ve, ok := AsValidation(&ValidationError{Field: "query"})
		require.True(t, ok)
		assert.Equal(t, "query", ve.Field)
	})

	t.Run("wrapped validation error", func(t *testing.T) {
		wrapped := fmt.Errorf("search: %w", &ValidationError{Field: "location"})
		ve, ok := AsValidation(wrapped)
		require.True(t, ok)
		assert.Equal(t, "location", ve.Field)
	})

	t.Run("unrelated error", func(t *testing.T) {
		_, ok := AsValidation(errors.New("boom"))
		assert.False(t, ok)
	})
}

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"valid", "alice", false},
		{"minimum length", "abc", false},
		{"empty", "", true},
		{"too short", "ab", true},
		{"too long", string(make([]byte, 81)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"valid", "alice@example.com", false},
		{"empty", "", true},
		{"no at sign", "alice.example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
