package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	hashService := &HashService{}

	tests := []struct {
		name        string
		password    string
		expectError bool
	}{
		{
			name:        "Valid Password",
			password:    "securepassword",
			expectError: false,
		},
		{
			name:        "Empty Password",
			password:    "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hashedPassword, err := hashService.HashPassword(tt.password)

			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, hashedPassword)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, hashedPassword)
			}
		})
	}
}

func TestComparePassword(t *testing.T) {
	hashService := &HashService{}

	hashedPassword, err := hashService.HashPassword("securepassword")
	assert.NoError(t, err)

	t.Run("Matching Password", func(t *testing.T) {
		assert.True(t, hashService.ComparePassword(hashedPassword, "securepassword"))
	})

	t.Run("Non-Matching Password", func(t *testing.T) {
		assert.False(t, hashService.ComparePassword(hashedPassword, "wrongpassword"))
	})

	t.Run("Malformed Hash", func(t *testing.T) {
		assert.False(t, hashService.ComparePassword("not-a-bcrypt-hash", "securepassword"))
	})
}
