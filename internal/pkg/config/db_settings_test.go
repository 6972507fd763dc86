//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDatabaseSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		settings      *DatabaseSettings
		expectedError bool
	}{
		{
			name: "valid postgres settings",
			settings: &DatabaseSettings{
				Type:   "postgres",
				DSN:    "host=localhost user=postgres password=postgres port=5432 sslmode=disable",
				DBName: "chat",
			},
			expectedError: false,
		},
		{
			name: "valid sqlite settings",
			settings: &DatabaseSettings{
				Type: "sqlite",
				DSN:  "chat.db",
			},
			expectedError: false,
		},
		{
			name: "missing type",
			settings: &DatabaseSettings{
				DSN:    "chat.db",
				DBName: "chat",
			},
			expectedError: true,
		},
		{
			name: "missing DSN",
			settings: &DatabaseSettings{
				Type:   "postgres",
				DBName: "chat",
			},
			expectedError: true,
		},
		{
			name: "unsupported type",
			settings: &DatabaseSettings{
				Type: "mysql",
				DSN:  "user:password@tcp(localhost:3306)/dbname",
			},
			expectedError: true,
		},
		{
			name: "postgres without db name",
			settings: &DatabaseSettings{
				Type: "postgres",
				DSN:  "host=localhost user=postgres password=postgres port=5432 sslmode=disable",
			},
			expectedError: true,
		},
		{
			name: "empty fields",
			settings: &DatabaseSettings{
				Type:   "",
				DSN:    "",
				DBName: "",
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Validate the struct
			err := tt.settings.Validate()

			if tt.expectedError {
				// Expect an error when validation fails
				require.Error(t, err)
			} else {
				// Expect no error when validation passes
				require.NoError(t, err)
			}
		})
	}
}
