package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:   "valid config",
			config: Config{Username: "librarian", Password: "lib123"},
		},
		{
			name:   "store path optional",
			config: Config{StorePath: "", Username: "librarian", Password: "lib123"},
		},
		{
			name:    "empty username",
			config:  Config{Password: "lib123"},
			wantErr: ErrUsernameEmpty,
		},
		{
			name:    "empty password",
			config:  Config{Username: "librarian"},
			wantErr: ErrPasswordEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
