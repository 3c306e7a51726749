package permissions_test

import (
	"net/http"
	"testing"

	"agenda/permissions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_EmbeddedTable(t *testing.T) {
	data := permissions.Get()

	slots, ok := data.FindPermissions("/v1/appointments/slots", http.MethodGet)
	require.True(t, ok)
	assert.True(t, slots.Skip)

	export, ok := data.FindPermissions("/v1/reports/commissions/export", http.MethodPost)
	require.True(t, ok)
	assert.True(t, export.Allows("admin"))
	assert.False(t, export.Allows("professional"))

	_, ok = data.FindPermissions("/v1/appointments/{id}", http.MethodDelete)
	assert.False(t, ok)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{
			name: "valid",
			data: `{"endpoints":[{"path":"/v1/a","method":"GET","skip":true},{"path":"/v1/a","method":"POST","permissions":["admin"]}]}`,
		},
		{
			name:    "protected route without roles",
			data:    `{"endpoints":[{"path":"/v1/a","method":"POST"}]}`,
			wantErr: permissions.ErrNoRoles,
		},
		{
			name:    "duplicate route",
			data:    `{"endpoints":[{"path":"/v1/a","method":"GET","skip":true},{"path":"/v1/a","method":"get","skip":true}]}`,
			wantErr: permissions.ErrDuplicateRule,
		},
		{
			name:    "unknown method",
			data:    `{"endpoints":[{"path":"/v1/a","method":"FETCH","skip":true}]}`,
			wantErr: permissions.ErrBadMethod,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := permissions.Load([]byte(tt.data))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Len(t, data.Endpoints, 2)
		})
	}

	_, err := permissions.Load([]byte("{"))
	assert.Error(t, err)
}
