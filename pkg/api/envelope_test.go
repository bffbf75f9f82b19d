package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorText_Priority(t *testing.T) {
	tests := []struct {
		name string
		resp Response
		want string
	}{
		{
			name: "details win over message",
			resp: Response{
				Message: "Validation failed",
				Details: []ValidationDetail{
					{Field: "email", Message: "es requerido"},
					{Field: "password", Message: "muy corta"},
				},
			},
			want: "email: es requerido\npassword: muy corta",
		},
		{
			name: "message wins over error",
			resp: Response{Message: "Credenciales incorrectas", Error: "Unauthorized"},
			want: "Credenciales incorrectas",
		},
		{
			name: "error as fallback",
			resp: Response{Error: "Internal Server Error"},
			want: "Internal Server Error",
		},
		{
			name: "empty envelope",
			resp: Response{},
			want: "Error desconocido",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.resp.ErrorText())
		})
	}
}

func TestDecodeData(t *testing.T) {
	resp := Response{Success: true, Data: json.RawMessage(`{"id":1,"firstName":"Ana"}`)}

	var user User
	require.NoError(t, resp.DecodeData(&user))
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "Ana", user.FirstName)
}

func TestDecodeData_Empty(t *testing.T) {
	resp := Response{Success: true}

	var user User
	assert.Error(t, resp.DecodeData(&user))
}

func TestNetworkFailure(t *testing.T) {
	assert.True(t, (&Response{Status: StatusNetworkError}).NetworkFailure())
	assert.False(t, (&Response{Status: 500}).NetworkFailure())
	assert.False(t, (&Response{Status: StatusLocalError}).NetworkFailure())
}
