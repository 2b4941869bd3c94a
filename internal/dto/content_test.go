package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestDirectorProfileRequest_Order(t *testing.T) {
	v := validator.New()
	v.SetTagName("binding")

	valid := func(order *int) DirectorProfileRequest {
		return DirectorProfileRequest{Order: order, BeginYear: 2001, Name: "Direktur", Detail: "<p>profil</p>"}
	}

	tests := []struct {
		name    string
		req     any
		wantErr bool
	}{
		{"create order zero", valid(intPtr(0)), false},
		{"create order positive", valid(intPtr(3)), false},
		{"create order missing", valid(nil), true},
		{"create order negative", valid(intPtr(-1)), true},
		{"update order zero", UpdateDirectorProfileRequest{Order: intPtr(0)}, false},
		{"update order omitted", UpdateDirectorProfileRequest{}, false},
		{"update order negative", UpdateDirectorProfileRequest{Order: intPtr(-2)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.req)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
