package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type testPassword struct {
	Password string `validate:"strongpassword"`
}

type testOTP struct {
	Code string `validate:"otp"`
}

func TestValidateStrongPassword(t *testing.T) {
	v := validator.New()
	RegisterPasswordValidation(v)

	tests := []struct {
		name      string
		password  string
		wantValid bool
		reason    string
	}{
		{
			name:      "valid password - all requirements",
			password:  "Password123!",
			wantValid: true,
			reason:    "meets all requirements",
		},
		{
			name:      "valid password - minimum length",
			password:  "Pass1!aa",
			wantValid: true,
			reason:    "exactly 8 characters with all requirements",
		},
		{
			name:      "invalid - too short",
			password:  "Pass1!",
			wantValid: false,
			reason:    "less than 8 characters",
		},
		{
			name:      "invalid - no uppercase",
			password:  "password123!",
			wantValid: false,
			reason:    "missing uppercase letter",
		},
		{
			name:      "invalid - no lowercase",
			password:  "PASSWORD123!",
			wantValid: false,
			reason:    "missing lowercase letter",
		},
		{
			name:      "invalid - no number",
			password:  "Password!!!",
			wantValid: false,
			reason:    "missing digit",
		},
		{
			name:      "invalid - no special character",
			password:  "Password1234",
			wantValid: false,
			reason:    "missing special character",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(testPassword{Password: tt.password})
			if tt.wantValid {
				assert.NoError(t, err, tt.reason)
			} else {
				assert.Error(t, err, tt.reason)
			}
		})
	}
}

func TestValidateOTP(t *testing.T) {
	v := validator.New()
	RegisterOTPValidation(v)

	tests := []struct {
		name      string
		code      string
		wantValid bool
	}{
		{name: "valid six digits", code: "123456", wantValid: true},
		{name: "valid leading zeros", code: "000042", wantValid: true},
		{name: "too short", code: "12345", wantValid: false},
		{name: "too long", code: "1234567", wantValid: false},
		{name: "letters", code: "12a456", wantValid: false},
		{name: "empty", code: "", wantValid: false},
		{name: "unicode digits rejected", code: "１２３４５６", wantValid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(testOTP{Code: tt.code})
			if tt.wantValid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
