package validator

import (
	"unicode"

	"github.com/go-playground/validator/v10"
)

// ValidateStrongPassword validates password strength requirements
func ValidateStrongPassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()

	if len(password) < 8 || len(password) > 128 {
		return false
	}

	var (
		hasUpper   bool
		hasLower   bool
		hasNumber  bool
		hasSpecial bool
	)

	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsNumber(char):
			hasNumber = true
		case unicode.IsPunct(char) || unicode.IsSymbol(char):
			hasSpecial = true
		}
	}

	return hasUpper && hasLower && hasNumber && hasSpecial
}

const otpLength = 6

// ValidateOTP accepts exactly otpLength ASCII digits.
func ValidateOTP(fl validator.FieldLevel) bool {
	code := fl.Field().String()
	if len(code) != otpLength {
		return false
	}
	for _, char := range code {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

func RegisterPasswordValidation(v *validator.Validate) {
	v.RegisterValidation("strongpassword", ValidateStrongPassword)
}

func RegisterOTPValidation(v *validator.Validate) {
	v.RegisterValidation("otp", ValidateOTP)
}

// New returns a validator instance with the custom auth rules registered.
func New() *validator.Validate {
	v := validator.New()
	RegisterPasswordValidation(v)
	RegisterOTPValidation(v)
	return v
}
