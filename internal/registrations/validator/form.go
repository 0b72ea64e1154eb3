package validator

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"careconnect/pkg/logger"
	"careconnect/pkg/model"
	"careconnect/pkg/sanitizer"
)

// Lengths are counted in UTF-16 code units.
const (
	maxEmailLength    = 254
	minAddressLength  = 5
	maxAddressLength  = 100
	minPasswordLength = 12
)

var (
	reProperName = regexp.MustCompile(`^[A-Za-z][A-Za-z' -]{1,49}$`)
	reEmail      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)
	reZipCode    = regexp.MustCompile(`^\d{5}(-\d{4})?$`)

	reLower  = regexp.MustCompile(`[a-z]`)
	reUpper  = regexp.MustCompile(`[A-Z]`)
	reDigit  = regexp.MustCompile(`\d`)
	reSymbol = regexp.MustCompile(`[^A-Za-z0-9]`)
)

var fieldMessages = map[model.RegisterField]string{
	model.FieldFirstName:        "First name must be 2-50 characters and contain letters only.",
	model.FieldLastName:         "Last name must be 2-50 characters and contain letters only.",
	model.FieldEmail:            "Enter a valid email address.",
	model.FieldPhone:            "Phone number must be 10 digits.",
	model.FieldAddress1:         "Address must be between 5 and 100 characters.",
	model.FieldCity:             "Enter a valid city name.",
	model.FieldState:            "Please select a valid state or territory.",
	model.FieldPostalCode:       "Enter a valid ZIP code (12345 or 12345-6789).",
	model.FieldRegistrationRole: "Select an account role.",
	model.FieldPassword:         "Password needs 12+ chars with upper, lower, number, and symbol.",
	model.FieldConfirmPassword:  "Passwords do not match.",
}

// Message returns the fixed message reported for a failing field.
func Message(field model.RegisterField) string {
	return fieldMessages[field]
}

type RegisterFormValidator struct {
	validate *validator.Validate
}

var customValidations = map[string]validator.Func{
	"proper_name":     validateProperName,
	"email_address":   validateEmailAddress,
	"phone_digits":    validatePhoneDigits,
	"address_line":    validateAddressLine,
	"state_code":      validateStateCode,
	"zip_code":        validateZipCode,
	"strong_password": validateStrongPassword,
}

func New() (*RegisterFormValidator, error) {
	v := validator.New()

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	for tag, fn := range customValidations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return nil, fmt.Errorf("failed to register %q validator: %w", tag, err)
		}
	}

	return &RegisterFormValidator{validate: v}, nil
}

func NewRegisterFormValidator(log *logger.Logger) *RegisterFormValidator {
	v, err := New()
	if err != nil {
		log.Fatal("Failed to initialize register form validator", "error", err)
	}
	log.Info("Register form validator initialized successfully")
	return v
}

var defaultValidator = sync.OnceValue(func() *RegisterFormValidator {
	v, err := New()
	if err != nil {
		panic(err)
	}
	return v
})

// ValidateRegisterForm checks every field of data independently and returns
// the sparse error map. It never fails; an empty map means data is valid.
func ValidateRegisterForm(data model.RegisterFormData) model.FieldErrors {
	return defaultValidator().Validate(data)
}

func (v *RegisterFormValidator) Validate(data model.RegisterFormData) model.FieldErrors {
	fieldErrors := model.FieldErrors{}

	err := v.validate.Struct(data)
	if err == nil {
		return fieldErrors
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		// Struct only returns other errors for non-struct input.
		panic(err)
	}

	for _, fe := range validationErrs {
		field := model.RegisterField(fe.Field())
		if msg, ok := fieldMessages[field]; ok {
			fieldErrors[field] = msg
		}
	}

	return fieldErrors
}

func validateProperName(fl validator.FieldLevel) bool {
	return reProperName.MatchString(sanitizer.TrimSpace(fl.Field().String()))
}

func validateEmailAddress(fl validator.FieldLevel) bool {
	email := fl.Field().String()
	if sanitizer.UTF16Len(email) > maxEmailLength {
		return false
	}
	// \s in RE2 is ASCII only; reject the full browser whitespace class.
	if strings.IndexFunc(email, sanitizer.IsSpace) >= 0 {
		return false
	}
	return reEmail.MatchString(email)
}

func validatePhoneDigits(fl validator.FieldLevel) bool {
	return len(sanitizer.OnlyDigits(fl.Field().String())) == sanitizer.PhoneDigits
}

func validateAddressLine(fl validator.FieldLevel) bool {
	n := sanitizer.UTF16Len(sanitizer.TrimSpace(fl.Field().String()))
	return n >= minAddressLength && n <= maxAddressLength
}

func validateStateCode(fl validator.FieldLevel) bool {
	return model.IsStateCode(fl.Field().String())
}

func validateZipCode(fl validator.FieldLevel) bool {
	return reZipCode.MatchString(sanitizer.TrimSpace(fl.Field().String()))
}

func validateStrongPassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	return sanitizer.UTF16Len(password) >= minPasswordLength &&
		reLower.MatchString(password) &&
		reUpper.MatchString(password) &&
		reDigit.MatchString(password) &&
		reSymbol.MatchString(password)
}
