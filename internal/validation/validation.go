// Package validation checks form input on the client before any network
// call, so obviously bad requests never leave the device.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/petcare-cl/petcare-cli/pkg/api"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoginForm are the login credentials.
type LoginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

// Login validates login credentials.
func Login(email, password string) error {
	return describe(validate.Struct(LoginForm{Email: email, Password: password}))
}

// RegisterForm mirrors api.RegisterRequest with validation tags.
type RegisterForm struct {
	Email     string `validate:"required,email"`
	Password  string `validate:"required,min=6"`
	FirstName string `validate:"required,max=60"`
	LastName  string `validate:"required,max=60"`
	// e164 alone treats the leading + as optional; startswith pins the
	// international format the backend expects.
	Phone string `validate:"omitempty,startswith=+,e164"`
}

// Register validates a registration request.
func Register(req api.RegisterRequest) error {
	return describe(validate.Struct(RegisterForm{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	}))
}

// PetForm mirrors api.PetRequest with validation tags.
type PetForm struct {
	Name      string  `validate:"required,max=60"`
	Species   string  `validate:"required,oneof=dog cat bird rabbit fish reptile other"`
	BirthDate string  `validate:"omitempty,datetime=2006-01-02"`
	Gender    string  `validate:"omitempty,oneof=male female unknown"`
	WeightKg  float64 `validate:"omitempty,gt=0,lte=500"`
}

// Pet validates a pet create/update request.
func Pet(req api.PetRequest) error {
	return describe(validate.Struct(PetForm{
		Name:      req.Name,
		Species:   req.Species,
		BirthDate: req.BirthDate,
		Gender:    req.Gender,
		WeightKg:  req.WeightKg,
	}))
}

// AppointmentForm mirrors api.AppointmentRequest with validation tags.
type AppointmentForm struct {
	Reason       string `validate:"required,max=200"`
	PetID        int64  `validate:"required,gt=0"`
	VeterinaryID int64  `validate:"required,gt=0"`
}

// Appointment validates an appointment booking request.
func Appointment(req api.AppointmentRequest) error {
	if req.ScheduledAt.IsZero() {
		return errors.New("scheduledAt: is required")
	}
	return describe(validate.Struct(AppointmentForm{
		Reason:       req.Reason,
		PetID:        req.PetID,
		VeterinaryID: req.VeterinaryID,
	}))
}

// describe flattens validator errors into one readable message per field.
func describe(err error) error {
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		parts = append(parts, fmt.Sprintf("%s: %s", strings.ToLower(fe.Field()[:1])+fe.Field()[1:], reason(fe)))
	}
	return errors.New(strings.Join(parts, "; "))
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "datetime":
		return fmt.Sprintf("must match format %s", fe.Param())
	case "e164", "startswith":
		return "must be a valid phone number (+56912345678)"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
