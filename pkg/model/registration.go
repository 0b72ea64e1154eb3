package model

import "time"

type UserRole string

const (
	RoleCaregiver UserRole = "caregiver"
	RolePatient   UserRole = "patient"
)

// RegistrationRole is a UserRole or RegistrationRoleBoth.
type RegistrationRole string

const (
	RegistrationRoleCaregiver RegistrationRole = "caregiver"
	RegistrationRolePatient   RegistrationRole = "patient"
	RegistrationRoleBoth      RegistrationRole = "both"
)

// AllowedRoles expands a registration role into the user roles it grants.
// The second return is false for unknown roles.
func (r RegistrationRole) AllowedRoles() ([]UserRole, bool) {
	switch r {
	case RegistrationRoleCaregiver:
		return []UserRole{RoleCaregiver}, true
	case RegistrationRolePatient:
		return []UserRole{RolePatient}, true
	case RegistrationRoleBoth:
		return []UserRole{RoleCaregiver, RolePatient}, true
	default:
		return nil, false
	}
}

type RegisterField string

const (
	FieldFirstName        RegisterField = "firstName"
	FieldLastName         RegisterField = "lastName"
	FieldEmail            RegisterField = "email"
	FieldPhone            RegisterField = "phone"
	FieldAddress1         RegisterField = "address1"
	FieldCity             RegisterField = "city"
	FieldState            RegisterField = "state"
	FieldPostalCode       RegisterField = "postalCode"
	FieldRegistrationRole RegisterField = "registrationRole"
	FieldPassword         RegisterField = "password"
	FieldConfirmPassword  RegisterField = "confirmPassword"
)

// RegisterFormData is the transient value submitted by the registration form.
// The json names double as RegisterField keys in FieldErrors.
type RegisterFormData struct {
	FirstName        string           `json:"firstName" validate:"proper_name"`
	LastName         string           `json:"lastName" validate:"proper_name"`
	Email            string           `json:"email" validate:"email_address"`
	Phone            string           `json:"phone" validate:"phone_digits"`
	Address1         string           `json:"address1" validate:"address_line"`
	City             string           `json:"city" validate:"proper_name"`
	State            string           `json:"state" validate:"state_code"`
	PostalCode       string           `json:"postalCode" validate:"zip_code"`
	RegistrationRole RegistrationRole `json:"registrationRole" validate:"required"`
	Password         string           `json:"password" validate:"strong_password"`
	ConfirmPassword  string           `json:"confirmPassword" validate:"eqfield=Password"`
}

// InitialRegisterData returns the empty form used to seed UI state.
func InitialRegisterData() RegisterFormData {
	return RegisterFormData{}
}

// FieldErrors maps each failing field to its message. A field with no entry
// is valid; an empty map means the whole form is valid.
type FieldErrors map[RegisterField]string

func (e FieldErrors) Valid() bool {
	return len(e) == 0
}

type Registration struct {
	ID           string     `json:"id,omitempty" bson:"_id,omitempty"`
	FirstName    string     `json:"firstName" bson:"first_name"`
	LastName     string     `json:"lastName" bson:"last_name"`
	Email        string     `json:"email" bson:"email"`
	Phone        string     `json:"phone" bson:"phone"`
	Address1     string     `json:"address1" bson:"address1"`
	City         string     `json:"city" bson:"city"`
	State        string     `json:"state" bson:"state"`
	PostalCode   string     `json:"postalCode" bson:"postal_code"`
	AllowedRoles []UserRole `json:"allowedRoles" bson:"allowed_roles"`
	PasswordHash string     `json:"-" bson:"password_hash"`
	CreatedAt    time.Time  `json:"createdAt" bson:"created_at"`
}

// StoredRegistration is the public view of a registration.
type StoredRegistration struct {
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	Email        string     `json:"email"`
	AllowedRoles []UserRole `json:"allowedRoles"`
}

func (r *Registration) Stored() *StoredRegistration {
	roles := make([]UserRole, len(r.AllowedRoles))
	copy(roles, r.AllowedRoles)
	return &StoredRegistration{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Email:        r.Email,
		AllowedRoles: roles,
	}
}

func (r *StoredRegistration) HasRole(role UserRole) bool {
	for _, allowed := range r.AllowedRoles {
		if allowed == role {
			return true
		}
	}
	return false
}

type LoginRequest struct {
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Role     UserRole `json:"role,omitempty"`
}
