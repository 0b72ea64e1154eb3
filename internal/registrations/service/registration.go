package service

import (
	"context"
	"errors"
	"sync"

	registrationserrors "careconnect/internal/registrations/errors"
	"careconnect/internal/registrations/events"
	"careconnect/internal/registrations/repository"
	"careconnect/internal/registrations/validator"
	"careconnect/pkg/config"
	apperrors "careconnect/pkg/errors"
	"careconnect/pkg/model"
	"careconnect/pkg/sanitizer"

	"golang.org/x/crypto/bcrypt"
)

const invalidCredentials = "Invalid email or password"

type RegistrationService interface {
	Validate(data model.RegisterFormData) model.FieldErrors
	Register(ctx context.Context, data model.RegisterFormData) (*model.StoredRegistration, error)
	Login(ctx context.Context, req model.LoginRequest) (*model.StoredRegistration, error)
	GetByEmail(ctx context.Context, email string) (*model.StoredRegistration, error)
}

type registrationService struct {
	repo      repository.RegistrationRepository
	validator *validator.RegisterFormValidator
	publisher events.Publisher
	cfg       *config.Config
	dummyHash func() []byte
}

func NewRegistrationService(
	repo repository.RegistrationRepository,
	validator *validator.RegisterFormValidator,
	publisher events.Publisher,
	cfg *config.Config,
) RegistrationService {
	if publisher == nil {
		publisher = events.NewNoopPublisher()
	}
	return &registrationService{
		repo:      repo,
		validator: validator,
		publisher: publisher,
		cfg:       cfg,
		dummyHash: sync.OnceValue(func() []byte {
			hash, _ := bcrypt.GenerateFromPassword([]byte("careconnect-unknown-account"), cfg.BcryptCost)
			return hash
		}),
	}
}

// Sanitize returns data with every user-entered field normalized. Passwords are left as typed.
// Phone keeps all of its digits so a number longer than ten digits still fails validation.
func Sanitize(data model.RegisterFormData) model.RegisterFormData {
	return model.RegisterFormData{
		FirstName:        sanitizer.SanitizeTextInput(data.FirstName),
		LastName:         sanitizer.SanitizeTextInput(data.LastName),
		Email:            sanitizer.SanitizeEmailInput(data.Email),
		Phone:            sanitizer.RemoveControlCharacters(data.Phone),
		Address1:         sanitizer.SanitizeTextInput(data.Address1),
		City:             sanitizer.SanitizeTextInput(data.City),
		State:            sanitizer.RemoveControlCharacters(data.State),
		PostalCode:       sanitizer.RemoveControlCharacters(data.PostalCode),
		RegistrationRole: model.RegistrationRole(sanitizer.RemoveControlCharacters(string(data.RegistrationRole))),
		Password:         data.Password,
		ConfirmPassword:  data.ConfirmPassword,
	}
}

func (s *registrationService) Validate(data model.RegisterFormData) model.FieldErrors {
	return s.validator.Validate(Sanitize(data))
}

func (s *registrationService) Register(ctx context.Context, data model.RegisterFormData) (*model.StoredRegistration, error) {
	data = Sanitize(data)

	if fieldErrors := s.validator.Validate(data); !fieldErrors.Valid() {
		s.cfg.Log.Warn("Registration validation failed",
			"fields", len(fieldErrors),
			"state", data.State,
		)
		return nil, apperrors.Validation("Registration validation failed", map[string]any{
			"fields": fieldErrors,
		})
	}

	roles, ok := data.RegistrationRole.AllowedRoles()
	if !ok {
		return nil, apperrors.InvalidInput("Unknown registration role: " + string(data.RegistrationRole))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), s.cfg.BcryptCost)
	if err != nil {
		s.cfg.Log.Error("Failed to hash password", "error", err)
		return nil, apperrors.Internal("Failed to create registration", err)
	}

	reg := &model.Registration{
		FirstName:    sanitizer.TrimSpace(data.FirstName),
		LastName:     sanitizer.TrimSpace(data.LastName),
		Email:        data.Email,
		Phone:        sanitizer.NormalizePhone(data.Phone),
		Address1:     sanitizer.TrimSpace(data.Address1),
		City:         sanitizer.TrimSpace(data.City),
		State:        data.State,
		PostalCode:   sanitizer.TrimSpace(data.PostalCode),
		AllowedRoles: roles,
		PasswordHash: string(hash),
	}

	err = s.repo.ExecuteTransaction(ctx, func(txCtx context.Context) error {
		exists, err := s.repo.ExistsByEmail(txCtx, reg.Email)
		if err != nil {
			return err
		}
		if exists {
			return registrationserrors.ErrEmailTaken
		}
		return s.repo.Create(txCtx, reg)
	})
	if err != nil {
		if errors.Is(err, registrationserrors.ErrEmailTaken) {
			return nil, apperrors.Conflict("An account with this email already exists")
		}
		if apperrors.IsAppError(err) {
			return nil, err
		}
		s.cfg.Log.Error("Failed to create registration", "error", err)
		return nil, apperrors.Internal("Failed to create registration", err)
	}

	if err := s.publisher.RegistrationCreated(ctx, reg); err != nil {
		s.cfg.Log.Error("Failed to publish registration event",
			"id", reg.ID,
			"error", err,
		)
	}

	s.cfg.Log.Info("Registration created successfully",
		"id", reg.ID,
		"roles", reg.AllowedRoles,
		"state", reg.State,
	)

	return reg.Stored(), nil
}

func (s *registrationService) Login(ctx context.Context, req model.LoginRequest) (*model.StoredRegistration, error) {
	email := sanitizer.SanitizeEmailInput(req.Email)
	if email == "" || req.Password == "" {
		return nil, apperrors.Unauthorized(invalidCredentials)
	}

	reg, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, registrationserrors.ErrNotFound) {
			// Spend the same bcrypt work as a real comparison.
			_ = bcrypt.CompareHashAndPassword(s.dummyHash(), []byte(req.Password))
			return nil, apperrors.Unauthorized(invalidCredentials)
		}
		s.cfg.Log.Error("Failed to look up registration", "error", err)
		return nil, apperrors.Internal("Failed to sign in", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(reg.PasswordHash), []byte(req.Password)); err != nil {
		s.cfg.Log.Warn("Login rejected", "id", reg.ID, "reason", "password mismatch")
		return nil, apperrors.Unauthorized(invalidCredentials)
	}

	stored := reg.Stored()
	if req.Role != "" && !stored.HasRole(req.Role) {
		s.cfg.Log.Warn("Login rejected", "id", reg.ID, "reason", "role not allowed", "role", req.Role)
		return nil, apperrors.Forbidden("This account is not registered for the selected role")
	}

	s.cfg.Log.Info("Login succeeded", "id", reg.ID)
	return stored, nil
}

func (s *registrationService) GetByEmail(ctx context.Context, email string) (*model.StoredRegistration, error) {
	email = sanitizer.SanitizeEmailInput(email)
	if email == "" {
		return nil, apperrors.InvalidInput("Email cannot be empty")
	}

	reg, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, registrationserrors.ErrNotFound) {
			return nil, apperrors.NotFound("Registration")
		}
		s.cfg.Log.Error("Failed to get registration by email", "error", err)
		return nil, apperrors.Internal("Failed to retrieve registration", err)
	}

	return reg.Stored(), nil
}
