package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"

	apperrors "careconnect/pkg/errors"
	"careconnect/pkg/logger"
	"careconnect/pkg/model"
)

type mockRegistrationService struct {
	validateFunc func(data model.RegisterFormData) model.FieldErrors
	registerFunc func(ctx context.Context, data model.RegisterFormData) (*model.StoredRegistration, error)
	loginFunc    func(ctx context.Context, req model.LoginRequest) (*model.StoredRegistration, error)
}

func (m *mockRegistrationService) Validate(data model.RegisterFormData) model.FieldErrors {
	if m.validateFunc != nil {
		return m.validateFunc(data)
	}
	return model.FieldErrors{}
}

func (m *mockRegistrationService) Register(ctx context.Context, data model.RegisterFormData) (*model.StoredRegistration, error) {
	if m.registerFunc != nil {
		return m.registerFunc(ctx, data)
	}
	return &model.StoredRegistration{}, nil
}

func (m *mockRegistrationService) Login(ctx context.Context, req model.LoginRequest) (*model.StoredRegistration, error) {
	if m.loginFunc != nil {
		return m.loginFunc(ctx, req)
	}
	return &model.StoredRegistration{}, nil
}

func (m *mockRegistrationService) GetByEmail(ctx context.Context, email string) (*model.StoredRegistration, error) {
	return nil, nil
}

func newRouter(svc *mockRegistrationService) *httprouter.Router {
	router := httprouter.New()
	NewRegistrationHandler(svc, logger.Discard()).RegisterRoutes(router)
	return router
}

func serve(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestStates(t *testing.T) {
	rec := serve(newRouter(&mockRegistrationService{}), http.MethodGet, "/api/v1/registrations/states", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp struct {
		Data []model.StateOption `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Data) != len(model.StateOptions()) || resp.Data[0].Code != "AL" {
		t.Errorf("states = %d entries, first %+v", len(resp.Data), resp.Data[0])
	}
}

func TestInitial(t *testing.T) {
	rec := serve(newRouter(&mockRegistrationService{}), http.MethodGet, "/api/v1/registrations/initial", "")

	var resp struct {
		Data map[string]string `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Data) != 11 {
		t.Errorf("initial form has %d fields, want 11", len(resp.Data))
	}
	for k, v := range resp.Data {
		if v != "" {
			t.Errorf("field %s = %q, want empty", k, v)
		}
	}
}

func TestValidate(t *testing.T) {
	svc := &mockRegistrationService{
		validateFunc: func(data model.RegisterFormData) model.FieldErrors {
			if data.Email == "bad" {
				return model.FieldErrors{model.FieldEmail: "Enter a valid email address."}
			}
			return model.FieldErrors{}
		},
	}
	router := newRouter(svc)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantValid  bool
		wantErrors int
	}{
		{"valid", `{"email":"jane@example.com"}`, http.StatusOK, true, 0},
		{"invalid", `{"email":"bad"}`, http.StatusOK, false, 1},
		{"unknown field", `{"nickname":"jj"}`, http.StatusBadRequest, false, 0},
		{"malformed", `{`, http.StatusBadRequest, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(router, http.MethodPost, "/api/v1/registrations/validate", tt.body)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus != http.StatusOK {
				return
			}

			var resp struct {
				Data ValidationResult `json:"data"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Data.Valid != tt.wantValid || len(resp.Data.Errors) != tt.wantErrors {
				t.Errorf("result = %+v", resp.Data)
			}
		})
	}
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"created", nil, http.StatusCreated, ""},
		{"validation", apperrors.Validation("Registration validation failed", map[string]any{
			"fields": model.FieldErrors{model.FieldPhone: "Phone number must be 10 digits."},
		}), http.StatusUnprocessableEntity, apperrors.CodeValidation},
		{"conflict", apperrors.Conflict("An account with this email already exists"), http.StatusConflict, apperrors.CodeConflict},
		{"internal hides cause", apperrors.Internal("Failed", errors.New("mongo exploded")), http.StatusInternalServerError, apperrors.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockRegistrationService{
				registerFunc: func(context.Context, model.RegisterFormData) (*model.StoredRegistration, error) {
					if tt.err != nil {
						return nil, tt.err
					}
					return &model.StoredRegistration{Email: "jane@example.com", AllowedRoles: []model.UserRole{model.RolePatient}}, nil
				},
			}

			rec := serve(newRouter(svc), http.MethodPost, "/api/v1/registrations", `{"email":"jane@example.com"}`)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if strings.Contains(rec.Body.String(), "mongo exploded") {
				t.Error("internal cause leaked to client")
			}
			if tt.wantCode != "" && !strings.Contains(rec.Body.String(), tt.wantCode) {
				t.Errorf("body %q missing code %s", rec.Body.String(), tt.wantCode)
			}
		})
	}
}

func TestRegisterDoesNotLeakPasswordHash(t *testing.T) {
	svc := &mockRegistrationService{
		registerFunc: func(context.Context, model.RegisterFormData) (*model.StoredRegistration, error) {
			reg := &model.Registration{Email: "jane@example.com", PasswordHash: "$2a$hash"}
			return reg.Stored(), nil
		},
	}

	rec := serve(newRouter(svc), http.MethodPost, "/api/v1/registrations", `{}`)
	if strings.Contains(rec.Body.String(), "$2a$hash") {
		t.Error("password hash in response")
	}
}

func TestLogin(t *testing.T) {
	var got model.LoginRequest
	svc := &mockRegistrationService{
		loginFunc: func(_ context.Context, req model.LoginRequest) (*model.StoredRegistration, error) {
			got = req
			if req.Password != "SecurePass1!" {
				return nil, apperrors.Unauthorized("Invalid email or password")
			}
			return &model.StoredRegistration{Email: req.Email}, nil
		},
	}
	router := newRouter(svc)

	rec := serve(router, http.MethodPost, "/api/v1/sessions", `{"email":"jane@example.com","password":"SecurePass1!","role":"patient"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got.Role != model.RolePatient {
		t.Errorf("role = %q", got.Role)
	}

	rec = serve(router, http.MethodPost, "/api/v1/sessions", `{"email":"jane@example.com","password":"nope"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestFormatPhone(t *testing.T) {
	tests := []struct {
		phone         string
		wantDigits    string
		wantFormatted string
	}{
		{"2125551234", "2125551234", "(212) 555-1234"},
		{"212-55", "21255", "(212) 55"},
		{"21", "21", "21"},
	}

	router := newRouter(&mockRegistrationService{})

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			body, _ := json.Marshal(FormatPhoneRequest{Phone: tt.phone})
			rec := serve(router, http.MethodPost, "/api/v1/registrations/format-phone", string(body))

			var resp struct {
				Data FormatPhoneResponse `json:"data"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Data.Digits != tt.wantDigits || resp.Data.Formatted != tt.wantFormatted {
				t.Errorf("got %+v", resp.Data)
			}
		})
	}
}
