package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"careconnect/internal/registrations/service"
	httputil "careconnect/pkg/http"
	"careconnect/pkg/logger"
	"careconnect/pkg/model"
	"careconnect/pkg/sanitizer"
)

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors model.FieldErrors `json:"errors"`
}

type FormatPhoneRequest struct {
	Phone string `json:"phone"`
}

type FormatPhoneResponse struct {
	Digits    string `json:"digits"`
	Formatted string `json:"formatted"`
}

type RegistrationHandler struct {
	service service.RegistrationService
	log     *logger.Logger
}

func NewRegistrationHandler(service service.RegistrationService, log *logger.Logger) *RegistrationHandler {
	return &RegistrationHandler{
		service: service,
		log:     log,
	}
}

func (h *RegistrationHandler) States(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	if err := httputil.WriteSuccess(w, model.StateOptions()); err != nil {
		h.log.Error("failed to write success response", "handler", "States", "operation", "WriteSuccess", "error", err)
	}
}

func (h *RegistrationHandler) Initial(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	if err := httputil.WriteSuccess(w, model.InitialRegisterData()); err != nil {
		h.log.Error("failed to write success response", "handler", "Initial", "operation", "WriteSuccess", "error", err)
	}
}

func (h *RegistrationHandler) Validate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var data model.RegisterFormData
	if err := httputil.DecodeJSON(r, &data); err != nil {
		h.writeError(w, "Validate", err)
		return
	}

	fieldErrors := h.service.Validate(data)
	if err := httputil.WriteSuccess(w, ValidationResult{
		Valid:  fieldErrors.Valid(),
		Errors: fieldErrors,
	}); err != nil {
		h.log.Error("failed to write success response", "handler", "Validate", "operation", "WriteSuccess", "error", err)
	}
}

func (h *RegistrationHandler) Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var data model.RegisterFormData
	if err := httputil.DecodeJSON(r, &data); err != nil {
		h.writeError(w, "Register", err)
		return
	}

	stored, err := h.service.Register(r.Context(), data)
	if err != nil {
		h.writeError(w, "Register", err)
		return
	}

	if err := httputil.WriteCreated(w, stored); err != nil {
		h.log.Error("failed to write created response", "handler", "Register", "operation", "WriteCreated", "error", err)
	}
}

func (h *RegistrationHandler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.LoginRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(w, "Login", err)
		return
	}

	stored, err := h.service.Login(r.Context(), req)
	if err != nil {
		h.writeError(w, "Login", err)
		return
	}

	if err := httputil.WriteSuccess(w, stored); err != nil {
		h.log.Error("failed to write success response", "handler", "Login", "operation", "WriteSuccess", "error", err)
	}
}

func (h *RegistrationHandler) FormatPhone(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req FormatPhoneRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(w, "FormatPhone", err)
		return
	}

	if err := httputil.WriteSuccess(w, FormatPhoneResponse{
		Digits:    sanitizer.OnlyDigits(req.Phone),
		Formatted: sanitizer.FormatPhoneNumber(req.Phone),
	}); err != nil {
		h.log.Error("failed to write success response", "handler", "FormatPhone", "operation", "WriteSuccess", "error", err)
	}
}

func (h *RegistrationHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}

func (h *RegistrationHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/registrations/states", h.States)
	router.GET("/api/v1/registrations/initial", h.Initial)
	router.POST("/api/v1/registrations/validate", h.Validate)
	router.POST("/api/v1/registrations/format-phone", h.FormatPhone)
	router.POST("/api/v1/registrations", h.Register)
	router.POST("/api/v1/sessions", h.Login)
}
