package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"careconnect/internal/settings/service"
	httputil "careconnect/pkg/http"
	"careconnect/pkg/logger"
	"careconnect/pkg/model"
)

type SettingsHandler struct {
	service service.SettingsService
	log     *logger.Logger
}

func NewSettingsHandler(service service.SettingsService, log *logger.Logger) *SettingsHandler {
	return &SettingsHandler{
		service: service,
		log:     log,
	}
}

func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	settings, err := h.service.Get(r.Context(), ps.ByName("owner"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Get", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, settings); err != nil {
		h.log.Error("failed to write success response", "handler", "Get", "operation", "WriteSuccess", "error", err)
	}
}

func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var update model.SettingsUpdate
	if err := httputil.DecodeJSON(r, &update); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Update", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	settings, err := h.service.Update(r.Context(), ps.ByName("owner"), update)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Update", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, settings); err != nil {
		h.log.Error("failed to write success response", "handler", "Update", "operation", "WriteSuccess", "error", err)
	}
}

func (h *SettingsHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/settings/:owner", h.Get)
	router.PUT("/api/v1/settings/:owner", h.Update)
}
