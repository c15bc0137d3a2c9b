package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"catalog-server/internal/infra/httpserver"
	"catalog-server/internal/shared_kernel/domain"
	"catalog-server/internal/shared_kernel/httpapi/internal"
	"catalog-server/internal/shared_kernel/usecases"
)

const (
	createTenantErrMessage          = "failed to create tenant"
	tenantDuplicatedErrMessage      = "tenant already exists"
	tenantNotFoundErrMessage        = "tenant not found"
	tenantSoftDeletedErrMessage     = "tenant is soft deleted"
	tenantVersionConflictErrMessage = "tenant version conflict"
	updateTenantErrMessage          = "failed to update tenant"
	softDeleteTenantErrMessage      = "failed to soft delete tenant"
	listTenantsErrMessage           = "failed to list tenants"
	getTenantErrMessage             = "failed to get tenant"
)

func NewTenantController(service usecases.TenantService) *TenantController {
	return &TenantController{
		service: service,
	}
}

var _ httpserver.Controller = &TenantController{}

type TenantController struct {
	service usecases.TenantService
}

func (c *TenantController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/tenants", c.listTenants())
	router.Handle("POST /v1/tenants", c.createTenant())
	router.Handle("GET /v1/tenants/{id}", c.getTenant())
	router.Handle("PUT /v1/tenants/{id}", c.updateTenant())
	router.Handle("DELETE /v1/tenants/{id}", c.softDeleteTenant())
	router.Handle("POST /v1/tenants/{id}/activate", c.activateTenant())
	router.Handle("POST /v1/tenants/{id}/deactivate", c.deactivateTenant())
}

func (c *TenantController) listTenants() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		includeDeleted := r.URL.Query().Get("include_deleted") == "true"

		params := httpserver.ExtractPaginationParams(r)
		pagination := usecases.Pagination{Limit: params.Limit, Offset: (params.Page - 1) * params.Limit}

		tenants, total, err := c.service.ListTenants(r.Context(), includeDeleted, pagination)
		if err != nil {
			slog.Error("listing tenants", slog.String("error", err.Error()))
			http.Error(w, listTenantsErrMessage, http.StatusInternalServerError)
			return
		}

		responses := make([]internal.TenantResponse, len(tenants))
		for i, tenant := range tenants {
			responses[i] = internal.ToTenantResponse(tenant)
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, responses, total, params)
	}
}

func (c *TenantController) createTenant() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.TenantCreateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding create tenant request", slog.String("error", err.Error()))
			http.Error(w, createTenantErrMessage, http.StatusBadRequest)
			return
		}

		tenant, err := domain.NewTenantBuilder().
			WithName(body.Name).
			WithEmail(body.Email).
			WithDescription(body.Description).
			Build()
		if err != nil {
			slog.Error("building tenant", slog.String("error", err.Error()))
			http.Error(w, createTenantErrMessage, http.StatusInternalServerError)
			return
		}

		err = c.service.CreateTenant(r.Context(), tenant)
		if errors.Is(err, usecases.ErrTenantDuplicated) {
			http.Error(w, tenantDuplicatedErrMessage, http.StatusConflict)
			return
		}
		if err != nil {
			slog.Error("creating tenant", slog.String("error", err.Error()))
			http.Error(w, createTenantErrMessage, http.StatusInternalServerError)
			return
		}

		response := internal.ToTenantResponse(tenant)
		httpserver.ReplyJSONResponse(w, http.StatusCreated, response)
	}
}

func (c *TenantController) getTenant() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "tenant id is required", http.StatusBadRequest)
			return
		}

		tenant, err := c.service.GetTenant(r.Context(), domain.ID(id))
		if errors.Is(err, usecases.ErrTenantNotFound) {
			http.Error(w, tenantNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("getting tenant", slog.String("error", err.Error()))
			http.Error(w, getTenantErrMessage, http.StatusInternalServerError)
			return
		}

		response := internal.ToTenantResponse(tenant)
		httpserver.ReplyJSONResponse(w, http.StatusOK, response)
	}
}

func (c *TenantController) updateTenant() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "tenant id is required", http.StatusBadRequest)
			return
		}

		var body internal.TenantUpdateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding update tenant request", slog.String("error", err.Error()))
			http.Error(w, updateTenantErrMessage, http.StatusBadRequest)
			return
		}

		tenant := domain.Tenant{
			ID:          domain.ID(id),
			Name:        body.Name,
			Email:       body.Email,
			Description: body.Description,
			Version:     body.Version,
		}

		err = c.service.UpdateTenant(r.Context(), tenant)
		switch {
		case errors.Is(err, usecases.ErrTenantNotFound):
			http.Error(w, tenantNotFoundErrMessage, http.StatusNotFound)
			return
		case errors.Is(err, usecases.ErrTenantDuplicated):
			http.Error(w, tenantDuplicatedErrMessage, http.StatusConflict)
			return
		case errors.Is(err, usecases.ErrTenantSoftDeleted):
			http.Error(w, tenantSoftDeletedErrMessage, http.StatusConflict)
			return
		case errors.Is(err, usecases.ErrTenantVersionConflict):
			http.Error(w, tenantVersionConflictErrMessage, http.StatusConflict)
			return
		case err != nil:
			slog.Error("updating tenant", slog.String("error", err.Error()))
			http.Error(w, updateTenantErrMessage, http.StatusInternalServerError)
			return
		}

		updated, err := c.service.GetTenant(r.Context(), domain.ID(id))
		if err != nil {
			slog.Error("getting updated tenant", slog.String("error", err.Error()))
			http.Error(w, getTenantErrMessage, http.StatusInternalServerError)
			return
		}

		response := internal.ToTenantResponse(updated)
		httpserver.ReplyJSONResponse(w, http.StatusOK, response)
	}
}

func (c *TenantController) softDeleteTenant() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "tenant id is required", http.StatusBadRequest)
			return
		}

		err := c.service.SoftDeleteTenant(r.Context(), domain.ID(id))
		switch {
		case errors.Is(err, usecases.ErrTenantNotFound):
			http.Error(w, tenantNotFoundErrMessage, http.StatusNotFound)
			return
		case errors.Is(err, usecases.ErrTenantSoftDeleted):
			http.Error(w, tenantSoftDeletedErrMessage, http.StatusConflict)
			return
		case err != nil:
			slog.Error("soft deleting tenant", slog.String("error", err.Error()))
			http.Error(w, softDeleteTenantErrMessage, http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (c *TenantController) activateTenant() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "tenant id is required", http.StatusBadRequest)
			return
		}

		err := c.service.ActivateTenant(r.Context(), domain.ID(id))
		switch {
		case errors.Is(err, usecases.ErrTenantNotFound):
			http.Error(w, tenantNotFoundErrMessage, http.StatusNotFound)
			return
		case errors.Is(err, usecases.ErrTenantSoftDeleted):
			http.Error(w, tenantSoftDeletedErrMessage, http.StatusConflict)
			return
		case err != nil:
			slog.Error("activating tenant", slog.String("error", err.Error()))
			http.Error(w, "failed to activate tenant", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (c *TenantController) deactivateTenant() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "tenant id is required", http.StatusBadRequest)
			return
		}

		err := c.service.DeactivateTenant(r.Context(), domain.ID(id))
		switch {
		case errors.Is(err, usecases.ErrTenantNotFound):
			http.Error(w, tenantNotFoundErrMessage, http.StatusNotFound)
			return
		case errors.Is(err, usecases.ErrTenantSoftDeleted):
			http.Error(w, tenantSoftDeletedErrMessage, http.StatusConflict)
			return
		case err != nil:
			slog.Error("deactivating tenant", slog.String("error", err.Error()))
			http.Error(w, "failed to deactivate tenant", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
