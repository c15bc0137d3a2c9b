package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"catalog-server/internal/catalog/domain"
	"catalog-server/internal/catalog/httpapi/internal"
	"catalog-server/internal/catalog/usecases"
	"catalog-server/internal/infra/httpserver"
	shareddomain "catalog-server/internal/shared_kernel/domain"
)

const (
	createUnitErrMessage       = "failed to create unit"
	getUnitErrMessage          = "failed to get unit"
	listUnitsErrMessage        = "failed to list units"
	unitNotFoundErrMessage     = "unit not found"
	invalidConditionErrMessage = "invalid unit condition"
	unitValidationErrMessage   = "unit validation failed"
	prefillErrMessage          = "failed to prefill unit fields"
)

func NewUnitController(service usecases.UnitService) *UnitController {
	return &UnitController{
		service: service,
	}
}

var _ httpserver.Controller = &UnitController{}

type UnitController struct {
	service usecases.UnitService
}

func (c *UnitController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/units", c.listUnits())
	router.Handle("POST /v1/units", c.createUnit())
	router.Handle("GET /v1/units/prefill", c.prefill())
	router.Handle("GET /v1/units/{id}", c.getUnit())
}

func (c *UnitController) prefill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenant := tenantID(r)
		if tenant == "" {
			http.Error(w, tenantRequiredErrMessage, http.StatusBadRequest)
			return
		}

		categoryID := r.URL.Query().Get("category_id")
		ean := r.URL.Query().Get("ean")
		if categoryID == "" || ean == "" {
			http.Error(w, "category_id and ean are required", http.StatusBadRequest)
			return
		}

		fields, err := c.service.PrefillFromEAN(r.Context(), tenant, shareddomain.ID(categoryID), ean)
		if errors.Is(err, usecases.ErrCategoryNotFound) {
			http.Error(w, categoryNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("prefilling unit fields", slog.String("error", err.Error()))
			http.Error(w, prefillErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, fields)
	}
}

func (c *UnitController) listUnits() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenant := tenantID(r)
		if tenant == "" {
			http.Error(w, tenantRequiredErrMessage, http.StatusBadRequest)
			return
		}

		params := httpserver.ExtractPaginationParams(r)
		pagination := usecases.Pagination{Limit: params.Limit, Offset: (params.Page - 1) * params.Limit}

		units, total, err := c.service.ListUnits(r.Context(), tenant, pagination)
		if err != nil {
			slog.Error("listing units", slog.String("error", err.Error()))
			http.Error(w, listUnitsErrMessage, http.StatusInternalServerError)
			return
		}

		responses := make([]internal.UnitResponse, len(units))
		for i, unit := range units {
			responses[i] = internal.ToUnitResponse(unit)
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, responses, total, params)
	}
}

func (c *UnitController) createUnit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenant := tenantID(r)
		if tenant == "" {
			http.Error(w, tenantRequiredErrMessage, http.StatusBadRequest)
			return
		}

		var body internal.UnitCreateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding create unit request", slog.String("error", err.Error()))
			http.Error(w, createUnitErrMessage, http.StatusBadRequest)
			return
		}

		unit, err := domain.NewUnitBuilder().
			WithTenantID(tenant).
			WithProductID(shareddomain.ID(body.ProductID)).
			WithCategoryID(shareddomain.ID(body.CategoryID)).
			WithCondition(domain.Condition(body.Condition)).
			WithSerialNumber(body.SerialNumber).
			WithIMEIs(body.IMEI1, body.IMEI2).
			WithBatteryHealth(body.BatteryHealth).
			WithFields(body.Fields).
			WithName(body.Name).
			Build()
		if err != nil {
			slog.Error("building unit", slog.String("error", err.Error()))
			http.Error(w, createUnitErrMessage, http.StatusInternalServerError)
			return
		}

		created, err := c.service.CreateUnit(r.Context(), unit)
		var validationErr *usecases.UnitValidationError
		switch {
		case errors.As(err, &validationErr):
			response := internal.UnitValidationResponse{
				Message: unitValidationErrMessage,
				Errors:  validationErr.Result.Errors,
			}
			httpserver.ReplyJSONResponse(w, http.StatusUnprocessableEntity, response)
			return
		case errors.Is(err, usecases.ErrInvalidCondition):
			http.Error(w, invalidConditionErrMessage, http.StatusBadRequest)
			return
		case errors.Is(err, usecases.ErrCategoryNotFound):
			http.Error(w, categoryNotFoundErrMessage, http.StatusNotFound)
			return
		case errors.Is(err, usecases.ErrProductNotFound):
			http.Error(w, productNotFoundErrMessage, http.StatusNotFound)
			return
		case err != nil:
			slog.Error("creating unit", slog.String("error", err.Error()))
			http.Error(w, createUnitErrMessage, http.StatusInternalServerError)
			return
		}

		response := internal.ToUnitResponse(created)
		httpserver.ReplyJSONResponse(w, http.StatusCreated, response)
	}
}

func (c *UnitController) getUnit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "unit id is required", http.StatusBadRequest)
			return
		}

		unit, err := c.service.GetUnit(r.Context(), shareddomain.ID(id))
		if errors.Is(err, usecases.ErrUnitNotFound) {
			http.Error(w, unitNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("getting unit", slog.String("error", err.Error()))
			http.Error(w, getUnitErrMessage, http.StatusInternalServerError)
			return
		}

		response := internal.ToUnitResponse(unit)
		httpserver.ReplyJSONResponse(w, http.StatusOK, response)
	}
}
