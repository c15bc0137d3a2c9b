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
	tenantHeaderName         = "X-Tenant-ID"
	tenantRequiredErrMessage = "tenant id is required"

	createCategoryErrMessage   = "failed to create category"
	getCategoryErrMessage      = "failed to get category"
	listCategoriesErrMessage   = "failed to list categories"
	updateCategoryErrMessage   = "failed to update category"
	deleteCategoryErrMessage   = "failed to delete category"
	updateConfigErrMessage     = "failed to update category config"
	addCustomFieldErrMessage   = "failed to add custom field"
	categoryNotFoundErrMessage = "category not found"
)

func NewCategoryController(service usecases.CategoryService) *CategoryController {
	return &CategoryController{
		service: service,
	}
}

var _ httpserver.Controller = &CategoryController{}

type CategoryController struct {
	service usecases.CategoryService
}

func (c *CategoryController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/categories", c.listCategories())
	router.Handle("POST /v1/categories", c.createCategory())
	router.Handle("GET /v1/categories/{id}", c.getCategory())
	router.Handle("PUT /v1/categories/{id}", c.updateCategory())
	router.Handle("DELETE /v1/categories/{id}", c.deleteCategory())
	router.Handle("PUT /v1/categories/{id}/config", c.updateConfig())
	router.Handle("POST /v1/categories/{id}/custom-fields", c.addCustomField())
}

func tenantID(r *http.Request) shareddomain.ID {
	return shareddomain.ID(r.Header.Get(tenantHeaderName))
}

func (c *CategoryController) listCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenant := tenantID(r)
		if tenant == "" {
			http.Error(w, tenantRequiredErrMessage, http.StatusBadRequest)
			return
		}

		params := httpserver.ExtractPaginationParams(r)
		pagination := usecases.Pagination{Limit: params.Limit, Offset: (params.Page - 1) * params.Limit}

		categories, total, err := c.service.ListCategories(r.Context(), tenant, pagination)
		if err != nil {
			slog.Error("listing categories", slog.String("error", err.Error()))
			http.Error(w, listCategoriesErrMessage, http.StatusInternalServerError)
			return
		}

		responses := make([]internal.CategoryResponse, len(categories))
		for i, category := range categories {
			responses[i] = internal.ToCategoryResponse(category)
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, responses, total, params)
	}
}

func (c *CategoryController) createCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenant := tenantID(r)
		if tenant == "" {
			http.Error(w, tenantRequiredErrMessage, http.StatusBadRequest)
			return
		}

		var body internal.CategoryCreateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding create category request", slog.String("error", err.Error()))
			http.Error(w, createCategoryErrMessage, http.StatusBadRequest)
			return
		}

		builder := domain.NewCategoryBuilder().
			WithTenantID(tenant).
			WithName(body.Name).
			WithDescription(body.Description)
		if body.Config != nil {
			builder = builder.WithConfig(*body.Config)
		}

		category, err := builder.Build()
		if err != nil {
			slog.Error("building category", slog.String("error", err.Error()))
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		err = c.service.CreateCategory(r.Context(), category)
		if err != nil {
			slog.Error("creating category", slog.String("error", err.Error()))
			http.Error(w, createCategoryErrMessage, http.StatusInternalServerError)
			return
		}

		response := internal.ToCategoryResponse(category)
		httpserver.ReplyJSONResponse(w, http.StatusCreated, response)
	}
}

func (c *CategoryController) getCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "category id is required", http.StatusBadRequest)
			return
		}

		category, err := c.service.GetCategory(r.Context(), shareddomain.ID(id))
		if errors.Is(err, usecases.ErrCategoryNotFound) {
			http.Error(w, categoryNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("getting category", slog.String("error", err.Error()))
			http.Error(w, getCategoryErrMessage, http.StatusInternalServerError)
			return
		}

		response := internal.ToCategoryResponse(category)
		httpserver.ReplyJSONResponse(w, http.StatusOK, response)
	}
}

func (c *CategoryController) updateCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "category id is required", http.StatusBadRequest)
			return
		}

		var body internal.CategoryUpdateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding update category request", slog.String("error", err.Error()))
			http.Error(w, updateCategoryErrMessage, http.StatusBadRequest)
			return
		}

		category := domain.Category{
			ID:          shareddomain.ID(id),
			Name:        body.Name,
			Description: body.Description,
		}

		err = c.service.UpdateCategory(r.Context(), category)
		switch {
		case errors.Is(err, usecases.ErrCategoryNotFound):
			http.Error(w, categoryNotFoundErrMessage, http.StatusNotFound)
			return
		case err != nil:
			slog.Error("updating category", slog.String("error", err.Error()))
			http.Error(w, updateCategoryErrMessage, http.StatusInternalServerError)
			return
		}

		updated, err := c.service.GetCategory(r.Context(), shareddomain.ID(id))
		if err != nil {
			slog.Error("getting updated category", slog.String("error", err.Error()))
			http.Error(w, getCategoryErrMessage, http.StatusInternalServerError)
			return
		}

		response := internal.ToCategoryResponse(updated)
		httpserver.ReplyJSONResponse(w, http.StatusOK, response)
	}
}

func (c *CategoryController) deleteCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "category id is required", http.StatusBadRequest)
			return
		}

		err := c.service.DeleteCategory(r.Context(), shareddomain.ID(id))
		switch {
		case errors.Is(err, usecases.ErrCategoryNotFound):
			http.Error(w, categoryNotFoundErrMessage, http.StatusNotFound)
			return
		case err != nil:
			slog.Error("deleting category", slog.String("error", err.Error()))
			http.Error(w, deleteCategoryErrMessage, http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (c *CategoryController) updateConfig() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "category id is required", http.StatusBadRequest)
			return
		}

		var body domain.CategoryConfig
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding update config request", slog.String("error", err.Error()))
			http.Error(w, updateConfigErrMessage, http.StatusBadRequest)
			return
		}

		if err := body.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		category, err := c.service.UpdateConfig(r.Context(), shareddomain.ID(id), body)
		switch {
		case errors.Is(err, usecases.ErrCategoryNotFound):
			http.Error(w, categoryNotFoundErrMessage, http.StatusNotFound)
			return
		case err != nil:
			slog.Error("updating category config", slog.String("error", err.Error()))
			http.Error(w, updateConfigErrMessage, http.StatusInternalServerError)
			return
		}

		response := internal.ToCategoryResponse(category)
		httpserver.ReplyJSONResponse(w, http.StatusOK, response)
	}
}

func (c *CategoryController) addCustomField() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "category id is required", http.StatusBadRequest)
			return
		}

		var body internal.CustomFieldCreateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding add custom field request", slog.String("error", err.Error()))
			http.Error(w, addCustomFieldErrMessage, http.StatusBadRequest)
			return
		}

		builder := domain.NewCustomFieldBuilder().
			WithLabel(body.Label).
			WithRequirement(domain.FieldRequirement(body.Requirement))
		if body.Type != "" {
			builder = builder.WithType(domain.CustomFieldType(body.Type))
		}
		if len(body.Options) > 0 {
			builder = builder.WithOptions(body.Options)
		}
		if body.LookupCollection != "" {
			builder = builder.WithLookupCollection(body.LookupCollection)
		}

		field, err := builder.Build()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		result, err := c.service.AddCustomField(r.Context(), shareddomain.ID(id), field)
		switch {
		case errors.Is(err, usecases.ErrCategoryNotFound):
			http.Error(w, categoryNotFoundErrMessage, http.StatusNotFound)
			return
		case err != nil:
			slog.Error("adding custom field", slog.String("error", err.Error()))
			http.Error(w, addCustomFieldErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, result)
	}
}
