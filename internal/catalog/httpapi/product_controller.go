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
	createProductErrMessage   = "failed to create product"
	getProductErrMessage      = "failed to get product"
	listProductsErrMessage    = "failed to list products"
	updateProductErrMessage   = "failed to update product"
	searchByEANErrMessage     = "failed to search products by ean"
	productNotFoundErrMessage = "product not found"
)

func NewProductController(service usecases.ProductService) *ProductController {
	return &ProductController{
		service: service,
	}
}

var _ httpserver.Controller = &ProductController{}

type ProductController struct {
	service usecases.ProductService
}

func (c *ProductController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/products", c.listProducts())
	router.Handle("POST /v1/products", c.createProduct())
	router.Handle("GET /v1/products/ean/{ean}", c.searchByEAN())
	router.Handle("GET /v1/products/{id}", c.getProduct())
	router.Handle("PUT /v1/products/{id}", c.updateProduct())
}

func (c *ProductController) listProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenant := tenantID(r)
		if tenant == "" {
			http.Error(w, tenantRequiredErrMessage, http.StatusBadRequest)
			return
		}

		params := httpserver.ExtractPaginationParams(r)
		pagination := usecases.Pagination{Limit: params.Limit, Offset: (params.Page - 1) * params.Limit}

		products, total, err := c.service.ListProducts(r.Context(), tenant, pagination)
		if err != nil {
			slog.Error("listing products", slog.String("error", err.Error()))
			http.Error(w, listProductsErrMessage, http.StatusInternalServerError)
			return
		}

		responses := make([]internal.ProductResponse, len(products))
		for i, product := range products {
			responses[i] = internal.ToProductResponse(product)
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, responses, total, params)
	}
}

func (c *ProductController) createProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenant := tenantID(r)
		if tenant == "" {
			http.Error(w, tenantRequiredErrMessage, http.StatusBadRequest)
			return
		}

		var body internal.ProductCreateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding create product request", slog.String("error", err.Error()))
			http.Error(w, createProductErrMessage, http.StatusBadRequest)
			return
		}

		product, err := domain.NewProductBuilder().
			WithTenantID(tenant).
			WithCategoryID(shareddomain.ID(body.CategoryID)).
			WithName(body.Name).
			WithBrand(body.Brand).
			WithModel(body.Model).
			WithSKU(body.SKU).
			WithEAN(body.EAN).
			WithFiscalCodes(body.NCM, body.CEST).
			WithWeight(body.Weight).
			WithSpecs(body.Specs).
			Build()
		if err != nil {
			slog.Error("building product", slog.String("error", err.Error()))
			http.Error(w, createProductErrMessage, http.StatusInternalServerError)
			return
		}

		err = c.service.CreateProduct(r.Context(), product)
		if errors.Is(err, usecases.ErrCategoryNotFound) {
			http.Error(w, categoryNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("creating product", slog.String("error", err.Error()))
			http.Error(w, createProductErrMessage, http.StatusInternalServerError)
			return
		}

		response := internal.ToProductResponse(product)
		httpserver.ReplyJSONResponse(w, http.StatusCreated, response)
	}
}

func (c *ProductController) getProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "product id is required", http.StatusBadRequest)
			return
		}

		product, err := c.service.GetProduct(r.Context(), shareddomain.ID(id))
		if errors.Is(err, usecases.ErrProductNotFound) {
			http.Error(w, productNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("getting product", slog.String("error", err.Error()))
			http.Error(w, getProductErrMessage, http.StatusInternalServerError)
			return
		}

		response := internal.ToProductResponse(product)
		httpserver.ReplyJSONResponse(w, http.StatusOK, response)
	}
}

func (c *ProductController) updateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "product id is required", http.StatusBadRequest)
			return
		}

		var body internal.ProductUpdateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding update product request", slog.String("error", err.Error()))
			http.Error(w, updateProductErrMessage, http.StatusBadRequest)
			return
		}

		product := domain.Product{
			ID:      shareddomain.ID(id),
			Name:    body.Name,
			Brand:   body.Brand,
			Model:   body.Model,
			SKU:     body.SKU,
			EAN:     body.EAN,
			NCM:     body.NCM,
			CEST:    body.CEST,
			Weight:  body.Weight,
			Specs:   body.Specs,
			Version: body.Version,
		}

		err = c.service.UpdateProduct(r.Context(), product)
		switch {
		case errors.Is(err, usecases.ErrProductNotFound):
			http.Error(w, productNotFoundErrMessage, http.StatusNotFound)
			return
		case err != nil:
			slog.Error("updating product", slog.String("error", err.Error()))
			http.Error(w, updateProductErrMessage, http.StatusInternalServerError)
			return
		}

		updated, err := c.service.GetProduct(r.Context(), shareddomain.ID(id))
		if err != nil {
			slog.Error("getting updated product", slog.String("error", err.Error()))
			http.Error(w, getProductErrMessage, http.StatusInternalServerError)
			return
		}

		response := internal.ToProductResponse(updated)
		httpserver.ReplyJSONResponse(w, http.StatusOK, response)
	}
}

func (c *ProductController) searchByEAN() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenant := tenantID(r)
		if tenant == "" {
			http.Error(w, tenantRequiredErrMessage, http.StatusBadRequest)
			return
		}

		ean := r.PathValue("ean")
		if ean == "" {
			http.Error(w, "ean is required", http.StatusBadRequest)
			return
		}

		products, err := c.service.SearchByEAN(r.Context(), tenant, ean)
		if err != nil {
			slog.Error("searching products by ean", slog.String("error", err.Error()))
			http.Error(w, searchByEANErrMessage, http.StatusInternalServerError)
			return
		}

		responses := make([]internal.ProductResponse, len(products))
		for i, product := range products {
			responses[i] = internal.ToProductResponse(product)
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, responses)
	}
}
