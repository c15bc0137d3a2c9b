package driver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

const tenantHeaderName = "X-Tenant-ID"

type APIDriver struct {
	baseURL string
	client  *http.Client
}

func NewAPIDriver(baseURL string) *APIDriver {
	return &APIDriver{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

func (d *APIDriver) postJSON(path, tenantID string, payload any) (*http.Response, error) {
	reqBody, err := json.Marshal(payload)
	if err != nil {
		panic(err)
	}
	req, err := http.NewRequest(http.MethodPost, d.baseURL+path, bytes.NewBuffer(reqBody))
	if err != nil {
		panic(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if tenantID != "" {
		req.Header.Set(tenantHeaderName, tenantID)
	}
	return d.client.Do(req)
}

func (d *APIDriver) putJSON(path, tenantID string, payload any) (*http.Response, error) {
	reqBody, err := json.Marshal(payload)
	if err != nil {
		panic(err)
	}
	req, err := http.NewRequest(http.MethodPut, d.baseURL+path, bytes.NewBuffer(reqBody))
	if err != nil {
		panic(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if tenantID != "" {
		req.Header.Set(tenantHeaderName, tenantID)
	}
	return d.client.Do(req)
}

func (d *APIDriver) get(path, tenantID string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, d.baseURL+path, nil)
	if err != nil {
		panic(err)
	}
	if tenantID != "" {
		req.Header.Set(tenantHeaderName, tenantID)
	}
	return d.client.Do(req)
}

func (d *APIDriver) CreateTenant(name, email, description string) (*http.Response, error) {
	return d.postJSON("/v1/tenants", "", map[string]any{
		"name":        name,
		"email":       email,
		"description": description,
	})
}

func (d *APIDriver) GetTenant(id string) (*http.Response, error) {
	return d.get(fmt.Sprintf("/v1/tenants/%s", id), "")
}

func (d *APIDriver) ListTenants() (*http.Response, error) {
	return d.get("/v1/tenants", "")
}

func (d *APIDriver) UpdateTenant(id, newName string) (*http.Response, error) {
	return d.putJSON(fmt.Sprintf("/v1/tenants/%s", id), "", map[string]any{"name": newName})
}

func (d *APIDriver) DeactivateTenant(id string) (*http.Response, error) {
	return d.postJSON(fmt.Sprintf("/v1/tenants/%s/deactivate", id), "", nil)
}

func (d *APIDriver) ActivateTenant(id string) (*http.Response, error) {
	return d.postJSON(fmt.Sprintf("/v1/tenants/%s/activate", id), "", nil)
}

func (d *APIDriver) SoftDeleteTenant(id string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/v1/tenants/%s", d.baseURL, id), nil)
	if err != nil {
		panic(err)
	}
	return d.client.Do(req)
}

func (d *APIDriver) CreateCategory(tenantID, name, description string) (*http.Response, error) {
	return d.postJSON("/v1/categories", tenantID, map[string]any{
		"name":        name,
		"description": description,
	})
}

func (d *APIDriver) CreateCategoryWithConfig(tenantID, name string, config map[string]any) (*http.Response, error) {
	return d.postJSON("/v1/categories", tenantID, map[string]any{
		"name":   name,
		"config": config,
	})
}

func (d *APIDriver) GetCategory(id string) (*http.Response, error) {
	return d.get(fmt.Sprintf("/v1/categories/%s", id), "")
}

func (d *APIDriver) ListCategories(tenantID string) (*http.Response, error) {
	return d.get("/v1/categories", tenantID)
}

func (d *APIDriver) UpdateCategoryConfig(id string, config map[string]any) (*http.Response, error) {
	return d.putJSON(fmt.Sprintf("/v1/categories/%s/config", id), "", config)
}

func (d *APIDriver) AddCustomField(categoryID, label string) (*http.Response, error) {
	return d.postJSON(fmt.Sprintf("/v1/categories/%s/custom-fields", categoryID), "", map[string]any{
		"label": label,
	})
}

func (d *APIDriver) CreateProduct(tenantID, categoryID, name, brand, model, ean string) (*http.Response, error) {
	return d.postJSON("/v1/products", tenantID, map[string]any{
		"category_id": categoryID,
		"name":        name,
		"brand":       brand,
		"model":       model,
		"ean":         ean,
	})
}

func (d *APIDriver) GetProduct(id string) (*http.Response, error) {
	return d.get(fmt.Sprintf("/v1/products/%s", id), "")
}

func (d *APIDriver) SearchProductByEAN(tenantID, ean string) (*http.Response, error) {
	return d.get(fmt.Sprintf("/v1/products/ean/%s", ean), tenantID)
}

func (d *APIDriver) CreateUnit(tenantID string, payload map[string]any) (*http.Response, error) {
	return d.postJSON("/v1/units", tenantID, payload)
}

func (d *APIDriver) ListUnits(tenantID string) (*http.Response, error) {
	return d.get("/v1/units", tenantID)
}

func (d *APIDriver) CreateImport(tenantID, csv string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodPost, fmt.Sprintf("%s/v1/imports", d.baseURL), strings.NewReader(csv))
	if err != nil {
		panic(err)
	}
	req.Header.Set("Content-Type", "text/csv")
	req.Header.Set(tenantHeaderName, tenantID)
	return d.client.Do(req)
}

func (d *APIDriver) GetImportSession(id string) (*http.Response, error) {
	return d.get(fmt.Sprintf("/v1/imports/%s", id), "")
}

func (d *APIDriver) GetImportPreview(id string) (*http.Response, error) {
	return d.get(fmt.Sprintf("/v1/imports/%s/preview", id), "")
}

func (d *APIDriver) CommitImport(id string) (*http.Response, error) {
	return d.postJSON(fmt.Sprintf("/v1/imports/%s/commit", id), "", nil)
}

func (d *APIDriver) CancelImport(id string) (*http.Response, error) {
	return d.postJSON(fmt.Sprintf("/v1/imports/%s/cancel", id), "", nil)
}

func (d *APIDriver) GetHealthz() (*http.Response, error) {
	return d.get("/healthz", "")
}
