package steps

import (
	"fmt"
	"net/http"
)

// Product step implementations
func (fc *FeatureContext) iCreateAProductNamedWithEAN(name, ean string) error {
	resp, err := fc.apiDriver.CreateProduct(fc.tenantID, fc.categoryID, name, "Apple", "A2890", ean)
	fc.require.NoError(err)
	fc.response = resp
	return nil
}

func (fc *FeatureContext) aProductExistsNamedWithEAN(name, ean string) error {
	resp, err := fc.apiDriver.CreateProduct(fc.tenantID, fc.categoryID, name, "Apple", "A2890", ean)
	fc.require.NoError(err)
	fc.require.Equal(http.StatusCreated, resp.StatusCode)

	var data map[string]any
	err = fc.decodeBody(resp.Body, &data)
	fc.require.NoError(err)
	fc.productID = data["id"].(string)
	return nil
}

func (fc *FeatureContext) theResponseShouldContainTheProductDetails() error {
	var data map[string]any
	err := fc.decodeBody(fc.response.Body, &data)
	fc.require.NoError(err)
	fc.require.NotEmpty(data["id"])
	fc.productID = data["id"].(string)
	fc.responseData = data
	return nil
}

func (fc *FeatureContext) iSearchProductsByEAN(ean string) error {
	resp, err := fc.apiDriver.SearchProductByEAN(fc.tenantID, ean)
	fc.require.NoError(err)
	fc.response = resp
	return nil
}

func (fc *FeatureContext) theSearchResultShouldContainTheProductNamed(name string) error {
	var products []map[string]any
	err := fc.decodeBody(fc.response.Body, &products)
	fc.require.NoError(err)

	found := false
	for _, product := range products {
		if product["name"] == name {
			found = true
			break
		}
	}
	fc.require.True(found, fmt.Sprintf("Product with name %s not found in search result", name))
	return nil
}

func (fc *FeatureContext) theSearchResultShouldBeEmpty() error {
	var products []map[string]any
	err := fc.decodeBody(fc.response.Body, &products)
	fc.require.NoError(err)
	fc.require.Empty(products)
	return nil
}
