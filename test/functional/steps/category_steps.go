package steps

import (
	"fmt"
	"net/http"
)

// Category step implementations
func (fc *FeatureContext) iCreateACategoryNamed(name string) error {
	resp, err := fc.apiDriver.CreateCategory(fc.tenantID, name, "A test category")
	fc.require.NoError(err)
	fc.response = resp
	return nil
}

func (fc *FeatureContext) aCategoryExistsNamed(name string) error {
	resp, err := fc.apiDriver.CreateCategory(fc.tenantID, name, "A test category")
	fc.require.NoError(err)
	fc.require.Equal(http.StatusCreated, resp.StatusCode)

	var data map[string]any
	err = fc.decodeBody(resp.Body, &data)
	fc.require.NoError(err)
	fc.categoryID = data["id"].(string)
	return nil
}

func (fc *FeatureContext) aCategoryExistsNamedRequiringIMEI1AndSerialNumber(name string) error {
	config := map[string]any{
		"imei1":         "required",
		"serial_number": "required",
	}
	resp, err := fc.apiDriver.CreateCategoryWithConfig(fc.tenantID, name, config)
	fc.require.NoError(err)
	fc.require.Equal(http.StatusCreated, resp.StatusCode)

	var data map[string]any
	err = fc.decodeBody(resp.Body, &data)
	fc.require.NoError(err)
	fc.categoryID = data["id"].(string)
	return nil
}

func (fc *FeatureContext) iCreateACategoryNamedExcludingTheUnknownField(name, field string) error {
	config := map[string]any{
		"exclude_fields": []string{field},
	}
	resp, err := fc.apiDriver.CreateCategoryWithConfig(fc.tenantID, name, config)
	fc.require.NoError(err)
	fc.response = resp
	return nil
}

func (fc *FeatureContext) theResponseShouldContainTheCategoryDetails() error {
	var data map[string]any
	err := fc.decodeBody(fc.response.Body, &data)
	fc.require.NoError(err)
	fc.require.NotEmpty(data["id"])
	fc.categoryID = data["id"].(string)
	fc.responseData = data
	return nil
}

func (fc *FeatureContext) iListAllCategories() error {
	resp, err := fc.apiDriver.ListCategories(fc.tenantID)
	fc.require.NoError(err)
	fc.response = resp
	return err
}

func (fc *FeatureContext) theListShouldContainTheCategoryNamed(name string) error {
	categories, err := fc.decodePaginatedResponse(fc.response)
	fc.require.NoError(err)

	found := false
	for _, category := range categories {
		if category["name"] == name {
			found = true
			break
		}
	}
	fc.require.True(found, fmt.Sprintf("Category with name %s not found in list", name))
	return nil
}

func (fc *FeatureContext) iUpdateTheCategoryConfigRequiringBatteryHealth() error {
	config := map[string]any{
		"battery_health": "required",
	}
	resp, err := fc.apiDriver.UpdateCategoryConfig(fc.categoryID, config)
	fc.require.NoError(err)
	fc.response = resp
	return nil
}

func (fc *FeatureContext) iAddACustomFieldLabeled(label string) error {
	resp, err := fc.apiDriver.AddCustomField(fc.categoryID, label)
	fc.require.NoError(err)
	fc.response = resp
	return nil
}

func (fc *FeatureContext) theCustomFieldKeyShouldBe(key string) error {
	var data map[string]any
	err := fc.decodeBody(fc.response.Body, &data)
	fc.require.NoError(err)
	fc.require.Equal(key, data["key"])
	return nil
}
