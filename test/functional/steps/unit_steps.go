package steps

import "fmt"

// Unit step implementations
func (fc *FeatureContext) iCreateAUnitWithSerialNumberAndIMEI1(serialNumber, imei1 string) error {
	payload := map[string]any{
		"product_id":    fc.productID,
		"category_id":   fc.categoryID,
		"condition":     "new",
		"serial_number": serialNumber,
		"imei1":         imei1,
	}
	resp, err := fc.apiDriver.CreateUnit(fc.tenantID, payload)
	fc.require.NoError(err)
	fc.response = resp
	return nil
}

func (fc *FeatureContext) iCreateAUnitWithoutIdentifiers() error {
	payload := map[string]any{
		"product_id":  fc.productID,
		"category_id": fc.categoryID,
		"condition":   "new",
	}
	resp, err := fc.apiDriver.CreateUnit(fc.tenantID, payload)
	fc.require.NoError(err)
	fc.response = resp
	return nil
}

func (fc *FeatureContext) theResponseShouldContainTheUnitDetails() error {
	var data map[string]any
	err := fc.decodeBody(fc.response.Body, &data)
	fc.require.NoError(err)
	fc.require.NotEmpty(data["id"])
	fc.responseData = data
	return nil
}

func (fc *FeatureContext) theResponseShouldListTheViolatedField(field string) error {
	var data map[string]any
	err := fc.decodeBody(fc.response.Body, &data)
	fc.require.NoError(err)

	violations, ok := data["errors"].(map[string]any)
	fc.require.True(ok, "expected a field error map in the response")
	fc.require.Contains(violations, field, fmt.Sprintf("field %s should be listed as violated", field))
	return nil
}
