package steps

// Healthz endpoint step implementations

func (fc *FeatureContext) iCallTheHealthzEndpoint() error {
	response, err := fc.apiDriver.GetHealthz()
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) theResponseShouldContainStatusInformation() error {
	var data map[string]any
	err := fc.decodeBody(fc.response.Body, &data)
	fc.require.NoError(err)

	fc.require.Contains(data, "status", "Status should be present")

	status, ok := data["status"].(string)
	fc.require.True(ok, "Status should be a string")
	fc.require.Equal("success", status, "Status should be 'success'")

	fc.responseData = data
	return nil
}
