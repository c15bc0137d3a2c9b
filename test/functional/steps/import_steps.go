package steps

import (
	"fmt"
	"net/http"
)

// Import step implementations
func (fc *FeatureContext) iUploadACSVWithRowsForEAN(ean string) error {
	csv := fmt.Sprintf("ean,serial_number,imei1,condition\n%s,SN001,111111111111111,new\n%s,SN002,222222222222222,used\n", ean, ean)
	resp, err := fc.apiDriver.CreateImport(fc.tenantID, csv)
	fc.require.NoError(err)
	fc.response = resp
	return nil
}

func (fc *FeatureContext) anImportSessionExistsWithRowsForEAN(ean string) error {
	err := fc.iUploadACSVWithRowsForEAN(ean)
	fc.require.NoError(err)
	fc.require.Equal(http.StatusCreated, fc.response.StatusCode)

	var data map[string]any
	err = fc.decodeBody(fc.response.Body, &data)
	fc.require.NoError(err)
	fc.sessionID = data["id"].(string)
	return nil
}

func (fc *FeatureContext) theResponseShouldContainTheImportSessionDetails() error {
	var data map[string]any
	err := fc.decodeBody(fc.response.Body, &data)
	fc.require.NoError(err)
	fc.require.NotEmpty(data["id"])
	fc.sessionID = data["id"].(string)
	fc.responseData = data
	return nil
}

func (fc *FeatureContext) iPreviewTheImport() error {
	resp, err := fc.apiDriver.GetImportPreview(fc.sessionID)
	fc.require.NoError(err)
	fc.response = resp
	return nil
}

func (fc *FeatureContext) everyPreviewedRowShouldBeValid() error {
	var previews []map[string]any
	err := fc.decodeBody(fc.response.Body, &previews)
	fc.require.NoError(err)
	fc.require.NotEmpty(previews)

	for _, preview := range previews {
		validation, ok := preview["validation"].(map[string]any)
		fc.require.True(ok, "preview row should carry a validation block")
		fc.require.Equal(true, validation["valid"], fmt.Sprintf("row %v should be valid", preview["row"]))
	}
	return nil
}

func (fc *FeatureContext) iCommitTheImport() error {
	resp, err := fc.apiDriver.CommitImport(fc.sessionID)
	fc.require.NoError(err)
	fc.response = resp
	return nil
}

func (fc *FeatureContext) theCommitResultShouldReportSuccessfulRows(count int) error {
	var data map[string]any
	err := fc.decodeBody(fc.response.Body, &data)
	fc.require.NoError(err)
	fc.require.Equal(float64(count), data["success"])
	fc.responseData = data
	return nil
}

func (fc *FeatureContext) iCancelTheImport() error {
	resp, err := fc.apiDriver.CancelImport(fc.sessionID)
	fc.require.NoError(err)
	fc.response = resp
	return nil
}

func (fc *FeatureContext) iGetTheImportSession() error {
	resp, err := fc.apiDriver.GetImportSession(fc.sessionID)
	fc.require.NoError(err)
	fc.response = resp
	return nil
}

func (fc *FeatureContext) theImportSessionStateShouldBe(state string) error {
	var data map[string]any
	err := fc.decodeBody(fc.response.Body, &data)
	fc.require.NoError(err)
	fc.require.Equal(state, data["state"])
	return nil
}
