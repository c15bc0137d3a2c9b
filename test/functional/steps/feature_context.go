package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"catalog-server/test/functional/driver"

	"github.com/cucumber/godog"
	"github.com/stretchr/testify/require"
)

// PaginatedResponse represents the paginated response format
type PaginatedResponse[T any] struct {
	Data       []T `json:"data"`
	Pagination struct {
		Total  int `json:"total"`
		Limit  int `json:"limit"`
		Offset int `json:"offset"`
	} `json:"pagination"`
}

type FeatureContext struct {
	apiDriver        *driver.APIDriver
	response         *http.Response
	responseData     map[string]any
	responseListData []map[string]any
	tenantID         string
	categoryID       string
	productID        string
	sessionID        string
	require          *require.Assertions
	t                godog.TestingT
}

func NewFeatureContext() *FeatureContext {
	return &FeatureContext{
		apiDriver: driver.NewAPIDriver("http://localhost:3000"),
	}
}

func (fc *FeatureContext) RegisterSteps(ctx *godog.ScenarioContext) {
	// Generic steps
	ctx.Step(`^wait for (.*)$`, fc.waitForDuration)
	ctx.Then(`^the response status code should be (\d+)$`, fc.theResponseStatusCodeShouldBe)

	// Tenant steps
	ctx.When(`^I create a new tenant with name "([^"]*)" and email "([^"]*)"$`, fc.iCreateANewTenantWithNameAndEmail)
	ctx.Given(`^a tenant exists with name "([^"]*)" and email "([^"]*)"$`, fc.aTenantExistsWithNameAndEmail)
	ctx.Given(`^a deactivated tenant exists with name "([^"]*)" and email "([^"]*)"$`, fc.aDeactivatedTenantExistsWithNameAndEmail)
	ctx.When(`^I get the tenant by its ID$`, fc.iGetTheTenantByItsID)
	ctx.Then(`^the response should contain the tenant details$`, fc.theResponseShouldContainTheTenantDetails)
	ctx.Then(`^the response should contain the tenant with name "([^"]*)"$`, fc.theResponseShouldContainTheTenantWithName)
	ctx.When(`^I list all tenants$`, fc.iListAllTenants)
	ctx.Then(`^the list should contain the tenant with name "([^"]*)"$`, fc.theListShouldContainTheTenantWithName)
	ctx.When(`^I update the tenant with a new name "([^"]*)"$`, fc.iUpdateTheTenantWithANewName)
	ctx.When(`^I deactivate the tenant$`, fc.iDeactivateTheTenant)
	ctx.When(`^I activate the tenant$`, fc.iActivateTheTenant)
	ctx.When(`^I soft delete the tenant$`, fc.iSoftDeleteTheTenant)

	// Category steps
	ctx.When(`^I create a category named "([^"]*)"$`, fc.iCreateACategoryNamed)
	ctx.Given(`^a category exists named "([^"]*)"$`, fc.aCategoryExistsNamed)
	ctx.Given(`^a category exists named "([^"]*)" requiring imei1 and serial number$`, fc.aCategoryExistsNamedRequiringIMEI1AndSerialNumber)
	ctx.When(`^I create a category named "([^"]*)" excluding the unknown field "([^"]*)"$`, fc.iCreateACategoryNamedExcludingTheUnknownField)
	ctx.Then(`^the response should contain the category details$`, fc.theResponseShouldContainTheCategoryDetails)
	ctx.When(`^I list all categories$`, fc.iListAllCategories)
	ctx.Then(`^the list should contain the category named "([^"]*)"$`, fc.theListShouldContainTheCategoryNamed)
	ctx.When(`^I update the category config requiring battery health$`, fc.iUpdateTheCategoryConfigRequiringBatteryHealth)
	ctx.When(`^I add a custom field labeled "([^"]*)"$`, fc.iAddACustomFieldLabeled)
	ctx.Then(`^the custom field key should be "([^"]*)"$`, fc.theCustomFieldKeyShouldBe)

	// Product steps
	ctx.When(`^I create a product named "([^"]*)" with EAN "([^"]*)"$`, fc.iCreateAProductNamedWithEAN)
	ctx.Given(`^a product exists named "([^"]*)" with EAN "([^"]*)"$`, fc.aProductExistsNamedWithEAN)
	ctx.Then(`^the response should contain the product details$`, fc.theResponseShouldContainTheProductDetails)
	ctx.When(`^I search products by EAN "([^"]*)"$`, fc.iSearchProductsByEAN)
	ctx.Then(`^the search result should contain the product named "([^"]*)"$`, fc.theSearchResultShouldContainTheProductNamed)
	ctx.Then(`^the search result should be empty$`, fc.theSearchResultShouldBeEmpty)

	// Unit steps
	ctx.When(`^I create a unit with serial number "([^"]*)" and imei1 "([^"]*)"$`, fc.iCreateAUnitWithSerialNumberAndIMEI1)
	ctx.When(`^I create a unit without identifiers$`, fc.iCreateAUnitWithoutIdentifiers)
	ctx.Then(`^the response should contain the unit details$`, fc.theResponseShouldContainTheUnitDetails)
	ctx.Then(`^the response should list the violated field "([^"]*)"$`, fc.theResponseShouldListTheViolatedField)

	// Import steps
	ctx.When(`^I upload a CSV with rows for EAN "([^"]*)"$`, fc.iUploadACSVWithRowsForEAN)
	ctx.Given(`^an import session exists with rows for EAN "([^"]*)"$`, fc.anImportSessionExistsWithRowsForEAN)
	ctx.Then(`^the response should contain the import session details$`, fc.theResponseShouldContainTheImportSessionDetails)
	ctx.When(`^I preview the import$`, fc.iPreviewTheImport)
	ctx.Then(`^every previewed row should be valid$`, fc.everyPreviewedRowShouldBeValid)
	ctx.When(`^I commit the import$`, fc.iCommitTheImport)
	ctx.Then(`^the commit result should report (\d+) successful rows$`, fc.theCommitResultShouldReportSuccessfulRows)
	ctx.When(`^I cancel the import$`, fc.iCancelTheImport)
	ctx.When(`^I get the import session$`, fc.iGetTheImportSession)
	ctx.Then(`^the import session state should be "([^"]*)"$`, fc.theImportSessionStateShouldBe)

	// Health steps
	ctx.When(`^I call the healthz endpoint$`, fc.iCallTheHealthzEndpoint)
	ctx.Then(`^the response should contain status information$`, fc.theResponseShouldContainStatusInformation)

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		fc.t = godog.T(ctx)
		fc.require = require.New(fc.t)

		fc.reset()
		return ctx, nil
	})
}

func (fc *FeatureContext) reset() {
	fc.response = nil
	fc.responseData = nil
	fc.responseListData = nil
	fc.tenantID = ""
	fc.categoryID = ""
	fc.productID = ""
	fc.sessionID = ""
}

func (fc *FeatureContext) decodeBody(body io.ReadCloser, target any) error {
	return json.NewDecoder(body).Decode(target)
}

func (fc *FeatureContext) decodePaginatedResponse(body *http.Response) ([]map[string]any, error) {
	var paginatedResp PaginatedResponse[map[string]any]
	if err := fc.decodeBody(body.Body, &paginatedResp); err != nil {
		return nil, fmt.Errorf("failed to decode paginated response: %w", err)
	}
	return paginatedResp.Data, nil
}
