package httpapi_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"catalog-server/internal/catalog/domain"
	"catalog-server/internal/catalog/httpapi"
	"catalog-server/internal/catalog/httpapi/internal"
	"catalog-server/internal/catalog/usecases"
	"catalog-server/internal/catalog/validation"
	shareddomain "catalog-server/internal/shared_kernel/domain"
	mockusecases "catalog-server/test/unit/doubles/catalog/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("UnitController", func() {
	var controller *httpapi.UnitController
	var mockService *mockusecases.MockUnitService
	var ctrl *gomock.Controller
	var recorder *httptest.ResponseRecorder
	var request *http.Request
	var router *http.ServeMux

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockService = mockusecases.NewMockUnitService(ctrl)
		controller = httpapi.NewUnitController(mockService)
		recorder = httptest.NewRecorder()
		router = http.NewServeMux()
		controller.AddRoutes(router)
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("createUnit", func() {
		When("the unit passes validation", func() {
			BeforeEach(func() {
				body, _ := json.Marshal(internal.UnitCreateRequest{
					ProductID:    "prod-1",
					CategoryID:   "cat-1",
					Condition:    "new",
					SerialNumber: "SN12345",
					IMEI1:        "123456789012345",
				})
				request = httptest.NewRequest("POST", "/v1/units", bytes.NewReader(body))
				request.Header.Set("X-Tenant-ID", "tenant-1")
			})

			It("creates the unit and returns 201", func() {
				mockService.EXPECT().
					CreateUnit(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, unit domain.Unit) (domain.Unit, error) {
						Expect(unit.TenantID).To(Equal(shareddomain.ID("tenant-1")))
						Expect(unit.Condition).To(Equal(domain.ConditionNew))
						unit.Name = "Redmi Note 14, 8GB/256GB"
						return unit, nil
					})

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusCreated))

				var response internal.UnitResponse
				Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
				Expect(response.Name).To(Equal("Redmi Note 14, 8GB/256GB"))
				Expect(response.SerialNumber).To(Equal("SN12345"))
			})
		})

		When("the unit violates the governance schema", func() {
			BeforeEach(func() {
				body, _ := json.Marshal(internal.UnitCreateRequest{
					ProductID:  "prod-1",
					CategoryID: "cat-1",
					Condition:  "used",
					IMEI1:      "12345",
				})
				request = httptest.NewRequest("POST", "/v1/units", bytes.NewReader(body))
				request.Header.Set("X-Tenant-ID", "tenant-1")
			})

			It("returns 422 with the per-field violations", func() {
				result := validation.Result{Errors: map[string][]string{
					"imei1":          {"must be 15 digits"},
					"battery_health": {"is required"},
				}}
				mockService.EXPECT().
					CreateUnit(gomock.Any(), gomock.Any()).
					Return(domain.Unit{}, &usecases.UnitValidationError{Result: result})

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusUnprocessableEntity))

				var response internal.UnitValidationResponse
				Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
				Expect(response.Errors).To(HaveKeyWithValue("imei1", []string{"must be 15 digits"}))
				Expect(response.Errors).To(HaveKeyWithValue("battery_health", []string{"is required"}))
			})
		})

		When("the condition is not recognized", func() {
			BeforeEach(func() {
				body, _ := json.Marshal(internal.UnitCreateRequest{
					ProductID:  "prod-1",
					CategoryID: "cat-1",
					Condition:  "refurbished",
				})
				request = httptest.NewRequest("POST", "/v1/units", bytes.NewReader(body))
				request.Header.Set("X-Tenant-ID", "tenant-1")
			})

			It("returns 400", func() {
				mockService.EXPECT().
					CreateUnit(gomock.Any(), gomock.Any()).
					Return(domain.Unit{}, usecases.ErrInvalidCondition)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			})
		})

		When("the product does not exist", func() {
			BeforeEach(func() {
				body, _ := json.Marshal(internal.UnitCreateRequest{
					ProductID:  "missing",
					CategoryID: "cat-1",
					Condition:  "new",
				})
				request = httptest.NewRequest("POST", "/v1/units", bytes.NewReader(body))
				request.Header.Set("X-Tenant-ID", "tenant-1")
			})

			It("returns 404", func() {
				mockService.EXPECT().
					CreateUnit(gomock.Any(), gomock.Any()).
					Return(domain.Unit{}, usecases.ErrProductNotFound)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Context("listUnits", func() {
		When("the tenant header is present", func() {
			var units []domain.Unit

			BeforeEach(func() {
				unit1, _ := domain.NewUnitBuilder().WithTenantID("tenant-1").WithSerialNumber("SN1").Build()
				unit2, _ := domain.NewUnitBuilder().WithTenantID("tenant-1").WithSerialNumber("SN2").Build()
				units = []domain.Unit{unit1, unit2}
				request = httptest.NewRequest("GET", "/v1/units", nil)
				request.Header.Set("X-Tenant-ID", "tenant-1")
			})

			It("returns a paginated response", func() {
				expectedPagination := usecases.Pagination{Limit: 10, Offset: 0}
				mockService.EXPECT().
					ListUnits(gomock.Any(), shareddomain.ID("tenant-1"), expectedPagination).
					Return(units, 2, nil)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusOK))

				var response struct {
					Data       []internal.UnitResponse `json:"data"`
					Pagination struct {
						Total int `json:"total"`
					} `json:"pagination"`
				}
				Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
				Expect(response.Data).To(HaveLen(2))
				Expect(response.Pagination.Total).To(Equal(2))
			})
		})
	})

	Context("prefill", func() {
		When("the category has autofill enabled and a base product matches", func() {
			BeforeEach(func() {
				request = httptest.NewRequest("GET", "/v1/units/prefill?category_id=cat-1&ean=7891234567895", nil)
				request.Header.Set("X-Tenant-ID", "tenant-1")
			})

			It("returns the prefilled fields", func() {
				mockService.EXPECT().
					PrefillFromEAN(gomock.Any(), shareddomain.ID("tenant-1"), shareddomain.ID("cat-1"), "7891234567895").
					Return(map[string]string{"brand": "Apple", "model": "A2890"}, nil)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusOK))

				var response map[string]string
				Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
				Expect(response).To(HaveKeyWithValue("brand", "Apple"))
				Expect(response).To(HaveKeyWithValue("model", "A2890"))
			})
		})

		When("the tenant header is missing", func() {
			BeforeEach(func() {
				request = httptest.NewRequest("GET", "/v1/units/prefill?category_id=cat-1&ean=7891234567895", nil)
			})

			It("returns 400", func() {
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			})
		})

		When("the ean query parameter is missing", func() {
			BeforeEach(func() {
				request = httptest.NewRequest("GET", "/v1/units/prefill?category_id=cat-1", nil)
				request.Header.Set("X-Tenant-ID", "tenant-1")
			})

			It("returns 400", func() {
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			})
		})

		When("the category does not exist", func() {
			BeforeEach(func() {
				request = httptest.NewRequest("GET", "/v1/units/prefill?category_id=missing&ean=7891234567895", nil)
				request.Header.Set("X-Tenant-ID", "tenant-1")
			})

			It("returns 404", func() {
				mockService.EXPECT().
					PrefillFromEAN(gomock.Any(), shareddomain.ID("tenant-1"), shareddomain.ID("missing"), "7891234567895").
					Return(nil, usecases.ErrCategoryNotFound)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Context("getUnit", func() {
		When("the unit does not exist", func() {
			BeforeEach(func() {
				request = httptest.NewRequest("GET", "/v1/units/missing", nil)
			})

			It("returns 404", func() {
				mockService.EXPECT().
					GetUnit(gomock.Any(), shareddomain.ID("missing")).
					Return(domain.Unit{}, usecases.ErrUnitNotFound)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusNotFound))
			})
		})
	})
})
