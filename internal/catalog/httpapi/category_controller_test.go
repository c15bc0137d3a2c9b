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
	shareddomain "catalog-server/internal/shared_kernel/domain"
	mockusecases "catalog-server/test/unit/doubles/catalog/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("CategoryController", func() {
	var controller *httpapi.CategoryController
	var mockService *mockusecases.MockCategoryService
	var ctrl *gomock.Controller
	var recorder *httptest.ResponseRecorder
	var request *http.Request
	var router *http.ServeMux

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockService = mockusecases.NewMockCategoryService(ctrl)
		controller = httpapi.NewCategoryController(mockService)
		recorder = httptest.NewRecorder()
		router = http.NewServeMux()
		controller.AddRoutes(router)
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("listCategories", func() {
		When("the tenant header is missing", func() {
			BeforeEach(func() {
				request = httptest.NewRequest("GET", "/v1/categories", nil)
			})

			It("returns 400", func() {
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			})
		})

		When("the tenant header is present", func() {
			var categories []domain.Category

			BeforeEach(func() {
				category1, _ := domain.NewCategoryBuilder().WithTenantID("tenant-1").WithName("Smartphones").Build()
				category2, _ := domain.NewCategoryBuilder().WithTenantID("tenant-1").WithName("Tablets").Build()
				categories = []domain.Category{category1, category2}
				request = httptest.NewRequest("GET", "/v1/categories", nil)
				request.Header.Set("X-Tenant-ID", "tenant-1")
			})

			It("returns a paginated response scoped to the tenant", func() {
				expectedPagination := usecases.Pagination{Limit: 10, Offset: 0}
				mockService.EXPECT().
					ListCategories(gomock.Any(), shareddomain.ID("tenant-1"), expectedPagination).
					Return(categories, 2, nil)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusOK))

				var response struct {
					Data       []internal.CategoryResponse `json:"data"`
					Pagination struct {
						Total int `json:"total"`
					} `json:"pagination"`
				}
				err := json.Unmarshal(recorder.Body.Bytes(), &response)
				Expect(err).NotTo(HaveOccurred())
				Expect(response.Data).To(HaveLen(2))
				Expect(response.Pagination.Total).To(Equal(2))
			})
		})
	})

	Context("createCategory", func() {
		When("the payload carries a governance config", func() {
			BeforeEach(func() {
				body, _ := json.Marshal(internal.CategoryCreateRequest{
					Name: "Smartphones",
					Config: &domain.CategoryConfig{
						IMEI1:        domain.FieldRequired,
						SerialNumber: domain.FieldRequired,
					},
				})
				request = httptest.NewRequest("POST", "/v1/categories", bytes.NewReader(body))
				request.Header.Set("X-Tenant-ID", "tenant-1")
			})

			It("creates the category with a normalized config", func() {
				mockService.EXPECT().
					CreateCategory(gomock.Any(), gomock.Any()).
					Return(nil)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusCreated))

				var response internal.CategoryResponse
				Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
				Expect(response.Name).To(Equal("Smartphones"))
				Expect(response.TenantID).To(Equal("tenant-1"))
				Expect(response.Config.IMEI1).To(Equal(domain.FieldRequired))
				Expect(response.Config.IMEI2).To(Equal(domain.FieldOptional))
			})
		})

		When("the config references an unknown exclude field", func() {
			BeforeEach(func() {
				body, _ := json.Marshal(internal.CategoryCreateRequest{
					Name: "Smartphones",
					Config: &domain.CategoryConfig{
						EANAutofill: domain.EANAutofill{
							Enabled:       true,
							ExcludeFields: []string{"no_such_field"},
						},
					},
				})
				request = httptest.NewRequest("POST", "/v1/categories", bytes.NewReader(body))
				request.Header.Set("X-Tenant-ID", "tenant-1")
			})

			It("returns 400 without calling the service", func() {
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			})
		})
	})

	Context("getCategory", func() {
		When("the category does not exist", func() {
			BeforeEach(func() {
				request = httptest.NewRequest("GET", "/v1/categories/missing", nil)
			})

			It("returns 404", func() {
				mockService.EXPECT().
					GetCategory(gomock.Any(), shareddomain.ID("missing")).
					Return(domain.Category{}, usecases.ErrCategoryNotFound)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Context("updateConfig", func() {
		When("the config is valid", func() {
			var category domain.Category

			BeforeEach(func() {
				category, _ = domain.NewCategoryBuilder().
					WithTenantID("tenant-1").
					WithName("Smartphones").
					WithConfig(domain.CategoryConfig{BatteryHealth: domain.FieldRequired}).
					Build()

				body, _ := json.Marshal(domain.CategoryConfig{BatteryHealth: domain.FieldRequired})
				request = httptest.NewRequest("PUT", "/v1/categories/"+category.ID.String()+"/config", bytes.NewReader(body))
			})

			It("replaces the config and returns the category", func() {
				mockService.EXPECT().
					UpdateConfig(gomock.Any(), category.ID, gomock.Any()).
					Return(category, nil)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusOK))

				var response internal.CategoryResponse
				Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
				Expect(response.Config.BatteryHealth).To(Equal(domain.FieldRequired))
			})
		})

		When("the config has duplicated custom field keys", func() {
			BeforeEach(func() {
				body, _ := json.Marshal(domain.CategoryConfig{
					CustomFields: []domain.CustomField{
						{Key: "supplier", Label: "Supplier"},
						{Key: "supplier", Label: "Supplier Again"},
					},
				})
				request = httptest.NewRequest("PUT", "/v1/categories/cat-1/config", bytes.NewReader(body))
			})

			It("returns 400 without calling the service", func() {
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			})
		})
	})

	Context("addCustomField", func() {
		When("the label is valid", func() {
			BeforeEach(func() {
				body, _ := json.Marshal(internal.CustomFieldCreateRequest{
					Label:       "Observação Fiscal",
					Type:        "text",
					Requirement: "required",
				})
				request = httptest.NewRequest("POST", "/v1/categories/cat-1/custom-fields", bytes.NewReader(body))
			})

			It("returns the field with a slugified key", func() {
				mockService.EXPECT().
					AddCustomField(gomock.Any(), shareddomain.ID("cat-1"), gomock.Any()).
					DoAndReturn(func(_ any, _ shareddomain.ID, field domain.CustomField) (domain.CustomField, error) {
						Expect(field.Key).To(Equal("observacao_fiscal"))
						Expect(field.Requirement).To(Equal(domain.FieldRequired))
						return field, nil
					})

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusCreated))

				var response domain.CustomField
				Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
				Expect(response.Key).To(Equal("observacao_fiscal"))
			})
		})

		When("the label produces an empty key", func() {
			BeforeEach(func() {
				body, _ := json.Marshal(internal.CustomFieldCreateRequest{Label: "!!!"})
				request = httptest.NewRequest("POST", "/v1/categories/cat-1/custom-fields", bytes.NewReader(body))
			})

			It("returns 400 without calling the service", func() {
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			})
		})
	})

	Context("deleteCategory", func() {
		When("deletion succeeds", func() {
			BeforeEach(func() {
				request = httptest.NewRequest("DELETE", "/v1/categories/cat-1", nil)
			})

			It("returns 204", func() {
				mockService.EXPECT().
					DeleteCategory(gomock.Any(), shareddomain.ID("cat-1")).
					Return(nil)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusNoContent))
			})
		})
	})
})
