package httpapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"

	"catalog-server/internal/intake/domain"
	"catalog-server/internal/intake/httpapi"
	"catalog-server/internal/intake/httpapi/internal"
	"catalog-server/internal/intake/usecases"
	shareddomain "catalog-server/internal/shared_kernel/domain"
	mockusecases "catalog-server/test/unit/doubles/intake/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("ImportController", func() {
	var controller *httpapi.ImportController
	var mockService *mockusecases.MockImportService
	var ctrl *gomock.Controller
	var recorder *httptest.ResponseRecorder
	var request *http.Request
	var router *http.ServeMux

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockService = mockusecases.NewMockImportService(ctrl)
		controller = httpapi.NewImportController(mockService)
		recorder = httptest.NewRecorder()
		router = http.NewServeMux()
		controller.AddRoutes(router)
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("createSession", func() {
		When("a CSV body is uploaded", func() {
			var session domain.ImportSession

			BeforeEach(func() {
				session, _ = domain.NewImportSessionBuilder().
					WithTenantID("tenant-1").
					WithRows([]domain.BulkRow{{Index: 1, Values: map[string]string{"ean": "7891234567895"}}}).
					Build()

				request = httptest.NewRequest("POST", "/v1/imports", strings.NewReader("ean,serial_number\n7891234567895,SN1\n"))
				request.Header.Set("X-Tenant-ID", "tenant-1")
			})

			It("creates a parsed session and returns 201", func() {
				mockService.EXPECT().
					CreateSession(gomock.Any(), shareddomain.ID("tenant-1"), gomock.Any()).
					Return(session, nil)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusCreated))

				var response internal.ImportSessionResponse
				Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
				Expect(response.State).To(Equal("parsed"))
				Expect(response.RowCount).To(Equal(1))
			})
		})

		When("the body is empty", func() {
			BeforeEach(func() {
				request = httptest.NewRequest("POST", "/v1/imports", strings.NewReader(""))
				request.Header.Set("X-Tenant-ID", "tenant-1")
			})

			It("returns 400", func() {
				mockService.EXPECT().
					CreateSession(gomock.Any(), shareddomain.ID("tenant-1"), gomock.Any()).
					Return(domain.ImportSession{}, usecases.ErrEmptyInput)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			})
		})

		When("the tenant header is missing", func() {
			BeforeEach(func() {
				request = httptest.NewRequest("POST", "/v1/imports", strings.NewReader("ean\n"))
			})

			It("returns 400 without calling the service", func() {
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			})
		})
	})

	Context("preview", func() {
		When("previews resolve", func() {
			BeforeEach(func() {
				request = httptest.NewRequest("GET", "/v1/imports/session-1/preview", nil)
			})

			It("returns one preview per row with its validation", func() {
				previews := []domain.RowPreview{
					{
						Row:        domain.BulkRow{Index: 1, Values: map[string]string{"ean": "7891234567895", "serial_number": "SN1"}},
						Merged:     map[string]string{"serial_number": "SN1"},
						Validation: domain.RowValidation{Row: 1},
					},
					{
						Row:        domain.BulkRow{Index: 2, Values: map[string]string{"ean": "789"}},
						Validation: domain.RowValidation{Row: 2, Errors: []string{"EAN must be 13 digits"}},
					},
				}
				mockService.EXPECT().
					Preview(gomock.Any(), shareddomain.ID("session-1")).
					Return(previews, nil)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusOK))

				var response []internal.RowPreviewResponse
				Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
				Expect(response).To(HaveLen(2))
				Expect(response[0].Validation.Valid).To(BeTrue())
				Expect(response[1].Validation.Valid).To(BeFalse())
				Expect(response[1].Validation.Errors).To(ConsistOf("EAN must be 13 digits"))
			})
		})

		When("the session does not exist", func() {
			BeforeEach(func() {
				request = httptest.NewRequest("GET", "/v1/imports/missing/preview", nil)
			})

			It("returns 404", func() {
				mockService.EXPECT().
					Preview(gomock.Any(), shareddomain.ID("missing")).
					Return(nil, usecases.ErrSessionNotFound)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Context("commit", func() {
		When("the commit finishes with partial failures", func() {
			BeforeEach(func() {
				request = httptest.NewRequest("POST", "/v1/imports/session-1/commit", nil)
			})

			It("returns the tally with per-row attribution", func() {
				result := domain.CommitResult{
					Total:   4,
					Success: 3,
					Failed:  1,
					Errors:  []domain.RowError{{Row: 3, Message: "create rejected"}},
				}
				mockService.EXPECT().
					Commit(gomock.Any(), shareddomain.ID("session-1")).
					Return(result, nil)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusOK))

				var response internal.CommitResultResponse
				Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
				Expect(response.Total).To(Equal(4))
				Expect(response.Success).To(Equal(3))
				Expect(response.Failed).To(Equal(1))
				Expect(response.Errors[0].Row).To(Equal(3))
			})
		})

		When("the session was never previewed", func() {
			BeforeEach(func() {
				request = httptest.NewRequest("POST", "/v1/imports/session-1/commit", nil)
			})

			It("returns 409", func() {
				mockService.EXPECT().
					Commit(gomock.Any(), shareddomain.ID("session-1")).
					Return(domain.CommitResult{}, domain.ErrInvalidSessionState)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusConflict))
			})
		})
	})

	Context("cancel", func() {
		When("the session can be cancelled", func() {
			BeforeEach(func() {
				request = httptest.NewRequest("POST", "/v1/imports/session-1/cancel", nil)
			})

			It("returns 204", func() {
				mockService.EXPECT().
					Cancel(gomock.Any(), shareddomain.ID("session-1")).
					Return(nil)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusNoContent))
			})
		})

		When("a commit is in flight", func() {
			BeforeEach(func() {
				request = httptest.NewRequest("POST", "/v1/imports/session-1/cancel", nil)
			})

			It("returns 409", func() {
				mockService.EXPECT().
					Cancel(gomock.Any(), shareddomain.ID("session-1")).
					Return(domain.ErrInvalidSessionState)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusConflict))
			})
		})
	})
})
