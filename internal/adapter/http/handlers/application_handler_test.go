package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"zoracom_vms/internal/adapter/http/handlers/mocks"
	"zoracom_vms/internal/adapter/http/middleware"
	"zoracom_vms/internal/domain/entities"
	"zoracom_vms/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func withVendorIdentity(vendorID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("identity", middleware.Identity{UserID: "u-1", VendorID: vendorID, Role: entities.UserRoleVendor})
	}
}

func formBody(t *testing.T, fields map[string]string, withFile bool) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if withFile {
		fw, err := mw.CreateFormFile("uploads", "proposal.pdf")
		if err != nil {
			t.Fatalf("create file: %v", err)
		}
		if _, err := fw.Write([]byte("proposal")); err != nil {
			t.Fatalf("write file: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close form: %v", err)
	}
	return body, mw.FormDataContentType()
}

func TestApplicationHandler_Apply(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("caller without vendor profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApplicationUseCase(ctrl)
		h := NewApplicationHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/listings/:id/applications", withVendorIdentity(""), h.Apply)

		body, contentType := formBody(t, map[string]string{"comment": "We can do this"}, false)
		req := httptest.NewRequest(http.MethodPost, "/v1/listings/l-1/applications", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("unknown listing is the caller's error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApplicationUseCase(ctrl)
		h := NewApplicationHandler(uc, nil)

		uc.EXPECT().Apply(gomock.Any(), "l-missing", "v-1", "We can do this", gomock.Any()).
			Return(entities.Application{}, usecase.ErrListingNotFound)

		r := gin.New()
		r.POST("/v1/listings/:id/applications", withVendorIdentity("v-1"), h.Apply)

		body, contentType := formBody(t, map[string]string{"comment": "We can do this"}, false)
		req := httptest.NewRequest(http.MethodPost, "/v1/listings/l-missing/applications", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte("LISTING_NOT_FOUND")) {
			t.Fatalf("expected LISTING_NOT_FOUND code in body: %s", w.Body.String())
		}
	})

	t.Run("vendor outside the restriction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApplicationUseCase(ctrl)
		h := NewApplicationHandler(uc, nil)

		uc.EXPECT().Apply(gomock.Any(), "l-1", "v-9", "", gomock.Any()).
			Return(entities.Application{}, usecase.ErrVendorNotAllowed)

		r := gin.New()
		r.POST("/v1/listings/:id/applications", withVendorIdentity("v-9"), h.Apply)

		body, contentType := formBody(t, nil, false)
		req := httptest.NewRequest(http.MethodPost, "/v1/listings/l-1/applications", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("bid filed with documents", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApplicationUseCase(ctrl)
		h := NewApplicationHandler(uc, nil)

		uc.EXPECT().Apply(gomock.Any(), "l-1", "v-1", "We can do this", gomock.Len(1)).
			Return(entities.Application{ID: "a-1", ListingID: "l-1", VendorID: "v-1", Status: entities.ApplicationStatusPending}, nil)

		r := gin.New()
		r.POST("/v1/listings/:id/applications", withVendorIdentity("v-1"), h.Apply)

		body, contentType := formBody(t, map[string]string{"comment": "We can do this"}, true)
		req := httptest.NewRequest(http.MethodPost, "/v1/listings/l-1/applications", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestApplicationHandler_Review(t *testing.T) {
	gin.SetMode(gin.TestMode)

	reviewFields := func(status string) map[string]string {
		return map[string]string{
			"application_id": "a-1",
			"vendor_id":      "v-1",
			"listing_id":     "l-1",
			"status":         status,
		}
	}

	t.Run("unrecognized decision", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApplicationUseCase(ctrl)
		h := NewApplicationHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/applications/review", h.Review)

		body, contentType := formBody(t, reviewFields("PENDING"), false)
		req := httptest.NewRequest(http.MethodPost, "/v1/applications/review", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("malformed delivery date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApplicationUseCase(ctrl)
		h := NewApplicationHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/applications/review", h.Review)

		fields := reviewFields("AWARDED")
		fields["delivery_date"] = "next tuesday"
		body, contentType := formBody(t, fields, false)
		req := httptest.NewRequest(http.MethodPost, "/v1/applications/review", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("second award conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApplicationUseCase(ctrl)
		h := NewApplicationHandler(uc, nil)

		uc.EXPECT().Review(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.Application{}, usecase.ErrListingAlreadyAwarded)

		r := gin.New()
		r.POST("/v1/applications/review", h.Review)

		body, contentType := formBody(t, reviewFields("AWARDED"), false)
		req := httptest.NewRequest(http.MethodPost, "/v1/applications/review", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte("LISTING_ALREADY_AWARDED")) {
			t.Fatalf("expected LISTING_ALREADY_AWARDED code in body: %s", w.Body.String())
		}
	})

	t.Run("award with contract documents", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApplicationUseCase(ctrl)
		h := NewApplicationHandler(uc, nil)

		uc.EXPECT().Review(gomock.Any(), gomock.Any(), gomock.Len(1)).DoAndReturn(
			func(_ interface{}, input usecase.ReviewInput, uploads []entities.FileUpload) (entities.Application, error) {
				if input.ApplicationID != "a-1" || input.Decision != entities.ApplicationStatusAwarded {
					t.Fatalf("unexpected input: %+v", input)
				}
				if input.DeliveryDate == nil {
					t.Fatalf("expected delivery date to be parsed")
				}
				return entities.Application{ID: "a-1", Status: entities.ApplicationStatusAwarded}, nil
			})

		r := gin.New()
		r.POST("/v1/applications/review", h.Review)

		fields := reviewFields("awarded")
		fields["delivery_date"] = "2026-10-01T00:00:00Z"
		fields["description"] = "Phase one contract"
		body, contentType := formBody(t, fields, true)
		req := httptest.NewRequest(http.MethodPost, "/v1/applications/review", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestApplicationHandler_Report(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("caller without vendor profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApplicationUseCase(ctrl)
		h := NewApplicationHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/listings/:id/reports", h.Report)

		body, contentType := formBody(t, map[string]string{"application_id": "a-1", "comment": "Phase one done"}, false)
		req := httptest.NewRequest(http.MethodPost, "/v1/listings/l-1/reports", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("only the awarded vendor reports", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApplicationUseCase(ctrl)
		h := NewApplicationHandler(uc, nil)

		uc.EXPECT().Report(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.ListingReport{}, usecase.ErrApplicationNotAwarded)

		r := gin.New()
		r.POST("/v1/listings/:id/reports", withVendorIdentity("v-2"), h.Report)

		body, contentType := formBody(t, map[string]string{"application_id": "a-1", "comment": "Phase one done"}, false)
		req := httptest.NewRequest(http.MethodPost, "/v1/listings/l-1/reports", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("report filed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApplicationUseCase(ctrl)
		h := NewApplicationHandler(uc, nil)

		uc.EXPECT().Report(gomock.Any(), gomock.Any(), gomock.Len(1)).DoAndReturn(
			func(_ interface{}, input usecase.ReportInput, uploads []entities.FileUpload) (entities.ListingReport, error) {
				if input.ListingID != "l-1" || input.VendorID != "v-1" || input.ApplicationID != "a-1" {
					t.Fatalf("unexpected input: %+v", input)
				}
				return entities.ListingReport{ID: "r-1", ListingID: "l-1", VendorID: "v-1"}, nil
			})

		r := gin.New()
		r.POST("/v1/listings/:id/reports", withVendorIdentity("v-1"), h.Report)

		body, contentType := formBody(t, map[string]string{"application_id": "a-1", "comment": "Phase one done"}, true)
		req := httptest.NewRequest(http.MethodPost, "/v1/listings/l-1/reports", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestApplicationHandler_ListApplications(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIApplicationUseCase(ctrl)
	attachments := mocks.NewMockIAttachmentUseCase(ctrl)
	h := NewApplicationHandler(uc, attachments)

	uc.EXPECT().ListByListingID(gomock.Any(), "l-1").Return([]entities.Application{
		{ID: "a-1", ListingID: "l-1", VendorID: "v-1", Status: entities.ApplicationStatusPending},
		{ID: "a-2", ListingID: "l-1", VendorID: "v-2", Status: entities.ApplicationStatusDeclined},
	}, nil)
	attachments.EXPECT().ListByParent(gomock.Any(), entities.ParentRef{Kind: entities.ParentApplication, ID: "a-1"}).
		Return([]entities.Attachment{{ID: "doc-1", Name: "proposal.pdf"}}, nil)
	attachments.EXPECT().ListByParent(gomock.Any(), entities.ParentRef{Kind: entities.ParentApplication, ID: "a-2"}).
		Return(nil, nil)

	r := gin.New()
	r.GET("/v1/listings/:id/applications", h.ListApplications)

	req := httptest.NewRequest(http.MethodGet, "/v1/listings/l-1/applications", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte(`"proposal.pdf"`)) {
		t.Fatalf("expected attachment metadata in body: %s", w.Body.String())
	}
}

func TestApplicationHandler_DeactivateApplication(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("already inactive", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApplicationUseCase(ctrl)
		h := NewApplicationHandler(uc, nil)

		uc.EXPECT().Deactivate(gomock.Any(), "a-1").
			Return(entities.Application{}, usecase.ErrApplicationDeactivated)

		r := gin.New()
		r.PATCH("/v1/applications/:id/deactivate", h.DeactivateApplication)

		req := httptest.NewRequest(http.MethodPatch, "/v1/applications/a-1/deactivate", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("deactivated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApplicationUseCase(ctrl)
		h := NewApplicationHandler(uc, nil)

		uc.EXPECT().Deactivate(gomock.Any(), "a-1").
			Return(entities.Application{ID: "a-1", Status: entities.ApplicationStatusInactive}, nil)

		r := gin.New()
		r.PATCH("/v1/applications/:id/deactivate", h.DeactivateApplication)

		req := httptest.NewRequest(http.MethodPatch, "/v1/applications/a-1/deactivate", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
