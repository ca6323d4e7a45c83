package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"travelops/internal/adapter/http/handlers/mocks"
	"travelops/internal/domain/entities"
	"travelops/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCancellationHandler_CreateCancellation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICancellationUseCase(ctrl)
		h := NewCancellationHandler(uc)

		r := gin.New()
		r.POST("/v1/cancellations", h.CreateCancellation)

		req := httptest.NewRequest(http.MethodPost, "/v1/cancellations", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICancellationUseCase(ctrl)
		h := NewCancellationHandler(uc)

		r := gin.New()
		r.POST("/v1/cancellations", h.CreateCancellation)

		uc.EXPECT().Create(gomock.Any(), "b-1", "u-1", "change of plans", false).Return(entities.CancellationRequest{
			ID:               "cx-1",
			BookingID:        "b-1",
			UserID:           "u-1",
			Reason:           "change of plans",
			OriginalAmount:   1000,
			DaysBeforeTravel: 20,
			Status:           entities.CancellationStatusPending,
			RefundStatus:     entities.RefundStatusNotProcessed,
		}, nil)

		body := `{"booking_id":"b-1","user_id":"u-1","reason":"change of plans"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/cancellations", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var res map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if res["id"] != "cx-1" || res["status"] != "pending" || res["refund_status"] != "not_processed" {
			t.Fatalf("unexpected body: %v", res)
		}
	})

	t.Run("already canceled booking returns 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICancellationUseCase(ctrl)
		h := NewCancellationHandler(uc)

		r := gin.New()
		r.POST("/v1/cancellations", h.CreateCancellation)

		uc.EXPECT().Create(gomock.Any(), "b-1", "u-1", "again", false).Return(entities.CancellationRequest{}, usecase.ErrBookingAlreadyCanceled)

		body := `{"booking_id":"b-1","user_id":"u-1","reason":"again"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/cancellations", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestCancellationHandler_Review(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("approve computes fee", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICancellationUseCase(ctrl)
		h := NewCancellationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/cancellations/:id/approve", h.ApproveCancellation)

		uc.EXPECT().Approve(gomock.Any(), "cx-1", "admin-1").Return(entities.CancellationRequest{
			ID:              "cx-1",
			OriginalAmount:  1000,
			FeePercent:      0.15,
			CancellationFee: 150,
			RefundAmount:    850,
			Status:          entities.CancellationStatusApproved,
			ReviewedBy:      "admin-1",
		}, nil)

		body := `{"reviewed_by":"admin-1"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/cancellations/cx-1/approve", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var res map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if res["cancellation_fee"].(float64) != 150 || res["refund_amount"].(float64) != 850 {
			t.Fatalf("unexpected body: %v", res)
		}
	})

	t.Run("reject missing reviewer returns 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICancellationUseCase(ctrl)
		h := NewCancellationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/cancellations/:id/reject", h.RejectCancellation)

		req := httptest.NewRequest(http.MethodPatch, "/v1/cancellations/cx-1/reject", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("approve already reviewed returns 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICancellationUseCase(ctrl)
		h := NewCancellationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/cancellations/:id/approve", h.ApproveCancellation)

		uc.EXPECT().Approve(gomock.Any(), "cx-1", "admin-1").Return(entities.CancellationRequest{}, usecase.ErrRequestNotPending)

		body := `{"reviewed_by":"admin-1"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/cancellations/cx-1/approve", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestCancellationHandler_RefundFlow(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("process refund success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICancellationUseCase(ctrl)
		h := NewCancellationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/cancellations/:id/refund/process", h.ProcessRefund)

		uc.EXPECT().ProcessRefund(gomock.Any(), "cx-1").Return(entities.CancellationRequest{
			ID:           "cx-1",
			Status:       entities.CancellationStatusApproved,
			RefundStatus: entities.RefundStatusProcessing,
			RefundMethod: entities.RefundMethodOriginalPayment,
		}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/cancellations/cx-1/refund/process", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var res map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if res["refund_status"] != "processing" || res["refund_method"] != "original_payment_method" {
			t.Fatalf("unexpected body: %v", res)
		}
	})

	t.Run("process before approval returns 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICancellationUseCase(ctrl)
		h := NewCancellationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/cancellations/:id/refund/process", h.ProcessRefund)

		uc.EXPECT().ProcessRefund(gomock.Any(), "cx-1").Return(entities.CancellationRequest{}, usecase.ErrRequestNotApproved)

		req := httptest.NewRequest(http.MethodPatch, "/v1/cancellations/cx-1/refund/process", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("complete unknown request returns 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICancellationUseCase(ctrl)
		h := NewCancellationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/cancellations/:id/refund/complete", h.CompleteRefund)

		uc.EXPECT().CompleteRefund(gomock.Any(), "missing").Return(entities.CancellationRequest{}, usecase.ErrCancellationNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/cancellations/missing/refund/complete", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
