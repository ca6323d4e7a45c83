package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"travelops/internal/adapter/http/handlers/mocks"
	"travelops/internal/domain/entities"
	"travelops/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestBookingHandler_CreateBooking(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.POST("/v1/bookings", h.CreateBooking)

		req := httptest.NewRequest(http.MethodPost, "/v1/bookings", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("malformed travel date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.POST("/v1/bookings", h.CreateBooking)

		body := `{"package_id":"p-1","user_id":"u-1","travel_date":"05/10/2026","number_of_people":2}`
		req := httptest.NewRequest(http.MethodPost, "/v1/bookings", bytes.NewBufferString(body))
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
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.POST("/v1/bookings", h.CreateBooking)

		travelDate := time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC)
		uc.EXPECT().Create(gomock.Any(), usecase.CreateBookingCommand{
			PackageID:      "p-1",
			UserID:         "u-1",
			TravelDate:     travelDate,
			NumberOfPeople: 2,
		}).Return(entities.Booking{
			ID:             "b-1",
			PackageID:      "p-1",
			UserID:         "u-1",
			TravelDate:     travelDate,
			NumberOfPeople: 2,
			TotalAmount:    400,
			Status:         entities.BookingStatusPending,
		}, nil)

		body := `{"package_id":"p-1","user_id":"u-1","travel_date":"2026-10-05","number_of_people":2}`
		req := httptest.NewRequest(http.MethodPost, "/v1/bookings", bytes.NewBufferString(body))
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
		if res["id"] != "b-1" || res["status"] != "pending" {
			t.Fatalf("unexpected body: %v", res)
		}
		if res["travel_date"] != "2026-10-05" {
			t.Fatalf("unexpected travel date: %v", res["travel_date"])
		}
	})

	t.Run("package full returns 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.POST("/v1/bookings", h.CreateBooking)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Booking{}, usecase.ErrPackageUnavailable)

		body := `{"package_id":"p-1","user_id":"u-1","travel_date":"2026-10-05","number_of_people":2}`
		req := httptest.NewRequest(http.MethodPost, "/v1/bookings", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestBookingHandler_Transitions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("confirm success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.PATCH("/v1/bookings/:id/confirm", h.ConfirmBooking)

		uc.EXPECT().Confirm(gomock.Any(), "b-1").Return(entities.Booking{
			ID:     "b-1",
			Paid:   true,
			Status: entities.BookingStatusConfirmed,
		}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/bookings/b-1/confirm", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var res map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if res["status"] != "confirmed" || res["paid"] != true {
			t.Fatalf("unexpected body: %v", res)
		}
	})

	t.Run("cancel on terminal booking returns 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.PATCH("/v1/bookings/:id/cancel", h.CancelBooking)

		uc.EXPECT().Cancel(gomock.Any(), "b-1").Return(entities.Booking{}, usecase.ErrInvalidTransition)

		req := httptest.NewRequest(http.MethodPatch, "/v1/bookings/b-1/cancel", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("complete unknown booking returns 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.PATCH("/v1/bookings/:id/complete", h.CompleteBooking)

		uc.EXPECT().Complete(gomock.Any(), "missing").Return(entities.Booking{}, usecase.ErrBookingNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/bookings/missing/complete", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestBookingHandler_Lists(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list by package", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.GET("/v1/packages/:id/bookings", h.ListBookingsByPackage)

		uc.EXPECT().ListByPackage(gomock.Any(), "p-1").Return([]entities.Booking{
			{ID: "b-1", PackageID: "p-1", Status: entities.BookingStatusPending},
			{ID: "b-2", PackageID: "p-1", Status: entities.BookingStatusConfirmed},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/packages/p-1/bookings", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var res []map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(res) != 2 || res[0]["id"] != "b-1" || res[1]["status"] != "confirmed" {
			t.Fatalf("unexpected body: %v", res)
		}
	})

	t.Run("list by user empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.GET("/v1/users/:id/bookings", h.ListBookingsByUser)

		uc.EXPECT().ListByUser(gomock.Any(), "u-9").Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/users/u-9/bookings", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := w.Body.String(); body != "[]" {
			t.Fatalf("expected empty array, got %s", body)
		}
	})
}
