package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tourdesk/internal/adapter/http/handlers/mocks"
	"tourdesk/internal/domain/entities"
	"tourdesk/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func TestDepositHandler_CreateDeposit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositPaymentUseCase(ctrl)
		h := NewDepositHandler(uc)

		r := gin.New()
		r.POST("/v1/deposits/:itinerary_id", h.CreateDeposit)

		req := httptest.NewRequest(http.MethodPost, "/v1/deposits/it-1", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("itinerary not priced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositPaymentUseCase(ctrl)
		h := NewDepositHandler(uc)

		r := gin.New()
		r.POST("/v1/deposits/:itinerary_id", h.CreateDeposit)

		uc.EXPECT().CreateForItinerary(gomock.Any(), "it-1", gomock.Any()).Return(entities.DepositPayment{}, usecase.ErrItineraryNotPriced)

		req := httptest.NewRequest(http.MethodPost, "/v1/deposits/it-1", bytes.NewBufferString(`{"payment_method_id":"pix"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositPaymentUseCase(ctrl)
		h := NewDepositHandler(uc)

		r := gin.New()
		r.POST("/v1/deposits/:itinerary_id", h.CreateDeposit)

		uc.EXPECT().CreateForItinerary(gomock.Any(), "it-1", gomock.Any()).Return(entities.DepositPayment{ID: "dep-1", ItineraryID: "it-1", Amount: 320, Date: time.Now().UTC(), Status: entities.DepositStatusApproved}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/deposits/it-1", bytes.NewBufferString(`{"provider_payload":{"payment_method_id":"pix","payer":{"email":"x@test.com"}}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["deposit_id"] != "dep-1" || body["amount"] != 320.0 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestDepositHandler_GetLatestDeposit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositPaymentUseCase(ctrl)
		h := NewDepositHandler(uc)

		r := gin.New()
		r.GET("/v1/deposits/:itinerary_id", h.GetLatestDeposit)

		uc.EXPECT().ListByItineraryID(gomock.Any(), "it-1").Return([]entities.DepositPayment{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/deposits/it-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success returns latest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositPaymentUseCase(ctrl)
		h := NewDepositHandler(uc)

		r := gin.New()
		r.GET("/v1/deposits/:itinerary_id", h.GetLatestDeposit)

		old := entities.DepositPayment{ID: "old", ItineraryID: "it-1", Date: time.Now().Add(-time.Hour), Status: entities.DepositStatusPending}
		latest := entities.DepositPayment{ID: "latest", ItineraryID: "it-1", Date: time.Now(), Status: entities.DepositStatusApproved}
		uc.EXPECT().ListByItineraryID(gomock.Any(), "it-1").Return([]entities.DepositPayment{old, latest}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/deposits/it-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["deposit_id"] != "latest" {
			t.Fatalf("expected latest deposit, got body: %s", w.Body.String())
		}
	})
}

func TestReadProviderPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	makeCtx := func(raw string) *gin.Context {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(raw))
		c.Request.Header.Set("Content-Type", "application/json")
		return c
	}

	ctxReadErr := makeCtx("{}")
	ctxReadErr.Request.Body = failingReadCloser{}
	if _, err := readProviderPayload(ctxReadErr); err == nil {
		t.Fatalf("expected read body error")
	}

	if _, err := readProviderPayload(makeCtx("{invalid")); err == nil {
		t.Fatalf("expected invalid json error")
	}

	payload, err := readProviderPayload(makeCtx("   "))
	if err != nil || string(payload) != "{}" {
		t.Fatalf("expected {}, got payload=%s err=%v", string(payload), err)
	}

	if _, err := readProviderPayload(makeCtx(`{"provider_payload":null}`)); err == nil {
		t.Fatalf("expected provider_payload empty error")
	}

	payload, err = readProviderPayload(makeCtx(`{"provider_payload":{"a":1}}`))
	if err != nil || string(payload) != `{"a":1}` {
		t.Fatalf("expected wrapped payload, got %s err=%v", payload, err)
	}

	payload, err = readProviderPayload(makeCtx(`{"payment_method_id":"pix"}`))
	if err != nil || string(payload) != `{"payment_method_id":"pix"}` {
		t.Fatalf("expected raw body payload, got %s err=%v", payload, err)
	}
}

func TestMapDepositError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidDepositItineraryID, http.StatusBadRequest},
		{usecase.ErrInvalidProviderPayload, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayBadRequest, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayUnauthorized, http.StatusUnauthorized},
		{usecase.ErrItineraryNotPriced, http.StatusConflict},
		{usecase.ErrDepositNotFound, http.StatusNotFound},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapDepositError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
