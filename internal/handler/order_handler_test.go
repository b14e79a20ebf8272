package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/BangKartavya/evently/internal/cache"
	"github.com/BangKartavya/evently/internal/domain"
	"github.com/BangKartavya/evently/internal/payment"
	"github.com/BangKartavya/evently/internal/repository"
	"github.com/BangKartavya/evently/internal/service"
	"github.com/BangKartavya/evently/pkg/response"
	"github.com/gin-gonic/gin"
)

type orderFixture struct {
	router    *gin.Engine
	eventRepo *repository.MockEventRepository
	orderRepo *repository.MockOrderRepository
	gateway   *payment.MockGateway
}

func setupOrderRouter(userID string) *orderFixture {
	gin.SetMode(gin.TestMode)

	eventRepo := repository.NewMockEventRepository()
	userRepo := repository.NewMockUserRepository()
	userRepo.Add(&domain.User{ID: "user-1"})
	orderRepo := repository.NewMockOrderRepository()
	gateway := payment.NewMockGateway()

	events := service.NewEventService(eventRepo, userRepo, cache.NewMockRevalidator())
	orders := service.NewOrderService(orderRepo, gateway, service.OrderServiceConfig{
		SuccessURL: "http://localhost:3000/profile",
		CancelURL:  "http://localhost:3000/",
	})
	h := NewOrderHandler(orders, events)

	router := gin.New()
	router.Use(asUser(userID))
	router.POST("/orders/checkout", h.Checkout)
	router.GET("/orders", h.ListMine)

	return &orderFixture{
		router:    router,
		eventRepo: eventRepo,
		orderRepo: orderRepo,
		gateway:   gateway,
	}
}

func checkoutBody(t *testing.T, eventID string) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(map[string]string{"event_id": eventID})
	if err != nil {
		t.Fatalf("marshal checkout body: %v", err)
	}
	return bytes.NewBuffer(b)
}

func TestOrderHandlerCheckout(t *testing.T) {
	seedEvent := func(f *orderFixture, id, price string, free bool) {
		f.eventRepo.Create(context.Background(), &domain.Event{
			ID:          id,
			Title:       "Jazz Night",
			Price:       price,
			IsFree:      free,
			OrganizerID: "user-1",
		})
	}

	t.Run("redirects to the processor-hosted page", func(t *testing.T) {
		f := setupOrderRouter("user-1")
		seedEvent(f, "event-1", "40.00", false)

		req := httptest.NewRequest(http.MethodPost, "/orders/checkout", checkoutBody(t, "event-1"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)

		if w.Code != http.StatusSeeOther {
			t.Fatalf("expected 303, got %d: %s", w.Code, w.Body.String())
		}
		if loc := w.Header().Get("Location"); loc != f.gateway.Redirect {
			t.Errorf("expected processor redirect, got %q", loc)
		}

		if len(f.gateway.Requests) != 1 {
			t.Fatalf("expected one session request, got %d", len(f.gateway.Requests))
		}
		sess := f.gateway.Requests[0]
		if sess.EventID != "event-1" || sess.BuyerID != "user-1" {
			t.Errorf("expected metadata forwarded, got event=%s buyer=%s", sess.EventID, sess.BuyerID)
		}
		if sess.EventTitle != "Jazz Night" || sess.Price != "40.00" {
			t.Errorf("expected event data from the store, got %+v", sess)
		}
	})

	t.Run("unknown event is 404", func(t *testing.T) {
		f := setupOrderRouter("user-1")

		req := httptest.NewRequest(http.MethodPost, "/orders/checkout", checkoutBody(t, "nope"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})

	t.Run("gateway failure yields checkout error", func(t *testing.T) {
		f := setupOrderRouter("user-1")
		seedEvent(f, "event-1", "40.00", false)
		f.gateway.ShouldFail = true

		req := httptest.NewRequest(http.MethodPost, "/orders/checkout", checkoutBody(t, "event-1"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)

		if w.Code != http.StatusPaymentRequired {
			t.Fatalf("expected 402, got %d", w.Code)
		}
		resp := decodeResponse(t, w)
		if resp.Error == nil || resp.Error.Code != response.ErrCodeCheckoutFailed {
			t.Errorf("expected checkout-failed envelope, got %+v", resp.Error)
		}
	})

	t.Run("missing event id is rejected", func(t *testing.T) {
		f := setupOrderRouter("user-1")

		req := httptest.NewRequest(http.MethodPost, "/orders/checkout", bytes.NewBufferString("{}"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unauthenticated", func(t *testing.T) {
		f := setupOrderRouter("")

		req := httptest.NewRequest(http.MethodPost, "/orders/checkout", checkoutBody(t, "event-1"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})
}

func TestOrderHandlerListMine(t *testing.T) {
	f := setupOrderRouter("user-1")
	for i := 0; i < 4; i++ {
		f.orderRepo.Add(&domain.Order{
			ID:          fmt.Sprintf("order-%d", i),
			EventID:     "event-1",
			BuyerID:     "user-1",
			TotalAmount: "40.00",
			CreatedAt:   time.Now(),
		})
	}

	req := httptest.NewRequest(http.MethodGet, "/orders?page=2", nil)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	resp := decodeResponse(t, w)
	items, _ := resp.Data.([]interface{})
	if len(items) != 1 {
		t.Errorf("expected 1 order on page 2, got %d", len(items))
	}
	if resp.Meta == nil || resp.Meta.TotalPages != 2 {
		t.Errorf("expected 2 total pages, got %+v", resp.Meta)
	}
}
