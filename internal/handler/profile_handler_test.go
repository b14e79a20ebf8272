package handler

import (
	"context"
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
	"github.com/gin-gonic/gin"
)

func setupProfileRouter(userID string) (*gin.Engine, *repository.MockEventRepository, *repository.MockOrderRepository) {
	gin.SetMode(gin.TestMode)

	eventRepo := repository.NewMockEventRepository()
	userRepo := repository.NewMockUserRepository()
	userRepo.Add(&domain.User{ID: "user-1"})
	orderRepo := repository.NewMockOrderRepository()

	events := service.NewEventService(eventRepo, userRepo, cache.NewMockRevalidator())
	orders := service.NewOrderService(orderRepo, payment.NewMockGateway(), service.OrderServiceConfig{})
	h := NewProfileHandler(events, orders)

	router := gin.New()
	router.Use(asUser(userID))
	router.GET("/profile", h.Get)
	return router, eventRepo, orderRepo
}

func TestProfileHandlerGet(t *testing.T) {
	router, eventRepo, orderRepo := setupProfileRouter("user-1")
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		eventRepo.Create(ctx, &domain.Event{
			ID:          fmt.Sprintf("event-%d", i),
			Title:       fmt.Sprintf("Event %d", i),
			OrganizerID: "user-1",
		})
	}
	for i := 0; i < 4; i++ {
		orderRepo.Add(&domain.Order{
			ID:        fmt.Sprintf("order-%d", i),
			EventID:   "event-0",
			BuyerID:   "user-1",
			CreatedAt: time.Now(),
		})
	}

	t.Run("defaults both collections to page one", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/profile", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		resp := decodeResponse(t, w)
		data, _ := resp.Data.(map[string]interface{})

		organized, _ := data["organized"].(map[string]interface{})
		if items, _ := organized["items"].([]interface{}); len(items) != 3 {
			t.Errorf("expected 3 organized events on page 1, got %d", len(items))
		}
		if pages, _ := organized["total_pages"].(float64); pages != 3 {
			t.Errorf("expected 3 event pages, got %v", organized["total_pages"])
		}

		tickets, _ := data["tickets"].(map[string]interface{})
		if items, _ := tickets["items"].([]interface{}); len(items) != 3 {
			t.Errorf("expected 3 tickets on page 1, got %d", len(items))
		}
		if pages, _ := tickets["total_pages"].(float64); pages != 2 {
			t.Errorf("expected 2 ticket pages, got %v", tickets["total_pages"])
		}
	})

	t.Run("pages the two collections independently", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/profile?eventsPage=3&ordersPage=2", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		resp := decodeResponse(t, w)
		data, _ := resp.Data.(map[string]interface{})

		organized, _ := data["organized"].(map[string]interface{})
		if items, _ := organized["items"].([]interface{}); len(items) != 1 {
			t.Errorf("expected 1 organized event on page 3, got %d", len(items))
		}
		tickets, _ := data["tickets"].(map[string]interface{})
		if items, _ := tickets["items"].([]interface{}); len(items) != 1 {
			t.Errorf("expected 1 ticket on page 2, got %d", len(items))
		}
	})

	t.Run("garbage page falls back to one", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/profile?eventsPage=banana", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		resp := decodeResponse(t, w)
		data, _ := resp.Data.(map[string]interface{})
		organized, _ := data["organized"].(map[string]interface{})
		if page, _ := organized["page"].(float64); page != 1 {
			t.Errorf("expected page 1, got %v", organized["page"])
		}
	})

	t.Run("unauthenticated", func(t *testing.T) {
		router, _, _ := setupProfileRouter("")
		req := httptest.NewRequest(http.MethodGet, "/profile", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})
}
