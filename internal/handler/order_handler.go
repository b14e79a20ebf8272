package handler

import (
	"net/http"

	"github.com/BangKartavya/evently/internal/domain"
	"github.com/BangKartavya/evently/internal/dto"
	"github.com/BangKartavya/evently/internal/service"
	"github.com/BangKartavya/evently/pkg/middleware"
	"github.com/BangKartavya/evently/pkg/response"
	"github.com/gin-gonic/gin"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService service.OrderService
	eventService service.EventService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService service.OrderService, eventService service.EventService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		eventService: eventService,
	}
}

// Checkout handles POST /orders/checkout - builds a checkout session and
// sends the buyer to the processor-hosted page
func (h *OrderHandler) Checkout(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok || userID == "" {
		c.JSON(http.StatusUnauthorized, response.Unauthorized("User ID not found in token"))
		return
	}

	var req dto.CheckoutOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}

	event, err := h.eventService.GetEventByID(c.Request.Context(), req.EventID)
	if err != nil {
		respondError(c, err)
		return
	}

	redirect, err := h.orderService.CheckoutOrder(c.Request.Context(), &domain.CheckoutRequest{
		EventID:    event.ID,
		EventTitle: event.Title,
		Price:      event.Price,
		IsFree:     event.IsFree,
		BuyerID:    userID,
	})
	if err != nil {
		c.JSON(response.GetHTTPStatus(response.ErrCodeCheckoutFailed),
			response.Error(response.ErrCodeCheckoutFailed, "Could not start checkout"))
		return
	}

	c.Header("Location", redirect)
	c.JSON(http.StatusSeeOther, response.Success(&dto.CheckoutOrderResponse{RedirectURL: redirect}))
}

// ListMine handles GET /orders - the caller's purchases, paginated
func (h *OrderHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok || userID == "" {
		c.JSON(http.StatusUnauthorized, response.Unauthorized("User ID not found in token"))
		return
	}

	page := pageParam(c, "page")
	orders, totalPages, err := h.orderService.GetOrdersByUser(c.Request.Context(), userID, page)
	if err != nil {
		respondError(c, err)
		return
	}

	orderResponses := make([]*dto.OrderResponse, len(orders))
	for i, order := range orders {
		orderResponses[i] = dto.ToOrderResponse(order)
	}
	c.JSON(http.StatusOK, response.PaginatedPages(orderResponses, page, service.PageSize, totalPages))
}
