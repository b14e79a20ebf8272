package handler

import (
	"net/http"

	"github.com/BangKartavya/evently/internal/dto"
	"github.com/BangKartavya/evently/internal/service"
	"github.com/BangKartavya/evently/pkg/middleware"
	"github.com/BangKartavya/evently/pkg/response"
	"github.com/gin-gonic/gin"
)

// ProfileHandler serves the profile page view model: the caller's tickets
// and the events they organize, each independently paginated.
type ProfileHandler struct {
	eventService service.EventService
	orderService service.OrderService
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(eventService service.EventService, orderService service.OrderService) *ProfileHandler {
	return &ProfileHandler{
		eventService: eventService,
		orderService: orderService,
	}
}

// profileCollection is one paginated block of the profile view model
type profileCollection struct {
	Items      interface{} `json:"items"`
	Page       int         `json:"page"`
	TotalPages int         `json:"total_pages"`
}

// Get handles GET /profile
func (h *ProfileHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok || userID == "" {
		c.JSON(http.StatusUnauthorized, response.Unauthorized("User ID not found in token"))
		return
	}

	ordersPage := pageParam(c, "ordersPage")
	eventsPage := pageParam(c, "eventsPage")
	ctx := c.Request.Context()

	orders, orderPages, err := h.orderService.GetOrdersByUser(ctx, userID, ordersPage)
	if err != nil {
		respondError(c, err)
		return
	}
	events, eventPages, err := h.eventService.GetEventsByUser(ctx, userID, eventsPage)
	if err != nil {
		respondError(c, err)
		return
	}

	orderResponses := make([]*dto.OrderResponse, len(orders))
	for i, order := range orders {
		orderResponses[i] = dto.ToOrderResponse(order)
	}
	eventResponses := make([]*dto.EventResponse, len(events))
	for i, event := range events {
		eventResponses[i] = dto.ToEventResponse(event)
	}

	c.JSON(http.StatusOK, response.Success(gin.H{
		"tickets": profileCollection{
			Items:      orderResponses,
			Page:       ordersPage,
			TotalPages: orderPages,
		},
		"organized": profileCollection{
			Items:      eventResponses,
			Page:       eventsPage,
			TotalPages: eventPages,
		},
	}))
}
