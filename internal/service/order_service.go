package service

import (
	"context"

	"github.com/BangKartavya/evently/internal/domain"
	"github.com/BangKartavya/evently/internal/payment"
	"github.com/BangKartavya/evently/internal/repository"
	"github.com/BangKartavya/evently/pkg/response"
)

// OrderServiceConfig carries the checkout landing URLs
type OrderServiceConfig struct {
	SuccessURL string
	CancelURL  string
}

// orderService implements the OrderService interface
type orderService struct {
	orderRepo repository.OrderRepository
	gateway   payment.Gateway
	cfg       OrderServiceConfig
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo repository.OrderRepository, gateway payment.Gateway, cfg OrderServiceConfig) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		gateway:   gateway,
		cfg:       cfg,
	}
}

// CheckoutOrder builds a checkout session and returns the redirect target
func (s *orderService) CheckoutOrder(ctx context.Context, req *domain.CheckoutRequest) (string, error) {
	sess, err := s.gateway.CreateCheckoutSession(ctx, &payment.CheckoutSessionRequest{
		EventID:    req.EventID,
		EventTitle: req.EventTitle,
		Price:      req.Price,
		IsFree:     req.IsFree,
		BuyerID:    req.BuyerID,
		SuccessURL: s.cfg.SuccessURL,
		CancelURL:  s.cfg.CancelURL,
	})
	if err != nil {
		return "", normalize(ctx, "checkoutOrder", err)
	}
	return sess.RedirectURL, nil
}

// GetOrdersByUser lists orders where the user is the buyer
func (s *orderService) GetOrdersByUser(ctx context.Context, userID string, page int) ([]*domain.Order, int, error) {
	if page <= 0 {
		page = 1
	}

	orders, total, err := s.orderRepo.GetByBuyer(ctx, userID, PageSize, (page-1)*PageSize)
	if err != nil {
		return nil, 0, normalize(ctx, "getOrdersByUser", err)
	}
	return orders, response.TotalPages(int64(total), PageSize), nil
}
