// Package di wires the application's dependencies together.
package di

import (
	"context"

	"github.com/BangKartavya/evently/internal/cache"
	"github.com/BangKartavya/evently/internal/filter"
	"github.com/BangKartavya/evently/internal/form"
	"github.com/BangKartavya/evently/internal/handler"
	"github.com/BangKartavya/evently/internal/payment"
	"github.com/BangKartavya/evently/internal/repository"
	"github.com/BangKartavya/evently/internal/service"
	"github.com/BangKartavya/evently/internal/upload"
	"github.com/BangKartavya/evently/pkg/config"
	"github.com/BangKartavya/evently/pkg/database"
	"github.com/redis/go-redis/v9"
)

// Container holds all application dependencies
type Container struct {
	// Infrastructure
	DB    *database.PostgresDB
	Redis *redis.Client

	// Collaborators
	Gateway     payment.Gateway
	Uploader    upload.Client
	Revalidator cache.Revalidator

	// Repositories
	EventRepo    repository.EventRepository
	CategoryRepo repository.CategoryRepository
	OrderRepo    repository.OrderRepository
	UserRepo     repository.UserRepository

	// Services
	EventService    service.EventService
	OrderService    service.OrderService
	CategoryService service.CategoryService

	// Form pipeline and filter
	FormPipeline   *form.Pipeline
	CategoryFilter *filter.CategoryFilter

	// Handlers
	HealthHandler   *handler.HealthHandler
	EventHandler    *handler.EventHandler
	OrderHandler    *handler.OrderHandler
	CategoryHandler *handler.CategoryHandler
	ProfileHandler  *handler.ProfileHandler
}

// ContainerConfig contains the externally built infrastructure
type ContainerConfig struct {
	Config *config.Config
	DB     *database.PostgresDB
	Redis  *redis.Client
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *ContainerConfig) *Container {
	c := &Container{
		DB:    cfg.DB,
		Redis: cfg.Redis,
	}

	// Collaborators
	c.Gateway = payment.NewStripeGateway(payment.StripeConfig{
		SecretKey: cfg.Config.Stripe.SecretKey,
		Currency:  cfg.Config.Stripe.Currency,
	})
	c.Uploader = upload.NewHTTPClient(
		cfg.Config.Upload.BaseURL,
		cfg.Config.Upload.Profile,
		cfg.Config.Upload.Timeout,
	)
	c.Revalidator = cache.NewRedisRevalidator(cfg.Redis)

	// Repositories
	c.EventRepo = repository.NewPostgresEventRepository(c.DB.Pool())
	c.CategoryRepo = repository.NewPostgresCategoryRepository(c.DB.Pool())
	c.OrderRepo = repository.NewPostgresOrderRepository(c.DB.Pool())
	c.UserRepo = repository.NewPostgresUserRepository(c.DB.Pool())

	// Services
	c.EventService = service.NewEventService(c.EventRepo, c.UserRepo, c.Revalidator)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.Gateway, service.OrderServiceConfig{
		SuccessURL: cfg.Config.Stripe.SuccessURL,
		CancelURL:  cfg.Config.Stripe.CancelURL,
	})
	c.CategoryService = service.NewCategoryService(c.CategoryRepo)

	// Form pipeline and filter
	c.FormPipeline = form.NewPipeline(c.EventService, c.Uploader)
	c.CategoryFilter = filter.NewCategoryFilter(c.CategoryService)
	c.CategoryFilter.Load(context.Background())

	// Handlers
	c.HealthHandler = handler.NewHealthHandler(c.DB)
	c.EventHandler = handler.NewEventHandler(c.EventService, c.FormPipeline)
	c.OrderHandler = handler.NewOrderHandler(c.OrderService, c.EventService)
	c.CategoryHandler = handler.NewCategoryHandler(c.CategoryService, c.CategoryFilter)
	c.ProfileHandler = handler.NewProfileHandler(c.EventService, c.OrderService)

	return c
}
