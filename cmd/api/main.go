package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/Kevin6098/roomi-sub001/internal/api/http"
	"github.com/Kevin6098/roomi-sub001/internal/api/http/handlers"
	"github.com/Kevin6098/roomi-sub001/internal/api/validate"
	"github.com/Kevin6098/roomi-sub001/internal/auth"
	"github.com/Kevin6098/roomi-sub001/internal/config"
	"github.com/Kevin6098/roomi-sub001/internal/events"
	"github.com/Kevin6098/roomi-sub001/internal/observability"
	"github.com/Kevin6098/roomi-sub001/internal/persistence"
	"github.com/Kevin6098/roomi-sub001/internal/repository"
	"github.com/Kevin6098/roomi-sub001/internal/service"
	"github.com/Kevin6098/roomi-sub001/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	if cfg.Auth.UsingDevSecret {
		logger.Warn("AUTH_JWT_SECRET not set, using development secret")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	rd := persistence.NewRedis(cfg.Redis, logger)
	defer rd.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	categoryRepo := repository.NewCategoryRepository(pool)
	itemRepo := repository.NewItemRepository(pool)
	customerRepo := repository.NewCustomerRepository(pool)
	rentalRepo := repository.NewRentalRepository(pool)
	saleRepo := repository.NewSaleRepository(pool)
	listingRepo := repository.NewListingRepository(pool)
	contactRepo := repository.NewContactRepository(pool)
	dashboardRepo := repository.NewDashboardRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(cfg.Auth, userRepo)
	userService := service.NewUserService(cfg.Auth, userRepo)
	inventoryService := service.NewInventoryService(categoryRepo, itemRepo, dispatcher)
	customerService := service.NewCustomerService(customerRepo)
	rentalService := service.NewRentalService(rentalRepo, itemRepo, customerRepo, dispatcher)
	saleService := service.NewSaleService(saleRepo, itemRepo, customerRepo, dispatcher)
	listingService := service.NewListingService(listingRepo, itemRepo)
	contactService := service.NewContactService(contactRepo, dispatcher)
	dashboardService := service.NewDashboardService(dashboardRepo, rd.Client, logger)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)

	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewMiddleware(authService)
	metrics := observability.NewMetrics()
	validator := validate.NewValidator()

	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		DisableStartupMessage: true,
	})
	timeout := time.Duration(cfg.App.RequestTimeoutSeconds) * time.Second
	httptransport.RegisterMiddlewares(app, logger, metrics, timeout)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, rd),
		Auth:           handlers.NewAuthHandler(authService),
		Users:          handlers.NewUsersHandler(userService),
		Categories:     handlers.NewCategoriesHandler(inventoryService),
		Items:          handlers.NewItemsHandler(inventoryService, dashboardService),
		Customers:      handlers.NewCustomersHandler(customerService),
		Rentals:        handlers.NewRentalsHandler(rentalService, dashboardService),
		Sales:          handlers.NewSalesHandler(saleService, dashboardService),
		Listings:       handlers.NewListingsHandler(listingService),
		Contacts:       handlers.NewContactsHandler(contactService),
		Dashboard:      handlers.NewDashboardHandler(dashboardService, metrics),
		AuthMiddleware: authMiddleware,
		Validator:      validator,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()
	logger.Info("listening", zap.String("addr", cfg.App.Addr()), zap.String("env", cfg.App.Env))

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
