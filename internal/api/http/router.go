package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Kevin6098/roomi-sub001/internal/api/dto"
	"github.com/Kevin6098/roomi-sub001/internal/api/http/handlers"
	"github.com/Kevin6098/roomi-sub001/internal/api/validate"
	"github.com/Kevin6098/roomi-sub001/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Users          *handlers.UsersHandler
	Categories     *handlers.CategoriesHandler
	Items          *handlers.ItemsHandler
	Customers      *handlers.CustomersHandler
	Rentals        *handlers.RentalsHandler
	Sales          *handlers.SalesHandler
	Listings       *handlers.ListingsHandler
	Contacts       *handlers.ContactsHandler
	Dashboard      *handlers.DashboardHandler
	AuthMiddleware *auth.Middleware
	Validator      *validator.Validate
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	v := cfg.Validator

	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	// Public surface: login and the contact form.
	api.Post("/auth/login", validate.Body(validate.Struct[dto.LoginRequest](v)), cfg.Auth.Login)
	api.Post("/contacts", validate.Body(validate.Struct[dto.CreateContactRequest](v)), cfg.Contacts.Create)

	// Everything below requires a verified identity.
	protected := api.Group("", cfg.AuthMiddleware.Handle)
	ownerOnly := auth.RequireOwner()

	protected.Get("/auth/me", cfg.Auth.Me)

	users := protected.Group("/users", ownerOnly)
	users.Get("/", cfg.Users.List)
	users.Get("/:id", cfg.Users.Get)
	users.Post("/", validate.Body(validate.Struct[dto.CreateUserRequest](v)), cfg.Users.Create)
	users.Put("/:id", validate.Body(validate.Struct[dto.UpdateUserRequest](v)), cfg.Users.Update)
	users.Delete("/:id", cfg.Users.Delete)

	categories := protected.Group("/categories")
	categories.Get("/", cfg.Categories.List)
	categories.Get("/:id", cfg.Categories.Get)
	categories.Post("/", validate.Body(validate.Struct[dto.CategoryRequest](v)), cfg.Categories.Create)
	categories.Put("/:id", validate.Body(validate.Struct[dto.CategoryRequest](v)), cfg.Categories.Update)
	categories.Delete("/:id", ownerOnly, cfg.Categories.Delete)

	items := protected.Group("/items")
	items.Get("/", validate.Query(validate.Struct[dto.ItemListQuery](v)), cfg.Items.List)
	items.Get("/:id", cfg.Items.Get)
	items.Post("/", validate.Body(validate.Struct[dto.ItemRequest](v)), cfg.Items.Create)
	items.Put("/:id", validate.Body(validate.Struct[dto.ItemRequest](v)), cfg.Items.Update)
	items.Delete("/:id", ownerOnly, cfg.Items.Delete)

	customers := protected.Group("/customers")
	customers.Get("/", validate.Query(validate.Struct[dto.CustomerListQuery](v)), cfg.Customers.List)
	customers.Get("/:id", cfg.Customers.Get)
	customers.Post("/", validate.Body(validate.Struct[dto.CustomerRequest](v)), cfg.Customers.Create)
	customers.Put("/:id", validate.Body(validate.Struct[dto.CustomerRequest](v)), cfg.Customers.Update)
	customers.Delete("/:id", ownerOnly, cfg.Customers.Delete)

	rentals := protected.Group("/rentals")
	rentals.Get("/", validate.Query(validate.Struct[dto.RentalListQuery](v)), cfg.Rentals.List)
	rentals.Get("/:id", cfg.Rentals.Get)
	rentals.Post("/", validate.Body(validate.Struct[dto.CreateRentalRequest](v)), cfg.Rentals.Create)
	rentals.Post("/:id/return", cfg.Rentals.Return)

	sales := protected.Group("/sales")
	sales.Get("/", validate.Query(validate.Struct[dto.SaleListQuery](v)), cfg.Sales.List)
	sales.Get("/:id", cfg.Sales.Get)
	sales.Post("/", validate.Body(validate.Struct[dto.CreateSaleRequest](v)), cfg.Sales.Create)

	listings := protected.Group("/listings")
	listings.Get("/", validate.Query(validate.Struct[dto.ListingListQuery](v)), cfg.Listings.List)
	listings.Get("/:id", cfg.Listings.Get)
	listings.Post("/", validate.Body(validate.Struct[dto.ListingRequest](v)), cfg.Listings.Create)
	listings.Put("/:id", validate.Body(validate.Struct[dto.ListingRequest](v)), cfg.Listings.Update)
	listings.Delete("/:id", ownerOnly, cfg.Listings.Delete)

	contacts := protected.Group("/contacts")
	contacts.Get("/", validate.Query(validate.Struct[dto.ContactListQuery](v)), cfg.Contacts.List)
	contacts.Get("/:id", cfg.Contacts.Get)
	contacts.Post("/:id/handle", cfg.Contacts.MarkHandled)
	contacts.Delete("/:id", ownerOnly, cfg.Contacts.Delete)

	protected.Get("/dashboard", cfg.Dashboard.Summary)
	protected.Get("/debug/metrics", ownerOnly, cfg.Dashboard.Metrics)
}
