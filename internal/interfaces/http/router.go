package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/resto-pro/internal/application/auth"
	"github.com/tu-usuario/resto-pro/internal/application/inventory"
	"github.com/tu-usuario/resto-pro/internal/application/usecase"
	"github.com/tu-usuario/resto-pro/internal/domain/entity"
	"github.com/tu-usuario/resto-pro/internal/infrastructure/pdf"
	"github.com/tu-usuario/resto-pro/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	IngredientUC  *usecase.IngredientUseCase
	MovementUC    *inventory.MovementUseCase
	ReportUC      *inventory.MonthlyReportUseCase
	SuggestionUC  *inventory.SuggestionUseCase
	CategoryUC    *usecase.CategoryUseCase
	MenuItemUC    *usecase.MenuItemUseCase
	ProductUC     *usecase.ProductUseCase
	PromotionUC   *usecase.PromotionUseCase
	CustomerUC    *usecase.CustomerUseCase
	TableUC       *usecase.TableUseCase
	ReservationUC *usecase.ReservationUseCase
	OrderUC       *usecase.OrderUseCase
	SettingUC     *usecase.SettingUseCase
	PDFGen        *pdf.MonthlyReportGenerator
	AppName       string
	JWTSecret     string
}

// Router registra las rutas de la API: superficie pública del storefront y
// back office bajo /api/admin (scope admin).
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/admin/login", authHandler.LoginAdmin)
	api.Post("/auth/customer/register", authHandler.RegisterCustomer)
	api.Post("/auth/customer/login", authHandler.LoginCustomer)

	// Storefront (público; la identidad del cliente es opcional)
	menuHandler := NewMenuHandler(deps.CategoryUC, deps.MenuItemUC)
	settingHandler := NewSettingHandler(deps.SettingUC)
	orderHandler := NewOrderHandler(deps.OrderUC)
	reservationHandler := NewReservationHandler(deps.ReservationUC)

	api.Get("/menu", menuHandler.PublicMenu)
	api.Get("/settings/public", settingHandler.ListPublic)
	api.Post("/orders", OptionalAuthMiddleware(deps.JWTSecret), orderHandler.CreatePublic)
	api.Get("/orders/:id/track", orderHandler.Track)
	api.Post("/reservations", OptionalAuthMiddleware(deps.JWTSecret), reservationHandler.CreatePublic)

	// Back office (Bearer Token con scope admin)
	admin := api.Group("/admin", AuthMiddleware(deps.JWTSecret), RequireScope(jwt.ScopeAdmin))
	adminOnly := RequireRole(entity.RoleAdmin)

	// Usuarios de staff (solo rol admin)
	admin.Post("/users", adminOnly, authHandler.RegisterUser)

	// Ingredientes
	ingredientHandler := NewIngredientHandler(deps.IngredientUC)
	admin.Post("/ingredients", ingredientHandler.Create)
	admin.Get("/ingredients", ingredientHandler.List)
	admin.Get("/ingredients/:id", ingredientHandler.GetByID)
	admin.Put("/ingredients/:id", ingredientHandler.Update)
	admin.Patch("/ingredients/:id/toggle", ingredientHandler.Toggle)
	admin.Delete("/ingredients/:id", adminOnly, ingredientHandler.Delete)

	// Movimientos y reportes de inventario
	inventoryHandler := NewInventoryHandler(deps.MovementUC, deps.ReportUC, deps.SuggestionUC, deps.PDFGen, deps.AppName)
	admin.Post("/stock-movements", inventoryHandler.PostMovement)
	admin.Get("/stock-movements", inventoryHandler.ListMovements)
	admin.Delete("/stock-movements/:id", inventoryHandler.DeleteMovement)
	admin.Get("/inventory-reports/monthly-dashboard", inventoryHandler.MonthlyDashboard)
	admin.Get("/inventory-reports/monthly-dashboard/pdf", inventoryHandler.MonthlyDashboardPDF)
	admin.Get("/inventory-reports/purchase-suggestions", inventoryHandler.PurchaseSuggestions)

	// Categorías e ítems del menú
	admin.Post("/categories", menuHandler.CreateCategory)
	admin.Get("/categories", menuHandler.ListCategories)
	admin.Get("/categories/:id", menuHandler.GetCategory)
	admin.Put("/categories/:id", menuHandler.UpdateCategory)
	admin.Patch("/categories/:id/toggle", menuHandler.ToggleCategory)
	admin.Delete("/categories/:id", adminOnly, menuHandler.DeleteCategory)

	admin.Post("/menu-items", menuHandler.CreateMenuItem)
	admin.Get("/menu-items", menuHandler.ListMenuItems)
	admin.Get("/menu-items/:id", menuHandler.GetMenuItem)
	admin.Put("/menu-items/:id", menuHandler.UpdateMenuItem)
	admin.Patch("/menu-items/:id/toggle", menuHandler.ToggleMenuItem)
	admin.Delete("/menu-items/:id", adminOnly, menuHandler.DeleteMenuItem)

	// Productos de venta directa
	productHandler := NewProductHandler(deps.ProductUC)
	admin.Post("/products", productHandler.Create)
	admin.Get("/products", productHandler.List)
	admin.Get("/products/:id", productHandler.GetByID)
	admin.Put("/products/:id", productHandler.Update)
	admin.Patch("/products/:id/toggle", productHandler.Toggle)
	admin.Delete("/products/:id", adminOnly, productHandler.Delete)

	// Promociones
	promotionHandler := NewPromotionHandler(deps.PromotionUC)
	admin.Post("/promotions", promotionHandler.Create)
	admin.Get("/promotions", promotionHandler.List)
	admin.Get("/promotions/:id", promotionHandler.GetByID)
	admin.Put("/promotions/:id", promotionHandler.Update)
	admin.Patch("/promotions/:id/toggle", promotionHandler.Toggle)
	admin.Delete("/promotions/:id", adminOnly, promotionHandler.Delete)

	// Clientes
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	admin.Get("/customers", customerHandler.List)
	admin.Get("/customers/:id", customerHandler.GetByID)
	admin.Put("/customers/:id", customerHandler.Update)
	admin.Delete("/customers/:id", adminOnly, customerHandler.Delete)

	// Mesas
	tableHandler := NewTableHandler(deps.TableUC)
	admin.Post("/tables", tableHandler.Create)
	admin.Get("/tables", tableHandler.List)
	admin.Get("/tables/:id", tableHandler.GetByID)
	admin.Put("/tables/:id", tableHandler.Update)
	admin.Patch("/tables/:id/status", tableHandler.SetStatus)
	admin.Delete("/tables/:id", adminOnly, tableHandler.Delete)

	// Reservas (gestión)
	admin.Post("/reservations", reservationHandler.Create)
	admin.Get("/reservations", reservationHandler.List)
	admin.Get("/reservations/:id", reservationHandler.GetByID)
	admin.Put("/reservations/:id", reservationHandler.Update)
	admin.Patch("/reservations/:id/status", reservationHandler.SetStatus)
	admin.Delete("/reservations/:id", adminOnly, reservationHandler.Delete)

	// Pedidos (gestión)
	admin.Post("/orders", orderHandler.Create)
	admin.Get("/orders", orderHandler.List)
	admin.Get("/orders/:id", orderHandler.GetByID)
	admin.Patch("/orders/:id/status", orderHandler.UpdateStatus)
	admin.Delete("/orders/:id", adminOnly, orderHandler.Delete)

	// Settings
	admin.Get("/settings", settingHandler.List)
	admin.Get("/settings/:key", settingHandler.Get)
	admin.Put("/settings", settingHandler.Upsert)
	admin.Delete("/settings/:key", adminOnly, settingHandler.Delete)
}
