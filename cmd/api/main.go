package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/resto-pro/internal/application/auth"
	"github.com/tu-usuario/resto-pro/internal/application/inventory"
	"github.com/tu-usuario/resto-pro/internal/application/usecase"
	domaininv "github.com/tu-usuario/resto-pro/internal/domain/inventory"
	infrapdf "github.com/tu-usuario/resto-pro/internal/infrastructure/pdf"
	"github.com/tu-usuario/resto-pro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/resto-pro/internal/interfaces/http"
	"github.com/tu-usuario/resto-pro/pkg/config"
	"github.com/tu-usuario/resto-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	ingredientRepo := postgres.NewIngredientRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	menuItemRepo := postgres.NewMenuItemRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	promotionRepo := postgres.NewPromotionRepository(pool)
	tableRepo := postgres.NewTableRepository(pool)
	reservationRepo := postgres.NewReservationRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	settingRepo := postgres.NewSettingRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, customerRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	ingredientUC := usecase.NewIngredientUseCase(ingredientRepo)
	movementUC := inventory.NewMovementUseCase(txRunner, movementRepo)
	reportUC := inventory.NewMonthlyReportUseCase(reportRepo, cfg.Inventory.ReportYearWindow)
	suggestionUC := inventory.NewSuggestionUseCase(reportRepo, domaininv.NewPolicy(cfg.Inventory.RestockMultiplier))

	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	menuItemUC := usecase.NewMenuItemUseCase(menuItemRepo, categoryRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	promotionUC := usecase.NewPromotionUseCase(promotionRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	tableUC := usecase.NewTableUseCase(tableRepo)
	reservationUC := usecase.NewReservationUseCase(reservationRepo, tableRepo)
	orderUC := usecase.NewOrderUseCase(txRunner, orderRepo)
	settingUC := usecase.NewSettingUseCase(settingRepo)

	pdfGen := infrapdf.NewMonthlyReportGenerator()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs. Si el archivo
	// generado no está presente el servidor arranca igual, sin la UI.
	httpRouter.RegisterSwagger(app, "./docs/swagger.json", "Resto Pro API")

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		IngredientUC:  ingredientUC,
		MovementUC:    movementUC,
		ReportUC:      reportUC,
		SuggestionUC:  suggestionUC,
		CategoryUC:    categoryUC,
		MenuItemUC:    menuItemUC,
		ProductUC:     productUC,
		PromotionUC:   promotionUC,
		CustomerUC:    customerUC,
		TableUC:       tableUC,
		ReservationUC: reservationUC,
		OrderUC:       orderUC,
		SettingUC:     settingUC,
		PDFGen:        pdfGen,
		AppName:       cfg.App.Name,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
