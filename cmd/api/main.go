package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/robfig/cron/v3"

	config "github.com/wanjikuh/shop_admin/configs"
	"github.com/wanjikuh/shop_admin/database"
	"github.com/wanjikuh/shop_admin/handlers"
	"github.com/wanjikuh/shop_admin/jobs"
	"github.com/wanjikuh/shop_admin/logger"
	"github.com/wanjikuh/shop_admin/repositories"
	"github.com/wanjikuh/shop_admin/routes"
	"github.com/wanjikuh/shop_admin/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	appLog, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer appLog.Sync()

	db, err := database.Connect(cfg)
	if err != nil {
		appLog.Fatal("database connection failed", "error", err)
	}
	if err := database.Migrate(db); err != nil {
		appLog.Fatal("database migration failed", "error", err)
	}
	if err := database.SeedAdmin(db, cfg, appLog); err != nil {
		appLog.Fatal("admin seed failed", "error", err)
	}
	appLog.Info("database ready")

	userRepo := repositories.NewUserRepository(db, appLog)
	productRepo := repositories.NewProductRepository(db, appLog)

	userService := services.NewUserService(userRepo)
	authService := services.NewAuthService(userRepo, cfg.JWTSecret)
	productService := services.NewProductService(productRepo)
	oauthService := services.NewOAuthService(cfg)
	siweService := services.NewSiweService(cfg.SiweDomain, appLog)

	authHandler := handlers.NewAuthHandler(authService, oauthService, siweService, appLog)
	userHandler := handlers.NewUserHandler(userService, appLog)
	productHandler := handlers.NewProductHandler(productService, appLog)
	bundleHandler := handlers.NewBundleHandler(productService, appLog)

	c := cron.New()
	c.Schedule(cron.Every(5*time.Minute), &jobs.NonceCleanupJob{Siwe: siweService, Log: appLog})
	c.Start()

	engine := html.New("./views", ".html")

	app := fiber.New(fiber.Config{
		AppName:       "Shop Admin",
		Views:         engine,
		ViewsLayout:   "layouts/main",
		CaseSensitive: true,
		StrictRouting: false,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  15 * time.Second,
		IdleTimeout:   60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			appLog.Error("request failed", "path", c.Path(), "method", c.Method(), "error", err)
			return c.Status(code).JSON(fiber.Map{
				"status":  "error",
				"code":    code,
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Authorization",
		MaxAge:        86400,
	}))
	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	routes.AuthRoutes(app, authHandler)
	routes.UserRoutes(app, userHandler, cfg.JWTSecret)
	routes.ProductRoutes(app, productHandler, cfg.JWTSecret)
	routes.BundleRoutes(app, bundleHandler, cfg.JWTSecret)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	appLog.Info("server starting", "addr", cfg.ServerAddr)
	if err := app.Listen(cfg.ServerAddr); err != nil {
		appLog.Fatal("server failed to start", "error", err)
	}
}
