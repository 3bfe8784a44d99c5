package main

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/7pessoal-source/menu-noir-premium/internal/handlers"
	"github.com/7pessoal-source/menu-noir-premium/internal/middleware"
	"github.com/7pessoal-source/menu-noir-premium/internal/models"
	"github.com/7pessoal-source/menu-noir-premium/internal/repositories"
	"github.com/7pessoal-source/menu-noir-premium/internal/services"
	"github.com/7pessoal-source/menu-noir-premium/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":3001")
	viper.SetDefault("DATABASE_DSN", "host=127.0.0.1 user=postgres password=postgres dbname=menunoir port=5432 sslmode=disable")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("AUTH_MODE", "jwt")
	viper.SetDefault("LOGIN_TOKEN_TTL_MINUTES", 15)
	viper.SetDefault("RABBITMQ_URL", "")
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	jwtSecret := viper.GetString("JWT_SECRET")
	authMode := viper.GetString("AUTH_MODE")
	tokenTTL := time.Duration(viper.GetInt("LOGIN_TOKEN_TTL_MINUTES")) * time.Minute

	if authMode == "jwt" && jwtSecret == "" {
		log.Fatal("JWT_SECRET must be set when AUTH_MODE=jwt")
	}

	// --- Database ---
	db, err := gorm.Open(postgres.Open(viper.GetString("DATABASE_DSN")), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	err = db.AutoMigrate(
		&models.Restaurant{},
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.LoginToken{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- RabbitMQ (optional) ---
	var mqClient *rabbitmq.Client
	if mqURL := viper.GetString("RABBITMQ_URL"); mqURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: mqURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()

		// Drain registration events; downstream processing (welcome
		// emails, provisioning) hangs off this consumer.
		go func() {
			err := mqClient.ConsumeRegistrationEvents(func(msg amqp.Delivery) error {
				log.Printf("Restaurant registered: %s", string(msg.Body))
				return nil
			})
			if err != nil {
				log.Printf("Failed to start registration consumer: %v", err)
			}
		}()
	}

	// --- Repositories ---
	restaurantRepo := repositories.NewGORMRestaurantRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)
	categoryRepo := repositories.NewGORMCategoryRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)
	loginTokenRepo := repositories.NewGORMLoginTokenRepository(db)

	// --- Services ---
	var publisher services.EventPublisher
	if mqClient != nil {
		publisher = mqClient
	}
	authService := services.NewAuthService(userRepo, restaurantRepo, publisher, jwtSecret)
	magicLinkService := services.NewMagicLinkService(loginTokenRepo, userRepo, restaurantRepo, tokenTTL)
	categoryService := services.NewCategoryService(categoryRepo, productRepo)
	productService := services.NewProductService(productRepo, categoryRepo)
	restaurantService := services.NewRestaurantService(restaurantRepo)
	menuService := services.NewMenuService(restaurantRepo, categoryRepo, productRepo)

	// --- Fiber app ---
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				code = fiberErr.Code
			}
			if code == fiber.StatusInternalServerError {
				log.Printf("Unhandled error: %v", err)
				return c.Status(code).JSON(fiber.Map{"error": "internal server error"})
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})
	app.Use(logger.New())
	app.Use(recover.New())

	// The deployment runs exactly one login flow; the auth middleware
	// resolves bearer tokens through whichever one is selected.
	var authenticator services.Authenticator
	switch authMode {
	case "jwt":
		authenticator = authService
		handlers.NewAuthHandler(authService).RegisterRoutes(app)
	case "magiclink":
		authenticator = magicLinkService
		handlers.NewMagicLinkHandler(magicLinkService).RegisterRoutes(app)
	default:
		log.Fatalf("Unknown AUTH_MODE %q (want jwt or magiclink)", authMode)
	}
	authRequired := middleware.AuthRequired(authenticator)

	handlers.NewCategoryHandler(categoryService).RegisterRoutes(app, authRequired)
	handlers.NewProductHandler(productService).RegisterRoutes(app, authRequired)
	handlers.NewRestaurantHandler(restaurantService).RegisterRoutes(app, authRequired)
	handlers.NewMenuHandler(menuService).RegisterRoutes(app)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
	})

	// Unmatched routes
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "route not found"})
	})

	// --- Start HTTP server ---
	log.Printf("Starting server on %s (auth mode: %s)", appPort, authMode)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}
