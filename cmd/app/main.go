package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"foodcourt/cmd"
	foodcourthttp "foodcourt/internal/adapters/in/http"
	"foodcourt/internal/adapters/out/postgres/cartrepo"
	"foodcourt/internal/adapters/out/postgres/catalogrepo"
	"foodcourt/internal/adapters/out/postgres/orderrepo"
	"foodcourt/internal/adapters/out/postgres/paymentrepo"
	"foodcourt/internal/adapters/out/postgres/reviewrepo"
	"foodcourt/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := jobs.NewJobManager(
		app.CreatePurgeStaleCartsCommandHandler(),
		configs.CartTTL,
		slog.Default(),
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		CartTTL:            envDuration("CART_TTL", 24*time.Hour),
		GatewaySuccessRate: envFloat("GATEWAY_SUCCESS_RATE", 0.9),
		GatewayDelay:       envDuration("GATEWAY_DELAY", 500*time.Millisecond),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func envDuration(key string, fallback time.Duration) time.Duration {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid %s value %q: %v", key, raw, err)
	}
	return value
}

func envFloat(key string, fallback float64) float64 {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Fatalf("Invalid %s value %q: %v", key, raw, err)
	}
	return value
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	// TranslateError turns driver duplicate-key errors into
	// gorm.ErrDuplicatedKey, which the repositories rely on.
	gormDB, err := gorm.Open(postgres.Open(configs.PostgresDSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&cartrepo.CartDTO{},
		&cartrepo.CartLineDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&paymentrepo.PaymentDTO{},
		&reviewrepo.ReviewDTO{},
		&catalogrepo.MenuItemDTO{},
		&catalogrepo.RestaurantDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := foodcourthttp.NewServer(foodcourthttp.Handlers{
		AddCartItem:        app.CreateAddCartItemCommandHandler(),
		UpdateCartLine:     app.CreateUpdateCartLineCommandHandler(),
		RemoveCartLine:     app.CreateRemoveCartLineCommandHandler(),
		ClearCart:          app.CreateClearCartCommandHandler(),
		Checkout:           app.CreateCheckoutCommandHandler(),
		ChangeOrderStatus:  app.CreateChangeOrderStatusCommandHandler(),
		AcceptOrder:        app.CreateAcceptOrderCommandHandler(),
		CancelOrder:        app.CreateCancelOrderCommandHandler(),
		ProcessPayment:     app.CreateProcessPaymentCommandHandler(),
		ConfirmCODDelivery: app.CreateConfirmCODDeliveryCommandHandler(),
		SubmitReview:       app.CreateSubmitReviewCommandHandler(),

		GetCart:             app.CreateGetCartQueryHandler(),
		GetCustomerOrders:   app.CreateGetCustomerOrdersQueryHandler(),
		GetOrder:            app.CreateGetOrderQueryHandler(),
		GetRestaurantOrders: app.CreateGetRestaurantOrdersQueryHandler(),
		GetAvailableOrders:  app.CreateGetAvailableOrdersQueryHandler(),
		GetActiveDelivery:   app.CreateGetActiveDeliveryQueryHandler(),
		GetDriverHistory:    app.CreateGetDriverHistoryQueryHandler(),
	})

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
