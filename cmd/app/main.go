package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"householdplanet/cmd"
	"householdplanet/internal/adapters/out/postgres/deliveryrepo"
	"householdplanet/internal/adapters/out/postgres/locationrepo"
	"householdplanet/internal/adapters/out/postgres/orderrepo"
	redisout "householdplanet/internal/adapters/out/redis"
	"householdplanet/internal/adapters/out/sms"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)

	cache, err := redisout.NewTrackingCache(configs.RedisAddr, configs.RedisPassword, configs.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to redis: %v", err)
	}
	defer func() { _ = cache.Close() }()

	app := cmd.NewCompositionRoot(
		configs,
		gormDB,
		cache,
		sms.NewLogSender(logger),
		logger,
	)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:      goDotEnvVariable("HTTP_PORT"),
		DBHost:        goDotEnvVariable("DB_HOST"),
		DBPort:        goDotEnvVariable("DB_PORT"),
		DBUser:        goDotEnvVariable("DB_USER"),
		DBPassword:    goDotEnvVariable("DB_PASSWORD"),
		DBName:        goDotEnvVariable("DB_NAME"),
		DBSslMode:     goDotEnvVariable("DB_SSLMODE"),
		RedisAddr:     goDotEnvVariable("REDIS_ADDR"),
		RedisPassword: goDotEnvVariable("REDIS_PASSWORD"),
	}

	redisDB, err := strconv.Atoi(goDotEnvVariable("REDIS_DB"))
	if err != nil {
		log.Fatalf("REDIS_DB must be an integer: %v", err)
	}
	config.RedisDB = redisDB

	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&locationrepo.LocationDTO{},
		&orderrepo.OrderDTO{},
		&deliveryrepo.DeliveryDTO{},
		&deliveryrepo.StatusHistoryDTO{},
		&deliveryrepo.FeedbackDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	app.CreateServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
