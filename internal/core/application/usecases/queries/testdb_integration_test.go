package queries_test

import (
	"context"
	"time"

	"householdplanet/internal/adapters/out/postgres/deliveryrepo"
	"householdplanet/internal/adapters/out/postgres/locationrepo"
	"householdplanet/internal/adapters/out/postgres/orderrepo"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// startPostgresContainer boots a throwaway postgres with the full delivery
// schema migrated. Shared by all query handler suites in this package.
func startPostgresContainer(ctx context.Context) (*postgres.PostgresContainer, *gorm.DB, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, nil, err
	}

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, nil, err
	}

	err = db.AutoMigrate(
		&locationrepo.LocationDTO{},
		&orderrepo.OrderDTO{},
		&deliveryrepo.DeliveryDTO{},
		&deliveryrepo.StatusHistoryDTO{},
		&deliveryrepo.FeedbackDTO{},
	)
	if err != nil {
		return nil, nil, err
	}

	return container, db, nil
}
