package queries_test

import (
	"context"
	"testing"
	"time"

	"householdplanet/internal/adapters/out/postgres/deliveryrepo"
	"householdplanet/internal/adapters/out/postgres/orderrepo"
	"householdplanet/internal/core/application/usecases/queries"
	"householdplanet/internal/core/domain/model/delivery"
	"householdplanet/internal/core/domain/model/kernel"
	"householdplanet/internal/core/domain/model/order"
	"householdplanet/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type GetDeliveryTrackingQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	cache     *memoryTrackingCache
	handler   queries.GetDeliveryTrackingQueryHandler
}

func (suite *GetDeliveryTrackingQueryHandlerTestSuite) SetupSuite() {
	container, db, err := startPostgresContainer(context.Background())
	suite.Require().NoError(err)

	suite.container = container
	suite.db = db
}

func (suite *GetDeliveryTrackingQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetDeliveryTrackingQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE deliveries CASCADE").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)

	suite.cache = newMemoryTrackingCache()
	suite.handler = queries.NewGetDeliveryTrackingQueryHandler(suite.db, suite.cache, discardLogger())
}

func (suite *GetDeliveryTrackingQueryHandlerTestSuite) TestHandle_UnknownTrackingNumber_ReturnsNotFound() {
	query, err := queries.NewGetDeliveryTrackingQuery("DL-0000000000FFFF")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetDeliveryTrackingQueryHandlerTestSuite) TestHandle_ScheduledDelivery_ReturnsSnapshotWithHistory() {
	trackingNumber := suite.seedScheduledDelivery()

	query, err := queries.NewGetDeliveryTrackingQuery(trackingNumber)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Equal(trackingNumber, result.TrackingNumber)
	suite.Equal("PENDING", result.Status)
	suite.Equal("MORNING", result.TimeSlot)
	suite.Equal("Jane Wanjiku", result.CustomerName)
	suite.Equal("Westlands", result.LocationName)
	suite.Equal(0, result.RescheduleCount)

	// Westlands is not a CBD location, so transit takes two days.
	suite.Equal(result.ScheduledDate.AddDate(0, 0, 2), result.EstimatedDelivery)

	suite.Require().Len(result.History, 1)
	suite.Equal("PENDING", result.History[0].Status)
	suite.Equal("Delivery scheduled", result.History[0].Notes)
}

func (suite *GetDeliveryTrackingQueryHandlerTestSuite) TestHandle_ProgressedDelivery_HistoryInChronologicalOrder() {
	now := time.Now().UTC().Truncate(time.Microsecond)
	trackingNumber, d := suite.seedScheduledDeliveryAt(now)

	suite.Require().NoError(d.ChangeStatus(delivery.Confirmed, "Order confirmed", now.Add(time.Minute)))
	suite.Require().NoError(d.ChangeStatus(delivery.PickedUp, "Left the warehouse", now.Add(2*time.Minute)))
	repo := deliveryrepo.NewGormDeliveryRepository(suite.db, &mockAggregateTracker{})
	suite.Require().NoError(repo.Update(context.Background(), d))

	query, err := queries.NewGetDeliveryTrackingQuery(trackingNumber)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal("PICKED_UP", result.Status)
	suite.Require().Len(result.History, 3)
	suite.Equal("PENDING", result.History[0].Status)
	suite.Equal("CONFIRMED", result.History[1].Status)
	suite.Equal("PICKED_UP", result.History[2].Status)
}

func (suite *GetDeliveryTrackingQueryHandlerTestSuite) TestHandle_SecondLookup_ServedFromCache() {
	trackingNumber := suite.seedScheduledDelivery()

	query, err := queries.NewGetDeliveryTrackingQuery(trackingNumber)
	suite.Require().NoError(err)

	first, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	// Wipe the database; a cached snapshot must still answer the lookup.
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE deliveries CASCADE").Error)

	second, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal(first.TrackingNumber, second.TrackingNumber)
	suite.Equal(first.Status, second.Status)
}

func (suite *GetDeliveryTrackingQueryHandlerTestSuite) TestHandle_CacheOutage_FallsBackToDatabase() {
	trackingNumber := suite.seedScheduledDelivery()
	handler := queries.NewGetDeliveryTrackingQueryHandler(suite.db, &failingTrackingCache{}, discardLogger())

	query, err := queries.NewGetDeliveryTrackingQuery(trackingNumber)
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(trackingNumber, result.TrackingNumber)
}

func (suite *GetDeliveryTrackingQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetDeliveryTrackingQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, queries.ErrGetDeliveryTrackingQueryIsNotConstructed)
}

func (suite *GetDeliveryTrackingQueryHandlerTestSuite) seedScheduledDelivery() string {
	trackingNumber, _ := suite.seedScheduledDeliveryAt(time.Now().UTC().Truncate(time.Microsecond))
	return trackingNumber
}

func (suite *GetDeliveryTrackingQueryHandlerTestSuite) seedScheduledDeliveryAt(
	now time.Time,
) (string, *delivery.Delivery) {
	ctx := context.Background()

	o, err := order.NewOrder(kernel.NewUUID(), "Jane Wanjiku", "+254712345678", "Westlands", 3, 4500)
	suite.Require().NoError(err)
	orderRepo := orderrepo.NewGormOrderRepository(suite.db, &mockAggregateTracker{})
	suite.Require().NoError(orderRepo.Add(ctx, o))

	trackingNumber := delivery.NewTrackingNumber(now)
	d, err := delivery.NewDelivery(
		kernel.NewUUID(), o.ID(), trackingNumber,
		now.AddDate(0, 0, 3), delivery.Morning, "Call on arrival", now,
	)
	suite.Require().NoError(err)
	deliveryRepo := deliveryrepo.NewGormDeliveryRepository(suite.db, &mockAggregateTracker{})
	suite.Require().NoError(deliveryRepo.Add(ctx, d))

	return trackingNumber, d
}

func TestGetDeliveryTrackingQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetDeliveryTrackingQueryHandlerTestSuite))
}
