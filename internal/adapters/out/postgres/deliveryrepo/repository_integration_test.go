package deliveryrepo_test

import (
	"context"
	"testing"
	"time"

	"householdplanet/internal/adapters/out/postgres/deliveryrepo"
	"householdplanet/internal/core/domain/model/delivery"
	"householdplanet/internal/core/domain/model/kernel"
	"householdplanet/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// DeliveryRepositoryIntegrationTestSuite verifies delivery persistence,
// including the status history and feedback child tables, against a real
// PostgreSQL instance.
type DeliveryRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *deliveryrepo.GormDeliveryRepository
	tracker    *MockAggregateTracker
}

func (suite *DeliveryRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

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
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&deliveryrepo.DeliveryDTO{},
		&deliveryrepo.StatusHistoryDTO{},
		&deliveryrepo.FeedbackDTO{},
	))
}

func (suite *DeliveryRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE deliveries CASCADE").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.repository = deliveryrepo.NewGormDeliveryRepository(suite.db, suite.tracker)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DeliveryRepositoryIntegrationTestSuite) createTestDelivery() *delivery.Delivery {
	now := time.Now().UTC().Truncate(time.Microsecond)
	d, err := delivery.NewDelivery(
		kernel.NewUUID(),
		kernel.NewUUID(),
		delivery.NewTrackingNumber(now),
		now.Add(48*time.Hour),
		delivery.Morning,
		"Call on arrival",
		now,
	)
	suite.Require().NoError(err)
	return d
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestAdd_PersistsInitialHistory() {
	ctx := context.Background()
	d := suite.createTestDelivery()

	suite.Require().NoError(suite.repository.Add(ctx, d))

	loaded, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.Equal(delivery.Pending, loaded.Status())
	suite.Equal(d.TrackingNumber(), loaded.TrackingNumber())
	suite.Equal("Call on arrival", loaded.SpecialInstructions())
	suite.Require().Len(loaded.History(), 1)
	suite.Equal(delivery.Pending, loaded.History()[0].Status())
	suite.Equal("Delivery scheduled", loaded.History()[0].Notes())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestUpdate_AppendsHistoryRows() {
	ctx := context.Background()
	d := suite.createTestDelivery()
	suite.Require().NoError(suite.repository.Add(ctx, d))

	at := time.Now().UTC().Truncate(time.Microsecond)
	suite.Require().NoError(d.ChangeStatus(delivery.Confirmed, "Confirmed by dispatch", at))
	suite.Require().NoError(suite.repository.Update(ctx, d))

	suite.Require().NoError(d.ChangeStatus(delivery.PickedUp, "", at.Add(time.Hour)))
	suite.Require().NoError(suite.repository.Update(ctx, d))

	loaded, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.Equal(delivery.PickedUp, loaded.Status())
	suite.Require().Len(loaded.History(), 3)
	suite.Equal(delivery.Pending, loaded.History()[0].Status())
	suite.Equal(delivery.Confirmed, loaded.History()[1].Status())
	suite.Equal(delivery.PickedUp, loaded.History()[2].Status())
	suite.Equal("Confirmed by dispatch", loaded.History()[1].Notes())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestUpdate_PersistsFeedback() {
	ctx := context.Background()
	d := suite.createTestDelivery()
	suite.Require().NoError(suite.repository.Add(ctx, d))

	at := time.Now().UTC().Truncate(time.Microsecond)
	_, err := d.AddFeedback(5, "Great service", at)
	suite.Require().NoError(err)
	_, err = d.AddFeedback(4, "Slightly late", at.Add(time.Minute))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, d))

	loaded, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.Require().Len(loaded.Feedback(), 2)
	suite.Equal(5, loaded.Feedback()[0].Rating())
	suite.Equal("Great service", loaded.Feedback()[0].Comment())
	suite.Equal(4, loaded.Feedback()[1].Rating())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGetByTrackingNumber() {
	ctx := context.Background()
	d := suite.createTestDelivery()
	suite.Require().NoError(suite.repository.Add(ctx, d))

	loaded, err := suite.repository.GetByTrackingNumber(ctx, d.TrackingNumber())
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(d.ID()))

	_, err = suite.repository.GetByTrackingNumber(ctx, "DL-0000000000000FF")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGetByOrderID() {
	ctx := context.Background()
	d := suite.createTestDelivery()
	suite.Require().NoError(suite.repository.Add(ctx, d))

	loaded, err := suite.repository.GetByOrderID(ctx, d.OrderID())
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(d.ID()))

	_, err = suite.repository.GetByOrderID(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestAdd_SecondDeliveryForSameOrder_Fails() {
	ctx := context.Background()
	d := suite.createTestDelivery()
	suite.Require().NoError(suite.repository.Add(ctx, d))

	now := time.Now().UTC()
	duplicate, err := delivery.NewDelivery(
		kernel.NewUUID(),
		d.OrderID(),
		delivery.NewTrackingNumber(now),
		now.Add(24*time.Hour),
		delivery.Evening,
		"",
		now,
	)
	suite.Require().NoError(err)

	suite.Require().Error(suite.repository.Add(ctx, duplicate))
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGetPendingScheduledBefore() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	soon := suite.createTestDeliveryAt(now.Add(12 * time.Hour))
	far := suite.createTestDeliveryAt(now.Add(96 * time.Hour))
	confirmed := suite.createTestDeliveryAt(now.Add(6 * time.Hour))
	suite.Require().NoError(confirmed.ChangeStatus(delivery.Confirmed, "", now))

	suite.Require().NoError(suite.repository.Add(ctx, soon))
	suite.Require().NoError(suite.repository.Add(ctx, far))
	suite.Require().NoError(suite.repository.Add(ctx, confirmed))

	pending, err := suite.repository.GetPendingScheduledBefore(ctx, now.Add(24*time.Hour))
	suite.Require().NoError(err)
	suite.Require().Len(pending, 1)
	suite.True(pending[0].ID().IsEqual(soon.ID()))
}

func (suite *DeliveryRepositoryIntegrationTestSuite) createTestDeliveryAt(scheduled time.Time) *delivery.Delivery {
	now := time.Now().UTC().Truncate(time.Microsecond)
	d, err := delivery.NewDelivery(
		kernel.NewUUID(),
		kernel.NewUUID(),
		delivery.NewTrackingNumber(now),
		scheduled,
		delivery.Afternoon,
		"",
		now,
	)
	suite.Require().NoError(err)
	return d
}

func TestDeliveryRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DeliveryRepositoryIntegrationTestSuite))
}
