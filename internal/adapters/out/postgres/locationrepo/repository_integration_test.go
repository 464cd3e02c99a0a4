package locationrepo_test

import (
	"context"
	"testing"
	"time"

	"householdplanet/internal/adapters/out/postgres/locationrepo"
	"householdplanet/internal/core/domain/model/kernel"
	"householdplanet/internal/core/domain/model/location"
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

// LocationRepositoryIntegrationTestSuite verifies catalog persistence against
// a real PostgreSQL instance.
type LocationRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *locationrepo.GormLocationRepository
	tracker    *MockAggregateTracker
}

func (suite *LocationRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&locationrepo.LocationDTO{}))
}

func (suite *LocationRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE locations").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = locationrepo.NewGormLocationRepository(suite.db, suite.tracker)
}

func (suite *LocationRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *LocationRepositoryIntegrationTestSuite) createTestLocation(name string, tier int) *location.Location {
	locationTier, err := location.NewTier(tier)
	suite.Require().NoError(err)

	expressPrice := 500.0
	loc, err := location.NewLocation(
		kernel.NewUUID(), name, locationTier, 200, "test destination", 1, true, &expressPrice,
	)
	suite.Require().NoError(err)
	return loc
}

func (suite *LocationRepositoryIntegrationTestSuite) TestAdd_ValidLocation_Success() {
	ctx := context.Background()
	loc := suite.createTestLocation("Nairobi CBD", 1)

	suite.tracker.On("TrackAggregate", loc.ID(), loc).Once()

	suite.Require().NoError(suite.repository.Add(ctx, loc))

	loaded, err := suite.repository.Get(ctx, loc.ID())
	suite.Require().NoError(err)
	suite.Equal("Nairobi CBD", loaded.Name())
	suite.Equal(1, loaded.Tier().Value())
	suite.InDelta(200.0, loaded.Price(), 0.001)
	suite.True(loaded.ExpressAvailable())
	suite.Require().NotNil(loaded.ExpressPrice())
	suite.InDelta(500.0, *loaded.ExpressPrice(), 0.001)
	suite.True(loaded.IsActive())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *LocationRepositoryIntegrationTestSuite) TestAdd_DuplicateName_Fails() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestLocation("Karen", 2)))

	err := suite.repository.Add(ctx, suite.createTestLocation("Karen", 3))
	suite.Require().Error(err)
}

func (suite *LocationRepositoryIntegrationTestSuite) TestGetByName_ExistingLocation_Success() {
	ctx := context.Background()
	loc := suite.createTestLocation("Kilimani", 2)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, loc))

	loaded, err := suite.repository.GetByName(ctx, "Kilimani")
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(loc.ID()))
}

func (suite *LocationRepositoryIntegrationTestSuite) TestGetByName_Missing_ReturnsNotFound() {
	_, err := suite.repository.GetByName(context.Background(), "Atlantis")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *LocationRepositoryIntegrationTestSuite) TestGetAllActive_ExcludesDeactivated() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	active := suite.createTestLocation("Westlands", 1)
	retired := suite.createTestLocation("Old Town", 4)
	retired.Deactivate()

	suite.Require().NoError(suite.repository.Add(ctx, active))
	suite.Require().NoError(suite.repository.Add(ctx, retired))

	locations, err := suite.repository.GetAllActive(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(locations, 1)
	suite.Equal("Westlands", locations[0].Name())
}

func (suite *LocationRepositoryIntegrationTestSuite) TestGetAllActive_OrderedByTierThenName() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestLocation("Thika", 3)))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestLocation("Nairobi CBD", 1)))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestLocation("Karen", 2)))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestLocation("Kilimani", 2)))

	locations, err := suite.repository.GetAllActive(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(locations, 4)
	suite.Equal("Nairobi CBD", locations[0].Name())
	suite.Equal("Karen", locations[1].Name())
	suite.Equal("Kilimani", locations[2].Name())
	suite.Equal("Thika", locations[3].Name())
}

func (suite *LocationRepositoryIntegrationTestSuite) TestUpdate_PricingChange_Persists() {
	ctx := context.Background()
	loc := suite.createTestLocation("Runda", 2)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, loc))

	suite.Require().NoError(loc.UpdatePricing(350, false, nil))
	suite.Require().NoError(suite.repository.Update(ctx, loc))

	loaded, err := suite.repository.Get(ctx, loc.ID())
	suite.Require().NoError(err)
	suite.InDelta(350.0, loaded.Price(), 0.001)
	suite.False(loaded.ExpressAvailable())
}

func TestLocationRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(LocationRepositoryIntegrationTestSuite))
}
