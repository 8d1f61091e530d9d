package customerrepo_test

import (
	"context"
	"testing"
	"time"

	"orderimport/internal/adapters/out/postgres/customerrepo"
	"orderimport/internal/core/domain/model/customer"
	"orderimport/internal/core/domain/model/kernel"
	"orderimport/internal/pkg/errs"

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

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// CustomerRepositoryIntegrationTestSuite runs GormCustomerRepository against a real PostgreSQL.
type CustomerRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *customerrepo.GormCustomerRepository
	tracker    *MockAggregateTracker
}

func (suite *CustomerRepositoryIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&customerrepo.CustomerDTO{}))
}

func (suite *CustomerRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE customers").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = customerrepo.NewGormCustomerRepository(suite.db, suite.tracker)
}

func (suite *CustomerRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestAdd_ValidCustomer_Success() {
	ctx := context.Background()
	c := suite.newCustomer("1001", "123.456.789-01", "João Silva")
	suite.tracker.On("TrackAggregate", c.ID(), c).Once()

	suite.Require().NoError(suite.repository.Add(ctx, c))

	suite.assertCustomerCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestAdd_DuplicateCode_AlreadyExists() {
	ctx := context.Background()
	first := suite.newCustomer("1001", "123.456.789-01", "João Silva")
	second := suite.newCustomer("1001", "987.654.321-02", "Maria Santos")
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()

	suite.Require().NoError(suite.repository.Add(ctx, first))
	err := suite.repository.Add(ctx, second)

	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
	suite.assertCustomerCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestAdd_NotConstructedCustomer_Error() {
	err := suite.repository.Add(context.Background(), &customer.Customer{})

	suite.Require().ErrorIs(err, customer.ErrCustomerIsNotConstructed)
	suite.assertCustomerCount(0)
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestGet_ExistingCustomer_RoundTrip() {
	ctx := context.Background()
	c := suite.newCustomer("2001", "321.654.987-04", "Ana Costa")
	suite.tracker.On("TrackAggregate", c.ID(), c).Once()
	suite.Require().NoError(suite.repository.Add(ctx, c))

	got, err := suite.repository.Get(ctx, " 2001 ")

	suite.Require().NoError(err)
	suite.True(c.ID().IsEqual(got.ID()))
	suite.Equal("2001", got.Code())
	suite.Equal("321.654.987-04", got.TaxID())
	suite.Equal("Ana Costa", got.Name())
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestGet_UnknownCode_NotFound() {
	_, err := suite.repository.Get(context.Background(), "9999")

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Contains(err.Error(), "9999")
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestGet_EmptyCode_Required() {
	_, err := suite.repository.Get(context.Background(), "  ")

	suite.Require().ErrorIs(err, errs.ErrValueIsRequired)
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestGetAll_OrderedByCode() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	for _, c := range []*customer.Customer{
		suite.newCustomer("2002", "789.123.456-05", "Carlos Ferreira"),
		suite.newCustomer("1001", "123.456.789-01", "João Silva"),
		suite.newCustomer("1003", "456.789.123-03", ""),
	} {
		suite.Require().NoError(suite.repository.Add(ctx, c))
	}

	all, err := suite.repository.GetAll(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(all, 3)
	suite.Equal("1001", all[0].Code())
	suite.Equal("1003", all[1].Code())
	suite.Equal("", all[1].Name())
	suite.Equal("2002", all[2].Code())
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestGetAll_Empty() {
	all, err := suite.repository.GetAll(context.Background())

	suite.Require().NoError(err)
	suite.Empty(all)
}

func (suite *CustomerRepositoryIntegrationTestSuite) newCustomer(code, taxID, name string) *customer.Customer {
	c, err := customer.NewCustomer(kernel.NewUUID(), code, taxID, name)
	suite.Require().NoError(err)
	return c
}

func (suite *CustomerRepositoryIntegrationTestSuite) assertCustomerCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&customerrepo.CustomerDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestCustomerRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test requires docker")
	}
	suite.Run(t, new(CustomerRepositoryIntegrationTestSuite))
}
