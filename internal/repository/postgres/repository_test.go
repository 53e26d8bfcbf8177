package postgres_test

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/pasajes-microservice/internal/domain"
	"github.com/pasajes-microservice/internal/domain/repository"
	apperrors "github.com/pasajes-microservice/internal/pkg/errors"
	"github.com/pasajes-microservice/internal/repository/postgres"
	"github.com/pasajes-microservice/internal/repository/postgres/testhelpers"
	"github.com/pasajes-microservice/internal/usecase"
	"github.com/pasajes-microservice/internal/usecase/dto"
)

// RepositoryTestSuite runs every postgres repository against a real database
type RepositoryTestSuite struct {
	suite.Suite
	testDB    *testhelpers.TestDB
	db        *postgres.DB
	reference repository.ReferenceRepository
	tickets   repository.TicketRepository
	reports   repository.ReportRepository
	ctx       context.Context
}

func TestRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}

// SetupSuite выполняется один раз перед всеми тестами
func (s *RepositoryTestSuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())

	err := testhelpers.ApplyMigrations(s.testDB.DB.DB, "../../../migrations")
	s.Require().NoError(err, "Failed to apply migrations")

	s.db, err = testhelpers.NewPgxDBForTest(s.testDB.URL, s.testDB.Logger)
	s.Require().NoError(err, "Failed to open pgx pool")

	s.reference = postgres.NewReferenceRepository(s.db)
	s.tickets = postgres.NewTicketRepository(s.db)
	s.reports = postgres.NewReportRepository(s.db)
}

// TearDownSuite выполняется один раз после всех тестов
func (s *RepositoryTestSuite) TearDownSuite() {
	if s.db != nil {
		_ = s.db.Close()
	}
	if s.testDB != nil {
		s.testDB.Close()
	}
}

// SetupTest выполняется перед каждым тестом
func (s *RepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.Require().NoError(s.testDB.Cleanup(s.ctx))
	s.Require().NoError(testhelpers.LoadFixtures(s.testDB.DB.DB, "testdata/fixtures", []string{"reference.sql"}))
}

func (s *RepositoryTestSuite) insertTicket(travelDate interface{}, routeID int64, passenger interface{}) int64 {
	id, err := testhelpers.InsertTicket(s.testDB.DB.DB, travelDate, routeID, 1, 1, 10, passenger)
	s.Require().NoError(err)
	return id
}

func (s *RepositoryTestSuite) countTickets() int {
	n, err := testhelpers.CountTickets(s.testDB.DB.DB)
	s.Require().NoError(err)
	return n
}

// ============================================================================
// Reference data
// ============================================================================

func (s *RepositoryTestSuite) TestListRoutes_OrderedByName() {
	routes, err := s.reference.ListRoutes(s.ctx)

	s.NoError(err)
	s.Require().Len(routes, 3)
	s.Equal("Circular", routes[0].Name)
	s.Equal("Norte - Sur", routes[1].Name)
	s.Equal("R1", routes[2].Name)
	s.Equal(10.0, routes[2].BasePrice)
}

func (s *RepositoryTestSuite) TestListVehicles_OrderedByDiscNumber() {
	vehicles, err := s.reference.ListVehicles(s.ctx)

	s.NoError(err)
	s.Require().Len(vehicles, 3)
	s.Equal(int64(7), vehicles[0].DiscNumber)
	s.Equal(int64(45), vehicles[1].DiscNumber)
	s.Equal(int64(112), vehicles[2].DiscNumber)
	s.Equal("PCD-5678", vehicles[0].Plate)
}

func (s *RepositoryTestSuite) TestListFareTypes_OrderedByDescription() {
	fareTypes, err := s.reference.ListFareTypes(s.ctx)

	s.NoError(err)
	s.Require().Len(fareTypes, 3)
	s.Equal("50% off", fareTypes[0].Description)
	s.Equal(50.0, fareTypes[0].DiscountPercentage)
	s.Equal("Estudiante", fareTypes[1].Description)
	s.Equal("General", fareTypes[2].Description)
}

func (s *RepositoryTestSuite) TestLookups() {
	price, err := s.reference.GetRouteBasePrice(s.ctx, 1)
	s.NoError(err)
	s.Equal(10.0, price)

	discount, err := s.reference.GetFareTypeDiscount(s.ctx, 3)
	s.NoError(err)
	s.Equal(20.0, discount)

	_, err = s.reference.GetRouteBasePrice(s.ctx, 999)
	s.True(stderrors.Is(err, apperrors.ErrRouteNotFound))

	_, err = s.reference.GetFareTypeDiscount(s.ctx, 999)
	s.True(stderrors.Is(err, apperrors.ErrFareTypeNotFound))
}

// ============================================================================
// Tickets
// ============================================================================

func (s *RepositoryTestSuite) TestList_NewestFirst() {
	s.insertTicket(time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC), 1, "Ana")
	s.insertTicket(time.Date(2025, 3, 1, 18, 30, 0, 0, time.UTC), 2, "Luis")
	s.insertTicket(time.Date(2025, 2, 5, 12, 0, 0, 0, time.UTC), 1, "Marta")

	tickets, err := s.tickets.List(s.ctx, nil)

	s.NoError(err)
	s.Require().Len(tickets, 3)
	s.Equal("Luis", lo.FromPtr(tickets[0].PassengerName))
	s.Equal("Marta", lo.FromPtr(tickets[1].PassengerName))
	s.Equal("Ana", lo.FromPtr(tickets[2].PassengerName))
	s.Equal("Norte - Sur", tickets[0].RouteName)
	s.Equal(int64(45), tickets[0].DiscNumber)
	s.Equal("General", tickets[0].Description)
	s.Require().NotNil(tickets[0].TravelDate)
	s.Equal("2025-03-01T18:30:00", *domain.FormatTravelDate(tickets[0].TravelDate))
}

func (s *RepositoryTestSuite) TestList_FilterByRoute() {
	s.insertTicket(time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC), 1, "Ana")
	s.insertTicket(time.Date(2025, 3, 1, 18, 30, 0, 0, time.UTC), 2, "Luis")
	s.insertTicket(time.Date(2025, 2, 5, 12, 0, 0, 0, time.UTC), 1, "Marta")

	routeID := domain.ID(1)
	tickets, err := s.tickets.List(s.ctx, &routeID)

	s.NoError(err)
	s.Require().Len(tickets, 2)
	s.Equal("Marta", lo.FromPtr(tickets[0].PassengerName))
	s.Equal("Ana", lo.FromPtr(tickets[1].PassengerName))
	for _, t := range tickets {
		s.Equal("R1", t.RouteName)
	}
}

func (s *RepositoryTestSuite) TestList_NullTravelDate() {
	s.insertTicket(nil, 1, "Sin fecha")

	tickets, err := s.tickets.List(s.ctx, nil)

	s.NoError(err)
	s.Require().Len(tickets, 1)
	s.Nil(tickets[0].TravelDate)
	s.Nil(domain.FormatTravelDate(tickets[0].TravelDate))
}

func (s *RepositoryTestSuite) TestList_NullPassengerName() {
	s.insertTicket(time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC), 1, nil)

	tickets, err := s.tickets.List(s.ctx, nil)

	s.NoError(err)
	s.Require().Len(tickets, 1)
	s.Nil(tickets[0].PassengerName)
	s.Nil(dto.ConvertTicket(tickets[0]).PassengerName)
}

func (s *RepositoryTestSuite) TestCreateTicket_FirstInSubsequentListing() {
	s.insertTicket(time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC), 1, "Ana")
	s.insertTicket(time.Date(2025, 2, 5, 12, 0, 0, 0, time.UTC), 1, "Marta")

	uc := usecase.NewTicketUseCase(s.db, s.tickets, s.reference, nil, zap.NewNop())

	created, err := uc.CreateTicket(s.ctx, dto.CreateTicketRequest{
		RouteID:       1,
		VehicleID:     1,
		FareTypeID:    2,
		TravelDate:    "2025-06-01 07:45",
		PassengerName: "Pedro",
	})
	s.Require().NoError(err)
	s.Equal(usecase.MessageTicketCreated, created.Message)
	s.Equal(5.0, created.Value)

	tickets, err := uc.ListTickets(s.ctx, nil)
	s.Require().NoError(err)
	s.Require().Len(tickets, 3)
	s.Equal("Pedro", lo.FromPtr(tickets[0].PassengerName))
	s.Equal(5.0, tickets[0].FinalValue)
	s.Require().NotNil(tickets[0].TravelDate)
	s.Equal("2025-06-01T07:45:00", *tickets[0].TravelDate)
	s.Equal("Marta", lo.FromPtr(tickets[1].PassengerName))
	s.Equal("Ana", lo.FromPtr(tickets[2].PassengerName))
}

func (s *RepositoryTestSuite) TestCreate() {
	ticket := &domain.Ticket{
		TravelDate:    time.Date(2025, 4, 2, 9, 15, 0, 0, time.UTC),
		RouteID:       1,
		VehicleID:     2,
		FareTypeID:    2,
		FinalValue:    5,
		PassengerName: "Pedro",
	}

	id, err := s.tickets.Create(s.ctx, ticket)

	s.NoError(err)
	s.NotZero(id)

	tickets, err := s.tickets.List(s.ctx, nil)
	s.NoError(err)
	s.Require().Len(tickets, 1)
	s.Equal(id, tickets[0].ID)
	s.Equal(5.0, tickets[0].FinalValue)
	s.Equal("50% off", tickets[0].Description)
}

func (s *RepositoryTestSuite) TestCreate_ForeignKeyViolation() {
	_, err := s.tickets.Create(s.ctx, &domain.Ticket{
		TravelDate: time.Now(),
		RouteID:    1,
		VehicleID:  999,
		FareTypeID: 1,
	})

	s.True(stderrors.Is(err, apperrors.ErrDatabaseError))
	s.Equal(0, s.countTickets())
}

func (s *RepositoryTestSuite) TestDelete() {
	id := s.insertTicket(time.Now(), 1, "Ana")

	deleted, err := s.tickets.Delete(s.ctx, domain.ID(id))
	s.NoError(err)
	s.True(deleted)
	s.Equal(0, s.countTickets())

	// Повторное удаление не является ошибкой
	deleted, err = s.tickets.Delete(s.ctx, domain.ID(id))
	s.NoError(err)
	s.False(deleted)
}

// ============================================================================
// Gateway
// ============================================================================

func (s *RepositoryTestSuite) TestWithinTransaction_RollbackOnError() {
	boom := stderrors.New("boom")

	err := s.db.WithinTransaction(s.ctx, func(ctx context.Context) error {
		_, err := s.tickets.Create(ctx, &domain.Ticket{
			TravelDate: time.Now(), RouteID: 1, VehicleID: 1, FareTypeID: 1, FinalValue: 10,
		})
		s.Require().NoError(err)
		return boom
	})

	s.ErrorIs(err, boom)
	s.Equal(0, s.countTickets())
}

func (s *RepositoryTestSuite) TestWithinTransaction_Commit() {
	err := s.db.WithinTransaction(s.ctx, func(ctx context.Context) error {
		_, err := s.tickets.Create(ctx, &domain.Ticket{
			TravelDate: time.Now(), RouteID: 1, VehicleID: 1, FareTypeID: 1, FinalValue: 10,
		})
		return err
	})

	s.NoError(err)
	s.Equal(1, s.countTickets())
}

func (s *RepositoryTestSuite) TestWithinConnection_SharesConnection() {
	err := s.db.WithinConnection(s.ctx, func(ctx context.Context) error {
		if _, err := s.reference.ListRoutes(ctx); err != nil {
			return err
		}
		_, err := s.reference.ListVehicles(ctx)
		return err
	})

	s.NoError(err)
}

// ============================================================================
// Reports
// ============================================================================

func (s *RepositoryTestSuite) TestGenerateCSV() {
	s.insertTicket(time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC), 1, `Ana "La Rápida"`)

	csv, err := s.reports.GenerateCSV(s.ctx)

	s.NoError(err)
	s.Contains(csv, "ID_PASAJE,FECHA_VIAJE,RUTA,DISCO,PLACA,TIPO_PASAJE,VALOR_FINAL,NOMBRE_PASAJERO\n")
	s.Contains(csv, `2025-01-10 08:00,"R1",45,"PBA-1234","General",10.00,"Ana ""La Rápida"""`)
}

func (s *RepositoryTestSuite) TestGenerateCSV_Empty() {
	csv, err := s.reports.GenerateCSV(s.ctx)

	s.NoError(err)
	s.Equal("ID_PASAJE,FECHA_VIAJE,RUTA,DISCO,PLACA,TIPO_PASAJE,VALOR_FINAL,NOMBRE_PASAJERO\n", csv)
}
