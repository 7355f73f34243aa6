//go:build integration

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alimikegami/pettech-microservices/core-service/internal/domain"
	"github.com/alimikegami/pettech-microservices/core-service/internal/infrastructure/database/postgres"
	pkgdto "github.com/alimikegami/pettech-microservices/pkg/dto"
	"github.com/alimikegami/pettech-microservices/pkg/errs"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
)

type RepositoryIntegrationTestSuite struct {
	suite.Suite
	ctx         context.Context
	container   *pgcontainer.PostgresContainer
	db          *sqlx.DB
	productRepo ProductRepository
	outboxRepo  OutboxRepository
	userRepo    UserRepository
}

func (s *RepositoryIntegrationTestSuite) SetupSuite() {
	s.ctx = context.Background()

	container, err := pgcontainer.Run(s.ctx, "postgres:15-alpine",
		pgcontainer.WithDatabase("pettech"),
		pgcontainer.WithUsername("pettech"),
		pgcontainer.WithPassword("pettech"),
		pgcontainer.BasicWaitStrategies(),
	)
	s.Require().NoError(err)
	s.container = container

	dsn, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	s.db, err = postgres.GetDBInstance(s.ctx, dsn, "pettech")
	s.Require().NoError(err)

	s.Require().NoError(postgres.Migrate(s.ctx, s.db))
	// Applying twice is a no-op.
	s.Require().NoError(postgres.Migrate(s.ctx, s.db))

	s.productRepo = CreateProductRepository(s.db)
	s.outboxRepo = CreateOutboxRepository(s.db)
	s.userRepo = CreateUserRepository(s.db)
}

func (s *RepositoryIntegrationTestSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		s.Require().NoError(testcontainers.TerminateContainer(s.container))
	}
}

func (s *RepositoryIntegrationTestSuite) SetupTest() {
	_, err := s.db.ExecContext(s.ctx, `TRUNCATE stock_outbox, product_category, product, category, person, "user" RESTART IDENTITY CASCADE`)
	s.Require().NoError(err)
}

func (s *RepositoryIntegrationTestSuite) addProduct(name string, categoryNames ...string) string {
	var id string
	err := s.productRepo.HandleTrx(s.ctx, func(ctx context.Context, repo ProductRepository) error {
		var err error
		id, err = repo.AddProduct(ctx, domain.Product{Name: name, Price: 10})
		if err != nil {
			return err
		}

		ids := []int64{}
		for _, categoryName := range categoryNames {
			category, err := repo.GetOrCreateCategory(ctx, categoryName)
			if err != nil {
				return err
			}
			ids = append(ids, category.ID)
		}
		if len(ids) == 0 {
			return nil
		}

		return repo.AddProductCategories(ctx, id, ids)
	})
	s.Require().NoError(err)

	return id
}

func (s *RepositoryIntegrationTestSuite) Test_ProductWithCategories() {
	id := s.addProduct("Ração", "Dogs", "Food")
	s.addProduct("Coleira", "Dogs")

	product, err := s.productRepo.GetProductByID(s.ctx, id)
	s.Require().NoError(err)
	s.Equal("Ração", product.Name)
	s.Len(product.Categories, 2)

	var categories int
	s.Require().NoError(s.db.GetContext(s.ctx, &categories, "SELECT COUNT(*) FROM category"))
	s.Equal(2, categories)
}

func (s *RepositoryIntegrationTestSuite) Test_TransactionRollback() {
	rollbackErr := errors.New("abort")

	err := s.productRepo.HandleTrx(s.ctx, func(ctx context.Context, repo ProductRepository) error {
		if _, err := repo.AddProduct(ctx, domain.Product{Name: "Ghost", Price: 1}); err != nil {
			return err
		}
		_, err := repo.GetCategoryByID(ctx, 999)
		s.ErrorIs(err, errs.ErrNotFound)
		return rollbackErr
	})
	s.ErrorIs(err, rollbackErr)

	products, err := s.productRepo.GetProducts(s.ctx, pkgdto.Filter{})
	s.Require().NoError(err)
	s.Empty(products)
}

func (s *RepositoryIntegrationTestSuite) Test_GetProducts_Pagination() {
	for _, name := range []string{"A", "B", "C", "D", "E"} {
		s.addProduct(name)
	}

	products, err := s.productRepo.GetProducts(s.ctx, pkgdto.Filter{Limit: 2, Page: 2})
	s.Require().NoError(err)
	s.Require().Len(products, 2)
	s.Equal("C", products[0].Name)
	s.Equal("D", products[1].Name)

	products, err = s.productRepo.GetProducts(s.ctx, pkgdto.Filter{})
	s.Require().NoError(err)
	s.Len(products, 5)
}

func (s *RepositoryIntegrationTestSuite) Test_UpdateAndDeleteMissingProduct() {
	s.ErrorIs(s.productRepo.UpdateProduct(s.ctx, domain.Product{ID: "6f1c2a9e-6d2b-4c1e-9a53-0d6f1e2b7c11", Name: "X"}), errs.ErrNotFound)
	s.ErrorIs(s.productRepo.DeleteProduct(s.ctx, "not-a-uuid"), errs.ErrNotFound)

	_, err := s.productRepo.GetProductByID(s.ctx, "not-a-uuid")
	s.ErrorIs(err, errs.ErrNotFound)
}

func (s *RepositoryIntegrationTestSuite) Test_DuplicateCategory() {
	_, err := s.productRepo.AddCategory(s.ctx, "Dogs")
	s.Require().NoError(err)

	_, err = s.productRepo.AddCategory(s.ctx, "Dogs")
	s.ErrorIs(err, errs.ErrDuplicateName)
}

func (s *RepositoryIntegrationTestSuite) addOutboxEvent(id, productID string, updatedAt int64) {
	err := s.productRepo.AddStockOutboxEvent(s.ctx, domain.StockOutboxEvent{
		ID:        id,
		ProductID: productID,
		Payload:   []byte(`{"name":"Ração","quantity":0,"relationId":"` + productID + `"}`),
		Status:    domain.OutboxStatusPending,
		CreatedAt: updatedAt,
		UpdatedAt: updatedAt,
	})
	s.Require().NoError(err)
}

func (s *RepositoryIntegrationTestSuite) Test_Outbox() {
	productID := s.addProduct("Ração")
	now := time.Now()
	idle := now.Add(-time.Hour).UnixMilli()

	// A1 was just written by an inline provisioning call that may still be running.
	s.addOutboxEvent("01HZX0000000000000000000A1", productID, now.UnixMilli())
	s.addOutboxEvent("01HZX0000000000000000000A2", productID, idle)
	s.addOutboxEvent("01HZX0000000000000000000A3", productID, idle+1)
	s.addOutboxEvent("01HZX0000000000000000000A4", productID, idle+2)

	s.Require().NoError(s.outboxRepo.MarkStockEventRejected(s.ctx, "01HZX0000000000000000000A3", "unexpected status from stock service: request rejected: 401"))
	s.Require().NoError(s.outboxRepo.MarkStockEventSent(s.ctx, "01HZX0000000000000000000A4"))

	claimed, err := s.outboxRepo.ClaimStockEvents(s.ctx, 10, 30*time.Second)
	s.Require().NoError(err)
	s.Require().Len(claimed, 1)
	s.Equal("01HZX0000000000000000000A2", claimed[0].ID)

	// A claimed event is not handed out again inside the idle window.
	claimed, err = s.outboxRepo.ClaimStockEvents(s.ctx, 10, 30*time.Second)
	s.Require().NoError(err)
	s.Empty(claimed)

	s.Require().NoError(s.outboxRepo.MarkStockEventFailed(s.ctx, "01HZX0000000000000000000A2", "connection refused"))

	claimed, err = s.outboxRepo.ClaimStockEvents(s.ctx, 10, 0)
	s.Require().NoError(err)
	s.Require().Len(claimed, 2)
	s.Equal("01HZX0000000000000000000A2", claimed[0].ID)
	s.Equal(1, claimed[0].Attempts)
	s.Require().NotNil(claimed[0].LastError)
	s.Equal("connection refused", *claimed[0].LastError)
	s.Equal("01HZX0000000000000000000A1", claimed[1].ID)

	var status string
	s.Require().NoError(s.db.GetContext(s.ctx, &status, "SELECT status FROM stock_outbox WHERE id = $1", "01HZX0000000000000000000A3"))
	s.Equal(domain.OutboxStatusRejected, status)
}

func (s *RepositoryIntegrationTestSuite) Test_Users() {
	id, err := s.userRepo.AddUser(s.ctx, domain.User{Username: "alice", Password: "hash"})
	s.Require().NoError(err)

	_, err = s.userRepo.AddUser(s.ctx, domain.User{Username: "alice", Password: "hash"})
	s.ErrorIs(err, errs.ErrUserAlreadyExists)

	user, err := s.userRepo.GetUserByUsername(s.ctx, "bob")
	s.Require().NoError(err)
	s.Zero(user.ID)

	withPerson, err := s.userRepo.GetUserWithPerson(s.ctx, id)
	s.Require().NoError(err)
	s.Nil(withPerson.PersonID)

	_, err = s.userRepo.AddPerson(s.ctx, domain.Person{
		CPF:    "12345678901",
		Name:   "Alice",
		Birth:  time.Date(1990, 12, 31, 0, 0, 0, 0, time.UTC),
		Email:  "alice@example.com",
		UserID: &id,
	})
	s.Require().NoError(err)

	withPerson, err = s.userRepo.GetUserWithPerson(s.ctx, id)
	s.Require().NoError(err)
	s.Require().NotNil(withPerson.Name)
	s.Equal("Alice", *withPerson.Name)

	missing := int64(999)
	_, err = s.userRepo.AddPerson(s.ctx, domain.Person{CPF: "1", Name: "X", Email: "x@example.com", UserID: &missing})
	s.ErrorIs(err, errs.ErrNotFound)
}

func TestRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryIntegrationTestSuite))
}
