package uow

import (
	"context"
	"testing"
	"time"
	c "userhub/internal/core/domain/common"
	"userhub/internal/core/domain/user"
	"userhub/internal/db"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

type testSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	uow  *PgxUnitOfWork
}

func (suite *testSuite) SetupSuite() {
	pool, ok := db.CreateTestPool()
	if !ok {
		suite.T().Skip("TEST_POSTGRESQL_URL is not set.")
	}
	suite.pool = pool
	suite.uow = NewPgxUnitOfWork(suite.pool)
}

func (suite *testSuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
}

func (suite *testSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxUnitOfWork(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestRollbackDiscardsChanges() {
	ctx := context.Background()
	uow, err := s.uow.Begin(ctx)
	s.Require().Nil(err)

	_, err = uow.Users().Create(ctx, s.createUserInput("u1", "rollback@test.test"))
	s.Require().Nil(err)
	s.Nil(uow.Rollback(ctx))

	_, err = s.newRepositoryUsers().GetByEmail(ctx, c.NewEmail("rollback@test.test"))
	s.ErrorIs(err, user.ErrUserDoesNotExist)
}

func (s *testSuite) TestCommitPersistsChanges() {
	ctx := context.Background()
	uow, err := s.uow.Begin(ctx)
	s.Require().Nil(err)
	defer uow.Rollback(ctx)

	created, err := uow.Users().Create(ctx, s.createUserInput("u1", "commit@test.test"))
	s.Require().Nil(err)
	_, err = uow.Addresses().Create(ctx, user.CreateAddressInput{
		PublicID: "a1",
		UserID:   created.ID,
		Address: user.NewAddress{
			Type:       user.AddressTypeShipping,
			City:       "Berlin",
			Country:    "Germany",
			PostalCode: "10115",
			StreetName: "Invalidenstrasse",
		},
	})
	s.Require().Nil(err)
	s.Nil(uow.Commit(ctx))

	found, err := s.newRepositoryUsers().GetByEmail(ctx, c.NewEmail("commit@test.test"))
	s.Nil(err)
	s.Equal(created.PublicID, found.PublicID)
}

func (s *testSuite) TestDeletingUserCascades() {
	ctx := context.Background()
	uow, err := s.uow.Begin(ctx)
	s.Require().Nil(err)
	defer uow.Rollback(ctx)

	created, err := uow.Users().Create(ctx, s.createUserInput("u1", "cascade@test.test"))
	s.Require().Nil(err)
	_, err = uow.Addresses().Create(ctx, user.CreateAddressInput{
		PublicID: "a1",
		UserID:   created.ID,
		Address:  user.NewAddress{Type: user.AddressTypeBilling, City: "Paris"},
	})
	s.Require().Nil(err)
	err = uow.PasswordResetTokens().Create(ctx, user.CreatePasswordResetTokenInput{
		Token:     "token",
		UserID:    created.ID,
		CreatedAt: time.Now().UTC(),
	})
	s.Require().Nil(err)

	s.Require().Nil(uow.Users().Delete(ctx, created.ID))

	addresses, err := uow.Addresses().ListByUser(ctx, created.ID)
	s.Nil(err)
	s.Empty(addresses)
	_, err = uow.PasswordResetTokens().Consume(ctx, "token")
	s.ErrorIs(err, user.ErrPasswordResetTokenDoesNotExist)
}

func (s *testSuite) newRepositoryUsers() user.UserRepository {
	uow, err := s.uow.Begin(context.Background())
	s.Require().Nil(err)
	s.T().Cleanup(func() { uow.Rollback(context.Background()) })
	return uow.Users()
}

func (s *testSuite) createUserInput(publicID user.PublicID, email string) user.CreateUserInput {
	return user.CreateUserInput{
		PublicID:     publicID,
		Email:        c.NewEmail(email),
		FirstName:    "John",
		LastName:     "Doe",
		PasswordHash: "hash",
		CreatedAt:    time.Now().UTC(),
	}
}
