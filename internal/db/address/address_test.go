package address

import (
	"context"
	"testing"
	"time"
	c "userhub/internal/core/domain/common"
	"userhub/internal/core/domain/user"
	"userhub/internal/db"
	dbuser "userhub/internal/db/user"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

type testSuite struct {
	suite.Suite
	pool  *pgxpool.Pool
	repo  *PgxAddressRepository
	users *dbuser.PgxUserRepository
}

func (suite *testSuite) SetupSuite() {
	pool, ok := db.CreateTestPool()
	if !ok {
		suite.T().Skip("TEST_POSTGRESQL_URL is not set.")
	}
	suite.pool = pool
	suite.repo = NewPgxAddressRepository(suite.pool)
	suite.users = dbuser.NewPgxRepository(suite.pool)
}

func (suite *testSuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
}

func (suite *testSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxAddressRepository(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestCreateAndGet() {
	owner := s.createUser("u1", "owner@test.test")

	created, err := s.repo.Create(context.Background(), user.CreateAddressInput{
		PublicID: "a1",
		UserID:   owner,
		Address: user.NewAddress{
			Type:       user.AddressTypeShipping,
			City:       "Berlin",
			Country:    "Germany",
			PostalCode: "10115",
			StreetName: "Invalidenstrasse",
		},
	})
	s.Nil(err)
	s.True(created.ID > 0)
	s.Equal(owner, created.UserID)
	s.Equal(user.AddressTypeShipping, created.Type)

	found, err := s.repo.GetByPublicID(context.Background(), "a1")
	s.Nil(err)
	s.Equal(created, found)

	_, err = s.repo.GetByPublicID(context.Background(), "unknown")
	s.ErrorIs(err, user.ErrAddressDoesNotExist)
}

func (s *testSuite) TestListByUser() {
	owner := s.createUser("u1", "owner@test.test")
	other := s.createUser("u2", "other@test.test")
	s.createAddress("a1", owner, "Berlin")
	s.createAddress("a2", other, "Paris")
	s.createAddress("a3", owner, "Rome")

	addresses, err := s.repo.ListByUser(context.Background(), owner)
	s.Nil(err)
	s.Len(addresses, 2)
	s.Equal("Berlin", addresses[0].City)
	s.Equal("Rome", addresses[1].City)

	addresses, err = s.repo.ListByUser(context.Background(), 42)
	s.Nil(err)
	s.NotNil(addresses)
	s.Empty(addresses)
}

func (s *testSuite) TestDeleteByUser() {
	owner := s.createUser("u1", "owner@test.test")
	other := s.createUser("u2", "other@test.test")
	s.createAddress("a1", owner, "Berlin")
	s.createAddress("a2", other, "Paris")

	s.Nil(s.repo.DeleteByUser(context.Background(), owner))

	addresses, err := s.repo.ListByUser(context.Background(), owner)
	s.Nil(err)
	s.Empty(addresses)
	addresses, err = s.repo.ListByUser(context.Background(), other)
	s.Nil(err)
	s.Len(addresses, 1)
}

func (s *testSuite) createUser(publicID user.PublicID, email string) user.ID {
	s.T().Helper()
	created, err := s.users.Create(context.Background(), user.CreateUserInput{
		PublicID:     publicID,
		Email:        c.NewEmail(email),
		FirstName:    "John",
		LastName:     "Doe",
		PasswordHash: "hash",
		CreatedAt:    time.Now().UTC(),
	})
	s.Require().Nil(err)
	return created.ID
}

func (s *testSuite) createAddress(publicID user.AddressPublicID, owner user.ID, city string) {
	s.T().Helper()
	_, err := s.repo.Create(context.Background(), user.CreateAddressInput{
		PublicID: publicID,
		UserID:   owner,
		Address:  user.NewAddress{Type: user.AddressTypeBilling, City: city},
	})
	s.Require().Nil(err)
}
