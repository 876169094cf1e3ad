package passwordresettoken

import (
	"context"
	"sync"
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
	repo  *PgxPasswordResetTokenRepository
	users *dbuser.PgxUserRepository
}

func (suite *testSuite) SetupSuite() {
	pool, ok := db.CreateTestPool()
	if !ok {
		suite.T().Skip("TEST_POSTGRESQL_URL is not set.")
	}
	suite.pool = pool
	suite.repo = NewPgxPasswordResetTokenRepository(suite.pool)
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

func TestPgxPasswordResetTokenRepository(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestConsumeReturnsOwnerOnce() {
	owner := s.createUser()
	s.Require().Nil(s.repo.Create(context.Background(), user.CreatePasswordResetTokenInput{
		Token:     "token",
		UserID:    owner,
		CreatedAt: time.Now().UTC(),
	}))

	userID, err := s.repo.Consume(context.Background(), "token")
	s.Nil(err)
	s.Equal(owner, userID)

	_, err = s.repo.Consume(context.Background(), "token")
	s.ErrorIs(err, user.ErrPasswordResetTokenDoesNotExist)
}

func (s *testSuite) TestCreateRejectsDuplicateToken() {
	owner := s.createUser()
	input := user.CreatePasswordResetTokenInput{Token: "token", UserID: owner, CreatedAt: time.Now().UTC()}
	s.Require().Nil(s.repo.Create(context.Background(), input))
	s.ErrorIs(s.repo.Create(context.Background(), input), ErrTokenAlreadyExists)
}

func (s *testSuite) TestConcurrentConsumeSucceedsOnce() {
	owner := s.createUser()
	s.Require().Nil(s.repo.Create(context.Background(), user.CreatePasswordResetTokenInput{
		Token:     "token",
		UserID:    owner,
		CreatedAt: time.Now().UTC(),
	}))

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	wg.Add(10)
	for i := 0; i < 10; i++ {
		go func() {
			defer wg.Done()
			if _, err := s.repo.Consume(context.Background(), "token"); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	s.Equal(1, successes)
}

func (s *testSuite) TestDeleteByUser() {
	owner := s.createUser()
	for _, token := range []user.PasswordResetToken{"t1", "t2"} {
		s.Require().Nil(s.repo.Create(context.Background(), user.CreatePasswordResetTokenInput{
			Token:     token,
			UserID:    owner,
			CreatedAt: time.Now().UTC(),
		}))
	}

	s.Nil(s.repo.DeleteByUser(context.Background(), owner))

	_, err := s.repo.Consume(context.Background(), "t1")
	s.ErrorIs(err, user.ErrPasswordResetTokenDoesNotExist)
	_, err = s.repo.Consume(context.Background(), "t2")
	s.ErrorIs(err, user.ErrPasswordResetTokenDoesNotExist)
}

func (s *testSuite) TestDeleteCreatedBefore() {
	owner := s.createUser()
	now := time.Date(2020, 6, 6, 15, 30, 30, 0, time.UTC)
	for token, createdAt := range map[user.PasswordResetToken]time.Time{
		"stale-1": now.Add(-2 * time.Hour),
		"stale-2": now.Add(-90 * time.Minute),
		"fresh":   now.Add(-time.Minute),
	} {
		s.Require().Nil(s.repo.Create(context.Background(), user.CreatePasswordResetTokenInput{
			Token:     token,
			UserID:    owner,
			CreatedAt: createdAt,
		}))
	}

	count, err := s.repo.DeleteCreatedBefore(context.Background(), now.Add(-time.Hour))
	s.Nil(err)
	s.Equal(int64(2), count)

	userID, err := s.repo.Consume(context.Background(), "fresh")
	s.Nil(err)
	s.Equal(owner, userID)
}

func (s *testSuite) createUser() user.ID {
	s.T().Helper()
	created, err := s.users.Create(context.Background(), user.CreateUserInput{
		PublicID:     "u1",
		Email:        c.NewEmail("owner@test.test"),
		FirstName:    "John",
		LastName:     "Doe",
		PasswordHash: "hash",
		CreatedAt:    time.Now().UTC(),
	})
	s.Require().Nil(err)
	return created.ID
}
