package deps

import (
	"context"
	"fmt"
	"sync"
	"time"
	"userhub/internal/config"
	dl "userhub/internal/core/domain/logging"
	duow "userhub/internal/core/domain/unit_of_work"
	"userhub/internal/core/domain/user"
	"userhub/internal/db"
	dbaddress "userhub/internal/db/address"
	dbtoken "userhub/internal/db/password_reset_token"
	uow "userhub/internal/db/unit_of_work"
	dbuser "userhub/internal/db/user"
	"userhub/internal/implementations/email"
	"userhub/internal/implementations/logging"
	passwordhasher "userhub/internal/implementations/password_hasher"
	randomstringgenerator "userhub/internal/implementations/random_string_generator"
	tokencodec "userhub/internal/implementations/token_codec"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/getsentry/sentry-go"
	"github.com/jackc/pgx/v4/pgxpool"
)

type Deps struct {
	Config *config.Config
	// AwsConfig is loaded only when password reset emails are enabled.
	AwsConfig aws.Config
	Logger    dl.Logger

	DB *pgxpool.Pool

	Now func() time.Time

	UnitOfWork                   duow.UnitOfWork
	UserRepository               user.UserRepository
	AddressRepository            user.AddressRepository
	PasswordResetTokenRepository user.PasswordResetTokenRepository

	PasswordHasher           user.PasswordHasher
	PublicIDGenerator        user.PublicIDGenerator
	TokenCodec               user.TokenCodec
	PasswordResetTokenSender user.PasswordResetTokenSender
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()
	closeLogger := deps.initLogger()
	deps.migrate()
	closePgxPool := deps.initPgxPool()

	deps.UnitOfWork = uow.NewPgxUnitOfWork(deps.DB)
	deps.UserRepository = dbuser.NewPgxRepository(deps.DB)
	deps.AddressRepository = dbaddress.NewPgxAddressRepository(deps.DB)
	deps.PasswordResetTokenRepository = dbtoken.NewPgxPasswordResetTokenRepository(deps.DB)

	deps.Now = func() time.Time { return time.Now().UTC() }
	deps.PasswordHasher = passwordhasher.NewBcrypt(deps.Config.Secret, deps.Config.BcryptHasherCost)
	deps.PublicIDGenerator = randomstringgenerator.NewGenerator()
	deps.TokenCodec = tokencodec.NewJWT(deps.Config.PasswordResetTokenSecret, deps.Now)
	deps.PasswordResetTokenSender = deps.initPasswordResetTokenSender()

	flushSentry := deps.initSentry()

	return deps, func() {
		closeFuncs := []func(){
			closePgxPool,
			closeLogger,
			flushSentry,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}

		wg.Wait()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initAwsConfig() {
	cfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithRegion(deps.Config.AwsRegion),
		awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				deps.Config.AwsAccessKey,
				deps.Config.AwsSecretKey,
				"",
			),
		),
		awsConfig.WithRetryer(func() aws.Retryer {
			return retry.AddWithMaxAttempts(
				retry.AddWithMaxBackoffDelay(retry.NewStandard(), time.Second*5),
				3,
			)
		}),
	)
	if err != nil {
		panic(err)
	}
	deps.AwsConfig = cfg
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger()
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) migrate() {
	if !deps.Config.AutoMigrate {
		deps.Logger.Info(context.Background(), "DB migrations are skipped.")
		return
	}
	if err := db.Migrate(deps.Config.PostgresqlURL, deps.Config.MigrationsPath); err != nil {
		deps.Logger.Error(context.Background(), "Could not apply DB migrations.", dl.Entry("err", err))
		panic(err)
	}
	deps.Logger.Info(
		context.Background(),
		"DB migrations have been applied.",
		dl.Entry("path", deps.Config.MigrationsPath),
	)
}

func (deps *Deps) initPgxPool() func() {
	db, err := pgxpool.Connect(context.Background(), deps.Config.PostgresqlURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to DB.", dl.Entry("err", err))
		panic(err)
	}
	if err := db.Ping(context.Background()); err != nil {
		deps.Logger.Error(context.Background(), "DB is not reachable.", dl.Entry("err", err))
		panic(err)
	}
	deps.DB = db
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down DB connection.")
		db.Close()
		deps.Logger.Info(context.Background(), "DB connection shut down.")
	}
}

func (deps *Deps) initPasswordResetTokenSender() user.PasswordResetTokenSender {
	if !deps.Config.IsEmailSendingEnabled() {
		deps.Logger.Warning(context.Background(), "Password reset emails are disabled.")
		return email.NewDisabledSender(deps.Logger)
	}
	deps.initAwsConfig()
	deps.Logger.Info(
		context.Background(),
		"Password reset emails are sent via SES.",
		dl.Entry("region", deps.Config.AwsRegion),
		dl.Entry("template", deps.Config.AwsEmailPasswordResetTemplate),
	)
	return email.NewEmailSender(
		deps.AwsConfig,
		deps.Config.AwsEmailSender,
		deps.Config.AwsEmailPasswordResetTemplate,
		*deps.Config.AwsEmailPasswordResetBaseUrl,
	)
}

func (deps *Deps) initSentry() func() {
	if deps.Config.SentryDsn != nil {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              deps.Config.SentryDsn.String(),
			TracesSampleRate: 0.01,
		})
		if err != nil {
			panic(fmt.Sprintf("could not init Sentry: %v\n", err))
		}
		deps.Logger.Info(context.Background(), "Sentry has been successfully initialized.")
		return func() {
			ok := sentry.Flush(5 * time.Second)
			deps.Logger.Info(context.Background(), "Sentry events flushed.", dl.Entry("ok", ok))
		}
	}

	deps.Logger.Info(context.Background(), "Sentry is disabled.")
	return func() {}
}
