package main

import (
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	db "github.com/CrestPay/CrestPay-Backend/db/sqlc"
	"github.com/CrestPay/CrestPay-Backend/services/events"
	"github.com/CrestPay/CrestPay-Backend/services/ledger"
	"github.com/CrestPay/CrestPay-Backend/services/lock"
	"github.com/CrestPay/CrestPay-Backend/services/monitoring/logging"
	"github.com/CrestPay/CrestPay-Backend/services/payment"
	"github.com/CrestPay/CrestPay-Backend/services/transaction"
	"github.com/CrestPay/CrestPay-Backend/services/wallet"
	"github.com/CrestPay/CrestPay-Backend/utils"
)

var envPath string = "."

func main() {
	config, err := utils.LoadConfig(envPath)
	if err != nil {
		panic(fmt.Sprintf("Could not load config: %v", err))
	}

	logger := logging.NewLogger(config.Papertrail, config.PapertrailAppName)

	conn, err := sql.Open("postgres", config.DBSource())
	if err != nil {
		logger.Fatal("could not connect to database: ", err)
	}
	defer conn.Close()

	if err := runMigrations(conn); err != nil {
		logger.Fatal("could not run migrations: ", err)
	}

	store := db.NewStore(conn)
	lockTTL := time.Duration(config.LockTTLSeconds) * time.Second

	var locks lock.Provider
	if config.RedisHost != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%s", config.RedisHost, config.RedisPort),
			Password: config.RedisPassword,
		})
		locks = lock.NewRedisLock(client, lockTTL, logger)
		logger.Info("advisory lock backed by redis")
	} else {
		locks = lock.NewCacheLock(lockTTL)
		logger.Info("advisory lock backed by in-process cache")
	}

	refs, err := transaction.NewReferenceGenerator(config.ReferenceSalt)
	if err != nil {
		logger.Fatal("could not build reference generator: ", err)
	}

	bus := events.NewBus(logger)

	engine, err := ledger.NewEngine(ledger.Config{
		UnitOfWork:   ledger.NewSQLUnitOfWork(store),
		WalletReader: wallet.NewSQLRepository(store.Queries),
		Locks:        locks,
		Bus:          bus,
		Refs:         refs,
		Logger:       logger,
	})
	if err != nil {
		logger.Fatal("could not build command engine: ", err)
	}

	payment.NewAdapter(engine, logger).Attach(bus)

	logger.Info("ledger core running")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down, draining event bus")
	bus.Drain()
}

func runMigrations(conn *sql.DB) error {
	driver, err := postgres.WithInstance(conn, &postgres.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithDatabaseInstance("file://db/migrations", "postgres", driver)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}
