package postgres

//nolint:revive
import (
	"context"
	"fmt"
	"net"
	"time"

	"hotel/config"
	"hotel/shared/logger"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var ErrNotConnected = errors.New("database connection is not established")

type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

// Transactor runs fn inside a single write transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context, tx *sqlx.Tx) error) error
}

type poolOptions struct {
	maxOpen     int
	maxIdle     int
	maxLifetime time.Duration
}

func New(config *config.Config) *Connection {
	return &Connection{
		Read:  CreatePostgresReadConn(*config),
		Write: CreatePostgresWriteConn(*config),
	}
}

// Reader returns the read pool, or ErrNotConnected when startup never reached the database.
func (conn *Connection) Reader() (*sqlx.DB, error) {
	if conn == nil || conn.Read == nil {
		return nil, ErrNotConnected
	}

	return conn.Read, nil
}

func (conn *Connection) Writer() (*sqlx.DB, error) {
	if conn == nil || conn.Write == nil {
		return nil, ErrNotConnected
	}

	return conn.Write, nil
}

func (conn *Connection) WithTransaction(ctx context.Context, fn func(ctx context.Context, tx *sqlx.Tx) error) (err error) {
	db, err := conn.Writer()
	if err != nil {
		return err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()

			panic(p)
		}

		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to rollback transaction")
			}

			return
		}

		if err = tx.Commit(); err != nil {
			logger.ErrorWithStack(err)

			err = fmt.Errorf("failed to commit transaction: %w", err)
		}
	}()

	return fn(ctx, tx)
}

// Ping checks both pools.
func (conn *Connection) Ping(ctx context.Context) error {
	if conn.Write == nil || conn.Read == nil {
		return ErrNotConnected
	}

	if err := conn.Write.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping write database: %w", err)
	}

	if err := conn.Read.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping read database: %w", err)
	}

	return nil
}

func (conn *Connection) Close() {
	for name, db := range map[string]*sqlx.DB{"read": conn.Read, "write": conn.Write} {
		if db == nil {
			continue
		}

		if err := db.Close(); err != nil {
			log.Error().Err(err).Str("name", name).Msg("Failed to close database connection")
		}
	}
}

// getDBName returns the database name with prefix if configured
func getDBName(config config.Config, baseName string) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + baseName
	}

	return baseName
}

func getPoolOptions(config config.Config) poolOptions {
	return poolOptions{
		maxOpen:     config.DB.Postgres.MaxOpenConns,
		maxIdle:     config.DB.Postgres.MaxIdleConns,
		maxLifetime: time.Duration(config.DB.Postgres.ConnMaxLifetime) * time.Second,
	}
}

// CreatePostgresWriteConn creates a database connection for write access.
func CreatePostgresWriteConn(config config.Config) *sqlx.DB {
	return CreatePostgresConnection(
		"write",
		config.DB.Postgres.Write.Username,
		config.DB.Postgres.Write.Password,
		config.DB.Postgres.Write.Host,
		config.DB.Postgres.Write.Port,
		getDBName(config, config.DB.Postgres.Write.Name),
		config.DB.Postgres.Write.SSLMode,
		config.DB.Postgres.MaxRetry,
		config.DB.Postgres.RetryWaitTime,
		getPoolOptions(config),
	)
}

// CreatePostgresReadConn creates a database connection for read access.
func CreatePostgresReadConn(config config.Config) *sqlx.DB {
	return CreatePostgresConnection(
		"read",
		config.DB.Postgres.Read.Username,
		config.DB.Postgres.Read.Password,
		config.DB.Postgres.Read.Host,
		config.DB.Postgres.Read.Port,
		getDBName(config, config.DB.Postgres.Read.Name),
		config.DB.Postgres.Read.SSLMode,
		config.DB.Postgres.MaxRetry,
		config.DB.Postgres.RetryWaitTime,
		getPoolOptions(config),
	)
}

// CreatePostgresConnection creates a database connection.
func CreatePostgresConnection(name, username, password, host, port, dbName, sslMode string, maxRetry, waitTime int, pool poolOptions) *sqlx.DB {
	descriptor := fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		username,
		password,
		net.JoinHostPort(host, port),
		dbName,
		sslMode,
	)

	for retry := range maxRetry {
		sqlDB, err := sqlx.Connect("postgres", descriptor)
		if err == nil {
			log.
				Info().
				Str("name", name).
				Str("host", host).
				Str("port", port).
				Str("dbName", dbName).
				Int("maxOpenConns", pool.maxOpen).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(pool.maxIdle)
			sqlDB.SetMaxOpenConns(pool.maxOpen)
			sqlDB.SetConnMaxLifetime(pool.maxLifetime)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("name", name).
			Str("host", host).
			Str("port", port).
			Str("dbName", dbName).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	return nil
}
