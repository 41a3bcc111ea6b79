package db

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kleverretail/retail-cloud/internal/config"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

var ErrUnknownDriver = errors.New("unknown database driver")

// sqlitePragmas keeps foreign keys enforced and makes writers wait for the lock
// instead of failing with SQLITE_BUSY.
const sqlitePragmas = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

func Open(conf *config.DatabaseConfig) (*gorm.DB, error) {
	dialector, err := dialectorFor(conf)
	if err != nil {
		return nil, err
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel(conf.LogLevel)),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("gorm.Open -> %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("gdb.DB -> %w", err)
	}

	if conf.Driver == DriverSQLite || conf.Driver == "" {
		// One writer at a time; the pool queues the rest.
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)

		return gdb, nil
	}

	if conf.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(conf.MaxOpenConns)
	}
	if conf.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(conf.MaxIdleConns)
	}
	sqlDB.SetConnMaxLifetime(conf.ConnMaxLifetime)

	return gdb, nil
}

// OpenPostgresWithURL is used when DATABASE_URL is set by the platform.
func OpenPostgresWithURL(url string, conf *config.DatabaseConfig) (*gorm.DB, error) {
	withURL := *conf
	withURL.Driver = DriverPostgres
	withURL.DSN = url

	return Open(&withURL)
}

// OpenFromEnv prefers DATABASE_URL, which hosting platforms set for Postgres,
// over the configured driver.
func OpenFromEnv(conf *config.DatabaseConfig) (*gorm.DB, error) {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return OpenPostgresWithURL(url, conf)
	}

	return Open(conf)
}

func Close(gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return fmt.Errorf("gdb.DB -> %w", err)
	}

	return sqlDB.Close()
}

func dialectorFor(conf *config.DatabaseConfig) (gorm.Dialector, error) {
	switch conf.Driver {
	case DriverSQLite, "":
		return sqlite.Open(sqliteDSN(conf.DSN)), nil
	case DriverPostgres:
		return postgres.Open(conf.DSN), nil
	case DriverMySQL:
		return mysql.Open(conf.DSN), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, conf.Driver)
	}
}

func sqliteDSN(dsn string) string {
	if dsn == "" {
		dsn = "kleverRetailCloud.db"
	}
	if strings.Contains(dsn, "_pragma=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&" + sqlitePragmas
	}

	return dsn + "?" + sqlitePragmas
}

func logLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
