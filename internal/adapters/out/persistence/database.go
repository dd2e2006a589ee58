package persistence

import (
	"fmt"
	"strings"
	"time"

	"pizzabot/internal/adapters/out/persistence/customerrepo"
	"pizzabot/internal/adapters/out/persistence/orderrepo"
	"pizzabot/internal/pkg/errs"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Supported values of Config.Driver.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// Config selects the dialect. Path is used by sqlite, DSN by postgres and mysql.
// MySQL DSNs need parseTime=true.
type Config struct {
	Driver string
	Path   string
	DSN    string
}

// Open connects to the store. The returned handle is owned by the caller and must be
// released with Close.
func Open(cfg Config, logger zerolog.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case "", DriverSQLite:
		if cfg.Path == "" {
			return nil, errs.NewValueIsRequiredError("sqlite path")
		}
		dialector = sqlite.Open(sqliteDSN(cfg.Path))
	case DriverPostgres:
		if cfg.DSN == "" {
			return nil, errs.NewValueIsRequiredError("postgres dsn")
		}
		dialector = postgres.Open(cfg.DSN)
	case DriverMySQL:
		if cfg.DSN == "" {
			return nil, errs.NewValueIsRequiredError("mysql dsn")
		}
		dialector = mysql.Open(cfg.DSN)
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"db driver",
			fmt.Errorf("%q is not one of sqlite, postgres, mysql", cfg.Driver),
		)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.New(gormWriter{logger: logger}, gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", dialector.Name(), err)
	}

	if dialector.Name() == DriverSQLite {
		// sqlite has no row locks; a single connection serializes transactions
		// instead of failing lock upgrades with SQLITE_BUSY.
		sqlDB, dbErr := db.DB()
		if dbErr != nil {
			return nil, dbErr
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

// Migrate creates or updates the four tables and their foreign keys.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&orderrepo.UpdateDTO{},
	)
}

// Close releases the connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// sqliteDSN enables foreign keys, which sqlite leaves off per connection, and waits
// on a locked database instead of failing immediately.
func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// gormWriter routes GORM's slow query and error logs into zerolog.
type gormWriter struct {
	logger zerolog.Logger
}

func (w gormWriter) Printf(format string, args ...any) {
	w.logger.Warn().Msgf(format, args...)
}
