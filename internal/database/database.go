package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"github.com/trajlab/annotator-api/internal/models"
	"github.com/trajlab/annotator-api/pkg/config"
	apperrors "github.com/trajlab/annotator-api/pkg/errors"
)

// tablePrefixes maps each deployment environment to the prefix applied to
// every table name. Unknown environments fall back to development.
var tablePrefixes = map[string]string{
	config.EnvDevelopment: "dev_",
	config.EnvProduction:  "prod_",
	config.EnvTest1:       "test1_",
}

// Names holds the fully prefixed table names for one environment.
type Names struct {
	Annotations string
	Subtasks    string
}

// TablePrefix returns the table prefix for the given environment
func TablePrefix(env string) string {
	if prefix, ok := tablePrefixes[env]; ok {
		return prefix
	}
	return tablePrefixes[config.EnvDevelopment]
}

// TableNames derives the annotations and subtasks table names for the
// given environment
func TableNames(env string) Names {
	prefix := TablePrefix(env)
	return Names{
		Annotations: prefix + "annotations",
		Subtasks:    prefix + "subtasks",
	}
}

type DB struct {
	*gorm.DB

	names Names
}

// TableNames returns the prefixed table names this connection operates on
func (db *DB) TableNames() Names {
	return db.names
}

// Initialize creates a new database connection for the configured driver
// and environment. The environment's table prefix is applied through the
// gorm naming strategy so every model maps to its prefixed table.
func Initialize(cfg config.DatabaseConfig, env string) (*DB, error) {
	logLevel := logger.Error
	if cfg.Verbose {
		logLevel = logger.Info
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NamingStrategy: schema.NamingStrategy{
			TablePrefix: TablePrefix(env),
		},
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	var dialector gorm.Dialector
	switch cfg.Driver {
	case "mysql":
		dsn, err := mysqlDSN(cfg)
		if err != nil {
			return nil, err
		}
		dialector = mysql.Open(dsn)
	default:
		// Ensure the database directory exists
		dir := filepath.Dir(cfg.Path)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		dialector = sqlite.Open(sqliteDSN(cfg.Path))
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeDatabaseConnection, "failed to connect to database")
	}

	// Get underlying SQL database to configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying SQL database: %w", err)
	}

	switch cfg.Driver {
	case "mysql":
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	default:
		// sqlite permits one writer at a time; a small pool keeps
		// concurrent submissions queued on the busy timeout instead of
		// piling up connections that all contend for the same lock.
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetMaxOpenConns(4)
	}

	return &DB{DB: db, names: TableNames(env)}, nil
}

// sqliteDSN appends the connection options every sqlite handle needs:
// _txlock=immediate takes the write lock at BEGIN so transactions
// serialize instead of deadlocking on lock upgrade, and _busy_timeout
// makes a blocked writer wait for the lock rather than fail with
// SQLITE_BUSY.
func sqliteDSN(path string) string {
	return path + "?_busy_timeout=5000&_txlock=immediate"
}

// mysqlDSN applies the TLS-on-connect flag to the configured connection string
func mysqlDSN(cfg config.DatabaseConfig) (string, error) {
	parsed, err := mysqldriver.ParseDSN(cfg.DSN)
	if err != nil {
		return "", fmt.Errorf("invalid mysql dsn: %w", err)
	}
	if cfg.TLS && parsed.TLSConfig == "" {
		parsed.TLSConfig = "true"
	}
	parsed.ParseTime = true
	return parsed.FormatDSN(), nil
}

// Close closes the database connection
func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying SQL database: %w", err)
	}
	return sqlDB.Close()
}

// HealthCheck verifies the database connection is working
func (db *DB) HealthCheck() error {
	if db == nil || db.DB == nil {
		return fmt.Errorf("database not initialized")
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying SQL database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}

// EnsureSchema creates the annotations and subtasks tables if they are
// absent. Under the unique policy it additionally enforces at most one
// annotation per video with a database-level unique index, which removes
// the check-then-insert race between concurrent submissions. Safe to call
// repeatedly.
func (db *DB) EnsureSchema(policy string) error {
	if err := db.DB.AutoMigrate(&models.Annotation{}, &models.Subtask{}); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeSchemaMigration, "schema migration failed")
	}

	if policy == config.PolicyUnique {
		indexName := fmt.Sprintf("idx_%s_video_unique", db.names.Annotations)
		if !db.DB.Migrator().HasIndex(&models.Annotation{}, indexName) {
			stmt := fmt.Sprintf("CREATE UNIQUE INDEX %s ON %s(video_filename)",
				indexName, db.names.Annotations)
			if err := db.DB.Exec(stmt).Error; err != nil {
				return apperrors.Wrapf(err, apperrors.ErrCodeSchemaMigration,
					"creating unique index on %s", db.names.Annotations)
			}
		}
	}

	log.Printf("Schema ready: %s, %s", db.names.Annotations, db.names.Subtasks)
	return nil
}

// DropSchema drops both tables, children first. Used by the migrate CLI.
func (db *DB) DropSchema() error {
	if err := db.DB.Migrator().DropTable(&models.Subtask{}, &models.Annotation{}); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeSchemaMigration, "dropping tables")
	}
	return nil
}

// HasSchema reports whether both tables exist
func (db *DB) HasSchema() bool {
	m := db.DB.Migrator()
	return m.HasTable(&models.Annotation{}) && m.HasTable(&models.Subtask{})
}
