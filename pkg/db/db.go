package db

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/railzwaylabs/vaultgate/internal/config"
)

// Open connects to the configured database. SQLite (pure Go driver) serves
// local development and tests; postgres serves real deployments.
func Open(cfg config.Config) (*gorm.DB, error) {
	gcfg := &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)}

	switch cfg.DBDriver {
	case "sqlite", "":
		return gorm.Open(sqlite.Open(cfg.DBDSN), gcfg)
	case "postgres":
		return gorm.Open(postgres.Open(cfg.DBDSN), gcfg)
	default:
		return nil, fmt.Errorf("db: unsupported driver %q", cfg.DBDriver)
	}
}
