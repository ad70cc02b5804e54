package database

import (
	"log"
	"strings"
	"time"

	gormmysql "gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	// Registers the cgo-free "sqlite" driver with database/sql.
	_ "modernc.org/sqlite"
)

// maxOpenConns caps the pooled database sessions. Every transactional
// operation holds exactly one connection for its duration; callers queue when
// the pool is exhausted.
const maxOpenConns = 10

func Connect(dsn string) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	switch {
	case strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://"):
		log.Println("Connecting to PostgreSQL...")
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	case strings.Contains(dsn, "@tcp("):
		log.Println("Connecting to MySQL...")
		db, err = gorm.Open(gormmysql.Open(dsn), &gorm.Config{})
	default:
		log.Println("Using SQLite for local development:", dsn)
		db, err = gorm.Open(
			gormsqlite.New(gormsqlite.Config{
				DriverName: "sqlite",
				DSN:        dsn,
			}),
			&gorm.Config{},
		)
	}
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if strings.Contains(dsn, ":memory:") {
		// A pooled in-memory sqlite handle is a distinct database per
		// connection; keep a single one so tests see one schema.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(maxOpenConns)
		sqlDB.SetMaxIdleConns(maxOpenConns)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	return db, nil
}
