package sqlite

import (
	"fmt"

	"github.com/golang-migrate/migrate"
	"github.com/golang-migrate/migrate/database/sqlite3"
	_ "github.com/golang-migrate/migrate/source/file"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"

	"reviewcash/pkg/config"
)

const (
	UserTable = "users"
	TaskTable = "tasks"
)

// BuildDSN turns a database file path into a sqlite3 DSN. The busy
// timeout makes concurrent writers queue instead of failing outright,
// and foreign keys are enforced per connection.
func BuildDSN(path string) string {
	return fmt.Sprintf("file:%s?_busy_timeout=5000&_foreign_keys=on", path)
}

// Open opens the database file, creating it if absent, and verifies the
// connection with a ping.
func Open(cfg config.SQLiteConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite3", BuildDSN(cfg.Path))
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func MigrateDB(db *sqlx.DB, cfg config.SQLiteConfig) {
	driver, err := sqlite3.WithInstance(db.DB, &sqlite3.Config{})
	if err != nil {
		logrus.Fatalf("couldn't get database instance for running migrations; %s", err.Error())
	}

	m, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", cfg.Migrations), "sqlite3", driver)
	if err != nil {
		logrus.Fatalf("couldn't create migrate instance; %s", err.Error())
	}

	if err := m.Up(); err != nil {
		if err.Error() == "no change" {
			// schema already current
		} else {
			logrus.Fatalf("couldn't run database migrations; %s", err.Error())
		}
	} else {
		logrus.Info("database migration was run successfully")
	}
}
