package catalog

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

// Dialect is a supported SQL backend.
type Dialect string

const (
	MySQL  Dialect = "mysql"
	SQLite Dialect = "sqlite"
)

// OpenDB opens the export target named by dsn. "sqlite:" and "file:"
// prefixes and *.db / *.sqlite paths select SQLite; anything else is
// treated as a MySQL DSN or mysql:// URL.
func OpenDB(dsn string) (*sql.DB, Dialect, error) {
	if dsn == "" {
		return nil, "", fmt.Errorf("missing export dsn")
	}

	if path, ok := sqlitePath(dsn); ok {
		db, err := sql.Open("sqlite", path)
		if err != nil {
			return nil, "", err
		}
		db.SetMaxOpenConns(1)
		return db, SQLite, nil
	}

	normalized, err := mysqlDSN(dsn)
	if err != nil {
		return nil, "", err
	}
	db, err := sql.Open("mysql", normalized)
	if err != nil {
		return nil, "", err
	}

	db.SetConnMaxLifetime(1 * time.Hour)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	return db, MySQL, nil
}

func sqlitePath(dsn string) (string, bool) {
	switch {
	case strings.HasPrefix(dsn, "sqlite://"):
		return strings.TrimPrefix(dsn, "sqlite://"), true
	case strings.HasPrefix(dsn, "sqlite:"):
		return strings.TrimPrefix(dsn, "sqlite:"), true
	case strings.HasPrefix(dsn, "file:"), dsn == ":memory:":
		return dsn, true
	case strings.HasSuffix(dsn, ".db"), strings.HasSuffix(dsn, ".sqlite"):
		return dsn, true
	}
	return "", false
}
