package store

import (
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/migrator"
	"gorm.io/gorm/schema"
)

// sqliteDialector keeps numeric columns as text. SQLite gives a numeric
// column NUMERIC affinity and would store long decimals as REAL.
type sqliteDialector struct {
	*sqlite.Dialector
}

// OpenSQLite returns the gorm dialector for a sqlite database
func OpenSQLite(dsn string) gorm.Dialector {
	return sqliteDialector{Dialector: &sqlite.Dialector{DSN: dsn}}
}

func (d sqliteDialector) DataTypeOf(field *schema.Field) string {
	if strings.EqualFold(string(field.DataType), "numeric") {
		return "text"
	}
	return d.Dialector.DataTypeOf(field)
}

func (d sqliteDialector) Migrator(db *gorm.DB) gorm.Migrator {
	return sqlite.Migrator{Migrator: migrator.Migrator{Config: migrator.Config{
		DB:                          db,
		Dialector:                   d,
		CreateIndexAfterCreateTable: true,
	}}}
}
