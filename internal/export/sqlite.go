package export

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
	"github.com/routetools/pgrconv/internal/convert"
)

// SQLite column types per Avro tag. SQLite has no separate 64-bit integer
// type; INTEGER holds both.
var sqliteTypeMap = map[string]string{
	"int":    "INTEGER",
	"long":   "INTEGER",
	"double": "REAL",
	"string": "TEXT",
}

// writeSQLite materializes the records as a typed table in a fresh SQLite
// database file. NULL carries the null markers natively.
func writeSQLite(path string, res *convert.Result) error {
	// A stale database from a previous run would accumulate rows.
	os.Remove(path)

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("failed to create sqlite database: %w", err)
	}
	defer db.Close()

	table := res.Schema.Name
	if table == "" {
		table = "pgrouting"
	}
	cols := res.Schema.Columns()

	defs := make([]string, len(cols))
	for i, col := range cols {
		defs[i] = fmt.Sprintf("%s %s", col, sqliteTypeMap[res.Schema.FieldType(col).AvroType()])
	}
	createSQL := fmt.Sprintf("CREATE TABLE %s (%s)", table, strings.Join(defs, ", "))
	if _, err := db.Exec(createSQL); err != nil {
		return fmt.Errorf("failed to create table %s: %w", table, err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	values := make([]interface{}, len(cols))
	for _, rec := range res.Records {
		for i, col := range cols {
			values[i] = rec[col]
		}
		insertSQL, args, err := sq.Insert(table).Columns(cols...).Values(values...).ToSql()
		if err != nil {
			return fmt.Errorf("failed to build insert: %w", err)
		}
		if _, err := tx.Exec(insertSQL, args...); err != nil {
			return fmt.Errorf("failed to insert row into %s: %w", table, err)
		}
	}

	return tx.Commit()
}
