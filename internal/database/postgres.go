package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/routetools/pgrconv/internal/convert"
)

// PostgreSQL column types per Avro tag. All columns are nullable; the dump
// carries explicit null markers.
var pgTypeMap = map[string]string{
	"int":    "INTEGER",
	"long":   "BIGINT",
	"double": "DOUBLE PRECISION",
	"string": "TEXT",
}

// PostgresLoader loads a converted dump into a live PostgreSQL database,
// the dump's native target.
type PostgresLoader struct {
	pool *pgxpool.Pool
	qb   squirrel.StatementBuilderType
}

func NewPostgresLoader() *PostgresLoader {
	return &PostgresLoader{
		qb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (p *PostgresLoader) Connect(ctx context.Context, url string) error {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}
	p.pool = pool
	return nil
}

func (p *PostgresLoader) Close() {
	if p.pool != nil {
		p.pool.Close()
	}
}

func (p *PostgresLoader) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// Load creates the table from the schema and inserts every record in one
// batch round trip. An empty table name falls back to the name captured
// from the CREATE TABLE line.
func (p *PostgresLoader) Load(ctx context.Context, table string, res *convert.Result) error {
	if table == "" {
		table = res.Schema.Name
	}
	if table == "" {
		table = "pgrouting"
	}
	cols := res.Schema.Columns()

	defs := make([]string, len(cols))
	for i, col := range cols {
		defs[i] = fmt.Sprintf("%s %s", col, pgTypeMap[res.Schema.FieldType(col).AvroType()])
	}
	createSQL := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", table, strings.Join(defs, ", "))
	if _, err := p.pool.Exec(ctx, createSQL); err != nil {
		return fmt.Errorf("failed to create table %s: %w", table, err)
	}

	batch := &pgx.Batch{}
	values := make([]interface{}, len(cols))
	for _, rec := range res.Records {
		for i, col := range cols {
			values[i] = rec[col]
		}
		insertSQL, args, err := p.qb.Insert(table).Columns(cols...).Values(values...).ToSql()
		if err != nil {
			return fmt.Errorf("failed to build insert: %w", err)
		}
		batch.Queue(insertSQL, args...)
	}

	br := p.pool.SendBatch(ctx, batch)
	defer br.Close()
	for range res.Records {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("failed to insert into %s: %w", table, err)
		}
	}
	return nil
}
