package postgres

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of pgxpool.Pool the executor needs. Narrowing the
// dependency keeps the executor testable with a stub connection.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// QueryExecutor implements port.QueryExecutor against PostgreSQL. It is
// the single component that builds SQL text: table and column names are
// interpolated only from internal constants, every value travels as a
// bound parameter.
type QueryExecutor struct {
	db DB
}

// NewQueryExecutor returns an executor over the given connection.
func NewQueryExecutor(db DB) *QueryExecutor {
	return &QueryExecutor{db: db}
}

// GetByID returns the row keyed by id as a column→value map, or nil
// when no row matches.
func (e *QueryExecutor) GetByID(ctx context.Context, table string, id any) (map[string]any, error) {
	sql := fmt.Sprintf(`SELECT * FROM %s WHERE id = $1`, table)
	rows, err := e.db.Query(ctx, sql, bindID(id))
	if err != nil {
		return nil, err
	}
	maps, err := collectRowMaps(rows)
	if err != nil {
		return nil, err
	}
	if len(maps) == 0 {
		return nil, nil
	}
	return maps[0], nil
}

// GetAll returns every row of the table in index-scan order.
func (e *QueryExecutor) GetAll(ctx context.Context, table string) ([]map[string]any, error) {
	rows, err := e.db.Query(ctx, fmt.Sprintf(`SELECT * FROM %s`, table))
	if err != nil {
		return nil, err
	}
	return collectRowMaps(rows)
}

// Exists reports whether a row with the given primary key exists.
func (e *QueryExecutor) Exists(ctx context.Context, table string, id any) (bool, error) {
	return e.existsWhere(ctx, table, "id", bindID(id))
}

// ExistsByColumn reports whether any row matches column = value.
func (e *QueryExecutor) ExistsByColumn(ctx context.Context, table, column string, value any) (bool, error) {
	return e.existsWhere(ctx, table, column, value)
}

func (e *QueryExecutor) existsWhere(ctx context.Context, table, column string, value any) (bool, error) {
	sql := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`, table, column)
	var exists bool
	if err := e.db.QueryRow(ctx, sql, value).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// Insert issues a parameterized insert of the column→value map. The
// primary-key column goes through the same identity binding as the
// keyed statements, so a digit-string id compares and stores as bigint.
func (e *QueryExecutor) Insert(ctx context.Context, table string, data map[string]any) error {
	columns := sortedColumns(data)
	placeholders := make([]string, len(columns))
	args := make([]any, len(columns))
	for i, column := range columns {
		placeholders[i] = "$" + strconv.Itoa(i+1)
		if column == "id" {
			args[i] = bindID(data[column])
		} else {
			args[i] = data[column]
		}
	}
	sql := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`,
		table, strings.Join(columns, ", "), strings.Join(placeholders, ", "))
	_, err := e.db.Exec(ctx, sql, args...)
	return err
}

// Update issues a parameterized update keyed by primary key. An update
// that matches zero rows is not an error; only an explicit failure from
// the driver is reported.
func (e *QueryExecutor) Update(ctx context.Context, table string, data map[string]any, id any) error {
	columns := sortedColumns(data)
	assignments := make([]string, len(columns))
	args := make([]any, 0, len(columns)+1)
	for i, column := range columns {
		assignments[i] = fmt.Sprintf("%s = $%d", column, i+1)
		args = append(args, data[column])
	}
	args = append(args, bindID(id))
	sql := fmt.Sprintf(`UPDATE %s SET %s WHERE id = $%d`,
		table, strings.Join(assignments, ", "), len(columns)+1)
	_, err := e.db.Exec(ctx, sql, args...)
	return err
}

// Delete issues a parameterized delete by primary key.
func (e *QueryExecutor) Delete(ctx context.Context, table string, id any) error {
	_, err := e.db.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, table), bindID(id))
	return err
}

// Query executes a raw statement. Reserved for migrations and
// maintenance; never fed user input.
func (e *QueryExecutor) Query(ctx context.Context, sql string) error {
	_, err := e.db.Exec(ctx, sql)
	return err
}

// bindID picks the parameter representation for an identity value. The
// identity may arrive as a numeric id or an opaque string; a string
// holding digits is bound as an integer so it compares against bigint
// key columns, anything else is bound as it arrived.
func bindID(id any) any {
	if s, ok := id.(string); ok {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n
		}
	}
	return id
}

// sortedColumns returns the map keys in a stable order so generated SQL
// is deterministic.
func sortedColumns(data map[string]any) []string {
	columns := make([]string, 0, len(data))
	for column := range data {
		columns = append(columns, column)
	}
	sort.Strings(columns)
	return columns
}

// collectRowMaps drains rows into column→value maps using the result's
// field descriptions.
func collectRowMaps(rows pgx.Rows) ([]map[string]any, error) {
	defer rows.Close()
	var out []map[string]any
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, err
		}
		fields := rows.FieldDescriptions()
		row := make(map[string]any, len(fields))
		for i, field := range fields {
			row[field.Name] = values[i]
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	return out, nil
}
