package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// stubDB records the SQL and arguments the executor produces.
type stubDB struct {
	sql     []string
	args    [][]any
	execErr error
	exists  bool
}

func (s *stubDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	s.sql = append(s.sql, sql)
	s.args = append(s.args, args)
	return pgconn.CommandTag{}, s.execErr
}

func (s *stubDB) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("stubDB: Query not supported")
}

func (s *stubDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	s.sql = append(s.sql, sql)
	s.args = append(s.args, args)
	return stubRow{exists: s.exists}
}

type stubRow struct {
	exists bool
}

func (r stubRow) Scan(dest ...any) error {
	if len(dest) == 1 {
		if b, ok := dest[0].(*bool); ok {
			*b = r.exists
		}
	}
	return nil
}

// TestExecutorInsertSQL checks the insert statement is parameterized
// with deterministic column order.
func TestExecutorInsertSQL(t *testing.T) {
	db := &stubDB{}
	exec := NewQueryExecutor(db)

	err := exec.Insert(context.Background(), CampaignsTable, map[string]any{
		"id":    int64(1),
		"title": "Save The Planet",
		"slug":  "save-the-planet",
	})
	if err != nil {
		t.Fatalf("Insert error: %v", err)
	}
	want := `INSERT INTO fundrik_campaigns (id, slug, title) VALUES ($1, $2, $3)`
	if db.sql[0] != want {
		t.Fatalf("unexpected SQL:\n got %q\nwant %q", db.sql[0], want)
	}
	if len(db.args[0]) != 3 || db.args[0][0] != int64(1) || db.args[0][1] != "save-the-planet" {
		t.Fatalf("unexpected args: %v", db.args[0])
	}
}

// TestExecutorInsertBindsDigitStringID ensures a digit-string identity
// binds as an integer on insert, matching the existence probes that
// precede it in the save flow.
func TestExecutorInsertBindsDigitStringID(t *testing.T) {
	db := &stubDB{}
	exec := NewQueryExecutor(db)

	err := exec.Insert(context.Background(), CampaignsTable, map[string]any{
		"id":    "42",
		"title": "Save The Planet",
	})
	if err != nil {
		t.Fatalf("Insert error: %v", err)
	}
	if db.args[0][0] != int64(42) {
		t.Fatalf("digit-string id must bind as integer, got %T(%v)", db.args[0][0], db.args[0][0])
	}
	if db.args[0][1] != "Save The Planet" {
		t.Fatalf("non-id columns must bind unchanged: %v", db.args[0])
	}
}

// TestExecutorUpdateSQL checks the update keys the last placeholder by
// primary key and never inlines values.
func TestExecutorUpdateSQL(t *testing.T) {
	db := &stubDB{}
	exec := NewQueryExecutor(db)

	err := exec.Update(context.Background(), CampaignsTable, map[string]any{
		"slug":  "new-slug",
		"title": "New Title",
	}, int64(7))
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	want := `UPDATE fundrik_campaigns SET slug = $1, title = $2 WHERE id = $3`
	if db.sql[0] != want {
		t.Fatalf("unexpected SQL:\n got %q\nwant %q", db.sql[0], want)
	}
	if db.args[0][2] != int64(7) {
		t.Fatalf("id must be the final argument: %v", db.args[0])
	}
}

func TestExecutorDeleteSQL(t *testing.T) {
	db := &stubDB{}
	exec := NewQueryExecutor(db)

	if err := exec.Delete(context.Background(), CampaignsTable, int64(3)); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if db.sql[0] != `DELETE FROM fundrik_campaigns WHERE id = $1` {
		t.Fatalf("unexpected SQL: %q", db.sql[0])
	}
}

// TestExecutorExists covers both existence probes and the identity
// binding: digit strings bind as integers, opaque strings as-is.
func TestExecutorExists(t *testing.T) {
	db := &stubDB{exists: true}
	exec := NewQueryExecutor(db)

	ok, err := exec.Exists(context.Background(), CampaignsTable, "42")
	if err != nil || !ok {
		t.Fatalf("Exists: got (%v, %v)", ok, err)
	}
	if db.args[0][0] != int64(42) {
		t.Fatalf("digit-string identity must bind as integer, got %T", db.args[0][0])
	}

	_, err = exec.ExistsByColumn(context.Background(), CampaignsTable, "slug", "save-the-planet")
	if err != nil {
		t.Fatalf("ExistsByColumn error: %v", err)
	}
	if db.sql[1] != `SELECT EXISTS (SELECT 1 FROM fundrik_campaigns WHERE slug = $1)` {
		t.Fatalf("unexpected SQL: %q", db.sql[1])
	}
	if db.args[1][0] != "save-the-planet" {
		t.Fatalf("opaque value must bind unchanged: %v", db.args[1][0])
	}
}

// TestExecutorUpdateDriverFailure ensures only an explicit driver error
// is reported as failure.
func TestExecutorUpdateDriverFailure(t *testing.T) {
	db := &stubDB{execErr: errors.New("connection reset")}
	exec := NewQueryExecutor(db)

	err := exec.Update(context.Background(), CampaignsTable, map[string]any{"title": "T"}, int64(1))
	if err == nil {
		t.Fatalf("expected driver failure to surface")
	}
}
