package uuident

import (
	"context"
	"os"
	"strings"
	"testing"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/uuident/dialect"
	"github.com/syssam/uuident/dialect/sql"
)

// TestMySQLIntegration exercises binary uuid storage against a real
// MySQL server. Set UUIDENT_MYSQL_DSN to run it, e.g.
//
//	UUIDENT_MYSQL_DSN="root:pass@tcp(localhost:3306)/test" go test ./...
func TestMySQLIntegration(t *testing.T) {
	dsn := os.Getenv("UUIDENT_MYSQL_DSN")
	if dsn == "" {
		t.Skip("UUIDENT_MYSQL_DSN not set")
	}
	drv, err := sql.Open(dialect.MySQL, dsn)
	require.NoError(t, err)
	defer drv.Close()
	ctx := context.Background()

	err = drv.Exec(ctx, "CREATE TABLE IF NOT EXISTS uuident_tickets (uuid BINARY(16) PRIMARY KEY, subject VARCHAR(255))", []any{}, nil)
	require.NoError(t, err)
	defer func() {
		_ = drv.Exec(ctx, "DROP TABLE uuident_tickets", []any{}, nil)
	}()

	store := NewStore(drv, "uuident_tickets", New(WithBinary(true)))

	rec := Attributes{"subject": "mysql"}
	require.NoError(t, store.Create(ctx, rec))
	id, err := uuid.FromBytes(rec["uuid"].([]byte))
	require.NoError(t, err)

	got, err := store.ByUUID(ctx, strings.ToUpper(id.String()))
	require.NoError(t, err)
	assert.Equal(t, id.String(), got["uuid"])
}

// TestPostgresIntegration exercises string uuid storage against a real
// PostgreSQL server. Set UUIDENT_POSTGRES_DSN to run it.
func TestPostgresIntegration(t *testing.T) {
	dsn := os.Getenv("UUIDENT_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("UUIDENT_POSTGRES_DSN not set")
	}
	drv, err := sql.Open(dialect.Postgres, dsn)
	require.NoError(t, err)
	defer drv.Close()
	ctx := context.Background()

	err = drv.Exec(ctx, "CREATE TABLE IF NOT EXISTS uuident_tickets (uuid uuid PRIMARY KEY, subject TEXT)", []any{}, nil)
	require.NoError(t, err)
	defer func() {
		_ = drv.Exec(ctx, "DROP TABLE uuident_tickets", []any{}, nil)
	}()

	store := NewStore(drv, "uuident_tickets", New())

	rec := Attributes{"subject": "postgres"}
	require.NoError(t, store.Create(ctx, rec))
	value := rec["uuid"].(string)

	got, err := store.ByUUID(ctx, value)
	require.NoError(t, err)
	assert.Equal(t, value, asString(got["uuid"]))

	ok, err := store.ExistsUUID(ctx, value)
	require.NoError(t, err)
	assert.True(t, ok)
}
