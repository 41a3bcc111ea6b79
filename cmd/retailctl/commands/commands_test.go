package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kleverretail/retail-cloud/internal/config"
	"github.com/kleverretail/retail-cloud/internal/db"
	"github.com/kleverretail/retail-cloud/internal/domain"
	"github.com/kleverretail/retail-cloud/internal/repository"
	"github.com/kleverretail/retail-cloud/internal/repository/dao"
	"github.com/kleverretail/retail-cloud/internal/service"
)

const fixture = `stores:
  - code: HRG-001
    name: Harrogate Superstore
    city: Harrogate
    items:
      - code: W1
        name: Widget
        price: 10
        stock: 25
staff:
  - username: jsmith
    name: Jo Smith
`

func run(t *testing.T, dbFile string, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yml"), "--db", dbFile}, args...))

	err := cmd.Execute()

	return out.String(), err
}

func placeWidgetOrder(t *testing.T, dbFile string) {
	t.Helper()

	gdb, err := db.Open(&config.DatabaseConfig{Driver: db.DriverSQLite, DSN: dbFile, LogLevel: "silent"})
	require.NoError(t, err)
	defer db.Close(gdb)

	catalogRepo := repository.NewCatalogRepository(dao.NewCatalogDAO(gdb))
	svc := service.NewOrderService(repository.NewOrderRepository(dao.NewOrderDAO(gdb)), catalogRepo, nil, nil)
	_, err = svc.CreateOrder(context.Background(), domain.OrderDraft{
		StoreCode:     "HRG-001",
		StaffUsername: "jsmith",
		Total:         decimal.RequireFromString("20"),
		Lines:         []domain.OrderDraftLine{{Name: "Widget", Price: decimal.RequireFromString("10"), Qty: 2}},
	})
	require.NoError(t, err)
}

func TestCommands(t *testing.T) {
	dbFile := filepath.Join(t.TempDir(), "retail.db")
	fixtureFile := filepath.Join(t.TempDir(), "fixtures.yml")
	require.NoError(t, os.WriteFile(fixtureFile, []byte(fixture), 0o600))

	out, err := run(t, dbFile, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "schema is up to date")

	out, err = run(t, dbFile, "seed", "--file", fixtureFile)
	require.NoError(t, err)
	assert.Contains(t, out, "created 1 stores, 1 items, 1 staff")

	out, err = run(t, dbFile, "seed", "--file", fixtureFile)
	require.NoError(t, err)
	assert.Contains(t, out, "created 0 stores, 0 items, 0 staff")

	out, err = run(t, dbFile, "stores")
	require.NoError(t, err)
	assert.Contains(t, out, "HRG-001")
	assert.Contains(t, out, "Harrogate Superstore")

	out, err = run(t, dbFile, "items", "--store", "HRG-001")
	require.NoError(t, err)
	assert.Contains(t, out, "Widget")
	assert.Contains(t, out, "10.00")

	_, err = run(t, dbFile, "items", "--store", "NOPE")
	assert.ErrorIs(t, err, service.ErrStoreNotFound)

	placeWidgetOrder(t, dbFile)

	out, err = run(t, dbFile, "orders", "--store", "HRG-001")
	require.NoError(t, err)
	assert.Contains(t, out, "jsmith")
	assert.Contains(t, out, "20.00")

	out, err = run(t, dbFile, "order", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Order #1")
	assert.Contains(t, out, "Widget")

	_, err = run(t, dbFile, "order", "99")
	assert.ErrorIs(t, err, service.ErrOrderNotFound)

	_, err = run(t, dbFile, "order", "abc")
	assert.Error(t, err)
}

func TestMigrate_Reset(t *testing.T) {
	dbFile := filepath.Join(t.TempDir(), "retail.db")

	_, err := run(t, dbFile, "seed")
	require.NoError(t, err)
	placeWidgetOrder(t, dbFile)

	out, err := run(t, dbFile, "migrate", "--reset")
	require.NoError(t, err)
	assert.Contains(t, out, "dropped all tables")
	assert.Contains(t, out, "schema is up to date")

	out, err = run(t, dbFile, "orders")
	require.NoError(t, err)
	assert.NotContains(t, out, "jsmith")

	out, err = run(t, dbFile, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "created 1 stores, 0 items, 1 staff")
}

func TestSeed_DefaultFixture(t *testing.T) {
	dbFile := filepath.Join(t.TempDir(), "retail.db")

	out, err := run(t, dbFile, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "created 1 stores, 0 items, 1 staff")

	out, err = run(t, dbFile, "stores")
	require.NoError(t, err)
	assert.Contains(t, out, "HRG-001")
}
