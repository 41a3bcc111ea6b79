package dao

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/kleverretail/retail-cloud/internal/config"
	"github.com/kleverretail/retail-cloud/internal/db"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := db.Open(&config.DatabaseConfig{
		Driver:   db.DriverSQLite,
		DSN:      filepath.Join(t.TempDir(), "retail.db"),
		LogLevel: "silent",
	})
	require.NoError(t, err)
	require.NoError(t, InitTables(gdb))
	t.Cleanup(func() { _ = db.Close(gdb) })

	return gdb
}

func strPtr(s string) *string {
	return &s
}

func seedStore(t *testing.T, gdb *gorm.DB, code, name string) Store {
	t.Helper()

	store, err := NewCatalogDAO(gdb).InsertStore(context.Background(), Store{
		Code:   code,
		Name:   name,
		Active: true,
	})
	require.NoError(t, err)

	return store
}
