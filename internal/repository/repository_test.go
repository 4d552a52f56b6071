package repository

import (
	"fmt"
	"strings"
	"testing"

	"go-apparel-stock/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "failed to open sqlite")
	require.NoError(t, conn.AutoMigrate(&model.Item{}, &model.Sale{}, &model.Option{}))
	return conn
}
