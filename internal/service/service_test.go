package service

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"crm-backend/internal/pkg/config"
	"crm-backend/internal/pkg/database"
	"crm-backend/internal/pkg/logger"
)

func TestMain(m *testing.M) {
	// service层会写日志，测试前初始化到stdout
	if err := logger.Init(&config.LogConfig{Level: "error", Format: "console", Output: "stdout"}); err != nil {
		fmt.Printf("初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	os.Exit(m.Run())
}

// newTestDB 创建每个测试独立的内存数据库并完成表迁移
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
