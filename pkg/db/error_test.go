package db

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type numberedRow struct {
	ID     int64  `gorm:"primaryKey"`
	Number string `gorm:"type:text;not null;uniqueIndex"`
}

func TestIsDuplicateKeyErr(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&numberedRow{}))

	require.NoError(t, conn.Create(&numberedRow{ID: 1, Number: "INV-202608-0001"}).Error)

	dup := conn.Create(&numberedRow{ID: 2, Number: "INV-202608-0001"}).Error
	require.Error(t, dup)
	require.True(t, IsDuplicateKeyErr(dup))

	require.True(t, IsDuplicateKeyErr(gorm.ErrDuplicatedKey))
	require.False(t, IsDuplicateKeyErr(nil))
	require.False(t, IsDuplicateKeyErr(errors.New("connection refused")))
	require.False(t, IsDuplicateKeyErr(gorm.ErrRecordNotFound))
}
