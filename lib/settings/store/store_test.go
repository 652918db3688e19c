package store

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dbmodels "ob-forms-backend/models/db"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&dbmodels.Setting{}))
	return db
}

func TestGetCurrent(t *testing.T) {
	store := NewInstance(openTestDB(t))

	t.Run(`empty table comes back nil`, func(t *testing.T) {
		rec, err := store.GetCurrent()
		require.NoError(t, err)
		require.Nil(t, rec)
	})

	_, err := store.Create(dbmodels.Setting{DivisionOptions: "EMPLOYMENT,TUPAD"})
	require.NoError(t, err)
	_, err = store.Create(dbmodels.Setting{DivisionOptions: "EMPLOYMENT,TUPAD,GIP"})
	require.NoError(t, err)

	t.Run(`newest row wins`, func(t *testing.T) {
		rec, err := store.GetCurrent()
		require.NoError(t, err)
		require.NotNil(t, rec)
		require.Equal(t, "EMPLOYMENT,TUPAD,GIP", rec.DivisionOptions)
	})
}

func TestUpdatePassword(t *testing.T) {
	store := NewInstance(openTestDB(t))

	id, err := store.Create(dbmodels.Setting{AdminPassword: "old-hash"})
	require.NoError(t, err)

	require.NoError(t, store.UpdatePassword(id, "new-hash"))

	rec, err := store.GetCurrent()
	require.NoError(t, err)
	require.Equal(t, "new-hash", rec.AdminPassword)
}
