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
	require.NoError(t, db.AutoMigrate(
		&dbmodels.OfficialBusiness{},
		&dbmodels.Employee{},
		&dbmodels.Setting{},
	))
	return db
}

func TestReplaceAllPreservesIDs(t *testing.T) {
	db := openTestDB(t)
	store := NewInstance(db)

	// leftover rows that the import has to wipe out
	require.NoError(t, db.Create(&dbmodels.OfficialBusiness{
		DateCreated: "2023-12-01T08:00:00Z",
		DateOfOB:    "2023-12-01",
		Purpose:     "Stale record",
	}).Error)
	require.NoError(t, db.Create(&dbmodels.Employee{OBID: 1, Name: "Stale Employee"}).Error)

	forms := []dbmodels.OfficialBusiness{
		{
			BaseModel:   dbmodels.BaseModel{ID: 7},
			DateCreated: "2024-01-05T08:00:00Z",
			DateOfOB:    "2024-01-05",
			Purpose:     "Imported record",
		},
	}
	employees := []dbmodels.Employee{
		{BaseModel: dbmodels.BaseModel{ID: 11}, OBID: 7, Name: "Imported Employee", Position: "Clerk"},
	}
	settings := []dbmodels.Setting{
		{BaseModel: dbmodels.BaseModel{ID: 3}, DivisionOptions: "EMPLOYMENT,TUPAD"},
	}

	require.NoError(t, store.ReplaceAll(forms, employees, settings))

	gotForms, err := store.ListForms()
	require.NoError(t, err)
	require.Len(t, gotForms, 1)
	require.EqualValues(t, 7, gotForms[0].ID)
	require.Equal(t, "Imported record", gotForms[0].Purpose)

	gotEmployees, err := store.ListEmployees()
	require.NoError(t, err)
	require.Len(t, gotEmployees, 1)
	require.EqualValues(t, 11, gotEmployees[0].ID)
	require.EqualValues(t, 7, gotEmployees[0].OBID)

	gotSettings, err := store.ListSettings()
	require.NoError(t, err)
	require.Len(t, gotSettings, 1)
	require.EqualValues(t, 3, gotSettings[0].ID)
}

func TestReplaceAllEmptyBundleClearsTables(t *testing.T) {
	db := openTestDB(t)
	store := NewInstance(db)

	require.NoError(t, db.Create(&dbmodels.OfficialBusiness{
		DateCreated: "2024-01-05T08:00:00Z",
		DateOfOB:    "2024-01-05",
	}).Error)

	require.NoError(t, store.ReplaceAll(nil, nil, nil))

	gotForms, err := store.ListForms()
	require.NoError(t, err)
	require.Empty(t, gotForms)
}
