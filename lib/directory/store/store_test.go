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
	require.NoError(t, db.AutoMigrate(&dbmodels.DirectoryEmployee{}))
	return db
}

func sampleEmployee() dbmodels.DirectoryEmployee {
	return dbmodels.DirectoryEmployee{
		EmployeeID:   "EMP-001",
		Firstname:    "Amanda",
		MiddleName:   "Santos",
		LastName:     "Albaño",
		Position:     "Program Coordinator",
		AssignedUnit: "TUPAD",
	}
}

func TestBuildFullName(t *testing.T) {
	t.Run(`with middle initial`, func(t *testing.T) {
		emp := sampleEmployee()
		require.Equal(t, "Amanda S. Albaño", emp.BuildFullName())
	})
	t.Run(`no middle name leaves no double space`, func(t *testing.T) {
		emp := sampleEmployee()
		emp.MiddleName = ""
		require.Equal(t, "Amanda Albaño", emp.BuildFullName())
	})
}

func TestNameVariants(t *testing.T) {
	emp := sampleEmployee()
	emp.FullName = emp.BuildFullName()
	require.Equal(t, []string{
		"Amanda S. Albaño",
		"Amanda Albaño",
		"Albaño, Amanda",
	}, emp.NameVariants())
}

func TestCreateSetsFullName(t *testing.T) {
	store := NewInstance(openTestDB(t))

	id, err := store.Create(sampleEmployee())
	require.NoError(t, err)
	require.NotZero(t, id)

	rec, err := store.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, rec)
	require.Equal(t, "Amanda S. Albaño", rec.FullName)

	t.Run(`missing last name is rejected`, func(t *testing.T) {
		bad := sampleEmployee()
		bad.LastName = ""
		_, err := store.Create(bad)
		require.Error(t, err)
	})
}

func TestFindByFormName(t *testing.T) {
	store := NewInstance(openTestDB(t))

	_, err := store.Create(sampleEmployee())
	require.NoError(t, err)

	t.Run(`full name with middle initial`, func(t *testing.T) {
		rec, err := store.FindByFormName("Amanda S. Albaño")
		require.NoError(t, err)
		require.NotNil(t, rec)
		require.Equal(t, "Program Coordinator", rec.Position)
	})

	t.Run(`first and last name without the initial`, func(t *testing.T) {
		rec, err := store.FindByFormName("Amanda Albaño")
		require.NoError(t, err)
		require.NotNil(t, rec)
	})

	t.Run(`unknown name comes back nil`, func(t *testing.T) {
		rec, err := store.FindByFormName("Nobody Here")
		require.NoError(t, err)
		require.Nil(t, rec)
	})

	t.Run(`empty name short-circuits`, func(t *testing.T) {
		rec, err := store.FindByFormName("")
		require.NoError(t, err)
		require.Nil(t, rec)
	})
}

func TestFind(t *testing.T) {
	store := NewInstance(openTestDB(t))

	_, err := store.Create(sampleEmployee())
	require.NoError(t, err)
	other := sampleEmployee()
	other.Firstname = "Bruno"
	other.LastName = "Cruz"
	other.AssignedUnit = "EMPLOYMENT"
	_, err = store.Create(other)
	require.NoError(t, err)

	t.Run(`empty search lists everyone sorted by name`, func(t *testing.T) {
		list, err := store.Find("")
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, "Amanda S. Albaño", list[0].FullName)
	})

	t.Run(`search matches assigned unit`, func(t *testing.T) {
		list, err := store.Find("EMPLOYMENT")
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, "Bruno S. Cruz", list[0].FullName)
	})
}

func TestUpdate(t *testing.T) {
	store := NewInstance(openTestDB(t))

	id, err := store.Create(sampleEmployee())
	require.NoError(t, err)

	upd := sampleEmployee()
	upd.Firstname = "Amalia"
	upd.MiddleName = ""
	found, err := store.Update(id, upd)
	require.NoError(t, err)
	require.True(t, found)

	rec, err := store.GetByID(id)
	require.NoError(t, err)
	require.Equal(t, "Amalia Albaño", rec.FullName)

	t.Run(`missing record reports not found`, func(t *testing.T) {
		found, err := store.Update(9999, sampleEmployee())
		require.NoError(t, err)
		require.False(t, found)
	})
}

func TestDelete(t *testing.T) {
	store := NewInstance(openTestDB(t))

	id, err := store.Create(sampleEmployee())
	require.NoError(t, err)

	found, err := store.Delete(id)
	require.NoError(t, err)
	require.True(t, found)

	found, err = store.Delete(id)
	require.NoError(t, err)
	require.False(t, found)
}

func TestReplaceAll(t *testing.T) {
	store := NewInstance(openTestDB(t))

	_, err := store.Create(sampleEmployee())
	require.NoError(t, err)

	replacement := sampleEmployee()
	replacement.Firstname = "Carla"
	replacement.LastName = "Reyes"
	require.NoError(t, store.ReplaceAll([]dbmodels.DirectoryEmployee{replacement}))

	list, err := store.Find("")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "Carla S. Reyes", list[0].FullName)
}
