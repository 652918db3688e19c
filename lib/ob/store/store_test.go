package store

import (
	"fmt"
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
		&dbmodels.DirectoryEmployee{},
		&dbmodels.Setting{},
	))
	return db
}

func sampleRecord(dateCreated string) dbmodels.OfficialBusiness {
	return dbmodels.OfficialBusiness{
		TravelID:      "DOLE-AB-01-0001-0001",
		DateCreated:   dateCreated,
		Office:        "DOLE Provincial Office",
		Division:      "EMPLOYMENT",
		DateOfOB:      "2024-01-05",
		DatesOfOB:     `["2024-01-05"]`,
		LocationFrom:  "Provincial Office",
		LocationTo:    "Regional Office",
		DepartureTime: "08:30",
		ReturnTime:    "17:00",
		Purpose:       "Coordination meeting",
	}
}

func TestCreateAndGet(t *testing.T) {
	store := NewInstance(openTestDB(t))

	id, err := store.Create(sampleRecord("2024-01-05T08:00:00Z"), []dbmodels.Employee{
		{Name: "Amanda Albaño", Position: "Program Coordinator"},
		{Name: "Arvin Mabeza", Position: "PG-Job Order"},
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	rec, err := store.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, rec)
	require.Equal(t, "EMPLOYMENT", rec.Division)

	employees, err := store.EmployeesByOBID(id)
	require.NoError(t, err)
	require.Len(t, employees, 2)
	require.Equal(t, "Amanda Albaño", employees[0].Name)

	t.Run(`missing record comes back nil`, func(t *testing.T) {
		rec, err := store.GetByID(9999)
		require.NoError(t, err)
		require.Nil(t, rec)
	})

	t.Run(`record without a date is rejected`, func(t *testing.T) {
		bad := sampleRecord("2024-01-05T08:00:00Z")
		bad.DateOfOB = ""
		bad.DatesOfOB = ""
		_, err := store.Create(bad, nil)
		require.Error(t, err)
	})
}

func TestUpdateReplacesEmployees(t *testing.T) {
	store := NewInstance(openTestDB(t))

	id, err := store.Create(sampleRecord("2024-01-05T08:00:00Z"), []dbmodels.Employee{
		{Name: "Old Employee", Position: "Clerk"},
	})
	require.NoError(t, err)

	err = store.Update(id, map[string]interface{}{
		"purpose":  "Updated purpose",
		"division": "TUPAD",
	}, []dbmodels.Employee{
		{Name: "New Employee A", Position: "Coordinator"},
		{Name: "New Employee B", Position: "Driver"},
	})
	require.NoError(t, err)

	rec, err := store.GetByID(id)
	require.NoError(t, err)
	require.Equal(t, "Updated purpose", rec.Purpose)
	require.Equal(t, "TUPAD", rec.Division)

	employees, err := store.EmployeesByOBID(id)
	require.NoError(t, err)
	require.Len(t, employees, 2)
	require.Equal(t, "New Employee A", employees[0].Name)
}

func TestDelete(t *testing.T) {
	store := NewInstance(openTestDB(t))

	id, err := store.Create(sampleRecord("2024-01-05T08:00:00Z"), []dbmodels.Employee{
		{Name: "Someone", Position: "Clerk"},
	})
	require.NoError(t, err)

	require.NoError(t, store.Delete(id))

	rec, err := store.GetByID(id)
	require.NoError(t, err)
	require.Nil(t, rec)

	employees, err := store.EmployeesByOBID(id)
	require.NoError(t, err)
	require.Empty(t, employees)
}

func TestDeleteAll(t *testing.T) {
	store := NewInstance(openTestDB(t))

	for idx := 0; idx < 3; idx++ {
		_, err := store.Create(sampleRecord("2024-01-05T08:00:00Z"), []dbmodels.Employee{
			{Name: "Someone", Position: "Clerk"},
		})
		require.NoError(t, err)
	}

	require.NoError(t, store.DeleteAll())

	total, err := store.Count("")
	require.NoError(t, err)
	require.Zero(t, total)
}

func TestCountAndListPage(t *testing.T) {
	store := NewInstance(openTestDB(t))

	names := []string{"Alice Reyes", "Bob Santos", "Carla Cruz"}
	for idx, name := range names {
		rec := sampleRecord(fmt.Sprintf("2024-01-0%dT08:00:00Z", idx+1))
		_, err := store.Create(rec, []dbmodels.Employee{{Name: name, Position: "Clerk"}})
		require.NoError(t, err)
	}

	t.Run(`unfiltered count`, func(t *testing.T) {
		total, err := store.Count("")
		require.NoError(t, err)
		require.EqualValues(t, 3, total)
	})

	t.Run(`search filters by employee name`, func(t *testing.T) {
		total, err := store.Count("Bob")
		require.NoError(t, err)
		require.EqualValues(t, 1, total)

		list, err := store.ListPage("Bob", 20, 0)
		require.NoError(t, err)
		require.Len(t, list, 1)
	})

	t.Run(`ordered newest first`, func(t *testing.T) {
		list, err := store.ListPage("", 20, 0)
		require.NoError(t, err)
		require.Len(t, list, 3)
		require.Equal(t, "2024-01-03T08:00:00Z", list[0].DateCreated)
	})

	t.Run(`offset past the end is empty`, func(t *testing.T) {
		list, err := store.ListPage("", 20, 100)
		require.NoError(t, err)
		require.Empty(t, list)
	})
}

func TestCountCreatedLike(t *testing.T) {
	store := NewInstance(openTestDB(t))

	_, err := store.Create(sampleRecord("2024-01-05T08:00:00Z"), nil)
	require.NoError(t, err)
	_, err = store.Create(sampleRecord("2024-01-20T08:00:00Z"), nil)
	require.NoError(t, err)
	_, err = store.Create(sampleRecord("2024-02-01T08:00:00Z"), nil)
	require.NoError(t, err)

	total, err := store.CountCreatedLike("2024-01")
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
}

func TestFindByEmployeeNames(t *testing.T) {
	store := NewInstance(openTestDB(t))

	first, err := store.Create(sampleRecord("2024-01-05T08:00:00Z"), []dbmodels.Employee{
		{Name: "Amanda S. Albaño", Position: "Program Coordinator"},
	})
	require.NoError(t, err)
	_, err = store.Create(sampleRecord("2024-02-05T08:00:00Z"), []dbmodels.Employee{
		{Name: "Somebody Else", Position: "Clerk"},
	})
	require.NoError(t, err)

	list, err := store.FindByEmployeeNames([]string{"Amanda S. Albaño", "Amanda Albaño", "Albaño, Amanda"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, first, list[0].ID)

	t.Run(`no variants, no lookup`, func(t *testing.T) {
		list, err := store.FindByEmployeeNames(nil)
		require.NoError(t, err)
		require.Empty(t, list)
	})
}
