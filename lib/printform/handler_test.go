package printprovider

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	dbmodels "ob-forms-backend/models/db"
)

func testRecord() dbmodels.OfficialBusiness {
	return dbmodels.OfficialBusiness{
		BaseModel:          dbmodels.BaseModel{ID: 1},
		TravelID:           "DOLE-CBM-02-0001-1234",
		Office:             "DOLE Provincial Office",
		Division:           "EMPLOYMENT",
		DateOfOB:           "2024-01-05",
		DatesOfOB:          `["2024-01-05"]`,
		LocationFrom:       "Provincial Office",
		LocationTo:         "Regional Office",
		DepartureTime:      "08:30",
		ReturnTime:         "17:00",
		Purpose:            "Quarterly coordination meeting",
		ApprovedBy:         "Cherry B. Mosatalla",
		ApprovedByPosition: "Chief",
	}
}

func TestBuildBlock(t *testing.T) {
	settings := dbmodels.Setting{
		OfficeHead:         "Cherry B. Mosatalla",
		OfficeHeadPosition: "Chief",
	}

	t.Run(`regular employee uses the assigned unit`, func(t *testing.T) {
		info := &dbmodels.DirectoryEmployee{AssignedUnit: "TUPAD"}
		block := buildBlock(testRecord(), dbmodels.Employee{Name: "Amanda Albaño", Position: "Program Coordinator"},
			info, settings, "January 05, 2024")

		require.Equal(t, "AMANDA ALBAÑO", block.EmployeeName)
		require.Equal(t, "PROGRAM COORDINATOR", block.EmployeePosition)
		require.Equal(t, "TUPAD", block.DivisionDisplay)
		require.Equal(t, "CHERRY B. MOSATALLA", block.ApprovedBy)
		require.Equal(t, "CHIEF", block.ApprovedByPosition)
		require.Equal(t, "8:30 AM", block.Departure)
		require.Equal(t, "5:00 PM", block.Return)
		// purpose keeps its original casing
		require.Equal(t, "Quarterly coordination meeting", block.Purpose)
	})

	t.Run(`provincial head routes approval upward`, func(t *testing.T) {
		info := &dbmodels.DirectoryEmployee{AssignedUnit: "PROVINCIAL HEAD"}
		block := buildBlock(testRecord(), dbmodels.Employee{Name: "Cherry B. Mosatalla", Position: "Chief"},
			info, settings, "January 05, 2024")

		require.Equal(t, "Department of Labor and Employment", block.DivisionDisplay)
		require.Equal(t, strings.ToUpper(fallbackARD), block.ApprovedBy)
		require.Equal(t, "ASSISTANT REGIONAL DIRECTOR", block.ApprovedByPosition)
	})

	t.Run(`provincial head uses the configured director when set`, func(t *testing.T) {
		info := &dbmodels.DirectoryEmployee{AssignedUnit: "PROVINCIAL HEAD"}
		withARD := settings
		withARD.AssistantRegionalDirector = "Juan Dela Cruz"
		block := buildBlock(testRecord(), dbmodels.Employee{Name: "Cherry B. Mosatalla", Position: "Chief"},
			info, withARD, "January 05, 2024")

		require.Equal(t, "JUAN DELA CRUZ", block.ApprovedBy)
	})

	t.Run(`record approver wins over settings`, func(t *testing.T) {
		block := buildBlock(testRecord(), dbmodels.Employee{Name: "Arvin Mabeza", Position: "PG-Job Order"},
			nil, settings, "January 05, 2024")

		require.Equal(t, "CHERRY B. MOSATALLA", block.ApprovedBy)
		require.Equal(t, "CHIEF", block.ApprovedByPosition)
		// no directory match, record division carries through
		require.Equal(t, "EMPLOYMENT", block.DivisionDisplay)
	})

	t.Run(`empty approver falls back to the head position`, func(t *testing.T) {
		rec := testRecord()
		rec.ApprovedBy = ""
		rec.ApprovedByPosition = ""
		block := buildBlock(rec, dbmodels.Employee{Name: "Arvin Mabeza", Position: "PG-Job Order"},
			nil, dbmodels.Setting{}, "January 05, 2024")

		require.Equal(t, "", block.ApprovedBy)
		require.Equal(t, "PROVINCIAL HEAD", block.ApprovedByPosition)
	})
}

func TestBuildDocument(t *testing.T) {
	settings := dbmodels.Setting{}

	t.Run(`one block per employee with page breaks every two`, func(t *testing.T) {
		employees := []dbmodels.Employee{
			{Name: "A", Position: "P1"},
			{Name: "B", Position: "P2"},
			{Name: "C", Position: "P3"},
		}
		doc := buildDocument(testRecord(), employees, settings, nil)

		require.Len(t, doc.Blocks, 3)
		require.False(t, doc.Blocks[0].PageBreak)
		require.False(t, doc.Blocks[1].PageBreak)
		require.True(t, doc.Blocks[2].PageBreak)
		require.True(t, doc.Blocks[0].Odd)
		require.True(t, doc.Blocks[1].Even)
		require.True(t, doc.Blocks[2].Odd)
		require.Equal(t, "DOLE-CBM-02-0001-1234", doc.Title)
	})

	t.Run(`date comes from the stored list`, func(t *testing.T) {
		rec := testRecord()
		rec.DatesOfOB = `["2024-01-05","2024-01-06"]`
		doc := buildDocument(rec, []dbmodels.Employee{{Name: "A"}}, settings, nil)
		require.Equal(t, "January 05, 2024, January 06, 2024", doc.Blocks[0].DateDisplay)
	})

	t.Run(`no employees still renders a placeholder block`, func(t *testing.T) {
		doc := buildDocument(testRecord(), nil, settings, nil)
		require.Len(t, doc.Blocks, 1)
		require.Equal(t, "EMPLOYEE NAME NOT FOUND", doc.Blocks[0].EmployeeName)
	})
}

func TestRenderFormTemplate(t *testing.T) {
	doc := buildDocument(testRecord(), []dbmodels.Employee{{Name: "Amanda Albaño", Position: "Program Coordinator"}},
		dbmodels.Setting{}, nil)
	var sb strings.Builder
	require.NoError(t, obFormTemplate.Execute(&sb, doc))
	html := sb.String()

	require.Contains(t, html, "OFFICIAL BUSINESS FORM")
	require.Contains(t, html, "HRDSPAD")
	require.Contains(t, html, "AMANDA ALBAÑO")
	require.Contains(t, html, "Official Business Form - DOLE-CBM-02-0001-1234")
	require.Contains(t, html, "CERTIFICATE OF APPEARANCE")
}

func TestReleaseRows(t *testing.T) {
	t.Run(`padded to twenty rows`, func(t *testing.T) {
		rows := padReleaseRows([]ReleaseRow{{Number: 1, Name: "A"}}, 2)
		require.Len(t, rows, 20)
		require.Equal(t, "A", rows[0].Name)
		require.Equal(t, 20, rows[19].Number)
		require.Equal(t, "", rows[19].Name)
	})

	t.Run(`more than twenty rows are kept as is`, func(t *testing.T) {
		rows := make([]ReleaseRow, 0, 25)
		for n := 1; n <= 25; n++ {
			rows = append(rows, ReleaseRow{Number: n, Name: "X"})
		}
		rows = padReleaseRows(rows, 26)
		require.Len(t, rows, 25)
	})
}

func TestReleaseDateDisplay(t *testing.T) {
	t.Run(`raw stored dates joined`, func(t *testing.T) {
		rec := testRecord()
		rec.DatesOfOB = `["2024-01-05","2024-01-06"]`
		require.Equal(t, "2024-01-05, 2024-01-06", releaseDateDisplay(rec))
	})

	t.Run(`single date fallback`, func(t *testing.T) {
		rec := testRecord()
		rec.DatesOfOB = ""
		require.Equal(t, "2024-01-05", releaseDateDisplay(rec))
	})
}
