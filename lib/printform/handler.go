package printprovider

import (
	"bytes"
	"strings"
	"time"

	"github.com/pkg/errors"

	"ob-forms-backend/db"
	dirstore "ob-forms-backend/lib/directory/store"
	obstore "ob-forms-backend/lib/ob/store"
	settingsprovider "ob-forms-backend/lib/settings"
	"ob-forms-backend/lib/utils/dateutil"
	"ob-forms-backend/models"
	dbmodels "ob-forms-backend/models/db"
)

const (
	provincialHeadUnit     = "PROVINCIAL HEAD"
	departmentDisplayName  = "Department of Labor and Employment"
	fallbackARD            = "ATTY. NEPOMUCENO A. LEAÑO II, CPA"
	fallbackARDPosition    = "Assistant Regional Director"
	fallbackHeadPosition   = "Provincial Head"
)

type Provider interface {
	RenderForm(id int64) (string, error)
	RenderFormPDF(id int64) ([]byte, error)
	RenderReleaseLog(ids []int64, period string) (string, error)
	ReleaseRows(ids []int64) ([]ReleaseRow, error)
}

// ReleaseRow is one numbered line of the release log, shared with the XLSX
// export.
type ReleaseRow struct {
	Number      int
	Name        string
	Position    string
	Destination string
	DateDisplay string
}

var Instance Provider

type impl struct {
	obStore  obstore.Provider
	dirStore dirstore.Provider
	settings settingsprovider.Provider
}

func NewHandler() {
	Instance = impl{
		obStore:  obstore.NewInstance(db.DB),
		dirStore: dirstore.NewInstance(db.DB),
		settings: settingsprovider.Instance,
	}
}

func (i impl) RenderForm(id int64) (string, error) {
	rec, employees, settings, err := i.loadForm(id)
	if err != nil {
		return "", err
	}
	doc := buildDocument(*rec, employees, settings, i.lookupDirectory)
	var buf bytes.Buffer
	if err = obFormTemplate.Execute(&buf, doc); err != nil {
		return "", errors.Wrap(err, "render ob form")
	}
	return buf.String(), nil
}

func (i impl) RenderFormPDF(id int64) ([]byte, error) {
	rec, employees, settings, err := i.loadForm(id)
	if err != nil {
		return nil, err
	}
	doc := buildDocument(*rec, employees, settings, i.lookupDirectory)
	return renderPDF(doc)
}

func (i impl) RenderReleaseLog(ids []int64, period string) (string, error) {
	rows, err := i.ReleaseRows(ids)
	if err != nil {
		return "", err
	}
	doc := releaseDocument{Period: period}
	for _, row := range rows {
		name := row.Name
		if name != "" {
			name = name + " (" + row.Position + ")"
		}
		doc.Rows = append(doc.Rows, releaseRow{
			Number:       row.Number,
			NameWithPost: name,
			Destination:  row.Destination,
			DateDisplay:  row.DateDisplay,
		})
	}
	var buf bytes.Buffer
	if err = releaseFormTemplate.Execute(&buf, doc); err != nil {
		return "", errors.Wrap(err, "render release form")
	}
	return buf.String(), nil
}

// ReleaseRows resolves records and their employees into numbered release-log
// lines, padded with blank lines up to 20.
func (i impl) ReleaseRows(ids []int64) ([]ReleaseRow, error) {
	rows := []ReleaseRow{}
	number := 1
	for _, id := range ids {
		rec, err := i.obStore.GetByID(id)
		if err != nil {
			return nil, err
		}
		if rec == nil {
			continue
		}
		employees, err := i.obStore.EmployeesByOBID(id)
		if err != nil {
			return nil, err
		}
		dateDisplay := releaseDateDisplay(*rec)
		for _, emp := range employees {
			rows = append(rows, ReleaseRow{
				Number:      number,
				Name:        emp.Name,
				Position:    emp.Position,
				Destination: rec.LocationTo,
				DateDisplay: dateDisplay,
			})
			number++
		}
	}
	return padReleaseRows(rows, number), nil
}

// padReleaseRows fills the sheet with blank numbered lines up to 20 rows.
func padReleaseRows(rows []ReleaseRow, next int) []ReleaseRow {
	for ; next <= 20; next++ {
		rows = append(rows, ReleaseRow{Number: next})
	}
	return rows
}

func (i impl) loadForm(id int64) (*dbmodels.OfficialBusiness, []dbmodels.Employee, dbmodels.Setting, error) {
	var settings dbmodels.Setting
	rec, err := i.obStore.GetByID(id)
	if err != nil {
		return nil, nil, settings, err
	}
	if rec == nil {
		return nil, nil, settings, models.NewNotFoundError("Form not found")
	}
	employees, err := i.obStore.EmployeesByOBID(id)
	if err != nil {
		return nil, nil, settings, err
	}
	settings, err = i.settings.GetCurrent()
	if err != nil {
		return nil, nil, settings, err
	}
	return rec, employees, settings, nil
}

func (i impl) lookupDirectory(name string) *dbmodels.DirectoryEmployee {
	info, err := i.dirStore.FindByFormName(name)
	if err != nil {
		return nil
	}
	return info
}

type directoryLookup func(name string) *dbmodels.DirectoryEmployee

func buildDocument(rec dbmodels.OfficialBusiness, employees []dbmodels.Employee,
	settings dbmodels.Setting, lookup directoryLookup) printDocument {
	form := recordFormSource(rec)
	dateDisplay := ResolveDateDisplay(form)

	// a form is always printable, forms with no employee rows get a placeholder
	if len(employees) == 0 {
		employees = []dbmodels.Employee{{
			Name:     "Employee Name Not Found",
			Position: "Position Not Found",
		}}
	}

	doc := printDocument{Title: rec.TravelID}
	for index, emp := range employees {
		var info *dbmodels.DirectoryEmployee
		if lookup != nil {
			info = lookup(emp.Name)
		}
		block := buildBlock(rec, emp, info, settings, dateDisplay)
		block.PageBreak = index > 0 && index%2 == 0
		block.Odd = index%2 == 0
		block.Even = index%2 == 1
		doc.Blocks = append(doc.Blocks, block)
	}
	return doc
}

func buildBlock(rec dbmodels.OfficialBusiness, emp dbmodels.Employee,
	info *dbmodels.DirectoryEmployee, settings dbmodels.Setting, dateDisplay string) formBlock {
	assignedUnit := ""
	if info != nil {
		assignedUnit = info.AssignedUnit
	}

	var divisionDisplay, approvedBy, approvedByPosition string
	if assignedUnit == provincialHeadUnit {
		divisionDisplay = departmentDisplayName
		approvedBy = firstNonEmpty(settings.AssistantRegionalDirector, fallbackARD)
		approvedByPosition = fallbackARDPosition
	} else {
		divisionDisplay = firstNonEmpty(assignedUnit, rec.Division)
		approvedBy = firstNonEmpty(rec.ApprovedBy, settings.OfficeHead)
		approvedByPosition = firstNonEmpty(rec.ApprovedByPosition, settings.OfficeHeadPosition, fallbackHeadPosition)
	}

	return formBlock{
		EmployeeName:       strings.ToUpper(emp.Name),
		EmployeePosition:   strings.ToUpper(emp.Position),
		OfficeDisplay:      firstNonEmpty(rec.Division, rec.Office, divisionDisplay, departmentDisplayName),
		DivisionDisplay:    firstNonEmpty(divisionDisplay, rec.Division),
		DateDisplay:        dateDisplay,
		LocationFrom:       rec.LocationFrom,
		LocationTo:         rec.LocationTo,
		Departure:          dateutil.FormatTime12h(rec.DepartureTime),
		Return:             dateutil.FormatTime12h(rec.ReturnTime),
		Purpose:            rec.Purpose,
		ApprovedBy:         strings.ToUpper(approvedBy),
		ApprovedByPosition: strings.ToUpper(approvedByPosition),
	}
}

// recordFormSource pre-fills the decoded date list the way the print route
// always did: stored dates, else the single date, else today.
func recordFormSource(rec dbmodels.OfficialBusiness) FormSource {
	dates := rec.DateList()
	if len(dates) == 0 {
		dates = []string{time.Now().Format("2006-01-02")}
	}
	return FormSource{
		"date_of_ob":  rec.DateOfOB,
		"dates_of_ob": rec.DatesOfOB,
		"datesOfOB":   dates,
	}
}

// releaseDateDisplay keeps raw stored dates, the release log is not reformatted.
func releaseDateDisplay(rec dbmodels.OfficialBusiness) string {
	if rec.DatesOfOB != "" {
		if dates := rec.DateList(); len(dates) > 0 {
			return strings.Join(dates, ", ")
		}
	}
	return rec.DateOfOB
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
