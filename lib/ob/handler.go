package obprovider

import (
	"encoding/json"
	"math"
	"time"

	log "github.com/sirupsen/logrus"

	"ob-forms-backend/config"
	"ob-forms-backend/db"
	"ob-forms-backend/lib/ob/store"
	"ob-forms-backend/lib/utils/dateutil"
	"ob-forms-backend/models"
	apimodels "ob-forms-backend/models/api"
	dbmodels "ob-forms-backend/models/db"
)

type Provider interface {
	Submit(request apimodels.SubmitRequest) (id int64, travelID string, err error)
	Update(id int64, request apimodels.UpdateRequest) error
	Delete(id int64) error
	DeleteAll() error
	List(request apimodels.PageRequest, search string) (resp apimodels.EntriesResponse, err error)
	GetOne(id int64) (resp apimodels.RetrieveResponse, err error)
	GetEntry(id int64) (resp apimodels.EntryDetailResponse, err error)
	GetRecord(id int64) (rec dbmodels.OfficialBusiness, employees []dbmodels.Employee, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:      store.NewInstance(db.DB),
		officeCode: config.Conf.Office.Code,
	}
}

type impl struct {
	store      store.Provider
	officeCode string
}

func (i impl) Submit(request apimodels.SubmitRequest) (int64, string, error) {
	if len(request.Employees) == 0 {
		return 0, "", models.NewValidationError("No employees provided")
	}
	now := time.Now().UTC()

	dates := sanitizeDates(request.DatesOfOB, now)
	dateOfOB := request.DateOfOB
	if len(dates) > 0 {
		dateOfOB = dates[0]
	}
	if dateOfOB == "" && len(dates) == 0 {
		return 0, "", models.NewValidationError("Please select at least one date")
	}

	datesJSON := ""
	if len(dates) > 0 {
		raw, err := json.Marshal(dates)
		if err != nil {
			return 0, "", err
		}
		datesJSON = string(raw)
	}

	travelID, err := i.nextTravelID(request.Employees[0].Name, now)
	if err != nil {
		// id generation is best effort, a failed count must not block the submit
		log.WithError(err).Warn("travel id sequence lookup failed")
	}

	rec := dbmodels.OfficialBusiness{
		TravelID:           travelID,
		DateCreated:        now.Format(time.RFC3339),
		Office:             request.Office,
		Division:           request.Division,
		DateOfOB:           dateOfOB,
		DatesOfOB:          datesJSON,
		LocationFrom:       request.LocationFrom,
		LocationTo:         request.LocationTo,
		DepartureTime:      request.DepartureTime,
		ReturnTime:         request.ReturnTime,
		Purpose:            request.Purpose,
		ApprovedBy:         request.ApprovedBy,
		ApprovedByPosition: request.ApprovedByPosition,
		Timestamp:          now.Format(time.RFC3339),
	}
	employees := make([]dbmodels.Employee, 0, len(request.Employees))
	for _, emp := range request.Employees {
		employees = append(employees, dbmodels.Employee{Name: emp.Name, Position: emp.Position})
	}

	id, err := i.store.Create(rec, employees)
	if err != nil {
		return 0, "", err
	}
	log.WithField("rec_id", id).
		WithField("travel_id", travelID).
		Info("official business form submitted")
	return id, travelID, nil
}

func (i impl) Update(id int64, request apimodels.UpdateRequest) error {
	if len(request.Employees) == 0 {
		return models.NewValidationError("No employees provided")
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return models.NewNotFoundError("Entry not found")
	}

	formData := request.FormData
	dateOfOB := formData.DateOfOB
	datesJSON := ""
	if len(formData.DatesOfOB) > 0 {
		raw, err := json.Marshal(formData.DatesOfOB)
		if err != nil {
			return err
		}
		datesJSON = string(raw)
		dateOfOB = formData.DatesOfOB[0]
	}
	office := formData.Office
	if office == "" {
		office = formData.Division
	}
	updMap := map[string]interface{}{
		"office":               office,
		"division":             formData.Division,
		"date_of_ob":           dateOfOB,
		"dates_of_ob":          datesJSON,
		"location_from":        formData.LocationFrom,
		"location_to":          formData.LocationTo,
		"purpose":              formData.Purpose,
		"approved_by":          formData.ApprovedBy,
		"approved_by_position": formData.ApprovedByPosition,
	}
	employees := make([]dbmodels.Employee, 0, len(request.Employees))
	for _, emp := range request.Employees {
		employees = append(employees, dbmodels.Employee{Name: emp.Name, Position: emp.Position})
	}
	err = i.store.Update(id, updMap, employees)
	if err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("official business form updated")
	return nil
}

func (i impl) Delete(id int64) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return models.NewNotFoundError("Entry not found")
	}
	err = i.store.Delete(id)
	if err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("official business form deleted")
	return nil
}

func (i impl) DeleteAll() error {
	err := i.store.DeleteAll()
	if err != nil {
		return err
	}
	log.Info("all official business forms deleted")
	return nil
}

func (i impl) List(request apimodels.PageRequest, search string) (apimodels.EntriesResponse, error) {
	page, limit := request.GetPage()
	total, err := i.store.Count(search)
	if err != nil {
		return apimodels.EntriesResponse{}, err
	}
	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	resp := apimodels.EntriesResponse{
		Entries: []apimodels.EntryView{},
		Pagination: apimodels.Pagination{
			Total:       total,
			CurrentPage: page,
			TotalPages:  totalPages,
		},
	}

	list, err := i.store.ListPage(search, limit, (page-1)*limit)
	if err != nil {
		return apimodels.EntriesResponse{}, err
	}
	if len(list) == 0 {
		return resp, nil
	}

	obIDs := make([]int64, 0, len(list))
	for _, rec := range list {
		obIDs = append(obIDs, rec.ID)
	}
	employees, err := i.store.EmployeesByOBIDs(obIDs)
	if err != nil {
		return apimodels.EntriesResponse{}, err
	}
	byOB := map[int64][]apimodels.EmployeeData{}
	for _, emp := range employees {
		byOB[emp.OBID] = append(byOB[emp.OBID], apimodels.EmployeeData{Name: emp.Name, Position: emp.Position})
	}

	for _, rec := range list {
		empList := byOB[rec.ID]
		if empList == nil {
			empList = []apimodels.EmployeeData{}
		}
		name := ""
		if len(empList) > 0 {
			name = empList[0].Name
		}
		resp.Entries = append(resp.Entries, apimodels.EntryView{
			ID: rec.ID,
			FormData: apimodels.EntryFormData{
				Name:       name,
				Office:     rec.Office,
				DateOfOB:   rec.DateOfOB,
				DatesOfOB:  rec.DateList(),
				DatesOfOBS: rec.DateOfOB,
				Division:   rec.Division,
				LocationTo: rec.LocationTo,
				Purpose:    rec.Purpose,
			},
			Employees: empList,
		})
	}
	return resp, nil
}

func (i impl) GetOne(id int64) (apimodels.RetrieveResponse, error) {
	rec, employees, err := i.GetRecord(id)
	if err != nil {
		return apimodels.RetrieveResponse{}, err
	}
	resp := apimodels.RetrieveResponse{
		FormData:  formDataView(rec),
		Employees: []apimodels.EmployeeData{},
	}
	for _, emp := range employees {
		resp.Employees = append(resp.Employees, apimodels.EmployeeData{Name: emp.Name, Position: emp.Position})
	}
	return resp, nil
}

// GetEntry returns one record in the single-entry view shape, employees carried
// both at the top level and inside formData.
func (i impl) GetEntry(id int64) (apimodels.EntryDetailResponse, error) {
	rec, employees, err := i.GetRecord(id)
	if err != nil {
		return apimodels.EntryDetailResponse{}, err
	}
	empData := make([]apimodels.EmployeeData, 0, len(employees))
	empDetail := make([]apimodels.EntryDetailEmployee, 0, len(employees))
	for _, emp := range employees {
		empData = append(empData, apimodels.EmployeeData{Name: emp.Name, Position: emp.Position})
		empDetail = append(empDetail, apimodels.EntryDetailEmployee{Name: emp.Name, FullName: emp.Name, Position: emp.Position})
	}
	return apimodels.EntryDetailResponse{
		ID:        rec.ID,
		Date:      rec.DateCreated,
		CreatedAt: rec.DateCreated,
		FormData: apimodels.EntryDetailFormData{
			Office:             rec.Office,
			Division:           rec.Division,
			DateOfOB:           rec.DateOfOB,
			DatesOfOBAlias:     rec.DateOfOB,
			DatesOfOB:          rec.DateList(),
			From:               rec.LocationFrom,
			To:                 rec.LocationTo,
			LocationFrom:       rec.LocationFrom,
			LocationTo:         rec.LocationTo,
			DepartureTime:      rec.DepartureTime,
			ReturnTime:         rec.ReturnTime,
			Time:               rec.DepartureTime + " - " + rec.ReturnTime,
			Purpose:            rec.Purpose,
			ApprovedBy:         rec.ApprovedBy,
			ApprovedByPosition: rec.ApprovedByPosition,
			Employees:          empData,
		},
		Employees: empDetail,
	}, nil
}

func (i impl) GetRecord(id int64) (dbmodels.OfficialBusiness, []dbmodels.Employee, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return dbmodels.OfficialBusiness{}, nil, err
	}
	if rec == nil {
		return dbmodels.OfficialBusiness{}, nil, models.NewNotFoundError("Form not found")
	}
	employees, err := i.store.EmployeesByOBID(id)
	if err != nil {
		return dbmodels.OfficialBusiness{}, nil, err
	}
	return *rec, employees, nil
}

func (i impl) nextTravelID(employeeName string, now time.Time) (string, error) {
	seq, err := i.store.CountCreatedLike(now.Format("2006-01"))
	if err != nil {
		return buildTravelID(i.officeCode, employeeName, 1, now), err
	}
	return buildTravelID(i.officeCode, employeeName, seq+1, now), nil
}

func formDataView(rec dbmodels.OfficialBusiness) apimodels.FormDataView {
	return apimodels.FormDataView{
		ID:                 rec.ID,
		TravelID:           rec.TravelID,
		DateCreated:        rec.DateCreated,
		Office:             rec.Office,
		Division:           rec.Division,
		DateOfOB:           rec.DateOfOB,
		DatesOfOBRaw:       rec.DatesOfOB,
		DatesOfOB:          rec.DateList(),
		LocationFrom:       rec.LocationFrom,
		LocationTo:         rec.LocationTo,
		DepartureTime:      rec.DepartureTime,
		ReturnTime:         rec.ReturnTime,
		Purpose:            rec.Purpose,
		ApprovedBy:         rec.ApprovedBy,
		ApprovedByPosition: rec.ApprovedByPosition,
	}
}

func sanitizeDates(dates []string, now time.Time) []string {
	if len(dates) == 0 {
		return nil
	}
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		out = append(out, dateutil.Sanitize(d, now))
	}
	return out
}
