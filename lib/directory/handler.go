package directoryprovider

import (
	log "github.com/sirupsen/logrus"

	"ob-forms-backend/db"
	"ob-forms-backend/lib/directory/store"
	obstore "ob-forms-backend/lib/ob/store"
	"ob-forms-backend/models"
	apimodels "ob-forms-backend/models/api"
	dbmodels "ob-forms-backend/models/db"
)

type Provider interface {
	Create(request apimodels.DirectoryEmployeeData) (id int64, err error)
	Update(id int64, request apimodels.DirectoryEmployeeData) error
	Get(id int64) (rec dbmodels.DirectoryEmployee, err error)
	Find(search string) (list []dbmodels.DirectoryEmployee, err error)
	Delete(id int64) error
	// History lists past OB records whose embedded employee name exactly matches
	// one of the roster entry's name variants, newest first.
	History(id int64) (resp apimodels.HistoryResponse, err error)
	Initialize() (count int, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:   store.NewInstance(db.DB),
		obStore: obstore.NewInstance(db.DB),
	}
}

type impl struct {
	store   store.Provider
	obStore obstore.Provider
}

func (i impl) Create(request apimodels.DirectoryEmployeeData) (int64, error) {
	rec := dbmodels.DirectoryEmployee{
		EmployeeID:   request.EmployeeID,
		Firstname:    request.Firstname,
		MiddleName:   request.MiddleName,
		LastName:     request.LastName,
		Position:     request.Position,
		AssignedUnit: request.AssignedUnit,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return 0, err
	}
	log.WithField("rec_id", id).
		WithField("full_name", rec.BuildFullName()).
		Info("directory employee added")
	return id, nil
}

func (i impl) Update(id int64, request apimodels.DirectoryEmployeeData) error {
	rec := dbmodels.DirectoryEmployee{
		EmployeeID:   request.EmployeeID,
		Firstname:    request.Firstname,
		MiddleName:   request.MiddleName,
		LastName:     request.LastName,
		Position:     request.Position,
		AssignedUnit: request.AssignedUnit,
	}
	found, err := i.store.Update(id, rec)
	if err != nil {
		return err
	}
	if !found {
		return models.NewNotFoundError("Employee not found")
	}
	log.WithField("rec_id", id).Info("directory employee updated")
	return nil
}

func (i impl) Get(id int64) (dbmodels.DirectoryEmployee, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return dbmodels.DirectoryEmployee{}, err
	}
	if rec == nil {
		return dbmodels.DirectoryEmployee{}, models.NewNotFoundError("Employee not found")
	}
	return *rec, nil
}

func (i impl) Find(search string) ([]dbmodels.DirectoryEmployee, error) {
	return i.store.Find(search)
}

func (i impl) Delete(id int64) error {
	found, err := i.store.Delete(id)
	if err != nil {
		return err
	}
	if !found {
		return models.NewNotFoundError("Employee not found")
	}
	log.WithField("rec_id", id).Info("directory employee deleted")
	return nil
}

func (i impl) History(id int64) (apimodels.HistoryResponse, error) {
	rec, err := i.Get(id)
	if err != nil {
		return apimodels.HistoryResponse{}, err
	}
	entries, err := i.obStore.FindByEmployeeNames(rec.NameVariants())
	if err != nil {
		return apimodels.HistoryResponse{}, err
	}
	resp := apimodels.HistoryResponse{
		Employee: rec,
		History:  []apimodels.HistoryEntry{},
	}
	for _, entry := range entries {
		resp.History = append(resp.History, apimodels.HistoryEntry{
			ID:        entry.ID,
			Date:      entry.DateCreated,
			CreatedAt: entry.DateCreated,
			FormData: apimodels.HistoryFormData{
				DatesOfOB:     entry.DateList(),
				DateOfOB:      entry.DateOfOB,
				Office:        entry.Office,
				Division:      entry.Division,
				LocationFrom:  entry.LocationFrom,
				LocationTo:    entry.LocationTo,
				From:          entry.LocationFrom,
				To:            entry.LocationTo,
				Purpose:       entry.Purpose,
				DepartureTime: entry.DepartureTime,
				ReturnTime:    entry.ReturnTime,
			},
		})
	}
	return resp, nil
}

func (i impl) Initialize() (int, error) {
	roster := make([]dbmodels.DirectoryEmployee, len(initialRoster))
	copy(roster, initialRoster)
	err := i.store.ReplaceAll(roster)
	if err != nil {
		return 0, err
	}
	log.WithField("count", len(initialRoster)).Info("employee directory initialized")
	return len(initialRoster), nil
}
