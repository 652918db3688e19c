package settingsprovider

import (
	log "github.com/sirupsen/logrus"

	"ob-forms-backend/config"
	"ob-forms-backend/db"
	"ob-forms-backend/lib/settings/store"
	apimodels "ob-forms-backend/models/api"
	dbmodels "ob-forms-backend/models/db"
)

type Provider interface {
	GetCurrent() (rec dbmodels.Setting, err error)
	Save(request apimodels.SettingsData) (id int64, err error)
	SaveDivisionOptions(value string) (id int64, err error)
	// ResolveAdminPassword returns the stored admin password when one exists,
	// otherwise the configured default.
	ResolveAdminPassword() (password string, err error)
	SetAdminPassword(password string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: store.NewInstance(db.DB),
	}
}

type impl struct {
	store store.Provider
}

func (i impl) GetCurrent() (dbmodels.Setting, error) {
	rec, err := i.store.GetCurrent()
	if err != nil {
		return dbmodels.Setting{}, err
	}
	if rec == nil {
		// settings are created lazily on first read
		id, err := i.store.Create(dbmodels.Setting{})
		if err != nil {
			return dbmodels.Setting{}, err
		}
		return dbmodels.Setting{BaseModel: dbmodels.BaseModel{ID: id}}, nil
	}
	return *rec, nil
}

// Save appends a new settings row carrying the previous admin password forward;
// readers pick the newest row.
func (i impl) Save(request apimodels.SettingsData) (int64, error) {
	current, err := i.store.GetCurrent()
	if err != nil {
		return 0, err
	}
	rec := dbmodels.Setting{
		Office:                    request.Office,
		OfficeHead:                request.OfficeHead,
		OfficeHeadPosition:        request.OfficeHeadPosition,
		LocationFrom:              request.LocationFrom,
		DivisionOptions:           request.DivisionOptions,
		AssistantRegionalDirector: request.AssistantRegionalDirector,
	}
	if current != nil {
		rec.AdminPassword = current.AdminPassword
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return 0, err
	}
	log.WithField("rec_id", id).Info("settings saved")
	return id, nil
}

func (i impl) SaveDivisionOptions(value string) (int64, error) {
	current, err := i.GetCurrent()
	if err != nil {
		return 0, err
	}
	rec := current
	rec.ID = 0
	rec.DivisionOptions = value
	return i.store.Create(rec)
}

func (i impl) ResolveAdminPassword() (string, error) {
	rec, err := i.store.GetCurrent()
	if err != nil {
		return "", err
	}
	if rec != nil && rec.AdminPassword != "" {
		return rec.AdminPassword, nil
	}
	return config.Conf.Auth.AdminPassword, nil
}

func (i impl) SetAdminPassword(password string) error {
	rec, err := i.store.GetCurrent()
	if err != nil {
		return err
	}
	if rec == nil {
		_, err = i.store.Create(dbmodels.Setting{AdminPassword: password})
		return err
	}
	return i.store.UpdatePassword(rec.ID, password)
}
