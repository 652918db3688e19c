package store

import (
	"gorm.io/gorm"

	dbmodels "ob-forms-backend/models/db"
)

type Provider interface {
	ListForms() (list []dbmodels.OfficialBusiness, err error)
	ListEmployees() (list []dbmodels.Employee, err error)
	ListSettings() (list []dbmodels.Setting, err error)
	ReplaceAll(forms []dbmodels.OfficialBusiness, employees []dbmodels.Employee, settings []dbmodels.Setting) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) ListForms() (list []dbmodels.OfficialBusiness, err error) {
	list = []dbmodels.OfficialBusiness{}
	err = i.db.
		Order("id").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListEmployees() (list []dbmodels.Employee, err error) {
	list = []dbmodels.Employee{}
	err = i.db.
		Order("id").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListSettings() (list []dbmodels.Setting, err error) {
	list = []dbmodels.Setting{}
	err = i.db.
		Order("id").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// ReplaceAll wipes the three tables and restores them from the bundle, keeping
// original IDs. All or nothing.
func (i impl) ReplaceAll(forms []dbmodels.OfficialBusiness, employees []dbmodels.Employee, settings []dbmodels.Setting) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&dbmodels.Employee{}).Error; err != nil {
			return err
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&dbmodels.OfficialBusiness{}).Error; err != nil {
			return err
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&dbmodels.Setting{}).Error; err != nil {
			return err
		}
		for idx := range forms {
			if err := tx.Create(&forms[idx]).Error; err != nil {
				return err
			}
		}
		for idx := range employees {
			if err := tx.Create(&employees[idx]).Error; err != nil {
				return err
			}
		}
		for idx := range settings {
			if err := tx.Create(&settings[idx]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
