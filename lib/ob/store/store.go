package store

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "ob-forms-backend/models/db"
)

type Provider interface {
	// Create persists the record and its employee rows in one transaction.
	Create(rec dbmodels.OfficialBusiness, employees []dbmodels.Employee) (id int64, err error)
	GetByID(id int64) (rec *dbmodels.OfficialBusiness, err error)
	// Update replaces the record's mutable fields and fully replaces the employee
	// set in one transaction.
	Update(id int64, updMap map[string]interface{}, employees []dbmodels.Employee) error
	Delete(id int64) error
	DeleteAll() error
	Count(search string) (total int64, err error)
	ListPage(search string, limit, offset int) (list []dbmodels.OfficialBusiness, err error)
	EmployeesByOBID(obID int64) (list []dbmodels.Employee, err error)
	EmployeesByOBIDs(obIDs []int64) (list []dbmodels.Employee, err error)
	CountCreatedLike(datePrefix string) (total int64, err error)
	FindByEmployeeNames(variants []string) (list []dbmodels.OfficialBusiness, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.OfficialBusiness, employees []dbmodels.Employee) (int64, error) {
	err := rec.Validate()
	if err != nil {
		return 0, err
	}
	err = i.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&rec).Error; err != nil {
			return err
		}
		for idx := range employees {
			employees[idx].OBID = rec.ID
			if err := tx.Create(&employees[idx]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id int64) (*dbmodels.OfficialBusiness, error) {
	rec := dbmodels.OfficialBusiness{}
	err := i.db.
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(id int64, updMap map[string]interface{}, employees []dbmodels.Employee) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Model(&dbmodels.OfficialBusiness{}).
			Where("id = ?", id).
			Updates(updMap).
			Error
		if err != nil {
			return err
		}
		if err = tx.Where("ob_id = ?", id).Delete(&dbmodels.Employee{}).Error; err != nil {
			return err
		}
		for idx := range employees {
			employees[idx].ID = 0
			employees[idx].OBID = id
			if err = tx.Create(&employees[idx]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (i impl) Delete(id int64) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("ob_id = ?", id).Delete(&dbmodels.Employee{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&dbmodels.OfficialBusiness{}).Error
	})
}

func (i impl) DeleteAll() error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&dbmodels.Employee{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&dbmodels.OfficialBusiness{}).Error; err != nil {
			return err
		}
		// best effort, only sqlite keeps a sequence table
		tx.Exec("DELETE FROM sqlite_sequence WHERE name IN ('official_business', 'employees')")
		return nil
	})
}

func (i impl) Count(search string) (total int64, err error) {
	tx := i.db.Model(&dbmodels.OfficialBusiness{})
	if search != "" {
		pattern := "%" + search + "%"
		tx = tx.
			Distinct("official_business.id").
			Joins("LEFT JOIN employees ON official_business.id = employees.ob_id").
			Where("employees.name LIKE ? OR official_business.office LIKE ?", pattern, pattern)
	}
	err = tx.Count(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (i impl) ListPage(search string, limit, offset int) (list []dbmodels.OfficialBusiness, err error) {
	list = []dbmodels.OfficialBusiness{}
	tx := i.db.Model(&dbmodels.OfficialBusiness{})
	if search != "" {
		pattern := "%" + search + "%"
		tx = tx.
			Select("DISTINCT official_business.*").
			Joins("LEFT JOIN employees ON official_business.id = employees.ob_id").
			Where("employees.name LIKE ? OR official_business.office LIKE ?", pattern, pattern)
	}
	err = tx.
		Order("official_business.date_created DESC").
		Limit(limit).
		Offset(offset).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) EmployeesByOBID(obID int64) (list []dbmodels.Employee, err error) {
	list = []dbmodels.Employee{}
	err = i.db.
		Where("ob_id = ?", obID).
		Order("id").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) EmployeesByOBIDs(obIDs []int64) (list []dbmodels.Employee, err error) {
	list = []dbmodels.Employee{}
	if len(obIDs) == 0 {
		return list, nil
	}
	err = i.db.
		Where("ob_id IN ?", obIDs).
		Order("id").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// CountCreatedLike counts records whose creation timestamp starts with the given
// prefix (e.g. "2024-05"), used for the per-month travel-id sequence.
func (i impl) CountCreatedLike(datePrefix string) (total int64, err error) {
	err = i.db.
		Model(&dbmodels.OfficialBusiness{}).
		Where("date_created LIKE ?", datePrefix+"%").
		Count(&total).
		Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (i impl) FindByEmployeeNames(variants []string) (list []dbmodels.OfficialBusiness, err error) {
	list = []dbmodels.OfficialBusiness{}
	if len(variants) == 0 {
		return list, nil
	}
	err = i.db.
		Model(&dbmodels.OfficialBusiness{}).
		Select("DISTINCT official_business.*").
		Joins("JOIN employees ON official_business.id = employees.ob_id").
		Where("employees.name IN ?", variants).
		Order("official_business.date_created DESC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
