package store

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "ob-forms-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.DirectoryEmployee) (id int64, err error)
	GetByID(id int64) (rec *dbmodels.DirectoryEmployee, err error)
	Find(search string) (list []dbmodels.DirectoryEmployee, err error)
	// FindByFormName matches by full name or "first last" concatenation, the soft
	// link between a form's free-text employee name and the roster.
	FindByFormName(name string) (rec *dbmodels.DirectoryEmployee, err error)
	Update(id int64, rec dbmodels.DirectoryEmployee) (found bool, err error)
	Delete(id int64) (found bool, err error)
	ReplaceAll(list []dbmodels.DirectoryEmployee) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.DirectoryEmployee) (int64, error) {
	err := rec.Validate()
	if err != nil {
		return 0, err
	}
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return 0, err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id int64) (*dbmodels.DirectoryEmployee, error) {
	rec := dbmodels.DirectoryEmployee{}
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

func (i impl) Find(search string) (list []dbmodels.DirectoryEmployee, err error) {
	list = []dbmodels.DirectoryEmployee{}
	tx := i.db.Model(&dbmodels.DirectoryEmployee{})
	if search != "" {
		pattern := "%" + search + "%"
		tx = tx.Where("full_name LIKE ? OR position LIKE ? OR assigned_unit LIKE ?", pattern, pattern, pattern)
	}
	err = tx.
		Order("full_name").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) FindByFormName(name string) (*dbmodels.DirectoryEmployee, error) {
	if name == "" {
		return nil, nil
	}
	rec := dbmodels.DirectoryEmployee{}
	pattern := "%" + name + "%"
	err := i.db.
		Where("full_name LIKE ? OR (firstname || ' ' || last_name) LIKE ?", pattern, pattern).
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

func (i impl) Update(id int64, rec dbmodels.DirectoryEmployee) (bool, error) {
	err := rec.Validate()
	if err != nil {
		return false, err
	}
	rec.ID = id
	rec.FullName = rec.BuildFullName()
	result := i.db.
		Model(&dbmodels.DirectoryEmployee{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"employee_id":   rec.EmployeeID,
			"firstname":     rec.Firstname,
			"middle_name":   rec.MiddleName,
			"last_name":     rec.LastName,
			"full_name":     rec.FullName,
			"position":      rec.Position,
			"assigned_unit": rec.AssignedUnit,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (i impl) Delete(id int64) (bool, error) {
	result := i.db.
		Where("id = ?", id).
		Delete(&dbmodels.DirectoryEmployee{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (i impl) ReplaceAll(list []dbmodels.DirectoryEmployee) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&dbmodels.DirectoryEmployee{}).Error; err != nil {
			return err
		}
		for idx := range list {
			list[idx].ID = 0
			if err := tx.Create(&list[idx]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
