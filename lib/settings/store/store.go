package store

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "ob-forms-backend/models/db"
)

type Provider interface {
	GetCurrent() (rec *dbmodels.Setting, err error)
	Create(rec dbmodels.Setting) (id int64, err error)
	List() (list []dbmodels.Setting, err error)
	UpdatePassword(id int64, password string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// GetCurrent returns the most recently inserted settings row; nil when the table
// is empty.
func (i impl) GetCurrent() (*dbmodels.Setting, error) {
	rec := dbmodels.Setting{}
	err := i.db.
		Order("id DESC").
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

func (i impl) Create(rec dbmodels.Setting) (int64, error) {
	err := i.db.
		Create(&rec).
		Error
	if err != nil {
		return 0, err
	}
	return rec.ID, nil
}

func (i impl) List() (list []dbmodels.Setting, err error) {
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

func (i impl) UpdatePassword(id int64, password string) error {
	return i.db.
		Model(&dbmodels.Setting{}).
		Where("id = ?", id).
		Update("admin_password", password).
		Error
}
