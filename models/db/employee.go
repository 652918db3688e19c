package dbmodels

import (
	"github.com/pkg/errors"
)

// Employee is one named participant on one OB record. Name and position are free
// text as entered on the form; they are not required to match the directory.
type Employee struct {
	BaseModel
	OBID     int64  `gorm:"column:ob_id;index" json:"ob_id"`
	Name     string `gorm:"column:name" json:"name"`
	Position string `gorm:"column:position" json:"position"`
}

func (Employee) TableName() string {
	return "employees"
}

func (e *Employee) Validate() error {
	if e.Name == "" {
		return errors.New("employee name is required")
	}
	return nil
}
