package dbmodels

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// DirectoryEmployee is a roster entry independent of any OB record. full_name is
// derived from the three name parts and never edited on its own; the BeforeSave hook
// keeps it consistent.
type DirectoryEmployee struct {
	BaseModel
	EmployeeID   string `gorm:"column:employee_id" json:"employee_id"`
	Firstname    string `gorm:"column:firstname" json:"firstname"`
	MiddleName   string `gorm:"column:middle_name" json:"middle_name"`
	LastName     string `gorm:"column:last_name" json:"last_name"`
	FullName     string `gorm:"column:full_name" json:"full_name"`
	Position     string `gorm:"column:position" json:"position"`
	AssignedUnit string `gorm:"column:assigned_unit" json:"assigned_unit"`
}

func (DirectoryEmployee) TableName() string {
	return "employees_directory"
}

func (d *DirectoryEmployee) BeforeSave(tx *gorm.DB) (err error) {
	d.FullName = d.BuildFullName()
	return nil
}

func (d *DirectoryEmployee) Validate() error {
	if d.Firstname == "" || d.LastName == "" {
		return errors.New("employee name is required")
	}
	if d.Position == "" {
		return errors.New("position is required")
	}
	if d.AssignedUnit == "" {
		return errors.New("assigned unit is required")
	}
	return nil
}

// BuildFullName joins first name, middle initial and last name, collapsing the
// double space left when there is no middle name.
func (d *DirectoryEmployee) BuildFullName() string {
	middleInitial := ""
	if d.MiddleName != "" {
		middleInitial = d.MiddleName[:1] + "."
	}
	full := fmt.Sprintf("%s %s %s", d.Firstname, middleInitial, d.LastName)
	return strings.Join(strings.Fields(full), " ")
}

// NameVariants returns the exact spellings a form may carry for this person:
// "First Last", "Last, First" and the stored full name.
func (d *DirectoryEmployee) NameVariants() []string {
	return []string{
		d.FullName,
		fmt.Sprintf("%s %s", d.Firstname, d.LastName),
		fmt.Sprintf("%s, %s", d.LastName, d.Firstname),
	}
}
