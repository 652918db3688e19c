package apimodels

import (
	"github.com/pkg/errors"

	dbmodels "ob-forms-backend/models/db"
)

const ExportVersion = "1.0"

// ExportBundle is the full backup shape, the same on export and import.
type ExportBundle struct {
	OfficialBusiness []dbmodels.OfficialBusiness `json:"official_business"`
	Employees        []dbmodels.Employee         `json:"employees"`
	Settings         []dbmodels.Setting          `json:"settings"`
	ExportedAt       string                      `json:"exported_at"`
	Version          string                      `json:"version"`
}

func (b ExportBundle) Validate() error {
	if b.OfficialBusiness == nil || b.Employees == nil {
		return errors.New("Invalid import data format")
	}
	return nil
}

type ImportResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Forms     int    `json:"forms"`
	Employees int    `json:"employees"`
	Settings  int    `json:"settings"`
}
