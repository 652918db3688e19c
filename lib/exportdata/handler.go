package exportprovider

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"ob-forms-backend/db"
	backupstorage "ob-forms-backend/lib/backup-storage"
	xlsexport "ob-forms-backend/lib/export/xls"
	"ob-forms-backend/lib/exportdata/store"
	printprovider "ob-forms-backend/lib/printform"
	"ob-forms-backend/models"
	apimodels "ob-forms-backend/models/api"
)

type Provider interface {
	Export() (apimodels.ExportBundle, error)
	Import(bundle apimodels.ExportBundle) (apimodels.ImportResponse, error)
	Backup(ctx context.Context) (objectName string, err error)
	ExportReleaseXLSX(ids []int64, period string) (*bytes.Buffer, error)
}

var Instance Provider

type impl struct {
	store store.Provider
}

func NewHandler() {
	Instance = impl{
		store: store.NewInstance(db.DB),
	}
}

func (i impl) Export() (apimodels.ExportBundle, error) {
	bundle := apimodels.ExportBundle{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Version:    apimodels.ExportVersion,
	}
	var err error
	bundle.OfficialBusiness, err = i.store.ListForms()
	if err != nil {
		return bundle, errors.Wrap(err, "failed to export forms")
	}
	bundle.Employees, err = i.store.ListEmployees()
	if err != nil {
		return bundle, errors.Wrap(err, "failed to export employees")
	}
	bundle.Settings, err = i.store.ListSettings()
	if err != nil {
		return bundle, errors.Wrap(err, "failed to export settings")
	}
	return bundle, nil
}

// Import replaces all stored data with the bundle content. Destructive, runs in
// a single transaction.
func (i impl) Import(bundle apimodels.ExportBundle) (apimodels.ImportResponse, error) {
	if err := bundle.Validate(); err != nil {
		return apimodels.ImportResponse{}, models.NewValidationError(err.Error())
	}
	log.WithField("forms", len(bundle.OfficialBusiness)).
		WithField("employees", len(bundle.Employees)).
		Info("importing data")
	err := i.store.ReplaceAll(bundle.OfficialBusiness, bundle.Employees, bundle.Settings)
	if err != nil {
		return apimodels.ImportResponse{}, errors.Wrap(err, "import failed")
	}
	return apimodels.ImportResponse{
		Success:   true,
		Message:   "Data imported successfully",
		Forms:     len(bundle.OfficialBusiness),
		Employees: len(bundle.Employees),
		Settings:  len(bundle.Settings),
	}, nil
}

// Backup uploads a full JSON export to S3. Requires a configured S3 client.
func (i impl) Backup(ctx context.Context) (string, error) {
	if backupstorage.Instance == nil {
		return "", models.NewValidationError("Backup storage is not configured")
	}
	bundle, err := i.Export()
	if err != nil {
		return "", err
	}
	data, err := json.Marshal(bundle)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode backup")
	}
	objectName := "ob-data-export-" + time.Now().UTC().Format("20060102-150405") + ".json"
	if err = backupstorage.Instance.UploadBackup(ctx, objectName, data); err != nil {
		return "", err
	}
	log.WithField("object", objectName).Info("backup uploaded")
	return objectName, nil
}

func (i impl) ExportReleaseXLSX(ids []int64, period string) (*bytes.Buffer, error) {
	rows, err := printprovider.Instance.ReleaseRows(ids)
	if err != nil {
		return nil, err
	}
	return xlsexport.Instance.ExportReleaseLog(rows, period)
}
