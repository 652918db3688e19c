package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	dbmodels "ob-forms-backend/models/db"
)

func AutoMigrateDB() error {
	log.Info("running migrations")
	if err := DB.AutoMigrate(&dbmodels.OfficialBusiness{}); err != nil {
		return errors.Wrap(err, "migration of OfficialBusiness failed")
	}
	if err := DB.AutoMigrate(&dbmodels.Employee{}); err != nil {
		return errors.Wrap(err, "migration of Employee failed")
	}
	if err := DB.AutoMigrate(&dbmodels.DirectoryEmployee{}); err != nil {
		return errors.Wrap(err, "migration of DirectoryEmployee failed")
	}
	if err := DB.AutoMigrate(&dbmodels.Setting{}); err != nil {
		return errors.Wrap(err, "migration of Setting failed")
	}
	log.Info("migrations finished")
	return nil
}
