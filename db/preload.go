package db

import (
	log "github.com/sirupsen/logrus"

	settingsstore "ob-forms-backend/lib/settings/store"
	dbmodels "ob-forms-backend/models/db"
)

func InitPreload() {
	fillDefaultSettings()
}

// fillDefaultSettings makes sure at least one settings row exists so reads of
// "the newest row" always resolve.
func fillDefaultSettings() {
	store := settingsstore.NewInstance(DB)
	current, err := store.GetCurrent()
	if err != nil {
		log.WithError(err).Error("failed to read settings on preload")
		return
	}
	if current != nil {
		return
	}
	if _, err := store.Create(dbmodels.Setting{}); err != nil {
		log.WithError(err).Error("failed to create default settings row")
		return
	}
	log.Info("default settings row created")
}
