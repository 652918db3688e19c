package initializers

import (
	"ob-forms-backend/config"
	"ob-forms-backend/db"
)

func InitDBConnection() {
	err := db.Connect(*config.Conf)
	if err != nil {
		panic(err.Error())
	}

	db.InitPreload()
}
