package initializers

import (
	"context"

	"ob-forms-backend/config"
	"ob-forms-backend/fiberlog"
	adminauthprovider "ob-forms-backend/lib/adminauth"
	directoryprovider "ob-forms-backend/lib/directory"
	xlsexport "ob-forms-backend/lib/export/xls"
	exportprovider "ob-forms-backend/lib/exportdata"
	obprovider "ob-forms-backend/lib/ob"
	printprovider "ob-forms-backend/lib/printform"
	settingsprovider "ob-forms-backend/lib/settings"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	settingsprovider.NewHandler()
	adminauthprovider.NewHandler()
	obprovider.NewHandler()
	directoryprovider.NewHandler()
	printprovider.NewHandler()
	xlsexport.NewHandler()
	exportprovider.NewHandler()
}
