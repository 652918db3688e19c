package directoryprovider

import (
	dbmodels "ob-forms-backend/models/db"
)

// initialRoster is the field office staff list used to (re)initialize the
// directory.
var initialRoster = []dbmodels.DirectoryEmployee{
	{EmployeeID: "4780", Firstname: "CHERRY", MiddleName: "BAJAMUNDI", LastName: "MOSATALLA", Position: "CHIEF", AssignedUnit: "PROVINCIAL HEAD"},
	{EmployeeID: "4728", Firstname: "RENALYN", MiddleName: "ENRIQUEZ", LastName: "ALANO", Position: "SENIOR LABOR AND EMPLOYMENT OFFICER", AssignedUnit: "LR/LS"},
	{EmployeeID: "4745", Firstname: "LORA JOY", MiddleName: "LUNA", LastName: "BOONGALING", Position: "LABOR AND EMPLOYMENT OFFICER III", AssignedUnit: "EMPLOYMENT"},
	{EmployeeID: "4766", Firstname: "RICKY", MiddleName: "AZUELA", LastName: "HERNANDEZ", Position: "LABOR AND EMPLOYMENT OFFICER III", AssignedUnit: "LIVELIHOOD"},
	{EmployeeID: "15974", Firstname: "CARL CEDRIC", MiddleName: "PAJARIN", LastName: "ALBUÑAN", Position: "LABOR AND EMPLOYMENT OFFICER II", AssignedUnit: "TUPAD"},
	{EmployeeID: "14280", Firstname: "ROBERT", MiddleName: "MATALOTE", LastName: "MAGANA", Position: "ASSISTANT LABOR INSPECTOR", AssignedUnit: "LR/LS"},
	{EmployeeID: "1302001", Firstname: "MARIA THERESA", MiddleName: "SALEN", LastName: "RITO", Position: "COMMUNITY FACILITATOR", AssignedUnit: "LIVELIHOOD (CLPEP)"},
	{EmployeeID: "1301003", Firstname: "LEONNY", MiddleName: "GUINTO", LastName: "ROMERO", Position: "LIVELIHOOD DEVELOPMENT SPECIALIST", AssignedUnit: "LIVELIHOOD (DILP)"},
	{EmployeeID: "1305001", Firstname: "JEORSHWIN IVANE", MiddleName: "SALAYON", LastName: "JO", Position: "JOB ORDER", AssignedUnit: "LIVELIHOOD (DILP)"},
	{EmployeeID: "1305002", Firstname: "EDMUNDO", MiddleName: "RADA", LastName: "NIEVA", Position: "JOB ORDER-DRIVER", AssignedUnit: "ASSU"},
	{EmployeeID: "1303001", Firstname: "AMANDA", MiddleName: "SORIA", LastName: "ALBAÑO", Position: "PROGRAM COORDINATOR", AssignedUnit: "TUPAD"},
	{EmployeeID: "1303002", Firstname: "DANICA", MiddleName: "ROMERO", LastName: "BAÑAGA", Position: "PROGRAM COORDINATOR", AssignedUnit: "LR/LS"},
	{EmployeeID: "1303012", Firstname: "RICO", MiddleName: "QUIZON", LastName: "BERJA", Position: "PROGRAM COORDINATOR", AssignedUnit: "TUPAD"},
	{EmployeeID: "1303005", Firstname: "KIM MATTHEW", MiddleName: "SOLANA", LastName: "GUTIERREZ", Position: "PROGRAM COORDINATOR", AssignedUnit: "LIVELIHOOD (CLPEP)"},
	{EmployeeID: "1303004", Firstname: "DARLENE", MiddleName: "BALON", LastName: "IBIAS", Position: "PROGRAM COORDINATOR", AssignedUnit: "TUPAD"},
	{EmployeeID: "1303006", Firstname: "ROWENA", MiddleName: "RIGODON", LastName: "LABRADOR", Position: "PROGRAM COORDINATOR", AssignedUnit: "TUPAD"},
	{EmployeeID: "1303014", Firstname: "SHYBERLYN", MiddleName: "MONTUYA", LastName: "LARGO", Position: "PROGRAM COORDINATOR", AssignedUnit: "TUPAD"},
	{EmployeeID: "1303007", Firstname: "RHODORA", MiddleName: "FERMO", LastName: "LEVANTINO", Position: "PROGRAM COORDINATOR", AssignedUnit: "TUPAD"},
	{EmployeeID: "1303009", Firstname: "EMMA", MiddleName: "RAMOREZ", LastName: "RIVERA", Position: "PROGRAM COORDINATOR", AssignedUnit: "TUPAD"},
	{EmployeeID: "1303010", Firstname: "REBECCA", MiddleName: "PALACIO", LastName: "VILLAGEN", Position: "PROGRAM COORDINATOR", AssignedUnit: "EMPLOYMENT"},
	{EmployeeID: "1503001", Firstname: "ARVIN", MiddleName: "NERI", LastName: "MABEZA", Position: "PG-JOB ORDER", AssignedUnit: "LR/LS"},
	{EmployeeID: "1503002", Firstname: "HANNAH CARLOTA", MiddleName: "OJEDA", LastName: "SEVA", Position: "PG-JOB ORDER", AssignedUnit: "EMPLOYMENT"},
	{EmployeeID: "1503003", Firstname: "JEFFREY", MiddleName: "FRANCISCO", LastName: "VALLES", Position: "PG-JOB ORDER", AssignedUnit: "LIVELIHOOD (DILP)"},
	{EmployeeID: "1503004", Firstname: "JOE MARIE", MiddleName: "", LastName: "SALAMANCA", Position: "PG-JOB ORDER", AssignedUnit: "ASSU"},
}
