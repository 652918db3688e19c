package apimodels

import (
	"github.com/pkg/errors"

	dbmodels "ob-forms-backend/models/db"
)

type DirectoryEmployeeData struct {
	EmployeeID   string `json:"employee_id"`
	Firstname    string `json:"firstname"`
	MiddleName   string `json:"middle_name"`
	LastName     string `json:"last_name"`
	Position     string `json:"position"`
	AssignedUnit string `json:"assigned_unit"`
}

func (r DirectoryEmployeeData) Validate() error {
	if r.Firstname == "" || r.LastName == "" || r.Position == "" || r.AssignedUnit == "" {
		return errors.New("Required fields are missing")
	}
	return nil
}

// DirectoryMutationResponse answers create, update and delete calls.
type DirectoryMutationResponse struct {
	Success bool   `json:"success"`
	ID      int64  `json:"id,omitempty"`
	Message string `json:"message"`
}

type InitializeResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Count   int    `json:"count"`
}

type DirectoryListResponse struct {
	Employees []dbmodels.DirectoryEmployee `json:"employees"`
}

type DirectoryEmployeeResponse struct {
	Employee dbmodels.DirectoryEmployee `json:"employee"`
}

// HistoryEntry is one past OB record in the shape the history modal expects.
type HistoryEntry struct {
	ID        int64            `json:"id"`
	Date      string           `json:"date"`
	CreatedAt string           `json:"created_at"`
	FormData  HistoryFormData  `json:"formData"`
}

type HistoryFormData struct {
	DatesOfOB     []string `json:"datesOfOB"`
	DateOfOB      string   `json:"dates_of_ob"`
	Office        string   `json:"office"`
	Division      string   `json:"division"`
	LocationFrom  string   `json:"location_from"`
	LocationTo    string   `json:"location_to"`
	From          string   `json:"from"`
	To            string   `json:"to"`
	Purpose       string   `json:"purpose"`
	DepartureTime string   `json:"departure_time"`
	ReturnTime    string   `json:"return_time"`
}

type HistoryResponse struct {
	Employee dbmodels.DirectoryEmployee `json:"employee"`
	History  []HistoryEntry             `json:"history"`
}
