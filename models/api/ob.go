package apimodels

import (
	"github.com/pkg/errors"
)

type EmployeeData struct {
	Name     string `json:"name"`
	Position string `json:"position"`
}

type SubmitRequest struct {
	Employees          []EmployeeData `json:"employees"`
	Office             string         `json:"office"`
	Division           string         `json:"division"`
	DatesOfOB          []string       `json:"datesOfOB"`
	DateOfOB           string         `json:"dateOfOB"`
	DateStr            string         `json:"dateStr"`
	LocationFrom       string         `json:"locationFrom"`
	LocationTo         string         `json:"locationTo"`
	DepartureTime      string         `json:"departureTime"`
	ReturnTime         string         `json:"returnTime"`
	Purpose            string         `json:"purpose"`
	ApprovedBy         string         `json:"approvedBy"`
	ApprovedByPosition string         `json:"approvedByPosition"`
}

func (r SubmitRequest) Validate() error {
	if len(r.Employees) == 0 {
		return errors.New("No employees provided")
	}
	return nil
}

type SubmitResponse struct {
	Success  bool   `json:"success"`
	ID       int64  `json:"id"`
	TravelID string `json:"travelId,omitempty"`
}

// UpdateFormData carries the mutable record fields in the snake_case shape the
// database view sends back.
type UpdateFormData struct {
	Office             string   `json:"office"`
	Division           string   `json:"division"`
	DateOfOB           string   `json:"date_of_ob"`
	DatesOfOB          []string `json:"datesOfOB"`
	LocationFrom       string   `json:"location_from"`
	LocationTo         string   `json:"location_to"`
	Purpose            string   `json:"purpose"`
	ApprovedBy         string   `json:"approved_by"`
	ApprovedByPosition string   `json:"approved_by_position"`
}

type UpdateRequest struct {
	FormData  UpdateFormData `json:"formData"`
	Employees []EmployeeData `json:"employees"`
}

// FormDataView is the stored record plus the decoded date list.
type FormDataView struct {
	ID                 int64    `json:"id"`
	TravelID           string   `json:"travel_id"`
	DateCreated        string   `json:"date_created"`
	Office             string   `json:"office"`
	Division           string   `json:"division"`
	DateOfOB           string   `json:"date_of_ob"`
	DatesOfOBRaw       string   `json:"dates_of_ob"`
	DatesOfOB          []string `json:"datesOfOB,omitempty"`
	LocationFrom       string   `json:"location_from"`
	LocationTo         string   `json:"location_to"`
	DepartureTime      string   `json:"departure_time"`
	ReturnTime         string   `json:"return_time"`
	Purpose            string   `json:"purpose"`
	ApprovedBy         string   `json:"approved_by"`
	ApprovedByPosition string   `json:"approved_by_position"`
}

type RetrieveResponse struct {
	FormData  FormDataView   `json:"formData"`
	Employees []EmployeeData `json:"employees"`
}

// EntryFormData is the trimmed per-entry shape of the database view list.
type EntryFormData struct {
	Name       string   `json:"name"`
	Office     string   `json:"office"`
	DateOfOB   string   `json:"dateOfOB"`
	DatesOfOB  []string `json:"datesOfOB"`
	DatesOfOBS string   `json:"dates_of_ob"`
	Division   string   `json:"division"`
	LocationTo string   `json:"locationTo"`
	Purpose    string   `json:"purpose"`
}

type EntryView struct {
	ID        int64          `json:"id"`
	FormData  EntryFormData  `json:"formData"`
	Employees []EmployeeData `json:"employees"`
}

// EntryDetailFormData mirrors the single-entry shape the history modal reads,
// legacy aliases included.
type EntryDetailFormData struct {
	Office             string             `json:"office"`
	Division           string             `json:"division"`
	DateOfOB           string             `json:"date_of_ob"`
	DatesOfOBAlias     string             `json:"dates_of_ob"`
	DatesOfOB          []string           `json:"datesOfOB,omitempty"`
	From               string             `json:"from"`
	To                 string             `json:"to"`
	LocationFrom       string             `json:"location_from"`
	LocationTo         string             `json:"location_to"`
	DepartureTime      string             `json:"departure_time"`
	ReturnTime         string             `json:"return_time"`
	Time               string             `json:"time"`
	Purpose            string             `json:"purpose"`
	ApprovedBy         string             `json:"approved_by"`
	ApprovedByPosition string             `json:"approved_by_position"`
	Employees          []EmployeeData     `json:"employees"`
}

type EntryDetailEmployee struct {
	Name     string `json:"name"`
	FullName string `json:"full_name"`
	Position string `json:"position"`
}

type EntryDetailResponse struct {
	ID        int64                 `json:"id"`
	Date      string                `json:"date"`
	CreatedAt string                `json:"created_at"`
	FormData  EntryDetailFormData   `json:"formData"`
	Employees []EntryDetailEmployee `json:"employees"`
}

type EntriesResponse struct {
	Entries    []EntryView `json:"entries"`
	Pagination Pagination  `json:"pagination"`
}
