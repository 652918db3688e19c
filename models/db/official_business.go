package dbmodels

import (
	"encoding/json"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OfficialBusiness is one travel-authorization record. Date columns are stored as
// text: date_of_ob holds the first (or only) calendar date in YYYY-MM-DD form,
// dates_of_ob a JSON-encoded array of all dates when the business spans several days.
// date_of_ob is a denormalized copy of the list head, maintained on write.
type OfficialBusiness struct {
	BaseModel
	TravelID           string `gorm:"column:travel_id;type:varchar(64)" json:"travel_id"`
	DateCreated        string `gorm:"column:date_created;index" json:"date_created"`
	Office             string `gorm:"column:office" json:"office"`
	Division           string `gorm:"column:division" json:"division"`
	DateOfOB           string `gorm:"column:date_of_ob" json:"date_of_ob"`
	DatesOfOB          string `gorm:"column:dates_of_ob" json:"dates_of_ob"`
	LocationFrom       string `gorm:"column:location_from" json:"location_from"`
	LocationTo         string `gorm:"column:location_to" json:"location_to"`
	DepartureTime      string `gorm:"column:departure_time" json:"departure_time"`
	ReturnTime         string `gorm:"column:return_time" json:"return_time"`
	Purpose            string `gorm:"column:purpose" json:"purpose"`
	ApprovedBy         string `gorm:"column:approved_by" json:"approved_by"`
	ApprovedByPosition string `gorm:"column:approved_by_position" json:"approved_by_position"`
	Timestamp          string `gorm:"column:timestamp" json:"timestamp"`
}

func (OfficialBusiness) TableName() string {
	return "official_business"
}

func (o *OfficialBusiness) AfterDelete(tx *gorm.DB) (err error) {
	if o.ID == 0 {
		return nil
	}
	tx.Clauses(clause.Returning{}).Where("ob_id = ?", o.ID).Delete(&Employee{})
	return
}

func (o *OfficialBusiness) Validate() error {
	if o.DateOfOB == "" && o.DatesOfOB == "" {
		return errors.New("no date of official business")
	}
	return nil
}

// DateList decodes dates_of_ob, falling back to a single-element list built from
// date_of_ob when the column is empty or does not parse.
func (o *OfficialBusiness) DateList() []string {
	if o.DatesOfOB != "" {
		var dates []string
		if err := json.Unmarshal([]byte(o.DatesOfOB), &dates); err == nil && len(dates) > 0 {
			return dates
		}
	}
	if o.DateOfOB != "" {
		return []string{o.DateOfOB}
	}
	return nil
}
