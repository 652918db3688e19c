package dbmodels

// Setting holds office-wide defaults consumed by the print renderer and the admin
// gate. Saving appends a new row instead of overwriting; readers always take the
// row with the highest id.
type Setting struct {
	BaseModel
	Office                    string `gorm:"column:office" json:"office"`
	OfficeHead                string `gorm:"column:office_head" json:"office_head"`
	OfficeHeadPosition        string `gorm:"column:office_head_position" json:"office_head_position"`
	LocationFrom              string `gorm:"column:location_from" json:"location_from"`
	DivisionOptions           string `gorm:"column:division_options" json:"division_options"`
	AssistantRegionalDirector string `gorm:"column:assistant_regional_director;default:'ATTY. NEPOMUCENO A. LEAÑO II, CPA'" json:"assistant_regional_director"`
	AdminPassword             string `gorm:"column:admin_password" json:"admin_password"`
}

func (Setting) TableName() string {
	return "settings"
}
