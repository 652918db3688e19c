package apimodels

type SettingsData struct {
	Office                    string `json:"office"`
	OfficeHead                string `json:"office_head"`
	OfficeHeadPosition        string `json:"office_head_position"`
	LocationFrom              string `json:"location_from"`
	DivisionOptions           string `json:"division_options"`
	AssistantRegionalDirector string `json:"assistant_regional_director"`
}

type SettingsSaveResponse struct {
	Success bool  `json:"success"`
	ID      int64 `json:"id"`
}

type DivisionOptionsResponse struct {
	DivisionOptions string `json:"division_options"`
}
