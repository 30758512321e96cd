package models

type Company struct {
	BaseModel
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Description string `json:"description"`
	Website     string `json:"website"`
	Location    string `json:"location"`
	Logo        string `json:"logo"`
	UserID      string `gorm:"type:uuid;not null;index" json:"userId"`
}
