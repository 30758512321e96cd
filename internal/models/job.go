package models

// Job — вакансия работодателя. Схема мигрируется вместе с остальными,
// HTTP-маршрутов для вакансий пока нет.
type Job struct {
	BaseModel
	Title        string   `gorm:"not null" json:"title"`
	Description  string   `gorm:"not null" json:"description"`
	Requirements []string `gorm:"serializer:json" json:"requirements"`
	Salary       string   `gorm:"not null" json:"salary"`
	Location     string   `gorm:"not null" json:"location"`
	JobType      string   `gorm:"not null" json:"jobType"`
	Position     string   `gorm:"not null" json:"position"`
	CompanyID    string   `gorm:"type:uuid;not null;index" json:"company"`
	CreatedByID  string   `gorm:"type:uuid;not null" json:"createdBy"`
}
