package models

type User struct {
	BaseModel
	Fullname     string   `gorm:"not null" json:"fullname"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PhoneNumber  string   `gorm:"not null" json:"phoneNumber"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null" json:"role"`
	Profile      Profile  `gorm:"embedded;embeddedPrefix:profile_" json:"profile"`
}

// Profile — вложенный профиль пользователя.
// Resume и ProfilePhoto хранят только URL в удалённом хранилище.
type Profile struct {
	Bio                string   `json:"bio"`
	Skills             []string `gorm:"serializer:json" json:"skills"`
	Resume             string   `json:"resume"`
	ResumeOriginalName string   `json:"resumeOriginalName"`
	ProfilePhoto       string   `gorm:"default:''" json:"profilePhoto"`
	CompanyID          *string  `gorm:"type:uuid" json:"company,omitempty"`
}
