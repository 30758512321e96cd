package dto

// UpdateProfileRequest — частичное обновление: пустое поле не трогает
// сохраненное значение.
type UpdateProfileRequest struct {
	Fullname    string `form:"fullname" json:"fullname"`
	Email       string `form:"email" json:"email" validate:"omitempty,email"`
	PhoneNumber string `form:"phoneNumber" json:"phoneNumber"`
	Bio         string `form:"bio" json:"bio"`
	Skills      string `form:"skills" json:"skills"`
	Role        string `form:"role" json:"role" validate:"omitempty,userrole"`
}
