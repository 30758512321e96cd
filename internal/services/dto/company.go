package dto

type RegisterCompanyRequest struct {
	CompanyName string `form:"companyName" json:"companyName" validate:"required"`
}

type UpdateCompanyRequest struct {
	Name        string `form:"name" json:"name" validate:"required"`
	Description string `form:"description" json:"description" validate:"required"`
	Website     string `form:"website" json:"website" validate:"required"`
	Location    string `form:"location" json:"location" validate:"required"`
}
