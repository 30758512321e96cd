package handlers

// AppHandlers - все HTTP-хендлеры приложения в одном месте.
type AppHandlers struct {
	AuthHandler    *AuthHandler
	ProfileHandler *ProfileHandler
	CompanyHandler *CompanyHandler
}
