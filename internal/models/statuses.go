package models

import "fmt"

type UserRole string

const (
	UserRoleStudent   UserRole = "student"
	UserRoleAdmin     UserRole = "admin"
	UserRoleRecruiter UserRole = "recruiter"
)

// ParseUserRole валидирует роль на границе API.
// Внутрь сервисов попадают только значения из закрытого набора.
func ParseUserRole(s string) (UserRole, error) {
	switch UserRole(s) {
	case UserRoleStudent, UserRoleAdmin, UserRoleRecruiter:
		return UserRole(s), nil
	default:
		return "", fmt.Errorf("unknown user role: %q", s)
	}
}
