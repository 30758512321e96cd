package contextkeys

import "context"

// Используем кастомный тип, чтобы избежать коллизий
type contextKey string

// UserIDContextKey - ключ, по которому гейт аутентификации кладет
// идентификатор вызывающего пользователя в context запроса.
const UserIDContextKey = contextKey("userID")

// WithUserID возвращает context с идентификатором аутентифицированного пользователя.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDContextKey, userID)
}

// UserID извлекает идентификатор пользователя из context.
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(UserIDContextKey).(string)
	return id, ok && id != ""
}
